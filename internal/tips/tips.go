package tips

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultInterval is how long each tip stays on screen
const DefaultInterval = 4000 * time.Millisecond

var defaultTips = []string{
	"Booting may take a few minutes on first launch",
	"Tip: You can view the game files by pressing \"Open Container\" in the game settings.",
	"Tip: Try the Adreno or Snapdragon 8 Elite drivers if you are on a compatible device.",
	"Tip: Turn off \"Show FPS\" to get rid of the mesa overlay.",
	"Tip: Install packages in A:\\_CommonRedist if your game doesn't launch.",
	"Tip: You can enable or disable the onscreen controller with your device's back key.",
	"Tip: You can bring up the keyboard with your device's back key.",
	"Tip: You can tap with two fingers inside the container to right click.",
	"Tip: If you are using the onscreen controller, you can disable the mouse to prevent accidental touches.",
	"Tip: Report issues on Discord so we can fix them.",
	"Tip: Use the Vortek driver if you are on a non-Adreno GPU.",
	"Tip: Lower resolution and use box64 in performance mode to boost FPS.",
	"Tip: If the game is crashing after loading, increase the video memory.",
	"Tip: If you are seeing visual glitches, try setting environment variables MESA_VK_WSI_DEBUG to sw and MESA_VK_WSI_PRESENT_MODE to immediate.",
	"Tip: You can enable touchscreen mode.",
}

// DefaultTips returns the built-in boot tips
func DefaultTips() []string {
	out := make([]string, len(defaultTips))
	copy(out, defaultTips)
	return out
}

// File is the on-disk format of a custom tips list
type File struct {
	Tips []string `yaml:"tips" json:"tips"`
}

// LoadFile reads a YAML tips file. Blank entries are dropped.
func LoadFile(path string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("tips file must have .yaml or .yml extension")
	}

	// #nosec G304 - user supplied path with checked extension
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read tips file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tips file: %w", err)
	}

	out := make([]string, 0, len(file.Tips))
	for _, tip := range file.Tips {
		if tip = strings.TrimSpace(tip); tip != "" {
			out = append(out, tip)
		}
	}
	return out, nil
}
