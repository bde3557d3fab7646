// Package versions lists the component versions a new container starts with.
package versions

import (
	"sort"
	"strings"
)

// Component names
const (
	Box86    = "box86"
	Box64    = "box64"
	Turnip   = "turnip"
	Zink     = "zink"
	Virgl    = "virgl"
	DXVK     = "dxvk"
	D8VK     = "d8vk"
	VKD3D    = "vkd3d"
	CNCDDraw = "cnc-ddraw"
	Vortek   = "vortek"
	Adreno   = "adreno"
	SD8Elite = "sd8elite"
)

// DefaultSteamType is the Steam client flavour used by new containers
const DefaultSteamType = "normal"

// Component is a named default version
type Component struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

var defaults = map[string]string{
	Box86:    "0.3.2",
	Box64:    "0.3.6",
	Turnip:   "25.2.0",
	Zink:     "22.2.5",
	Virgl:    "23.1.9",
	DXVK:     "2.6.1-gplasync",
	D8VK:     "1.0",
	VKD3D:    "2.14.1",
	CNCDDraw: "6.6",
	Vortek:   "2.0-22.2.5",
	Adreno:   "819.2",
	SD8Elite: "800.51",
}

// All returns every default, sorted by name
func All() []Component {
	out := make([]Component, 0, len(defaults))
	for name, version := range defaults {
		out = append(out, Component{Name: name, Version: version})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the default version of a component. Names are matched
// case-insensitively and underscores are accepted for dashes.
func Lookup(name string) (string, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	v, ok := defaults[key]
	return v, ok
}
