package emoji

// emojiMap holds [emoji, fallback] pairs
var emojiMap = map[string][2]string{
	"error":      {"❌", "[ERR]"},
	"warning":    {"⚠️", "[WRN]"},
	"info":       {"ℹ️", "[INF]"},
	"success":    {"✅", "[OK]"},
	"trophy":     {"🏆", "[*]"},
	"member":     {"💜", "[M]"},
	"supporter":  {"☕", "[S]"},
	"tip":        {"💡", "[TIP]"},
	"rocket":     {"🚀", "[>>]"},
	"gear":       {"⚙️", "[CFG]"},
	"package":    {"📦", "[PKG]"},
	"statistics": {"📊", "[STATS]"},
}

var emojiDisabled bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled = disabled
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	return Get(key, !emojiDisabled)
}

// Get returns the emoji for key, or its text fallback when enabled is false
func Get(key string, enabled bool) string {
	mapping, exists := emojiMap[key]
	if !exists {
		return "[?]"
	}
	if !enabled {
		return mapping[1]
	}
	return mapping[0]
}
