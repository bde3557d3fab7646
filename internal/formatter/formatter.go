package formatter

import (
	"fmt"
	"strings"

	"github.com/gamenative/gamenative-tui/internal/supporters"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(p supporters.Partitioned) ([]byte, error)
}

// Supported output formats
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// Formats lists the accepted format names
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatMarkdown, FormatCSV}
}

// Options tune the human readable formats
type Options struct {
	Color bool
	Emoji bool
}

// New returns the formatter for a format name
func New(format string, opts Options) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "terminal", "":
		return NewTerminal(opts), nil
	case FormatJSON:
		return NewJSON(), nil
	case FormatMarkdown, "md":
		return NewMarkdown(), nil
	case FormatCSV:
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
}
