package formatter

import (
	"fmt"
	"strings"

	"github.com/gamenative/gamenative-tui/internal/emoji"
	"github.com/gamenative/gamenative-tui/internal/supporters"
	"github.com/yildizm/go-termfmt"
)

// Headings shared by the human readable formats
const (
	membersHeading    = "Members"
	supportersHeading = "Supporters"
	emptyText         = "No supporters yet."
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter
func NewTerminal(o Options) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = o.Color
	opts.Emoji = o.Emoji
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(p supporters.Partitioned) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)

	if p.IsEmpty() {
		b.WriteString(emptyText + "\n")
		return []byte(b.String()), nil
	}

	if len(p.Members) > 0 {
		f.writeSection(&b, emoji.Get("member", f.opts.Emoji), membersHeading, p.Members)
	}
	if len(p.OneOffs) > 0 {
		f.writeSection(&b, emoji.Get("supporter", f.opts.Emoji), supportersHeading, p.OneOffs)
	}

	f.writeSummary(&b, p)

	return []byte(b.String()), nil
}

func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	title := emoji.Get("trophy", f.opts.Emoji) + " Hall of Fame"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("═", 30) + "\n\n")
}

// writeSection lists one category as a tree, preserving its order
func (f *terminalFormatter) writeSection(b *strings.Builder, symbol, heading string, records []supporters.Record) {
	fmt.Fprintf(b, "%s %s (%s)\n", symbol, heading, formatNumber(len(records)))

	items := make([]termfmt.TreeItem, 0, len(records))
	for i, r := range records {
		items = append(items, termfmt.TreeItem{
			Label: r.DisplayName(),
			Last:  i == len(records)-1,
		})
	}

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

func (f *terminalFormatter) writeSummary(b *strings.Builder, p supporters.Partitioned) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Summary\n")

	share := 0.0
	if p.Total() > 0 {
		share = float64(len(p.Members)) / float64(p.Total())
	}

	items := []termfmt.TreeItem{
		{Label: "Total", Value: formatNumber(p.Total())},
		{Label: membersHeading, Value: fmt.Sprintf("%d (%s)", len(p.Members), termfmt.CreateConfidenceBar(share, f.opts))},
		{Label: supportersHeading, Value: formatNumber(len(p.OneOffs)), Last: true},
	}

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
}

// formatNumber formats numbers with commas for readability
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return addCommas(fmt.Sprintf("%d", n))
}

func addCommas(s string) string {
	if len(s) <= 3 {
		return s
	}
	return addCommas(s[:len(s)-3]) + "," + s[len(s)-3:]
}
