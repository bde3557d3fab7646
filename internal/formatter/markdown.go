package formatter

import (
	"fmt"
	"strings"

	"github.com/gamenative/gamenative-tui/internal/supporters"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(p supporters.Partitioned) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Hall of Fame\n\n")

	if p.IsEmpty() {
		b.WriteString("_" + emptyText + "_\n")
		return []byte(b.String()), nil
	}

	f.writeSummaryTable(&b, p)

	if len(p.Members) > 0 {
		f.writeSection(&b, membersHeading, p.Members)
	}
	if len(p.OneOffs) > 0 {
		f.writeSection(&b, supportersHeading, p.OneOffs)
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, p supporters.Partitioned) {
	b.WriteString("| Category | Count |\n")
	b.WriteString("|----------|-------|\n")
	fmt.Fprintf(b, "| %s | %d |\n", membersHeading, len(p.Members))
	fmt.Fprintf(b, "| %s | %d |\n", supportersHeading, len(p.OneOffs))
	fmt.Fprintf(b, "| **Total** | **%d** |\n\n", p.Total())
}

func (f *markdownFormatter) writeSection(b *strings.Builder, heading string, records []supporters.Record) {
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, r := range records {
		fmt.Fprintf(b, "- %s\n", escapeMarkdown(r.DisplayName()))
	}
	b.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "|", `\|`,
	"\n", " ",
)

// escapeMarkdown keeps supporter names from being read as markup
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
