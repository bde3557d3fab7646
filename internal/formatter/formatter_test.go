package formatter

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gamenative/gamenative-tui/internal/supporters"
)

func samplePartitioned() supporters.Partitioned {
	return supporters.Partition([]supporters.Record{
		{Name: supporters.String("A"), Total: supporters.Float(10), OneOff: supporters.Bool(false)},
		{Name: supporters.String("B"), Total: supporters.Float(50), OneOff: supporters.Bool(true)},
		{Name: nil, Total: supporters.Float(5), OneOff: nil},
		{Name: supporters.String("C"), Total: supporters.Float(30), OneOff: supporters.Bool(false)},
	})
}

func assertOrder(t *testing.T, output string, words ...string) {
	t.Helper()
	rest := output
	for _, w := range words {
		pos := strings.Index(rest, w)
		if pos < 0 {
			t.Fatalf("%q missing or out of order in output:\n%s", w, output)
		}
		rest = rest[pos+len(w):]
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"", false},
		{"JSON", false},
		{"markdown", false},
		{"md", false},
		{"csv", false},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := New(tt.format, Options{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if !tt.wantErr && f == nil {
				t.Errorf("New(%q) returned nil formatter", tt.format)
			}
		})
	}
}

func TestTerminalFormat(t *testing.T) {
	out, err := NewTerminal(Options{}).Format(samplePartitioned())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	output := string(out)
	assertOrder(t, output, "Hall of Fame", "Members (2)", "C", "A", "Supporters (2)", "B", "Anonymous", "Summary")

	if strings.Contains(output, "🏆") {
		t.Error("emoji should be replaced by fallbacks when disabled")
	}
}

func TestTerminalFormatEmpty(t *testing.T) {
	out, err := NewTerminal(Options{}).Format(supporters.Partitioned{})
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if !strings.Contains(string(out), "No supporters yet.") {
		t.Errorf("expected empty text, got:\n%s", out)
	}
	if strings.Contains(string(out), "Members") {
		t.Errorf("empty output should not list sections:\n%s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	out, err := NewJSON().Format(samplePartitioned())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var doc JSONOutput
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if doc.Summary.Total != 4 || doc.Summary.Members != 2 || doc.Summary.OneOffs != 2 {
		t.Errorf("unexpected summary: %+v", doc.Summary)
	}
	if doc.Members[0].Name != "C" || doc.Members[1].Name != "A" {
		t.Errorf("members out of order: %+v", doc.Members)
	}
	if doc.OneOffs[1].Name != "Anonymous" || *doc.OneOffs[1].Total != 5 {
		t.Errorf("unexpected one-off: %+v", doc.OneOffs[1])
	}
}

func TestJSONFormatEmptyUsesArrays(t *testing.T) {
	out, err := NewJSON().Format(supporters.Partitioned{})
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if !strings.Contains(string(out), `"members": []`) || !strings.Contains(string(out), `"one_offs": []`) {
		t.Errorf("empty categories should be arrays, got:\n%s", out)
	}
}

func TestCSVFormat(t *testing.T) {
	p := samplePartitioned()
	p.OneOffs = append(p.OneOffs, supporters.Record{Name: supporters.String("multi\nline")})

	out, err := NewCSV().Format(p)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}

	want := [][]string{
		{"Rank", "Name", "Type", "Total"},
		{"1", "C", "member", "30.00"},
		{"2", "A", "member", "10.00"},
		{"3", "B", "one_off", "50.00"},
		{"4", "Anonymous", "one_off", "5.00"},
		{"5", "multi line", "one_off", ""},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if strings.Join(rows[i], ",") != strings.Join(want[i], ",") {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestMarkdownFormat(t *testing.T) {
	p := samplePartitioned()
	p.Members[0].Name = supporters.String("*C*")

	out, err := NewMarkdown().Format(p)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	output := string(out)
	assertOrder(t, output, "# Hall of Fame", "| **Total** | **4** |", "## Members", `- \*C\*`, "- A", "## Supporters", "- B", "- Anonymous")
}

func TestMarkdownFormatEmpty(t *testing.T) {
	out, err := NewMarkdown().Format(supporters.Partitioned{})
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if !strings.Contains(string(out), "_No supporters yet._") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int]string{0: "0", 999: "999", 1000: "1,000", 1234567: "1,234,567"}
	for in, want := range tests {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}
