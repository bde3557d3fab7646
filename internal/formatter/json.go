package formatter

import (
	"encoding/json"

	"github.com/gamenative/gamenative-tui/internal/supporters"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// JSONOutput is the document written by the JSON formatter
type JSONOutput struct {
	Summary SummaryOutput     `json:"summary"`
	Members []SupporterOutput `json:"members"`
	OneOffs []SupporterOutput `json:"one_offs"`
}

// SummaryOutput counts each category
type SummaryOutput struct {
	Total   int `json:"total"`
	Members int `json:"members"`
	OneOffs int `json:"one_offs"`
}

// SupporterOutput is a single supporter; a missing total stays null
type SupporterOutput struct {
	Name  string   `json:"name"`
	Total *float64 `json:"total"`
}

func (f *jsonFormatter) Format(p supporters.Partitioned) ([]byte, error) {
	output := &JSONOutput{
		Summary: SummaryOutput{
			Total:   p.Total(),
			Members: len(p.Members),
			OneOffs: len(p.OneOffs),
		},
		Members: createSupporterOutputs(p.Members),
		OneOffs: createSupporterOutputs(p.OneOffs),
	}

	return json.MarshalIndent(output, "", "  ")
}

func createSupporterOutputs(records []supporters.Record) []SupporterOutput {
	outputs := make([]SupporterOutput, 0, len(records))
	for _, r := range records {
		outputs = append(outputs, SupporterOutput{Name: r.DisplayName(), Total: r.Total})
	}
	return outputs
}
