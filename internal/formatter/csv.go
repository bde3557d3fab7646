package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/gamenative/gamenative-tui/internal/supporters"
)

// csvFormatter writes one row per supporter, members first
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(p supporters.Partitioned) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write([]string{"Rank", "Name", "Type", "Total"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	rank := 0
	write := func(records []supporters.Record, kind string) error {
		for _, r := range records {
			rank++
			row := []string{strconv.Itoa(rank), escapeCSVString(r.DisplayName()), kind, formatCSVAmount(r.Total)}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	}

	if err := write(p.Members, "member"); err != nil {
		return nil, err
	}
	if err := write(p.OneOffs, "one_off"); err != nil {
		return nil, err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

// formatCSVAmount leaves a missing total empty
func formatCSVAmount(total *float64) string {
	if total == nil {
		return ""
	}
	return strconv.FormatFloat(*total, 'f', 2, 64)
}

// escapeCSVString flattens line breaks so each supporter stays on one row
func escapeCSVString(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
