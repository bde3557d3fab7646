package supporters

import "context"

// AnonymousName is shown for records that carry no name
const AnonymousName = "Anonymous"

// Record is a single supporter entry as returned by the backend.
// Every field is optional on the wire.
type Record struct {
	Name   *string  `json:"name"`
	Total  *float64 `json:"total"`
	OneOff *bool    `json:"one_off"`
}

// DisplayName returns the supporter name or AnonymousName
func (r Record) DisplayName() string {
	if r.Name == nil {
		return AnonymousName
	}
	return *r.Name
}

// Amount returns the contributed total, 0 when unknown
func (r Record) Amount() float64 {
	if r.Total == nil {
		return 0.0
	}
	return *r.Total
}

// IsMember reports whether the record is a recurring member.
// Unknown one-off status counts as a one-off contribution.
func (r Record) IsMember() bool {
	return r.OneOff != nil && !*r.OneOff
}

// Partitioned holds the two display categories of supporters
type Partitioned struct {
	Members []Record `json:"members"`
	OneOffs []Record `json:"one_offs"`
}

// IsEmpty reports whether there is nothing to show in either category
func (p Partitioned) IsEmpty() bool {
	return len(p.Members) == 0 && len(p.OneOffs) == 0
}

// Total returns the number of records across both categories
func (p Partitioned) Total() int {
	return len(p.Members) + len(p.OneOffs)
}

// Fetcher retrieves the full supporter list from an external source
type Fetcher interface {
	FetchSupporters(ctx context.Context) ([]Record, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface
type FetcherFunc func(ctx context.Context) ([]Record, error)

// FetchSupporters calls f(ctx)
func (f FetcherFunc) FetchSupporters(ctx context.Context) ([]Record, error) {
	return f(ctx)
}

// Helpers for building records in code and tests

// String returns a pointer to s
func String(s string) *string { return &s }

// Float returns a pointer to f
func Float(f float64) *float64 { return &f }

// Bool returns a pointer to b
func Bool(b bool) *bool { return &b }
