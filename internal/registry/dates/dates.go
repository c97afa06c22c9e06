// Package dates finds the most recent event date across registry records
// whose date fields vary in name and format.
package dates

import (
	"time"

	"kontrola/internal/registry/models"
)

// ISO is the output format.
const ISO = "2006-01-02"

// layouts are tried in order. Single-digit layout elements also accept
// zero-padded input.
var layouts = []string{
	"2006-1-2",
	"2.1.2006",
	"2006.1.2",
	"2006-1-2T15:04:05",
	"2006-1-2 15:04",
}

// Parse reads a date from a string value, first trying its leading ten
// characters and then the whole value.
func Parse(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	candidates := []string{s}
	if r := []rune(s); len(r) > 10 {
		candidates = []string{string(r[:10]), s}
	}
	for _, c := range candidates {
		for _, layout := range layouts {
			if t, err := time.Parse(layout, c); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// Latest returns the maximum record date as an ISO string, or nil when no
// record has a parseable date. For each record the first field that parses
// wins.
func Latest(records []models.Record, fields ...string) *string {
	var best time.Time
	found := false
	for _, rec := range records {
		for _, f := range fields {
			t, ok := Parse(rec[f])
			if !ok {
				continue
			}
			if !found || t.After(best) {
				best = t
				found = true
			}
			break
		}
	}
	if !found {
		return nil
	}
	s := best.Format(ISO)
	return &s
}

// Max returns the later of two optional ISO dates.
func Max(a, b *string) *string {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case *b > *a:
		return b
	default:
		return a
	}
}
