// Package statement turns raw financial statement payloads into a canonical
// indicator × period matrix.
//
// Upstream payloads arrive either period-major ({"2021": {"1600": ...}}) or
// indicator-major ({"1600": {"2021": ...}}). Classify decides which once per
// payload and Normalize handles both through one routine.
package statement

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// Orientation is the nesting order of a statement payload.
type Orientation int

const (
	// IndicatorMajor payloads are keyed by indicator code, then period.
	IndicatorMajor Orientation = iota
	// PeriodMajor payloads are keyed by period, then indicator code.
	PeriodMajor
)

func (o Orientation) String() string {
	if o == PeriodMajor {
		return "period-major"
	}
	return "indicator-major"
}

// Reporting years start with 19 or 20. No code in the indicator catalog
// (internal/finance/catalog/indicators.yaml, codes 1xxx to 4xxx) does, and
// catalog_test enforces that, so an indicator-major payload is never
// mistaken for a period-major one.
var yearPrefix = regexp.MustCompile(`^(19|20)\d{2}`)

// Classify picks the orientation from the first top-level key.
func Classify(firstKey string) Orientation {
	if yearPrefix.MatchString(strings.TrimSpace(firstKey)) {
		return PeriodMajor
	}
	return IndicatorMajor
}

// Matrix maps indicator code to period label to value.
type Matrix map[string]map[string]float64

// Has reports whether the code was present in the payload.
func (m Matrix) Has(code string) bool {
	_, ok := m[code]
	return ok
}

// Value reads a cell; absent cells are zero.
func (m Matrix) Value(code, period string) float64 {
	return m[code][period]
}

// Codes returns the indicator codes in ascending order.
func (m Matrix) Codes() []string {
	codes := make([]string, 0, len(m))
	for c := range m {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

func (m Matrix) set(code, period string, v float64) {
	inner, ok := m[code]
	if !ok {
		inner = make(map[string]float64)
		m[code] = inner
	}
	inner[period] = v
}

// Statement is a normalised payload: the matrix plus its sorted periods.
type Statement struct {
	Orientation Orientation
	Matrix      Matrix
	Periods     []string
}

// Empty reports whether the statement carries no data.
func (s Statement) Empty() bool {
	return len(s.Matrix) == 0
}

// Normalize parses the raw `data` block of a statement payload. Anything
// that is not a JSON object yields an empty statement, never an error.
func Normalize(raw json.RawMessage) Statement {
	out := Statement{Matrix: Matrix{}, Periods: []string{}}

	outer, err := decodeObject(raw)
	if err != nil || len(outer) == 0 {
		return out
	}
	out.Orientation = Classify(outer[0].Key)

	for _, o := range outer {
		inner, err := decodeObject(o.Value)
		if err != nil {
			continue
		}
		for _, i := range inner {
			var code, period string
			if out.Orientation == PeriodMajor {
				code, period = i.Key, PeriodLabel(o.Key)
			} else {
				code, period = o.Key, PeriodLabel(i.Key)
			}
			out.Matrix.set(code, period, ToFloat(decodeScalar(i.Value)))
		}
	}

	seen := make(map[string]struct{})
	for _, inner := range out.Matrix {
		for p := range inner {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				out.Periods = append(out.Periods, p)
			}
		}
	}
	SortPeriods(out.Periods)
	return out
}

// SortPeriods orders labels numerically when all are digit strings and
// lexicographically otherwise.
func SortPeriods(periods []string) {
	numeric := true
	for _, p := range periods {
		if !isDigits(p) {
			numeric = false
			break
		}
	}
	if !numeric {
		sort.Strings(periods)
		return
	}
	sort.Slice(periods, func(i, j int) bool {
		a := strings.TrimLeft(periods[i], "0")
		b := strings.TrimLeft(periods[j], "0")
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
