package statement

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// spaceRemover drops every Unicode space separator, which covers the
// no-break and narrow no-break spaces used as thousands separators.
var spaceRemover = runes.Remove(runes.In(unicode.Zs))

// yearToken matches a run of exactly four digits.
var yearToken = regexp.MustCompile(`(?:^|\D)(\d{4})(?:\D|$)`)

// ToFloat coerces a loosely typed upstream value into a float64.
// Unparsable, absent and non-finite values become 0.
func ToFloat(v any) float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case int32:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint64:
		f = float64(x)
	case bool:
		if x {
			f = 1
		}
	case json.Number:
		f = parseNumber(string(x))
	case string:
		f = parseNumber(x)
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseNumber(s string) float64 {
	cleaned, _, err := transform.String(spaceRemover, strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

// PeriodLabel normalises a period label to its first four-digit token, or
// returns the label unchanged when it has none.
func PeriodLabel(v any) string {
	var s string
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		s = x
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		s = x.String()
	case int:
		s = strconv.Itoa(x)
	default:
		if st, ok := v.(interface{ String() string }); ok {
			s = st.String()
		} else {
			return ""
		}
	}
	if m := yearToken.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}
