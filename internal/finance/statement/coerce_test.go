package statement

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float passes through", 12.5, 12.5},
		{"int", 7, 7},
		{"json number", json.Number("42"), 42},
		{"plain string", "100", 100},
		{"decimal comma", "1234,56", 1234.56},
		{"nbsp thousands", "1 234 567", 1234567},
		{"narrow nbsp thousands", "1 234,5", 1234.5},
		{"spaces around", "  -15 000 ", -15000},
		{"garbage", "n/a", 0},
		{"empty", "", 0},
		{"nan literal", "NaN", 0},
		{"inf literal", "Inf", 0},
		{"infinite float", math.Inf(1), 0},
		{"unsupported type", []int{1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ToFloat(tt.in), 1e-9)
		})
	}
}

func FuzzToFloatNeverPanics(f *testing.F) {
	f.Add("1 234,5")
	f.Add("abc")
	f.Add(" ")
	f.Fuzz(func(t *testing.T, s string) {
		v := ToFloat(s)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite result %v for %q", v, s)
		}
	})
}

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"2021", "2021"},
		{"2021 (12 мес.)", "2021"},
		{"за 2019 год", "2019"},
		{"12345", "12345"},
		{"Q4-2020", "2020"},
		{"итого", "итого"},
		{float64(2022), "2022"},
		{json.Number("2018"), "2018"},
		{nil, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PeriodLabel(tt.in), "input %v", tt.in)
	}
}
