package ratios

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontrola/internal/finance/statement"
)

func normalize(t *testing.T, raw string) statement.Statement {
	t.Helper()
	return statement.Normalize(json.RawMessage(raw))
}

func TestSafeDiv(t *testing.T) {
	for _, a := range []float64{0, 1, -3.5, 1e12} {
		assert.Zero(t, SafeDiv(a, 0))
	}
	assert.InDelta(t, 2.5, SafeDiv(5, 2), 1e-12)
}

func TestComputeAutonomy(t *testing.T) {
	st := normalize(t, `{"1600": {"2021": 100, "2022": 200}, "1300": {"2021": 50, "2022": 60}}`)

	rs := Compute(st)

	assert.InDelta(t, 55.0/150.0, rs.Get(Autonomy), 1e-9)
	assert.InDelta(t, 0.367, rs.Get(Autonomy), 1e-3)
}

func TestComputeEmptyStatement(t *testing.T) {
	rs := Compute(normalize(t, `{}`))

	for _, name := range Names {
		assert.Zero(t, rs.Get(name), name)
	}
	assert.Equal(t, StabilityCrisis, rs.Stability())
}

func TestComputeFlowMeasuresIgnoreMissingYears(t *testing.T) {
	// Revenue is only reported for 2022; plain mean would halve it.
	st := normalize(t, `{
		"2021": {"1600": 100, "2400": 0, "2110": 0},
		"2022": {"1600": 100, "2400": 10, "2110": 100}
	}`)

	rs := Compute(st)

	assert.InDelta(t, 0.1, rs.Get(SalesMargin), 1e-9)
	assert.InDelta(t, 0.1, rs.Get(ROA), 1e-9)
}

func TestComputeAllRatios(t *testing.T) {
	st := normalize(t, `{"2022": {
		"1100": 40, "1150": 20, "1200": 60, "1230": 15, "1240": 5, "1250": 10,
		"1300": 50, "1400": 20, "1500": 30, "1520": 10, "1600": 100,
		"2110": 200, "2120": 150, "2400": 20
	}}`)

	rs := Compute(st)

	want := map[string]float64{
		Autonomy:               0.5,
		WorkingCapitalCoverage: 10.0 / 60.0,
		CurrentLiquidity:       2,
		AbsoluteLiquidity:      0.5,
		FinancialLeverage:      1,
		SalesMargin:            0.1,
		ROA:                    0.2,
		AssetTurnover:          10,
		MaterialTurnover:       200.0 / 150.0,
		ReceivablesToPayables:  1.5,
	}
	for name, v := range want {
		assert.InDelta(t, v, rs.Get(name), 1e-9, name)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	st := normalize(t, `{"1200": {"2021": 50}, "1300": {"2021": 10}, "1500": {"2021": 100}}`)

	first := Compute(st)
	second := Compute(st)

	assert.Equal(t, first.Stability(), second.Stability())
	assert.Equal(t, StabilityUnstable, first.Stability())
}

func TestRatioSetJSON(t *testing.T) {
	rs := Compute(normalize(t, `{"1600": {"2021": 100}, "1300": {"2021": 50}}`))

	b, err := json.Marshal(rs)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Len(t, out, len(Names)+1)
	assert.Equal(t, string(StabilityAbsolute), out[StabilityKey])
	assert.InDelta(t, 0.5, out[Autonomy], 1e-9)
}
