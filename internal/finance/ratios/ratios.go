// Package ratios derives financial ratios, the stability classification and
// the display tables from a normalised statement.
package ratios

import (
	"encoding/json"

	"kontrola/internal/finance/statement"
)

// Indicator codes read by the ratio formulas.
const (
	codeNonCurrentAssets = "1100"
	codeFixedAssets      = "1150"
	codeCurrentAssets    = "1200"
	codeReceivables      = "1230"
	codeShortInvestments = "1240"
	codeCash             = "1250"
	codeEquity           = "1300"
	codeLongTermLiab     = "1400"
	codeShortTermLiab    = "1500"
	codePayables         = "1520"
	codeTotalAssets      = "1600"
	codeRevenue          = "2110"
	codeCostOfSales      = "2120"
	codeNetProfit        = "2400"
)

// Ratio names as they appear in the RatioSet.
const (
	Autonomy               = "autonomy"
	WorkingCapitalCoverage = "working_capital_coverage"
	CurrentLiquidity       = "current_liquidity"
	AbsoluteLiquidity      = "absolute_liquidity"
	FinancialLeverage      = "financial_leverage"
	SalesMargin            = "sales_margin"
	ROA                    = "roa"
	AssetTurnover          = "asset_turnover"
	MaterialTurnover       = "material_turnover"
	ReceivablesToPayables  = "receivables_to_payables"

	// StabilityKey holds the classification inside the serialised RatioSet.
	StabilityKey = "stability classification"
)

// Names lists the ten ratios in presentation order.
var Names = []string{
	Autonomy, WorkingCapitalCoverage, CurrentLiquidity, AbsoluteLiquidity, FinancialLeverage,
	SalesMargin, ROA, AssetTurnover, MaterialTurnover, ReceivablesToPayables,
}

// RatioSet is the immutable result of Compute.
type RatioSet struct {
	values    map[string]float64
	stability Stability
}

// Get returns a ratio by name; unknown names read as zero.
func (r RatioSet) Get(name string) float64 {
	return r.values[name]
}

// Stability returns the classification.
func (r RatioSet) Stability() Stability {
	return r.stability
}

// MarshalJSON renders the ratios and the classification as one flat object.
func (r RatioSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.values)+1)
	for k, v := range r.values {
		out[k] = v
	}
	out[StabilityKey] = r.stability
	return json.Marshal(out)
}

// SafeDiv divides a by b, returning 0 when b is zero.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

type engine struct {
	st statement.Statement
}

// series reads code across all periods, zero-filling gaps.
func (e engine) series(code string) []float64 {
	out := make([]float64, len(e.st.Periods))
	for i, p := range e.st.Periods {
		out[i] = e.st.Matrix.Value(code, p)
	}
	return out
}

func (e engine) mean(code string) float64 {
	s := e.series(code)
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

// meanNonZero averages only reported (non-zero) periods. Flow measures use it
// so that missing years do not drag the average down.
func (e engine) meanNonZero(code string) float64 {
	var sum float64
	var n int
	for _, v := range e.series(code) {
		if v != 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Compute evaluates the ten ratios and the stability classification.
func Compute(st statement.Statement) RatioSet {
	e := engine{st: st}

	b := Balance{
		TotalAssets:      e.mean(codeTotalAssets),
		Equity:           e.mean(codeEquity),
		NonCurrentAssets: e.mean(codeNonCurrentAssets),
		CurrentAssets:    e.mean(codeCurrentAssets),
		ShortTermLiab:    e.mean(codeShortTermLiab),
		LongTermLiab:     e.mean(codeLongTermLiab),
		Cash:             e.mean(codeCash),
		ShortInvestments: e.mean(codeShortInvestments),
		Receivables:      e.meanNonZero(codeReceivables),
	}
	profit := e.meanNonZero(codeNetProfit)
	revenue := e.meanNonZero(codeRevenue)
	costOfSales := e.meanNonZero(codeCostOfSales)
	payables := e.meanNonZero(codePayables)
	fixedAssets := e.meanNonZero(codeFixedAssets)

	values := map[string]float64{
		Autonomy:               SafeDiv(b.Equity, b.TotalAssets),
		WorkingCapitalCoverage: SafeDiv(b.Equity-b.NonCurrentAssets, b.CurrentAssets),
		CurrentLiquidity:       SafeDiv(b.CurrentAssets, b.ShortTermLiab),
		AbsoluteLiquidity:      SafeDiv(b.Cash+b.ShortInvestments, b.ShortTermLiab),
		FinancialLeverage:      SafeDiv(b.LongTermLiab+b.ShortTermLiab, b.Equity),
		SalesMargin:            SafeDiv(profit, revenue),
		ROA:                    SafeDiv(profit, b.TotalAssets),
		AssetTurnover:          SafeDiv(revenue, fixedAssets),
		MaterialTurnover:       SafeDiv(revenue, costOfSales),
		ReceivablesToPayables:  SafeDiv(b.Receivables, payables),
	}
	return RatioSet{values: values, stability: Classify(b)}
}
