package ratios

import (
	"kontrola/internal/finance/catalog"
	"kontrola/internal/finance/statement"
)

// Row is one display line of the statement table. Values align with the
// statement's period list.
type Row struct {
	Code   string    `json:"code"`
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// Rows builds the display table in code order, dropping rows that are zero
// in every period.
func Rows(st statement.Statement) []Row {
	e := engine{st: st}
	rows := make([]Row, 0, len(st.Matrix))
	for _, code := range st.Matrix.Codes() {
		values := e.series(code)
		if allZero(values) {
			continue
		}
		rows = append(rows, Row{
			Code:   code,
			Label:  catalog.DisplayLabel(code),
			Values: values,
		})
	}
	return rows
}

func allZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}

// Charts holds the per-period series plotted on the report.
type Charts struct {
	Periods      []string  `json:"periods"`
	Sales        []float64 `json:"sales"`
	Profit       []float64 `json:"profit"`
	Autonomy     []float64 `json:"autonomy"`
	CurrentRatio []float64 `json:"current_ratio"`
}

// ChartSeries computes the chart series for every period.
func ChartSeries(st statement.Statement) Charts {
	e := engine{st: st}
	equity, assets := e.series(codeEquity), e.series(codeTotalAssets)
	current, shortTerm := e.series(codeCurrentAssets), e.series(codeShortTermLiab)

	autonomy := make([]float64, len(st.Periods))
	currentRatio := make([]float64, len(st.Periods))
	for i := range st.Periods {
		autonomy[i] = SafeDiv(equity[i], assets[i])
		currentRatio[i] = SafeDiv(current[i], shortTerm[i])
	}
	return Charts{
		Periods:      st.Periods,
		Sales:        e.series(codeRevenue),
		Profit:       e.series(codeNetProfit),
		Autonomy:     autonomy,
		CurrentRatio: currentRatio,
	}
}
