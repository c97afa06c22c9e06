package ratios

import "math"

// Stability is one of four working-capital coverage categories.
type Stability string

const (
	StabilityAbsolute Stability = "Absolute stability"
	StabilityNormal   Stability = "Normal stability"
	StabilityUnstable Stability = "Unstable (pre-crisis)"
	StabilityCrisis   Stability = "Crisis"
)

// Balance holds the averaged balance-sheet figures the classification reads.
type Balance struct {
	TotalAssets      float64
	Equity           float64
	NonCurrentAssets float64
	CurrentAssets    float64
	ShortTermLiab    float64
	LongTermLiab     float64
	Cash             float64
	ShortInvestments float64
	Receivables      float64
}

// Classify runs the stability decision tree. Branches are checked in order
// and the first match wins; ties fall through to the next branch.
func Classify(b Balance) Stability {
	reserves := math.Max(b.CurrentAssets-b.Cash-b.ShortInvestments-b.Receivables, 0)
	ownWorkingCapital := b.Equity - b.NonCurrentAssets
	longTermSources := ownWorkingCapital + b.LongTermLiab
	allSources := longTermSources + b.ShortTermLiab

	switch {
	case ownWorkingCapital > reserves:
		return StabilityAbsolute
	case longTermSources > reserves && ownWorkingCapital < reserves:
		return StabilityNormal
	case allSources > reserves && longTermSources < reserves:
		return StabilityUnstable
	default:
		return StabilityCrisis
	}
}
