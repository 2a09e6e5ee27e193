package growth

// Verdict is the monthly growth-monitoring outcome recorded in the
// register (naik / tidak naik / not weighed last month).
type Verdict string

const (
	VerdictRising     Verdict = "rising"
	VerdictNotRising  Verdict = "not_rising"
	VerdictNotWeighed Verdict = "not_weighed"
)

// gainBand is an inclusive upper age bound in days and the minimum
// expected weight gain in grams per month for children up to that age.
type gainBand struct {
	maxAgeDays int
	grams      int
}

// The national growth-monitoring card bands. The register applies the
// 200 g band through the end of the first year and 150 g thereafter.
// The card cites 700 g for the youngest band in one edition; the 800 g
// figure is what the program actually applies.
var gainBands = []gainBand{
	{90, 800},
	{180, 600},
	{270, 400},
	{330, 300},
	{365, 200},
}

// fallback for every age beyond the last band
const gainFallbackGrams = 150

// MinimumGain returns the minimum expected monthly weight gain, in
// grams, for a child of the given age.
func MinimumGain(ageDays int) int {
	for _, b := range gainBands {
		if ageDays <= b.maxAgeDays {
			return b.grams
		}
	}
	return gainFallbackGrams
}

// GrowthStatus is the derived monitoring record for one weighing.
type GrowthStatus struct {
	MinimumGainGrams     int     `json:"minimum_gain_grams"`
	Verdict              Verdict `json:"verdict"`
	SevereUnderweight    bool    `json:"severe_underweight"`
	ConsecutiveNotRising bool    `json:"consecutive_not_rising"`
}

// EvaluateGrowth computes the verdict and derived flags for the current
// weighing. previousWeightGrams is nil when the child was not weighed
// the previous month; previousVerdict is that month's verdict (pass
// VerdictNotWeighed for a gap — it breaks a not-rising streak).
//
// Gaining exactly the minimum counts as rising. The severe-underweight
// ("red line") flag fires on edema or a weight-for-age z strictly below
// -3; exactly -3 is not severe.
func EvaluateGrowth(ageDays, weightGrams int, previousWeightGrams *int, previousVerdict Verdict, waz *ZScore, edema bool) GrowthStatus {
	st := GrowthStatus{
		MinimumGainGrams:  MinimumGain(ageDays),
		Verdict:           VerdictNotWeighed,
		SevereUnderweight: edema || (waz != nil && waz.Value < -3),
	}
	if previousWeightGrams != nil {
		if weightGrams-*previousWeightGrams >= st.MinimumGainGrams {
			st.Verdict = VerdictRising
		} else {
			st.Verdict = VerdictNotRising
		}
	}
	st.ConsecutiveNotRising = st.Verdict == VerdictNotRising && previousVerdict == VerdictNotRising
	return st
}
