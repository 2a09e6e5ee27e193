package growth

import "math"

// Service runs the full growth pipeline for one measurement. It holds no
// state: the memoized reference tables are package-level and immutable.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Assess computes the three z-scores, the nutrition classification, and
// the growth-monitoring status for one register row. Missing inputs
// yield absent scores and statuses rather than errors.
func (s *Service) Assess(m Measurement) Assessment {
	var a Assessment

	if m.WeightKG != nil {
		a.WeightForAgeZ = WeightForAgeZ(m.Sex, m.AgeDays, *m.WeightKG)
	}
	if m.HeightCM != nil {
		a.HeightForAgeZ = HeightForAgeZ(m.Sex, m.AgeDays, *m.HeightCM)
		if m.WeightKG != nil {
			a.WeightForHeightZ = WeightForHeightZ(m.Sex, m.AgeDays, *m.HeightCM, m.HeightMode, *m.WeightKG)
		}
	}

	a.Classification = Classify(a.WeightForAgeZ, a.HeightForAgeZ, a.WeightForHeightZ, m.Edema)

	var weightGrams int
	var previousGrams *int
	if m.WeightKG != nil {
		weightGrams = toGrams(*m.WeightKG)
		if m.PreviousWeightKG != nil {
			g := toGrams(*m.PreviousWeightKG)
			previousGrams = &g
		}
	}
	a.Status = EvaluateGrowth(m.AgeDays, weightGrams, previousGrams, m.PreviousVerdict, a.WeightForAgeZ, m.Edema)

	return a
}

func toGrams(kg float64) int {
	return int(math.Round(kg * 1000))
}
