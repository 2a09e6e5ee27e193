package growth

import "math"

// Children younger than 24 months are conventionally measured lying
// down; from 24 months on, standing.
const standingAgeDays = 730

// recumbentStandingOffsetCM is the fixed correction between the two
// measurement positions.
const recumbentStandingOffsetCM = 0.7

// adjustedHeight normalizes a height measurement to the age-implied
// convention before a weight-for-height lookup. Mode empty means the
// measurement already follows convention.
func adjustedHeight(ageDays int, heightCM float64, mode HeightMode) float64 {
	recumbentAge := ageDays < standingAgeDays
	switch {
	case mode == HeightModeStanding && recumbentAge:
		return heightCM + recumbentStandingOffsetCM
	case mode == HeightModeRecumbent && !recumbentAge:
		return heightCM - recumbentStandingOffsetCM
	}
	return heightCM
}

// score runs the restricted LMS calculation and converts the NaN
// sentinel into an absent result so it never crosses the package
// boundary.
func score(x float64, p lms) *ZScore {
	z, restricted := restrictedZ(x, p)
	if math.IsNaN(z) {
		return nil
	}
	return &ZScore{Value: z, Restricted: restricted}
}

// WeightForAgeZ returns the weight-for-age z-score, or nil when the age
// is outside the reference range or the value is not scoreable.
func WeightForAgeZ(sex Sex, ageDays int, weightKG float64) *ZScore {
	p, ok := referenceFor(sex, WeightForAge).at(ageDays)
	if !ok {
		return nil
	}
	return score(weightKG, p)
}

// HeightForAgeZ returns the length/height-for-age z-score, or nil when
// not computable. Height-for-age uses the measured height as-is; the
// recumbent/standing correction applies only to weight-for-height.
func HeightForAgeZ(sex Sex, ageDays int, heightCM float64) *ZScore {
	p, ok := referenceFor(sex, HeightForAge).at(ageDays)
	if !ok {
		return nil
	}
	return score(heightCM, p)
}

// WeightForHeightZ returns the weight-for-height z-score, or nil when
// the (mode-adjusted) height falls outside 45.0-120.0 cm or the value is
// not scoreable.
func WeightForHeightZ(sex Sex, ageDays int, heightCM float64, mode HeightMode, weightKG float64) *ZScore {
	h := adjustedHeight(ageDays, heightCM, mode)
	p, ok := referenceFor(sex, WeightForHeight).at(heightIndex(h))
	if !ok {
		return nil
	}
	return score(weightKG, p)
}
