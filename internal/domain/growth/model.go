package growth

import "fmt"

// Sex selects which reference tables apply.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex accepts the wire values used by the register ("male"/"female",
// plus the single-letter forms the legacy forms produce).
func ParseSex(s string) (Sex, error) {
	switch s {
	case "male", "m", "l":
		return SexMale, nil
	case "female", "f", "p":
		return SexFemale, nil
	}
	return "", fmt.Errorf("invalid sex %q", s)
}

// Indicator names one of the three growth indicators.
type Indicator string

const (
	WeightForAge    Indicator = "weight_for_age"
	HeightForAge    Indicator = "height_for_age"
	WeightForHeight Indicator = "weight_for_height"
)

// ParseIndicator maps a route parameter to an Indicator.
func ParseIndicator(s string) (Indicator, error) {
	switch Indicator(s) {
	case WeightForAge, HeightForAge, WeightForHeight:
		return Indicator(s), nil
	}
	return "", fmt.Errorf("invalid indicator %q", s)
}

// HeightMode records how the height measurement was actually taken.
// Empty means "per age convention" and no adjustment is applied.
type HeightMode string

const (
	HeightModeRecumbent HeightMode = "recumbent"
	HeightModeStanding  HeightMode = "standing"
)

// ZScore is a computed standardized score. Restricted reports that the
// raw LMS score fell outside +/-3 and was linearly re-projected.
// Public APIs hand ZScore around by pointer; nil means the score could
// not be computed under the reference (out-of-range age or height, or
// non-positive inputs) and the caller decides how to surface that.
type ZScore struct {
	Value      float64 `json:"value"`
	Restricted bool    `json:"restricted"`
}

// Measurement is one register row as the surrounding application hands
// it to the core: already-extracted primitives, no raw form data.
type Measurement struct {
	Sex        Sex
	AgeDays    int
	WeightKG   *float64
	HeightCM   *float64
	HeightMode HeightMode
	Edema      bool

	// Previous month's weighing, when one exists in strict monthly
	// sequence. PreviousVerdict carries that weighing's verdict so the
	// two-consecutive-not-rising flag can be derived.
	PreviousWeightKG *float64
	PreviousVerdict  Verdict
}

// Assessment is everything the core derives from one Measurement.
type Assessment struct {
	WeightForAgeZ    *ZScore `json:"weight_for_age_z,omitempty"`
	HeightForAgeZ    *ZScore `json:"height_for_age_z,omitempty"`
	WeightForHeightZ *ZScore `json:"weight_for_height_z,omitempty"`

	Classification Classification `json:"classification"`
	Status         GrowthStatus   `json:"status"`
}
