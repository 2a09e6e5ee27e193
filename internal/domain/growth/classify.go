package growth

// Status vocabularies are closed: the storage and UI layers persist
// these strings verbatim, and each indicator has its own set.

// WeightForAgeStatus classifies the weight-for-age z-score.
type WeightForAgeStatus string

const (
	WFASeverelyUnderweight WeightForAgeStatus = "severely_underweight"
	WFAUnderweight         WeightForAgeStatus = "underweight"
	WFANormal              WeightForAgeStatus = "normal"
	WFAOverweight          WeightForAgeStatus = "overweight"
)

// HeightForAgeStatus classifies the length/height-for-age z-score.
type HeightForAgeStatus string

const (
	HFASeverelyStunted HeightForAgeStatus = "severely_stunted"
	HFAStunted         HeightForAgeStatus = "stunted"
	HFANormal          HeightForAgeStatus = "normal"
	HFATall            HeightForAgeStatus = "tall"
)

// WeightForHeightStatus classifies the weight-for-height z-score.
type WeightForHeightStatus string

const (
	WFHSevereWasting WeightForHeightStatus = "severe_wasting"
	WFHWasting       WeightForHeightStatus = "wasting"
	WFHNormal        WeightForHeightStatus = "normal"
	WFHOverweight    WeightForHeightStatus = "overweight"
	WFHObese         WeightForHeightStatus = "obese"
)

// Classification carries the three independent indicator statuses. A nil
// status means the underlying z-score was absent (except that edema
// still forces the weight-based statuses).
type Classification struct {
	WeightForAge    *WeightForAgeStatus    `json:"weight_for_age,omitempty"`
	HeightForAge    *HeightForAgeStatus    `json:"height_for_age,omitempty"`
	WeightForHeight *WeightForHeightStatus `json:"weight_for_height,omitempty"`
}

func classifyWeightForAge(z *ZScore, edema bool) *WeightForAgeStatus {
	if edema {
		s := WFASeverelyUnderweight
		return &s
	}
	if z == nil {
		return nil
	}
	var s WeightForAgeStatus
	switch {
	case z.Value < -3:
		s = WFASeverelyUnderweight
	case z.Value < -2:
		s = WFAUnderweight
	case z.Value <= 2:
		s = WFANormal
	default:
		s = WFAOverweight
	}
	return &s
}

func classifyHeightForAge(z *ZScore) *HeightForAgeStatus {
	if z == nil {
		return nil
	}
	var s HeightForAgeStatus
	switch {
	case z.Value < -3:
		s = HFASeverelyStunted
	case z.Value < -2:
		s = HFAStunted
	case z.Value <= 3:
		s = HFANormal
	default:
		s = HFATall
	}
	return &s
}

func classifyWeightForHeight(z *ZScore, edema bool) *WeightForHeightStatus {
	if edema {
		s := WFHSevereWasting
		return &s
	}
	if z == nil {
		return nil
	}
	var s WeightForHeightStatus
	switch {
	case z.Value < -3:
		s = WFHSevereWasting
	case z.Value < -2:
		s = WFHWasting
	case z.Value <= 2:
		s = WFHNormal
	case z.Value <= 3:
		s = WFHOverweight
	default:
		s = WFHObese
	}
	return &s
}

// Classify maps the three z-scores onto their status vocabularies.
// Edema overrides the two weight-based indicators to their severe
// category regardless of the computed scores; it never affects
// height-for-age.
func Classify(waz, haz, whz *ZScore, edema bool) Classification {
	return Classification{
		WeightForAge:    classifyWeightForAge(waz, edema),
		HeightForAge:    classifyHeightForAge(haz),
		WeightForHeight: classifyWeightForHeight(whz, edema),
	}
}
