package growth

import "testing"

func TestAdjustedHeight(t *testing.T) {
	cases := []struct {
		name    string
		ageDays int
		mode    HeightMode
		want    float64
	}{
		{"infant measured per convention", 200, HeightModeRecumbent, 80.0},
		{"infant measured standing", 200, HeightModeStanding, 80.7},
		{"older child measured per convention", 900, HeightModeStanding, 80.0},
		{"older child measured recumbent", 900, HeightModeRecumbent, 79.3},
		{"mode unknown", 200, "", 80.0},
		{"boundary age counts as standing", standingAgeDays, HeightModeRecumbent, 79.3},
	}
	for _, tc := range cases {
		if got := adjustedHeight(tc.ageDays, 80.0, tc.mode); got != tc.want {
			t.Errorf("%s: adjustedHeight = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestWeightForAgeZ_HeavyNewborn(t *testing.T) {
	z := WeightForAgeZ(SexMale, 0, 6.0)
	if z == nil {
		t.Fatal("expected a score")
	}
	if z.Value <= 3 {
		t.Errorf("z = %v, want > 3", z.Value)
	}
	if !z.Restricted {
		t.Error("expected restricted score for a 6 kg newborn")
	}
}

func TestWeightForAgeZ_SeverelyUnderweightYearling(t *testing.T) {
	z := WeightForAgeZ(SexMale, 365, 5.0)
	if z == nil {
		t.Fatal("expected a score")
	}
	if z.Value >= -3 {
		t.Errorf("z = %v, want < -3", z.Value)
	}
}

func TestWeightForAgeZ_OutOfRangeAge(t *testing.T) {
	if z := WeightForAgeZ(SexMale, -1, 5.0); z != nil {
		t.Errorf("age -1: got %+v, want nil", z)
	}
	if z := WeightForAgeZ(SexMale, maxAgeDays+1, 18.0); z != nil {
		t.Errorf("age %d: got %+v, want nil", maxAgeDays+1, z)
	}
	if z := WeightForAgeZ(SexMale, maxAgeDays, 18.0); z == nil {
		t.Errorf("age %d should still be scoreable", maxAgeDays)
	}
}

func TestWeightForAgeZ_NonPositiveWeight(t *testing.T) {
	if z := WeightForAgeZ(SexFemale, 100, 0); z != nil {
		t.Errorf("zero weight: got %+v, want nil", z)
	}
}

func TestHeightForAgeZ_MedianIsZero(t *testing.T) {
	rows := Reference(SexFemale, HeightForAge)
	z := HeightForAgeZ(SexFemale, 365, rows[365].M)
	if z == nil {
		t.Fatal("expected a score")
	}
	if z.Value < -1e-9 || z.Value > 1e-9 {
		t.Errorf("z at median = %v, want 0", z.Value)
	}
}

func TestWeightForHeightZ_OutOfRangeHeight(t *testing.T) {
	if z := WeightForHeightZ(SexMale, 365, 44.0, "", 8.0); z != nil {
		t.Errorf("height 44 cm: got %+v, want nil", z)
	}
	if z := WeightForHeightZ(SexMale, 365, 121.0, "", 8.0); z != nil {
		t.Errorf("height 121 cm: got %+v, want nil", z)
	}
}

func TestWeightForHeightZ_ModeAdjustmentChangesLookup(t *testing.T) {
	// Same raw height, different measurement mode: the adjusted lookup
	// row differs, so the scores must differ.
	asConvention := WeightForHeightZ(SexMale, 900, 90.0, HeightModeStanding, 13.0)
	asRecumbent := WeightForHeightZ(SexMale, 900, 90.0, HeightModeRecumbent, 13.0)
	if asConvention == nil || asRecumbent == nil {
		t.Fatal("expected scores for both modes")
	}
	if asConvention.Value == asRecumbent.Value {
		t.Error("expected the recumbent adjustment to change the score")
	}
}
