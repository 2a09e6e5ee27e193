package growth

import "testing"

func TestMinimumGain(t *testing.T) {
	cases := []struct {
		ageDays int
		want    int
	}{
		{0, 800},
		{60, 800},
		{90, 800},
		{91, 600},
		{180, 600},
		{270, 400},
		{330, 300},
		{365, 200},
		{366, 150},
		{400, 150},
		{1800, 150},
		{3000, 150},
	}
	for _, tc := range cases {
		if got := MinimumGain(tc.ageDays); got != tc.want {
			t.Errorf("MinimumGain(%d) = %d, want %d", tc.ageDays, got, tc.want)
		}
	}
}

func intPtr(v int) *int { return &v }

func TestEvaluateGrowth_Verdict(t *testing.T) {
	// Two-month-old: threshold 800 g. Gaining exactly the minimum counts
	// as rising.
	st := EvaluateGrowth(61, 5800, intPtr(5000), VerdictRising, nil, false)
	if st.Verdict != VerdictRising {
		t.Errorf("gain of exactly 800 g: verdict %v, want rising", st.Verdict)
	}
	if st.MinimumGainGrams != 800 {
		t.Errorf("threshold %d, want 800", st.MinimumGainGrams)
	}

	st = EvaluateGrowth(61, 5799, intPtr(5000), VerdictRising, nil, false)
	if st.Verdict != VerdictNotRising {
		t.Errorf("gain of 799 g: verdict %v, want not_rising", st.Verdict)
	}

	st = EvaluateGrowth(61, 5800, nil, "", nil, false)
	if st.Verdict != VerdictNotWeighed {
		t.Errorf("no previous weight: verdict %v, want not_weighed", st.Verdict)
	}
}

func TestEvaluateGrowth_WeightLoss(t *testing.T) {
	st := EvaluateGrowth(400, 9000, intPtr(9500), VerdictRising, nil, false)
	if st.Verdict != VerdictNotRising {
		t.Errorf("weight loss: verdict %v, want not_rising", st.Verdict)
	}
}

func TestEvaluateGrowth_SevereUnderweight(t *testing.T) {
	if st := EvaluateGrowth(365, 5000, nil, "", &ZScore{Value: -3.2}, false); !st.SevereUnderweight {
		t.Error("z below -3 must flag severe underweight")
	}
	// Exactly -3 is not severe.
	if st := EvaluateGrowth(365, 6000, nil, "", &ZScore{Value: -3}, false); st.SevereUnderweight {
		t.Error("z of exactly -3 must not flag severe underweight")
	}
	if st := EvaluateGrowth(365, 9000, nil, "", &ZScore{Value: 0.5}, true); !st.SevereUnderweight {
		t.Error("edema must flag severe underweight regardless of z")
	}
	if st := EvaluateGrowth(365, 9000, nil, "", nil, false); st.SevereUnderweight {
		t.Error("absent z without edema must not flag severe underweight")
	}
}

func TestEvaluateGrowth_ConsecutiveNotRising(t *testing.T) {
	cases := []struct {
		name            string
		previousVerdict Verdict
		gain            int
		want            bool
	}{
		{"two not-rising in a row", VerdictNotRising, 50, true},
		{"current rising breaks streak", VerdictNotRising, 900, false},
		{"previous rising", VerdictRising, 50, false},
		{"gap month breaks streak", VerdictNotWeighed, 50, false},
		{"no history", "", 50, false},
	}
	for _, tc := range cases {
		prev := 5000
		st := EvaluateGrowth(61, prev+tc.gain, &prev, tc.previousVerdict, nil, false)
		if st.ConsecutiveNotRising != tc.want {
			t.Errorf("%s: flag = %v, want %v", tc.name, st.ConsecutiveNotRising, tc.want)
		}
	}
}

func TestEvaluateGrowth_NotWeighedNeverConsecutive(t *testing.T) {
	st := EvaluateGrowth(61, 0, nil, VerdictNotRising, nil, false)
	if st.ConsecutiveNotRising {
		t.Error("a not-weighed month must not extend a not-rising streak")
	}
}
