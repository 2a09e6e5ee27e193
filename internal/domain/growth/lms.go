package growth

import "math"

// lms is one row of a reference table: Box-Cox power L, median M, and
// coefficient of variation S.
type lms struct {
	L, M, S float64
}

// rawZ converts a measured value into a z-score under the LMS model.
// Non-positive inputs make the model undefined and yield NaN; callers
// must treat NaN as "not scoreable", never as a score.
func rawZ(x float64, p lms) float64 {
	if x <= 0 || p.M <= 0 || p.S <= 0 {
		return math.NaN()
	}
	if p.L == 0 {
		return math.Log(x/p.M) / p.S
	}
	return (math.Pow(x/p.M, p.L) - 1) / (p.L * p.S)
}

// valueAt inverts the LMS model: the measurement the reference predicts
// at z standard deviations.
func valueAt(p lms, z float64) float64 {
	if p.L == 0 {
		return p.M * math.Exp(p.S*z)
	}
	return p.M * math.Pow(1+p.L*p.S*z, 1/p.L)
}

// restrictedZ returns the z-score for x, linearly re-projected when the
// raw score falls outside [-3, 3]. Beyond the boundary the score grows by
// one unit per (SD3-SD2) of measured value, which keeps extreme
// measurements bounded and monotonic while staying continuous at +/-3.
// The second return value reports whether the restriction was applied.
func restrictedZ(x float64, p lms) (float64, bool) {
	z := rawZ(x, p)
	switch {
	case math.IsNaN(z):
		return z, false
	case z > 3:
		sd2, sd3 := valueAt(p, 2), valueAt(p, 3)
		return 3 + (x-sd3)/(sd3-sd2), true
	case z < -3:
		sd2, sd3 := valueAt(p, -2), valueAt(p, -3)
		return -3 + (x-sd3)/(sd2-sd3), true
	default:
		return z, false
	}
}
