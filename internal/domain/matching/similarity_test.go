package matching

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestJaro_EdgeCases(t *testing.T) {
	if got := Jaro("", ""); got != 1 {
		t.Errorf("Jaro of two empty strings = %v, want 1", got)
	}
	if got := Jaro("budi", ""); got != 0 {
		t.Errorf("Jaro against empty = %v, want 0", got)
	}
	if got := Jaro("budi", "budi"); got != 1 {
		t.Errorf("Jaro of identical strings = %v, want 1", got)
	}
	if got := Jaro("abc", "xyz"); got != 0 {
		t.Errorf("Jaro of disjoint strings = %v, want 0", got)
	}
}

func TestJaro_KnownValues(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		// Classic worked examples.
		{"martha", "marhta", 0.9444444444444445},
		{"dixon", "dicksonx", 0.7666666666666666},
		{"jellyfish", "smellyfish", 0.8962962962962964},
	}
	for _, tc := range cases {
		if got := Jaro(tc.a, tc.b); !approx(got, tc.want) {
			t.Errorf("Jaro(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestJaro_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"siti aminah", "siti aminha"},
		{"budi", "rudi"},
		{"dewi", "dewi lestari"},
	}
	for _, p := range pairs {
		if a, b := Jaro(p[0], p[1]), Jaro(p[1], p[0]); !approx(a, b) {
			t.Errorf("Jaro not symmetric for %q/%q: %v vs %v", p[0], p[1], a, b)
		}
	}
}

func TestJaroWinkler(t *testing.T) {
	if got := JaroWinkler("siti", "siti", 0.1); got != 1 {
		t.Errorf("identical strings = %v, want 1", got)
	}

	// A shared prefix must boost the plain Jaro score.
	j := Jaro("martha", "marhta")
	jw := JaroWinkler("martha", "marhta", 0.1)
	if jw <= j {
		t.Errorf("JaroWinkler %v not above Jaro %v despite shared prefix", jw, j)
	}
	if !approx(jw, j+3*0.1*(1-j)) {
		t.Errorf("JaroWinkler = %v, want %v", jw, j+3*0.1*(1-j))
	}

	// No shared prefix: no boost.
	if got, want := JaroWinkler("budi", "rudi", 0.1), Jaro("budi", "rudi"); !approx(got, want) {
		t.Errorf("JaroWinkler without prefix = %v, want %v", got, want)
	}
}

func TestJaroWinkler_NeverExceedsOne(t *testing.T) {
	pairs := [][2]string{
		{"aaaaaaaa", "aaaaaaab"},
		{"muhammad", "muhamad"},
		{"siti", "sito"},
	}
	for _, p := range pairs {
		for _, scale := range []float64{0.1, 0.25, 0.9, 5} {
			if got := JaroWinkler(p[0], p[1], scale); got > 1 {
				t.Errorf("JaroWinkler(%q, %q, %v) = %v > 1", p[0], p[1], scale, got)
			}
		}
	}
}
