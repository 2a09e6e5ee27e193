package matching

// Jaro returns the Jaro similarity of two strings in [0, 1]. Both empty
// compares as identical; one empty as entirely dissimilar.
func Jaro(a, b string) float64 {
	r1, r2 := []rune(a), []rune(b)
	if len(r1) == 0 && len(r2) == 0 {
		return 1
	}
	if len(r1) == 0 || len(r2) == 0 {
		return 0
	}

	window := max(len(r1), len(r2))/2 - 1
	if window < 0 {
		window = 0
	}

	matched1 := make([]bool, len(r1))
	matched2 := make([]bool, len(r2))
	matches := 0
	for i := range r1 {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window
		if hi > len(r2)-1 {
			hi = len(r2) - 1
		}
		for j := lo; j <= hi; j++ {
			if !matched2[j] && r1[i] == r2[j] {
				matched1[i] = true
				matched2[j] = true
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0
	}

	// Count transpositions between the matched characters in order.
	transpositions := 0
	j := 0
	for i := range r1 {
		if !matched1[i] {
			continue
		}
		for !matched2[j] {
			j++
		}
		if r1[i] != r2[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	return (m/float64(len(r1)) + m/float64(len(r2)) + (m-float64(transpositions)/2)/m) / 3
}

// winklerPrefixCap bounds the common-prefix bonus.
const winklerPrefixCap = 4

// JaroWinkler boosts the Jaro similarity by a common-prefix bonus.
// The prefix counts at most four characters and the scale is capped at
// 0.25 so the result can never exceed 1.
func JaroWinkler(a, b string, prefixScale float64) float64 {
	if prefixScale > 0.25 {
		prefixScale = 0.25
	}
	j := Jaro(a, b)

	r1, r2 := []rune(a), []rune(b)
	prefix := 0
	for i := 0; i < len(r1) && i < len(r2) && i < winklerPrefixCap; i++ {
		if r1[i] != r2[i] {
			break
		}
		prefix++
	}
	return j + float64(prefix)*prefixScale*(1-j)
}
