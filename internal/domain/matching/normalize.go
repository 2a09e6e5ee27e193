package matching

import "strings"

// Honorific titles stripped from either end of a name. Keys are
// lowercase with any trailing period removed.
var honorifics = map[string]bool{
	"tn":    true,
	"ny":    true,
	"nn":    true,
	"an":    true,
	"sdr":   true,
	"sdri":  true,
	"bpk":   true,
	"bapak": true,
	"ibu":   true,
	"bu":    true,
	"h":     true,
	"hj":    true,
	"ust":   true,
	"ustz":  true,
	"dr":    true,
	"drg":   true,
	"se":    true,
	"spd":   true,
	"amd":   true,
	"skm":   true,
}

// Islamic lineage particles. The particle and everything after it (the
// patronymic) are dropped, not merged into the name.
var lineageParticles = map[string]bool{
	"bin":   true,
	"binti": true,
	"bt":    true,
}

// Abbreviated and alternate spellings unified to one canonical form.
var muhammadVariants = map[string]bool{
	"m":        true,
	"muh":      true,
	"moh":      true,
	"mhd":      true,
	"mohamad":  true,
	"mohammad": true,
	"muhamad":  true,
	"mohammed": true,
	"muhammed": true,
}

const muhammadCanonical = "muhammad"

// Legacy (pre-1972 orthography) letter sequences still common in older
// records, replaced in this order.
var legacySpellings = []struct {
	old, new string
}{
	{"tj", "c"},
	{"dj", "j"},
	{"sj", "sy"},
	{"nj", "ny"},
	{"oe", "u"},
}

// bareToken strips a trailing period, so "ny." and "ny" compare equal.
func bareToken(tok string) string {
	return strings.TrimSuffix(tok, ".")
}

// stripHonorifics removes honorific tokens from the start and end of the
// token list. Two passes, so stacked titles ("ny. hj. ...") at both ends
// are caught.
func stripHonorifics(tokens []string) []string {
	for pass := 0; pass < 2; pass++ {
		if len(tokens) > 1 && honorifics[bareToken(tokens[0])] {
			tokens = tokens[1:]
		}
		if len(tokens) > 1 && honorifics[bareToken(tokens[len(tokens)-1])] {
			tokens = tokens[:len(tokens)-1]
		}
	}
	return tokens
}

// NormalizeName canonicalizes a personal name for comparison. The result
// is for scoring only, never for display.
func NormalizeName(name string) string {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	tokens = stripHonorifics(tokens)

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		bare := bareToken(tok)
		if lineageParticles[bare] {
			break
		}
		if muhammadVariants[bare] {
			out = append(out, muhammadCanonical)
			continue
		}
		out = append(out, bare)
	}

	s := strings.Join(out, " ")
	for _, sub := range legacySpellings {
		s = strings.ReplaceAll(s, sub.old, sub.new)
	}
	return strings.TrimSpace(s)
}
