package matching

import (
	"sort"
	"time"
)

// Weighting of the composite score. Name similarity dominates because
// register names are the field least likely to be missing; the NIK
// short-circuit sits above all three.
const (
	nameWeight      = 0.40
	birthDateWeight = 0.35
	guardianWeight  = 0.25

	// Jaro-Winkler prefix scale used for both name sub-scores.
	prefixScale = 0.1

	// Sub-score for birth dates in the same calendar year within 30
	// days of each other (day/month transcription slips).
	nearBirthDateScore = 0.6
	nearBirthDateSpan  = 30 * 24 * time.Hour

	// Guardian comparison is neutral when either record lacks one.
	neutralGuardianScore = 0.5
)

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func birthDateScore(a, b time.Time) float64 {
	if sameDate(a, b) {
		return 1
	}
	if a.Year() == b.Year() {
		d := a.Sub(b)
		if d < 0 {
			d = -d
		}
		if d <= nearBirthDateSpan {
			return nearBirthDateScore
		}
	}
	return 0
}

func guardianScore(a, b string) float64 {
	na, nb := NormalizeName(a), NormalizeName(b)
	if na == "" || nb == "" {
		return neutralGuardianScore
	}
	return JaroWinkler(na, nb, prefixScale)
}

// ScoreCandidate computes the composite match score for one candidate.
// When both records carry a NIK, equality decides the outcome
// exclusively and no fuzzy scoring runs.
func ScoreCandidate(q Query, c Candidate) Match {
	m := Match{CandidateID: c.ID}

	if q.NIK != "" && c.NIK != "" {
		if q.NIK == c.NIK {
			m.Score = 1
			m.NameScore = 1
			m.BirthDateScore = 1
			m.GuardianScore = 1
			m.NIKDecided = true
		}
		return m
	}

	m.NameScore = JaroWinkler(NormalizeName(q.Name), NormalizeName(c.Name), prefixScale)
	m.BirthDateScore = birthDateScore(q.BirthDate, c.BirthDate)
	m.GuardianScore = guardianScore(q.GuardianName, c.GuardianName)
	m.Score = nameWeight*m.NameScore + birthDateWeight*m.BirthDateScore + guardianWeight*m.GuardianScore
	return m
}

// Rank scores every candidate and returns the results ordered by
// composite score, highest first. Ties keep candidate input order. An
// empty candidate list yields an empty result list; ranking never
// errors.
func Rank(q Query, candidates []Candidate) []Match {
	out := make([]Match, len(candidates))
	for i, c := range candidates {
		out[i] = ScoreCandidate(q, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
