package matching

// Service applies the health post's review policy on top of the pure
// ranking: candidates below the review threshold are dropped, the rest
// are tiered for automatic linking or human review.
type Service struct {
	autoThreshold   float64
	reviewThreshold float64
}

func NewService(autoThreshold, reviewThreshold float64) *Service {
	return &Service{autoThreshold: autoThreshold, reviewThreshold: reviewThreshold}
}

// FindMatches ranks the candidates and keeps those at or above the
// review threshold, tagging each with its tier.
func (s *Service) FindMatches(q Query, candidates []Candidate) []RankedMatch {
	ranked := Rank(q, candidates)
	out := make([]RankedMatch, 0, len(ranked))
	for _, m := range ranked {
		if m.Score < s.reviewThreshold {
			continue
		}
		tier := TierReview
		if m.Score >= s.autoThreshold {
			tier = TierAuto
		}
		out = append(out, RankedMatch{Match: m, Tier: tier})
	}
	return out
}
