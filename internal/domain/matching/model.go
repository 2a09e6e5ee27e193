package matching

import (
	"time"

	"github.com/google/uuid"
)

// Query is the incoming registration being checked for duplicates.
// BirthDate arrives already normalized by the caller; this package does
// no date parsing. NIK is the national identity number and is optional —
// the register is mostly under-fives, many of whom have none yet.
type Query struct {
	Name         string
	BirthDate    time.Time
	GuardianName string
	NIK          string
}

// Candidate is an existing identity record in the health post's
// register.
type Candidate struct {
	ID           uuid.UUID
	Name         string
	BirthDate    time.Time
	GuardianName string
	NIK          string
}

// Match scores one candidate against the query. Score is the weighted
// composite in [0, 1]; the sub-scores are reported so the review UI can
// explain the ranking. NIKDecided marks a result settled purely by
// identity-number equality.
type Match struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Score       float64   `json:"score"`

	NameScore      float64 `json:"name_score"`
	BirthDateScore float64 `json:"birth_date_score"`
	GuardianScore  float64 `json:"guardian_score"`

	NIKDecided bool `json:"nik_decided"`
}

// Tier is the caller-side recommendation the service attaches once the
// composite score clears a configured threshold.
type Tier string

const (
	TierAuto   Tier = "auto"
	TierReview Tier = "review"
)

// RankedMatch is a Match that cleared at least the review threshold.
type RankedMatch struct {
	Match
	Tier Tier `json:"tier"`
}
