package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestScoreCandidate_ExactDuplicate(t *testing.T) {
	q := Query{Name: "Siti Aminah", BirthDate: date(2023, 4, 12), GuardianName: "Dewi Lestari"}
	c := Candidate{ID: uuid.New(), Name: "Ny. Siti Aminah", BirthDate: date(2023, 4, 12), GuardianName: "DEWI LESTARI"}

	m := ScoreCandidate(q, c)
	if m.NameScore != 1 || m.BirthDateScore != 1 || m.GuardianScore != 1 {
		t.Errorf("sub-scores %+v, want all 1", m)
	}
	if m.Score != nameWeight+birthDateWeight+guardianWeight {
		t.Errorf("composite %v, want 1", m.Score)
	}
	if m.NIKDecided {
		t.Error("no NIK on either side: flag must be false")
	}
}

func TestScoreCandidate_NIKOverride(t *testing.T) {
	// Divergent name and birth date; the identity number decides anyway.
	q := Query{Name: "Budi Santoso", BirthDate: date(2022, 1, 1), NIK: "3275014403230001"}
	c := Candidate{ID: uuid.New(), Name: "Agus Wijaya", BirthDate: date(2024, 9, 30), NIK: "3275014403230001"}

	m := ScoreCandidate(q, c)
	if m.Score != 1 || !m.NIKDecided {
		t.Errorf("matching NIK: got %+v, want score 1 with flag", m)
	}
	if m.NameScore != 1 || m.BirthDateScore != 1 || m.GuardianScore != 1 {
		t.Errorf("matching NIK must force sub-scores to 1, got %+v", m)
	}
}

func TestScoreCandidate_NIKMismatch(t *testing.T) {
	// Identical everything except the identity number: no match.
	q := Query{Name: "Siti Aminah", BirthDate: date(2023, 4, 12), GuardianName: "Dewi", NIK: "3275014403230001"}
	c := Candidate{ID: uuid.New(), Name: "Siti Aminah", BirthDate: date(2023, 4, 12), GuardianName: "Dewi", NIK: "3275014403230002"}

	m := ScoreCandidate(q, c)
	if m.Score != 0 || m.NIKDecided {
		t.Errorf("mismatched NIK: got %+v, want score 0 without flag", m)
	}
}

func TestScoreCandidate_NIKOnOneSideOnly(t *testing.T) {
	q := Query{Name: "Siti Aminah", BirthDate: date(2023, 4, 12), NIK: "3275014403230001"}
	c := Candidate{ID: uuid.New(), Name: "Siti Aminah", BirthDate: date(2023, 4, 12)}

	// Candidate has no NIK: fall through to fuzzy scoring.
	m := ScoreCandidate(q, c)
	if m.NIKDecided {
		t.Error("one-sided NIK must not decide the match")
	}
	if m.Score == 0 {
		t.Error("expected fuzzy scoring to run")
	}
}

func TestBirthDateScore(t *testing.T) {
	cases := []struct {
		name string
		a, b time.Time
		want float64
	}{
		{"exact", date(2023, 4, 12), date(2023, 4, 12), 1},
		{"same year within 30 days", date(2023, 4, 12), date(2023, 5, 2), 0.6},
		{"same year beyond 30 days", date(2023, 1, 1), date(2023, 12, 1), 0},
		{"adjacent years within 30 days", date(2023, 12, 30), date(2024, 1, 5), 0},
		{"different year", date(2022, 4, 12), date(2023, 4, 12), 0},
	}
	for _, tc := range cases {
		if got := birthDateScore(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: birthDateScore = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestGuardianScore_NeutralWhenMissing(t *testing.T) {
	if got := guardianScore("", "Dewi"); got != neutralGuardianScore {
		t.Errorf("missing query guardian: %v, want %v", got, neutralGuardianScore)
	}
	if got := guardianScore("Dewi", ""); got != neutralGuardianScore {
		t.Errorf("missing candidate guardian: %v, want %v", got, neutralGuardianScore)
	}
}

func TestRank_OrderAndStability(t *testing.T) {
	q := Query{Name: "Siti Aminah", BirthDate: date(2023, 4, 12), GuardianName: "Dewi"}
	exact := Candidate{ID: uuid.New(), Name: "Siti Aminah", BirthDate: date(2023, 4, 12), GuardianName: "Dewi"}
	near := Candidate{ID: uuid.New(), Name: "Siti Aminha", BirthDate: date(2023, 4, 12), GuardianName: "Dewi"}
	far := Candidate{ID: uuid.New(), Name: "Agus Wijaya", BirthDate: date(2020, 1, 1)}

	ranked := Rank(q, []Candidate{far, near, exact})
	if len(ranked) != 3 {
		t.Fatalf("got %d results, want 3", len(ranked))
	}
	if ranked[0].CandidateID != exact.ID || ranked[1].CandidateID != near.ID || ranked[2].CandidateID != far.ID {
		t.Errorf("wrong order: %+v", ranked)
	}

	// Identical candidates keep input order.
	twinA := Candidate{ID: uuid.New(), Name: "Siti Aminah", BirthDate: date(2023, 4, 12), GuardianName: "Dewi"}
	twinB := Candidate{ID: uuid.New(), Name: "Siti Aminah", BirthDate: date(2023, 4, 12), GuardianName: "Dewi"}
	ranked = Rank(q, []Candidate{twinA, twinB})
	if ranked[0].CandidateID != twinA.ID || ranked[1].CandidateID != twinB.ID {
		t.Error("equal scores must preserve candidate order")
	}
}

func TestRank_EmptyCandidates(t *testing.T) {
	q := Query{Name: "Siti", BirthDate: date(2023, 4, 12)}
	if got := Rank(q, nil); len(got) != 0 {
		t.Errorf("got %d results for empty candidate list", len(got))
	}
}
