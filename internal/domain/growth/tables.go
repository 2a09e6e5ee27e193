package growth

import (
	"math"
	"sync/atomic"
)

const (
	// Age-indexed tables cover days 0-1856, one row per day.
	maxAgeDays   = 1856
	ageRows      = maxAgeDays + 1
	daysPerMonth = 30.4375

	// The weight-for-height table covers 45.0-120.0 cm in 0.1 cm steps.
	minHeightCM = 45.0
	maxHeightCM = 120.0
	heightRows  = 751
)

// referenceTable is a fully interpolated per-sex, per-indicator LMS
// table. Tables are immutable once built.
type referenceTable struct {
	rows []lms
}

// newReferenceTable expands anchor rows into the full table. Row i sits
// at anchor position i/rowsPerAnchor; its parameters are linearly
// interpolated between the two bounding anchors.
func newReferenceTable(anchors []lms, rows int, rowsPerAnchor float64) *referenceTable {
	t := &referenceTable{rows: make([]lms, rows)}
	for i := range t.rows {
		pos := float64(i) / rowsPerAnchor
		lo := int(pos)
		if lo >= len(anchors)-1 {
			t.rows[i] = anchors[len(anchors)-1]
			continue
		}
		frac := pos - float64(lo)
		a, b := anchors[lo], anchors[lo+1]
		t.rows[i] = lms{
			L: a.L + (b.L-a.L)*frac,
			M: a.M + (b.M-a.M)*frac,
			S: a.S + (b.S-a.S)*frac,
		}
	}
	return t
}

// at returns the row at index i, or false when i is outside the table.
func (t *referenceTable) at(i int) (lms, bool) {
	if i < 0 || i >= len(t.rows) {
		return lms{}, false
	}
	return t.rows[i], true
}

// Six tables: two sexes times three indicators, built lazily on first
// use. The cache is an atomic check-and-set rather than a lock: a
// concurrent first use may build the same table twice, which is harmless
// (pure function of fixed anchor data), and every read after the first
// publish is lock-free.
var tableCache [2][3]atomic.Pointer[referenceTable]

func sexSlot(sex Sex) int {
	if sex == SexFemale {
		return 1
	}
	return 0
}

func indicatorSlot(ind Indicator) int {
	switch ind {
	case HeightForAge:
		return 1
	case WeightForHeight:
		return 2
	default:
		return 0
	}
}

func buildTable(sex Sex, ind Indicator) *referenceTable {
	male := sex != SexFemale
	switch ind {
	case HeightForAge:
		if male {
			return newReferenceTable(heightForAgeAnchorsMale[:], ageRows, daysPerMonth)
		}
		return newReferenceTable(heightForAgeAnchorsFemale[:], ageRows, daysPerMonth)
	case WeightForHeight:
		if male {
			return newReferenceTable(weightForHeightAnchorsMale[:], heightRows, 10)
		}
		return newReferenceTable(weightForHeightAnchorsFemale[:], heightRows, 10)
	default:
		if male {
			return newReferenceTable(weightForAgeAnchorsMale[:], ageRows, daysPerMonth)
		}
		return newReferenceTable(weightForAgeAnchorsFemale[:], ageRows, daysPerMonth)
	}
}

// referenceFor returns the memoized table for a sex and indicator.
func referenceFor(sex Sex, ind Indicator) *referenceTable {
	slot := &tableCache[sexSlot(sex)][indicatorSlot(ind)]
	if t := slot.Load(); t != nil {
		return t
	}
	slot.CompareAndSwap(nil, buildTable(sex, ind))
	return slot.Load()
}

// heightIndex maps a height in cm onto the 0.1 cm row grid.
func heightIndex(heightCM float64) int {
	return int(math.Round((heightCM - minHeightCM) * 10))
}

// ReferenceRow is one interpolated table row as exposed to collaborators
// (the chart layer reads these; it derives SD curves itself).
type ReferenceRow struct {
	Day      int     `json:"day,omitempty"`
	HeightCM float64 `json:"height_cm,omitempty"`
	L        float64 `json:"l"`
	M        float64 `json:"m"`
	S        float64 `json:"s"`
}

// Reference returns the full interpolated table for a sex and indicator.
func Reference(sex Sex, ind Indicator) []ReferenceRow {
	t := referenceFor(sex, ind)
	out := make([]ReferenceRow, len(t.rows))
	for i, p := range t.rows {
		row := ReferenceRow{L: p.L, M: p.M, S: p.S}
		if ind == WeightForHeight {
			row.HeightCM = minHeightCM + float64(i)/10
		} else {
			row.Day = i
		}
		out[i] = row
	}
	return out
}
