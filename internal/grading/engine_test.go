package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/codes"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/scoringconfig"
)

func newEngine() *Engine {
	return New(scoringconfig.Default(), nil)
}

func TestGrade_EndToEnd(t *testing.T) {
	rec := contracts.PlayerWeekRecord{
		Player:     "J. Smith",
		Week:       "7",
		Snaps:      60,
		Targets:    8,
		Catches:    5,
		RecYards:   58,
		RushYards:  23,
		Touchdowns: 0,
		Drops:      1,
		Codes:      "ER FD C+12",
	}

	g := newEngine().Grade(rec)

	assert.InDelta(t, 18.0, g.CodePoints, 1e-9) // 7 + 5 + 6
	assert.Equal(t, 2, g.DerivedKeyPlays)       // ER, FD
	assert.InDelta(t, 0.625, g.CatchRate, 1e-9)
	assert.InDelta(t, 10.125, g.YardsPerTarget, 1e-9)
	assert.InDelta(t, 1.0, g.KeyPlaysPer30, 1e-9)
	assert.InDelta(t, 4.0, g.TargetsPer30, 1e-9)
	assert.InDelta(t, 0.125, g.DropsRate, 1e-9)

	// Straight re-derivation of the formula:
	// pos = 15*0.625 + 1.5*min(10.125/8,1) + 0 + 6*min(sqrt(1),1.33)
	//     + 4*min(4,1) + 1*min(0.625*1.265625,1) = 21.666015625
	// neg = 12*0.125 = 1.5
	// score = 73 + 21.666015625 - 1.5
	assert.InDelta(t, 93.166015625, g.Score, 1e-9)
	assert.Equal(t, "A", g.Grade)
}

func TestGrade_Determinism(t *testing.T) {
	rec := contracts.PlayerWeekRecord{
		Player: "A. Brown", Week: "3",
		Snaps: 44, Targets: 6, Catches: 4, RecYards: 51,
		Drops: 1, Codes: "GR GB C+9 MA L W",
	}

	e := newEngine()
	first := e.Grade(rec)
	second := e.Grade(rec)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Grade, second.Grade)
	assert.Equal(t, first.CodeCounts, second.CodeCounts)
}

func TestGrade_ClampInvariant(t *testing.T) {
	tests := []struct {
		name string
		rec  contracts.PlayerWeekRecord
	}{
		{"all zero", contracts.PlayerWeekRecord{}},
		{"monster game", contracts.PlayerWeekRecord{
			Snaps: 30, Targets: 30, Catches: 30, RecYards: 400,
			Touchdowns: 30, KeyPlays: 30, Codes: "TD TD TD TD SC SC P P",
		}},
		{"disaster game", contracts.PlayerWeekRecord{
			Snaps: 30, Targets: 10, Drops: 10,
			Codes: "MA MA MA MA MA L L L L DP DP DP",
		}},
		{"negative snaps", contracts.PlayerWeekRecord{Snaps: -5, Targets: 3, Drops: 3}},
	}

	e := newEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := e.Grade(tt.rec)
			assert.GreaterOrEqual(t, g.Score, 0.0)
			assert.LessOrEqual(t, g.Score, 100.0)
			assert.Equal(t, Letter(g.Score), g.Grade)
		})
	}
}

func TestGrade_SnapGating(t *testing.T) {
	rec := contracts.PlayerWeekRecord{
		Player: "B. Jones", Week: "2",
		Snaps:             0,
		MissedAssignments: 4,
		Loafs:             3,
	}

	g := newEngine().Grade(rec)

	assert.Equal(t, 0, g.MissedAssignments)
	assert.Equal(t, 0, g.Loafs)
	assert.Zero(t, g.MAPer30)
	assert.Zero(t, g.LoafsPer30)
}

func TestGrade_AnnotationOverridesDiscipline(t *testing.T) {
	rec := contracts.PlayerWeekRecord{
		Player: "C. Davis", Week: "5",
		Snaps:             50,
		MissedAssignments: 9, // stale sheet column
		Loafs:             7,
		Codes:             "MA MA L ER",
	}

	g := newEngine().Grade(rec)

	assert.Equal(t, 2, g.MissedAssignments)
	assert.Equal(t, 1, g.Loafs)
}

func TestGrade_EmptyCodesKeepsColumns(t *testing.T) {
	rec := contracts.PlayerWeekRecord{
		Snaps: 50, MissedAssignments: 2, Loafs: 1, Codes: "   ",
	}

	g := newEngine().Grade(rec)

	// Blank annotation must not zero the tabulated columns
	assert.Equal(t, 2, g.MissedAssignments)
	assert.Equal(t, 1, g.Loafs)
}

func TestGrade_SafeDivision(t *testing.T) {
	rec := contracts.PlayerWeekRecord{
		Snaps: 40, Targets: 0, Catches: 0, RecYards: 12, Drops: 2,
	}

	g := newEngine().Grade(rec)

	assert.Equal(t, 0.0, g.CatchRate)
	assert.Equal(t, 0.0, g.DropsRate)
	assert.Equal(t, 0.0, g.YardsPerTarget)
	assert.False(t, g.Score != g.Score, "score must not be NaN")
}

func TestGrade_KeyPlayFallback(t *testing.T) {
	rec := contracts.PlayerWeekRecord{
		Snaps:    60,
		KeyPlays: 0, // absent
		Codes:    "TD SC ER",
	}

	g := newEngine().Grade(rec)

	assert.Equal(t, 3, g.DerivedKeyPlays)
	assert.InDelta(t, 3.0, g.KeyPlaysUsed, 1e-9)
	assert.InDelta(t, 1.5, g.KeyPlaysPer30, 1e-9) // 3 * 30 / 60
}

func TestGrade_ExplicitKeyPlaysWin(t *testing.T) {
	rec := contracts.PlayerWeekRecord{
		Snaps:    60,
		KeyPlays: 5,
		Codes:    "TD SC ER",
	}

	g := newEngine().Grade(rec)

	assert.InDelta(t, 5.0, g.KeyPlaysUsed, 1e-9)
	assert.InDelta(t, 2.5, g.KeyPlaysPer30, 1e-9)
}

func TestGrade_NegativeKeyPlaysTreatedAsAbsent(t *testing.T) {
	rec := contracts.PlayerWeekRecord{
		Snaps:    30,
		KeyPlays: -2,
		Codes:    "GR GB",
	}

	g := newEngine().Grade(rec)
	assert.InDelta(t, 2.0, g.KeyPlaysUsed, 1e-9)
}

func TestLetter_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "A"}, {90, "A"}, {89.999, "B"}, {80, "B"},
		{79.999, "C"}, {70, "C"}, {69.999, "D"}, {60, "D"},
		{59.999, "F"}, {0, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Letter(tt.score), "score %v", tt.score)
	}
}

func TestGrade_CodeCountsFlattened(t *testing.T) {
	g := newEngine().Grade(contracts.PlayerWeekRecord{Snaps: 20, Codes: "TD"})

	require.Len(t, g.CodeCounts, len(codes.All))
	assert.Equal(t, 1, g.CodeCounts[codes.TD])
	assert.Equal(t, 0, g.CodeCounts[codes.DP])
}

func TestGradeAll_PreservesOrder(t *testing.T) {
	recs := []contracts.PlayerWeekRecord{
		{Player: "A", Week: "1", Snaps: 10},
		{Player: "B", Week: "1", Snaps: 20},
		{Player: "A", Week: "2", Snaps: 30},
	}

	graded := newEngine().GradeAll(recs)

	require.Len(t, graded, 3)
	assert.Equal(t, "A", graded[0].Player)
	assert.Equal(t, "B", graded[1].Player)
	assert.Equal(t, "2", graded[2].Week)
}
