package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/grading"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/scoringconfig"
)

func gradeRows(t *testing.T, recs ...contracts.PlayerWeekRecord) []contracts.GradedRecord {
	t.Helper()
	return grading.New(scoringconfig.Default(), nil).GradeAll(recs)
}

func TestWeekGroups_SumsAndAverages(t *testing.T) {
	graded := gradeRows(t,
		contracts.PlayerWeekRecord{Player: "J. Smith", Week: "7", Snaps: 30, Targets: 4, Catches: 3, RecYards: 40, Codes: "ER FD"},
		contracts.PlayerWeekRecord{Player: "J. Smith", Week: "7", Snaps: 20, Targets: 2, Catches: 1, RecYards: 11, Codes: "GR"},
		contracts.PlayerWeekRecord{Player: "A. Brown", Week: "7", Snaps: 40, Targets: 5, Catches: 4, RecYards: 55, Codes: "TD"},
	)

	groups := WeekGroups(graded)
	require.Len(t, groups, 2)

	smith := groups[0]
	assert.Equal(t, "J. Smith", smith.Player)
	assert.Equal(t, 50, smith.Snaps)
	assert.Equal(t, 6, smith.Targets)
	assert.Equal(t, 4, smith.Catches)
	assert.Equal(t, 51, smith.RecYards)
	assert.Equal(t, 3, smith.KeyPlays) // ER+FD then GR, all derived
	assert.InDelta(t, (graded[0].Score+graded[1].Score)/2, smith.AvgScore, 1e-9)
	assert.Equal(t, grading.Letter(smith.AvgScore), smith.Grade)
}

func TestPlayerSummaries_MeansAndSort(t *testing.T) {
	graded := gradeRows(t,
		contracts.PlayerWeekRecord{Player: "Low", Week: "1", Snaps: 30, Targets: 6, Drops: 4, Codes: "MA MA DP"},
		contracts.PlayerWeekRecord{Player: "High", Week: "1", Snaps: 30, Targets: 6, Catches: 6, RecYards: 90, Touchdowns: 1, Codes: "TD SC"},
		contracts.PlayerWeekRecord{Player: "High", Week: "2", Snaps: 30, Targets: 5, Catches: 4, RecYards: 60, Codes: "ER"},
	)

	summaries := PlayerSummaries(graded)
	require.Len(t, summaries, 2)

	assert.Equal(t, "High", summaries[0].Player)
	assert.Equal(t, "Low", summaries[1].Player)
	assert.InDelta(t, (graded[1].Score+graded[2].Score)/2, summaries[0].Score, 1e-9)
	// code points are summed across rows, not averaged
	assert.InDelta(t, graded[1].CodePoints+graded[2].CodePoints, summaries[0].CodePoints, 1e-9)
}

func TestSeasonRollups(t *testing.T) {
	graded := gradeRows(t,
		contracts.PlayerWeekRecord{Player: "J. Smith", Week: "1", Snaps: 40, Targets: 5, Catches: 4, RecYards: 50, Codes: "ER"},
		contracts.PlayerWeekRecord{Player: "J. Smith", Week: "2", Snaps: 45, Targets: 6, Catches: 5, RecYards: 62, Codes: "TD FD"},
	)

	rollups := SeasonRollups(graded)
	require.Len(t, rollups, 1)

	r := rollups[0]
	assert.Equal(t, 2, r.Games)
	assert.Equal(t, 85, r.Snaps)
	assert.Equal(t, 112, r.RecYards)
	assert.Len(t, r.WeekScores, 2)
	assert.InDelta(t, graded[0].Score, r.WeekScores["1"], 1e-9)
	assert.InDelta(t, (graded[0].Score+graded[1].Score)/2, r.AvgScore, 1e-9)
	assert.Equal(t, grading.Letter(r.AvgScore), r.Grade)
}

func TestWriteReports(t *testing.T) {
	graded := gradeRows(t,
		contracts.PlayerWeekRecord{Player: "J. Smith", Week: "7", Snaps: 60, Targets: 8, Catches: 5, RecYards: 58, Drops: 1, Codes: "ER FD C+12 MA"},
	)

	dir := t.TempDir()
	w := NewWriter(nil)
	require.NoError(t, w.WriteReports(graded, dir))

	data, err := os.ReadFile(filepath.Join(dir, "J._Smith_7.txt"))
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "PLAYER REVIEW — J. Smith — Week 7")
	assert.Contains(t, text, "WHAT YOU DID WELL")
	assert.Contains(t, text, "WHERE TO IMPROVE")
	assert.Contains(t, text, "ER: x1")
	assert.Contains(t, text, "MA: x1")
	assert.Contains(t, text, "COACHING POINTS")
	assert.Contains(t, text, "Walk-through") // MA present triggers assignment drill
}

func TestBuildReview_CleanWeekCoaching(t *testing.T) {
	graded := gradeRows(t,
		contracts.PlayerWeekRecord{Player: "A. Brown", Week: "3", Snaps: 40, Targets: 4, Catches: 4, RecYards: 48, Codes: "GR GB"},
	)

	text := BuildReview(WeekGroups(graded)[0])
	assert.Contains(t, text, "Keep stacking habits")
	assert.NotContains(t, text, "WHERE TO IMPROVE")
}
