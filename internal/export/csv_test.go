package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/grading"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/report"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/scoringconfig"
)

func TestWriteResults(t *testing.T) {
	engine := grading.New(scoringconfig.Default(), nil)
	graded := engine.GradeAll([]contracts.PlayerWeekRecord{
		{Player: "J. Smith", Week: "7", Snaps: 60, Targets: 8, Catches: 5, RecYards: 58, RushYards: 23, Drops: 1, Codes: "ER FD C+12"},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, graded))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	header := rows[0]
	assert.Equal(t, "player", header[0])
	assert.Equal(t, "week", header[1])
	assert.Contains(t, header, "code_points")
	assert.Contains(t, header, "cnt_td")
	assert.Contains(t, header, "cnt_nfs")
	assert.Contains(t, header, "code_catch_yards")

	byName := make(map[string]string, len(header))
	for i, h := range header {
		byName[h] = rows[1][i]
	}
	assert.Equal(t, "J. Smith", byName["player"])
	assert.Equal(t, "18", byName["code_points"])
	assert.Equal(t, "2", byName["derived_keyplays"])
	assert.Equal(t, "12", byName["code_catch_yards"])
	assert.Equal(t, "1", byName["cnt_er"])
	assert.Equal(t, "0", byName["cnt_dp"])
	assert.Equal(t, "A", byName["grade"])
	assert.Equal(t, "93.166015625", byName["score"])
}

func TestWriteSummary(t *testing.T) {
	engine := grading.New(scoringconfig.Default(), nil)
	graded := engine.GradeAll([]contracts.PlayerWeekRecord{
		{Player: "J. Smith", Week: "1", Snaps: 40, Targets: 5, Catches: 4, RecYards: 50, Codes: "ER"},
		{Player: "J. Smith", Week: "2", Snaps: 45, Targets: 6, Catches: 5, RecYards: 62, Codes: "TD"},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, report.PlayerSummaries(graded)))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "player", rows[0][0])
	assert.Equal(t, "J. Smith", rows[1][0])
	// rates are written with three decimals
	assert.Regexp(t, `^\d+\.\d{3}$`, rows[1][1])
}
