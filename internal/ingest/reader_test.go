package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Player", "player"},
		{"Rec Yards", "rec_yards"},
		{"rec_yards", "rec_yards"},
		{"RecYards", "rec_yards"}, // glued spelling maps through the alias table
		{"Missed Assignments", "missed_assignments"},
		{"missedassignments", "missed_assignments"},
		{"  Snaps  ", "snaps"},
		{"rush__yards", "rush_yards"},
		{"_loafs_", "loafs"},
		{"keyplays", "key_plays"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHeader(tt.raw), "raw %q", tt.raw)
	}
}

const sampleCSV = `Player,Week,Snaps,Targets,Catches,Rec Yards,Rush Yards,Touchdowns,Drops,Missed Assignments,Loafs,Key Plays,Codes
J. Smith,7,60,8,5,58,23,0,1,0,0,,ER FD C+12
A. Brown,7,44,6,4,51,0,1,0,2,1,3,TD GR MA
`

func TestRead_SampleSheet(t *testing.T) {
	r := NewReader(nil)
	records, err := r.Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "J. Smith", first.Player)
	assert.Equal(t, "7", first.Week)
	assert.Equal(t, 60, first.Snaps)
	assert.Equal(t, 58, first.RecYards)
	assert.Equal(t, 23, first.RushYards)
	assert.Equal(t, 0.0, first.KeyPlays)
	assert.Equal(t, "ER FD C+12", first.Codes)

	second := records[1]
	assert.Equal(t, 3.0, second.KeyPlays)
	assert.Equal(t, 2, second.MissedAssignments)
}

func TestRead_MergesSplitKeyPlayColumns(t *testing.T) {
	sheet := `player,week,snaps,targets,catches,rec_yards,rush_yards,touchdowns,drops,missed_assignments,loafs,Key Play ++,Key Play --
J. Smith,7,60,8,5,58,23,0,1,0,0,(ER) (C+12),(MA)
`
	r := NewReader(nil)
	records, err := r.Read(strings.NewReader(sheet))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "(ER) (C+12) (MA)", records[0].Codes)
}

func TestRead_AppendsSplitColumnsToExistingCodes(t *testing.T) {
	sheet := `player,week,snaps,targets,catches,rec_yards,rush_yards,touchdowns,drops,missed_assignments,loafs,codes,key play ++
J. Smith,7,60,8,5,58,23,0,1,0,0,FD,ER
`
	r := NewReader(nil)
	records, err := r.Read(strings.NewReader(sheet))
	require.NoError(t, err)

	assert.Equal(t, "FD ER", records[0].Codes)
}

func TestRead_MissingColumnsRejectBatch(t *testing.T) {
	sheet := `week,snaps
7,60
`
	r := NewReader(nil)
	_, err := r.Read(strings.NewReader(sheet))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player")
	assert.Contains(t, err.Error(), "missing required columns")
}

func TestRead_LenientNumericCoercion(t *testing.T) {
	sheet := `player,week,snaps,targets,catches,rec_yards,rush_yards,touchdowns,drops,missed_assignments,loafs
J. Smith,7,abc,8,5,58.5,,0,1,0,0
`
	r := NewReader(nil)
	records, err := r.Read(strings.NewReader(sheet))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 0, records[0].Snaps)     // non-numeric degrades to 0
	assert.Equal(t, 58, records[0].RecYards) // float cell truncates
	assert.Equal(t, 0, records[0].RushYards) // empty cell
}

func TestRead_SkipsBlankRows(t *testing.T) {
	sheet := `player,week,snaps,targets,catches,rec_yards,rush_yards,touchdowns,drops,missed_assignments,loafs
J. Smith,7,60,8,5,58,23,0,1,0,0
,,,,,,,,,,
`
	r := NewReader(nil)
	records, err := r.Read(strings.NewReader(sheet))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRead_EmptyInput(t *testing.T) {
	r := NewReader(nil)
	_, err := r.Read(strings.NewReader(""))
	assert.Error(t, err)
}
