package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/codes"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
)

// resultColumns is the preferred column order for detailed results,
// followed by the yardage aggregates and one cnt_ column per legend code.
var resultColumns = []string{
	"player", "week", "snaps", "targets", "catches", "rec_yards", "rush_yards",
	"touchdowns", "drops", "missed_assignments", "loafs", "key_plays", "codes",
	"code_points", "derived_keyplays",
	"catch_rate", "yards_per_target", "targets_per30", "keyplays_per30",
	"tds_per30", "drops_rate", "ma_per30", "loafs_per30", "score", "grade",
	"code_catch_yards", "code_rush_yards",
}

// WriteResultsFile writes the detailed graded results CSV to path
func WriteResultsFile(path string, records []contracts.GradedRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results csv: %w", err)
	}
	defer f.Close()

	return WriteResults(f, records)
}

// WriteResults writes one row per graded record, in input order
func WriteResults(dst io.Writer, records []contracts.GradedRecord) error {
	w := csv.NewWriter(dst)
	defer w.Flush()

	header := append([]string{}, resultColumns...)
	for _, c := range codes.All {
		header = append(header, "cnt_"+strings.ToLower(string(c)))
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, g := range records {
		row := []string{
			g.Player,
			g.Week,
			strconv.Itoa(g.Snaps),
			strconv.Itoa(g.Targets),
			strconv.Itoa(g.Catches),
			strconv.Itoa(g.RecYards),
			strconv.Itoa(g.RushYards),
			strconv.Itoa(g.Touchdowns),
			strconv.Itoa(g.Drops),
			strconv.Itoa(g.MissedAssignments),
			strconv.Itoa(g.Loafs),
			fnum(g.KeyPlays),
			g.Codes,
			fnum(g.CodePoints),
			strconv.Itoa(g.DerivedKeyPlays),
			fnum(g.CatchRate),
			fnum(g.YardsPerTarget),
			fnum(g.TargetsPer30),
			fnum(g.KeyPlaysPer30),
			fnum(g.TDsPer30),
			fnum(g.DropsRate),
			fnum(g.MAPer30),
			fnum(g.LoafsPer30),
			fnum(g.Score),
			g.Grade,
			strconv.Itoa(g.CodeCatchYards),
			strconv.Itoa(g.CodeRushYards),
		}
		for _, c := range codes.All {
			row = append(row, strconv.Itoa(g.CodeCounts[c]))
		}

		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// WriteSummaryFile writes the per-player summary CSV to path
func WriteSummaryFile(path string, summaries []contracts.PlayerSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary csv: %w", err)
	}
	defer f.Close()

	return WriteSummary(f, summaries)
}

// WriteSummary writes per-player mean rates rounded to three decimals
func WriteSummary(dst io.Writer, summaries []contracts.PlayerSummary) error {
	w := csv.NewWriter(dst)
	defer w.Flush()

	header := []string{
		"player", "score", "catch_rate", "yards_per_target", "targets_per30",
		"keyplays_per30", "tds_per30", "drops_rate", "ma_per30", "loafs_per30",
		"code_points",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, s := range summaries {
		row := []string{
			s.Player,
			f3(s.Score),
			f3(s.CatchRate),
			f3(s.YardsPerTarget),
			f3(s.TargetsPer30),
			f3(s.KeyPlaysPer30),
			f3(s.TDsPer30),
			f3(s.DropsRate),
			f3(s.MAPer30),
			f3(s.LoafsPer30),
			f3(s.CodePoints),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// fnum formats a float with minimal digits
func fnum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// f3 formats a float with three decimals
func f3(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
