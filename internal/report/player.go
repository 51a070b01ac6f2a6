package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/codes"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/logger"
)

// Writer emits player-facing weekly review reports as plain text.
type Writer struct {
	logger *logger.Logger
}

// NewWriter creates a report writer
func NewWriter(log *logger.Logger) *Writer {
	return &Writer{logger: log}
}

// WriteReports writes one review file per (player, week) group into dir.
// File names follow <player>_<week>.txt with spaces replaced.
func (w *Writer) WriteReports(records []contracts.GradedRecord, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, s := range WeekGroups(records) {
		name := strings.ReplaceAll(strings.TrimSpace(s.Player), " ", "_") +
			"_" + strings.TrimSpace(s.Week) + ".txt"
		path := filepath.Join(dir, name)

		if err := os.WriteFile(path, []byte(BuildReview(s)), 0644); err != nil {
			return fmt.Errorf("write report %s: %w", path, err)
		}

		if w.logger != nil {
			w.logger.WithFields(map[string]interface{}{
				"player": s.Player,
				"week":   s.Week,
				"path":   path,
			}).Debug("Wrote player report")
		}
	}

	return nil
}

// BuildReview renders one player-week summary as review text
func BuildReview(s contracts.PlayerWeekSummary) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("PLAYER REVIEW — %s — Week %s", s.Player, s.Week))
	lines = append(lines, strings.Repeat("=", 60))
	lines = append(lines, fmt.Sprintf(
		"Summary: Grade %s (%.1f)  |  Snaps %d  |  Tgts %d  |  Rec %d for %d yds  |  Rush %d yds  |  TD %d",
		s.Grade, s.AvgScore, s.Snaps, s.Targets, s.Catches, s.RecYards, s.RushYards, s.Touchdowns))
	lines = append(lines, fmt.Sprintf(
		"Discipline: Drops %d  |  MAs %d  |  Loafs %d",
		s.Drops, s.MissedAssignments, s.Loafs))
	lines = append(lines, fmt.Sprintf("Key Plays Points (sum): %.1f", s.CodePoints))
	lines = append(lines, "")

	if top := pickTop(s.CodeCounts, codes.PositiveOrder, 7); len(top) > 0 {
		lines = append(lines, "WHAT YOU DID WELL")
		for _, e := range top {
			lines = append(lines, formatCodeLine(e.code, e.count))
		}
		lines = append(lines, "")
	}

	if top := pickTop(s.CodeCounts, codes.NegativeOrder, 7); len(top) > 0 {
		lines = append(lines, "WHERE TO IMPROVE")
		for _, e := range top {
			lines = append(lines, formatCodeLine(e.code, e.count))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "COACHING POINTS")
	for _, c := range coachingPoints(s.CodeCounts) {
		lines = append(lines, "  • "+c)
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

type codeEntry struct {
	code  codes.Code
	count int
}

// pickTop returns the highest-count codes from keys, dropping zeros
func pickTop(counts map[codes.Code]int, keys []codes.Code, topn int) []codeEntry {
	entries := make([]codeEntry, 0, len(keys))
	for _, k := range keys {
		if counts[k] > 0 {
			entries = append(entries, codeEntry{k, counts[k]})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	if len(entries) > topn {
		entries = entries[:topn]
	}
	return entries
}

func formatCodeLine(c codes.Code, count int) string {
	pts := codes.Points[c] * float64(count)
	sign := ""
	if pts >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("  • %s: x%d  (%s%g)", c, count, sign, pts)
}

// coachingPoints picks drill suggestions keyed off the discipline codes
func coachingPoints(counts map[codes.Code]int) []string {
	var points []string

	if counts[codes.DP] > 0 {
		points = append(points, "Jugs work: 50 high-speed catches, 20 contested — focus eyes to tuck.")
	}
	if counts[codes.MA] > 0 {
		points = append(points, "Walk-through: alignment, split, and route depth for your assignments.")
	}
	if counts[codes.L]+counts[codes.NFS] > 0 {
		points = append(points, "Finish every rep on film — sprint off screen, block through whistle.")
	}
	if counts[codes.W] > 0 {
		points = append(points, "Strike timing on stalk block — inside hand fit, under control into contact.")
	}
	if len(points) == 0 {
		points = append(points, "Keep stacking habits — practice full speed reps.")
	}

	return points
}
