package report

import (
	"sort"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/grading"
)

// SeasonRollups reduces a season of graded rows into one rollup per
// player: totals, per-week average scores and the season average grade.
// Sorted by average score descending.
func SeasonRollups(records []contracts.GradedRecord) []contracts.SeasonRollup {
	order := make([]string, 0)
	rollups := make(map[string]*contracts.SeasonRollup)
	rowCounts := make(map[string]int)
	weekRows := make(map[string]map[string]int)

	for _, g := range records {
		r, ok := rollups[g.Player]
		if !ok {
			r = &contracts.SeasonRollup{
				Player:     g.Player,
				WeekScores: make(map[string]float64),
			}
			rollups[g.Player] = r
			weekRows[g.Player] = make(map[string]int)
			order = append(order, g.Player)
		}

		r.Snaps += g.Snaps
		r.Targets += g.Targets
		r.Catches += g.Catches
		r.RecYards += g.RecYards
		r.RushYards += g.RushYards
		r.Touchdowns += g.Touchdowns
		r.Drops += g.Drops
		r.KeyPlays += int(g.KeyPlaysUsed)
		r.CodePoints += g.CodePoints

		r.AvgScore += g.Score
		rowCounts[g.Player]++

		// WeekScores accumulates sums; divided below
		r.WeekScores[g.Week] += g.Score
		weekRows[g.Player][g.Week]++
	}

	out := make([]contracts.SeasonRollup, 0, len(order))
	for _, player := range order {
		r := rollups[player]
		if n := rowCounts[player]; n > 0 {
			r.AvgScore /= float64(n)
		}
		for week, n := range weekRows[player] {
			if n > 0 {
				r.WeekScores[week] /= float64(n)
			}
		}
		r.Games = len(r.WeekScores)
		r.Grade = grading.Letter(r.AvgScore)
		out = append(out, *r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgScore > out[j].AvgScore
	})

	return out
}
