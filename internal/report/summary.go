package report

import (
	"sort"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/codes"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/grading"
)

// WeekGroups reduces graded rows into one summary per (player, week),
// preserving first-seen order.
func WeekGroups(records []contracts.GradedRecord) []contracts.PlayerWeekSummary {
	type key struct{ player, week string }

	order := make([]key, 0)
	groups := make(map[key]*contracts.PlayerWeekSummary)
	rows := make(map[key]int)

	for _, g := range records {
		k := key{g.Player, g.Week}
		rows[k]++
		s, ok := groups[k]
		if !ok {
			s = &contracts.PlayerWeekSummary{
				Player:     g.Player,
				Week:       g.Week,
				CodeCounts: make(map[codes.Code]int, len(codes.All)),
			}
			groups[k] = s
			order = append(order, k)
		}

		s.Snaps += g.Snaps
		s.Targets += g.Targets
		s.Catches += g.Catches
		s.RecYards += g.RecYards
		s.RushYards += g.RushYards
		s.Touchdowns += g.Touchdowns
		s.Drops += g.Drops
		s.MissedAssignments += g.MissedAssignments
		s.Loafs += g.Loafs
		s.KeyPlays += int(g.KeyPlaysUsed)
		s.CodePoints += g.CodePoints
		for c, n := range g.CodeCounts {
			s.CodeCounts[c] += n
		}

		// AvgScore accumulates the sum here; divided below
		s.AvgScore += g.Score
	}

	out := make([]contracts.PlayerWeekSummary, 0, len(order))
	for _, k := range order {
		s := groups[k]
		if n := rows[k]; n > 0 {
			s.AvgScore /= float64(n)
		}
		s.Grade = grading.Letter(s.AvgScore)
		out = append(out, *s)
	}

	return out
}

// PlayerSummaries reduces graded rows into per-player means, sorted by
// score descending. This is the companion summary table to the detailed
// results CSV.
func PlayerSummaries(records []contracts.GradedRecord) []contracts.PlayerSummary {
	order := make([]string, 0)
	sums := make(map[string]*contracts.PlayerSummary)
	counts := make(map[string]int)

	for _, g := range records {
		s, ok := sums[g.Player]
		if !ok {
			s = &contracts.PlayerSummary{Player: g.Player}
			sums[g.Player] = s
			order = append(order, g.Player)
		}

		s.Score += g.Score
		s.CatchRate += g.CatchRate
		s.YardsPerTarget += g.YardsPerTarget
		s.TargetsPer30 += g.TargetsPer30
		s.KeyPlaysPer30 += g.KeyPlaysPer30
		s.TDsPer30 += g.TDsPer30
		s.DropsRate += g.DropsRate
		s.MAPer30 += g.MAPer30
		s.LoafsPer30 += g.LoafsPer30
		s.CodePoints += g.CodePoints // summed, not averaged
		counts[g.Player]++
	}

	out := make([]contracts.PlayerSummary, 0, len(order))
	for _, player := range order {
		s := sums[player]
		n := float64(counts[player])
		s.Score /= n
		s.CatchRate /= n
		s.YardsPerTarget /= n
		s.TargetsPer30 /= n
		s.KeyPlaysPer30 /= n
		s.TDsPer30 /= n
		s.DropsRate /= n
		s.MAPer30 /= n
		s.LoafsPer30 /= n
		out = append(out, *s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}
