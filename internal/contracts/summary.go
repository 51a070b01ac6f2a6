package contracts

import "github.com/mitchelldawkinsjr/GH-Flim-Review/internal/codes"

// PlayerWeekSummary is a pure reduction over one player's graded rows
// for a single week, used by player-facing reports.
type PlayerWeekSummary struct {
	Player string `json:"player"`
	Week   string `json:"week"`

	Snaps             int `json:"snaps"`
	Targets           int `json:"targets"`
	Catches           int `json:"catches"`
	RecYards          int `json:"rec_yards"`
	RushYards         int `json:"rush_yards"`
	Touchdowns        int `json:"touchdowns"`
	Drops             int `json:"drops"`
	MissedAssignments int `json:"missed_assignments"`
	Loafs             int `json:"loafs"`
	KeyPlays          int `json:"key_plays"`

	AvgScore   float64            `json:"avg_score"`
	Grade      string             `json:"grade"`
	CodePoints float64            `json:"code_points"`
	CodeCounts map[codes.Code]int `json:"code_counts"`
}

// PlayerSummary is a per-player mean over graded rows, mirroring the
// summary table written next to the detailed results.
type PlayerSummary struct {
	Player string `json:"player"`

	Score          float64 `json:"score"`
	CatchRate      float64 `json:"catch_rate"`
	YardsPerTarget float64 `json:"yards_per_target"`
	TargetsPer30   float64 `json:"targets_per30"`
	KeyPlaysPer30  float64 `json:"keyplays_per30"`
	TDsPer30       float64 `json:"tds_per30"`
	DropsRate      float64 `json:"drops_rate"`
	MAPer30        float64 `json:"ma_per30"`
	LoafsPer30     float64 `json:"loafs_per30"`
	CodePoints     float64 `json:"code_points"`
}

// SeasonRollup aggregates a player's whole season for dashboards.
type SeasonRollup struct {
	Player string `json:"player"`
	Games  int    `json:"games"`

	Snaps      int     `json:"snaps"`
	Targets    int     `json:"targets"`
	Catches    int     `json:"catches"`
	RecYards   int     `json:"rec_yards"`
	RushYards  int     `json:"rush_yards"`
	Touchdowns int     `json:"touchdowns"`
	Drops      int     `json:"drops"`
	KeyPlays   int     `json:"key_plays"`
	CodePoints float64 `json:"code_points"`

	AvgScore float64 `json:"avg_score"`
	Grade    string  `json:"grade"`

	// WeekScores maps week label to that week's average score
	WeekScores map[string]float64 `json:"week_scores"`
}
