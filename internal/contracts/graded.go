package contracts

import "github.com/mitchelldawkinsjr/GH-Flim-Review/internal/codes"

// GradedRecord is the grading engine output for one PlayerWeekRecord.
// The embedded record carries the post-override discipline counters.
// Downstream reporting owns these records exclusively; they are never
// mutated after creation.
type GradedRecord struct {
	PlayerWeekRecord

	// Rate statistics (safe division: zero denominator yields 0.0)
	CatchRate      float64 `json:"catch_rate"`
	YardsPerTarget float64 `json:"yards_per_target"`
	TDsPer30       float64 `json:"tds_per30"`
	KeyPlaysPer30  float64 `json:"keyplays_per30"`
	TargetsPer30   float64 `json:"targets_per30"`
	DropsRate      float64 `json:"drops_rate"`
	LoafsPer30     float64 `json:"loafs_per30"`
	MAPer30        float64 `json:"ma_per30"`

	// Composite result
	Score float64 `json:"score"`
	Grade string  `json:"grade"`

	// Annotation aggregates
	CodePoints      float64            `json:"code_points"`
	CodeCounts      map[codes.Code]int `json:"code_counts"`
	CodeCatchYards  int                `json:"code_catch_yards"`
	CodeRushYards   int                `json:"code_rush_yards"`
	DerivedKeyPlays int                `json:"derived_keyplays"`

	// KeyPlaysUsed is the resolved key-play count that fed the per-30 rate
	KeyPlaysUsed float64 `json:"keyplays_used"`
}
