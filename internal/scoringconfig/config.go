package scoringconfig

// Config holds the composite-score weights and caps. The defaults are
// the canonical grading formula; a YAML file can override them for
// what-if runs, but production grading uses Default().
type Config struct {
	// Base is the starting value before positive and negative terms
	Base float64 `yaml:"base" json:"base"`

	Positive PositiveWeights `yaml:"positive" json:"positive"`
	Negative NegativeWeights `yaml:"negative" json:"negative"`
}

// PositiveWeights are the additive term weights and their normalizers
type PositiveWeights struct {
	CatchRate float64 `yaml:"catch_rate" json:"catch_rate"` // linear, uncapped

	Yards             float64 `yaml:"yards" json:"yards"`
	YardsPerTargetCap float64 `yaml:"yards_per_target_cap" json:"yards_per_target_cap"` // divisor before the 1.0 cap

	TDs float64 `yaml:"tds" json:"tds"` // tds_per30 capped at 1.0

	KeyPlays        float64 `yaml:"key_plays" json:"key_plays"`
	KeyPlaysSqrtCap float64 `yaml:"key_plays_sqrt_cap" json:"key_plays_sqrt_cap"` // cap on sqrt(keyplays_per30)

	Targets float64 `yaml:"targets" json:"targets"` // targets_per30 capped at 1.0

	Synergy float64 `yaml:"synergy" json:"synergy"` // catch_rate * normalized yards, capped at 1.0
}

// NegativeWeights are the subtractive term weights
type NegativeWeights struct {
	Drops             float64 `yaml:"drops" json:"drops"`
	Loafs             float64 `yaml:"loafs" json:"loafs"`
	MissedAssignments float64 `yaml:"missed_assignments" json:"missed_assignments"` // ma_per30 capped at 1.0
}

// Default returns the canonical weights. These values are load-bearing:
// every published grade was computed with them.
func Default() *Config {
	return &Config{
		Base: 73.0,
		Positive: PositiveWeights{
			CatchRate:         15.0,
			Yards:             1.5,
			YardsPerTargetCap: 8.0,
			TDs:               12.0,
			KeyPlays:          6.0,
			KeyPlaysSqrtCap:   1.33,
			Targets:           4.0,
			Synergy:           1.0,
		},
		Negative: NegativeWeights{
			Drops:             12.0,
			Loafs:             4.0,
			MissedAssignments: 9.0,
		},
	}
}
