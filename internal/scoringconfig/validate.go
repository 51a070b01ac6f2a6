package scoringconfig

import "fmt"

// Validate checks a weights config for values the engine cannot use.
func Validate(cfg *Config) error {
	if cfg.Base < 0 || cfg.Base > 100 {
		return fmt.Errorf("base must be within [0, 100], got %v", cfg.Base)
	}

	if cfg.Positive.YardsPerTargetCap <= 0 {
		return fmt.Errorf("positive.yards_per_target_cap must be > 0, got %v", cfg.Positive.YardsPerTargetCap)
	}

	if cfg.Positive.KeyPlaysSqrtCap <= 0 {
		return fmt.Errorf("positive.key_plays_sqrt_cap must be > 0, got %v", cfg.Positive.KeyPlaysSqrtCap)
	}

	weights := map[string]float64{
		"positive.catch_rate":          cfg.Positive.CatchRate,
		"positive.yards":               cfg.Positive.Yards,
		"positive.tds":                 cfg.Positive.TDs,
		"positive.key_plays":           cfg.Positive.KeyPlays,
		"positive.targets":             cfg.Positive.Targets,
		"positive.synergy":             cfg.Positive.Synergy,
		"negative.drops":               cfg.Negative.Drops,
		"negative.loafs":               cfg.Negative.Loafs,
		"negative.missed_assignments":  cfg.Negative.MissedAssignments,
	}
	for name, w := range weights {
		if w < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, w)
		}
	}

	return nil
}
