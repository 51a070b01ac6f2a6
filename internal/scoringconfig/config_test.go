package scoringconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CanonicalValues(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 73.0, cfg.Base)
	assert.Equal(t, 15.0, cfg.Positive.CatchRate)
	assert.Equal(t, 1.5, cfg.Positive.Yards)
	assert.Equal(t, 8.0, cfg.Positive.YardsPerTargetCap)
	assert.Equal(t, 12.0, cfg.Positive.TDs)
	assert.Equal(t, 6.0, cfg.Positive.KeyPlays)
	assert.Equal(t, 1.33, cfg.Positive.KeyPlaysSqrtCap)
	assert.Equal(t, 4.0, cfg.Positive.Targets)
	assert.Equal(t, 1.0, cfg.Positive.Synergy)
	assert.Equal(t, 12.0, cfg.Negative.Drops)
	assert.Equal(t, 4.0, cfg.Negative.Loafs)
	assert.Equal(t, 9.0, cfg.Negative.MissedAssignments)

	require.NoError(t, Validate(cfg))
}

func TestLoad_ValidYAML(t *testing.T) {
	yamlData := `base: 70.0
positive:
  catch_rate: 10.0
  yards: 2.0
  yards_per_target_cap: 9.0
  tds: 10.0
  key_plays: 5.0
  key_plays_sqrt_cap: 1.5
  targets: 3.0
  synergy: 1.0
negative:
  drops: 10.0
  loafs: 3.0
  missed_assignments: 8.0
`
	path := filepath.Join(t.TempDir(), "weights.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 70.0, cfg.Base)
	assert.Equal(t, 9.0, cfg.Positive.YardsPerTargetCap)
	assert.Equal(t, 8.0, cfg.Negative.MissedAssignments)
}

func TestLoad_UnknownFieldFails(t *testing.T) {
	yamlData := `base: 73.0
bonus_multiplier: 2.0
`
	path := filepath.Join(t.TempDir(), "weights.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative base", func(c *Config) { c.Base = -1 }},
		{"base above 100", func(c *Config) { c.Base = 101 }},
		{"zero yards cap", func(c *Config) { c.Positive.YardsPerTargetCap = 0 }},
		{"zero sqrt cap", func(c *Config) { c.Positive.KeyPlaysSqrtCap = 0 }},
		{"negative weight", func(c *Config) { c.Negative.Drops = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestHash_Deterministic(t *testing.T) {
	h1, err := Hash(Default())
	require.NoError(t, err)
	h2, err := Hash(Default())
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	changed := Default()
	changed.Base = 72.0
	h3, err := Hash(changed)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}
