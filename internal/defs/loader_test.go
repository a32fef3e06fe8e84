package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTuningEmptyKeepsDefaults(t *testing.T) {
	got, err := ParseTuning(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), got)
}

func TestParseTuningOverrides(t *testing.T) {
	data := []byte(`
enemy_walk_speed: 2.5
initial_enemies: 0
seed: 42
waves:
  - count: 3
    interval: 1.5
    delay: 4
  - count: 5
`)
	got, err := ParseTuning(data)
	require.NoError(t, err)

	assert.Equal(t, 2.5, got.EnemyWalkSpeed)
	assert.Equal(t, 0, got.InitialEnemies)
	assert.Equal(t, int64(42), got.Seed)
	assert.Equal(t, DefaultTuning().HumansWalkSpeed, got.HumansWalkSpeed)
	assert.Equal(t, []WaveDefinition{
		{Count: 3, Interval: 1.5, Delay: 4},
		{Count: 5},
	}, got.Waves)
}

func TestParseTuningErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "enemy_speed: 1\n",
		"negative speed":    "humans_walk_speed: -1\n",
		"zero cooldown":     "attack_cooldown: 0\n",
		"negative count":    "initial_humans: -2\n",
		"empty wave":        "waves:\n  - count: 0\n",
		"not a mapping":     "- 1\n- 2\n",
		"negative interval": "waves:\n  - count: 1\n    interval: -1\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTuning([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("humans_attack_damage: 35\n"), 0o644))

	got, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 35.0, got.HumansAttackDamage)

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
