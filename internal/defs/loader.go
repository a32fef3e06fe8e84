// internal/defs/loader.go
package defs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTuning reads a YAML tuning file on top of DefaultTuning.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes YAML tuning data. Unknown keys are rejected.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	if t.HumansWalkSpeed < 0 || t.EnemyWalkSpeed < 0 {
		return fmt.Errorf("invalid tuning: walk speeds must not be negative")
	}
	if t.HumansAttackDamage < 0 || t.EnemyAttackDamage < 0 {
		return fmt.Errorf("invalid tuning: attack damage must not be negative")
	}
	if t.IdleDuration <= 0 || t.WalkDuration <= 0 || t.AttackCooldown <= 0 {
		return fmt.Errorf("invalid tuning: durations must be positive")
	}
	if t.InitialHumans < 0 || t.InitialEnemies < 0 {
		return fmt.Errorf("invalid tuning: initial counts must not be negative")
	}
	for i, w := range t.Waves {
		if w.Count <= 0 || w.Interval < 0 || w.Delay < 0 {
			return fmt.Errorf("invalid tuning: wave %d: count must be positive, interval and delay non-negative", i+1)
		}
	}
	return nil
}
