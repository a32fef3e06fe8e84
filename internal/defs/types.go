// internal/defs/types.go
package defs

import "castle-defense/internal/config"

// Tuning holds the tunable parameters of a match. Keys absent from a YAML
// file keep the defaults from config.
type Tuning struct {
	HumansWalkSpeed           float64          `yaml:"humans_walk_speed"`
	HumansIdleWalkSpeedFactor float64          `yaml:"humans_idle_walk_speed_factor"`
	HumansAttackDamage        float64          `yaml:"humans_attack_damage"`
	EnemyWalkSpeed            float64          `yaml:"enemy_walk_speed"`
	EnemyAttackDamage         float64          `yaml:"enemy_attack_damage"`
	IdleDuration              float64          `yaml:"idle_duration"`
	WalkDuration              float64          `yaml:"walk_duration"`
	AttackCooldown            float64          `yaml:"attack_cooldown"`
	InitialHumans             int              `yaml:"initial_humans"`
	InitialEnemies            int              `yaml:"initial_enemies"`
	Seed                      int64            `yaml:"seed"`
	Waves                     []WaveDefinition `yaml:"waves"`
}

// DefaultTuning mirrors the compile-time constants: one human, one enemy, no waves.
func DefaultTuning() Tuning {
	return Tuning{
		HumansWalkSpeed:           config.HumansWalkSpeed,
		HumansIdleWalkSpeedFactor: config.HumansIdleWalkSpeedFactor,
		HumansAttackDamage:        config.HumansAttackDamage,
		EnemyWalkSpeed:            config.EnemyWalkSpeed,
		EnemyAttackDamage:         config.EnemyAttackDamage,
		IdleDuration:              config.IdleDuration,
		WalkDuration:              config.WalkDuration,
		AttackCooldown:            config.AttackCooldown,
		InitialHumans:             1,
		InitialEnemies:            1,
	}
}
