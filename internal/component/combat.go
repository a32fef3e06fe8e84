package component

import "castle-defense/internal/config"

// Kind — вид сущности, определяет максимальное здоровье и цвет.
type Kind int

const (
	KindHuman Kind = iota
	KindEnemy
	KindBaseBuilding
	KindOtherBuilding
)

func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindEnemy:
		return "enemy"
	case KindBaseBuilding:
		return "base"
	case KindOtherBuilding:
		return "building"
	}
	return "unknown"
}

// IsBuilding reports whether k has no behaviour state.
func (k Kind) IsBuilding() bool {
	return k == KindBaseBuilding || k == KindOtherBuilding
}

// MaxHPFor returns the health ceiling for a kind.
func MaxHPFor(k Kind) float64 {
	switch k {
	case KindBaseBuilding:
		return config.BuildingBaseMaxHP
	case KindOtherBuilding:
		return config.BuildingOthersMaxHP
	case KindEnemy:
		return config.EnemyMaxHP
	default:
		return config.HumansMaxHP
	}
}

// FightStatus — боевые характеристики сущности.
// Armor and Melee are not read by any damage formula yet.
type FightStatus struct {
	AttackDamage float64
	Armor        float64
	Melee        *float64
	hp           float64
	maxHP        float64
}

// NewFightStatus creates a status at full health for the given kind.
func NewFightStatus(kind Kind, attackDamage float64) FightStatus {
	maxHP := MaxHPFor(kind)
	return FightStatus{
		AttackDamage: attackDamage,
		hp:           maxHP,
		maxHP:        maxHP,
	}
}

func (f *FightStatus) HP() float64    { return f.hp }
func (f *FightStatus) MaxHP() float64 { return f.maxHP }

// SetHP stores hp clamped to [0, MaxHP].
func (f *FightStatus) SetHP(hp float64) {
	switch {
	case hp < 0:
		f.hp = 0
	case hp > f.maxHP:
		f.hp = f.maxHP
	default:
		f.hp = hp
	}
}

// TakeDamage subtracts flat damage in full.
func (f *FightStatus) TakeDamage(dmg float64) {
	f.SetHP(f.hp - dmg)
}

// Defeated is the only defeat condition.
func (f *FightStatus) Defeated() bool {
	return f.hp <= 0
}

// Fraction returns hp / MaxHP for HP bars.
func (f *FightStatus) Fraction() float64 {
	if f.maxHP <= 0 {
		return 0
	}
	return f.hp / f.maxHP
}
