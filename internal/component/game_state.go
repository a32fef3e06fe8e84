package component

// GameState — компонент для хранения состояния матча
type GameState int

const (
	PlayState GameState = iota
	PausedState
	OverState
)

// HumanState — состояния поведения защитника.
type HumanState int

const (
	HumanIdle HumanState = iota
	HumanWalking
	HumanRunning
	HumanAttacking
	HumanAttackWaiting
)

func (s HumanState) String() string {
	switch s {
	case HumanIdle:
		return "Idle"
	case HumanWalking:
		return "Walking"
	case HumanRunning:
		return "Running"
	case HumanAttacking:
		return "Attacking"
	case HumanAttackWaiting:
		return "AttackWaiting"
	}
	return "Unknown"
}

// EnemyState — состояния поведения врага. Enemies are always alert, so there is no idle.
type EnemyState int

const (
	EnemyRunning EnemyState = iota
	EnemyAttacking
	EnemyAttackWaiting
)

func (s EnemyState) String() string {
	switch s {
	case EnemyRunning:
		return "Running"
	case EnemyAttacking:
		return "Attacking"
	case EnemyAttackWaiting:
		return "AttackWaiting"
	}
	return "Unknown"
}
