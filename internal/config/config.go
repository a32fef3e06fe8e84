package config

import "image/color"

// Window
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "Castle"
)

// World
const (
	GroundHeight = 35.0
	GroundPosY   = 550.0
	// FrameRateBase normalizes per-tick movement to a 60fps step.
	FrameRateBase = 60.0
)

// Humans
const (
	HumansMaxHP               = 100.0
	HumansHeight              = 50.0
	HumansWidth               = HumansHeight - 20.0
	HumansPosY                = 525.0
	HumansSpawnX              = 30.0 + HumansWidth/2
	HumansWalkSpeed           = 1.5
	HumansIdleWalkSpeedFactor = 0.2
	HumansAttackDamage        = 20.0
	HumansFriction            = 0.2
)

// Enemies
const (
	EnemyMaxHP        = HumansMaxHP
	EnemyWalkSpeed    = 1.0
	EnemySpawnX       = 1300.0
	EnemyAttackDamage = 20.0
	EnemyFriction     = 0.2
)

// Buildings
const (
	BuildingBaseMaxHP   = 500.0
	BuildingOthersMaxHP = 300.0
	BuildingSize        = 100.0
	BuildingSpawnX      = 20.0 + BuildingSize/2
	BuildingDamage      = 50.0
	// BuildingIDBias keeps building target ids apart from unit ids.
	BuildingIDBias = 100
)

// Timings, seconds.
const (
	IdleDuration     = 3.0
	WalkDuration     = 1.5
	AttackCooldown   = 1.5
	VelocityEpsilon  = 0.001
	HPBarHumanWidth  = 60.0
	HPBarBuildWidth  = 100.0
	HPBarHeight      = 10.0
	HPBarOffsetY     = 25.0
	HPBarOutline     = 2.0
	GameOverFontSize = 20
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	GroundColor     = color.RGBA{255, 0, 255, 255}
	HumanColor      = color.RGBA{0, 255, 0, 255}
	EnemyColor      = color.RGBA{255, 0, 0, 255}
	BuildingColor   = color.RGBA{0, 0, 255, 255}
	HPBarColor      = color.RGBA{0, 255, 0, 255}
	HPBarStroke     = color.RGBA{255, 255, 255, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
)
