// internal/app/game.go
package app

import (
	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"castle-defense/internal/defs"
	"castle-defense/internal/entity"
	"castle-defense/internal/event"
	"castle-defense/internal/system"
	"castle-defense/internal/types"
	"castle-defense/internal/utils"

	"go.uber.org/zap"
)

// Game holds the match state and runs one simulation tick per frame.
type Game struct {
	Humans          *system.Roster
	Enemies         *system.Roster
	Buildings       []*entity.Building
	CombatSystem    *system.CombatSystem
	WaveSystem      *system.WaveSystem
	EventDispatcher *event.Dispatcher

	logger       *zap.Logger
	rng          utils.Sampler
	tuning       defs.Tuning
	humanProfile entity.Profile
	enemyProfile entity.Profile

	// playerQueue holds attacks on humans and buildings, enemyQueue attacks on enemies.
	playerQueue *event.AttackQueue
	enemyQueue  *event.AttackQueue

	phase       component.GameState
	gameTime    float64
	ticks       uint64
	nextHumanID types.EntityID
	nextEnemyID types.EntityID
}

// Option configures a Game at construction.
type Option func(*Game)

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithSampler replaces the seeded PRNG used for idle-walk draws.
func WithSampler(s utils.Sampler) Option {
	return func(g *Game) { g.rng = s }
}

// WithTuning overrides the default tuning.
func WithTuning(t defs.Tuning) Option {
	return func(g *Game) { g.tuning = t }
}

// NewGame seeds the base building and the initial humans and enemies.
func NewGame(opts ...Option) *Game {
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Humans:          system.NewRoster(),
		Enemies:         system.NewRoster(),
		CombatSystem:    system.NewCombatSystem(eventDispatcher),
		EventDispatcher: eventDispatcher,
		logger:          zap.NewNop(),
		tuning:          defs.DefaultTuning(),
		playerQueue:     event.NewAttackQueue(),
		enemyQueue:      event.NewAttackQueue(),
		phase:           component.PlayState,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		prng := utils.NewPRNGService(g.tuning.Seed)
		g.logger.Debug("prng seeded", zap.Int64("seed", prng.Seed()))
		g.rng = prng
	}
	g.humanProfile = entity.HumanProfile(g.tuning)
	g.enemyProfile = entity.EnemyProfile(g.tuning)
	g.WaveSystem = system.NewWaveSystem(g.tuning.Waves, eventDispatcher, func() { g.SpawnEnemy() })

	eventDispatcher.SubscribeAll(&LogListener{logger: g.logger})

	g.Buildings = append(g.Buildings, entity.NewBuilding(0, component.KindBaseBuilding))
	for i := 0; i < g.tuning.InitialHumans; i++ {
		g.SpawnHuman()
	}
	for i := 0; i < g.tuning.InitialEnemies; i++ {
		g.SpawnEnemy()
	}
	return g
}

// SpawnHuman adds a defender at the default spawn point.
func (g *Game) SpawnHuman() *entity.Human {
	h := entity.NewHuman(g.newHumanID(), g.humanProfile)
	g.Humans.Add(h)
	g.EventDispatcher.Emit(event.EntitySpawned, event.EntityInfo{ID: h.ID(), Kind: h.Kind()})
	return h
}

// SpawnEnemy adds an enemy just past the right edge.
func (g *Game) SpawnEnemy() *entity.Enemy {
	e := entity.NewEnemy(g.nextEnemyID, g.enemyProfile)
	g.nextEnemyID++
	g.Enemies.Add(e)
	g.EventDispatcher.Emit(event.EntitySpawned, event.EntityInfo{ID: e.ID(), Kind: e.Kind()})
	return e
}

// AddBuilding appends a non-base building at x on the ground line.
// Human ids allocated afterwards skip its id.
func (g *Game) AddBuilding(x float64) *entity.Building {
	b := entity.NewBuilding(len(g.Buildings), component.KindOtherBuilding)
	b.SetPosition(types.Vec2{X: x, Y: config.GroundPosY})
	g.Buildings = append(g.Buildings, b)
	return b
}

// newHumanID skips the building id range: humans and buildings share a queue.
func (g *Game) newHumanID() types.EntityID {
	id := g.nextHumanID
	for g.isBuildingID(id) {
		id++
	}
	g.nextHumanID = id + 1
	return id
}

func (g *Game) isBuildingID(id types.EntityID) bool {
	for _, b := range g.Buildings {
		if b.ID() == id {
			return true
		}
	}
	return false
}

// Update progresses the simulation by one tick. Nothing happens while paused
// or after the game is over.
func (g *Game) Update(deltaTime float64) {
	if g.phase != component.PlayState {
		return
	}
	g.gameTime += deltaTime
	g.ticks++

	g.WaveSystem.Update(deltaTime)

	// Buildings take what enemies queued last tick; leftovers are dropped.
	g.CombatSystem.ResolveBuildings(g.Buildings, g.playerQueue)
	g.playerQueue.Clear()

	enemyCtx := &entity.Context{
		DeltaTime:   deltaTime,
		WindowWidth: config.ScreenWidth,
		RivalComing: types.Dir(types.Left),
		Positions:   g.Enemies.Positions(),
		Rivals:      g.Humans.Positions(),
		Buildings:   g.buildingPositions(),
		Rand:        g.rng,
	}
	deadEnemies := g.CombatSystem.Sweep(g.Enemies, g.enemyQueue, g.playerQueue, enemyCtx)
	g.enemyQueue.Clear()

	humanCtx := &entity.Context{
		DeltaTime:   deltaTime,
		WindowWidth: config.ScreenWidth,
		RivalComing: g.enemyComing(),
		Positions:   g.Humans.Positions(),
		Rivals:      g.Enemies.Positions(),
		Rand:        g.rng,
	}
	deadHumans := g.CombatSystem.Sweep(g.Humans, g.playerQueue, g.enemyQueue, humanCtx)

	g.purge(g.Humans, component.KindHuman, deadHumans)
	g.purge(g.Enemies, component.KindEnemy, deadEnemies)

	g.checkGameOver()
}

// enemyComing is the signal humans see: enemies approach from the right while
// any are on the field.
func (g *Game) enemyComing() *types.Direction {
	if g.Enemies.Len() == 0 {
		return nil
	}
	return types.Dir(types.Right)
}

func (g *Game) buildingPositions() []types.Vec2 {
	out := make([]types.Vec2, len(g.Buildings))
	for i, b := range g.Buildings {
		out[i] = b.Body().Position
	}
	return out
}

func (g *Game) purge(r *system.Roster, kind component.Kind, ids []types.EntityID) {
	if len(ids) == 0 {
		return
	}
	r.Remove(ids...)
	for _, id := range ids {
		g.EventDispatcher.Emit(event.EntityDefeated, event.EntityInfo{ID: id, Kind: kind})
	}
}

func (g *Game) checkGameOver() {
	base := g.Base()
	if base == nil || !base.Fight().Defeated() {
		return
	}
	g.phase = component.OverState
	g.EventDispatcher.Emit(event.GameOver, nil)
}

// Base returns the base building, or nil if there is none.
func (g *Game) Base() *entity.Building {
	for _, b := range g.Buildings {
		if b.Kind() == component.KindBaseBuilding {
			return b
		}
	}
	return nil
}

// TogglePause pauses or resumes the simulation. It has no effect once the game is over.
func (g *Game) TogglePause() {
	switch g.phase {
	case component.PlayState:
		g.phase = component.PausedState
	case component.PausedState:
		g.phase = component.PlayState
	default:
		return
	}
	g.EventDispatcher.Emit(event.PauseToggled, g.IsPaused())
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.phase == component.PausedState
}

// IsOver reports whether the base has fallen.
func (g *Game) IsOver() bool {
	return g.phase == component.OverState
}

func (g *Game) Phase() component.GameState {
	return g.phase
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

func (g *Game) Ticks() uint64 {
	return g.ticks
}

// PendingPlayerAttacks returns the attacks queued against humans and buildings.
func (g *Game) PendingPlayerAttacks() []event.Attack {
	return g.playerQueue.Attacks()
}

// PendingEnemyAttacks returns the attacks queued against enemies.
func (g *Game) PendingEnemyAttacks() []event.Attack {
	return g.enemyQueue.Attacks()
}

// QueuePlayerAttack queues an attack on a human or building. Between ticks
// only building targets survive: the building pass clears the queue before
// humans read it.
func (g *Game) QueuePlayerAttack(a event.Attack) {
	g.playerQueue.Push(a)
}

// QueueEnemyAttack queues an attack on an enemy, as a human would.
func (g *Game) QueueEnemyAttack(a event.Attack) {
	g.enemyQueue.Push(a)
}
