// internal/system/wave.go
package system

import (
	"castle-defense/internal/defs"
	"castle-defense/internal/event"
)

// WaveSystem выпускает врагов по расписанию волн.
type WaveSystem struct {
	waves           []defs.WaveDefinition
	eventDispatcher *event.Dispatcher
	spawn           func()
	current         int
	toSpawn         int
	spawnTimer      float64
	active          bool
}

// NewWaveSystem runs waves in order; spawn is called once per enemy.
func NewWaveSystem(waves []defs.WaveDefinition, eventDispatcher *event.Dispatcher, spawn func()) *WaveSystem {
	return &WaveSystem{
		waves:           waves,
		eventDispatcher: eventDispatcher,
		spawn:           spawn,
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	if s.Done() {
		return
	}
	s.spawnTimer += deltaTime
	wave := s.waves[s.current]

	if !s.active {
		if s.spawnTimer < wave.Delay {
			return
		}
		s.active = true
		s.toSpawn = wave.Count
		s.eventDispatcher.Emit(event.WaveStarted, event.WaveInfo{Number: s.current + 1, Count: wave.Count})
		s.spawnOne()
		return
	}

	if s.spawnTimer >= wave.Interval {
		s.spawnOne()
	}
}

func (s *WaveSystem) spawnOne() {
	s.spawn()
	s.toSpawn--
	s.spawnTimer = 0
	if s.toSpawn <= 0 {
		s.active = false
		s.current++
	}
}

// Wave returns how many waves have started so far.
func (s *WaveSystem) Wave() int {
	if s.active {
		return s.current + 1
	}
	return s.current
}

// Done reports whether every wave has been fully spawned.
func (s *WaveSystem) Done() bool {
	return s.current >= len(s.waves)
}
