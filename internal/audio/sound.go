// Package audio plays short tones for combat events.
package audio

import (
	"castle-defense/internal/component"
	"castle-defense/internal/event"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone is one event's sound.
type tone struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var tones = map[event.EventType]tone{
	event.EntityDamaged:  {freq: 880, duration: 40 * time.Millisecond, volume: 0.3},
	event.EntityDefeated: {freq: 220, duration: 160 * time.Millisecond, volume: 0.5},
	event.GameOver:       {freq: 110, duration: 600 * time.Millisecond, volume: 0.6},
}

// SoundManager turns dispatcher events into tones. It stays silent until
// Initialize succeeds, so a machine without audio still runs the game.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
	play        func(beep.Streamer)
}

var _ event.Listener = (*SoundManager)(nil)

func NewSoundManager() *SoundManager {
	return &SoundManager{play: func(s beep.Streamer) { speaker.Play(s) }}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup stops playback; further events are ignored.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.initialized = false
}

// SetMuted silences tones without closing the speaker.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// OnEvent plays the tone bound to the event. Building hits use a lower pitch.
func (sm *SoundManager) OnEvent(e event.Event) {
	t, ok := tones[e.Type]
	if !ok {
		return
	}
	if info, ok := e.Data.(event.DamageInfo); ok && info.Kind.IsBuilding() {
		t.freq /= 2
	}
	if info, ok := e.Data.(event.EntityInfo); ok && info.Kind == component.KindEnemy {
		t.freq *= 1.5
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.muted {
		return
	}
	s, err := toneStreamer(t)
	if err != nil {
		return
	}
	sm.play(s)
}

func toneStreamer(t tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Take(sampleRate.N(t.duration), sine), t.volume), nil
}

// math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
