package audio

import (
	"castle-defense/internal/component"
	"castle-defense/internal/event"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecording() (*SoundManager, *[]beep.Streamer) {
	var played []beep.Streamer
	sm := &SoundManager{initialized: true}
	sm.play = func(s beep.Streamer) { played = append(played, s) }
	return sm, &played
}

func TestSoundManagerPlaysBoundEvents(t *testing.T) {
	sm, played := newRecording()

	sm.OnEvent(event.Event{Type: event.EntityDamaged, Data: event.DamageInfo{ID: 1, Kind: component.KindHuman}})
	sm.OnEvent(event.Event{Type: event.EntityDefeated, Data: event.EntityInfo{ID: 2, Kind: component.KindEnemy}})
	sm.OnEvent(event.Event{Type: event.EntitySpawned, Data: event.EntityInfo{ID: 3}})

	assert.Len(t, *played, 2)
}

func TestSoundManagerSilentUntilInitialized(t *testing.T) {
	sm, played := newRecording()
	sm.initialized = false

	sm.OnEvent(event.Event{Type: event.GameOver})
	assert.Empty(t, *played)
}

func TestSoundManagerMuted(t *testing.T) {
	sm, played := newRecording()
	sm.SetMuted(true)

	sm.OnEvent(event.Event{Type: event.GameOver})
	assert.Empty(t, *played)
}

func TestToneStreamerLength(t *testing.T) {
	s, err := toneStreamer(tones[event.EntityDamaged])
	require.NoError(t, err)

	want := sampleRate.N(tones[event.EntityDamaged].duration)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, want, total)
}
