package app

import (
	"castle-defense/internal/event"

	"go.uber.org/zap"
)

// LogListener пишет события симуляции в лог.
type LogListener struct {
	logger *zap.Logger
}

// OnEvent реализует интерфейс event.Listener.
func (l *LogListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EntityInfo:
		l.logger.Info(string(e.Type), zap.Uint32("id", uint32(data.ID)), zap.Stringer("kind", data.Kind))
	case event.DamageInfo:
		l.logger.Debug(string(e.Type),
			zap.Uint32("id", uint32(data.ID)),
			zap.Stringer("kind", data.Kind),
			zap.Float64("damage", data.Damage),
			zap.Float64("hp", data.HP),
		)
	case event.WaveInfo:
		l.logger.Info(string(e.Type), zap.Int("wave", data.Number), zap.Int("count", data.Count))
	case bool:
		l.logger.Info(string(e.Type), zap.Bool("paused", data))
	default:
		l.logger.Info(string(e.Type))
	}
}
