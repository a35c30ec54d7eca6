package sim

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Loop calls a tick function at a fixed rate until it returns false or the
// context ends.
type Loop struct {
	tickRate int
	tick     func(dt float64) bool
	log      *zap.Logger
}

func NewLoop(tickRate int, log *zap.Logger, tick func(dt float64) bool) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		tickRate: tickRate,
		tick:     tick,
		log:      log,
	}
}

// Run blocks until the tick function returns false (nil error) or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	dt := 1 / float64(l.tickRate)
	l.log.Debug("loop started", zap.Int("tickRate", l.tickRate))

	for {
		select {
		case <-ctx.Done():
			l.log.Debug("loop stopped", zap.Error(ctx.Err()))
			return ctx.Err()
		case <-ticker.C:
			if !l.tick(dt) {
				l.log.Debug("loop finished")
				return nil
			}
		}
	}
}
