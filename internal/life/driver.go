package life

import (
	"context"
	"fmt"
	"time"
)

// Config controls a driver run.
type Config struct {
	// TicksPerSecond sets the nominal simulation rate. Must be positive.
	TicksPerSecond int
	// MaxTicks bounds runs that never reach a fixed point (oscillators,
	// gliders). Zero means no bound.
	MaxTicks int
}

// Driver paces an Engine against wall-clock time until the board reaches a
// fixed point.
type Driver struct {
	engine    *Engine
	observers []Observer
}

func NewDriver(engine *Engine) *Driver {
	return &Driver{engine: engine}
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// Run ticks the board until a tick produces zero changes, the configured tick
// bound is hit, or ctx is cancelled. It returns the number of ticks executed,
// including the stabilizing one.
//
// Pacing is a plain sleep between ticks and does not account for the time
// spent computing a tick, so the effective rate drifts below the configured
// rate on large boards.
func (d *Driver) Run(ctx context.Context, b *Board, cfg Config) (int, error) {
	if cfg.TicksPerSecond <= 0 {
		return 0, fmt.Errorf("ticks per second must be positive, got %d", cfg.TicksPerSecond)
	}

	period := time.Duration(1_000_000/cfg.TicksPerSecond) * time.Microsecond
	ticks := 0

	for {
		changed := d.engine.Tick(b)
		for _, o := range d.observers {
			o.OnTick(ticks, changed, b.Alive())
		}
		ticks++

		if changed == 0 {
			for _, o := range d.observers {
				o.OnHalt(ticks)
			}
			return ticks, nil
		}
		if cfg.MaxTicks > 0 && ticks >= cfg.MaxTicks {
			return ticks, nil
		}

		select {
		case <-ctx.Done():
			return ticks, ctx.Err()
		case <-time.After(period):
		}
	}
}
