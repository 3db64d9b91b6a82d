package life

import (
	"context"
	"testing"
)

func TestDriverInvalidRate(t *testing.T) {
	b, _ := NewBoard(4, 4)
	d := NewDriver(NewEngine())

	tests := []struct {
		name string
		tps  int
	}{
		{"zero rate", 0},
		{"negative rate", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := d.Run(context.Background(), b, Config{TicksPerSecond: tt.tps}); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDriverHaltsAtFixedPoint(t *testing.T) {
	// A lone pair dies on the first tick, leaving an empty board; the second
	// tick produces no changes and halts the run.
	b, _ := NewBoard(4, 4)
	b.Set(1, 1, Alive)
	b.Set(1, 2, Alive)

	rec := &recordingObserver{}
	d := NewDriver(NewEngine())
	d.AddObserver(rec)

	ticks, err := d.Run(context.Background(), b, Config{TicksPerSecond: 1000})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if ticks != 2 {
		t.Errorf("expected 2 ticks including the stabilizing one, got %d", ticks)
	}
	if len(rec.ticks) != 2 || rec.ticks[0] != 0 || rec.ticks[1] != 1 {
		t.Errorf("expected tick indices [0 1], got %v", rec.ticks)
	}
	if len(rec.halts) != 1 || rec.halts[0] != 2 {
		t.Errorf("expected one halt report with total 2, got %v", rec.halts)
	}
}

func TestDriverAlreadyStable(t *testing.T) {
	b, _ := NewBoard(4, 4)
	for _, c := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		b.Set(c[0], c[1], Alive)
	}

	d := NewDriver(NewEngine())
	ticks, err := d.Run(context.Background(), b, Config{TicksPerSecond: 1000})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if ticks != 1 {
		t.Errorf("stable board should halt after 1 tick, got %d", ticks)
	}
}

func TestDriverMaxTicks(t *testing.T) {
	// A blinker never reaches a fixed point, so only the bound stops the run.
	b, _ := NewBoard(5, 5)
	for _, c := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		b.Set(c[0], c[1], Alive)
	}

	rec := &recordingObserver{}
	d := NewDriver(NewEngine())
	d.AddObserver(rec)

	ticks, err := d.Run(context.Background(), b, Config{TicksPerSecond: 1000, MaxTicks: 7})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if ticks != 7 {
		t.Errorf("expected 7 ticks, got %d", ticks)
	}
	if len(rec.halts) != 0 {
		t.Errorf("bounded stop is not a fixed point, got halt reports %v", rec.halts)
	}
}

func TestDriverCancellation(t *testing.T) {
	b, _ := NewBoard(5, 5)
	for _, c := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		b.Set(c[0], c[1], Alive)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDriver(NewEngine())
	ticks, err := d.Run(ctx, b, Config{TicksPerSecond: 1})
	if err == nil {
		t.Fatal("expected context error, got nil")
	}
	if ticks != 1 {
		t.Errorf("expected 1 tick before cancellation, got %d", ticks)
	}
}
