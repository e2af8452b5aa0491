package simulate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestPedometer_Deterministic(t *testing.T) {
	day := time.Date(2025, 10, 24, 0, 0, 0, 0, time.UTC)
	now := day.Add(18 * time.Hour)

	a := NewPedometer(7, 110, time.Second)
	a.Now = fixedClock(now)
	b := NewPedometer(7, 110, time.Second)
	b.Now = fixedClock(now)

	na, err := a.FetchCumulativeCount(context.Background(), day)
	if err != nil {
		t.Fatalf("FetchCumulativeCount() error = %v", err)
	}
	nb, _ := b.FetchCumulativeCount(context.Background(), day)
	if na != nb {
		t.Errorf("same seed gave %d and %d steps", na, nb)
	}
}

func TestPedometer_CountGrowsThroughDay(t *testing.T) {
	day := time.Date(2025, 10, 24, 0, 0, 0, 0, time.UTC)
	p := NewPedometer(3, 120, time.Second)

	prev := -1
	for h := 0; h <= 24; h += 2 {
		p.Now = fixedClock(day.Add(time.Duration(h) * time.Hour))
		n, err := p.FetchCumulativeCount(context.Background(), day)
		if err != nil {
			t.Fatalf("hour %d: error = %v", h, err)
		}
		if n < prev {
			t.Fatalf("hour %d: count fell from %d to %d", h, prev, n)
		}
		if h <= 6 && n != 0 {
			t.Errorf("hour %d: %d steps before waking", h, n)
		}
		prev = n
	}

	// Past days are capped at midnight.
	p.Now = fixedClock(day.Add(72 * time.Hour))
	full, _ := p.FetchCumulativeCount(context.Background(), day)
	if full != prev {
		t.Errorf("past day count = %d, want end-of-day %d", full, prev)
	}
	if limit := int(120 * (sleepMinute - wakeMinute)); full > limit {
		t.Errorf("count %d exceeds cadence bound %d", full, limit)
	}
}

func TestPedometer_FutureDay(t *testing.T) {
	day := time.Date(2025, 10, 24, 0, 0, 0, 0, time.UTC)
	p := NewPedometer(1, 100, time.Second)
	p.Now = fixedClock(day.Add(-time.Hour))

	if n, err := p.FetchCumulativeCount(context.Background(), day); n != 0 || err != nil {
		t.Errorf("future day = %d, %v; want 0, nil", n, err)
	}
}

func TestPedometer_Fail(t *testing.T) {
	p := NewPedometer(1, 100, time.Second)
	boom := errors.New("sensor unavailable")

	p.Fail(boom)
	if _, err := p.FetchCumulativeCount(context.Background(), time.Now()); !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}

	p.Fail(nil)
	if _, err := p.FetchCumulativeCount(context.Background(), time.Now()); err != nil {
		t.Errorf("error after recovery = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.FetchCumulativeCount(ctx, time.Now()); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled fetch error = %v, want context.Canceled", err)
	}
}

func TestPedometer_Observe(t *testing.T) {
	p := NewPedometer(1, 100, 5*time.Millisecond)

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	if err := p.Observe(ctx, func() { calls.Add(1) }); err != nil {
		t.Fatalf("Observe() error = %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()
	if calls.Load() < 2 {
		t.Fatalf("onChange called %d times, want at least 2", calls.Load())
	}

	time.Sleep(20 * time.Millisecond)
	settled := calls.Load()
	time.Sleep(30 * time.Millisecond)
	if calls.Load() != settled {
		t.Error("onChange kept firing after cancel")
	}
}

func TestPedometer_ObserveNoInterval(t *testing.T) {
	p := NewPedometer(1, 100, 0)
	if err := p.Observe(context.Background(), func() {}); err == nil {
		t.Error("Observe() with zero interval should fail")
	}
}
