package worklog

import (
	"context"
	"time"

	"github.com/sadopc/todo/internal/store"
)

// Clock is the time source of a Runner.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// RealClock is the wall clock.
var RealClock Clock = realClock{}

// Progress is reported to Runner.OnTick once per tick.
type Progress struct {
	Elapsed time.Duration
	Total   time.Duration
}

// Percent is the completed fraction in [0, 1].
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 1
	}
	f := float64(p.Elapsed) / float64(p.Total)
	if f > 1 {
		return 1
	}
	return f
}

func (p Progress) Remaining() time.Duration {
	if r := p.Total - p.Elapsed; r > 0 {
		return r
	}
	return 0
}

// Runner drives one timed work session.
type Runner struct {
	Clock  Clock
	Tick   time.Duration
	OnTick func(Progress)
}

// Outcome describes how a session ended.
type Outcome struct {
	StartedAt   time.Time
	Planned     time.Duration
	Elapsed     time.Duration
	Interrupted bool
}

// Run blocks until length has elapsed or ctx is cancelled. Cancellation is
// observed once per tick and is not an error: the outcome is marked
// interrupted.
func (r *Runner) Run(ctx context.Context, length time.Duration) Outcome {
	clock := r.Clock
	if clock == nil {
		clock = RealClock
	}
	tick := r.Tick
	if tick <= 0 {
		tick = time.Second
	}

	start := clock.Now()
	out := Outcome{StartedAt: start, Planned: length}
	for {
		elapsed := clock.Now().Sub(start)
		if ctx.Err() != nil {
			out.Elapsed = elapsed
			out.Interrupted = true
			return out
		}
		if elapsed >= length {
			out.Elapsed = length
			return out
		}
		if r.OnTick != nil {
			r.OnTick(Progress{Elapsed: elapsed, Total: length})
		}
		select {
		case <-ctx.Done():
		case <-clock.After(tick):
		}
	}
}

// Session converts the outcome into a work session record. Interrupted
// sessions keep the whole minutes worked and are dropped when shorter than
// one minute.
func (o Outcome) Session() (store.WorkSession, bool) {
	minutes := int(o.Planned / time.Minute)
	if o.Interrupted {
		minutes = int(o.Elapsed / time.Minute)
		if minutes < 1 {
			return store.WorkSession{}, false
		}
	}
	return store.WorkSession{
		StartedAt:   store.NewTimestamp(o.StartedAt),
		Duration:    minutes,
		Interrupted: o.Interrupted,
	}, true
}
