package replay

import "time"

// Clock schedules the recurring word tick and one-shot delays. It exists so
// the Cursor's cancellation discipline can be exercised with a deterministic
// fake in tests. Callbacks may still land after Stop if they were already in
// flight; the Cursor guards every callback with a generation check.
type Clock interface {
	// Tick invokes fn repeatedly, every interval, until stopped.
	Tick(interval time.Duration, fn func()) Stopper
	// After invokes fn once after d, unless stopped first.
	After(d time.Duration, fn func()) Stopper
}

// Stopper cancels a scheduled timer. Stop is idempotent.
type Stopper interface {
	Stop()
}

// TimerClock is the production Clock backed by runtime timers.
type TimerClock struct{}

func (TimerClock) Tick(interval time.Duration, fn func()) Stopper {
	if interval <= 0 {
		interval = time.Millisecond
	}
	t := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-t.C:
				fn()
			case <-done:
				return
			}
		}
	}()
	return &tickerStopper{ticker: t, done: done}
}

func (TimerClock) After(d time.Duration, fn func()) Stopper {
	return timerStopper{timer: time.AfterFunc(d, fn)}
}

type tickerStopper struct {
	ticker  *time.Ticker
	done    chan struct{}
	stopped bool
}

func (s *tickerStopper) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.ticker.Stop()
	close(s.done)
}

type timerStopper struct {
	timer *time.Timer
}

func (s timerStopper) Stop() {
	s.timer.Stop()
}
