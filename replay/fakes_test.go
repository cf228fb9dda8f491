package replay

import "time"

// fakeClock hands out timers that only fire when the test says so.
type fakeClock struct {
	timers []*fakeTimer
}

type fakeTimer struct {
	interval time.Duration
	fn       func()
	oneShot  bool
	stopped  bool
}

func (t *fakeTimer) Stop() { t.stopped = true }

func (c *fakeClock) Tick(interval time.Duration, fn func()) Stopper {
	t := &fakeTimer{interval: interval, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) After(d time.Duration, fn func()) Stopper {
	t := &fakeTimer{interval: d, fn: fn, oneShot: true}
	c.timers = append(c.timers, t)
	return t
}

// active returns timers that have not been stopped.
func (c *fakeClock) active() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

// fire delivers one tick to every currently active timer. One-shot timers
// stop themselves first, like time.AfterFunc.
func (c *fakeClock) fire() {
	for _, t := range c.active() {
		if t.oneShot {
			t.stopped = true
		}
		t.fn()
	}
}

// fakeAudio records every requested playback as a controllable handle.
type fakeAudio struct {
	refuse  bool // simulate a missing player: Play returns nil
	handles []*fakeHandle
}

type fakeHandle struct {
	url     string
	rate    float64
	stopped bool
	done    bool
	onDone  func()
	onFail  func()
}

func (h *fakeHandle) SetRate(rate float64) { h.rate = rate }
func (h *fakeHandle) Stop()                { h.stopped = true }

// complete simulates natural end of playback.
func (h *fakeHandle) complete() {
	if h.done {
		return
	}
	h.done = true
	h.onDone()
}

// fail simulates the asset breaking mid-playback.
func (h *fakeHandle) fail() { h.onFail() }

func (a *fakeAudio) Play(url string, rate float64, onDone, onFail func()) AudioHandle {
	if a.refuse {
		return nil
	}
	h := &fakeHandle{url: url, rate: rate, onDone: onDone, onFail: onFail}
	a.handles = append(a.handles, h)
	return h
}

// live returns handles that are neither stopped nor finished.
func (a *fakeAudio) live() []*fakeHandle {
	var out []*fakeHandle
	for _, h := range a.handles {
		if !h.stopped && !h.done {
			out = append(out, h)
		}
	}
	return out
}
