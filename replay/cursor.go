// Package replay drives meeting playback: it turns a transcript into an
// ordered playlist and advances through it with synchronized audio, word-level
// caption highlighting and automatic item advancement.
package replay

import (
	"sync"
	"time"
)

// speeds is the fixed playback speed cycle.
var speeds = []float64{1.0, 1.5, 2.0}

// advancePause is how long an audio-less item rests on its final word before
// auto-advancing, at speed 1.0. Scaled by 1/speed at higher speeds.
const advancePause = time.Second

// State is the playback snapshot exposed to the view layer. The view only
// reads snapshots; all mutation goes through the Cursor's transport methods.
type State struct {
	Index   int // -1 when nothing is selected
	Playing bool
	Speed   float64
	Screens []CaptionScreen
	Screen  int // current screen within Screens
	Word    int // highlighted word within the current screen
}

// Cursor owns which item is current and orchestrates the word clock and the
// audio channel for it. All state lives behind one mutex; timer ticks and
// audio completions are external events validated against a generation
// counter so that nothing torn down can still mutate state.
type Cursor struct {
	playlist Playlist
	clock    Clock
	audio    AudioChannel
	notify   func(State) // called after every visible change; must not re-enter the cursor

	mu        sync.Mutex
	gen       uint64 // bumped on every teardown; stale callbacks see a mismatch
	idx       int
	playing   bool
	speedIdx  int
	screens   []CaptionScreen
	screen    int
	word      int // word within the current screen
	cursor    int // global word cursor across screens
	words     int // total words of the current item
	exhausted bool // word clock ran out for the current item
	audioLive bool // an audio handle is (believed) playing

	wordTimer  Stopper
	pauseTimer Stopper
	handle     AudioHandle
}

// NewCursor builds a cursor over an immutable playlist. notify may be nil;
// when set it runs with internal state held, so it must stay cheap and must
// never call a Cursor method.
func NewCursor(playlist Playlist, clock Clock, audio AudioChannel, notify func(State)) *Cursor {
	return &Cursor{
		playlist: playlist,
		clock:    clock,
		audio:    audio,
		notify:   notify,
		idx:      -1,
	}
}

// Len returns the playlist length.
func (c *Cursor) Len() int { return len(c.playlist) }

// Item returns the playlist item at i.
func (c *Cursor) Item(i int) ReplayItem { return c.playlist[i] }

// Snapshot returns the current playback state.
func (c *Cursor) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// TogglePlay pauses when playing (captions freeze on the current word; the
// elapsed offset is not kept, so resuming restarts the item from word 0) and
// otherwise starts playback at the current item, or item 0 if none.
func (c *Cursor) TogglePlay() {
	c.mu.Lock()
	if c.playing {
		c.teardownLocked()
		c.playing = false
	} else {
		c.playing = true
		idx := c.idx
		if idx < 0 {
			idx = 0
		}
		c.playItemLocked(idx)
	}
	c.publishLocked()
}

// SkipForward moves to the next item if one exists; otherwise no-op.
func (c *Cursor) SkipForward() { c.skip(1) }

// SkipBack moves to the previous item if one exists; otherwise no-op.
func (c *Cursor) SkipBack() { c.skip(-1) }

func (c *Cursor) skip(delta int) {
	c.mu.Lock()
	target := c.idx + delta
	if target < 0 || target >= len(c.playlist) {
		c.mu.Unlock()
		return
	}
	c.playItemLocked(target)
	c.publishLocked()
}

// JumpTo selects an arbitrary item and always starts playback, whatever the
// prior state. This backs clicking a transcript entry.
func (c *Cursor) JumpTo(idx int) {
	c.mu.Lock()
	c.playing = true
	c.playItemLocked(idx)
	c.publishLocked()
}

// CycleSpeed advances through {1.0, 1.5, 2.0}, wrapping. A live audio handle
// is retuned immediately. The already-running word clock keeps its cadence
// until the next item, so captions and audio can drift for the remainder of
// the current item; that drift is accepted, matching how durations are only
// recomputed per item.
func (c *Cursor) CycleSpeed() {
	c.mu.Lock()
	c.speedIdx = (c.speedIdx + 1) % len(speeds)
	if c.handle != nil {
		c.handle.SetRate(c.speedLocked())
	}
	c.publishLocked()
}

// Close releases all timers and audio. The cursor must not be used after.
func (c *Cursor) Close() {
	c.mu.Lock()
	c.teardownLocked()
	c.playing = false
	c.mu.Unlock()
}

// playItemLocked is the central primitive every transport operation calls.
// Teardown of the previous item is unconditional and idempotent: rapid
// repeated calls leave exactly one live timer and at most one audio handle,
// addressing the last requested item.
func (c *Cursor) playItemLocked(idx int) {
	c.teardownLocked()

	if idx < 0 || idx >= len(c.playlist) {
		// No such item: the terminal case for auto-advance past the end.
		c.playing = false
		return
	}

	item := c.playlist[idx]
	c.idx = idx
	c.screens = Segment(item.Text)
	c.screen, c.word, c.cursor = 0, 0, 0
	c.words = wordTotal(c.screens)
	c.exhausted = false
	c.audioLive = false

	gen := c.gen
	speed := c.speedLocked()

	if item.AudioURL != "" {
		h := c.audio.Play(item.AudioURL, speed,
			func() { c.audioDone(gen) },
			func() { c.audioFailed(gen) })
		if h != nil {
			c.handle = h
			c.audioLive = true
		}
	}

	if c.words > 0 {
		per := EstimateDuration(c.words, item.AudioDuration, speed) / time.Duration(c.words)
		c.wordTimer = c.clock.Tick(per, func() { c.tick(gen) })
	} else {
		// Nothing to caption. Audio, if any, drives completion; otherwise
		// rest briefly and move on.
		c.exhausted = true
		if !c.audioLive {
			c.scheduleAdvanceLocked(gen)
		}
	}
}

// teardownLocked cancels the previous item's timers and audio handle and
// invalidates every callback issued for them.
func (c *Cursor) teardownLocked() {
	c.gen++
	if c.wordTimer != nil {
		c.wordTimer.Stop()
		c.wordTimer = nil
	}
	if c.pauseTimer != nil {
		c.pauseTimer.Stop()
		c.pauseTimer = nil
	}
	if c.handle != nil {
		c.handle.Stop()
		c.handle = nil
	}
	c.audioLive = false
}

// tick advances the word cursor by one. Word 0 is already shown when the
// clock starts, so the first tick moves to word 1.
func (c *Cursor) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.cursor++
	if c.cursor >= c.words {
		// Final word reached: stop the clock, keep the last word highlighted.
		if c.wordTimer != nil {
			c.wordTimer.Stop()
			c.wordTimer = nil
		}
		c.exhausted = true
		if !c.audioLive {
			c.scheduleAdvanceLocked(gen)
		}
		c.mu.Unlock()
		return
	}
	c.screen = screenForWord(c.screens, c.cursor)
	c.word = c.cursor - screenStartWord(c.screens, c.screen)
	c.publishLocked()
}

// scheduleAdvanceLocked arms the post-caption pause that gives the reader a
// moment on the final word of an audio-less item before auto-advancing.
func (c *Cursor) scheduleAdvanceLocked(gen uint64) {
	pause := time.Duration(float64(advancePause) / c.speedLocked())
	c.pauseTimer = c.clock.After(pause, func() { c.advance(gen) })
}

func (c *Cursor) advance(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.playItemLocked(c.idx + 1)
	c.publishLocked()
}

// audioDone handles natural completion of the current item's audio.
func (c *Cursor) audioDone(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.playItemLocked(c.idx + 1)
	c.publishLocked()
}

// audioFailed downgrades the current item to caption-only pacing. Playback
// failures are never surfaced; if the word clock already ran out while we
// were still waiting on audio, advance now so the replay can't wedge.
func (c *Cursor) audioFailed(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.audioLive = false
	c.handle = nil
	if c.exhausted {
		c.scheduleAdvanceLocked(gen)
	}
	c.mu.Unlock()
}

func (c *Cursor) speedLocked() float64 { return speeds[c.speedIdx] }

func (c *Cursor) stateLocked() State {
	return State{
		Index:   c.idx,
		Playing: c.playing,
		Speed:   c.speedLocked(),
		Screens: c.screens,
		Screen:  c.screen,
		Word:    c.word,
	}
}

// publishLocked notifies with the lock still held, then releases it. Keeping
// the callback inside the critical section lets Close guarantee that no
// notification lands after it returns. notify must therefore never call back
// into the Cursor. Callers must hold the lock and not touch c afterwards.
func (c *Cursor) publishLocked() {
	if c.notify != nil {
		c.notify(c.stateLocked())
	}
	c.mu.Unlock()
}
