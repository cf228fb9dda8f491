// Package player implements replay.AudioChannel on top of a local
// command-line audio player. Exactly one player process is live at a time;
// stopping a handle kills its process.
package player

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/mzhao/agentdeck/replay"
)

// candidates are tried in order when no binary is configured. afplay ships
// with macOS; mpv and ffplay are the usual Linux choices and both stream URLs.
var candidates = []string{"afplay", "mpv", "ffplay"}

// Channel shells out to one audio player binary.
type Channel struct {
	binary string
}

// Detect finds a usable player on PATH. preferred, when non-empty, is tried
// first. Returns nil when no player exists; callers should then fall back to
// replay.NoAudio so captions pace on estimated timing alone.
func Detect(preferred string) *Channel {
	names := candidates
	if preferred != "" {
		names = append([]string{preferred}, candidates...)
	}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return &Channel{binary: path}
		}
	}
	return nil
}

// Binary returns the resolved player path.
func (c *Channel) Binary() string { return c.binary }

// Play starts the player process for the asset. Start failures return nil;
// they are degraded, not fatal. The completion callback fires exactly once
// when the process exits cleanly, the failure callback when it exits broken.
func (c *Channel) Play(assetURL string, rate float64, onDone, onFail func()) replay.AudioHandle {
	cmd := exec.Command(c.binary, c.args(assetURL, rate)...)
	if err := cmd.Start(); err != nil {
		return nil
	}

	h := &handle{cmd: cmd}
	go func() {
		err := cmd.Wait()
		h.mu.Lock()
		stopped := h.stopped
		h.mu.Unlock()
		if stopped {
			return
		}
		if err != nil {
			if onFail != nil {
				onFail()
			}
			return
		}
		if onDone != nil {
			onDone()
		}
	}()
	return h
}

// args builds per-player invocation flags, applying the playback rate at
// process start.
func (c *Channel) args(assetURL string, rate float64) []string {
	switch filepath.Base(c.binary) {
	case "mpv":
		return []string{"--no-video", "--really-quiet", fmt.Sprintf("--speed=%g", rate), assetURL}
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet",
			"-af", fmt.Sprintf("atempo=%g", rate), assetURL}
	default: // afplay
		return []string{"-r", fmt.Sprintf("%g", rate), assetURL}
	}
}

type handle struct {
	mu      sync.Mutex
	cmd     *exec.Cmd
	stopped bool
}

// SetRate records a mid-item speed change. A shelled-out player cannot be
// retuned while running; the new rate applies from the next Play, and
// captions may drift from audio until then.
func (h *handle) SetRate(rate float64) {}

// Stop kills the player process. The waiter checks the stopped flag before
// invoking any callback; a check that raced ahead of Stop is ignored by the
// cursor's generation guard.
func (h *handle) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.stopped = true
	h.mu.Unlock()
	if h.cmd.Process != nil {
		_ = h.cmd.Process.Kill()
	}
}
