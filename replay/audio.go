package replay

// AudioHandle controls one live audio playback.
type AudioHandle interface {
	// SetRate retunes playback speed without restarting the asset.
	SetRate(rate float64)
	// Stop kills playback and releases resources. Idempotent. A completion
	// callback already in flight may still land after Stop; the Cursor's
	// generation check discards it.
	Stop()
}

// AudioChannel starts playback of a pre-rendered audio asset. At most one
// handle is live at a time; the Cursor stops the previous handle before
// requesting a new one.
//
// Play returns nil when playback cannot start (missing player, blocked
// device, bad asset). That is not an error: captions continue on estimated
// timing alone. onDone fires exactly once when playback completes naturally;
// onFail fires at most once if playback breaks after starting. Implementations
// must not invoke either callback synchronously from inside Play.
type AudioChannel interface {
	Play(assetURL string, rate float64, onDone, onFail func()) AudioHandle
}

// NoAudio is an AudioChannel with no playback device. Every item paces on
// the word clock alone.
type NoAudio struct{}

func (NoAudio) Play(string, float64, func(), func()) AudioHandle { return nil }
