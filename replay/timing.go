package replay

import "time"

// fallbackPerWord approximates speech cadence when the engine delivered no
// audio duration metadata.
const fallbackPerWord = 250 * time.Millisecond

// EstimateDuration derives how long an item stays on screen. A known audio
// duration wins; otherwise the estimate is 250ms per word. Both scale with
// playback speed. Zero words means the item is already complete: duration 0,
// and no word clock is ever started for it.
func EstimateDuration(totalWords int, knownAudio time.Duration, speed float64) time.Duration {
	if totalWords == 0 {
		return 0
	}
	if speed <= 0 {
		speed = 1.0
	}
	base := knownAudio
	if base <= 0 {
		base = time.Duration(totalWords) * fallbackPerWord
	}
	return time.Duration(float64(base) / speed)
}
