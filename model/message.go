package model

import (
	"time"

	"github.com/google/uuid"
)

// SenderClass says what kind of participant authored a message.
type SenderClass string

const (
	SenderAgent  SenderClass = "agent"
	SenderHuman  SenderClass = "human"
	SenderSystem SenderClass = "system"
)

// Message is one transcript entry of a meeting, in chronological order.
type Message struct {
	ID        uuid.UUID
	SenderID  uuid.UUID
	Sender    SenderClass
	Text      string
	CreatedAt time.Time

	// AudioURL points at a pre-rendered audio asset for this message, already
	// resolved to a playable URL by the engine. Empty when no audio exists.
	AudioURL string

	// AudioDuration is the known duration of the audio asset. Zero when the
	// engine delivered no metadata; playback then falls back to estimation.
	AudioDuration time.Duration
}
