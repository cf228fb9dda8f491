package replay

import (
	"time"

	"github.com/google/uuid"

	"github.com/mzhao/agentdeck/model"
)

// ReplayItem is one message's playback projection. Built once when the
// transcript loads, never mutated.
type ReplayItem struct {
	Index         int // position in the playlist, stable for the session
	Speaker       string
	Icon          string
	IconColor     string
	Sender        model.SenderClass
	Text          string
	AudioURL      string
	AudioDuration time.Duration // zero when the engine sent no metadata
	SentAt        time.Time
}

// Playlist is the ordered sequence of replay items for one meeting,
// insertion order = chronological transcript order. Immutable once built.
type Playlist []ReplayItem

// BuildPlaylist projects transcript messages into replay items, resolving
// each sender against the meeting's participating agents.
func BuildPlaylist(msgs []model.Message, agents []model.Agent) Playlist {
	byID := make(map[uuid.UUID]model.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}

	items := make(Playlist, 0, len(msgs))
	for i, msg := range msgs {
		item := ReplayItem{
			Index:         i,
			Sender:        msg.Sender,
			Text:          msg.Text,
			AudioURL:      msg.AudioURL,
			AudioDuration: msg.AudioDuration,
			SentAt:        msg.CreatedAt,
		}
		if a, ok := byID[msg.SenderID]; ok {
			item.Speaker = a.Name
			item.Icon = a.Icon
			item.IconColor = a.IconColor
		} else {
			switch msg.Sender {
			case model.SenderHuman:
				item.Speaker = "Human"
			case model.SenderSystem:
				item.Speaker = "System"
			default:
				item.Speaker = "Agent"
			}
		}
		items = append(items, item)
	}
	return items
}
