package model

import (
	"time"

	"github.com/google/uuid"
)

// Agent is a platform agent that participated in a meeting.
type Agent struct {
	ID        uuid.UUID
	Name      string
	Icon      string // short glyph or emoji shown next to the name
	IconColor string // hex color for the icon, as delivered by the engine
}

// ActionItem is one follow-up recorded against a meeting.
type ActionItem struct {
	Description string
	Assignee    string
}

// MeetingSummary is the list-view projection of a meeting.
type MeetingSummary struct {
	ID        uuid.UUID
	Title     string
	StartedAt time.Time
	Summary   string // may be empty when the engine has not summarized yet
}

// Meeting is the full descriptor loaded before replay starts.
type Meeting struct {
	ID          uuid.UUID
	Title       string
	StartedAt   time.Time
	Summary     string
	ActionItems []ActionItem
	Agents      []Agent
}

// AgentByID returns the participating agent with the given id, if any.
func (m *Meeting) AgentByID(id uuid.UUID) (Agent, bool) {
	for _, a := range m.Agents {
		if a.ID == id {
			return a, true
		}
	}
	return Agent{}, false
}
