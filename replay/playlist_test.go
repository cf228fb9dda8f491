package replay

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mzhao/agentdeck/model"
)

func TestBuildPlaylist(t *testing.T) {
	scout := model.Agent{ID: uuid.New(), Name: "Scout", Icon: "S", IconColor: "#7c3aed"}
	human := uuid.New()
	now := time.Now()

	msgs := []model.Message{
		{SenderID: scout.ID, Sender: model.SenderAgent, Text: "Status update.", CreatedAt: now,
			AudioURL: "https://assets.example/a0.mp3", AudioDuration: 4 * time.Second},
		{SenderID: human, Sender: model.SenderHuman, Text: "Thanks.", CreatedAt: now.Add(time.Minute)},
		{SenderID: uuid.New(), Sender: model.SenderSystem, Text: "Meeting ended."},
	}

	pl := BuildPlaylist(msgs, []model.Agent{scout})
	if len(pl) != 3 {
		t.Fatalf("expected 3 items, got %d", len(pl))
	}
	for i, item := range pl {
		if item.Index != i {
			t.Errorf("item %d has ordinal %d", i, item.Index)
		}
	}
	if pl[0].Speaker != "Scout" || pl[0].IconColor != "#7c3aed" {
		t.Errorf("agent sender not resolved: %+v", pl[0])
	}
	if pl[0].AudioDuration != 4*time.Second || pl[0].AudioURL == "" {
		t.Errorf("audio metadata lost: %+v", pl[0])
	}
	if pl[1].Speaker != "Human" {
		t.Errorf("human fallback speaker = %q", pl[1].Speaker)
	}
	if pl[2].Speaker != "System" {
		t.Errorf("system fallback speaker = %q", pl[2].Speaker)
	}
}
