package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/mzhao/agentdeck/config"
	"github.com/mzhao/agentdeck/engine"
	"github.com/mzhao/agentdeck/player"
	"github.com/mzhao/agentdeck/replay"
	"github.com/mzhao/agentdeck/tui"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client, err := engine.NewClient(cfg.EngineURL, cfg.APIToken, cfg.Timeout())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	meetings, err := client.ListMeetings(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot reach engine at %s: %v\n", cfg.EngineURL, err)
		os.Exit(1)
	}
	if len(meetings) == 0 {
		fmt.Println("No meetings found.")
		os.Exit(0)
	}

	// --list flag: print meetings as plain text (for testing / scripting)
	if len(os.Args) > 1 && os.Args[1] == "--list" {
		sort.Slice(meetings, func(i, j int) bool {
			return meetings[i].StartedAt.After(meetings[j].StartedAt)
		})
		for _, mt := range meetings {
			fmt.Printf("%s │ %s │ %s │ %s\n",
				mt.ID, mt.StartedAt.Format("01-02 15:04"), mt.Title, mt.Summary)
		}
		return
	}

	// Missing audio player is not an error: captions pace on estimated timing.
	var audio replay.AudioChannel = replay.NoAudio{}
	if ch := player.Detect(cfg.Player); ch != nil {
		audio = ch
	}

	m := tui.NewModel(client, audio, meetings)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
