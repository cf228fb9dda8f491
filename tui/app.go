// Package tui renders the meeting list and the replay view.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mzhao/agentdeck/engine"
	"github.com/mzhao/agentdeck/model"
	"github.com/mzhao/agentdeck/replay"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeReplay
)

type Model struct {
	client   *engine.Client
	audio    replay.AudioChannel
	meetings []model.MeetingSummary
	filtered []model.MeetingSummary

	cursor int
	offset int // scroll offset
	width  int
	height int
	mode   mode

	searchInput textinput.Model

	rp replayView
}

func NewModel(client *engine.Client, audio replay.AudioChannel, meetings []model.MeetingSummary) Model {
	// newest meetings first
	sort.Slice(meetings, func(i, j int) bool {
		return meetings[i].StartedAt.After(meetings[j].StartedAt)
	})

	si := textinput.New()
	si.Placeholder = "search..."
	si.CharLimit = 100

	m := Model{
		client:      client,
		audio:       audio,
		meetings:    meetings,
		searchInput: si,
		width:       120,
		height:      30,
	}
	m.applyFilter()
	return m
}

func (m *Model) applyFilter() {
	m.filtered = nil
	search := strings.ToLower(m.searchInput.Value())

	for _, mt := range m.meetings {
		if search != "" {
			haystack := strings.ToLower(mt.Title + " " + mt.Summary)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		m.filtered = append(m.filtered, mt)
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	m.clampOffset()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case meetingLoadedMsg:
		return m.updateReplayLoaded(msg)

	case replayStateMsg:
		return m.updateReplayState(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeReplay:
			return m.updateReplay(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.clampOffset()
		}

	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.clampOffset()
		}

	case "home", "g":
		m.cursor = 0
		m.clampOffset()

	case "end", "G":
		m.cursor = max(0, len(m.filtered)-1)
		m.clampOffset()

	case "pgup":
		m.cursor = max(0, m.cursor-m.visibleRows())
		m.clampOffset()

	case "pgdown":
		m.cursor += m.visibleRows()
		if m.cursor >= len(m.filtered) {
			m.cursor = len(m.filtered) - 1
		}
		m.clampOffset()

	case "enter":
		if len(m.filtered) > 0 {
			return m.enterReplay(m.filtered[m.cursor])
		}

	case "/":
		m.searchInput.Focus()
		m.mode = modeSearch
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searchInput.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) View() string {
	if m.mode == modeReplay {
		return m.viewReplay()
	}

	var b strings.Builder

	title := titleStyle.Render("AgentDeck")
	info := dimStyle.Render(fmt.Sprintf("  %d meetings", len(m.filtered)))
	b.WriteString(title + info + "\n")

	b.WriteString(m.renderHeader() + "\n")

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.filtered[i], i == m.cursor) + "\n")
	}

	rendered := end - m.offset
	for i := rendered; i < visible; i++ {
		b.WriteString("\n")
	}

	switch m.mode {
	case modeSearch:
		b.WriteString(statusBarStyle.Render("Search: ") + m.searchInput.View())
	default:
		b.WriteString(helpStyle.Render("  Enter: replay  /: search  q: quit"))
	}

	return b.String()
}

func (m Model) renderHeader() string {
	w := m.colWidths()
	cols := []string{
		pad("Started", w.time),
		pad("Title", w.title),
		pad("Summary", w.summary),
	}
	return headerStyle.Render(strings.Join(cols, " "))
}

func (m Model) renderRow(mt model.MeetingSummary, selected bool) string {
	w := m.colWidths()

	timeStr := mt.StartedAt.Format("01-02 15:04")
	summary := mt.Summary
	summaryRunes := []rune(summary)
	if len(summaryRunes) > w.summary {
		summary = string(summaryRunes[:w.summary-2]) + ".."
	}

	cols := []string{
		pad(timeStr, w.time),
		pad(mt.Title, w.title),
		summary,
	}
	row := strings.Join(cols, " ")

	if selected {
		row = selectedStyle.Render(row)
		row = lipgloss.PlaceHorizontal(m.width, lipgloss.Left, row)
	}
	return row
}

type colWidths struct {
	time    int
	title   int
	summary int
}

func (m Model) colWidths() colWidths {
	w := colWidths{
		time:  12,
		title: 28,
	}
	used := w.time + w.title + 4
	w.summary = m.width - used
	if w.summary < 20 {
		w.summary = 20
	}
	return w
}

func (m Model) visibleRows() int {
	// total height minus title, header, bottom bar
	rows := m.height - 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) clampOffset() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
