package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/mzhao/agentdeck/engine"
	"github.com/mzhao/agentdeck/model"
	"github.com/mzhao/agentdeck/replay"
)

// captionLines is how many rows the caption block may occupy.
const captionLines = 4

// replayView holds everything the replay mode needs. It is reset whenever a
// new meeting is opened or the user leaves the view.
type replayView struct {
	meetingID uuid.UUID
	meeting   *model.Meeting
	playlist  replay.Playlist
	cursor    *replay.Cursor
	state     replay.State
	updates   chan replay.State

	loading  bool
	notFound bool
	loadErr  error

	sel          int // transcript entry selected for jump
	threadOffset int
	status       string // transient line, e.g. clipboard feedback
}

// meetingLoadedMsg is sent when the async meeting fetch completes.
type meetingLoadedMsg struct {
	id      uuid.UUID // identifies which meeting this result belongs to
	meeting *model.Meeting
	msgs    []model.Message
	err     error
}

func loadMeeting(client *engine.Client, id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		meeting, msgs, err := client.GetMeeting(context.Background(), id)
		return meetingLoadedMsg{id: id, meeting: meeting, msgs: msgs, err: err}
	}
}

// replayStateMsg carries a playback snapshot from the cursor into the UI.
type replayStateMsg struct {
	state replay.State
}

func waitForPlayback(ch chan replay.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return nil
		}
		return replayStateMsg{state: st}
	}
}

func (m Model) enterReplay(mt model.MeetingSummary) (Model, tea.Cmd) {
	m.rp = replayView{meetingID: mt.ID, loading: true}
	m.mode = modeReplay
	return m, loadMeeting(m.client, mt.ID)
}

func (m Model) updateReplayLoaded(msg meetingLoadedMsg) (Model, tea.Cmd) {
	// discard stale or duplicate results if the user already switched
	// meetings, left the view, or re-entered while a fetch was in flight
	if m.mode != modeReplay || msg.id != m.rp.meetingID || !m.rp.loading {
		return m, nil
	}
	m.rp.loading = false

	if msg.err != nil {
		if errors.Is(msg.err, engine.ErrMeetingNotFound) {
			m.rp.notFound = true
		} else {
			m.rp.loadErr = msg.err
		}
		return m, nil
	}

	m.rp.meeting = msg.meeting
	m.rp.playlist = replay.BuildPlaylist(msg.msgs, msg.meeting.Agents)

	updates := make(chan replay.State, 64)
	m.rp.updates = updates
	m.rp.cursor = replay.NewCursor(m.rp.playlist, replay.TimerClock{}, m.audio, func(st replay.State) {
		// Snapshots supersede each other; dropping under pressure is safe.
		select {
		case updates <- st:
		default:
		}
	})
	m.rp.state = m.rp.cursor.Snapshot()
	return m, waitForPlayback(updates)
}

func (m Model) updateReplayState(msg replayStateMsg) (Model, tea.Cmd) {
	if m.rp.updates == nil {
		return m, nil
	}
	m.rp.state = msg.state
	return m, waitForPlayback(m.rp.updates)
}

func (m Model) updateReplay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.closeReplay()
		m.mode = modeList
		return m, nil
	case "ctrl+c":
		m.closeReplay()
		return m, tea.Quit
	}

	if m.rp.cursor == nil {
		return m, nil
	}

	switch msg.String() {
	case " ":
		m.rp.cursor.TogglePlay()
		m.syncPlayback()

	case "right", "n":
		m.rp.cursor.SkipForward()
		m.syncPlayback()

	case "left", "p":
		m.rp.cursor.SkipBack()
		m.syncPlayback()

	case "s":
		m.rp.cursor.CycleSpeed()
		m.syncPlayback()

	case "up", "k":
		if m.rp.sel > 0 {
			m.rp.sel--
		}

	case "down", "j":
		if m.rp.sel < len(m.rp.playlist)-1 {
			m.rp.sel++
		}

	case "enter":
		if len(m.rp.playlist) > 0 {
			m.rp.cursor.JumpTo(m.rp.sel)
			m.syncPlayback()
		}

	case "y":
		m.rp.status = m.copyMeetingNotes()
	}

	return m, nil
}

// syncPlayback refreshes the rendered snapshot right after a transport call
// instead of waiting for the next channel delivery.
func (m *Model) syncPlayback() {
	if m.rp.cursor != nil {
		m.rp.state = m.rp.cursor.Snapshot()
	}
	m.rp.status = ""
}

func (m *Model) closeReplay() {
	if m.rp.cursor != nil {
		// Close guarantees no further notifications, so the channel can be
		// closed to release the pending waitForPlayback command.
		m.rp.cursor.Close()
		close(m.rp.updates)
	}
	m.rp = replayView{}
}

// copyMeetingNotes puts the title, summary and action items on the clipboard.
func (m Model) copyMeetingNotes() string {
	mt := m.rp.meeting
	if mt == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(mt.Title + "\n")
	if mt.Summary != "" {
		b.WriteString("\n" + mt.Summary + "\n")
	}
	if len(mt.ActionItems) > 0 {
		b.WriteString("\nAction items:\n")
		for _, ai := range mt.ActionItems {
			b.WriteString(fmt.Sprintf("- %s (%s)\n", ai.Description, ai.Assignee))
		}
	}
	if err := clipboard.WriteAll(b.String()); err != nil {
		return "Clipboard unavailable."
	}
	return "Copied meeting notes."
}

func (m Model) viewReplay() string {
	var b strings.Builder

	title := "Meeting"
	if m.rp.meeting != nil {
		title = m.rp.meeting.Title
	}
	b.WriteString(replayTitleStyle.Render(" "+title) + m.renderPlaybackInfo() + "\n")

	switch {
	case m.rp.loading:
		b.WriteString("\n  Loading...\n")
		b.WriteString(strings.Repeat("\n", max(0, m.height-4)))
		b.WriteString(m.replayHelpBar())
		return b.String()

	case m.rp.notFound:
		b.WriteString("\n  Meeting not found.\n")
		b.WriteString(strings.Repeat("\n", max(0, m.height-4)))
		b.WriteString(m.replayHelpBar())
		return b.String()

	case m.rp.loadErr != nil:
		b.WriteString(fmt.Sprintf("\n  Could not load meeting: %v\n", m.rp.loadErr))
		b.WriteString(strings.Repeat("\n", max(0, m.height-4)))
		b.WriteString(m.replayHelpBar())
		return b.String()
	}

	b.WriteString(m.renderSpeakerBanner() + "\n")

	caption := m.renderCaption()
	b.WriteString(caption)

	b.WriteString(headerStyle.Render(pad(" Transcript", max(1, m.width-2))) + "\n")
	b.WriteString(m.renderThread())

	b.WriteString(m.replayHelpBar())
	return b.String()
}

func (m Model) renderPlaybackInfo() string {
	st := m.rp.state
	total := len(m.rp.playlist)
	pos := st.Index + 1
	if pos < 0 {
		pos = 0
	}
	badge := pausedBadge.Render(" ⏸")
	if st.Playing {
		badge = playingBadge.Render(" ▶")
	}
	return badge + dimStyle.Render(fmt.Sprintf("  %d/%d  %.1fx", pos, total, st.Speed))
}

func (m Model) renderSpeakerBanner() string {
	st := m.rp.state
	if st.Index < 0 || st.Index >= len(m.rp.playlist) {
		return dimStyle.Render("  (press Space to start)")
	}
	item := m.rp.playlist[st.Index]

	icon := item.Icon
	if icon == "" {
		icon = "●"
	}
	iconStyle := lipgloss.NewStyle().Bold(true)
	if item.IconColor != "" {
		iconStyle = iconStyle.Foreground(lipgloss.Color(item.IconColor))
	}

	when := ""
	if !item.SentAt.IsZero() {
		when = dimStyle.Render("  " + item.SentAt.Format("15:04:05"))
	}
	return "  " + iconStyle.Render(icon) + " " +
		speakerNameStyle.Render(item.Speaker) + " " + senderTag(item.Sender) + when
}

func senderTag(s model.SenderClass) string {
	switch s {
	case model.SenderHuman:
		return humanTag.Render("[human]")
	case model.SenderSystem:
		return systemTag.Render("[system]")
	default:
		return agentTag.Render("[agent]")
	}
}

// renderCaption draws the current caption screen, highlighting the word the
// clock is on, always occupying captionLines rows.
func (m Model) renderCaption() string {
	st := m.rp.state
	width := max(20, m.width-4)

	var lines []string
	if st.Index >= 0 && st.Screen < len(st.Screens) {
		words := st.Screens[st.Screen]
		var line strings.Builder
		lineLen := 0
		for i, w := range words {
			if lineLen > 0 && lineLen+1+len([]rune(w)) > width {
				lines = append(lines, line.String())
				line.Reset()
				lineLen = 0
			}
			if lineLen > 0 {
				line.WriteString(" ")
				lineLen++
			}
			switch {
			case i < st.Word:
				line.WriteString(captionSpokenStyle.Render(w))
			case i == st.Word:
				line.WriteString(captionCurrentStyle.Render(w))
			default:
				line.WriteString(captionUpcomingStyle.Render(w))
			}
			lineLen += len([]rune(w))
		}
		if lineLen > 0 {
			lines = append(lines, line.String())
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	for i := 0; i < captionLines; i++ {
		if i < len(lines) {
			b.WriteString("  " + lines[i])
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// renderThread lists the transcript. Entries past the playback position are
// dimmed; the selection marks the jump target.
func (m Model) renderThread() string {
	rows := m.threadRows()
	offset := m.threadScrollOffset(rows)

	var b strings.Builder
	end := offset + rows
	if end > len(m.rp.playlist) {
		end = len(m.rp.playlist)
	}
	for i := offset; i < end; i++ {
		b.WriteString(m.renderThreadLine(i) + "\n")
	}
	for i := end - offset; i < rows; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderThreadLine(i int) string {
	item := m.rp.playlist[i]
	width := max(20, m.width-2)

	when := item.SentAt.Format("15:04")
	text := strings.ReplaceAll(item.Text, "\n", " ")
	line := fmt.Sprintf(" %s  %s: %s", when, item.Speaker, text)
	runes := []rune(line)
	if len(runes) > width {
		line = string(runes[:width-2]) + ".."
	}

	switch {
	case i == m.rp.sel:
		return threadSelectedStyle.Render(pad(line, width))
	case i > m.rp.state.Index:
		return dimStyle.Render(line)
	default:
		return line
	}
}

func (m Model) threadRows() int {
	// title + banner + caption block + transcript header + help bar
	rows := m.height - (3 + captionLines + 3)
	if rows < 1 {
		rows = 1
	}
	return rows
}

// threadScrollOffset keeps both the selection and the playing entry visible,
// preferring the selection.
func (m Model) threadScrollOffset(rows int) int {
	target := m.rp.sel
	offset := target - rows/2
	if offset+rows > len(m.rp.playlist) {
		offset = len(m.rp.playlist) - rows
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (m Model) replayHelpBar() string {
	help := helpStyle.Render("  Space: play/pause  n/p: skip  s: speed  j/k+Enter: jump  y: copy  Esc: back")
	if m.rp.status != "" {
		help += dimStyle.Render("  " + m.rp.status)
	}
	return help
}
