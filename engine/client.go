// Package engine is the read-only client for the platform's remote API. It
// loads meeting descriptors and transcripts once per meeting, before the
// replay engine is constructed.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mzhao/agentdeck/model"
)

const (
	// DefaultTimeout bounds a single engine request.
	DefaultTimeout = 15 * time.Second
	// maxResponseBytes caps transcript payloads; anything larger is refused.
	maxResponseBytes = 16 << 20
)

// ErrMeetingNotFound is returned when the engine has no meeting with the
// requested id. It is the only load failure the UI treats as a dedicated
// view state rather than a generic error.
var ErrMeetingNotFound = errors.New("engine: meeting not found")

// Client talks to one engine deployment.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	httpc   *http.Client
}

// NewClient builds a client for the engine at baseURL. token may be empty
// for unauthenticated deployments; timeout <= 0 uses DefaultTimeout.
func NewClient(baseURL, token string, timeout time.Duration) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("engine: invalid base url %q: %w", baseURL, err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		timeout: timeout,
		httpc:   &http.Client{},
	}, nil
}

// Wire shapes. The engine speaks camelCase JSON with millisecond durations;
// they are mapped into model types so the rest of the program never sees
// wire-level concerns.

type meetingSummaryJSON struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	StartedAt time.Time `json:"startedAt"`
	Summary   string    `json:"summary"`
}

type actionItemJSON struct {
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
}

type agentJSON struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	IconColor string    `json:"iconColor"`
}

type messageJSON struct {
	ID              uuid.UUID `json:"id"`
	SenderID        uuid.UUID `json:"senderId"`
	SenderClass     string    `json:"senderClass"`
	Text            string    `json:"text"`
	CreatedAt       time.Time `json:"createdAt"`
	AudioURL        string    `json:"audioUrl,omitempty"`
	AudioDurationMs int64     `json:"audioDurationMs,omitempty"`
}

type meetingDetailJSON struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	StartedAt   time.Time        `json:"startedAt"`
	Summary     string           `json:"summary"`
	ActionItems []actionItemJSON `json:"actionItems"`
	Agents      []agentJSON      `json:"agents"`
	Messages    []messageJSON    `json:"messages"`
}

// ListMeetings returns the meetings visible to this client, newest first as
// delivered by the engine.
func (c *Client) ListMeetings(ctx context.Context) ([]model.MeetingSummary, error) {
	var raw []meetingSummaryJSON
	if err := c.getJSON(ctx, "/api/v1/meetings", &raw); err != nil {
		return nil, err
	}
	out := make([]model.MeetingSummary, 0, len(raw))
	for _, m := range raw {
		out = append(out, model.MeetingSummary{
			ID:        m.ID,
			Title:     m.Title,
			StartedAt: m.StartedAt,
			Summary:   m.Summary,
		})
	}
	return out, nil
}

// GetMeeting loads the full descriptor and ordered transcript for one
// meeting. A missing meeting yields ErrMeetingNotFound.
func (c *Client) GetMeeting(ctx context.Context, id uuid.UUID) (*model.Meeting, []model.Message, error) {
	var raw meetingDetailJSON
	if err := c.getJSON(ctx, "/api/v1/meetings/"+id.String(), &raw); err != nil {
		return nil, nil, err
	}

	meeting := &model.Meeting{
		ID:        raw.ID,
		Title:     raw.Title,
		StartedAt: raw.StartedAt,
		Summary:   raw.Summary,
	}
	for _, ai := range raw.ActionItems {
		meeting.ActionItems = append(meeting.ActionItems, model.ActionItem{
			Description: ai.Description,
			Assignee:    ai.Assignee,
		})
	}
	for _, a := range raw.Agents {
		meeting.Agents = append(meeting.Agents, model.Agent{
			ID:        a.ID,
			Name:      a.Name,
			Icon:      a.Icon,
			IconColor: a.IconColor,
		})
	}

	msgs := make([]model.Message, 0, len(raw.Messages))
	for _, m := range raw.Messages {
		msgs = append(msgs, model.Message{
			ID:            m.ID,
			SenderID:      m.SenderID,
			Sender:        senderClass(m.SenderClass),
			Text:          m.Text,
			CreatedAt:     m.CreatedAt,
			AudioURL:      m.AudioURL,
			AudioDuration: time.Duration(m.AudioDurationMs) * time.Millisecond,
		})
	}
	return meeting, msgs, nil
}

func senderClass(s string) model.SenderClass {
	switch s {
	case "agent":
		return model.SenderAgent
	case "human":
		return model.SenderHuman
	case "system":
		return model.SenderSystem
	default:
		// Unknown classes read best as system chrome.
		return model.SenderSystem
	}
}

// getJSON performs one GET and decodes the body into dst, refusing responses
// larger than maxResponseBytes.
func (c *Client) getJSON(ctx context.Context, path string, dst interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("engine: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("engine: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrMeetingNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("engine: unexpected http status %s", resp.Status)
	}

	limited := io.LimitReader(resp.Body, maxResponseBytes+1)
	cr := &countingReader{r: limited}
	if err := json.NewDecoder(cr).Decode(dst); err != nil {
		return fmt.Errorf("engine: decode: %w", err)
	}
	if cr.n > maxResponseBytes {
		return fmt.Errorf("engine: response exceeds %d bytes", maxResponseBytes)
	}
	return nil
}

// countingReader tracks bytes consumed so oversized bodies are detected even
// though the decoder reads through a limited reader.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.n += int64(n)
	}
	return n, err
}
