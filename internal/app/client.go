package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the support backend's REST surface. All request and
// response bodies are JSON.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8000/api"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type sessionRequest struct {
	Nickname string `json:"nickname,omitempty"`
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type moodRequest struct {
	MoodScore int    `json:"mood_score"`
	Note      string `json:"note,omitempty"`
	SessionID string `json:"session_id"`
}

func (c *Client) CreateSession(ctx context.Context, nickname string) (*Session, error) {
	var out Session
	if err := c.do(ctx, http.MethodPost, "/session", sessionRequest{Nickname: nickname}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendMessage(ctx context.Context, sessionID, text string) (*ChatResponse, error) {
	var out ChatResponse
	if err := c.do(ctx, http.MethodPost, "/chat", chatRequest{Message: text, SessionID: sessionID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChatHistory(ctx context.Context, sessionID string) ([]Message, error) {
	var out []Message
	path := "/chat/" + url.PathEscape(sessionID) + "/history"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LogMood(ctx context.Context, sessionID string, score int, note string) error {
	path := "/mood"
	return c.do(ctx, http.MethodPost, path, moodRequest{MoodScore: score, Note: note, SessionID: sessionID}, nil)
}

func (c *Client) MoodHistory(ctx context.Context, sessionID string) ([]MoodEntry, error) {
	var out []MoodEntry
	path := "/mood/" + url.PathEscape(sessionID) + "/history"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SentimentTrends(ctx context.Context, sessionID string) (*SentimentTrends, error) {
	var out SentimentTrends
	path := "/sentiment/" + url.PathEscape(sessionID) + "/trends"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Resources(ctx context.Context) (*ResourceDirectory, error) {
	var out ResourceDirectory
	if err := c.do(ctx, http.MethodGet, "/resources", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSessionData(ctx context.Context, sessionID string) error {
	path := "/session/" + url.PathEscape(sessionID) + "/data"
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(request)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode >= 300 {
		// The backend wraps errors as {"detail": "..."}.
		var errResp struct {
			Detail string `json:"detail"`
		}
		_ = json.Unmarshal(bodyBytes, &errResp)
		if errResp.Detail != "" {
			return &NetworkError{Op: op, Err: fmt.Errorf("status %d: %s", resp.StatusCode, errResp.Detail)}
		}
		return &NetworkError{Op: op, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("invalid response body: %w", err)}
	}
	return nil
}
