package app

import "time"

// Session identifies one user's conversation, mood log and sentiment
// history across requests. Only one session is active at a time and its
// id never changes once minted.
type Session struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id,omitempty"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	Timestamp time.Time `json:"timestamp"`
}

type MoodEntry struct {
	ID        string    `json:"id,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	MoodScore int       `json:"mood_score"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SentimentBucket is one calendar day of averaged sentiment, computed
// server-side from the user's messages.
type SentimentBucket struct {
	Date         string  `json:"date"`
	AvgSentiment float64 `json:"avg_sentiment"`
	MessageCount int     `json:"message_count,omitempty"`
}

type TrendSummary struct {
	AvgSentiment  float64 `json:"avg_sentiment"`
	TotalMessages int     `json:"total_messages"`
}

type SentimentTrends struct {
	Trends  []SentimentBucket `json:"trends"`
	Summary TrendSummary      `json:"summary"`
}

// Resource is a single support listing. Crisis lines carry a phone
// number, most others a website, coping strategies a category.
type Resource struct {
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}

type ResourceDirectory struct {
	Crisis           []Resource `json:"crisis"`
	General          []Resource `json:"general"`
	CopingStrategies []Resource `json:"coping_strategies"`
}

type ChatSentiment struct {
	Compound float64 `json:"compound"`
	Label    string  `json:"label"`
}

// ChatResponse is the backend's reply to one sent message. SessionID may
// differ from the id the request carried when the backend minted a
// session for us. Resources is only populated on crisis responses.
type ChatResponse struct {
	Message        string         `json:"message"`
	SessionID      string         `json:"session_id"`
	CrisisDetected bool           `json:"crisis_detected"`
	Sentiment      *ChatSentiment `json:"sentiment,omitempty"`
	Resources      []Resource     `json:"resources,omitempty"`
}
