package models

import "time"

// Transcript roles.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// ChatMessage is one line of the client-side advisory transcript.
type ChatMessage struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// ChatRequest is the payload of /api/advisor/chat.
type ChatRequest struct {
	Query string `json:"query" binding:"required,max=2000"`
}

// ChatResponse carries the reply and the transcript after it was appended.
type ChatResponse struct {
	Reply      string        `json:"reply"`
	Transcript []ChatMessage `json:"transcript"`
}

// AnalysisResponse carries the latest full-semester report.
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}
