// README: Chat message and reply types.
package chat

import (
	"time"

	"sofia/internal/modules/intent"
	"sofia/internal/modules/session"
)

// Role identifies who produced a stored message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one stored conversation turn.
type Message struct {
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Reply is the full outcome of processing one user message.
type Reply struct {
	Text             string
	Category         intent.Category
	Confidence       float64
	Session          *session.Session
	ExternalDataUsed bool
	// Fallback is true when the LLM call failed and Text is a canned answer.
	Fallback bool
}
