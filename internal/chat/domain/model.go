package domain

import (
	"time"

	"github.com/Angelo270204/prototipado-backend/internal/roster"
)

// MaxContentLength bounds message content; longer content is truncated
// rather than rejected so sending never blocks on size.
const MaxContentLength = 2000

// FallbackSenderName is used when no identity source can resolve the
// sender's display name.
const FallbackSenderName = "Sin Nombre"

// ChatMessage is immutable once created except for the read flag.
// An empty ProjectID marks a global message; an empty RecipientID marks
// a broadcast to the project participants.
type ChatMessage struct {
	ID          string      `json:"id"`
	ProjectID   string      `json:"project_id,omitempty"`
	SenderID    string      `json:"sender_id"`
	SenderName  string      `json:"sender_name"`
	SenderRole  roster.Role `json:"sender_role"`
	RecipientID string      `json:"recipient_id,omitempty"`
	Content     string      `json:"content"`
	CreatedAt   time.Time   `json:"created_at"`
	Read        bool        `json:"read"`
}

// Participant is a user descriptor snapshotted into a room.
type Participant struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role roster.Role `json:"role"`
}

// ChatRoom binds a chat to exactly one project. LastMessage and
// UnreadCount track the room's most recent activity for list rendering.
type ChatRoom struct {
	ID           string        `json:"id"`
	ProjectID    string        `json:"project_id"`
	ProjectName  string        `json:"project_name"`
	Participants []Participant `json:"participants"`
	LastMessage  *ChatMessage  `json:"last_message,omitempty"`
	UnreadCount  int           `json:"unread_count"`
}
