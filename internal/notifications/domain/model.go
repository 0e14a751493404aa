package domain

import "time"

// Notification types.
const (
	TypeProjectShared      = "project_shared"
	TypeProjectApproved    = "project_approved"
	TypeProjectRejected    = "project_rejected"
	TypeWorkOrderAssigned  = "work_order_assigned"
	TypeWorkOrderCompleted = "work_order_completed"
	TypeCommentAdded       = "comment_added"
	TypeChatMessage        = "chat_message"
)

// Notification is an advisory entry in a user's queue. The read flag
// only ever moves false→true.
type Notification struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	ProjectID    string    `json:"project_id,omitempty"`
	ProjectName  string    `json:"project_name,omitempty"`
	FromUserID   string    `json:"from_user_id,omitempty"`
	FromUserName string    `json:"from_user_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Read         bool      `json:"read"`
}
