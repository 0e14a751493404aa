package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Angelo270204/prototipado-backend/internal/chat/domain"
	"github.com/Angelo270204/prototipado-backend/internal/chat/repository"
	"github.com/Angelo270204/prototipado-backend/internal/events"
	"github.com/Angelo270204/prototipado-backend/internal/roster"
)

// ChatService handles chat business logic: sending with sender-name
// resolution, project history, rooms, and read flags.
type ChatService struct {
	repo   *repository.Repository
	roster *roster.Roster
	bus    *events.Bus
}

// NewChatService creates a new chat service and subscribes it to
// project events: a shared project with the chat option gets its room
// created here.
func NewChatService(repo *repository.Repository, r *roster.Roster, bus *events.Bus) *ChatService {
	s := &ChatService{
		repo:   repo,
		roster: r,
		bus:    bus,
	}

	bus.Subscribe(func(ctx context.Context, e events.Event) error {
		shared, ok := e.(events.ProjectShared)
		if !ok || !shared.CreateChat {
			return nil
		}
		_, err := s.CreateRoom(ctx, shared.ProjectID, shared.ProjectName, nil)
		return err
	})

	return s
}

// SendMessageRequest contains the request data for sending a message.
// SessionUser is the authenticated user, when there is one.
type SendMessageRequest struct {
	ProjectID   string
	SenderID    string
	SenderName  string
	SenderRole  roster.Role
	RecipientID string
	Content     string
	SessionUser *roster.User
}

// SendMessage resolves the sender identity, appends the message to the
// log, and updates the owning room. Sending never blocks on a missing
// identity; the name falls back through explicit name, session user,
// roster by id, roster by role, and finally "Sin Nombre".
func (s *ChatService) SendMessage(ctx context.Context, req SendMessageRequest) (*domain.ChatMessage, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("content required")
	}
	if len(content) > domain.MaxContentLength {
		// Cut on a rune boundary; a split multi-byte sequence would
		// store invalid UTF-8.
		cut := domain.MaxContentLength
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		content = content[:cut]
	}

	name, role := s.resolveSender(req)

	m := s.repo.Append(domain.ChatMessage{
		ProjectID:   req.ProjectID,
		SenderID:    req.SenderID,
		SenderName:  name,
		SenderRole:  role,
		RecipientID: req.RecipientID,
		Content:     content,
		CreatedAt:   time.Now(),
	})

	s.bus.Publish(ctx, events.MessageSent{
		MessageID:   m.ID,
		ProjectID:   m.ProjectID,
		SenderID:    m.SenderID,
		SenderName:  m.SenderName,
		SenderRole:  m.SenderRole,
		RecipientID: m.RecipientID,
		Content:     m.Content,
	})

	return &m, nil
}

// ProjectMessages returns the project's messages in ascending creation
// order. Callers re-poll; this is not a live stream.
func (s *ChatService) ProjectMessages(projectID string) []domain.ChatMessage {
	return s.repo.ProjectMessages(projectID)
}

// CreateRoom creates the chat room for a project. Passing no
// participants snapshots the full roster, which is what project sharing
// does. At most one room exists per project; repeated calls return the
// existing room.
func (s *ChatService) CreateRoom(ctx context.Context, projectID, projectName string, participants []domain.Participant) (*domain.ChatRoom, error) {
	if projectID == "" {
		return nil, fmt.Errorf("project id required")
	}

	if len(participants) == 0 {
		for _, u := range s.roster.All() {
			participants = append(participants, domain.Participant{
				ID:   u.ID,
				Name: u.Name,
				Role: u.Role,
			})
		}
	}

	room, _ := s.repo.CreateRoom(projectID, projectName, participants)
	return &room, nil
}

// Rooms returns every chat room.
func (s *ChatService) Rooms() []domain.ChatRoom {
	return s.repo.Rooms()
}

// MarkMessageRead flips the message's read flag; unknown ids are a
// no-op.
func (s *ChatService) MarkMessageRead(messageID string) {
	s.repo.MarkMessageRead(messageID)
}

func (s *ChatService) resolveSender(req SendMessageRequest) (string, roster.Role) {
	role := req.SenderRole

	if name := strings.TrimSpace(req.SenderName); name != "" {
		return name, role
	}
	if req.SessionUser != nil && req.SessionUser.Name != "" {
		if role == "" {
			role = req.SessionUser.Role
		}
		return req.SessionUser.Name, role
	}
	if u, ok := s.roster.ByID(req.SenderID); ok {
		if role == "" {
			role = u.Role
		}
		return u.Name, role
	}
	if users := s.roster.ByRole(role); len(users) > 0 {
		return users[0].Name, role
	}
	return domain.FallbackSenderName, role
}
