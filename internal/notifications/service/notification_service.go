package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Angelo270204/prototipado-backend/internal/events"
	"github.com/Angelo270204/prototipado-backend/internal/notifications/domain"
	"github.com/Angelo270204/prototipado-backend/internal/notifications/repository"
	"github.com/Angelo270204/prototipado-backend/internal/roster"
	"github.com/google/uuid"
)

// ProjectRoles resolves the roles a project is shared with. Injected by
// the composition root so this package does not depend on the project
// store.
type ProjectRoles func(projectID string) []roster.Role

// NotificationService owns the per-user notification queues and fans
// project and chat events out to them. Fan-out is N independent adds;
// a failure mid-way leaves earlier recipients notified, which is fine
// for an advisory side channel.
type NotificationService struct {
	repo         *repository.Repository
	roster       *roster.Roster
	projectRoles ProjectRoles
}

// NewNotificationService creates the service and subscribes it to the
// bus.
func NewNotificationService(repo *repository.Repository, r *roster.Roster, bus *events.Bus, projectRoles ProjectRoles) *NotificationService {
	s := &NotificationService{
		repo:         repo,
		roster:       r,
		projectRoles: projectRoles,
	}

	bus.Subscribe(func(ctx context.Context, e events.Event) error {
		switch ev := e.(type) {
		case events.ProjectShared:
			if ev.Notify {
				s.fanOutProjectShared(ctx, ev)
			}
		case events.ProjectStatusChanged:
			s.fanOutStatusChange(ctx, ev)
		case events.MessageSent:
			s.fanOutMessage(ctx, ev)
		}
		return nil
	})

	return s
}

// AddRequest contains the data for a single notification.
type AddRequest struct {
	UserID       string
	Type         string
	Title        string
	Message      string
	ProjectID    string
	ProjectName  string
	FromUserID   string
	FromUserName string
}

// Add assigns id and timestamp and prepends the notification to the
// user's queue.
func (s *NotificationService) Add(ctx context.Context, req AddRequest) (*domain.Notification, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("user id required")
	}

	n := domain.Notification{
		ID:           uuid.New().String(),
		UserID:       req.UserID,
		Type:         req.Type,
		Title:        req.Title,
		Message:      req.Message,
		ProjectID:    req.ProjectID,
		ProjectName:  req.ProjectName,
		FromUserID:   req.FromUserID,
		FromUserName: req.FromUserName,
		CreatedAt:    time.Now(),
	}
	s.repo.Prepend(n)
	return &n, nil
}

// MarkRead flips the read flag; no-op if already read or unknown.
func (s *NotificationService) MarkRead(notificationID string) {
	s.repo.MarkRead(notificationID)
}

// UnreadCount returns the user's unread notification count.
func (s *NotificationService) UnreadCount(userID string) int {
	return s.repo.UnreadCount(userID)
}

// ForUser returns the user's queue, most recent first.
func (s *NotificationService) ForUser(userID string) []domain.Notification {
	return s.repo.ForUser(userID)
}

// notifyRoles adds one notification per user acting under the given
// roles. Each add is independent.
func (s *NotificationService) notifyRoles(ctx context.Context, roles []roster.Role, skipUserID string, req AddRequest) {
	for _, role := range roles {
		for _, u := range s.roster.ByRole(role) {
			if u.ID == skipUserID {
				continue
			}
			req.UserID = u.ID
			s.Add(ctx, req)
		}
	}
}

func (s *NotificationService) fanOutProjectShared(ctx context.Context, ev events.ProjectShared) {
	from, _ := s.roster.ByID(ev.ActorID)
	s.notifyRoles(ctx, ev.Roles, ev.ActorID, AddRequest{
		Type:         domain.TypeProjectShared,
		Title:        "Proyecto compartido",
		Message:      fmt.Sprintf("El proyecto %q fue compartido contigo.", ev.ProjectName),
		ProjectID:    ev.ProjectID,
		ProjectName:  ev.ProjectName,
		FromUserID:   ev.ActorID,
		FromUserName: from.Name,
	})
}

func (s *NotificationService) fanOutStatusChange(ctx context.Context, ev events.ProjectStatusChanged) {
	from, _ := s.roster.ByID(ev.ActorID)
	base := AddRequest{
		ProjectID:    ev.ProjectID,
		ProjectName:  ev.ProjectName,
		FromUserID:   ev.ActorID,
		FromUserName: from.Name,
	}

	switch ev.NewStatus {
	case "approved":
		base.Type = domain.TypeProjectApproved
		base.Title = "Proyecto aprobado"
		base.Message = fmt.Sprintf("El proyecto %q fue aprobado.", ev.ProjectName)
		s.notifyRoles(ctx, []roster.Role{roster.RoleDesigner}, ev.ActorID, base)
	case "rejected":
		base.Type = domain.TypeProjectRejected
		base.Title = "Proyecto rechazado"
		base.Message = fmt.Sprintf("El proyecto %q fue rechazado.", ev.ProjectName)
		if ev.Reason != "" {
			base.Message += " Motivo: " + ev.Reason
		}
		s.notifyRoles(ctx, []roster.Role{roster.RoleDesigner}, ev.ActorID, base)
	case "in_assembly":
		base.Type = domain.TypeWorkOrderAssigned
		base.Title = "Orden de trabajo asignada"
		base.Message = fmt.Sprintf("El proyecto %q entra en ensamblaje.", ev.ProjectName)
		s.notifyRoles(ctx, []roster.Role{roster.RoleProduction}, ev.ActorID, base)
	case "completed":
		base.Type = domain.TypeWorkOrderCompleted
		base.Title = "Orden de trabajo completada"
		base.Message = fmt.Sprintf("El proyecto %q fue completado.", ev.ProjectName)
		s.notifyRoles(ctx, []roster.Role{roster.RoleDesigner, roster.RoleClient}, ev.ActorID, base)
	}
}

func (s *NotificationService) fanOutMessage(ctx context.Context, ev events.MessageSent) {
	// Direct message: one chat_message notification for the recipient.
	if ev.RecipientID != "" {
		if ev.RecipientID == ev.SenderID {
			return
		}
		s.Add(ctx, AddRequest{
			UserID:       ev.RecipientID,
			Type:         domain.TypeChatMessage,
			Title:        "Nuevo mensaje",
			Message:      ev.Content,
			ProjectID:    ev.ProjectID,
			FromUserID:   ev.SenderID,
			FromUserName: ev.SenderName,
		})
		return
	}

	// Project broadcast: comment_added for the project's shared roles.
	if ev.ProjectID == "" || s.projectRoles == nil {
		return
	}
	s.notifyRoles(ctx, s.projectRoles(ev.ProjectID), ev.SenderID, AddRequest{
		Type:         domain.TypeCommentAdded,
		Title:        "Nuevo comentario",
		Message:      ev.Content,
		ProjectID:    ev.ProjectID,
		FromUserID:   ev.SenderID,
		FromUserName: ev.SenderName,
	})
}
