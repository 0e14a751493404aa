package bootstrap

import (
	"context"

	chatrepo "github.com/Angelo270204/prototipado-backend/internal/chat/repository"
	chatservice "github.com/Angelo270204/prototipado-backend/internal/chat/service"
	"github.com/Angelo270204/prototipado-backend/internal/events"
	notifrepo "github.com/Angelo270204/prototipado-backend/internal/notifications/repository"
	notifservice "github.com/Angelo270204/prototipado-backend/internal/notifications/service"
	projrepo "github.com/Angelo270204/prototipado-backend/internal/projects/repository"
	projservice "github.com/Angelo270204/prototipado-backend/internal/projects/service"
	"github.com/Angelo270204/prototipado-backend/internal/roster"
	"github.com/Angelo270204/prototipado-backend/internal/storage"
)

// Engine holds the wired collaboration stores. Stores are explicit
// instances: nothing here is a package-level singleton.
type Engine struct {
	Bus           *events.Bus
	Roster        *roster.Roster
	Projects      *projservice.ProjectService
	Chat          *chatservice.ChatService
	Notifications *notifservice.NotificationService
}

// BuildEngine loads the collections from the store and wires the
// services to the event bus. Subscription order does not matter; every
// subscriber is best-effort.
func BuildEngine(ctx context.Context, store storage.Store) *Engine {
	bus := events.NewBus()
	users := roster.Seed()

	projects := projservice.NewProjectService(projrepo.New(ctx, store), bus)
	chat := chatservice.NewChatService(chatrepo.New(ctx, store), users, bus)

	projectRoles := func(projectID string) []roster.Role {
		if p, ok := projects.Find(projectID); ok {
			return p.SharedRoles
		}
		return nil
	}
	notifications := notifservice.NewNotificationService(notifrepo.New(ctx, store), users, bus, projectRoles)

	return &Engine{
		Bus:           bus,
		Roster:        users,
		Projects:      projects,
		Chat:          chat,
		Notifications: notifications,
	}
}
