package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Angelo270204/prototipado-backend/internal/events"
	"github.com/Angelo270204/prototipado-backend/internal/projects/domain"
	"github.com/Angelo270204/prototipado-backend/internal/projects/repository"
	"github.com/Angelo270204/prototipado-backend/internal/roster"
)

// ProjectService handles project lifecycle logic. Chat rooms and
// notifications are side channels reached through the event bus; their
// failures never roll back a project mutation.
type ProjectService struct {
	repo *repository.Repository
	bus  *events.Bus
}

// NewProjectService creates a new project service.
func NewProjectService(repo *repository.Repository, bus *events.Bus) *ProjectService {
	return &ProjectService{
		repo: repo,
		bus:  bus,
	}
}

// CreateRequest contains the data needed to create a project.
type CreateRequest struct {
	Name               string
	Client             string
	PartsCount         int
	ValidationRequired bool
	ActorID            string
}

// ShareOptions controls the side effects of CreateAndShare.
type ShareOptions struct {
	Roles      []roster.Role
	CreateChat bool
	Notify     bool
}

// Create creates a project in draft with an empty share set.
func (s *ProjectService) Create(ctx context.Context, req CreateRequest) (*domain.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name required")
	}

	id, err := repository.NewPublicID("proj")
	if err != nil {
		return nil, fmt.Errorf("generate project id: %w", err)
	}

	now := time.Now()
	p := domain.Project{
		ID:                 id,
		Name:               strings.TrimSpace(req.Name),
		Client:             strings.TrimSpace(req.Client),
		Status:             domain.StatusDraft,
		PartsCount:         req.PartsCount,
		ValidationRequired: req.ValidationRequired,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	s.repo.Insert(p)
	return &p, nil
}

// CreateAndShare creates a project and shares it with the given roles.
// The project is persisted before any side effect runs: room creation
// and notification fan-out ride the event bus and cannot fail the
// creation.
func (s *ProjectService) CreateAndShare(ctx context.Context, req CreateRequest, opts ShareOptions) (*domain.Project, error) {
	roles := normalizeRoles(opts.Roles)
	if len(roles) == 0 {
		return s.Create(ctx, req)
	}

	p, err := s.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	p.SharedRoles = roles
	p.Status = domain.StatusPendingClient
	p.UpdatedAt = time.Now()
	if err := s.repo.Update(*p); err != nil {
		// The project was inserted above; a miss here cannot happen in
		// practice, but the create still wins.
		log.Printf("[projects] share update failed for %s: %v", p.ID, err)
	}

	s.bus.Publish(ctx, events.ProjectShared{
		ProjectID:   p.ID,
		ProjectName: p.Name,
		ClientName:  p.Client,
		ActorID:     req.ActorID,
		Roles:       roles,
		CreateChat:  opts.CreateChat,
		Notify:      opts.Notify,
	})

	return p, nil
}

// UpdateStatus replaces the project's status. Unknown project ids are a
// logged no-op; unknown status labels are an error.
func (s *ProjectService) UpdateStatus(ctx context.Context, projectID, label string) error {
	return s.transition(ctx, projectID, label, "", "")
}

// UpdateProgress stores the progress clamped to [0, 100]. Unknown
// project ids are a logged no-op.
func (s *ProjectService) UpdateProgress(ctx context.Context, projectID string, progress int) error {
	p, ok := s.repo.Find(projectID)
	if !ok {
		log.Printf("[projects] progress update for unknown project %s ignored", projectID)
		return nil
	}

	p.Progress = domain.ClampProgress(progress)
	p.UpdatedAt = time.Now()
	if err := s.repo.Update(p); err != nil {
		log.Printf("[projects] progress update for %s ignored: %v", projectID, err)
	}
	return nil
}

// Approve moves the project to approved.
func (s *ProjectService) Approve(ctx context.Context, projectID, actorID string) error {
	return s.transition(ctx, projectID, string(domain.StatusApproved), "", actorID)
}

// Reject moves the project to rejected and records the reason on the
// project.
func (s *ProjectService) Reject(ctx context.Context, projectID, reason, actorID string) error {
	return s.transition(ctx, projectID, string(domain.StatusRejected), strings.TrimSpace(reason), actorID)
}

// ShareWithClient moves the project to pending_client.
func (s *ProjectService) ShareWithClient(ctx context.Context, projectID, actorID string) error {
	return s.transition(ctx, projectID, string(domain.StatusPendingClient), "", actorID)
}

// All returns every project in creation order.
func (s *ProjectService) All() []domain.Project {
	return s.repo.All()
}

// Find returns the project with the given id.
func (s *ProjectService) Find(projectID string) (domain.Project, bool) {
	return s.repo.Find(projectID)
}

// FilterBySharedRole returns the projects shared with the given role.
func (s *ProjectService) FilterBySharedRole(role roster.Role) []domain.Project {
	return s.repo.FilterBySharedRole(role)
}

func (s *ProjectService) transition(ctx context.Context, projectID, label, reason, actorID string) error {
	status, err := domain.ParseStatus(label)
	if err != nil {
		return err
	}

	p, ok := s.repo.Find(projectID)
	if !ok {
		log.Printf("[projects] status update for unknown project %s ignored", projectID)
		return nil
	}

	old := p.Status
	p.Status = status
	if status == domain.StatusRejected {
		p.RejectionReason = reason
	} else {
		p.RejectionReason = ""
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(p); err != nil {
		log.Printf("[projects] status update for %s ignored: %v", projectID, err)
		return nil
	}

	s.bus.Publish(ctx, events.ProjectStatusChanged{
		ProjectID:   p.ID,
		ProjectName: p.Name,
		SharedRoles: p.SharedRoles,
		OldStatus:   string(old),
		NewStatus:   string(status),
		Reason:      reason,
		ActorID:     actorID,
	})
	return nil
}

// normalizeRoles drops unknown roles and duplicates, keeping order.
func normalizeRoles(in []roster.Role) []roster.Role {
	seen := make(map[roster.Role]bool, len(in))
	out := make([]roster.Role, 0, len(in))
	for _, r := range in {
		if !r.Valid() || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
