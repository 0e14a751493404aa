package repository

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/Angelo270204/prototipado-backend/internal/projects/domain"
	"github.com/Angelo270204/prototipado-backend/internal/roster"
	"github.com/Angelo270204/prototipado-backend/internal/storage"
)

const persistTimeout = 5 * time.Second

// Repository owns the project collection. Reads and writes go through
// the in-memory slice; every mutation schedules a best-effort write of
// the whole collection to the store. Callers never wait on durability.
type Repository struct {
	mu       sync.RWMutex
	store    storage.Store
	projects []domain.Project
}

// New loads the project collection from the store, falling back to the
// built-in seed when the key is absent or the payload is malformed.
func New(ctx context.Context, store storage.Store) *Repository {
	r := &Repository{store: store}

	payload, found, err := store.Load(ctx, storage.KeyProjects)
	if err != nil {
		log.Printf("[projects] load failed, using seed data: %v", err)
		r.projects = seedProjects()
		return r
	}
	if !found {
		r.projects = seedProjects()
		return r
	}
	if err := json.Unmarshal(payload, &r.projects); err != nil {
		log.Printf("[projects] corrupt collection, using seed data: %v", err)
		r.projects = seedProjects()
	}
	return r
}

// Insert appends a new project and schedules persistence.
func (r *Repository) Insert(p domain.Project) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = append(r.projects, p)
	r.persistLocked()
}

// Update replaces the project with the same id.
func (r *Repository) Update(p domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.projects {
		if r.projects[i].ID == p.ID {
			r.projects[i] = p
			r.persistLocked()
			return nil
		}
	}
	return domain.ErrProjectNotFound
}

// Find returns the project with the given id.
func (r *Repository) Find(id string) (domain.Project, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.projects {
		if r.projects[i].ID == id {
			return r.projects[i], true
		}
	}
	return domain.Project{}, false
}

// All returns the projects in creation order.
func (r *Repository) All() []domain.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out
}

// FilterBySharedRole returns the projects shared with the given role.
func (r *Repository) FilterBySharedRole(role roster.Role) []domain.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Project, 0)
	for i := range r.projects {
		if r.projects[i].SharedWith(role) {
			out = append(out, r.projects[i])
		}
	}
	return out
}

// persistLocked serializes the current collection and writes it in the
// background. Must be called with the write lock held; the snapshot is
// taken before unlocking so a later mutation cannot publish an older
// generation.
func (r *Repository) persistLocked() {
	data, err := json.Marshal(r.projects)
	if err != nil {
		log.Printf("[projects] marshal failed: %v", err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := r.store.Save(ctx, storage.KeyProjects, data); err != nil {
			log.Printf("[projects] persist failed: %v", err)
		}
	}()
}
