package repository

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/Angelo270204/prototipado-backend/internal/notifications/domain"
	"github.com/Angelo270204/prototipado-backend/internal/storage"
)

const persistTimeout = 5 * time.Second

// Repository owns the notification queues. The collection is a single
// list ordered most-recent-first; per-user views filter it.
type Repository struct {
	mu            sync.Mutex
	store         storage.Store
	notifications []domain.Notification
}

// New loads the collection; an absent key starts empty, a corrupt
// payload is logged and reset.
func New(ctx context.Context, store storage.Store) *Repository {
	r := &Repository{store: store}

	payload, found, err := store.Load(ctx, storage.KeyNotifications)
	if err != nil {
		log.Printf("[notifications] load failed, starting empty: %v", err)
		return r
	}
	if !found {
		return r
	}
	if err := json.Unmarshal(payload, &r.notifications); err != nil {
		log.Printf("[notifications] corrupt collection, starting empty: %v", err)
		r.notifications = nil
	}
	return r
}

// Prepend puts a notification at the head of the list.
func (r *Repository) Prepend(n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append([]domain.Notification{n}, r.notifications...)
	r.persistLocked()
}

// MarkRead flips the read flag. Already-read and unknown ids are a
// no-op; the flag never goes back to unread.
func (r *Repository) MarkRead(notificationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == notificationID {
			if !r.notifications[i].Read {
				r.notifications[i].Read = true
				r.persistLocked()
			}
			return
		}
	}
}

// ForUser returns the user's queue, most recent first.
func (r *Repository) ForUser(userID string) []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Notification, 0)
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// UnreadCount counts the user's unread notifications.
func (r *Repository) UnreadCount(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}

func (r *Repository) persistLocked() {
	data, err := json.Marshal(r.notifications)
	if err != nil {
		log.Printf("[notifications] marshal failed: %v", err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := r.store.Save(ctx, storage.KeyNotifications, data); err != nil {
			log.Printf("[notifications] persist failed: %v", err)
		}
	}()
}
