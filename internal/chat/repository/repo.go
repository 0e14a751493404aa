package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Angelo270204/prototipado-backend/internal/chat/domain"
	"github.com/Angelo270204/prototipado-backend/internal/storage"
	"github.com/google/uuid"
)

const persistTimeout = 5 * time.Second

// Repository owns the chat message log and the room list. Message ids
// are monotonic by creation order (msg-N); the sequence is restored from
// the loaded log so ids stay unique across restarts.
type Repository struct {
	mu       sync.Mutex
	store    storage.Store
	messages []domain.ChatMessage
	rooms    []domain.ChatRoom
	nextSeq  int64
}

// New loads both collections, falling back to the seeds on absence or
// corruption.
func New(ctx context.Context, store storage.Store) *Repository {
	r := &Repository{store: store, nextSeq: 1}

	r.messages = loadCollection(ctx, store, storage.KeyChatMessages, seedMessages)
	r.rooms = loadCollection(ctx, store, storage.KeyChatRooms, seedRooms)

	for _, m := range r.messages {
		if seq, ok := messageSeq(m.ID); ok && seq >= r.nextSeq {
			r.nextSeq = seq + 1
		}
	}
	return r
}

func loadCollection[T any](ctx context.Context, store storage.Store, key string, seed func() []T) []T {
	payload, found, err := store.Load(ctx, key)
	if err != nil {
		log.Printf("[chat] load %s failed, using seed data: %v", key, err)
		return seed()
	}
	if !found {
		return seed()
	}
	var out []T
	if err := json.Unmarshal(payload, &out); err != nil {
		log.Printf("[chat] corrupt collection %s, using seed data: %v", key, err)
		return seed()
	}
	return out
}

// Append assigns the next id, stores the message, and bumps the owning
// room's last-message pointer and unread counter.
func (r *Repository) Append(m domain.ChatMessage) domain.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = fmt.Sprintf("msg-%d", r.nextSeq)
	r.nextSeq++
	r.messages = append(r.messages, m)
	r.persistMessagesLocked()

	if m.ProjectID != "" {
		for i := range r.rooms {
			if r.rooms[i].ProjectID == m.ProjectID {
				last := m
				r.rooms[i].LastMessage = &last
				r.rooms[i].UnreadCount++
				r.persistRoomsLocked()
				break
			}
		}
	}
	return m
}

// ProjectMessages returns the project's messages in ascending creation
// order.
func (r *Repository) ProjectMessages(projectID string) []domain.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.ChatMessage, 0)
	for _, m := range r.messages {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// MarkMessageRead flips the read flag. Unknown ids and already-read
// messages are a no-op.
func (r *Repository) MarkMessageRead(messageID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.messages {
		if r.messages[i].ID == messageID {
			if !r.messages[i].Read {
				r.messages[i].Read = true
				r.persistMessagesLocked()
			}
			return
		}
	}
}

// CreateRoom creates the room for a project, or returns the existing one:
// at most one room exists per project.
func (r *Repository) CreateRoom(projectID, projectName string, participants []domain.Participant) (domain.ChatRoom, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rooms {
		if r.rooms[i].ProjectID == projectID {
			return r.rooms[i], false
		}
	}

	room := domain.ChatRoom{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		ProjectName:  projectName,
		Participants: participants,
	}
	r.rooms = append(r.rooms, room)
	r.persistRoomsLocked()
	return room, true
}

// Rooms returns every room in creation order.
func (r *Repository) Rooms() []domain.ChatRoom {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ChatRoom, len(r.rooms))
	copy(out, r.rooms)
	return out
}

// RoomForProject returns the project's room.
func (r *Repository) RoomForProject(projectID string) (domain.ChatRoom, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rooms {
		if r.rooms[i].ProjectID == projectID {
			return r.rooms[i], true
		}
	}
	return domain.ChatRoom{}, false
}

func (r *Repository) persistMessagesLocked() {
	persistAsync(r.store, storage.KeyChatMessages, r.messages)
}

func (r *Repository) persistRoomsLocked() {
	persistAsync(r.store, storage.KeyChatRooms, r.rooms)
}

func persistAsync[T any](store storage.Store, key string, collection []T) {
	data, err := json.Marshal(collection)
	if err != nil {
		log.Printf("[chat] marshal %s failed: %v", key, err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := store.Save(ctx, key, data); err != nil {
			log.Printf("[chat] persist %s failed: %v", key, err)
		}
	}()
}

func messageSeq(id string) (int64, bool) {
	rest, ok := strings.CutPrefix(id, "msg-")
	if !ok {
		return 0, false
	}
	seq, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return seq, true
}
