package redisstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// changedChannelPrefix is the Pub/Sub channel announcing collection
// saves: collab:changed:{key}. Subscribers use it to refresh badges and
// lists; delivery is best-effort.
const changedChannelPrefix = "collab:changed:"

// Store persists collections as JSON payloads in Redis, one key per
// collection. Payloads have no TTL; the collections are the system of
// record.
type Store struct {
	client *redis.Client
}

func New(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return data, true, nil
}

func (s *Store) Save(ctx context.Context, key string, payload []byte) error {
	if err := s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	// Announce the change; result intentionally ignored.
	s.client.Publish(ctx, changedChannelPrefix+key, key)

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
