// Package snapshot mirrors profile sections into Redis so the CV
// tailoring flow can assemble a full profile with one round of GETs
// instead of a multi-table load. The mirror is one-way and best-effort:
// Postgres stays the source of truth, a failed sync is logged by the
// caller and never fails the originating write.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cv-match-backend/internal/domain"
)

// Store implements domain.SnapshotStore on a Redis client. Keys carry no
// TTL: a stale section is still more useful to the tailoring flow than a
// missing one, and every profile write overwrites its slot anyway.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func slotKey(userID, slot string) string {
	return fmt.Sprintf("profile:%s:%s", userID, slot)
}

func syncedKey(userID, slot string) string {
	return fmt.Sprintf("profile:%s:%s:last_synced_at", userID, slot)
}

// SyncSection serializes the section value into its slot and stamps the
// sync marker. Last write wins; there is no read-modify-write cycle.
func (s *Store) SyncSection(ctx context.Context, userID, slot string, value interface{}) error {
	if s.rdb == nil {
		return redis.ErrClosed
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("snapshot: marshal %s: %w", slot, err)
	}

	pipe := s.rdb.Pipeline()
	pipe.Set(ctx, slotKey(userID, slot), payload, 0)
	pipe.Set(ctx, syncedKey(userID, slot), time.Now().UTC().Format(time.RFC3339), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", slot, err)
	}
	return nil
}

// SyncCredentials recomputes the combined credentials slot from the two
// source lists. The combined list exists only in derived form, so any
// change to either source must come through here to keep it consistent.
func (s *Store) SyncCredentials(ctx context.Context, userID string, education, certifications []domain.Credential) error {
	combined := make([]domain.Credential, 0, len(education)+len(certifications))
	combined = append(combined, education...)
	combined = append(combined, certifications...)
	return s.SyncSection(ctx, userID, domain.SlotCredentials, combined)
}

// ReadSection returns the raw stored JSON for a slot, or nil when the
// slot has never been synced
func (s *Store) ReadSection(ctx context.Context, userID, slot string) ([]byte, error) {
	if s.rdb == nil {
		return nil, redis.ErrClosed
	}

	data, err := s.rdb.Get(ctx, slotKey(userID, slot)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %s: %w", slot, err)
	}
	return data, nil
}

// LastSyncedAt returns the RFC3339 timestamp of the slot's last sync, or
// an empty string when the slot has never been synced
func (s *Store) LastSyncedAt(ctx context.Context, userID, slot string) (string, error) {
	if s.rdb == nil {
		return "", redis.ErrClosed
	}

	ts, err := s.rdb.Get(ctx, syncedKey(userID, slot)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("snapshot: read marker %s: %w", slot, err)
	}
	return ts, nil
}
