package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/studystreak/pkg/entity"
)

// TrackingCacheI is the volatile key-value store backing the replay guard
// and in-flight tracking sessions. Losing it loses open sessions, never
// recorded check-ins: date uniqueness is enforced at the storage layer.
type TrackingCacheI interface {
	// Writes value only when key is absent, with a TTL.
	// Returns false when the key already exists
	SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	// Reads value. Second result is false on a miss
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Atomically reads and removes value. Second result is false on a miss
	GetDel(ctx context.Context, key string) ([]byte, bool, error)
	// Removes key. Missing key is not an error
	Delete(ctx context.Context, key string) error
}

func IdempotencyMarkerKey(idempotencyKey string) string {
	return "checkin:idem:" + idempotencyKey
}

func TrackingSessionKey(uid uuid.UUID, source entity.CheckInSource) string {
	return "tracking:" + uid.String() + ":" + source.String()
}
