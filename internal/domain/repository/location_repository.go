package repository

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/errors"

	"github.com/google/uuid"
)

// ErrSnapshotNotFound is returned when no location snapshot exists for a user.
var ErrSnapshotNotFound = errors.New("location snapshot not found")

// LocationRepository defines the interface for perishable location snapshots.
// Exactly one row per user; writes are last-writer-wins.
type LocationRepository interface {
	// UpsertSnapshot overwrites the single snapshot row for the user.
	UpsertSnapshot(ctx context.Context, snapshot *entity.LocationSnapshot) error

	// FindByUserID retrieves the raw snapshot for a user regardless of
	// expiry or sharing flag.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.LocationSnapshot, error)

	// FindActiveByUserIDs is the bulk lookup used for friend-list fan-in:
	// a single query returning snapshots with expires_at > now and shared = true,
	// keyed by user ID. Users without a visible snapshot are simply absent.
	FindActiveByUserIDs(ctx context.Context, userIDs []uuid.UUID, now time.Time) (map[uuid.UUID]*entity.LocationSnapshot, error)
}
