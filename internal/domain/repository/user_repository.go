package repository

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user record is not found in the directory.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the read-mostly view of the external user directory.
// This subsystem only reads privacy settings and suspension state, and keeps
// the denormalized friends counter in step with friendship transitions.
type UserRepository interface {
	// FindUserByID retrieves a user with privacy settings by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUsersByIDs retrieves users in bulk, keyed by ID. Missing users are
	// simply absent from the result.
	FindUsersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.User, error)

	// AdjustFriendsCount atomically adds delta (may be negative) to the
	// user's friends counter.
	AdjustFriendsCount(ctx context.Context, userID uuid.UUID, delta int) error
}
