// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for friendship persistence.
var (
	// ErrFriendshipEdgeNotFound is returned when a friendship edge is not found.
	ErrFriendshipEdgeNotFound = errors.New("friendship edge not found")
	// ErrDuplicateFriendshipEdge is returned when an edge for the same (owner, peer) pair already exists.
	ErrDuplicateFriendshipEdge = errors.New("friendship edge already exists")
)

// FriendshipRepository defines the interface for friendship-edge database operations.
// Edges are directional: an accepted pair is stored as two rows whose statuses
// must never diverge; per-direction sharing flags are independent.
type FriendshipRepository interface {
	// CreateEdge persists a new directional edge.
	CreateEdge(ctx context.Context, edge *entity.FriendshipEdge) error

	// FindEdgeByID retrieves an edge by its unique ID.
	FindEdgeByID(ctx context.Context, id uuid.UUID) (*entity.FriendshipEdge, error)

	// FindEdge retrieves the single directional edge owner→peer.
	FindEdge(ctx context.Context, ownerID, peerID uuid.UUID) (*entity.FriendshipEdge, error)

	// FindEdgesBetween retrieves every edge between the pair, both directions.
	FindEdgesBetween(ctx context.Context, a, b uuid.UUID) ([]*entity.FriendshipEdge, error)

	// FindAcceptedByOwner retrieves the owner's outgoing accepted edges,
	// carrying the owner's own share_location/close_friend settings.
	FindAcceptedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.FriendshipEdge, error)

	// FindAcceptedByPeer retrieves the accepted edges pointing at the peer,
	// carrying each friend's sharing settings toward the peer. This is the
	// visibility fan-in query.
	FindAcceptedByPeer(ctx context.Context, peerID uuid.UUID) ([]*entity.FriendshipEdge, error)

	// FindPendingByPeer retrieves incoming pending requests for a user.
	FindPendingByPeer(ctx context.Context, peerID uuid.UUID) ([]*entity.FriendshipEdge, error)

	// AcceptedEdgeExists reports whether an accepted edge owner→peer exists.
	AcceptedEdgeExists(ctx context.Context, ownerID, peerID uuid.UUID) (bool, error)

	// UpdateEdge persists changes to an existing edge.
	UpdateEdge(ctx context.Context, edge *entity.FriendshipEdge) error

	// DeleteEdge removes a single edge by ID.
	DeleteEdge(ctx context.Context, id uuid.UUID) error

	// DeleteEdgesBetween removes every edge between the pair, both directions.
	// Returns the number of rows removed.
	DeleteEdgesBetween(ctx context.Context, a, b uuid.UUID) (int64, error)
}
