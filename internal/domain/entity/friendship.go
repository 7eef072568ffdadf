package entity

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipStatus is the lifecycle state of a directional friendship edge.
type FriendshipStatus string

const (
	// FriendshipPending is a request created by the requester, awaiting the recipient.
	FriendshipPending FriendshipStatus = "pending"
	// FriendshipAccepted marks a consented friendship. An accepted pair is always
	// represented by two rows whose statuses never diverge.
	FriendshipAccepted FriendshipStatus = "accepted"
	// FriendshipDeclined is a stale leftover; purged lazily on the next request.
	FriendshipDeclined FriendshipStatus = "declined"
	// FriendshipBlocked is reserved: no API transitions into it, but a blocked row
	// between a pair must veto new requests.
	FriendshipBlocked FriendshipStatus = "blocked"
)

// FriendshipEdge is one direction of a friendship between two users. The edge
// whose OwnerID is the sharer carries that sharer's settings toward the peer:
// ShareLocation on edge A→B controls whether B may see A's location.
type FriendshipEdge struct {
	ID            uuid.UUID        // The Global Unique Identifier (GUID) for this edge.
	OwnerID       uuid.UUID        // The user this direction belongs to.
	PeerID        uuid.UUID        // The user on the other end.
	Status        FriendshipStatus // Lifecycle state; mirrored on the reciprocal edge once accepted.
	RequestedBy   uuid.UUID        // The user who initiated the original request.
	ShareLocation bool             // Whether the owner shares their live location with the peer.
	CloseFriend   bool             // Owner's close-friend flag toward the peer.
	CreatedAt     time.Time        // Timestamp of when this edge was created.
	UpdatedAt     time.Time        // Timestamp of the last modification to this edge.
}

// Reciprocal builds the opposite-direction edge for an accepted pair with
// default sharing settings. Per-direction flags are owned independently.
func (e *FriendshipEdge) Reciprocal() *FriendshipEdge {
	return &FriendshipEdge{
		ID:            uuid.New(),
		OwnerID:       e.PeerID,
		PeerID:        e.OwnerID,
		Status:        e.Status,
		RequestedBy:   e.RequestedBy,
		ShareLocation: true,
		CloseFriend:   false,
	}
}
