package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SendFriendRequestInput represents the input for sending a friend request
type SendFriendRequestInput struct {
	PeerID uuid.UUID `json:"peer_id"`
}

// FriendRequestOutput represents a created or listed friend request
type FriendRequestOutput struct {
	RequestID   uuid.UUID `json:"request_id"`
	RequesterID uuid.UUID `json:"requester_id"`
	PeerID      uuid.UUID `json:"peer_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// PendingRequestOutput represents an incoming friend request awaiting a decision
type PendingRequestOutput struct {
	RequestID     uuid.UUID `json:"request_id"`
	RequesterID   uuid.UUID `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// FriendOutput is one entry of the viewer's friend list. ShareLocation and
// CloseFriend are the viewer's own settings toward that friend, not the
// friend's settings toward the viewer.
type FriendOutput struct {
	FriendID      uuid.UUID `json:"friend_id"`
	Name          string    `json:"name"`
	ShareLocation bool      `json:"share_location"`
	CloseFriend   bool      `json:"close_friend"`
	FriendsSince  time.Time `json:"friends_since"`
}

// UpdateShareSettingsInput represents the input for updating the per-friend
// sharing flags on the caller's outgoing edge
type UpdateShareSettingsInput struct {
	ShareLocation *bool `json:"share_location,omitempty"`
	CloseFriend   *bool `json:"close_friend,omitempty"`
}

// FriendshipUsecase defines the interface for friendship graph use cases
type FriendshipUsecase interface {
	// Request lifecycle
	SendRequest(ctx context.Context, requesterID uuid.UUID, input *SendFriendRequestInput) (*FriendRequestOutput, error)
	AcceptRequest(ctx context.Context, actingUserID, requestID uuid.UUID) error
	DeclineRequest(ctx context.Context, actingUserID, requestID uuid.UUID) error

	// Established friendships
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*FriendOutput, error)
	ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]*PendingRequestOutput, error)
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
	UpdateShareSettings(ctx context.Context, userID, friendID uuid.UUID, input *UpdateShareSettingsInput) (*FriendOutput, error)

	// Invites
	GenerateInviteQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
