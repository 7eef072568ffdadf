package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReportLocationInput represents a raw position report from a client
type ReportLocationInput struct {
	Latitude       float64 `json:"lat"`
	Longitude      float64 `json:"lng"`
	AccuracyMeters float64 `json:"accuracy_m"`
}

// ReportLocationOutput confirms a stored snapshot. Shared reflects the
// sharer's privacy mode at write time; the position itself is never echoed.
type ReportLocationOutput struct {
	Shared    bool      `json:"shared"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FriendLocationOutput is a friend's position as presented to one viewer,
// already obfuscated according to the friend's privacy mode.
type FriendLocationOutput struct {
	UserID         uuid.UUID `json:"user_id"`
	Latitude       float64   `json:"lat"`
	Longitude      float64   `json:"lng"`
	AccuracyMeters float64   `json:"accuracy_m"`
	Timestamp      time.Time `json:"ts"`
}

// LocationUsecase defines the interface for location reporting and
// friend-visibility resolution use cases
type LocationUsecase interface {
	// ReportLocation validates and stores the caller's latest position,
	// overwriting any previous snapshot.
	ReportLocation(ctx context.Context, userID uuid.UUID, input *ReportLocationInput) (*ReportLocationOutput, error)

	// GetFriendsLocations returns the presented positions of every friend
	// currently visible to the viewer, at most one entry per friend.
	GetFriendsLocations(ctx context.Context, viewerID uuid.UUID) ([]*FriendLocationOutput, error)

	// GetFriendLocation resolves a single friend's presented position for
	// the viewer. Returns ErrLocationNotVisible when the friend exists but
	// nothing may be shown.
	GetFriendLocation(ctx context.Context, viewerID, targetID uuid.UUID) (*FriendLocationOutput, error)

	// CanView reports whether the viewer may currently see the target's
	// location: accepted edge target→viewer with sharing enabled, target's
	// privacy mode not off, and an active shared snapshot.
	CanView(ctx context.Context, viewerID, targetID uuid.UUID) (bool, error)
}
