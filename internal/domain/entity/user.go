// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the directory view of a campus account. The user record is owned and
// mutated by the external user service; this subsystem only reads privacy
// settings and suspension state, and adjusts the denormalized friends counter.
type User struct {
	ID           uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	Email        string      // The user's primary contact email.
	Name         string      // The user's display name.
	Suspended    bool        // Suspended accounts are rejected at connection time.
	FriendsCount int         // Denormalized count of accepted friendships.
	Privacy      UserPrivacy // Location-sharing privacy settings.
	CreatedAt    time.Time   // Timestamp of when this user account was created.
	UpdatedAt    time.Time   // Timestamp of the last modification to this user's data.
}

// UserPrivacy holds the per-user location sharing preferences.
type UserPrivacy struct {
	LocationSharingMode SharingMode // off, approximate or live.
	PrecisionMeters     float64     // Obfuscation radius applied in approximate mode.
}
