package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationSnapshot is the single most-recent reported position per user.
// Each ping overwrites the previous snapshot (last-writer-wins); a snapshot is
// logically absent once now reaches ExpiresAt, regardless of the Shared flag.
type LocationSnapshot struct {
	UserID         uuid.UUID // Owner of the snapshot; exactly one row per user.
	Latitude       float64   // Reported latitude, in [-90, 90].
	Longitude      float64   // Reported longitude, in [-180, 180].
	AccuracyMeters float64   // Device-reported accuracy radius, >= 0.
	Shared         bool      // Derived from the owner's sharing mode at write time.
	CreatedAt      time.Time // Timestamp of the write.
	ExpiresAt      time.Time // Application-level expiry; always after CreatedAt.
}

// Active reports whether the snapshot is still visible at the given instant.
// Expiry is exclusive: the snapshot is gone exactly at ExpiresAt.
func (s *LocationSnapshot) Active(now time.Time) bool {
	return s.Shared && now.Before(s.ExpiresAt)
}
