package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationSnapshotModel is the GORM-specific struct for the 'location_snapshots' table.
// The user ID is the primary key, so each ping overwrites the previous row.
// Expiry is application-level (expires_at), not a store-native TTL.
type LocationSnapshotModel struct {
	UserID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Latitude       float64   `gorm:"not null"`
	Longitude      float64   `gorm:"not null"`
	AccuracyMeters float64   `gorm:"not null;default:0"`
	Shared         bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	ExpiresAt      time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (LocationSnapshotModel) TableName() string {
	return "location_snapshots"
}
