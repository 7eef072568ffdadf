package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipEdgeModel is the GORM-specific struct for the 'friendship_edges' table.
// One row per direction per pair; the compound unique index guarantees a single
// row for each (owner, peer) direction. Declines and removals delete rows
// outright, so there is no soft-delete column here.
type FriendshipEdgeModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendship_owner_peer;index"`
	PeerID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendship_owner_peer;index"`
	Status        string    `gorm:"type:varchar(16);not null;index"`
	RequestedBy   uuid.UUID `gorm:"type:uuid;not null"`
	ShareLocation bool      `gorm:"not null;default:true"`
	CloseFriend   bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendshipEdgeModel) TableName() string {
	return "friendship_edges"
}
