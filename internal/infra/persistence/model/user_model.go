package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table. The table is
// owned by the external user service; this subsystem reads privacy fields and
// maintains the friends counter only.
type UserModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email               string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name                string    `gorm:"type:varchar(100);not null"`
	Suspended           bool      `gorm:"not null;default:false"`
	FriendsCount        int       `gorm:"not null;default:0"`
	LocationSharingMode string    `gorm:"type:varchar(16);not null;default:'off'"`
	PrecisionMeters     float64   `gorm:"type:decimal(10,2);not null;default:300.0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
