package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates friend-invite QR codes that other users can scan to
// start a friend request.
type QRCodeService interface {
	// GenerateInviteQR generates a PNG QR code embedding the user's invite payload.
	GenerateInviteQR(userID uuid.UUID) ([]byte, error)
}
