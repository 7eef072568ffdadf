package qrcode

import (
	"encoding/json"
	"fmt"

	"beacon/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// InvitePayload is the structure encoded into a friend-invite QR code.
// The mobile client scans it and issues a normal friend request.
type InvitePayload struct {
	UserID string `json:"user_id"`
	Type   string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateInviteQR generates a PNG QR code embedding the user's invite payload.
func (s *qrcodeService) GenerateInviteQR(userID uuid.UUID) ([]byte, error) {
	payload := InvitePayload{
		UserID: userID.String(),
		Type:   "friend_invite",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code payload: %w", err)
	}

	png, err := qrcode.Encode(string(jsonData), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	return png, nil
}
