package service

import (
	"context"

	"github.com/google/uuid"
)

// NotificationService dispatches mobile push notifications. Delivery targets
// the user's per-account topic, so no device token bookkeeping happens here.
type NotificationService interface {
	// SendToUser sends a push notification to every device subscribed to the user's topic.
	SendToUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) error
}
