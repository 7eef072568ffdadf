package notification

import (
	"context"
	"fmt"

	"beacon/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// userTopicPrefix namespaces per-user FCM topics. Clients subscribe their
// devices to "user-<id>" after login, so no device token bookkeeping is
// needed on this side.
const userTopicPrefix = "user-"

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendToUser sends a push notification to every device subscribed to the user's topic.
func (s *firebaseService) SendToUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: userTopicPrefix + userID.String(),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
