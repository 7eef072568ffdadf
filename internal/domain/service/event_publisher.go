package service

import (
	"context"
)

// Friend event types published for async processing.
const (
	FriendEventAccepted = "friend.accepted"
	FriendEventRemoved  = "friend.removed"
)

// FriendEvent represents a friendship transition to be processed by the push worker.
type FriendEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	Type        string `json:"type"`                 // One of the FriendEvent* constants
	ActorID     string `json:"actor_id"`             // The user who performed the transition
	RecipientID string `json:"recipient_id"`         // The user to be notified
	ActorName   string `json:"actor_name,omitempty"` // Display name for the notification body
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishFriendEvent publishes a friendship event for async processing
	PublishFriendEvent(ctx context.Context, event *FriendEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
