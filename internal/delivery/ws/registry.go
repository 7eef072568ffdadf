// Package ws implements the realtime gateway: authenticated websocket
// connections, track subscriptions and location update push.
package ws

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Subscription is one active track lease: a connection watching a target user
// until the lease expires.
type Subscription struct {
	ConnID    string
	ViewerID  uuid.UUID
	ExpiresAt time.Time
}

// TrackRegistry is the in-process subscription table, keyed by the tracked
// user. Leases are never removed on expiry by a background job; expired
// entries are evicted lazily on the next read.
type TrackRegistry struct {
	mu sync.RWMutex
	// target user id -> connection id -> lease
	subs map[uuid.UUID]map[string]*Subscription
}

// NewTrackRegistry creates an empty registry.
func NewTrackRegistry() *TrackRegistry {
	return &TrackRegistry{
		subs: make(map[uuid.UUID]map[string]*Subscription),
	}
}

// Track inserts or refreshes a lease. A connection holds at most one lease per
// target; re-tracking replaces the expiry.
func (r *TrackRegistry) Track(connID string, viewerID, targetID uuid.UUID, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.subs[targetID] == nil {
		r.subs[targetID] = make(map[string]*Subscription)
	}
	r.subs[targetID][connID] = &Subscription{
		ConnID:    connID,
		ViewerID:  viewerID,
		ExpiresAt: expiresAt,
	}
}

// Subscribers returns the live leases targeting the given user, evicting any
// lease that expired before now.
func (r *TrackRegistry) Subscribers(targetID uuid.UUID, now time.Time) []*Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	leases := r.subs[targetID]
	if len(leases) == 0 {
		return nil
	}

	live := make([]*Subscription, 0, len(leases))
	for connID, sub := range leases {
		if !sub.ExpiresAt.After(now) {
			delete(leases, connID)

			continue
		}
		live = append(live, sub)
	}

	if len(leases) == 0 {
		delete(r.subs, targetID)
	}

	return live
}

// RemoveConn cancels every lease owned by the connection. Called on disconnect.
func (r *TrackRegistry) RemoveConn(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for targetID, leases := range r.subs {
		delete(leases, connID)
		if len(leases) == 0 {
			delete(r.subs, targetID)
		}
	}
}
