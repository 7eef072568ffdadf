package ws

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTrackRegistry_TrackAndSubscribers(t *testing.T) {
	registry := NewTrackRegistry()
	target := uuid.New()
	viewer := uuid.New()
	now := time.Now()

	registry.Track("conn-1", viewer, target, now.Add(time.Minute))

	subs := registry.Subscribers(target, now)
	assert.Len(t, subs, 1)
	assert.Equal(t, "conn-1", subs[0].ConnID)
	assert.Equal(t, viewer, subs[0].ViewerID)
}

func TestTrackRegistry_RetrackRefreshesLease(t *testing.T) {
	registry := NewTrackRegistry()
	target := uuid.New()
	viewer := uuid.New()
	now := time.Now()

	registry.Track("conn-1", viewer, target, now.Add(time.Second))
	registry.Track("conn-1", viewer, target, now.Add(time.Hour))

	subs := registry.Subscribers(target, now.Add(time.Minute))
	assert.Len(t, subs, 1, "re-track should replace the lease, not add one")
}

func TestTrackRegistry_EvictsExpiredOnRead(t *testing.T) {
	registry := NewTrackRegistry()
	target := uuid.New()
	now := time.Now()

	registry.Track("conn-1", uuid.New(), target, now.Add(time.Second))
	registry.Track("conn-2", uuid.New(), target, now.Add(time.Hour))

	subs := registry.Subscribers(target, now.Add(time.Minute))
	assert.Len(t, subs, 1)
	assert.Equal(t, "conn-2", subs[0].ConnID)

	// The expired lease must be gone, not just filtered.
	subs = registry.Subscribers(target, now)
	assert.Len(t, subs, 1)
}

func TestTrackRegistry_RemoveConnCancelsAllLeases(t *testing.T) {
	registry := NewTrackRegistry()
	targetA := uuid.New()
	targetB := uuid.New()
	viewer := uuid.New()
	now := time.Now()

	registry.Track("conn-1", viewer, targetA, now.Add(time.Hour))
	registry.Track("conn-1", viewer, targetB, now.Add(time.Hour))
	registry.Track("conn-2", uuid.New(), targetA, now.Add(time.Hour))

	registry.RemoveConn("conn-1")

	assert.Len(t, registry.Subscribers(targetA, now), 1)
	assert.Empty(t, registry.Subscribers(targetB, now))
}

func TestTrackRegistry_SubscribersUnknownTarget(t *testing.T) {
	registry := NewTrackRegistry()

	assert.Empty(t, registry.Subscribers(uuid.New(), time.Now()))
}
