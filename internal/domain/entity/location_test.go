package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationSnapshot_Active(t *testing.T) {
	expiresAt := time.Now().Add(5 * time.Minute)
	snapshot := &LocationSnapshot{Shared: true, ExpiresAt: expiresAt}

	assert.True(t, snapshot.Active(expiresAt.Add(-time.Nanosecond)))
	// Expiry is exclusive: gone exactly at ExpiresAt.
	assert.False(t, snapshot.Active(expiresAt))
	assert.False(t, snapshot.Active(expiresAt.Add(time.Second)))
}

func TestLocationSnapshot_Active_Unshared(t *testing.T) {
	snapshot := &LocationSnapshot{Shared: false, ExpiresAt: time.Now().Add(5 * time.Minute)}

	assert.False(t, snapshot.Active(time.Now()))
}
