package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skydesk/skydesk/store"
)

func TestGetOrCreate(t *testing.T) {
	s := NewStore()

	first := s.GetOrCreate("alice")
	require.NotNil(t, first)
	assert.Equal(t, "alice", first.UserID)
	assert.Empty(t, first.Airport)
	assert.Empty(t, first.Query)
	assert.WithinDuration(t, time.Now(), first.LastActiveAt, time.Second)

	first.Airport = store.AirportDubai
	again := s.GetOrCreate("alice")
	assert.Same(t, first, again, "existing session must be returned, not replaced")
	assert.Equal(t, store.AirportDubai, again.Airport)
}

func TestDelete(t *testing.T) {
	s := NewStore()
	s.GetOrCreate("alice")
	s.Delete("alice")
	assert.Equal(t, 0, s.Len())

	// Deleting an unknown user is a no-op.
	s.Delete("bob")
}

func TestSweepExpired(t *testing.T) {
	s := NewStore()
	now := time.Now()

	stale := s.GetOrCreate("stale")
	stale.LastActiveAt = now.Add(-2 * time.Hour)
	fresh := s.GetOrCreate("fresh")
	fresh.LastActiveAt = now.Add(-30 * time.Minute)

	removed := s.SweepExpired(now, time.Hour)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, s.Len())

	// The surviving session is the one touched within the timeout.
	survivor := s.GetOrCreate("fresh")
	assert.Same(t, fresh, survivor)
}

func TestTouchKeepsSessionAlive(t *testing.T) {
	s := NewStore()
	now := time.Now()

	sess := s.GetOrCreate("alice")
	sess.LastActiveAt = now.Add(-2 * time.Hour)
	s.Touch(sess)

	removed := s.SweepExpired(now, time.Hour)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, s.Len())
}

func TestConcurrentAccess(t *testing.T) {
	s := NewStore()
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func(id int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				sess := s.GetOrCreate("user")
				s.Touch(sess)
				s.SweepExpired(time.Now(), time.Hour)
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.Equal(t, 1, s.Len())
}
