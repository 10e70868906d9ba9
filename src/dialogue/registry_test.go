package dialogue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk_nlu/src/model"
)

func newTestRegistry(t *testing.T) *MemoryRegistry {
	t.Helper()
	r := NewMemoryRegistry(model.SessionConfig{})
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestUpdateCreatesSession(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	state, err := r.Update(ctx, "s1", func(s *model.DialogueState) {
		s.PrimaryIntent = "greeting"
	})
	require.NoError(t, err)

	assert.Equal(t, "s1", state.SessionID)
	assert.NotEmpty(t, state.ConversationID)
	assert.Equal(t, "greeting", state.PrimaryIntent)
	assert.NotNil(t, state.CollectedEntities)
	assert.NotNil(t, state.MissingSlots)
	assert.NotNil(t, state.ConversationHistory)
	assert.False(t, state.EscalationRequired)
}

func TestGetReturnsSnapshot(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	_, err := r.Update(ctx, "s1", func(s *model.DialogueState) {
		s.CollectedEntities["room_type"] = "deluxe"
	})
	require.NoError(t, err)

	snap, found, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)

	// Mutating the snapshot must not leak into stored state.
	snap.CollectedEntities["room_type"] = "suite"

	again, _, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "deluxe", again.CollectedEntities["room_type"])
}

func TestGetUnknownSession(t *testing.T) {
	r := newTestRegistry(t)

	_, found, err := r.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteIsIdempotent(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	_, err := r.Update(ctx, "s1", func(*model.DialogueState) {})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, "s1"))
	require.NoError(t, r.Delete(ctx, "s1"))

	_, found, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteThenUpdateStartsFresh(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	first, err := r.Update(ctx, "s1", func(s *model.DialogueState) { s.TurnCount = 5 })
	require.NoError(t, err)
	require.NoError(t, r.Delete(ctx, "s1"))

	second, err := r.Update(ctx, "s1", func(*model.DialogueState) {})
	require.NoError(t, err)

	assert.Zero(t, second.TurnCount)
	assert.NotEqual(t, first.ConversationID, second.ConversationID)
}

func TestConcurrentUpdatesSameSession(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()
	const turns = 50

	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Update(ctx, "s1", func(s *model.DialogueState) {
				s.TurnCount++
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, found, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, turns, state.TurnCount)
}

func TestConcurrentUpdatesDistinctSessions(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()
	ids := []string{"a", "b", "c", "d"}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				_, err := r.Update(ctx, id, func(s *model.DialogueState) {
					s.TurnCount++
				})
				assert.NoError(t, err)
			}
		}(id)
	}
	wg.Wait()

	for _, id := range ids {
		state, found, err := r.Get(ctx, id)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 20, state.TurnCount)
	}
}

func TestSweepDuringActiveTurns(t *testing.T) {
	r := NewMemoryRegistry(model.SessionConfig{TTLSeconds: 60, SweepIntervalSeconds: 3600})
	defer r.Close()
	ctx := context.Background()
	const turns = 200

	// A fresh session is never stale, so sweeping concurrently with its
	// turns must not drop any of them.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < turns; i++ {
			_, err := r.Update(ctx, "s1", func(s *model.DialogueState) {
				s.TurnCount++
			})
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < turns; i++ {
			r.evictIdle()
		}
	}()
	wg.Wait()

	state, found, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, turns, state.TurnCount)
}

func TestEvictIdleRespectsTTL(t *testing.T) {
	r := NewMemoryRegistry(model.SessionConfig{TTLSeconds: 60, SweepIntervalSeconds: 3600})
	defer r.Close()
	ctx := context.Background()

	_, err := r.Update(ctx, "stale", func(*model.DialogueState) {})
	require.NoError(t, err)
	_, err = r.Update(ctx, "fresh", func(*model.DialogueState) {})
	require.NoError(t, err)

	// Age one session past the TTL, then sweep.
	r.mu.Lock()
	r.sessions["stale"].state.UpdatedAt = time.Now().Add(-2 * time.Minute).Unix()
	r.mu.Unlock()
	r.evictIdle()

	_, found, err := r.Get(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = r.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.True(t, found)
}
