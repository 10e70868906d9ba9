package dialogue

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"hoteldesk_nlu/src/logger"
	"hoteldesk_nlu/src/model"
)

// Registry owns dialogue state keyed by session id. Implementations must
// allow concurrent access for different keys and serialize updates for the
// same key. Callers only ever receive copies of the state.
type Registry interface {
	// Update applies fn to the session's state under the session lock,
	// creating the state on first use, and returns a snapshot.
	Update(ctx context.Context, sessionID string, fn func(*model.DialogueState)) (*model.DialogueState, error)
	// Get returns a snapshot of the session's state if it exists.
	Get(ctx context.Context, sessionID string) (*model.DialogueState, bool, error)
	// Delete removes the session. Deleting an unknown session is a no-op.
	Delete(ctx context.Context, sessionID string) error
	Close() error
}

func newState(sessionID string) *model.DialogueState {
	now := time.Now().Unix()
	return &model.DialogueState{
		SessionID:           sessionID,
		ConversationID:      uuid.NewString(),
		SubIntents:          []string{},
		CollectedEntities:   map[string]any{},
		MissingSlots:        []string{},
		ConversationHistory: []model.TurnRecord{},
		SentimentScores:     []float64{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

type sessionEntry struct {
	mu    sync.Mutex
	state *model.DialogueState
}

// MemoryRegistry is the in-process registry. Sessions live for the life of
// the process unless a TTL is configured, in which case a background sweep
// evicts idle sessions.
type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry

	ttl  time.Duration
	stop chan struct{}
	done chan struct{}
}

// NewMemoryRegistry builds the in-memory registry and starts the eviction
// sweep when a TTL is configured.
func NewMemoryRegistry(config model.SessionConfig) *MemoryRegistry {
	r := &MemoryRegistry{
		sessions: make(map[string]*sessionEntry),
		ttl:      time.Duration(config.TTLSeconds) * time.Second,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	if r.ttl > 0 {
		interval := time.Duration(config.SweepIntervalSeconds) * time.Second
		go r.sweep(interval)
	} else {
		close(r.done)
	}

	return r
}

func (r *MemoryRegistry) entry(sessionID string) *sessionEntry {
	r.mu.RLock()
	e, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if ok {
		return e
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[sessionID]; ok {
		return e
	}
	e = &sessionEntry{state: newState(sessionID)}
	r.sessions[sessionID] = e
	logger.Info().Str("session_id", sessionID).Msg("session created")
	return e
}

// Update applies fn under the session's own lock so concurrent turns for one
// session cannot interleave.
func (r *MemoryRegistry) Update(ctx context.Context, sessionID string, fn func(*model.DialogueState)) (*model.DialogueState, error) {
	for {
		e := r.entry(sessionID)
		e.mu.Lock()

		// The sweep may have evicted this entry between lookup and lock;
		// retry so the turn lands in a registered session.
		r.mu.RLock()
		registered := r.sessions[sessionID] == e
		r.mu.RUnlock()
		if !registered {
			e.mu.Unlock()
			continue
		}

		fn(e.state)
		e.state.UpdatedAt = time.Now().Unix()
		state := e.state.Clone()
		e.mu.Unlock()
		return state, nil
	}
}

func (r *MemoryRegistry) Get(ctx context.Context, sessionID string) (*model.DialogueState, bool, error) {
	r.mu.RLock()
	e, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone(), true, nil
}

func (r *MemoryRegistry) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	_, existed := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	r.mu.Unlock()

	if existed {
		logger.Info().Str("session_id", sessionID).Msg("session cleared")
	}
	return nil
}

// Close stops the eviction sweep.
func (r *MemoryRegistry) Close() error {
	if r.ttl > 0 {
		close(r.stop)
		<-r.done
	}
	return nil
}

func (r *MemoryRegistry) sweep(interval time.Duration) {
	defer close(r.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.evictIdle()
		}
	}
}

func (r *MemoryRegistry) evictIdle() {
	cutoff := time.Now().Add(-r.ttl).Unix()

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.sessions {
		// UpdatedAt is written under the entry mutex. A busy entry has a
		// turn in flight and cannot be stale; skip it until the next sweep.
		if !e.mu.TryLock() {
			continue
		}
		stale := e.state.UpdatedAt < cutoff
		e.mu.Unlock()

		if stale {
			delete(r.sessions, id)
			logger.Info().Str("session_id", id).Msg("idle session evicted")
		}
	}
}
