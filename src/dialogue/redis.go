package dialogue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"hoteldesk_nlu/src/model"
)

const sessionKeyPrefix = "session:"

// RedisRegistry stores dialogue state in Redis so sessions survive process
// restarts. Per-session serialization is enforced with keyed local locks;
// idle eviction uses Redis key TTLs.
type RedisRegistry struct {
	client *redis.Client
	ttl    time.Duration
	locks  sync.Map // session id -> *sync.Mutex
}

// NewRedisRegistry connects to Redis and verifies the connection.
func NewRedisRegistry(ctx context.Context, redisURL string, config model.SessionConfig) (*RedisRegistry, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("redis URL is required for the redis session store")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisRegistry{
		client: client,
		ttl:    time.Duration(config.TTLSeconds) * time.Second,
	}, nil
}

func (r *RedisRegistry) key(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (r *RedisRegistry) lock(sessionID string) *sync.Mutex {
	mu, _ := r.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (r *RedisRegistry) load(ctx context.Context, sessionID string) (*model.DialogueState, bool, error) {
	data, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load session: %w", err)
	}

	var state model.DialogueState
	if err := sonic.Unmarshal([]byte(data), &state); err != nil {
		return nil, false, fmt.Errorf("failed to decode session: %w", err)
	}
	return &state, true, nil
}

func (r *RedisRegistry) save(ctx context.Context, state *model.DialogueState) error {
	data, err := sonic.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.client.Set(ctx, r.key(state.SessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Update loads (or creates) the state, applies fn under the session's lock
// and writes it back, refreshing the TTL.
func (r *RedisRegistry) Update(ctx context.Context, sessionID string, fn func(*model.DialogueState)) (*model.DialogueState, error) {
	mu := r.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	state, found, err := r.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		state = newState(sessionID)
	}

	fn(state)
	state.UpdatedAt = time.Now().Unix()

	if err := r.save(ctx, state); err != nil {
		return nil, err
	}
	return state.Clone(), nil
}

func (r *RedisRegistry) Get(ctx context.Context, sessionID string) (*model.DialogueState, bool, error) {
	mu := r.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()
	return r.load(ctx, sessionID)
}

func (r *RedisRegistry) Delete(ctx context.Context, sessionID string) error {
	mu := r.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	// The mutex stays registered: a turn already waiting on it must keep
	// serializing against later turns for the same session id.
	return nil
}

func (r *RedisRegistry) Close() error {
	return r.client.Close()
}
