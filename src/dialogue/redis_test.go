package dialogue

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisSessionLockSurvivesDelete(t *testing.T) {
	r := &RedisRegistry{client: redis.NewClient(&redis.Options{
		Addr:       "127.0.0.1:1",
		MaxRetries: -1,
	})}
	defer r.client.Close()

	first := r.lock("s1")

	// The DEL fails against the unreachable client, but either way a clear
	// must not mint a new mutex: a turn still waiting on the old one would
	// stop serializing against later turns for the same session.
	_ = r.Delete(context.Background(), "s1")

	assert.Same(t, first, r.lock("s1"))
}
