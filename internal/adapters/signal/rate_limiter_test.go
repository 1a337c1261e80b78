package signal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoomRateLimiterBlocksOverLimit(t *testing.T) {
	rl := NewRoomRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("s1"))
	}
	assert.False(t, rl.Allow("s1"))

	// Limits are per connection.
	assert.True(t, rl.Allow("s2"))
}

func TestRoomRateLimiterWindowSlides(t *testing.T) {
	rl := NewRoomRateLimiter(1, 20*time.Millisecond)

	assert.True(t, rl.Allow("s1"))
	assert.False(t, rl.Allow("s1"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, rl.Allow("s1"))
}
