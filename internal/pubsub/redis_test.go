package pubsub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stalledPublisher(buffer int) *Publisher {
	// No worker drains the queue, as if Redis hung mid-publish.
	return &Publisher{
		channel: "test",
		queue:   make(chan []byte, buffer),
		done:    make(chan struct{}),
	}
}

func TestPublishNeverBlocksOnStalledPipeline(t *testing.T) {
	p := stalledPublisher(2)

	finished := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			p.Publish("user:online", map[string]string{"id": "c1"})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked while the queue was full")
	}
	// Overflow was dropped, not queued.
	assert.Len(t, p.queue, 2)
}

func TestPublishAfterCloseIsANoOp(t *testing.T) {
	p := stalledPublisher(2)
	p.closed = true

	assert.NotPanics(t, func() {
		p.Publish("user:online", map[string]string{"id": "c1"})
	})
	assert.Empty(t, p.queue)
}
