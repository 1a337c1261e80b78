// Package pubsub mirrors broadcast-scope events to Redis so sibling nodes
// and ops tooling can observe presence churn without a socket connection.
package pubsub

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

const (
	queueSize      = 256
	publishTimeout = 5 * time.Second
)

// Publisher implements app.EventSink on top of a Redis channel. Publish is
// a non-blocking enqueue; one background worker does the network
// round-trips so a slow or hung Redis never stalls the event loop.
type Publisher struct {
	rdb     *redis.Client
	channel string
	queue   chan []byte
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewPublisher connects, pings and starts the worker; a relay without
// Redis should pass an empty URL upstream and skip construction entirely.
func NewPublisher(redisURL, channel string) (*Publisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	p := &Publisher{
		rdb:     rdb,
		channel: channel,
		queue:   make(chan []byte, queueSize),
		done:    make(chan struct{}),
	}
	go p.run()
	log.Info().Str("module", "pubsub").Str("channel", channel).Msg("connected to redis")
	return p, nil
}

// Publish enqueues the event envelope for the worker. Never blocks; a full
// queue drops the event, same discipline as a saturated send buffer.
func (p *Publisher) Publish(event string, data any) {
	b, err := json.Marshal(domain.Event{
		Type:      event,
		Timestamp: time.Now().Unix(),
		Data:      data,
	})
	if err != nil {
		log.Error().Err(err).Str("module", "pubsub").Str("event", event).Msg("marshal event")
		return
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	select {
	case p.queue <- b:
	default:
		log.Warn().Str("module", "pubsub").Str("event", event).Msg("mirror queue full, event dropped")
	}
}

func (p *Publisher) run() {
	defer close(p.done)
	for b := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := p.rdb.Publish(ctx, p.channel, b).Err(); err != nil {
			log.Error().Err(err).Str("module", "pubsub").Msg("publish event")
		}
		cancel()
	}
}

// Close drains the queue and releases the client. Publish calls after
// Close are silent no-ops.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()
	<-p.done
	return p.rdb.Close()
}
