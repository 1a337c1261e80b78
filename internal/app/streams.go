package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

type streamState struct {
	stream  *domain.Stream
	viewers map[core.SessionID]struct{}
}

// StreamRegistry tracks active screen-share sessions: broadcaster,
// metadata and viewer set per stream. A stream lives until an explicit
// owner stop or the broadcaster's disconnect. Unlike voice rooms there is
// no exclusivity — a connection may watch any number of streams.
type StreamRegistry struct {
	mu      sync.RWMutex
	streams map[domain.StreamID]*streamState
}

func NewStreamRegistry() *StreamRegistry {
	return &StreamRegistry{streams: make(map[domain.StreamID]*streamState)}
}

// Start records a new stream with an empty viewer set.
func (r *StreamRegistry) Start(broadcaster core.SessionID, quality string, fps int) domain.Stream {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := domain.NewStream(string(broadcaster), quality, fps)
	for {
		if _, taken := r.streams[st.ID]; !taken {
			break
		}
		st.ID = domain.StreamID(domain.GenerateShortID())
	}
	r.streams[st.ID] = &streamState{stream: st, viewers: make(map[core.SessionID]struct{})}
	log.Info().Str("module", "app.streams").Str("stream", string(st.ID)).Str("sid", string(broadcaster)).Msg("stream started")
	return *st
}

// Stop removes the stream if requester is its broadcaster and returns the
// notification scope (broadcaster + viewers) captured before deletion.
// Anything else is a silent no-op.
func (r *StreamRegistry) Stop(id domain.StreamID, requester core.SessionID) ([]core.SessionID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.streams[id]
	if !ok || st.stream.Broadcaster != string(requester) {
		return nil, false
	}
	scope := scopeOf(st)
	delete(r.streams, id)
	log.Info().Str("module", "app.streams").Str("stream", string(id)).Msg("stream stopped")
	return scope, true
}

// Watch adds viewer to the stream's viewer set and returns the new viewer
// count. Reports false for an unknown stream.
func (r *StreamRegistry) Watch(viewer core.SessionID, id domain.StreamID) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.streams[id]
	if !ok {
		return 0, false
	}
	st.viewers[viewer] = struct{}{}
	return len(st.viewers), true
}

// RemoveViewer drops viewer from the stream's viewer set. Tolerates the
// stream already being gone.
func (r *StreamRegistry) RemoveViewer(viewer core.SessionID, id domain.StreamID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.streams[id]; ok {
		delete(st.viewers, viewer)
	}
}

// Get returns a copy of the stream and its viewer count.
func (r *StreamRegistry) Get(id domain.StreamID) (domain.Stream, int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.streams[id]
	if !ok {
		return domain.Stream{}, 0, false
	}
	return *st.stream, len(st.viewers), true
}

// Scope returns broadcaster + viewers for notification fan-out.
func (r *StreamRegistry) Scope(id domain.StreamID) []core.SessionID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.streams[id]
	if !ok {
		return nil
	}
	return scopeOf(st)
}

// StreamsOf returns every stream broadcast by sid.
func (r *StreamRegistry) StreamsOf(sid core.SessionID) []domain.StreamID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.StreamID
	for id, st := range r.streams {
		if st.stream.Broadcaster == string(sid) {
			out = append(out, id)
		}
	}
	return out
}

// Watching returns every stream sid is a viewer of.
func (r *StreamRegistry) Watching(sid core.SessionID) []domain.StreamID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.StreamID
	for id, st := range r.streams {
		if _, ok := st.viewers[sid]; ok {
			out = append(out, id)
		}
	}
	return out
}

// StreamSnap pairs a stream copy with its viewer count.
type StreamSnap struct {
	Stream  domain.Stream
	Viewers int
}

// List returns a snapshot of every active stream.
func (r *StreamRegistry) List() []StreamSnap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]StreamSnap, 0, len(r.streams))
	for _, st := range r.streams {
		out = append(out, StreamSnap{Stream: *st.stream, Viewers: len(st.viewers)})
	}
	return out
}

// Count reports the number of active streams.
func (r *StreamRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.streams)
}

func scopeOf(st *streamState) []core.SessionID {
	scope := make([]core.SessionID, 0, len(st.viewers)+1)
	scope = append(scope, core.SessionID(st.stream.Broadcaster))
	for v := range st.viewers {
		scope = append(scope, v)
	}
	return scope
}
