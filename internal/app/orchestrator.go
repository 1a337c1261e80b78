package app

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

// Orchestrator routes every inbound event: it mutates the component the
// event targets and emits the resulting notifications. A single mutex
// serializes mutating events, so each handler runs to completion against
// a consistent view of the shared state; emission itself never blocks
// (TrySend drops on backpressure) so a slow destination cannot stall the
// next event.
type Orchestrator struct {
	mu sync.Mutex

	Registry      *Registry
	Rooms         *RoomManager
	Streams       *StreamRegistry
	Conversations *ConversationStore

	// Sink mirrors broadcast-scope events when non-nil.
	Sink EventSink
}

func NewOrchestrator(reg *Registry, rooms *RoomManager, streams *StreamRegistry, convos *ConversationStore) *Orchestrator {
	return &Orchestrator{
		Registry:      reg,
		Rooms:         rooms,
		Streams:       streams,
		Conversations: convos,
	}
}

func encodeEvent(event string, data any) (core.Frame, error) {
	b, err := json.Marshal(domain.Event{
		Type:      event,
		Timestamp: time.Now().Unix(),
		Data:      data,
	})
	if err != nil {
		return nil, err
	}
	return core.Frame(b), nil
}

// emit unicasts to one connection. Silently drops if the destination is
// not connected or its buffer is full.
func (o *Orchestrator) emit(sid core.SessionID, event string, data any) {
	conn, ok := o.Registry.Conn(sid)
	if !ok {
		return
	}
	frame, err := encodeEvent(event, data)
	if err != nil {
		log.Error().Err(err).Str("module", "app.orchestrator").Str("event", event).Msg("encode event")
		return
	}
	_ = conn.TrySend(frame)
}

// emitTo fans out to a membership set, skipping except.
func (o *Orchestrator) emitTo(sids []core.SessionID, except core.SessionID, event string, data any) {
	frame, err := encodeEvent(event, data)
	if err != nil {
		log.Error().Err(err).Str("module", "app.orchestrator").Str("event", event).Msg("encode event")
		return
	}
	for _, sid := range sids {
		if sid == except {
			continue
		}
		if conn, ok := o.Registry.Conn(sid); ok {
			_ = conn.TrySend(frame)
		}
	}
}

// emitAll broadcasts to every live connection except the given one
// (pass "" to include everyone) and mirrors the event to the sink.
func (o *Orchestrator) emitAll(except core.SessionID, event string, data any) {
	frame, err := encodeEvent(event, data)
	if err != nil {
		log.Error().Err(err).Str("module", "app.orchestrator").Str("event", event).Msg("encode event")
		return
	}
	for _, snap := range o.Registry.SessionsSnapshot() {
		if snap.SID == except {
			continue
		}
		_ = snap.Conn.TrySend(frame)
	}
	if o.Sink != nil {
		o.Sink.Publish(event, data)
	}
}

// senderSnapshot resolves the sender's profile, substituting an anonymous
// record when the connection never logged in.
func (o *Orchestrator) senderSnapshot(sid core.SessionID) domain.User {
	if u, ok := o.Registry.Get(sid); ok {
		return u
	}
	return domain.User{ID: string(sid), Name: domain.AnonymousName, Status: domain.StatusOnline}
}

func (o *Orchestrator) participant(sid core.SessionID) domain.Participant {
	u := o.senderSnapshot(sid)
	return domain.Participant{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

func (o *Orchestrator) participants(sids []core.SessionID) []domain.Participant {
	out := make([]domain.Participant, 0, len(sids))
	for _, sid := range sids {
		out = append(out, o.participant(sid))
	}
	return out
}

// Stats is the read-only diagnostics snapshot.
type Stats struct {
	Users         int `json:"users"`
	Rooms         int `json:"rooms"`
	Conversations int `json:"conversations"`
	Streams       int `json:"streams"`
}

func (o *Orchestrator) Stats() Stats {
	return Stats{
		Users:         o.Registry.Count(),
		Rooms:         o.Rooms.Count(),
		Conversations: o.Conversations.Count(),
		Streams:       o.Streams.Count(),
	}
}

// Shutdown forces every live connection down: the session context stops
// the write pump, closing the socket unblocks a read pump parked in
// ReadMessage, and each read pump then runs the usual disconnect path.
// Called once while the process drains.
func (o *Orchestrator) Shutdown() {
	for _, snap := range o.Registry.SessionsSnapshot() {
		o.Registry.Cancel(snap.SID)
		snap.Conn.Close()
	}
}

// OnDisconnect unwinds everything a connection touched, in a fixed order:
// room membership, broadcast streams, viewer memberships, the user record,
// and finally the offline broadcast. It runs as one critical section and
// is a no-op when invoked again for the same id.
func (o *Orchestrator) OnDisconnect(sid core.SessionID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	sessExisted := o.Registry.Unbind(sid)

	for _, roomID := range o.Rooms.RoomsOf(sid) {
		o.leaveRoomLocked(sid, roomID)
	}

	// Streams this connection broadcast die with it. Delete before the
	// viewer sweep so the sweep never reads a stream mid-teardown.
	for _, streamID := range o.Streams.StreamsOf(sid) {
		if scope, ok := o.Streams.Stop(streamID, sid); ok {
			o.emitTo(scope, sid, domain.EventStreamEnded, domain.StreamEndedData{Stream: streamID})
		}
	}

	for _, streamID := range o.Streams.Watching(sid) {
		o.Streams.RemoveViewer(sid, streamID)
	}

	userExisted := o.Registry.Remove(sid)

	if sessExisted || userExisted {
		o.emitAll(sid, domain.EventUserOffline, domain.OfflineData{ID: string(sid)})
		log.Info().Str("module", "app.orchestrator").Str("sid", string(sid)).Msg("disconnect reconciled")
	}
}
