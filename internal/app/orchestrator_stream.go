package app

import (
	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

// StartStream records a new broadcast, confirms creation to the
// broadcaster alone, and announces the stream to every connection.
func (o *Orchestrator) StartStream(sid core.SessionID, quality string, fps int) domain.StreamID {
	o.mu.Lock()
	defer o.mu.Unlock()

	broadcaster := o.senderSnapshot(sid)
	stream := o.Streams.Start(sid, quality, fps)

	o.emit(sid, domain.EventStreamCreated, domain.StreamCreatedData{Stream: stream.ID})
	o.emitAll("", domain.EventStreamStarted, domain.StreamStartedData{
		Stream:      stream.ID,
		Broadcaster: string(sid),
		Name:        broadcaster.Name,
		Avatar:      broadcaster.Avatar,
	})
	return stream.ID
}

// StopStream ends the stream if sid is its broadcaster; anyone else is
// silently ignored so stream existence never leaks.
func (o *Orchestrator) StopStream(sid core.SessionID, streamID domain.StreamID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope, ok := o.Streams.Stop(streamID, sid)
	if !ok {
		return
	}
	o.emitTo(scope, "", domain.EventStreamEnded, domain.StreamEndedData{Stream: streamID})
}

// WatchStream adds sid to the stream's viewer set, reports the new count
// to the stream scope, and asks the broadcaster for an offer addressed to
// this viewer. Unknown streams are a silent no-op.
func (o *Orchestrator) WatchStream(sid core.SessionID, streamID domain.StreamID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	count, ok := o.Streams.Watch(sid, streamID)
	if !ok {
		return
	}
	stream, _, _ := o.Streams.Get(streamID)

	o.emitTo(o.Streams.Scope(streamID), "", domain.EventStreamViewerJoined, domain.StreamViewerJoinedData{
		Stream: streamID,
		Viewer: string(sid),
		Count:  count,
	})
	o.emit(core.SessionID(stream.Broadcaster), domain.EventStreamRequestOffer, domain.RequestOfferData{
		Stream: streamID,
		Viewer: string(sid),
	})
}

// ListStreams sends the discovery snapshot back to the caller.
func (o *Orchestrator) ListStreams(sid core.SessionID) {
	o.emit(sid, domain.EventStreamList, domain.StreamListData{Streams: o.StreamInfos()})
}

// StreamInfos resolves broadcaster profiles into the discovery view.
// Read-only; also served over REST.
func (o *Orchestrator) StreamInfos() []domain.StreamInfo {
	snaps := o.Streams.List()
	out := make([]domain.StreamInfo, 0, len(snaps))
	for _, s := range snaps {
		b := o.senderSnapshot(core.SessionID(s.Stream.Broadcaster))
		out = append(out, domain.StreamInfo{
			ID:              s.Stream.ID,
			Broadcaster:     s.Stream.Broadcaster,
			BroadcasterName: b.Name,
			BroadcasterAvi:  b.Avatar,
			Viewers:         s.Viewers,
			StartedAt:       s.Stream.StartedAt,
		})
	}
	return out
}
