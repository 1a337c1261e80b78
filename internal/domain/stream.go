package domain

import "time"

type StreamID string

// Stream is an active screen-share session. Broadcaster is immutable for
// the stream's life; quality and fps are opaque client hints forwarded
// without validation.
type Stream struct {
	ID          StreamID  `json:"id"`
	Broadcaster string    `json:"broadcaster"`
	Quality     string    `json:"quality,omitempty"`
	FPS         int       `json:"fps,omitempty"`
	StartedAt   time.Time `json:"started_at"`
}

// NewStream constructs a stream with a generated short id. Viewers live in
// the registry, not on the entity.
func NewStream(broadcaster, quality string, fps int) *Stream {
	return &Stream{
		ID:          StreamID(GenerateShortID()),
		Broadcaster: broadcaster,
		Quality:     quality,
		FPS:         fps,
		StartedAt:   time.Now().UTC(),
	}
}

// StreamInfo is the discovery view of a stream with the broadcaster's
// profile resolved.
type StreamInfo struct {
	ID              StreamID  `json:"id"`
	Broadcaster     string    `json:"broadcaster"`
	BroadcasterName string    `json:"broadcaster_name"`
	BroadcasterAvi  string    `json:"broadcaster_avatar,omitempty"`
	Viewers         int       `json:"viewers"`
	StartedAt       time.Time `json:"started_at"`
}
