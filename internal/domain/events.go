package domain

import "github.com/pion/webrtc/v4"

// Wire event names. These are the client compatibility contract; renaming
// any of them breaks deployed clients.
const (
	// client -> server
	EventLogin          = "login"
	EventUserUpdate     = "user:update"
	EventUserStatus     = "user:status"
	EventMessageSend    = "message:send"
	EventMessageTyping  = "message:typing"
	EventMessageHistory = "message:history"
	EventRoomJoin       = "room:join"
	EventRoomLeave      = "room:leave"
	EventRoomCreate     = "room:create"
	EventStreamStart    = "stream:start"
	EventStreamStop     = "stream:stop"
	EventStreamWatch    = "stream:watch"
	EventStreamList     = "stream:list"
	EventSpeaking       = "voice:speaking"
	EventPing           = "ping"

	// both directions
	EventOffer        = "webrtc:offer"
	EventAnswer       = "webrtc:answer"
	EventICECandidate = "webrtc:ice-candidate"

	// server -> client
	EventUsersList          = "users:list"
	EventUserOnline         = "user:online"
	EventUserUpdated        = "user:updated"
	EventUserStatusChanged  = "user:status-changed"
	EventUserOffline        = "user:offline"
	EventMessageReceive     = "message:receive"
	EventMessageSent        = "message:sent"
	EventRoomJoined         = "room:joined"
	EventRoomUserJoined     = "room:user-joined"
	EventRoomUserLeft       = "room:user-left"
	EventRoomUpdated        = "room:updated"
	EventRoomCreated        = "room:created"
	EventStreamStarted      = "stream:started"
	EventStreamCreated      = "stream:created"
	EventStreamEnded        = "stream:ended"
	EventStreamViewerJoined = "stream:viewer-joined"
	EventStreamRequestOffer = "stream:request-offer"
	EventError              = "error"
	EventPong               = "pong"
)

// Event is the envelope every frame carries in both directions.
type Event struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Data      any    `json:"data,omitempty"`
}

// Participant is the resolved view of a room or stream member.
type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type UsersListData struct {
	Users []User `json:"users"`
}

type PresenceData struct {
	User User `json:"user"`
}

type StatusData struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
}

type OfflineData struct {
	ID string `json:"id"`
}

type TypingData struct {
	From     string `json:"from"`
	FromName string `json:"from_name"`
}

type HistoryData struct {
	With     string    `json:"with"`
	Messages []Message `json:"messages"`
}

type RoomJoinedData struct {
	Room         RoomID        `json:"room"`
	Name         string        `json:"name"`
	Participants []Participant `json:"participants"`
}

type RoomUserJoinedData struct {
	Room RoomID      `json:"room"`
	User Participant `json:"user"`
}

type RoomUserLeftData struct {
	Room RoomID `json:"room"`
	ID   string `json:"id"`
}

type RoomUpdatedData struct {
	Room  RoomID `json:"room"`
	Count int    `json:"count"`
}

type RoomCreatedData struct {
	Room    RoomID `json:"room"`
	Name    string `json:"name"`
	Limit   int    `json:"limit"`
	Count   int    `json:"count"`
	Creator string `json:"creator"`
}

type StreamStartedData struct {
	Stream      StreamID `json:"stream"`
	Broadcaster string   `json:"broadcaster"`
	Name        string   `json:"name"`
	Avatar      string   `json:"avatar,omitempty"`
}

type StreamCreatedData struct {
	Stream StreamID `json:"stream"`
}

type StreamEndedData struct {
	Stream StreamID `json:"stream"`
}

type StreamViewerJoinedData struct {
	Stream StreamID `json:"stream"`
	Viewer string   `json:"viewer"`
	Count  int      `json:"count"`
}

type RequestOfferData struct {
	Stream StreamID `json:"stream"`
	Viewer string   `json:"viewer"`
}

type StreamListData struct {
	Streams []StreamInfo `json:"streams"`
}

// SignalData is a point-to-point signaling payload. Inbound it names the
// destination in To; the relay fills From and forwards the SDP/candidate
// untouched. The typed fields pin the wire shape only, nothing inspects
// their contents.
type SignalData struct {
	From      string                     `json:"from,omitempty"`
	To        string                     `json:"to,omitempty"`
	SDP       *webrtc.SessionDescription `json:"sdp,omitempty"`
	Candidate *webrtc.ICECandidateInit   `json:"candidate,omitempty"`
}

type SpeakingData struct {
	From     string `json:"from"`
	Speaking bool   `json:"speaking"`
}

type ErrorData struct {
	Error string `json:"error"`
}
