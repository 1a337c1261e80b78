package app

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

// JoinRoom moves sid into the target room. Validation happens before any
// mutation: a full or unknown room leaves the current membership intact.
// On success every previously held room is vacated first (at most one,
// but the sweep tolerates more), then the join notifications go out.
func (o *Orchestrator) JoinRoom(sid core.SessionID, roomID domain.RoomID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.Rooms.EnsureJoinable(roomID); err != nil {
		o.emit(sid, domain.EventError, domain.ErrorData{Error: roomErrorCode(err)})
		return
	}

	for _, prev := range o.Rooms.RoomsOf(sid) {
		o.leaveRoomLocked(sid, prev)
	}

	if err := o.Rooms.Add(sid, roomID); err != nil {
		o.emit(sid, domain.EventError, domain.ErrorData{Error: roomErrorCode(err)})
		return
	}

	room, _ := o.Rooms.Get(roomID)
	members := o.Rooms.MembersOf(roomID)

	o.emitTo(members, sid, domain.EventRoomUserJoined, domain.RoomUserJoinedData{
		Room: roomID,
		User: o.participant(sid),
	})
	o.emit(sid, domain.EventRoomJoined, domain.RoomJoinedData{
		Room:         roomID,
		Name:         room.Name,
		Participants: o.participants(members),
	})
	o.emitAll("", domain.EventRoomUpdated, domain.RoomUpdatedData{
		Room:  roomID,
		Count: len(members),
	})
	log.Info().Str("module", "app.orchestrator").Str("sid", string(sid)).Str("room", string(roomID)).Msg("joined room")
}

// LeaveRoom removes sid from the room; a no-op if sid is not a member.
func (o *Orchestrator) LeaveRoom(sid core.SessionID, roomID domain.RoomID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.leaveRoomLocked(sid, roomID)
}

// leaveRoomLocked vacates one room and emits the left + occupancy
// notifications. Never emits for a room sid was not a member of.
// Caller holds o.mu.
func (o *Orchestrator) leaveRoomLocked(sid core.SessionID, roomID domain.RoomID) {
	if !o.Rooms.Remove(sid, roomID) {
		return
	}
	remaining := o.Rooms.MembersOf(roomID)
	o.emitTo(remaining, sid, domain.EventRoomUserLeft, domain.RoomUserLeftData{
		Room: roomID,
		ID:   string(sid),
	})
	o.emitAll("", domain.EventRoomUpdated, domain.RoomUpdatedData{
		Room:  roomID,
		Count: len(remaining),
	})
}

// CreateRoom stores a fresh ad-hoc room and announces it to everyone,
// creator included.
func (o *Orchestrator) CreateRoom(sid core.SessionID, name string, limit int) domain.RoomID {
	o.mu.Lock()
	defer o.mu.Unlock()

	creator := o.senderSnapshot(sid)
	room := o.Rooms.Create(name, limit, string(sid))
	o.emitAll("", domain.EventRoomCreated, domain.RoomCreatedData{
		Room:    room.ID,
		Name:    room.Name,
		Limit:   room.Limit,
		Count:   0,
		Creator: creator.Name,
	})
	return room.ID
}

func roomErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return "room_not_found"
	case errors.Is(err, ErrRoomFull):
		return "room_full"
	default:
		return "room_error"
	}
}
