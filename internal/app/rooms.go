package app

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room full")
)

type roomState struct {
	room    *domain.Room
	members map[core.SessionID]struct{}
}

// RoomManager owns the voice rooms and their membership sets. The
// exclusive one-room-per-connection invariant is enforced by the
// orchestrator, which vacates prior rooms before calling Add; the manager
// itself only guards existence and capacity.
type RoomManager struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]*roomState
}

func NewRoomManager() *RoomManager {
	return &RoomManager{rooms: make(map[domain.RoomID]*roomState)}
}

// Seed installs the pre-provisioned well-known rooms. Called once at
// startup, before any connection is accepted.
func (m *RoomManager) Seed(rooms []*domain.Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range rooms {
		m.rooms[r.ID] = &roomState{room: r, members: make(map[core.SessionID]struct{})}
		log.Info().Str("module", "app.rooms").Str("room", string(r.ID)).Str("name", r.Name).Msg("seeded room")
	}
}

// Create stores a fresh ad-hoc room. The generated short id is re-rolled
// on the off chance it collides with an existing one.
func (m *RoomManager) Create(name string, limit int, creator string) *domain.Room {
	m.mu.Lock()
	defer m.mu.Unlock()
	room := domain.NewRoom(name, limit, creator)
	for {
		if _, taken := m.rooms[room.ID]; !taken {
			break
		}
		room.ID = domain.RoomID(domain.GenerateShortID())
	}
	m.rooms[room.ID] = &roomState{room: room, members: make(map[core.SessionID]struct{})}
	log.Info().Str("module", "app.rooms").Str("room", string(room.ID)).Str("name", room.Name).Msg("created room")
	return room
}

// Get returns a copy of the room record.
func (m *RoomManager) Get(id domain.RoomID) (domain.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.rooms[id]
	if !ok {
		return domain.Room{}, false
	}
	return *st.room, true
}

// EnsureJoinable reports ErrRoomNotFound or ErrRoomFull without mutating
// anything, so the caller can validate before vacating prior rooms.
func (m *RoomManager) EnsureJoinable(id domain.RoomID) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.rooms[id]
	if !ok {
		return ErrRoomNotFound
	}
	if st.room.Limit > 0 && len(st.members) >= st.room.Limit {
		return ErrRoomFull
	}
	return nil
}

// Add inserts sid into the room's membership set.
func (m *RoomManager) Add(sid core.SessionID, id domain.RoomID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.rooms[id]
	if !ok {
		return ErrRoomNotFound
	}
	if st.room.Limit > 0 && len(st.members) >= st.room.Limit {
		return ErrRoomFull
	}
	st.members[sid] = struct{}{}
	log.Info().Str("module", "app.rooms").Str("sid", string(sid)).Str("room", string(id)).Msg("member added")
	return nil
}

// Remove deletes sid from the room and reports whether it was a member.
// Never reports true for a room sid did not belong to.
func (m *RoomManager) Remove(sid core.SessionID, id domain.RoomID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.rooms[id]
	if !ok {
		return false
	}
	if _, member := st.members[sid]; !member {
		return false
	}
	delete(st.members, sid)
	log.Info().Str("module", "app.rooms").Str("sid", string(sid)).Str("room", string(id)).Msg("member removed")
	return true
}

// RoomsOf returns every room sid currently belongs to. The invariant keeps
// this at most one, but the sweep is defensive and reports them all.
func (m *RoomManager) RoomsOf(sid core.SessionID) []domain.RoomID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.RoomID
	for id, st := range m.rooms {
		if _, ok := st.members[sid]; ok {
			out = append(out, id)
		}
	}
	return out
}

// MembersOf returns a snapshot of the room's membership set.
func (m *RoomManager) MembersOf(id domain.RoomID) []core.SessionID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.rooms[id]
	if !ok {
		return nil
	}
	out := make([]core.SessionID, 0, len(st.members))
	for sid := range st.members {
		out = append(out, sid)
	}
	return out
}

// MemberCount reports the room's current occupancy.
func (m *RoomManager) MemberCount(id domain.RoomID) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.rooms[id]
	if !ok {
		return 0
	}
	return len(st.members)
}

// RoomInfo is a discovery snapshot row.
type RoomInfo struct {
	ID      domain.RoomID `json:"id"`
	Name    string        `json:"name"`
	Limit   int           `json:"limit"`
	Count   int           `json:"count"`
	Creator string        `json:"creator,omitempty"`
}

// List returns a snapshot of every room.
func (m *RoomManager) List() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for id, st := range m.rooms {
		out = append(out, RoomInfo{
			ID:      id,
			Name:    st.room.Name,
			Limit:   st.room.Limit,
			Count:   len(st.members),
			Creator: st.room.Creator,
		})
	}
	return out
}

// Count reports the number of rooms.
func (m *RoomManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}
