package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

type sessionEntry struct {
	Conn   core.SignalConnection
	Cancel context.CancelFunc
}

// Registry is the presence registry: the live transport endpoints and the
// logged-in user records, both keyed by connection id. Every other
// component references users only through this map.
type Registry struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*sessionEntry
	users    map[core.SessionID]*domain.User
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[core.SessionID]*sessionEntry),
		users:    make(map[core.SessionID]*domain.User),
	}
}

// Bind attaches a transport endpoint for sid. Called by the adapter at
// accept time, before any login.
func (r *Registry) Bind(sid core.SessionID, conn core.SignalConnection, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sid] = &sessionEntry{Conn: conn, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("bound session")
}

// Unbind drops the transport endpoint and reports whether one existed.
func (r *Registry) Unbind(sid core.SessionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[sid]
	delete(r.sessions, sid)
	if ok {
		log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unbind session")
	}
	return ok
}

// Conn returns the live endpoint for sid, if connected.
func (r *Registry) Conn(sid core.SessionID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[sid]
	if !ok {
		return nil, false
	}
	return e.Conn, true
}

// Cancel fires the connection-scoped cancel func for sid, forcing the
// adapter pumps down. Returns false if sid is not bound.
func (r *Registry) Cancel(sid core.SessionID) bool {
	r.mu.RLock()
	e, ok := r.sessions[sid]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	return true
}

// SessionSnap pairs a connection id with its endpoint for fan-out.
type SessionSnap struct {
	SID  core.SessionID
	Conn core.SignalConnection
}

// SessionsSnapshot returns every live endpoint. Iteration order is the map
// order and not stable across calls.
func (r *Registry) SessionsSnapshot() []SessionSnap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]SessionSnap, 0, len(r.sessions))
	for sid, e := range r.sessions {
		out = append(out, SessionSnap{SID: sid, Conn: e.Conn})
	}
	return out
}

// Login inserts or overwrites the user record for sid and returns a copy
// of the stored record. Missing fields get defaults.
func (r *Registry) Login(sid core.SessionID, p domain.ProfilePatch) domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := domain.NewUser(string(sid), p)
	r.users[sid] = u
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("name", u.Name).Msg("user logged in")
	return *u
}

// Update merges the allow-listed fields of p into an existing record.
// Reports false if sid never logged in.
func (r *Registry) Update(sid core.SessionID, p domain.ProfilePatch) (domain.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[sid]
	if !ok {
		return domain.User{}, false
	}
	u.Merge(p)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("user updated")
	return *u, true
}

// SetStatus is Update restricted to the status field.
func (r *Registry) SetStatus(sid core.SessionID, s domain.Status) (domain.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[sid]
	if !ok {
		return domain.User{}, false
	}
	if domain.ValidStatus(s) {
		u.Status = s
	}
	return *u, true
}

// Remove deletes the user record and reports whether one existed.
// Called only by the disconnect reconciler.
func (r *Registry) Remove(sid core.SessionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[sid]
	delete(r.users, sid)
	return ok
}

// Get returns a copy of the user record for sid.
func (r *Registry) Get(sid core.SessionID) (domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[sid]
	if !ok {
		return domain.User{}, false
	}
	return *u, true
}

// ListAll returns a snapshot of every logged-in user.
func (r *Registry) ListAll() []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out
}

// Count reports the number of logged-in users.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
