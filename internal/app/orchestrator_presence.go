package app

import (
	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

// Login creates or overwrites the presence record for sid, returns the
// full user snapshot to the caller alone, and announces the arrival to
// everyone else.
func (o *Orchestrator) Login(sid core.SessionID, p domain.ProfilePatch) {
	o.mu.Lock()
	defer o.mu.Unlock()

	user := o.Registry.Login(sid, p)
	o.emit(sid, domain.EventUsersList, domain.UsersListData{Users: o.Registry.ListAll()})
	o.emitAll(sid, domain.EventUserOnline, domain.PresenceData{User: user})
}

// UpdateProfile merges the allow-listed fields into an existing record and
// broadcasts the result. A connection that never logged in gets an error
// back instead.
func (o *Orchestrator) UpdateProfile(sid core.SessionID, p domain.ProfilePatch) {
	o.mu.Lock()
	defer o.mu.Unlock()

	user, ok := o.Registry.Update(sid, p)
	if !ok {
		o.emit(sid, domain.EventError, domain.ErrorData{Error: "not_logged_in"})
		return
	}
	o.emitAll("", domain.EventUserUpdated, domain.PresenceData{User: user})
}

// SetStatus is UpdateProfile restricted to the status field.
func (o *Orchestrator) SetStatus(sid core.SessionID, s domain.Status) {
	o.mu.Lock()
	defer o.mu.Unlock()

	user, ok := o.Registry.SetStatus(sid, s)
	if !ok {
		o.emit(sid, domain.EventError, domain.ErrorData{Error: "not_logged_in"})
		return
	}
	o.emitAll("", domain.EventUserStatusChanged, domain.StatusData{ID: user.ID, Status: user.Status})
}
