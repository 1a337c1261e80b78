package app

import (
	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

// RelaySignal forwards an offer/answer/candidate payload to its
// destination, stamping the sender's id as the from field. The payload is
// never inspected or validated; a vanished destination is a silent drop
// with no error back to the sender.
func (o *Orchestrator) RelaySignal(sid core.SessionID, event string, payload domain.SignalData) {
	to := core.SessionID(payload.To)
	if to == "" {
		return
	}
	payload.From = string(sid)
	o.emit(to, event, payload)
}

// Speaking fans the speaking indicator out to the other members of the
// sender's current voice room. Outside a room it goes nowhere.
func (o *Orchestrator) Speaking(sid core.SessionID, speaking bool) {
	data := domain.SpeakingData{From: string(sid), Speaking: speaking}
	for _, roomID := range o.Rooms.RoomsOf(sid) {
		o.emitTo(o.Rooms.MembersOf(roomID), sid, domain.EventSpeaking, data)
	}
}
