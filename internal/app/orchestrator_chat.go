package app

import (
	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

// SendMessage records a direct message in the pair's conversation, delivers
// it to the recipient if connected (silent drop otherwise — history still
// gets it) and echoes it back to the sender as the delivery ack.
func (o *Orchestrator) SendMessage(sid core.SessionID, to core.SessionID, body string, kind domain.MessageKind) {
	o.mu.Lock()
	defer o.mu.Unlock()

	sender := o.senderSnapshot(sid)
	msg := domain.NewMessage(&sender, string(to), body, kind)
	o.Conversations.Append(sid, to, msg)

	o.emit(to, domain.EventMessageReceive, *msg)
	o.emit(sid, domain.EventMessageSent, *msg)
}

// Typing forwards a typing indicator to the recipient only.
func (o *Orchestrator) Typing(sid core.SessionID, to core.SessionID) {
	sender := o.senderSnapshot(sid)
	o.emit(to, domain.EventMessageTyping, domain.TypingData{From: string(sid), FromName: sender.Name})
}

// History returns the caller's full conversation with the given peer.
func (o *Orchestrator) History(sid core.SessionID, with core.SessionID) {
	o.emit(sid, domain.EventMessageHistory, domain.HistoryData{
		With:     string(with),
		Messages: o.Conversations.History(sid, with),
	})
}
