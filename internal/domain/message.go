package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageKind distinguishes text bodies from recorded audio clips.
type MessageKind string

const (
	MessageText  MessageKind = "text"
	MessageAudio MessageKind = "audio"
)

// Message is one direct message. The sender's name and avatar are
// snapshotted at send time so history stays stable across renames.
// Immutable once created.
type Message struct {
	ID         string      `json:"id"`
	From       string      `json:"from"`
	FromName   string      `json:"from_name"`
	FromAvatar string      `json:"from_avatar,omitempty"`
	To         string      `json:"to"`
	Body       string      `json:"body"`
	Kind       MessageKind `json:"kind"`
	CreatedAt  time.Time   `json:"created_at"`
}

// NewMessage builds a message from the sender's current profile.
// An unknown kind falls back to text.
func NewMessage(sender *User, to, body string, kind MessageKind) *Message {
	if kind != MessageAudio {
		kind = MessageText
	}
	m := &Message{
		ID:        uuid.NewString(),
		To:        to,
		Body:      body,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	if sender != nil {
		m.From = sender.ID
		m.FromName = sender.Name
		m.FromAvatar = sender.Avatar
	}
	return m
}
