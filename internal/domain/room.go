package domain

import (
	"strings"

	"github.com/google/uuid"
)

const shortIDLength = 8

type RoomID string

// Room is a named voice room. Limit 0 means unbounded. Creator is the
// connection id that requested the room; empty for rooms provisioned at
// startup.
type Room struct {
	ID      RoomID `json:"id"`
	Name    string `json:"name"`
	Limit   int    `json:"limit"`
	Creator string `json:"creator,omitempty"`
}

// NewRoom constructs an ad-hoc room with a generated short id.
func NewRoom(name string, limit int, creator string) *Room {
	if limit < 0 {
		limit = 0
	}
	return &Room{
		ID:      RoomID(GenerateShortID()),
		Name:    clamp(name, MaxNameLen),
		Limit:   limit,
		Creator: creator,
	}
}

// GenerateShortID returns a compact identifier for rooms and streams.
func GenerateShortID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}
