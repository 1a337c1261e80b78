// Package domain contains entity without logic, just meta-data
package domain

const (
	MaxNameLen   = 36
	MaxAvatarLen = 256

	// AnonymousName is substituted when a login carries no display name.
	AnonymousName = "anonymous"
)

// Status is the presence state of a connected user.
type Status string

const (
	StatusOnline  Status = "online"
	StatusAway    Status = "away"
	StatusBusy    Status = "busy"
	StatusOffline Status = "offline"
)

// ValidStatus reports whether s is one of the known presence states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOnline, StatusAway, StatusBusy, StatusOffline:
		return true
	}
	return false
}

// User is a connection-scoped presence record. ID is the connection
// identifier assigned by the transport and is stable for the connection's
// lifetime. UserRef is an optional durable account id passed through
// opaquely from the login payload.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar,omitempty"`
	Status  Status `json:"status"`
	UserRef string `json:"user_id,omitempty"`
}

// ProfilePatch carries the mutable profile fields of a login or update
// payload. Only these fields ever reach the user record; anything else a
// client sends is dropped at decode time.
type ProfilePatch struct {
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	Status  Status `json:"status"`
	UserRef string `json:"user_id"`
}

// NewUser builds the record for a fresh login, substituting defaults for
// missing fields.
func NewUser(id string, p ProfilePatch) *User {
	u := &User{
		ID:      id,
		Name:    clamp(p.Name, MaxNameLen),
		Avatar:  clamp(p.Avatar, MaxAvatarLen),
		Status:  StatusOnline,
		UserRef: p.UserRef,
	}
	if u.Name == "" {
		u.Name = AnonymousName
	}
	if ValidStatus(p.Status) {
		u.Status = p.Status
	}
	return u
}

// Merge applies the non-empty allow-listed fields of p onto u.
// Unknown fields never reach the record.
func (u *User) Merge(p ProfilePatch) {
	if p.Name != "" {
		u.Name = clamp(p.Name, MaxNameLen)
	}
	if p.Avatar != "" {
		u.Avatar = clamp(p.Avatar, MaxAvatarLen)
	}
	if ValidStatus(p.Status) {
		u.Status = p.Status
	}
}

func clamp(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
