package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

func (ctl *Controller) handleRoomJoin(sid core.SessionID, c *wsConn, data []byte) {
	var p struct {
		Room string `json:"room"`
	}
	if err := json.Unmarshal(data, &p); err != nil || p.Room == "" {
		log.Error().Str("module", "signal").Msg("bad join payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", p.Room).Msg("join")
	ctl.Orch.JoinRoom(sid, domain.RoomID(p.Room))
}

func (ctl *Controller) handleRoomLeave(sid core.SessionID, c *wsConn, data []byte) {
	var p struct {
		Room string `json:"room"`
	}
	if err := json.Unmarshal(data, &p); err != nil || p.Room == "" {
		ctl.sendError(c, "bad_payload")
		return
	}
	ctl.Orch.LeaveRoom(sid, domain.RoomID(p.Room))
}

// Ad-hoc rooms are never reclaimed, so creation is rate limited per
// connection.
func (ctl *Controller) handleRoomCreate(sid core.SessionID, c *wsConn, data []byte) {
	if !ctl.limiter.Allow(sid) {
		ctl.sendError(c, "rate_limited")
		return
	}
	var p struct {
		Name  string `json:"name"`
		Limit int    `json:"limit"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad create payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	if p.Name == "" {
		ctl.sendError(c, "empty_name")
		return
	}
	roomID := ctl.Orch.CreateRoom(sid, p.Name, p.Limit)
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", string(roomID)).Msg("room created")
}
