package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

func (ctl *Controller) handleLogin(sid core.SessionID, c *wsConn, data []byte) {
	var p domain.ProfilePatch
	if len(data) > 0 {
		if err := json.Unmarshal(data, &p); err != nil {
			log.Error().Err(err).Str("module", "signal").Msg("bad login payload")
			ctl.sendError(c, "bad_payload")
			return
		}
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("name", p.Name).Msg("login")
	ctl.Orch.Login(sid, p)
}

func (ctl *Controller) handleUserUpdate(sid core.SessionID, c *wsConn, data []byte) {
	var p domain.ProfilePatch
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad update payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	ctl.Orch.UpdateProfile(sid, p)
}

func (ctl *Controller) handleUserStatus(sid core.SessionID, c *wsConn, data []byte) {
	var p struct {
		Status domain.Status `json:"status"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad status payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	ctl.Orch.SetStatus(sid, p.Status)
}
