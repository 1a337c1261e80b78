package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

func (ctl *Controller) handleMessageSend(sid core.SessionID, c *wsConn, data []byte) {
	var p struct {
		To   string             `json:"to"`
		Body string             `json:"body"`
		Kind domain.MessageKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad message payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	if p.To == "" {
		ctl.sendError(c, "missing_recipient")
		return
	}
	ctl.Orch.SendMessage(sid, core.SessionID(p.To), p.Body, p.Kind)
}

func (ctl *Controller) handleTyping(sid core.SessionID, c *wsConn, data []byte) {
	var p struct {
		To string `json:"to"`
	}
	if err := json.Unmarshal(data, &p); err != nil || p.To == "" {
		return
	}
	ctl.Orch.Typing(sid, core.SessionID(p.To))
}

func (ctl *Controller) handleHistory(sid core.SessionID, c *wsConn, data []byte) {
	var p struct {
		With string `json:"with"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad history payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	ctl.Orch.History(sid, core.SessionID(p.With))
}
