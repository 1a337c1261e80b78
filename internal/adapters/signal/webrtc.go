package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

// handleWebRTC covers offer, answer and ice-candidate for both the voice
// and stream flows. The payload is forwarded as-is; only the destination
// id is required.
func (ctl *Controller) handleWebRTC(sid core.SessionID, c *wsConn, event string, data []byte) {
	var p domain.SignalData
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("event", event).Msg("bad signal payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	if p.To == "" {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Str("event", event).Msg("signal without destination")
		return
	}
	ctl.Orch.RelaySignal(sid, event, p)
}

func (ctl *Controller) handleSpeaking(sid core.SessionID, c *wsConn, data []byte) {
	var p struct {
		Speaking bool `json:"speaking"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return
	}
	ctl.Orch.Speaking(sid, p.Speaking)
}
