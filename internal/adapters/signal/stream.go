package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

func (ctl *Controller) handleStreamStart(sid core.SessionID, c *wsConn, data []byte) {
	var p struct {
		Quality string `json:"quality"`
		FPS     int    `json:"fps"`
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &p); err != nil {
			log.Error().Err(err).Str("module", "signal").Msg("bad stream start payload")
			ctl.sendError(c, "bad_payload")
			return
		}
	}
	streamID := ctl.Orch.StartStream(sid, p.Quality, p.FPS)
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("stream", string(streamID)).Msg("stream start")
}

func (ctl *Controller) handleStreamStop(sid core.SessionID, c *wsConn, data []byte) {
	var p struct {
		Stream string `json:"stream"`
	}
	if err := json.Unmarshal(data, &p); err != nil || p.Stream == "" {
		ctl.sendError(c, "bad_payload")
		return
	}
	ctl.Orch.StopStream(sid, domain.StreamID(p.Stream))
}

func (ctl *Controller) handleStreamWatch(sid core.SessionID, c *wsConn, data []byte) {
	var p struct {
		Stream string `json:"stream"`
	}
	if err := json.Unmarshal(data, &p); err != nil || p.Stream == "" {
		ctl.sendError(c, "bad_payload")
		return
	}
	ctl.Orch.WatchStream(sid, domain.StreamID(p.Stream))
}

func (ctl *Controller) handleStreamList(sid core.SessionID) {
	ctl.Orch.ListStreams(sid)
}
