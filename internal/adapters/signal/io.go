package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

func (ctl *Controller) writePump(ctx context.Context, c *wsConn) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *Controller) readPump(ctx context.Context, sid core.SessionID, c *wsConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump closing")
		ctl.Orch.OnDisconnect(sid)
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				log.Info().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read error")
				return
			}
			ctl.handleEvent(sid, c, data)
		}
	}
}

// handleEvent decodes the envelope and routes by event name. Payloads are
// decoded per event against an explicit schema; unknown fields are
// ignored, unknown events logged and dropped.
func (ctl *Controller) handleEvent(sid core.SessionID, c *wsConn, data []byte) {
	var env struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		ctl.sendError(c, "bad_payload")
		return
	}

	switch env.Type {
	case domain.EventLogin:
		ctl.handleLogin(sid, c, env.Data)
	case domain.EventUserUpdate:
		ctl.handleUserUpdate(sid, c, env.Data)
	case domain.EventUserStatus:
		ctl.handleUserStatus(sid, c, env.Data)
	case domain.EventMessageSend:
		ctl.handleMessageSend(sid, c, env.Data)
	case domain.EventMessageTyping:
		ctl.handleTyping(sid, c, env.Data)
	case domain.EventMessageHistory:
		ctl.handleHistory(sid, c, env.Data)
	case domain.EventRoomJoin:
		ctl.handleRoomJoin(sid, c, env.Data)
	case domain.EventRoomLeave:
		ctl.handleRoomLeave(sid, c, env.Data)
	case domain.EventRoomCreate:
		ctl.handleRoomCreate(sid, c, env.Data)
	case domain.EventStreamStart:
		ctl.handleStreamStart(sid, c, env.Data)
	case domain.EventStreamStop:
		ctl.handleStreamStop(sid, c, env.Data)
	case domain.EventStreamWatch:
		ctl.handleStreamWatch(sid, c, env.Data)
	case domain.EventStreamList:
		ctl.handleStreamList(sid)
	case domain.EventOffer, domain.EventAnswer, domain.EventICECandidate:
		ctl.handleWebRTC(sid, c, env.Type, env.Data)
	case domain.EventSpeaking:
		ctl.handleSpeaking(sid, c, env.Data)
	case domain.EventPing:
		ctl.handlePing(c)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown event")
	}
}

// sendEvent writes an envelope straight to the connection, bypassing the
// orchestrator; used for connection-local replies like pong and decode
// errors.
func (ctl *Controller) sendEvent(c *wsConn, event string, data any) {
	b, err := json.Marshal(domain.Event{Type: event, Timestamp: time.Now().Unix(), Data: data})
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendEvent marshal")
		return
	}
	_ = c.TrySend(core.Frame(b))
}

func (ctl *Controller) sendError(c *wsConn, code string) {
	ctl.sendEvent(c, domain.EventError, domain.ErrorData{Error: code})
}
