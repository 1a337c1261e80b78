package signal

import "github.com/RaulLeite2/AbyssConect/internal/domain"

func (ctl *Controller) handlePing(c *wsConn) {
	ctl.sendEvent(c, domain.EventPong, nil)
}
