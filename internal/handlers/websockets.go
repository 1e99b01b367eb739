package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"growth_decay/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 100 * time.Millisecond
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000 // 10s in ms
)

// Envelope types.
const (
	envPoint = "point"
	envDone  = "done"
	envError = "error"
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Upgrader for HTTP -> WebSocket. Consider tightening CheckOrigin in production.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Stream a cooling trajectory
// @Description  WebSocket. Query: tm, c, k, total_time, step, interval or interval_ms. Sends one "point" envelope per sample, then "done".
// @Tags         stream
// @Router       /ws/cooling [get]
func (h *Handler) wsCooling(c *gin.Context) {
	h.streamTable(c, func() ([]interface{}, error) {
		q, err := queryFloats(c, "tm", "c", "k", "total_time", "step")
		if err != nil {
			return nil, err
		}
		res, err := h.services.Cooling.Table(service.CoolingTableParams{
			Tm: q["tm"], C: q["c"], K: q["k"], Total: q["total_time"], Step: q["step"],
		})
		if err != nil {
			return nil, err
		}
		frames := make([]interface{}, len(res.Points))
		for i, p := range res.Points {
			frames[i] = p
		}
		return frames, nil
	})
}

// @Summary      Stream a decay trajectory
// @Description  WebSocket. Query: n0, k, total_time, step, interval or interval_ms. Sends one "point" envelope per sample, then "done".
// @Tags         stream
// @Router       /ws/decay [get]
func (h *Handler) wsDecay(c *gin.Context) {
	h.streamTable(c, func() ([]interface{}, error) {
		q, err := queryFloats(c, "n0", "k", "total_time", "step")
		if err != nil {
			return nil, err
		}
		res, err := h.services.Decay.Table(service.DecayTableParams{
			N0: q["n0"], K: q["k"], Total: q["total_time"], Step: q["step"],
		})
		if err != nil {
			return nil, err
		}
		frames := make([]interface{}, len(res.Points))
		for i, p := range res.Points {
			frames[i] = p
		}
		return frames, nil
	})
}

// streamTable upgrades the connection and plays back the table one point per
// interval. Invalid input is reported in an error envelope before closing.
func (h *Handler) streamTable(c *gin.Context, build func() ([]interface{}, error)) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	frames, err := build()
	if err != nil {
		if h.log != nil {
			h.log.Infow("ws_stream_rejected", "err", err)
		}
		_ = h.send(conn, wsEnvelope{Type: envError, Error: err.Error()})
		h.closeNormal(conn)
		return
	}

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	// Send the first point immediately.
	next := 0
	if len(frames) > 0 {
		if err := h.send(conn, wsEnvelope{Type: envPoint, Data: frames[0]}); err != nil {
			if h.log != nil {
				h.log.Infow("ws_write_failed_initial", "err", err)
			}
			return
		}
		next = 1
	}

	for next < len(frames) {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.send(conn, wsEnvelope{Type: envPoint, Data: frames[next]}); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
			next++
		}
	}

	if err := h.send(conn, wsEnvelope{Type: envDone, Data: gin.H{"count": len(frames)}}); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed", "err", err)
		}
		return
	}
	h.closeNormal(conn)
}

// Helper: parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	interval := h.streamInterval

	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return interval
}

// queryFloats parses the named query parameters; every one is required.
func queryFloats(c *gin.Context, names ...string) (map[string]float64, error) {
	out := make(map[string]float64, len(names))
	for _, name := range names {
		raw, ok := c.GetQuery(name)
		if !ok {
			return nil, fmt.Errorf("%w: missing query parameter %q", service.ErrInvalidInput, name)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: query parameter %q is not a number", service.ErrInvalidInput, name)
		}
		out[name] = v
	}
	return out, nil
}

// Helper: startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// Helper: send writes one envelope with a write deadline.
func (h *Handler) send(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}

func (h *Handler) closeNormal(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
