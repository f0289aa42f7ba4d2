package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/finmetrics/internal/bridge"
	"github.com/guttosm/finmetrics/internal/domain/dto"
	"github.com/guttosm/finmetrics/internal/logger"
	"github.com/guttosm/finmetrics/internal/middleware"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 32

	// DefaultMaxInflight caps concurrent calls per connection. Reading pauses
	// while the cap is reached.
	DefaultMaxInflight = 16
)

// IPCHandler serves the websocket invoke channel.
//
// Each text frame is one dto.InvokeMessage. Calls on a connection run
// concurrently and their replies are written as they complete, tagged with the
// caller's id.
type IPCHandler struct {
	registry        *bridge.Registry
	upgrader        websocket.Upgrader
	maxMessageBytes int64
	maxInflight     int
}

// NewIPCHandler constructs an IPCHandler.
//
// Parameters:
//   - registry (*bridge.Registry): command table calls are dispatched into.
//   - maxMessageBytes (int64): read limit per frame; the connection is closed when exceeded.
func NewIPCHandler(registry *bridge.Registry, maxMessageBytes int64) *IPCHandler {
	return &IPCHandler{
		registry:        registry,
		maxMessageBytes: maxMessageBytes,
		maxInflight:     DefaultMaxInflight,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The desktop shell serves its UI from a custom scheme, so the Origin
			// header never matches the API host.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Serve upgrades GET /api/v1/ipc to a websocket.
//
// Serve godoc
// @Summary      Websocket invoke channel
// @Description  Send {"id","cmd","payload"} frames; receive {"id","status","data"|"error"} frames
// @Tags         commands
// @Router       /api/v1/ipc [get]
func (h *IPCHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote an HTTP error response.
		_ = c.Error(err)
		return
	}

	s := &ipcSession{
		handler:   h,
		conn:      conn,
		send:      make(chan dto.InvokeReply, sendBuffer),
		requestID: middleware.GetRequestID(c),
	}
	s.run(context.WithoutCancel(c.Request.Context()))
}

type ipcSession struct {
	handler   *IPCHandler
	conn      *websocket.Conn
	send      chan dto.InvokeReply
	requestID string
}

// run blocks until the peer disconnects and every in-flight call has replied.
func (s *ipcSession) run(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writePump()
	}()

	var inflight errgroup.Group
	inflight.SetLimit(s.handler.maxInflight)
	s.readPump(ctx, &inflight)

	cancel()
	_ = inflight.Wait()
	close(s.send)
	<-writerDone
}

func (s *ipcSession) readPump(ctx context.Context, inflight *errgroup.Group) {
	s.conn.SetReadLimit(s.handler.maxMessageBytes)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.L().Warn().Err(err).Str("request_id", s.requestID).Msg("ipc connection closed unexpectedly")
			}
			return
		}

		var msg dto.InvokeMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			s.send <- dto.InvokeReply{ID: uuid.NewString(), Status: dto.StatusError, Error: "malformed message: " + err.Error()}
			continue
		}
		if msg.ID == "" {
			msg.ID = uuid.NewString()
		}

		inflight.Go(func() error {
			s.send <- s.call(ctx, msg)
			return nil
		})
	}
}

func (s *ipcSession) call(ctx context.Context, msg dto.InvokeMessage) dto.InvokeReply {
	start := time.Now()
	out, err := s.handler.registry.Invoke(ctx, msg.Cmd, msg.Payload)

	event := logger.L().Debug()
	if err != nil {
		event = logger.L().Warn().Err(err)
	}
	event.Str("request_id", s.requestID).
		Str("call_id", msg.ID).
		Str("command", msg.Cmd).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("ipc_call")

	if err != nil {
		return dto.InvokeReply{ID: msg.ID, Status: dto.StatusError, Error: err.Error()}
	}
	return dto.InvokeReply{ID: msg.ID, Status: dto.StatusOK, Data: out}
}

func (s *ipcSession) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case reply, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := s.conn.WriteJSON(reply); err != nil {
				logger.L().Warn().Err(err).Str("request_id", s.requestID).Msg("ipc write failed")
				s.abandon()
				return
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.abandon()
				return
			}
		}
	}
}

// abandon closes the connection so readPump returns, then drains replies until
// run closes the channel so in-flight calls never block on send.
func (s *ipcSession) abandon() {
	_ = s.conn.Close()
	for range s.send {
	}
}
