package server

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
)

// Connection wraps one WebSocket client. Requests are handled in the read
// pump; responses flow through the send channel so writes never interleave.
type Connection struct {
	conn    *websocket.Conn
	send    chan *Response
	logger  *log.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	handler *Handler
	onClose func(*Connection)
}

// NewConnection creates a connection wrapper around an upgraded socket
func NewConnection(conn *websocket.Conn, logger *log.Logger, handler *Handler, onClose func(*Connection)) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		conn:    conn,
		send:    make(chan *Response, 16),
		logger:  logger.WithPrefix("conn"),
		ctx:     ctx,
		cancel:  cancel,
		handler: handler,
		onClose: onClose,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close tears the connection down
func (c *Connection) Close() error {
	c.cancel()
	return c.conn.Close()
}

func (c *Connection) readPump() {
	defer func() {
		c.cancel()
		if c.onClose != nil {
			c.onClose(c)
		}
	}()

	c.conn.SetReadLimit(4096)

	for {
		var req Request
		if err := c.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("read error", "error", err)
			}
			return
		}

		resp := c.handler.Handle(c.ctx, &req)
		select {
		case c.send <- resp:
		case <-c.ctx.Done():
			return
		}
	}
}

func (c *Connection) writePump() {
	for {
		select {
		case resp, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteJSON(resp); err != nil {
				c.logger.Warn("write error", "error", err)
				c.cancel()
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}
