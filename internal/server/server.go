// Package server exposes the advisor over a WebSocket endpoint. Clients
// send JSON requests (evaluate, equity, advise) and receive one response
// per request; the socket carries no game state.
package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// Server is the WebSocket advisory server
type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	handler     *Handler
	connections map[*Connection]bool
	logger      *log.Logger
	mu          sync.Mutex
	ctx         context.Context
	cancel      context.CancelFunc
}

// New creates a server serving the given handler
func New(addr string, handler *Handler, logger *log.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Advisory responses carry no secrets; allow all origins
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		handler:     handler,
		connections: make(map[*Connection]bool),
		logger:      logger.WithPrefix("server"),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Handler returns the HTTP handler serving /ws and /health, for embedding
// and tests
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start listens on the configured address until the process exits
func (s *Server) Start() error {
	s.logger.Info("starting advisory server", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Stop closes every open connection
func (s *Server) Stop() {
	s.cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.connections {
		_ = conn.Close()
	}
	s.connections = make(map[*Connection]bool)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", err)
		return
	}

	conn := NewConnection(ws, s.logger, s.handler, s.removeConnection)

	s.mu.Lock()
	s.connections[conn] = true
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("client connected", "total", total)

	conn.Start()
}

func (s *Server) removeConnection(conn *Connection) {
	s.mu.Lock()
	delete(s.connections, conn)
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("client disconnected", "total", total)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
