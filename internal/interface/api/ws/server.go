package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"etcgBot/internal/app/events"
	"etcgBot/internal/infrastructure/logging"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 5 * time.Second
)

type Config struct {
	Addr string
}

// Subscriber es la parte del bus de eventos que necesita el feed.
type Subscriber interface {
	Subscribe(topic string) (<-chan any, func())
}

// Server expone /ws/events y retransmite cada comando procesado como JSON.
type Server struct {
	addr     string
	bus      Subscriber
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*wsClient]struct{}
}

type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(v)
}

type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func NewServer(cfg Config, bus Subscriber, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		addr: cfg.Addr,
		bus:  bus,
		log:  log.With(logging.FieldComponent, "ws"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*wsClient]struct{}),
	}
}

// Start levanta el HTTP server y se bloquea hasta que el contexto se cancela.
func (s *Server) Start(ctx context.Context) error {
	feed, unsubscribe := s.bus.Subscribe(events.TopicCommandHandled)
	defer unsubscribe()
	go s.forward(ctx, feed)

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(ctx),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Warn("shutdown error", logging.FieldError, err)
		}
		s.closeClients()
	}()

	s.log.Info("feed de eventos escuchando", "addr", s.addr)

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/events", func(w http.ResponseWriter, r *http.Request) {
		s.handleWS(ctx, w, r)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) forward(ctx context.Context, feed <-chan any) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-feed:
			if !ok {
				return
			}
			if err := s.Broadcast(ctx, payload); err != nil {
				s.log.Warn("broadcast error", logging.FieldError, err)
			}
		}
	}
}

func (s *Server) handleWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade error", logging.FieldError, err)
		return
	}

	client := &wsClient{conn: conn}

	s.mu.Lock()
	s.clients[client] = struct{}{}
	clientCount := len(s.clients)
	s.mu.Unlock()

	s.log.Info("nueva conexión", "remote", r.RemoteAddr, "clients", clientCount)

	go s.handleClient(ctx, client)
}

// handleClient solo lee para detectar el cierre; el feed es de una sola vía.
func (s *Server) handleClient(ctx context.Context, client *wsClient) {
	defer s.removeClient(client)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, _, err := client.conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("read error", logging.FieldError, err)
			}
			return
		}
	}
}

// Broadcast envía el payload a todos los clientes conectados.
func (s *Server) Broadcast(ctx context.Context, payload any) error {
	data, err := json.Marshal(envelope{Type: "command", Data: payload})
	if err != nil {
		return err
	}

	s.mu.RLock()
	clients := make([]*wsClient, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.RUnlock()

	for _, c := range clients {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := c.writeJSON(json.RawMessage(data)); err != nil {
			s.log.Debug("removing client due to write error", logging.FieldError, err)
			s.removeClient(c)
		}
	}

	return nil
}

func (s *Server) removeClient(c *wsClient) {
	s.mu.Lock()
	_, ok := s.clients[c]
	delete(s.clients, c)
	clientCount := len(s.clients)
	s.mu.Unlock()

	if ok {
		c.conn.Close()
		s.log.Info("conexión cerrada", "clients", clientCount)
	}
}

func (s *Server) closeClients() {
	s.mu.RLock()
	clients := make([]*wsClient, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.RUnlock()

	for _, c := range clients {
		s.removeClient(c)
	}
}

func (s *Server) clientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}
