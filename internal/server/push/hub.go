// Package push рассылает уведомления об изменениях кейсов подключенным
// клиентам по WebSocket.
package push

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/casesync/internal/models"
	"github.com/iudanet/casesync/pkg/api"
)

// Config configures the push hub.
type Config struct {
	// BufferSize is the outgoing queue size per connection
	BufferSize int
	// PingInterval is how often to ping clients
	PingInterval time.Duration
	// WriteTimeout for WebSocket writes
	WriteTimeout time.Duration
}

// DefaultConfig returns default push configuration.
func DefaultConfig() Config {
	return Config{
		BufferSize:   64,
		PingInterval: 30 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// subscriber одно WebSocket-подключение
type subscriber struct {
	ch        chan []byte
	done      chan struct{}
	id        string
	sessionID string
	mu        sync.Mutex
	closed    bool
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}

// Hub хранит подключения и рассылает им кадры {"topic", "body"}
type Hub struct {
	logger   *slog.Logger
	subs     map[string]*subscriber
	upgrader websocket.Upgrader
	config   Config
	nextID   uint64
	mu       sync.RWMutex
}

// NewHub creates a new push hub.
func NewHub(logger *slog.Logger, cfg Config) *Hub {
	def := DefaultConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = def.PingInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}
	return &Hub{
		logger: logger,
		config: cfg,
		subs:   make(map[string]*subscriber),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Publish рассылает уведомление topic о кейсе c всем подключениям.
// sessionID сессия, внесшая изменение; клиенты пропускают свои уведомления.
func (h *Hub) Publish(topic string, c *models.Case, sessionID string) error {
	snapshot, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal case: %w", err)
	}
	body, err := json.Marshal(api.PushMessage{
		Case:      snapshot,
		CaseID:    c.ID,
		SessionID: sessionID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}
	frame, err := json.Marshal(api.PushEnvelope{Topic: topic, Body: body})
	if err != nil {
		return fmt.Errorf("failed to marshal push envelope: %w", err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		select {
		case sub.ch <- frame:
		default:
			// Медленный клиент получит актуальное состояние при следующей загрузке
			h.logger.Warn("Push queue is full, dropping message",
				"subscriber", sub.id, "session_id", sub.sessionID, "topic", topic, "case_id", c.ID)
		}
	}
	return nil
}

// Count количество активных подключений
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close закрывает все подключения
func (h *Hub) Close() {
	h.mu.Lock()
	subs := h.subs
	h.subs = make(map[string]*subscriber)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

func (h *Hub) subscribe(sessionID string) *subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &subscriber{
		id:        fmt.Sprintf("sub-%d", h.nextID),
		sessionID: sessionID,
		ch:        make(chan []byte, h.config.BufferSize),
		done:      make(chan struct{}),
	}
	h.subs[sub.id] = sub
	return sub
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	delete(h.subs, sub.id)
	h.mu.Unlock()
	sub.close()
}

// Handler обрабатывает GET /api/v1/push (WebSocket)
func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отвечает клиенту
		h.logger.Warn("Failed to upgrade push connection", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	sub := h.subscribe(r.Header.Get(api.HeaderSessionID))
	defer h.unsubscribe(sub)

	h.logger.Info("Push client connected", "subscriber", sub.id, "session_id", sub.sessionID)

	// Клиент ничего не отправляет; чтение нужно для обработки close и pong
	go func() {
		defer sub.close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sub.done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(h.config.WriteTimeout))
			h.logger.Info("Push client disconnected", "subscriber", sub.id)
			return
		case frame := <-sub.ch:
			_ = conn.SetWriteDeadline(time.Now().Add(h.config.WriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				h.logger.Warn("Failed to write push message", "subscriber", sub.id, "error", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(h.config.WriteTimeout)); err != nil {
				h.logger.Warn("Failed to ping push client", "subscriber", sub.id, "error", err)
				return
			}
		}
	}
}
