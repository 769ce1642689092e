// Package ws подписка клиента на push-уведомления сервера по WebSocket.
package ws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/casesync/internal/client/api"
	pkgapi "github.com/iudanet/casesync/pkg/api"
)

// DefaultReconnectDelay пауза перед повторным подключением
const DefaultReconnectDelay = 3 * time.Second

// Handler обработчик кадров {"topic", "body"}
type Handler interface {
	HandleEnvelope(ctx context.Context, data []byte) error
}

// Subscriber поддерживает WebSocket-соединение и передает кадры обработчику.
// После обрыва соединение восстанавливается, пока не вызван Disconnect
// или не отменен контекст Run.
type Subscriber struct {
	dialer         *websocket.Dialer
	credentials    api.Credentials
	handler        Handler
	logger         *slog.Logger
	conn           *websocket.Conn
	stop           chan struct{}
	url            string
	reconnectDelay time.Duration
	mu             sync.Mutex
	stopped        bool
}

// NewSubscriber создает подписчика на url (ws:// или wss://)
func NewSubscriber(url string, credentials api.Credentials, handler Handler, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		url:            url,
		credentials:    credentials,
		handler:        handler,
		logger:         logger,
		dialer:         &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		reconnectDelay: DefaultReconnectDelay,
		stop:           make(chan struct{}),
	}
}

// SetReconnectDelay задает паузу перед повторным подключением
func (s *Subscriber) SetReconnectDelay(d time.Duration) {
	s.reconnectDelay = d
}

// Run подключается и читает уведомления до отмены ctx или Disconnect.
// Отказ сервера в аутентификации при подключении возвращается как api.ErrUnauthenticated.
func (s *Subscriber) Run(ctx context.Context) error {
	for {
		err := s.connect(ctx)
		if err != nil {
			if errors.Is(err, api.ErrUnauthenticated) {
				return err
			}
			s.logger.Warn("Push connection failed", "url", s.url, "error", err)
		} else {
			s.readLoop(ctx)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stop:
			return nil
		case <-time.After(s.reconnectDelay):
		}
	}
}

// Disconnect закрывает соединение и останавливает переподключение
func (s *Subscriber) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.stop)
	if s.conn != nil {
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = s.conn.Close()
		s.conn = nil
	}
}

func (s *Subscriber) connect(ctx context.Context) error {
	header := http.Header{}
	if s.credentials != nil {
		if id := s.credentials.SessionID(); id != "" {
			header.Set(pkgapi.HeaderSessionID, id)
		}
		if token := s.credentials.AccessToken(); token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
	}

	conn, resp, err := s.dialer.DialContext(ctx, s.url, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("push handshake rejected: %w", api.ErrUnauthenticated)
		}
		return fmt.Errorf("failed to dial %s: %w", s.url, err)
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		_ = conn.Close()
		return nil
	}
	s.conn = conn
	s.mu.Unlock()

	s.logger.Info("Push connection established", "url", s.url)
	return nil
}

func (s *Subscriber) readLoop(ctx context.Context) {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return
	}

	// Закрываем соединение при отмене контекста, чтобы прервать ReadMessage
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) && !s.isStopped() && ctx.Err() == nil {
				s.logger.Warn("Push connection lost", "error", err)
			}
			s.mu.Lock()
			if s.conn == conn {
				s.conn = nil
			}
			s.mu.Unlock()
			_ = conn.Close()
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		if err := s.handler.HandleEnvelope(ctx, data); err != nil {
			s.logger.Warn("Failed to handle push", "error", err)
		}
	}
}

func (s *Subscriber) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}
