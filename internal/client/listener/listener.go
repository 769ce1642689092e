// Package listener применяет push-уведомления сервера к локальному состоянию кейсов.
package listener

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/casesync/internal/client/api"
	"github.com/iudanet/casesync/internal/client/store"
	"github.com/iudanet/casesync/internal/merge"
	"github.com/iudanet/casesync/internal/models"
	pkgapi "github.com/iudanet/casesync/pkg/api"
)

// ErrUnknownTopic уведомление с неизвестной темой
var ErrUnknownTopic = errors.New("unknown push topic")

const msgFetchCaseFailed = "Failed to load case"

//go:generate moq -out fetcher_mock.go . Fetcher
//go:generate moq -out transport_mock.go . Transport
//go:generate moq -out expirer_mock.go . Expirer

// Fetcher загружает кейс, если уведомление пришло без снимка
type Fetcher interface {
	FetchCase(ctx context.Context, id string) (*models.Case, error)
}

// Transport канал push-уведомлений
type Transport interface {
	Disconnect()
}

// Expirer сбрасывает сессию пользователя с ошибкой "authentication expired"
type Expirer interface {
	Expire(ctx context.Context) error
}

// Dispatcher хранилище состояния кейсов
type Dispatcher interface {
	Dispatch(a store.Action) store.State
}

// Listener обрабатывает уведомления case/create, case/update, case/delete.
type Listener struct {
	fetcher    Fetcher
	store      Dispatcher
	session    Expirer
	transport  Transport
	logger     *slog.Logger
	sessionID  string
	resetHooks []func(ctx context.Context)
	mu         sync.Mutex
}

// New создает обработчик уведомлений для сессии sessionID
func New(fetcher Fetcher, st Dispatcher, session Expirer, sessionID string, logger *slog.Logger) *Listener {
	return &Listener{
		fetcher:   fetcher,
		store:     st,
		session:   session,
		sessionID: sessionID,
		logger:    logger,
	}
}

// SetTransport задает канал, который отключается при истекшей аутентификации
func (l *Listener) SetTransport(t Transport) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.transport = t
}

// OnReset регистрирует сброс соседнего модуля при истекшей аутентификации
func (l *Listener) OnReset(hook func(ctx context.Context)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resetHooks = append(l.resetHooks, hook)
}

// HandleEnvelope разбирает кадр {"topic", "body"} и обрабатывает уведомление
func (l *Listener) HandleEnvelope(ctx context.Context, data []byte) error {
	var env pkgapi.PushEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("failed to decode push envelope: %w", err)
	}
	return l.Handle(ctx, env.Topic, env.Body)
}

// Handle обрабатывает одно уведомление.
// Уведомления о собственных изменениях (sessionId совпадает) игнорируются.
func (l *Listener) Handle(ctx context.Context, topic string, body []byte) error {
	var msg pkgapi.PushMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("failed to decode push message: %w", err)
	}

	if msg.SessionID != "" && msg.SessionID == l.sessionID {
		l.logger.Debug("Skipping own push", "topic", topic, "case_id", msg.CaseID)
		return nil
	}

	snapshot, err := decodeSnapshot(msg.Case)
	if err != nil {
		return err
	}

	switch topic {
	case pkgapi.TopicCaseCreate, pkgapi.TopicCaseUpdate:
		return l.handleUpsert(ctx, topic, msg, snapshot)
	case pkgapi.TopicCaseDelete:
		id := msg.CaseID
		if snapshot != nil && snapshot.ID != "" {
			id = snapshot.ID
		}
		if id == "" {
			return fmt.Errorf("delete push without case id")
		}
		l.store.Dispatch(store.EraseCase{ID: id})
		l.logger.Info("Case deleted remotely", "case_id", id, "session_id", msg.SessionID)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}
}

func (l *Listener) handleUpsert(ctx context.Context, topic string, msg pkgapi.PushMessage, snapshot *models.Case) error {
	if snapshot == nil {
		if msg.CaseID == "" {
			return fmt.Errorf("%s push without case", topic)
		}
		fetched, err := l.fetcher.FetchCase(ctx, msg.CaseID)
		if err != nil {
			switch {
			case errors.Is(err, api.ErrUnauthenticated):
				l.HandleUnauthenticated(ctx)
			case api.IsRequestErrorMuted(err):
				l.logger.Warn("Failed to fetch pushed case", "case_id", msg.CaseID, "error", err)
			default:
				l.store.Dispatch(store.SetError{Err: api.FormatRequestError(msgFetchCaseFailed, err)})
			}
			return fmt.Errorf("failed to fetch case %s: %w", msg.CaseID, err)
		}
		snapshot = fetched
	}

	l.store.Dispatch(store.SetCase{
		Case: snapshot,
		Options: merge.Options{
			LocalSessionID:  l.sessionID,
			OriginSessionID: msg.SessionID,
		},
	})
	l.logger.Debug("Applied pushed case",
		"topic", topic,
		"case_id", snapshot.ID,
		"version", snapshot.Version)
	return nil
}

// HandleUnauthenticated отключает канал уведомлений, сбрасывает кейсы,
// сессию пользователя и зарегистрированные модули.
func (l *Listener) HandleUnauthenticated(ctx context.Context) {
	l.mu.Lock()
	transport := l.transport
	hooks := append([]func(ctx context.Context){}, l.resetHooks...)
	l.mu.Unlock()

	l.logger.Warn("Authentication expired, resetting session")

	if transport != nil {
		transport.Disconnect()
	}
	l.store.Dispatch(store.Reset{})
	if err := l.session.Expire(ctx); err != nil {
		l.logger.Error("Failed to expire session", "error", err)
	}
	for _, hook := range hooks {
		hook(ctx)
	}
}

func decodeSnapshot(raw json.RawMessage) (*models.Case, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var c models.Case
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to decode pushed case: %w", err)
	}
	return &c, nil
}
