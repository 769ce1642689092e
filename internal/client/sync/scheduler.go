package sync

import (
	"context"
	"errors"
	"log/slog"
	gosync "sync"
	"time"

	"github.com/iudanet/casesync/internal/client/api"
	"github.com/iudanet/casesync/internal/client/store"
)

// DefaultDebounce задержка перед отправкой пачки изменений
const DefaultDebounce = time.Second

//go:generate moq -out pusher_mock.go . Pusher

// Pusher отправляет одну пачку локальных изменений
type Pusher interface {
	Push(ctx context.Context) (*SyncResult, error)
}

// Timer отменяемый таймер
type Timer interface {
	Stop() bool
}

// AfterFunc запускает f через d
type AfterFunc func(d time.Duration, f func()) Timer

func stdAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Scheduler планирует отправку изменений.
//
// Пока отправка не идет, каждое изменение перезапускает таймер задержки,
// так что серия изменений уходит одной пачкой. Изменение во время отправки
// выставляет флаг again: сразу после успешного завершения отправка
// повторяется ровно один раз. После ошибки флаг сбрасывается и повтора нет.
type Scheduler struct {
	pusher         Pusher
	store          Dispatcher
	logger         *slog.Logger
	afterFunc      AfterFunc
	timer          Timer
	onUnauthorized func(ctx context.Context)
	done           chan struct{}
	debounce       time.Duration
	mu             gosync.Mutex
	syncing        bool
	again          bool
	stopped        bool
}

// SchedulerOption настройка планировщика
type SchedulerOption func(*Scheduler)

// WithDebounce задает задержку перед отправкой
func WithDebounce(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithAfterFunc подменяет таймер (используется в тестах)
func WithAfterFunc(f AfterFunc) SchedulerOption {
	return func(s *Scheduler) {
		s.afterFunc = f
	}
}

// WithUnauthorizedHandler задает обработчик истекшей аутентификации
func WithUnauthorizedHandler(h func(ctx context.Context)) SchedulerOption {
	return func(s *Scheduler) {
		s.onUnauthorized = h
	}
}

// NewScheduler создает планировщик
func NewScheduler(pusher Pusher, st Dispatcher, logger *slog.Logger, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		pusher:    pusher,
		store:     st,
		logger:    logger,
		afterFunc: stdAfterFunc,
		debounce:  DefaultDebounce,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Observe подписчик хранилища: реагирует только на действия, порождающие изменения.
func (s *Scheduler) Observe(action store.Action, _, _ store.State) {
	if !store.IsSyncTrigger(action) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if s.syncing {
		s.again = true
		return
	}

	// Перезапускаем таймер задержки
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.afterFunc(s.debounce, s.fire)
}

// Flush немедленно отправляет изменения (синхронизация по запросу пользователя).
// Если отправка уже идет, после нее будет выполнена еще одна.
func (s *Scheduler) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.syncing {
		s.again = true
		s.mu.Unlock()
		return
	}
	s.syncing = true
	s.mu.Unlock()

	s.run(ctx)
}

// Syncing сообщает, идет ли отправка
func (s *Scheduler) Syncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncing
}

// Stop отменяет таймер; начатая отправка завершается.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	close(s.done)
}

func (s *Scheduler) fire() {
	s.mu.Lock()
	s.timer = nil
	if s.stopped || s.syncing {
		s.mu.Unlock()
		return
	}
	s.syncing = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-s.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	s.run(ctx)
}

// run выполняет отправки, пока выставлен флаг again. Вызывается с syncing == true.
func (s *Scheduler) run(ctx context.Context) {
	for {
		s.store.Dispatch(store.SyncStarted{})

		_, err := s.pusher.Push(ctx)
		if err != nil {
			s.mu.Lock()
			s.syncing = false
			s.again = false
			s.mu.Unlock()

			s.handleError(ctx, err)
			return
		}

		s.mu.Lock()
		again := s.again
		s.again = false
		if !again {
			s.syncing = false
		}
		s.mu.Unlock()

		s.store.Dispatch(store.SyncFinished{})
		if !again {
			return
		}
	}
}

func (s *Scheduler) handleError(ctx context.Context, err error) {
	if errors.Is(err, api.ErrUnauthenticated) {
		s.logger.Warn("Push rejected: authentication expired")
		s.store.Dispatch(store.SyncFailed{})
		if s.onUnauthorized != nil {
			s.onUnauthorized(ctx)
		}
		return
	}

	msg := UserMessage(err)
	if msg == "" {
		s.logger.Warn("Push failed without server response", "error", err)
	} else {
		s.logger.Error("Push failed", "error", err)
	}
	s.store.Dispatch(store.SyncFailed{Err: msg})
}
