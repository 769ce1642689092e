// Package engine собирает клиентский движок синхронизации кейсов:
// хранилище состояния, локальное хранилище bbolt, планировщик отправки
// и обработчик push-уведомлений.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	gosync "sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/casesync/internal/client/listener"
	"github.com/iudanet/casesync/internal/client/storage"
	"github.com/iudanet/casesync/internal/client/store"
	"github.com/iudanet/casesync/internal/client/sync"
	"github.com/iudanet/casesync/internal/merge"
	"github.com/iudanet/casesync/internal/models"
)

// Deps зависимости движка
type Deps struct {
	API      sync.RecordsAPI
	Cases    storage.CaseStorage
	Metadata storage.MetadataStorage
	Session  listener.Expirer
	Logger   *slog.Logger

	// SessionID идентификатор сессии клиента (заголовок X-Session-Id)
	SessionID string
	// UserName имя пользователя, создающего кейсы
	UserName   func() string
	ClientType models.ClientType
	Debounce   time.Duration

	// AfterFunc подменяет таймер планировщика (для тестов)
	AfterFunc sync.AfterFunc
}

// Engine клиентский движок кейсов
type Engine struct {
	store      *store.Store
	cases      storage.CaseStorage
	service    *sync.Service
	scheduler  *sync.Scheduler
	listener   *listener.Listener
	logger     *slog.Logger
	userName   func() string
	now        func() time.Time
	newID      func() string
	clientType models.ClientType
	unsub      []func()

	// persisted последнее состояние, записанное в локальное хранилище
	persisted store.State
	persistMu gosync.Mutex
}

// New загружает сохраненное состояние и собирает движок
func New(ctx context.Context, deps Deps) (*Engine, error) {
	initial, err := loadState(ctx, deps.Cases)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		store:      store.New(initial),
		persisted:  initial,
		cases:      deps.Cases,
		logger:     deps.Logger,
		userName:   deps.UserName,
		clientType: deps.ClientType,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
	if e.userName == nil {
		e.userName = func() string { return "" }
	}

	e.service = sync.NewService(deps.API, e.store, deps.Metadata, deps.SessionID, deps.Logger)
	e.listener = listener.New(deps.API, e.store, deps.Session, deps.SessionID, deps.Logger)

	opts := []sync.SchedulerOption{
		sync.WithDebounce(deps.Debounce),
		sync.WithUnauthorizedHandler(e.listener.HandleUnauthenticated),
	}
	if deps.AfterFunc != nil {
		opts = append(opts, sync.WithAfterFunc(deps.AfterFunc))
	}
	e.scheduler = sync.NewScheduler(e.service, e.store, deps.Logger, opts...)

	// Сначала сохраняем состояние, затем планируем отправку
	e.unsub = append(e.unsub,
		e.store.Subscribe(e.persist),
		e.store.Subscribe(e.scheduler.Observe),
	)

	e.logger.Info("Engine started",
		"cases", len(initial.Cases),
		"deleted", len(initial.Deleted),
		"pending", store.PendingCount(initial))

	return e, nil
}

func loadState(ctx context.Context, cases storage.CaseStorage) (store.State, error) {
	st := store.InitialState()

	active, err := cases.LoadCases(ctx, storage.CollectionActive)
	if err != nil {
		return st, fmt.Errorf("failed to load cases: %w", err)
	}
	deleted, err := cases.LoadCases(ctx, storage.CollectionDeleted)
	if err != nil {
		return st, fmt.Errorf("failed to load deleted cases: %w", err)
	}
	pending, err := cases.LoadPendingDeletes(ctx)
	if err != nil {
		return st, fmt.Errorf("failed to load pending deletes: %w", err)
	}

	st.Cases = active
	st.Deleted = deleted
	st.PendingDeletes = pending
	return st, nil
}

// Close останавливает планировщик и отписывает слушателей
func (e *Engine) Close() {
	e.scheduler.Stop()
	for _, u := range e.unsub {
		u()
	}
	e.unsub = nil
}

// State текущий снимок состояния
func (e *Engine) State() store.State {
	return e.store.State()
}

// Subscribe подписка на изменения состояния
func (e *Engine) Subscribe(l store.Listener) func() {
	return e.store.Subscribe(l)
}

// Listener обработчик push-уведомлений
func (e *Engine) Listener() *listener.Listener {
	return e.listener
}

// CreateCase создает кейс и возвращает его ID
func (e *Engine) CreateCase(number *int) string {
	id := e.newID()
	e.store.Dispatch(store.CreateCase{
		Now:        e.now(),
		ID:         id,
		Number:     number,
		UserName:   e.userName(),
		ClientType: e.clientType,
	})
	return id
}

// ModifyCase применяет правку к активному кейсу
func (e *Engine) ModifyCase(id string, changes models.CaseChanges) error {
	if _, ok := e.store.State().Cases[id]; !ok {
		return fmt.Errorf("failed to modify case %s: %w", id, storage.ErrCaseNotFound)
	}
	e.store.Dispatch(store.ModifyCase{Now: e.now(), ID: id, Changes: changes})
	return nil
}

// ModifyPatientCustomField добавляет или заменяет произвольное поле пациента по имени
func (e *Engine) ModifyPatientCustomField(id string, field models.CustomField) error {
	c, ok := e.store.State().Cases[id]
	if !ok {
		return fmt.Errorf("failed to modify case %s: %w", id, storage.ErrCaseNotFound)
	}

	var current []models.CustomField
	if c.Patient != nil {
		current = c.Patient.CustomFields
	}
	fields := merge.UpsertCustomField(current, field)

	return e.ModifyCase(id, models.CaseChanges{
		Patient: &models.PatientChanges{CustomFields: &fields},
	})
}

// RemoveCase мягко удаляет кейс
func (e *Engine) RemoveCase(id string) error {
	if _, ok := e.store.State().Cases[id]; !ok {
		return fmt.Errorf("failed to remove case %s: %w", id, storage.ErrCaseNotFound)
	}
	e.store.Dispatch(store.RemoveCase{ID: id})
	return nil
}

// EraseCase удаляет кейс локально без обращения к серверу
func (e *Engine) EraseCase(id string) {
	e.store.Dispatch(store.EraseCase{ID: id})
}

// ClearError скрывает ошибку
func (e *Engine) ClearError() {
	e.store.Dispatch(store.ClearError{})
}

// Fetch загружает кейсы с сервера
func (e *Engine) Fetch(ctx context.Context) error {
	return e.service.Fetch(ctx, models.CaseTypeFor(e.clientType))
}

// FetchDeleted загружает удаленные кейсы
func (e *Engine) FetchDeleted(ctx context.Context) error {
	return e.service.FetchDeleted(ctx, models.CaseTypeFor(e.clientType))
}

// Restore восстанавливает удаленный кейс
func (e *Engine) Restore(ctx context.Context, id string) error {
	return e.service.Restore(ctx, id)
}

// Sync немедленно отправляет локальные изменения
func (e *Engine) Sync(ctx context.Context) {
	e.scheduler.Flush(ctx)
}

// LastSync время последней успешной синхронизации
func (e *Engine) LastSync(ctx context.Context) (time.Time, error) {
	return e.service.LastSync(ctx)
}

// persist переносит изменения состояния в локальное хранилище.
// Сравнение идет с последним записанным состоянием, а не с prev:
// подписчики разных Dispatch могут выполняться в произвольном порядке.
func (e *Engine) persist(a store.Action, _, _ store.State) {
	ctx := context.Background()

	e.persistMu.Lock()
	defer e.persistMu.Unlock()

	prev := e.persisted
	next := e.store.State()
	e.persisted = next

	if _, ok := a.(store.Reset); ok {
		if err := e.cases.Clear(ctx); err != nil {
			e.logger.Error("Failed to clear local cases", "error", err)
		}
		prev = store.InitialState()
	}

	errs := []error{
		e.persistCollection(ctx, storage.CollectionActive, prev.Cases, next.Cases),
		e.persistCollection(ctx, storage.CollectionDeleted, prev.Deleted, next.Deleted),
	}

	added, removed := store.DiffSet(prev.PendingDeletes, next.PendingDeletes)
	if len(added) > 0 {
		errs = append(errs, e.cases.AddPendingDeletes(ctx, added...))
	}
	if len(removed) > 0 {
		errs = append(errs, e.cases.RemovePendingDeletes(ctx, removed...))
	}

	if err := errors.Join(errs...); err != nil {
		e.logger.Error("Failed to persist cases", "action", fmt.Sprintf("%T", a), "error", err)
	}
}

func (e *Engine) persistCollection(ctx context.Context, col storage.Collection, prev, next models.CasesHash) error {
	changed, removed := store.Diff(prev, next)
	if len(changed) > 0 {
		if err := e.cases.PutCases(ctx, col, changed...); err != nil {
			return fmt.Errorf("failed to save %s: %w", col, err)
		}
	}
	if len(removed) > 0 {
		if err := e.cases.DeleteCases(ctx, col, removed...); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", col, err)
		}
	}
	return nil
}
