package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/iudanet/casesync/internal/client/api"
	"github.com/iudanet/casesync/internal/client/storage"
	"github.com/iudanet/casesync/internal/client/store"
	"github.com/iudanet/casesync/internal/merge"
	"github.com/iudanet/casesync/internal/models"
)

//go:generate moq -out recordsapi_mock.go . RecordsAPI
//go:generate moq -out metadata_mock.go -pkg sync ../storage MetadataStorage

// RecordsAPI REST API кейсов
type RecordsAPI interface {
	FetchAllCases(ctx context.Context, caseType models.CaseType) (models.CasesHash, error)
	FetchCase(ctx context.Context, id string) (*models.Case, error)
	FetchDeletedCases(ctx context.Context, caseType models.CaseType) (models.CasesHash, error)
	PostCase(ctx context.Context, c *models.Case) (*models.Case, error)
	PutCase(ctx context.Context, c *models.Case, expectedVersion int64) (*models.Case, error)
	DeleteCase(ctx context.Context, id string) error
	RestoreCase(ctx context.Context, id string) (*models.Case, error)
}

// Dispatcher хранилище состояния, в которое сервис отправляет действия
type Dispatcher interface {
	State() store.State
	Dispatch(a store.Action) store.State
}

// Сообщения об ошибках для пользователя
const (
	msgCreateFailed  = "Failed to create case"
	msgUpdateFailed  = "Failed to update case"
	msgDeleteFailed  = "Failed to delete case"
	msgFetchFailed   = "Failed to load cases"
	msgDeletedFailed = "Failed to load deleted cases"
	msgRestoreFailed = "Failed to restore case"
)

// OpError ошибка операции с сообщением для пользователя
type OpError struct {
	Err     error
	Message string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", strings.ToLower(e.Message), e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// UserMessage возвращает текст ошибки для показа пользователю
// или пустую строку, если ошибку показывать не нужно.
func UserMessage(err error) string {
	if err == nil || api.IsRequestErrorMuted(err) {
		return ""
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return api.FormatRequestError(opErr.Message, err)
	}
	return err.Error()
}

// SyncResult contains push operation results
type SyncResult struct {
	Created   int // количество созданных на сервере кейсов
	Updated   int // количество обновленных кейсов
	Deleted   int // количество подтвержденных удалений
	Conflicts int // количество конфликтов версий, разрешенных слиянием
}

// Service отправляет локальные изменения и загружает кейсы с сервера
type Service struct {
	apiClient       RecordsAPI
	store           Dispatcher
	metadataStorage storage.MetadataStorage
	logger          *slog.Logger
	now             func() time.Time
	sessionID       string
}

// NewService creates a new sync service
func NewService(
	apiClient RecordsAPI,
	st Dispatcher,
	metadataStorage storage.MetadataStorage,
	sessionID string,
	logger *slog.Logger,
) *Service {
	return &Service{
		apiClient:       apiClient,
		store:           st,
		metadataStorage: metadataStorage,
		sessionID:       sessionID,
		logger:          logger,
		now:             time.Now,
	}
}

// LastSync возвращает время последней успешной синхронизации
func (s *Service) LastSync(ctx context.Context) (time.Time, error) {
	t, err := s.metadataStorage.GetLastSync(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync: %w", err)
	}
	return t, nil
}

func (s *Service) saveLastSync(ctx context.Context) {
	// Ошибка сохранения метаданных не влияет на результат синхронизации
	if err := s.metadataStorage.SaveLastSync(ctx, s.now()); err != nil {
		s.logger.Warn("Failed to save last sync time", "error", err)
	}
}

// Push отправляет одну пачку изменений: POST для созданных кейсов,
// PUT с ожидаемой версией для измененных, DELETE для удаленных.
// Первая ошибка, кроме конфликта версий, прерывает пачку; неотправленные
// изменения остаются в ожидании.
func (s *Service) Push(ctx context.Context) (*SyncResult, error) {
	st := s.store.State()
	result := &SyncResult{}

	var created, edited []*models.Case
	for _, c := range st.Cases {
		switch c.SyncStatus {
		case models.SyncStatusCreatedPending:
			created = append(created, c)
		case models.SyncStatusEditedPending:
			edited = append(edited, c)
		}
	}
	sortByUpdate(created)
	sortByUpdate(edited)

	deletes := make([]string, 0, len(st.PendingDeletes))
	for id := range st.PendingDeletes {
		deletes = append(deletes, id)
	}
	slices.Sort(deletes)

	s.logger.Info("Starting push",
		"created", len(created),
		"edited", len(edited),
		"deleted", len(deletes))

	for _, c := range created {
		resp, err := s.apiClient.PostCase(ctx, c)
		if err != nil {
			return result, &OpError{Message: msgCreateFailed, Err: err}
		}
		s.ack(resp, c.Version)
		result.Created++
	}

	for _, c := range edited {
		if err := s.pushEdited(ctx, c, result); err != nil {
			return result, err
		}
	}

	for _, id := range deletes {
		err := s.apiClient.DeleteCase(ctx, id)
		if err != nil && !errors.Is(err, api.ErrNotFound) {
			return result, &OpError{Message: msgDeleteFailed, Err: err}
		}
		s.store.Dispatch(store.DeleteSynced{ID: id})
		result.Deleted++
	}

	s.logger.Info("Push completed",
		"created", result.Created,
		"updated", result.Updated,
		"deleted", result.Deleted,
		"conflicts", result.Conflicts)

	s.saveLastSync(ctx)
	return result, nil
}

// pushEdited отправляет PUT; при конфликте версий загружает кейс с сервера,
// сливает его с локальными правками и повторяет запрос один раз.
func (s *Service) pushEdited(ctx context.Context, c *models.Case, result *SyncResult) error {
	resp, err := s.apiClient.PutCase(ctx, c, c.Version)
	if err == nil {
		s.ack(resp, c.Version)
		result.Updated++
		return nil
	}
	if !errors.Is(err, api.ErrVersionConflict) {
		return &OpError{Message: msgUpdateFailed, Err: err}
	}

	result.Conflicts++
	s.logger.Info("Version conflict, merging server state", "case_id", c.ID, "version", c.Version)

	server, err := s.apiClient.FetchCase(ctx, c.ID)
	if err != nil {
		return &OpError{Message: msgUpdateFailed, Err: err}
	}
	// Все поля из PendingFields остаются локальными, даже уже подтвержденные
	// первым PUT; повторный PUT перезапишет ими более новую правку пира в тех же полях
	next := s.store.Dispatch(store.SetCase{Case: server, Options: merge.Options{LocalSessionID: s.sessionID}})

	merged, ok := next.Cases[c.ID]
	if !ok || !merged.SyncStatus.IsPending() {
		// Локальные правки совпали с сервером или кейс удален
		return nil
	}

	resp, err = s.apiClient.PutCase(ctx, merged, merged.Version)
	if err != nil {
		if errors.Is(err, api.ErrVersionConflict) {
			s.logger.Warn("Version conflict persists, keeping case pending", "case_id", c.ID)
			return nil
		}
		return &OpError{Message: msgUpdateFailed, Err: err}
	}
	s.ack(resp, merged.Version)
	result.Updated++
	return nil
}

// ack применяет ответ сервера. Если пир успел обновить кейс между PUT и
// ответом, ответ устарел и PendingFields не очищаются: следующий PUT
// отправит эти поля еще раз, побеждает последняя записанная версия.
func (s *Service) ack(resp *models.Case, sentVersion int64) {
	if resp == nil {
		return
	}
	s.store.Dispatch(store.AckCases{
		Cases:        models.CasesHash{resp.ID: resp},
		SentVersions: map[string]int64{resp.ID: sentVersion},
	})
}

// Fetch загружает все активные кейсы и сливает их с локальными
func (s *Service) Fetch(ctx context.Context, caseType models.CaseType) error {
	s.store.Dispatch(store.FetchStarted{})

	cases, err := s.apiClient.FetchAllCases(ctx, caseType)
	if err != nil {
		opErr := &OpError{Message: msgFetchFailed, Err: err}
		s.logger.Warn("Failed to fetch cases", "error", err)
		s.store.Dispatch(store.FetchFailed{Err: UserMessage(opErr)})
		return opErr
	}

	s.store.Dispatch(store.SetCases{Cases: cases, Options: merge.Options{LocalSessionID: s.sessionID}})
	s.logger.Info("Fetched cases", "count", len(cases))
	s.saveLastSync(ctx)
	return nil
}

// FetchDeleted загружает удаленные кейсы
func (s *Service) FetchDeleted(ctx context.Context, caseType models.CaseType) error {
	s.store.Dispatch(store.FetchDeletedStarted{})

	cases, err := s.apiClient.FetchDeletedCases(ctx, caseType)
	if err != nil {
		opErr := &OpError{Message: msgDeletedFailed, Err: err}
		s.logger.Warn("Failed to fetch deleted cases", "error", err)
		s.store.Dispatch(store.FetchDeletedFailed{Err: UserMessage(opErr)})
		return opErr
	}

	s.store.Dispatch(store.FetchDeletedDone{Cases: cases})
	return nil
}

// Restore восстанавливает удаленный кейс на сервере и возвращает его в активные
func (s *Service) Restore(ctx context.Context, id string) error {
	restored, err := s.apiClient.RestoreCase(ctx, id)
	if err != nil {
		opErr := &OpError{Message: msgRestoreFailed, Err: err}
		if msg := UserMessage(opErr); msg != "" {
			s.store.Dispatch(store.SetError{Err: msg})
		}
		return opErr
	}

	s.store.Dispatch(store.RestoreDeletedCase{Case: restored})
	return nil
}

func sortByUpdate(cases []*models.Case) {
	slices.SortFunc(cases, func(a, b *models.Case) int {
		if c := a.TimeLastUpdate.Compare(b.TimeLastUpdate); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
