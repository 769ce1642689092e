package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/casesync/internal/models"
	"github.com/iudanet/casesync/internal/server/storage"
	"github.com/iudanet/casesync/internal/validation"
	"github.com/iudanet/casesync/pkg/api"
)

//go:generate moq -out publisher_mock.go . Publisher
//go:generate moq -out casestorage_mock.go -pkg handlers ../storage CaseStorage
//go:generate moq -out userstorage_mock.go -pkg handlers ../storage UserStorage

// Publisher рассылает уведомления об изменении кейса
type Publisher interface {
	Publish(topic string, c *models.Case, sessionID string) error
}

// CasesHandler обрабатывает REST API кейсов
type CasesHandler struct {
	logger    *slog.Logger
	storage   storage.CaseStorage
	publisher Publisher
}

// NewCasesHandler создает новый handler кейсов
func NewCasesHandler(logger *slog.Logger, cases storage.CaseStorage, publisher Publisher) *CasesHandler {
	return &CasesHandler{
		logger:    logger,
		storage:   cases,
		publisher: publisher,
	}
}

// ListCases обрабатывает GET /api/v1/cases?caseType=
func (h *CasesHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

// ListDeletedCases обрабатывает GET /api/v1/cases/deleted?caseType=
func (h *CasesHandler) ListDeletedCases(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *CasesHandler) list(w http.ResponseWriter, r *http.Request, deleted bool) {
	ctx := r.Context()

	caseType := models.CaseType(r.URL.Query().Get(api.QueryCaseType))
	if err := validation.ValidateCaseType(caseType, true); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	cases, err := h.storage.ListCases(ctx, caseType, deleted)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list cases", slog.Bool("deleted", deleted), slog.Any("error", err))
		sendError(h.logger, w, "failed to load cases", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, cases, http.StatusOK)
}

// GetCase обрабатывает GET /api/v1/case/{id}
func (h *CasesHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	c, err := h.storage.GetCase(ctx, id)
	if err != nil {
		h.handleStorageError(w, r, id, err)
		return
	}

	sendJSON(h.logger, w, c, http.StatusOK)
}

// CreateCase обрабатывает POST /api/v1/case?caseVersion=
func (h *CasesHandler) CreateCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	c, version, ok := h.decodeCase(w, r)
	if !ok {
		return
	}
	if err := validation.ValidateCaseID(c.ID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.storage.CreateCase(ctx, c, version)
	if err != nil {
		h.handleStorageError(w, r, c.ID, err)
		return
	}

	h.logger.InfoContext(ctx, "case created",
		slog.String("case_id", saved.ID),
		slog.Int64("version", saved.Version),
		slog.String("session_id", saved.SessionLastUpdate))

	h.publish(r, api.TopicCaseCreate, saved)
	sendJSON(h.logger, w, saved, http.StatusCreated)
}

// UpdateCase обрабатывает PUT /api/v1/case/{id}?caseVersion=
func (h *CasesHandler) UpdateCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	c, version, ok := h.decodeCase(w, r)
	if !ok {
		return
	}
	if c.ID == "" {
		c.ID = id
	}
	if c.ID != id {
		sendError(h.logger, w, "case id does not match the path", http.StatusBadRequest)
		return
	}

	saved, err := h.storage.UpdateCase(ctx, c, version)
	if err != nil {
		h.handleStorageError(w, r, id, err)
		return
	}

	h.logger.InfoContext(ctx, "case updated",
		slog.String("case_id", saved.ID),
		slog.Int64("expected_version", version),
		slog.Int64("version", saved.Version))

	h.publish(r, api.TopicCaseUpdate, saved)
	sendJSON(h.logger, w, saved, http.StatusOK)
}

// DeleteCase обрабатывает DELETE /api/v1/case/{id}
func (h *CasesHandler) DeleteCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	deleted, err := h.storage.DeleteCase(ctx, id, r.Header.Get(api.HeaderSessionID))
	if err != nil {
		h.handleStorageError(w, r, id, err)
		return
	}

	h.logger.InfoContext(ctx, "case deleted", slog.String("case_id", id), slog.Int64("version", deleted.Version))

	h.publish(r, api.TopicCaseDelete, deleted)
	w.WriteHeader(http.StatusNoContent)
}

// RestoreCase обрабатывает PUT /api/v1/case/undelete/{id}
func (h *CasesHandler) RestoreCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	restored, err := h.storage.RestoreCase(ctx, id, r.Header.Get(api.HeaderSessionID))
	if err != nil {
		h.handleStorageError(w, r, id, err)
		return
	}

	h.logger.InfoContext(ctx, "case restored", slog.String("case_id", id), slog.Int64("version", restored.Version))

	// Для остальных клиентов восстановленный кейс выглядит как новый
	h.publish(r, api.TopicCaseCreate, restored)
	sendJSON(h.logger, w, restored, http.StatusOK)
}

// decodeCase разбирает тело запроса и параметр caseVersion.
// SessionLastUpdate берется из заголовка X-Session-Id.
func (h *CasesHandler) decodeCase(w http.ResponseWriter, r *http.Request) (*models.Case, int64, bool) {
	version, err := validation.ParseCaseVersion(r.URL.Query().Get(api.QueryCaseVersion))
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return nil, 0, false
	}

	var c models.Case
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode case", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return nil, 0, false
	}
	if err := validation.ValidateCaseType(c.Type, false); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return nil, 0, false
	}

	c.SessionLastUpdate = r.Header.Get(api.HeaderSessionID)
	return &c, version, true
}

func (h *CasesHandler) publish(r *http.Request, topic string, c *models.Case) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(topic, c, r.Header.Get(api.HeaderSessionID)); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to publish case",
			slog.String("topic", topic), slog.String("case_id", c.ID), slog.Any("error", err))
	}
}

func (h *CasesHandler) handleStorageError(w http.ResponseWriter, r *http.Request, id string, err error) {
	switch {
	case errors.Is(err, storage.ErrCaseNotFound):
		sendError(h.logger, w, "case not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrVersionConflict):
		h.logger.InfoContext(r.Context(), "case version conflict", slog.String("case_id", id), slog.Any("error", err))
		sendError(h.logger, w, "case was changed by another session", http.StatusConflict)
	default:
		h.logger.ErrorContext(r.Context(), "case storage failed", slog.String("case_id", id), slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
	}
}
