package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Ошибки REST API кейсов
var (
	// ErrUnauthenticated сервер отклонил токен (401)
	ErrUnauthenticated = errors.New("authentication expired")

	// ErrVersionConflict версия кейса на сервере новее ожидаемой (409)
	ErrVersionConflict = errors.New("case version conflict")

	// ErrNotFound кейс не найден на сервере (404)
	ErrNotFound = errors.New("case not found")
)

// RequestError ошибка запроса к серверу.
// HasResponse == false означает транспортную ошибку без ответа сервера.
type RequestError struct {
	Err          error
	Method       string
	Path         string
	ErrorMessage string // сообщение сервера из ErrorResponse.ErrorMessage
	StatusCode   int
	HasResponse  bool
}

func (e *RequestError) Error() string {
	if !e.HasResponse {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.ErrorMessage != "" {
		return fmt.Sprintf("%s %s: server error (%d): %s", e.Method, e.Path, e.StatusCode, e.ErrorMessage)
	}
	return fmt.Sprintf("%s %s: request failed with status %d", e.Method, e.Path, e.StatusCode)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// statusError сопоставляет код ответа с sentinel-ошибкой.
func statusError(code int) error {
	switch code {
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusConflict:
		return ErrVersionConflict
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}

// IsRequestErrorMuted сообщает, что ошибку не нужно показывать пользователю:
// сервер не ответил (сеть недоступна) или запрос отменен.
func IsRequestErrorMuted(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return !reqErr.HasResponse
	}
	return false
}

// FormatRequestError дополняет сообщение msg текстом ошибки сервера, если он есть.
func FormatRequestError(msg string, err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.ErrorMessage != "" {
		return msg + "\n" + reqErr.ErrorMessage
	}
	return msg
}
