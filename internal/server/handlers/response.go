package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/casesync/pkg/api"
)

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой; message показывается пользователю
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:        http.StatusText(statusCode),
		ErrorMessage: message,
	}
	sendJSON(logger, w, resp, statusCode)
}
