package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/drop-service/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// statusFor сопоставляет ошибку сервиса HTTP-статусу
func statusFor(err error) int {
	var storageErr *domain.StorageError
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrClaimConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNoRequisiteAvailable), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotMerchant), errors.Is(err, domain.ErrNotApproved):
		return http.StatusForbidden
	case errors.As(err, &storageErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// writeError пишет ошибку сервиса. Внутренние ошибки логируются
// и не раскрываются клиенту, ошибки хранилища отдаются с причиной.
func writeError(w http.ResponseWriter, logger *zap.Logger, msg string, err error) {
	status := statusFor(err)
	switch {
	case status == http.StatusBadGateway:
		logger.Warn(msg, zap.Error(err))
	case status >= http.StatusInternalServerError:
		logger.Error(msg, zap.Error(err))
		http.Error(w, http.StatusText(status), status)
		return
	}

	response := errorResponse{Error: err.Error()}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		response.Field = validationErr.Field
	}
	writeJSON(w, logger, status, response)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// uuidParam разбирает UUID из параметра маршрута chi
func uuidParam(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}
