package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const checkTimeout = 2 * time.Second

// Pinger проверка доступности зависимости
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc адаптер функции к Pinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler обрабатывает health check запросы.
// База данных обязательна для готовности, остальные зависимости
// только переводят статус в degraded.
type HealthHandler struct {
	db       Pinger
	optional map[string]Pinger
	logger   *zap.Logger
}

// NewHealthHandler создает новый HealthHandler
func NewHealthHandler(db Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:       db,
		optional: make(map[string]Pinger),
		logger:   logger,
	}
}

// WithCheck добавляет необязательную проверку
func (h *HealthHandler) WithCheck(name string, p Pinger) *HealthHandler {
	h.optional[name] = p
	return h
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health возвращает статус приложения и его зависимостей
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:     "ok",
		Components: map[string]string{"database": "ok"},
	}

	if err := h.ping(r.Context(), h.db); err != nil {
		response.Status = "unavailable"
		response.Components["database"] = "unavailable"
		h.logger.Warn("health check: database unavailable", zap.Error(err))
	}

	for name, check := range h.optional {
		response.Components[name] = "ok"
		if err := h.ping(r.Context(), check); err != nil {
			response.Components[name] = "unavailable"
			if response.Status == "ok" {
				response.Status = "degraded"
			}
			h.logger.Warn("health check: component unavailable", zap.String("component", name), zap.Error(err))
		}
	}

	status := http.StatusOK
	if response.Status == "unavailable" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, h.logger, status, response)
}

// Ready возвращает готовность приложения принимать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.ping(r.Context(), h.db); err != nil {
		h.logger.Warn("readiness check failed: database unavailable", zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *HealthHandler) ping(ctx context.Context, p Pinger) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return p.Ping(ctx)
}
