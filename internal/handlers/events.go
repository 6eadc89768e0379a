package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/avc/drop-service/internal/domain"
	"go.uber.org/zap"
)

const keepAliveInterval = 25 * time.Second

// EventsHandler отдает перечитанное состояние сделок и кошелька
// потоком Server-Sent Events
type EventsHandler struct {
	refreshService domain.RefreshService
	logger         *zap.Logger
	keepAlive      time.Duration

	closing   chan struct{}
	closeOnce sync.Once
}

func NewEventsHandler(refreshService domain.RefreshService, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{
		refreshService: refreshService,
		logger:         logger,
		keepAlive:      keepAliveInterval,
		closing:        make(chan struct{}),
	}
}

// Shutdown завершает все открытые потоки. Вызывается при остановке
// сервера, иначе http.Server.Shutdown ждал бы их до таймаута.
func (h *EventsHandler) Shutdown() {
	h.closeOnce.Do(func() { close(h.closing) })
}

func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	sess, ok := GetSession(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming Unsupported", http.StatusInternalServerError)
		return
	}

	// Поток живет дольше WriteTimeout сервера
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	var mu sync.Mutex
	write := func(format string, args ...any) error {
		mu.Lock()
		defer mu.Unlock()
		if _, err := fmt.Fprintf(w, format, args...); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	done := make(chan struct{})
	var wg sync.WaitGroup
	defer func() {
		close(done)
		wg.Wait()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(h.keepAlive)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-h.closing:
				cancel()
				return
			case <-ticker.C:
				if err := write(": ping\n\n"); err != nil {
					return
				}
			}
		}
	}()

	emit := func(update *domain.Update) error {
		data, err := json.Marshal(update)
		if err != nil {
			return fmt.Errorf("encode update: %w", err)
		}
		return write("event: %s\ndata: %s\n\n", update.Topic, data)
	}

	if err := h.refreshService.Watch(ctx, sess, emit); err != nil {
		h.logger.Warn("event stream closed",
			zap.Int64("telegram_id", sess.TelegramID),
			zap.Error(err),
		)
		_ = write("event: error\ndata: %q\n\n", "stream interrupted")
	}
}
