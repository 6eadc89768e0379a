package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/avc/drop-service/internal/domain"
	"github.com/avc/drop-service/internal/utils/jwt"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	SessionKey   contextKey = "session"
	RequestIDKey contextKey = "request_id"
)

// AuthMiddleware проверяет JWT моста идентификации и кладет сессию
// одобренного пользователя в контекст запроса
func AuthMiddleware(jwtManager *jwt.Manager, sessions domain.SessionService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			telegramID, err := jwtManager.Validate(token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			sess, err := sessions.Resolve(r.Context(), telegramID)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrUserNotFound):
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
				case errors.Is(err, domain.ErrNotApproved):
					http.Error(w, "Forbidden", http.StatusForbidden)
				default:
					logger.Error("failed to resolve session", zap.Int64("telegram_id", telegramID), zap.Error(err))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
				return
			}

			ctx := WithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken извлекает токен из заголовка "Bearer <token>".
// EventSource в браузере не умеет заголовки, поэтому для SSE
// допускается query-параметр token.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		token := r.URL.Query().Get("token")
		return token, token != "" && r.Header.Get("Accept") == "text/event-stream"
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequestIDMiddleware генерирует уникальный request ID
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.New().String()
			ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
			w.Header().Set("X-Request-ID", requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware логирует HTTP запросы
func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				requestID, _ := r.Context().Value(RequestIDKey).(string)
				fields := []zap.Field{
					zap.String("request_id", requestID),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
				}
				if sess, ok := GetSession(r.Context()); ok {
					fields = append(fields, zap.Int64("telegram_id", sess.TelegramID))
				}
				logger.Info("HTTP request", fields...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// RecoveryMiddleware обрабатывает паники
func RecoveryMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					requestID, _ := r.Context().Value(RequestIDKey).(string)
					logger.Error("panic recovered",
						zap.String("request_id", requestID),
						zap.Any("panic", rec),
					)
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// GetSession извлекает сессию из контекста
func GetSession(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*domain.Session)
	return sess, ok && sess != nil
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}
