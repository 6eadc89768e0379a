package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/drop-service/internal/domain"
	domainmocks "github.com/avc/drop-service/internal/domain/mocks"
	"github.com/avc/drop-service/internal/utils/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestAuthMiddleware(t *testing.T) {
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	mockSessions := domainmocks.NewSessionServiceMock(t)
	auth := AuthMiddleware(jwtManager, mockSessions, zap.NewNop())

	token, err := jwtManager.Generate(1001)
	if err != nil {
		t.Fatal(err)
	}

	okHandler := func(t *testing.T) http.Handler {
		return auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := GetSession(r.Context())
			assert.True(t, ok)
			assert.Equal(t, int64(1001), sess.TelegramID)
			w.WriteHeader(http.StatusOK)
		}))
	}

	t.Run("Approved user", func(t *testing.T) {
		mockSessions.EXPECT().Resolve(mock.Anything, int64(1001)).Return(testSession(1001, false), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/deals", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		okHandler(t).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Token in query for event stream", func(t *testing.T) {
		mockSessions.EXPECT().Resolve(mock.Anything, int64(1001)).Return(testSession(1001, false), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/events?token="+token, nil)
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()

		okHandler(t).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	tests := []struct {
		name       string
		header     string
		resolveErr error
		expected   int
	}{
		{name: "No header", expected: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic " + token, expected: http.StatusUnauthorized},
		{name: "Bad token", header: "Bearer invalid.token", expected: http.StatusUnauthorized},
		{name: "Unknown user", header: "Bearer " + token, resolveErr: domain.ErrUserNotFound, expected: http.StatusUnauthorized},
		{name: "Not approved", header: "Bearer " + token, resolveErr: domain.ErrNotApproved, expected: http.StatusForbidden},
		{name: "Database error", header: "Bearer " + token, resolveErr: errors.New("db error"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.resolveErr != nil {
				mockSessions.EXPECT().Resolve(mock.Anything, int64(1001)).Return(nil, tt.resolveErr).Once()
			}

			handler := auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("next handler must not be called")
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/deals", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.expected, w.Code)
		})
	}

	t.Run("Query token outside event stream", func(t *testing.T) {
		handler := auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("next handler must not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/deals?token="+token, nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	middleware := RequestIDMiddleware()

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := r.Context().Value(RequestIDKey).(string)
		assert.True(t, ok)
		assert.NotEmpty(t, requestID)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestLoggingMiddleware(t *testing.T) {
	middleware := LoggingMiddleware(zap.NewNop())

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("OK"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, authed(req, testSession(1001, false), nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	middleware := RecoveryMiddleware(zap.NewNop())

	t.Run("No panic", func(t *testing.T) {
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("With panic", func(t *testing.T) {
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("test panic")
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		assert.NotPanics(t, func() {
			handler.ServeHTTP(w, req)
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetSession(t *testing.T) {
	t.Run("Session present", func(t *testing.T) {
		sess, ok := GetSession(WithSession(context.Background(), testSession(1001, true)))
		assert.True(t, ok)
		assert.True(t, sess.IsMerchant)
	})

	t.Run("Session not present", func(t *testing.T) {
		sess, ok := GetSession(context.Background())
		assert.False(t, ok)
		assert.Nil(t, sess)
	})

	t.Run("Wrong type in context", func(t *testing.T) {
		_, ok := GetSession(context.WithValue(context.Background(), SessionKey, "not-a-session"))
		assert.False(t, ok)
	})

	t.Run("Typed nil", func(t *testing.T) {
		_, ok := GetSession(WithSession(context.Background(), nil))
		assert.False(t, ok)
	})
}
