package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	telegramID := int64(1001)

	t.Run("Valid token", func(t *testing.T) {
		m := NewManager(secretKey, time.Hour)
		token, err := m.Generate(telegramID)
		require.NoError(t, err)

		parsed, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, telegramID, parsed)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := NewManager(secretKey, time.Hour).Generate(telegramID)
		require.NoError(t, err)

		_, err = NewManager("wrong-secret", time.Hour).Validate(token)
		assert.Error(t, err)
	})

	t.Run("Malformed", func(t *testing.T) {
		m := NewManager(secretKey, time.Hour)
		for _, token := range []string{"", "invalid.token.string"} {
			_, err := m.Validate(token)
			assert.Error(t, err)
		}
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, -time.Minute)
		token, err := m.Generate(telegramID)
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Missing telegram id", func(t *testing.T) {
		m := NewManager(secretKey, time.Hour)
		token, err := m.Generate(0)
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrMissingTelegramID)
	})

	t.Run("Token without expiry", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{TelegramID: telegramID}).
			SignedString([]byte(secretKey))
		require.NoError(t, err)

		_, err = NewManager(secretKey, time.Hour).Validate(token)
		assert.Error(t, err)
	})

	t.Run("Unsigned token", func(t *testing.T) {
		_, err := NewManager(secretKey, time.Hour).
			Validate("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ0ZWxlZ3JhbV9pZCI6MTAwMX0.")
		assert.Error(t, err)
	})
}

func BenchmarkManager_Validate(b *testing.B) {
	m := NewManager("test-secret-key", time.Hour)
	token, _ := m.Generate(1001)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Validate(token)
	}
}
