package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingTelegramID токен без идентификатора Telegram
var ErrMissingTelegramID = errors.New("token has no telegram_id")

// Claims представляет JWT claims моста идентификации
type Claims struct {
	TelegramID int64 `json:"telegram_id"`
	jwt.RegisteredClaims
}

// Manager проверяет токены, выпущенные мостом идентификации.
// Generate нужен для локального запуска и тестов.
type Manager struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewManager создает новый JWT manager
func NewManager(secretKey string, tokenTTL time.Duration) *Manager {
	return &Manager{
		secretKey: secretKey,
		tokenTTL:  tokenTTL,
	}
}

// Generate выпускает токен для пользователя Telegram
func (m *Manager) Generate(telegramID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		TelegramID: telegramID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Validate валидирует JWT токен и возвращает telegram ID
func (m *Manager) Validate(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secretKey), nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		return 0, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token claims")
	}

	if claims.TelegramID <= 0 {
		return 0, ErrMissingTelegramID
	}

	return claims.TelegramID, nil
}
