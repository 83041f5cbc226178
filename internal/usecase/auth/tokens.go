package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"calcHub/internal/domain"
)

// TokenConfig — настройки JWT. Переменные: CALCHUB_TOKEN_SECRET, CALCHUB_TOKEN_ACCESS_TTL, CALCHUB_TOKEN_REFRESH_TTL.
type TokenConfig struct {
	Secret     string        `envconfig:"SECRET" default:"dev-secret-change-me"`
	AccessTTL  time.Duration `envconfig:"ACCESS_TTL" default:"30m"`
	RefreshTTL time.Duration `envconfig:"REFRESH_TTL" default:"168h"`
}

// Claims — полезная нагрузка токена: id пользователя в sub, тип в type, jti в RegisteredClaims.ID.
type Claims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет HS256-токены двух типов.
type TokenManager struct {
	cfg TokenConfig
}

// NewTokenManager создаёт менеджер токенов по конфигу.
func NewTokenManager(cfg TokenConfig) *TokenManager {
	return &TokenManager{cfg: cfg}
}

// ttl возвращает время жизни токена данного типа.
func (m *TokenManager) ttl(t domain.TokenType) time.Duration {
	if t == domain.TokenRefresh {
		return m.cfg.RefreshTTL
	}
	return m.cfg.AccessTTL
}

// Issue выпускает токен заданного типа для пользователя (jti — новый uuid).
func (m *TokenManager) Issue(userID uuid.UUID, t domain.TokenType) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.ttl(t))
	claims := Claims{
		TokenType: string(t),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// IssuePair выпускает пару access+refresh.
func (m *TokenManager) IssuePair(userID uuid.UUID) (*domain.TokenPair, error) {
	access, expiresAt, err := m.Issue(userID, domain.TokenAccess)
	if err != nil {
		return nil, err
	}
	refresh, _, err := m.Issue(userID, domain.TokenRefresh)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}

// Parse проверяет подпись и срок токена и требует совпадения типа.
// Любая неудача — domain.ErrInvalidToken (детали в обёртке).
func (m *TokenManager) Parse(token string, want domain.TokenType) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.TokenType != string(want) {
		return nil, fmt.Errorf("%w: wrong token type %q", domain.ErrInvalidToken, claims.TokenType)
	}
	return claims, nil
}

// UserID достаёт id пользователя из sub.
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", domain.ErrInvalidToken)
	}
	return id, nil
}

// Remaining возвращает остаток жизни токена (для TTL записи в чёрном списке).
func (c *Claims) Remaining(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Time.Sub(now)
}
