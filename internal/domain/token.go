package domain

import (
	"errors"
	"time"
)

// ErrInvalidToken возвращается при невалидном, просроченном или отозванном токене,
// а также при токене не того типа (refresh вместо access и наоборот).
var ErrInvalidToken = errors.New("invalid token")

// TokenType — назначение JWT: access для запросов к API, refresh для обновления пары.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// TokenPair — пара токенов, выдаваемая на входе и обновлении.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time // конец жизни access-токена
}
