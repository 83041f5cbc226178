package ports

//go:generate mockgen -source=blacklist.go -destination=../mocks/blacklist_mock.go -package=mocks

import (
	"context"
	"time"
)

// ITokenBlacklist — контракт чёрного списка токенов (например Redis).
// Ключ — jti токена; запись живёт не дольше остатка жизни самого токена.
type ITokenBlacklist interface {
	Add(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}
