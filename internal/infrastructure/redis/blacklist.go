package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"calcHub/internal/ports"
)

var _ ports.ITokenBlacklist = (*Blacklist)(nil)

// blacklistPrefix — префикс ключей отозванных токенов: blacklist:<jti>.
const blacklistPrefix = "blacklist:"

// Blacklist реализует ports.ITokenBlacklist через Redis.
// Запись живёт ровно остаток жизни токена (TTL), дальше Redis выкидывает её сам.
type Blacklist struct {
	cli *Client
	log *slog.Logger
}

// NewBlacklist возвращает чёрный список токенов.
func NewBlacklist(cli *Client, log *slog.Logger) *Blacklist {
	return &Blacklist{cli: cli, log: log}
}

// Add заносит jti в чёрный список с заданным TTL.
func (b *Blacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if err := b.cli.Set(ctx, blacklistPrefix+jti, "1", ttl).Err(); err != nil {
		b.log.Debug("blacklist add failed", "jti", jti, "error", err)
		return err
	}
	return nil
}

// IsBlacklisted сообщает, отозван ли jti. Отсутствие ключа — не ошибка.
func (b *Blacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	_, err := b.cli.Get(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		b.log.Debug("blacklist get failed", "jti", jti, "error", err)
		return false, err
	}
	return true, nil
}
