package auth

import (
	"log/slog"

	"calcHub/internal/ports"
)

// UseCase — бизнес-логика аутентификации: регистрация, вход, обновление пары токенов,
// выход через чёрный список и работа с профилем.
type UseCase struct {
	users     ports.IUserRepository
	blacklist ports.ITokenBlacklist
	tokens    *TokenManager
	log       *slog.Logger
}

// New создаёт юзкейс аутентификации.
func New(users ports.IUserRepository, blacklist ports.ITokenBlacklist, tokens *TokenManager, log *slog.Logger) *UseCase {
	return &UseCase{users: users, blacklist: blacklist, tokens: tokens, log: log}
}
