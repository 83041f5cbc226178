package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"calcHub/internal/domain"
)

// Register — схемные проверки полей, проверка уникальности, bcrypt-хэш и сохранение.
// Занятый username или email — domain.ErrUserExists.
func (u *UseCase) Register(ctx context.Context, params domain.RegisterParams) (*domain.User, error) {
	if err := domain.ValidateUsername(params.Username); err != nil {
		return nil, err
	}
	if err := domain.ValidateEmail(params.Email); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(params.Password); err != nil {
		return nil, err
	}

	taken, err := u.users.ExistsByUsernameOrEmail(ctx, params.Username, params.Email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUserExists
	}

	hash, err := domain.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		Username:     params.Username,
		PasswordHash: hash,
		IsActive:     true,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	u.log.Info("user registered", "id", user.ID, "username", user.Username)
	return user, nil
}

// Login — вход по username или email. Несуществующий пользователь и неверный пароль
// неотличимы для вызывающего (ErrInvalidCredentials), деактивированный — ErrUserInactive.
// При успехе обновляет last_login и выдаёт пару токенов.
func (u *UseCase) Login(ctx context.Context, login, password string) (*domain.TokenPair, *domain.User, error) {
	user, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !user.CheckPassword(password) {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, domain.ErrUserInactive
	}

	pair, err := u.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := u.users.Update(ctx, user); err != nil {
		u.log.Warn("last login update", "id", user.ID, "error", err)
	}

	u.log.Info("user logged in", "id", user.ID, "username", user.Username)
	return pair, user, nil
}

// Refresh проверяет refresh-токен (включая чёрный список) и выдаёт новую пару.
func (u *UseCase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := u.tokens.Parse(refreshToken, domain.TokenRefresh)
	if err != nil {
		return nil, err
	}
	if err := u.checkBlacklist(ctx, claims.ID); err != nil {
		return nil, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	return u.tokens.IssuePair(userID)
}

// Logout заносит jti access-токена в чёрный список с TTL, равным остатку жизни токена.
func (u *UseCase) Logout(ctx context.Context, accessToken string) error {
	claims, err := u.tokens.Parse(accessToken, domain.TokenAccess)
	if err != nil {
		return err
	}
	ttl := claims.Remaining(time.Now().UTC())
	if ttl <= 0 {
		return nil // токен уже мёртв, заносить нечего
	}
	if err := u.blacklist.Add(ctx, claims.ID, ttl); err != nil {
		return err
	}
	u.log.Info("token blacklisted", "jti", claims.ID)
	return nil
}

// Authenticate — проверка access-токена для middleware: подпись, тип, чёрный список,
// существование и активность пользователя.
func (u *UseCase) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	claims, err := u.tokens.Parse(accessToken, domain.TokenAccess)
	if err != nil {
		return nil, err
	}
	if err := u.checkBlacklist(ctx, claims.ID); err != nil {
		return nil, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	return user, nil
}

// checkBlacklist — отозванный jti приравнивается к невалидному токену.
// Недоступность чёрного списка не валит запрос: warning и пропуск.
func (u *UseCase) checkBlacklist(ctx context.Context, jti string) error {
	blocked, err := u.blacklist.IsBlacklisted(ctx, jti)
	if err != nil {
		u.log.Warn("blacklist check", "jti", jti, "error", err)
		return nil
	}
	if blocked {
		return domain.ErrInvalidToken
	}
	return nil
}

// UpdateProfile — частичное обновление профиля с повторной проверкой уникальности username/email.
func (u *UseCase) UpdateProfile(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (*domain.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	username, email := user.Username, user.Email
	if patch.Username != nil {
		if err := domain.ValidateUsername(*patch.Username); err != nil {
			return nil, err
		}
		username = *patch.Username
	}
	if patch.Email != nil {
		if err := domain.ValidateEmail(*patch.Email); err != nil {
			return nil, err
		}
		email = *patch.Email
	}

	if username != user.Username || email != user.Email {
		taken, err := u.users.ExistsByUsernameOrEmail(ctx, username, email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrUserExists
		}
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	user.Username = username
	user.Email = email
	user.UpdatedAt = time.Now().UTC()

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	u.log.Info("profile updated", "id", user.ID)
	return user, nil
}
