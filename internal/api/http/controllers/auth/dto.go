package auth

import (
	"time"

	"calcHub/internal/domain"
)

// RegisterRequest — запрос регистрации (POST /auth/register).
type RegisterRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// Validate — схемные проверки регистрации; остальное (уникальность, политика пароля) — в use case.
func (r *RegisterRequest) Validate() error {
	if r.Password != r.ConfirmPassword {
		return &domain.ValidationError{Field: "confirm_password", Message: "passwords do not match"}
	}
	return nil
}

// Params переводит запрос в доменные параметры регистрации.
func (r *RegisterRequest) Params() domain.RegisterParams {
	return domain.RegisterParams{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Username:  r.Username,
		Password:  r.Password,
	}
}

// LoginRequest — запрос входа: username или email плюс пароль.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest — запрос обновления пары токенов.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserResponse — публичное представление пользователя (без хэша пароля).
type UserResponse struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	IsActive   bool       `json:"is_active"`
	IsVerified bool       `json:"is_verified"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewUserResponse собирает ответ из доменного пользователя.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Username:   u.Username,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.CreatedAt,
	}
}

// TokenResponse — ответ на вход и обновление: пара токенов плюс данные пользователя.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         UserResponse `json:"user"`
}

// newTokenResponse собирает ответ из пары токенов и пользователя.
func newTokenResponse(pair *domain.TokenPair, user *domain.User) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
		ExpiresAt:    pair.ExpiresAt,
		User:         NewUserResponse(user),
	}
}

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
