package domain

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserNotFound возвращается, когда пользователь не найден.
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists возвращается при регистрации с занятым username или email.
var ErrUserExists = errors.New("username or email already exists")

// ErrInvalidCredentials возвращается при неверной паре логин/пароль.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// ErrUserInactive возвращается при попытке входа деактивированного пользователя.
var ErrUserInactive = errors.New("user is not active")

// User — зарегистрированный пользователь. Пароль хранится только как bcrypt-хэш.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	Username     string
	PasswordHash string
	IsActive     bool
	IsVerified   bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HashPassword хэширует пароль bcrypt-ом со стандартной стоимостью.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword сверяет пароль с хэшем пользователя.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ValidatePassword — схемная проверка пароля на регистрации и смене:
// 8–128 символов, минимум одна заглавная, одна строчная, одна цифра и один спецсимвол.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	if len(password) > 128 {
		return &ValidationError{Field: "password", Message: "password must be at most 128 characters"}
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	switch {
	case !upper:
		return &ValidationError{Field: "password", Message: "password must contain at least one uppercase letter"}
	case !lower:
		return &ValidationError{Field: "password", Message: "password must contain at least one lowercase letter"}
	case !digit:
		return &ValidationError{Field: "password", Message: "password must contain at least one digit"}
	case !special:
		return &ValidationError{Field: "password", Message: "password must contain at least one special character"}
	}
	return nil
}

// ValidateUsername проверяет имя пользователя: 3–50 символов, без пробелов.
func ValidateUsername(username string) error {
	if len(username) < 3 || len(username) > 50 {
		return &ValidationError{Field: "username", Message: "username must be 3-50 characters"}
	}
	if strings.ContainsAny(username, " \t\n") {
		return &ValidationError{Field: "username", Message: "username must not contain whitespace"}
	}
	return nil
}

// RegisterParams — данные регистрации нового пользователя (пароль в открытом виде, хэшируется в use case).
type RegisterParams struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
}

// ProfilePatch — частичное обновление профиля: nil-поле не трогается.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Username  *string
}

// ValidateEmail — минимальная структурная проверка адреса (наличие @ и точки в домене).
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return &ValidationError{Field: "email", Message: "invalid email address"}
	}
	return nil
}
