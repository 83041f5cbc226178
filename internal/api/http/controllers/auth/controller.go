package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"calcHub/internal/domain"
	"calcHub/internal/ports"
)

// Controller — маршруты аутентификации: register, login, refresh, logout.
type Controller struct {
	uc  ports.IAuthUseCase
	log *slog.Logger
}

// New создаёт контроллер аутентификации.
func New(uc ports.IAuthUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	grp := r.Group("/auth")

	grp.POST("/register", c.register)
	grp.POST("/login", c.login)
	grp.POST("/refresh", c.refresh)
	grp.POST("/logout", c.logout)
}

// @Summary Регистрация пользователя
// @Description Создаёт пользователя. Пароль: 8–128 символов, заглавная, строчная, цифра и спецсимвол.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Данные регистрации"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse "Невалидные данные или занятый username/email"
// @Router /auth/register [post]
func (c *Controller) register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("register bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.respondError(ctx, err)
		return
	}

	user, err := c.uc.Register(ctx.Request.Context(), req.Params())
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, NewUserResponse(user))
}

// @Summary Вход
// @Description Вход по username или email. Возвращает пару access+refresh токенов.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Логин и пароль"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} ErrorResponse "Неверные логин или пароль"
// @Failure 400 {object} ErrorResponse "Пользователь деактивирован"
// @Router /auth/login [post]
func (c *Controller) login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("login bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	pair, user, err := c.uc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTokenResponse(pair, user))
}

// @Summary Обновление пары токенов
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh-токен"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (c *Controller) refresh(ctx *gin.Context) {
	var req RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	pair, err := c.uc.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	// Пользовательские данные в ответе обновления не нужны — только токены.
	ctx.JSON(http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"token_type":    "bearer",
		"expires_at":    pair.ExpiresAt,
	})
}

// @Summary Выход
// @Description Заносит jti access-токена в чёрный список до конца его жизни.
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /auth/logout [post]
func (c *Controller) logout(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
		return
	}

	if err := c.uc.Logout(ctx.Request.Context(), parts[1]); err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// respondError переводит доменные ошибки аутентификации в HTTP-статусы.
func (c *Controller) respondError(ctx *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.log.Warn("auth validation failed", "field", vErr.Field, "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Message, Field: vErr.Field})
	case errors.Is(err, domain.ErrUserExists):
		c.log.Warn("register conflict", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "username or email already exists"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.log.Warn("login rejected", "error", err)
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "incorrect username or password"})
	case errors.Is(err, domain.ErrUserInactive):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "user is not active"})
	case errors.Is(err, domain.ErrInvalidToken):
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired token"})
	default:
		c.log.Error("auth request failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
