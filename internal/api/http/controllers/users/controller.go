package users

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "calcHub/internal/api/http/controllers/auth"
	"calcHub/internal/api/http/middlewares"
	"calcHub/internal/domain"
	"calcHub/internal/ports"
)

// Controller — маршруты профиля текущего пользователя: /users/me.
type Controller struct {
	uc   ports.IAuthUseCase
	auth gin.HandlerFunc
	log  *slog.Logger
}

// New создаёт контроллер профиля.
func New(uc ports.IAuthUseCase, auth gin.HandlerFunc, log *slog.Logger) *Controller {
	return &Controller{uc: uc, auth: auth, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	grp := r.Group("/users", c.auth)

	grp.GET("/me", c.me)
	grp.PUT("/me/profile", c.updateProfile)
}

// @Summary Профиль текущего пользователя
// @Tags users
// @Produce json
// @Success 200 {object} auth.UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /users/me [get]
func (c *Controller) me(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)
	ctx.JSON(http.StatusOK, authdto.NewUserResponse(user))
}

// @Summary Обновить профиль
// @Description Меняет только переданные поля; уникальность username/email проверяется заново.
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Новые значения"
// @Success 200 {object} auth.UserResponse
// @Failure 400 {object} ErrorResponse
// @Router /users/me/profile [put]
func (c *Controller) updateProfile(ctx *gin.Context) {
	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("profile bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	user := middlewares.CurrentUser(ctx)
	updated, err := c.uc.UpdateProfile(ctx.Request.Context(), user.ID, req.Patch())
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, authdto.NewUserResponse(updated))
}

// respondError переводит доменные ошибки профиля в HTTP-статусы.
func (c *Controller) respondError(ctx *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.log.Warn("profile validation failed", "field", vErr.Field, "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Message, Field: vErr.Field})
	case errors.Is(err, domain.ErrUserExists):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "username or email already exists"})
	case errors.Is(err, domain.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
	default:
		c.log.Error("profile request failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
