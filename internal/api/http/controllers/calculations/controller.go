package calculations

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"calcHub/internal/api/http/middlewares"
	"calcHub/internal/domain"
	"calcHub/internal/ports"
)

// Controller — маршруты вычислений: BREAD под /api/v1/calculations, все за аутентификацией.
type Controller struct {
	uc   ports.ICalculationsUseCase
	auth gin.HandlerFunc
	log  *slog.Logger
}

// New создаёт контроллер вычислений.
func New(uc ports.ICalculationsUseCase, auth gin.HandlerFunc, log *slog.Logger) *Controller {
	return &Controller{uc: uc, auth: auth, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/calculations", c.auth)

	api.POST("", c.create)
	api.GET("", c.browse)
	api.GET("/:id", c.read)
	api.PUT("/:id", c.edit)
	api.PATCH("/:id", c.edit) // PATCH — алиас PUT: оба обновляют только переданные поля
	api.DELETE("/:id", c.delete)
}

// @Summary Создать вычисление
// @Description Принимает тег операции (addition, subtraction, multiplication, division — без учёта регистра) и список чисел (минимум 2). Результат не хранится, выводится при чтении.
// @Tags calculations
// @Accept json
// @Produce json
// @Param request body CreateCalculationRequest true "Параметры вычисления"
// @Success 201 {object} CalculationResponse
// @Failure 400 {object} ErrorResponse "Невалидный запрос, неизвестная операция или деление на ноль"
// @Router /api/v1/calculations [post]
func (c *Controller) create(ctx *gin.Context) {
	var req CreateCalculationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("create bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.log.Warn("create validation failed", "error", err)
		c.respondError(ctx, err)
		return
	}

	user := middlewares.CurrentUser(ctx)
	calc, err := c.uc.Create(ctx.Request.Context(), user.ID, req.Type, req.Inputs)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newCalculationResponse(calc))
}

// @Summary Список вычислений пользователя
// @Description Возвращает вычисления текущего пользователя (новые сначала) с пагинацией skip/limit.
// @Tags calculations
// @Produce json
// @Success 200 {array} CalculationResponse
// @Router /api/v1/calculations [get]
func (c *Controller) browse(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	user := middlewares.CurrentUser(ctx)
	list, err := c.uc.List(ctx.Request.Context(), user.ID, skip, limit)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	items := make([]CalculationResponse, 0, len(list))
	for i := range list {
		items = append(items, newCalculationResponse(&list[i]))
	}
	ctx.JSON(http.StatusOK, items)
}

// @Summary Получить вычисление
// @Description Возвращает одно вычисление по ID с пересчитанным результатом. Чужое вычисление — 403.
// @Tags calculations
// @Produce json
// @Success 200 {object} CalculationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/calculations/{id} [get]
func (c *Controller) read(ctx *gin.Context) {
	id, ok := c.pathID(ctx)
	if !ok {
		return
	}
	user := middlewares.CurrentUser(ctx)
	calc, err := c.uc.Get(ctx.Request.Context(), id, user.ID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newCalculationResponse(calc))
}

// @Summary Обновить вычисление
// @Description Заменяет переданные поля; слитый кандидат заново проходит полную проверку (включая деление на ноль против итогового типа).
// @Tags calculations
// @Accept json
// @Produce json
// @Param request body UpdateCalculationRequest true "Новые значения"
// @Success 200 {object} CalculationResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/calculations/{id} [put]
func (c *Controller) edit(ctx *gin.Context) {
	id, ok := c.pathID(ctx)
	if !ok {
		return
	}
	var req UpdateCalculationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("edit bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	user := middlewares.CurrentUser(ctx)
	calc, err := c.uc.Update(ctx.Request.Context(), id, user.ID, req.Patch())
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newCalculationResponse(calc))
}

// @Summary Удалить вычисление
// @Tags calculations
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/calculations/{id} [delete]
func (c *Controller) delete(ctx *gin.Context) {
	id, ok := c.pathID(ctx)
	if !ok {
		return
	}
	user := middlewares.CurrentUser(ctx)
	if err := c.uc.Delete(ctx.Request.Context(), id, user.ID); err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// pathID разбирает :id из пути; невалидный uuid — 404 (запись с таким ID существовать не может).
func (c *Controller) pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "calculation not found"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError переводит доменные ошибки в HTTP-статусы.
// Ошибки валидации — клиентские (warning), всё остальное неожиданное — 500 (error).
func (c *Controller) respondError(ctx *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.log.Warn("validation failed", "field", vErr.Field, "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Message, Field: vErr.Field})
	case errors.Is(err, domain.ErrUnknownKind):
		c.log.Warn("bad calculation kind", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: "type"})
	case errors.Is(err, domain.ErrNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "calculation not found"})
	case errors.Is(err, domain.ErrNotOwned):
		ctx.JSON(http.StatusForbidden, ErrorResponse{Error: "not authorized to access this calculation"})
	default:
		c.log.Error("calculations request failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
