package calculations

import (
	"time"

	"calcHub/internal/domain"
)

// CreateCalculationRequest — запрос на создание вычисления (POST /api/v1/calculations).
type CreateCalculationRequest struct {
	Type   string    `json:"type" binding:"required"`
	Inputs []float64 `json:"inputs" binding:"required"`
}

// Validate — схемный рубеж проверки кандидата: тег, длина списка, нулевой делитель.
func (r *CreateCalculationRequest) Validate() error {
	kind, err := domain.ParseKind(r.Type)
	if err != nil {
		return err
	}
	return domain.ValidateCandidate(kind, r.Inputs)
}

// UpdateCalculationRequest — частичное обновление (PUT/PATCH). nil-поле не меняется;
// слитый кандидат проверяется целиком в use case.
type UpdateCalculationRequest struct {
	Type   *string   `json:"type"`
	Inputs []float64 `json:"inputs"`
}

// Patch переводит запрос в доменный патч.
func (r *UpdateCalculationRequest) Patch() domain.CalculationPatch {
	return domain.CalculationPatch{Kind: r.Type, Inputs: r.Inputs}
}

// CalculationResponse — одно вычисление в ответе. Result отсутствует (null),
// когда вычисление не определено: испорченная запись не валит чтение.
type CalculationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Inputs    []float64 `json:"inputs"`
	UserID    *string   `json:"user_id,omitempty"`
	Result    *float64  `json:"result"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// newCalculationResponse собирает ответ из доменной записи, вычисляя результат на месте.
// Ошибка вычисления (деление на ноль в обход схемного рубежа) — result: null, не 500.
func newCalculationResponse(c *domain.Calculation) CalculationResponse {
	resp := CalculationResponse{
		ID:        c.ID.String(),
		Type:      string(c.Kind),
		Inputs:    c.Inputs,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.OwnerID != nil {
		owner := c.OwnerID.String()
		resp.UserID = &owner
	}
	if result, err := c.Evaluate(); err == nil {
		resp.Result = &result
	}
	return resp
}

// ErrorResponse — тело ответа с ошибкой. Field заполняется для ошибок валидации.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
