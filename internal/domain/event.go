package domain

import "time"

// CalculationEvent — событие о созданном вычислении для брокера и аналитики.
// Result указательный: nil, когда вычисление не определено (испорченная запись).
type CalculationEvent struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	OwnerID   string    `json:"owner_id,omitempty"`
	Inputs    []float64 `json:"inputs"`
	Result    *float64  `json:"result,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCalculationEvent собирает событие из записи, вычисляя результат на месте.
func NewCalculationEvent(c *Calculation) CalculationEvent {
	ev := CalculationEvent{
		ID:        c.ID.String(),
		Kind:      string(c.Kind),
		Inputs:    c.Inputs,
		CreatedAt: c.CreatedAt,
	}
	if c.OwnerID != nil {
		ev.OwnerID = c.OwnerID.String()
	}
	if result, err := c.Evaluate(); err == nil {
		ev.Result = &result
	}
	return ev
}
