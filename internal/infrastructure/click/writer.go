package click

import (
	"context"
	"fmt"

	"calcHub/internal/domain"
)

const calculationsAnalyticsFull = "default.calculations_analytics"

// CalculationWriter записывает события о вычислениях в ClickHouse в формате,
// удобном для аналитики (GROUP BY kind, по времени и т.д.).
type CalculationWriter struct {
	db *Client
}

// NewCalculationWriter создаёт писатель событий для аналитики.
func NewCalculationWriter(db *Client) *CalculationWriter {
	return &CalculationWriter{db: db}
}

// EnsureTable создаёт таблицу аналитики в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *CalculationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id String,
			kind String,
			owner_id String,
			inputs Array(Float64),
			result Nullable(Float64),
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, kind)
		PARTITION BY toYYYYMM(created_at)`,
		calculationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteCalculation реализует ports.ICalculationAnalytics: пишет одно событие в ClickHouse.
func (w *CalculationWriter) WriteCalculation(ctx context.Context, ev domain.CalculationEvent) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, kind, owner_id, inputs, result, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		calculationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.ID, ev.Kind, ev.OwnerID, ev.Inputs, ev.Result, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert calculation event: %w", err)
	}
	return nil
}
