package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"calcHub/internal/domain"
)

// ICalculationAnalytics — запись событий о вычислениях в хранилище для аналитики (например, ClickHouse).
type ICalculationAnalytics interface {
	WriteCalculation(ctx context.Context, ev domain.CalculationEvent) error
}
