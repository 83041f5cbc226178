package calculations

import (
	"log/slog"

	"calcHub/internal/ports"
)

// UseCase — бизнес-логика вычислений: BREAD над репозиторием,
// публикация событий в брокер и обработка событий для аналитики.
type UseCase struct {
	repo      ports.ICalculationRepository
	broker    ports.IProducer
	analytics ports.ICalculationAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс вычислений.
func New(repo ports.ICalculationRepository, broker ports.IProducer, analytics ports.ICalculationAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{repo: repo, broker: broker, analytics: analytics, log: log}
}
