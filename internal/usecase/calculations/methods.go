package calculations

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"calcHub/internal/domain"
)

// Create — проверяет кандидата (схемный рубеж), конструирует запись через фабрику,
// сохраняет и публикует событие в брокер. Ошибка публикации запрос не валит.
func (u *UseCase) Create(ctx context.Context, ownerID uuid.UUID, kind string, inputs []float64) (*domain.Calculation, error) {
	k, err := domain.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateCandidate(k, inputs); err != nil {
		return nil, err
	}

	calc, err := domain.New(kind, &ownerID, inputs)
	if err != nil {
		return nil, err
	}

	if err := u.repo.Create(ctx, calc); err != nil {
		return nil, err
	}
	u.log.Info("calculation created", "id", calc.ID, "kind", calc.Kind, "owner", ownerID)

	u.publish(ctx, calc)
	return calc, nil
}

// publish сериализует событие и отправляет в брокер. Неудача — warning, не ошибка запроса.
func (u *UseCase) publish(ctx context.Context, calc *domain.Calculation) {
	ev := domain.NewCalculationEvent(calc)
	value, err := json.Marshal(ev)
	if err != nil {
		u.log.Warn("event marshal", "id", calc.ID, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(ev.ID), value); err != nil {
		u.log.Warn("broker send", "id", calc.ID, "error", err)
		return
	}
	u.log.Info("calculation published", "id", calc.ID, "kind", calc.Kind)
}

// List возвращает вычисления пользователя с пагинацией (обвязка над репозиторием).
func (u *UseCase) List(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]domain.Calculation, error) {
	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	return u.repo.ListByOwner(ctx, ownerID, skip, limit)
}

// Get возвращает вычисление по ID с проверкой владения: чужая запись — ErrNotOwned, не 404.
func (u *UseCase) Get(ctx context.Context, id, ownerID uuid.UUID) (*domain.Calculation, error) {
	calc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if calc.OwnerID == nil || *calc.OwnerID != ownerID {
		return nil, domain.ErrNotOwned
	}
	return calc, nil
}

// Update заменяет содержимое записи. Слитый кандидат (текущие значения + patch)
// заново проходит полный схемный рубеж — частичное обновление не обходит проверку
// деления на ноль против уже сохранённого kind.
func (u *UseCase) Update(ctx context.Context, id, ownerID uuid.UUID, patch domain.CalculationPatch) (*domain.Calculation, error) {
	calc, err := u.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	kind := calc.Kind
	if patch.Kind != nil {
		kind, err = domain.ParseKind(*patch.Kind)
		if err != nil {
			return nil, err
		}
	}
	inputs := calc.Inputs
	if patch.Inputs != nil {
		inputs = patch.Inputs
	}

	if err := domain.ValidateCandidate(kind, inputs); err != nil {
		return nil, err
	}

	calc.Kind = kind
	calc.Inputs = inputs
	calc.UpdatedAt = time.Now().UTC()

	if err := u.repo.Update(ctx, calc); err != nil {
		return nil, err
	}
	u.log.Info("calculation updated", "id", calc.ID, "kind", calc.Kind)
	return calc, nil
}

// Delete удаляет вычисление по ID (после проверки владения). Без soft-delete.
func (u *UseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if _, err := u.Get(ctx, id, ownerID); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.log.Info("calculation deleted", "id", id)
	return nil
}

// HandleCalculationEvent вызывается консьюмером при получении сообщения из топика (часть ICalculationsUseCase).
func (u *UseCase) HandleCalculationEvent(ctx context.Context, ev domain.CalculationEvent) error {
	if err := u.analytics.WriteCalculation(ctx, ev); err != nil {
		u.log.Warn("analytics write", "id", ev.ID, "error", err)
		return err
	}
	u.log.Info("calculation stored to click", "id", ev.ID, "kind", ev.Kind)
	return nil
}
