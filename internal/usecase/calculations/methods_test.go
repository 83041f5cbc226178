package calculations

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"calcHub/internal/domain"
	"calcHub/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// Тест 1: создание — полный флоу: валидация → фабрика → БД → брокер
func TestCreate(t *testing.T) {
	// Создаём контроллер gomock — он управляет жизненным циклом моков,
	// отслеживает вызовы и проверяет, что все ожидания выполнены.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockICalculationRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)
	mockAnalytics := mocks.NewMockICalculationAnalytics(ctrl)

	ownerID := uuid.New()

	// gomock.InOrder гарантирует, что сначала сохранение, потом публикация.
	gomock.InOrder(
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)

	uc := New(mockRepo, mockBroker, mockAnalytics, newTestLogger())

	// Тег в верхнем регистре — фабрика нормализует.
	calc, err := uc.Create(context.Background(), ownerID, "ADDITION", []float64{1, 2, 3})

	require.NoError(t, err)
	assert.Equal(t, domain.KindAddition, calc.Kind)
	assert.Equal(t, []float64{1, 2, 3}, calc.Inputs)
	require.NotNil(t, calc.OwnerID)
	assert.Equal(t, ownerID, *calc.OwnerID)
}

// Тест 2: ошибка публикации в брокер НЕ валит создание
func TestCreate_BrokerFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockICalculationRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	uc := New(mockRepo, mockBroker, nil, newTestLogger())

	calc, err := uc.Create(context.Background(), uuid.New(), "multiplication", []float64{2, 3})

	// Запись создана, несмотря на недоступный брокер.
	require.NoError(t, err)
	assert.NotNil(t, calc)
}

// Тест 3: схемный рубеж отсекает кандидата до фабрики и БД
func TestCreate_ValidationRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// repo и broker НЕ вызываются — отказ раньше.
	mockRepo := mocks.NewMockICalculationRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	uc := New(mockRepo, mockBroker, nil, newTestLogger())

	// Меньше двух элементов.
	_, err := uc.Create(context.Background(), uuid.New(), "addition", []float64{1})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "inputs", vErr.Field)

	// Деление на ноль ловится на записи, а не при чтении.
	_, err = uc.Create(context.Background(), uuid.New(), "division", []float64{10, 0})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "cannot divide by zero", vErr.Message)

	// Неизвестный тег.
	_, err = uc.Create(context.Background(), uuid.New(), "modulo", []float64{10, 3})
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

// Тест 4: чтение чужой записи — ErrNotOwned, не ErrNotFound
func TestGet_Ownership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockICalculationRepository(ctrl)

	owner := uuid.New()
	stranger := uuid.New()
	stored := &domain.Calculation{ID: uuid.New(), Kind: domain.KindAddition, OwnerID: &owner, Inputs: []float64{1, 2}}

	mockRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil).Times(2)

	uc := New(mockRepo, nil, nil, newTestLogger())

	// Владелец читает свою запись.
	got, err := uc.Get(context.Background(), stored.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	// Чужой пользователь получает отказ владения.
	_, err = uc.Get(context.Background(), stored.ID, stranger)
	assert.ErrorIs(t, err, domain.ErrNotOwned)
}

// Тест 5: осиротевшая запись (owner_id стал NULL) недоступна никому
func TestGet_OrphanedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockICalculationRepository(ctrl)

	stored := &domain.Calculation{ID: uuid.New(), Kind: domain.KindAddition, OwnerID: nil, Inputs: []float64{1, 2}}
	mockRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)

	uc := New(mockRepo, nil, nil, newTestLogger())

	_, err := uc.Get(context.Background(), stored.ID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotOwned)
}

// Тест 6: обновление сливает patch с текущими значениями и заново гоняет полный рубеж
func TestUpdate_MergedCandidateRevalidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockICalculationRepository(ctrl)

	owner := uuid.New()
	stored := &domain.Calculation{ID: uuid.New(), Kind: domain.KindDivision, OwnerID: &owner, Inputs: []float64{10, 2}}

	// Patch меняет только inputs; kind остаётся division, и новый список
	// с нулевым делителем отклоняется против сохранённого kind.
	mockRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)

	uc := New(mockRepo, nil, nil, newTestLogger())

	_, err := uc.Update(context.Background(), stored.ID, owner, domain.CalculationPatch{Inputs: []float64{10, 0}})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "cannot divide by zero", vErr.Message)
}

// Тест 7: успешное обновление — patch поверх текущих значений, repo.Update вызван
func TestUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockICalculationRepository(ctrl)

	owner := uuid.New()
	stored := &domain.Calculation{ID: uuid.New(), Kind: domain.KindDivision, OwnerID: &owner, Inputs: []float64{10, 0}}

	newKind := "multiplication"
	gomock.InOrder(
		mockRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil),
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil),
	)

	uc := New(mockRepo, nil, nil, newTestLogger())

	// Смена kind на multiplication легализует нулевой вход из хранилища.
	got, err := uc.Update(context.Background(), stored.ID, owner, domain.CalculationPatch{Kind: &newKind})
	require.NoError(t, err)
	assert.Equal(t, domain.KindMultiplication, got.Kind)
	assert.Equal(t, []float64{10, 0}, got.Inputs)
}

// Тест 8: удаление — сначала проверка владения, потом Delete
func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockICalculationRepository(ctrl)

	owner := uuid.New()
	stored := &domain.Calculation{ID: uuid.New(), Kind: domain.KindAddition, OwnerID: &owner, Inputs: []float64{1, 2}}

	gomock.InOrder(
		mockRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil),
		mockRepo.EXPECT().Delete(gomock.Any(), stored.ID).Return(nil),
	)

	uc := New(mockRepo, nil, nil, newTestLogger())

	require.NoError(t, uc.Delete(context.Background(), stored.ID, owner))
}

// Тест 9: удаление несуществующей записи — ErrNotFound из репозитория, Delete не вызывается
func TestDelete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockICalculationRepository(ctrl)

	id := uuid.New()
	mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, domain.ErrNotFound)

	uc := New(mockRepo, nil, nil, newTestLogger())

	err := uc.Delete(context.Background(), id, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Тест 10: список — пагинация с дефолтным лимитом
func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockICalculationRepository(ctrl)

	owner := uuid.New()
	expected := []domain.Calculation{
		{ID: uuid.New(), Kind: domain.KindAddition, OwnerID: &owner, Inputs: []float64{1, 2}},
		{ID: uuid.New(), Kind: domain.KindDivision, OwnerID: &owner, Inputs: []float64{8, 2}},
	}

	// limit <= 0 заменяется дефолтом 100, отрицательный skip — нулём.
	mockRepo.EXPECT().ListByOwner(gomock.Any(), owner, 0, 100).Return(expected, nil)

	uc := New(mockRepo, nil, nil, newTestLogger())

	got, err := uc.List(context.Background(), owner, -5, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

// Тест 11: событие из Kafka уходит в аналитику
func TestHandleCalculationEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := mocks.NewMockICalculationAnalytics(ctrl)

	result := 6.0
	ev := domain.CalculationEvent{ID: uuid.NewString(), Kind: "addition", Inputs: []float64{1, 2, 3}, Result: &result}
	mockAnalytics.EXPECT().WriteCalculation(gomock.Any(), ev).Return(nil)

	uc := New(nil, nil, mockAnalytics, newTestLogger())

	require.NoError(t, uc.HandleCalculationEvent(context.Background(), ev))
}
