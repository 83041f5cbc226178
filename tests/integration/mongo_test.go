package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcHub/internal/domain"
	"calcHub/internal/infrastructure/mongo"
	"calcHub/tests/integration/testutil"
)

// mongoContainer — контейнер MongoDB, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var mongoContainer *testutil.MongoContainer

// setupMongoRepo подключается к тестовому MongoDB и очищает коллекцию.
func setupMongoRepo(t *testing.T) *mongo.CalculationRepo {
	t.Helper()

	ctx := context.Background()
	client, err := mongo.New(ctx, &mongo.Config{
		URI:        mongoContainer.URI(),
		Database:   "testdb",
		Collection: "calculations",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")

	// Очищаем коллекцию перед каждым тестом
	require.NoError(t, client.Coll().Drop(ctx))

	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	return mongo.NewCalculationRepo(client, newTestLogger())
}

// =============================================================================
// Тесты MongoDB-репозитория вычислений
// =============================================================================

func TestMongoRepo_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)
	ctx := context.Background()

	owner := uuid.New()
	calc, err := domain.New("subtraction", &owner, []float64{0.1 + 0.2, 1e-10, -42.5})
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, calc))

	got, err := repo.GetByID(ctx, calc.ID)
	require.NoError(t, err)
	assert.Equal(t, calc.ID, got.ID)
	assert.Equal(t, domain.KindSubtraction, got.Kind)
	require.NotNil(t, got.OwnerID)
	assert.Equal(t, owner, *got.OwnerID)
	// BSON double — порядок и точность float64 без потерь.
	assert.Equal(t, calc.Inputs, got.Inputs)
}

func TestMongoRepo_GetByID_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMongoRepo_ListByOwner(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()

	for _, inputs := range [][]float64{{1, 1}, {2, 2}} {
		calc, err := domain.New("addition", &owner, inputs)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, calc))
	}
	foreign, err := domain.New("addition", &other, []float64{9, 9})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, foreign))

	list, err := repo.ListByOwner(ctx, owner, 0, 100)
	require.NoError(t, err)
	assert.Len(t, list, 2, "чужая запись не попадает в список")

	// Пагинация.
	page, err := repo.ListByOwner(ctx, owner, 1, 1)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestMongoRepo_UpdateAndDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)
	ctx := context.Background()

	owner := uuid.New()
	calc, err := domain.New("addition", &owner, []float64{1, 2})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, calc))

	calc.Kind = domain.KindDivision
	calc.Inputs = []float64{8, 2}
	require.NoError(t, repo.Update(ctx, calc))

	got, err := repo.GetByID(ctx, calc.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindDivision, got.Kind)
	assert.Equal(t, []float64{8, 2}, got.Inputs)

	require.NoError(t, repo.Delete(ctx, calc.ID))
	assert.ErrorIs(t, repo.Delete(ctx, calc.ID), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, calc), domain.ErrNotFound)
}
