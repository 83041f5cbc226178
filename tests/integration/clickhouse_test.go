package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcHub/internal/domain"
	"calcHub/internal/infrastructure/click"
	"calcHub/tests/integration/testutil"
)

// clickContainer — контейнер ClickHouse, инициализируется в TestMain.
var clickContainer *testutil.ClickHouseContainer

// setupClickWriter подключается к тестовому ClickHouse и создаёт таблицу.
func setupClickWriter(t *testing.T) (*click.CalculationWriter, *click.Client) {
	t.Helper()

	ctx := context.Background()

	client, err := click.New(&click.Config{
		Host:     clickContainer.Host,
		Port:     clickContainer.Port,
		Database: clickContainer.Database,
		Username: clickContainer.User,
		Password: clickContainer.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")

	writer := click.NewCalculationWriter(client)

	// Создаём таблицу
	err = writer.EnsureTable(ctx)
	require.NoError(t, err, "не удалось создать таблицу")

	// Очищаем таблицу перед тестом
	_, err = client.DB().ExecContext(ctx, "TRUNCATE TABLE default.calculations_analytics")
	require.NoError(t, err, "не удалось очистить таблицу")

	t.Cleanup(func() {
		client.Close()
	})

	return writer, client
}

// =============================================================================
// Тест ClickHouse writer
// =============================================================================

func TestClickWriter_WriteCalculation(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, client := setupClickWriter(t)
	ctx := context.Background()

	result := 5.0
	ev := domain.CalculationEvent{
		ID:        uuid.NewString(),
		Kind:      "division",
		OwnerID:   uuid.NewString(),
		Inputs:    []float64{10, 2},
		Result:    &result,
		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, writer.WriteCalculation(ctx, ev), "WriteCalculation должен успешно записать")

	// Проверяем запись напрямую.
	var count uint64
	err := client.DB().QueryRowContext(ctx,
		"SELECT count() FROM default.calculations_analytics WHERE id = ?", ev.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count, "в таблице должна быть 1 запись")
}

// Событие без результата (невычислимая запись) тоже пишется: result — Nullable.
func TestClickWriter_WriteCalculation_NullResult(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, client := setupClickWriter(t)
	ctx := context.Background()

	ev := domain.CalculationEvent{
		ID:        uuid.NewString(),
		Kind:      "division",
		Inputs:    []float64{10, 0},
		Result:    nil,
		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, writer.WriteCalculation(ctx, ev))

	var count uint64
	err := client.DB().QueryRowContext(ctx,
		"SELECT count() FROM default.calculations_analytics WHERE id = ? AND result IS NULL", ev.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}
