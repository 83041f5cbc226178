package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcHub/internal/infrastructure/redis"
	"calcHub/tests/integration/testutil"
)

// redisContainer — контейнер Redis, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var redisContainer *testutil.RedisContainer

// setupBlacklist подключается к тестовому Redis и очищает его.
func setupBlacklist(t *testing.T) *redis.Blacklist {
	t.Helper()

	client, err := redis.New(&redis.Config{
		Host:     redisContainer.Host,
		Port:     redisContainer.Port,
		Password: "",
		DB:       0,
	})
	require.NoError(t, err, "не удалось подключиться к Redis")

	// Очищаем Redis перед каждым тестом
	err = client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "не удалось очистить Redis")

	t.Cleanup(func() {
		client.Close()
	})

	return redis.NewBlacklist(client, newTestLogger())
}

// =============================================================================
// Тесты чёрного списка токенов
// =============================================================================

func TestBlacklist_AddAndCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	bl := setupBlacklist(t)
	ctx := context.Background()

	err := bl.Add(ctx, "jti-123", time.Minute)
	require.NoError(t, err, "Add должен успешно занести jti")

	blocked, err := bl.IsBlacklisted(ctx, "jti-123")
	require.NoError(t, err)
	assert.True(t, blocked, "занесённый jti должен считаться отозванным")
}

func TestBlacklist_MissingKey(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	bl := setupBlacklist(t)

	blocked, err := bl.IsBlacklisted(context.Background(), "never-added")
	require.NoError(t, err, "отсутствие ключа — не ошибка")
	assert.False(t, blocked)
}

func TestBlacklist_TTLExpiry(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	bl := setupBlacklist(t)
	ctx := context.Background()

	// Запись с коротким TTL пропадает сама — Redis выкидывает её вместе с концом жизни токена.
	require.NoError(t, bl.Add(ctx, "short-lived", 500*time.Millisecond))

	blocked, err := bl.IsBlacklisted(ctx, "short-lived")
	require.NoError(t, err)
	assert.True(t, blocked)

	time.Sleep(700 * time.Millisecond)

	blocked, err = bl.IsBlacklisted(ctx, "short-lived")
	require.NoError(t, err)
	assert.False(t, blocked, "после истечения TTL jti больше не отозван")
}
