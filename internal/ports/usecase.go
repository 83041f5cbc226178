package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"calcHub/internal/domain"
)

// ICalculationsUseCase — контракт бизнес-логики вычислений (BREAD + обработка событий из Kafka).
type ICalculationsUseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, kind string, inputs []float64) (*domain.Calculation, error)
	List(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]domain.Calculation, error)
	Get(ctx context.Context, id, ownerID uuid.UUID) (*domain.Calculation, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, patch domain.CalculationPatch) (*domain.Calculation, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	HandleCalculationEvent(ctx context.Context, ev domain.CalculationEvent) error
}

// IAuthUseCase — контракт бизнес-логики аутентификации и профиля.
type IAuthUseCase interface {
	Register(ctx context.Context, params domain.RegisterParams) (*domain.User, error)
	Login(ctx context.Context, login, password string) (*domain.TokenPair, *domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	// Logout заносит jti access-токена в чёрный список до конца его жизни.
	Logout(ctx context.Context, accessToken string) error
	// Authenticate проверяет access-токен (подпись, тип, чёрный список) и возвращает активного пользователя.
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (*domain.User, error)
}
