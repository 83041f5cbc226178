package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"calcHub/internal/domain"
)

// ICalculationRepository — контракт хранения вычислений (PostgreSQL или MongoDB).
// Хранилище обязано сохранять порядок Inputs и точность float64 без потерь.
type ICalculationRepository interface {
	Create(ctx context.Context, c *domain.Calculation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]domain.Calculation, error)
	Update(ctx context.Context, c *domain.Calculation) error
	Delete(ctx context.Context, id uuid.UUID) error
	Ping(ctx context.Context) error
}

// IUserRepository — контракт хранения пользователей.
type IUserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// GetByLogin ищет по username или email (одной строкой, как ввёл пользователь).
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	// ExistsByUsernameOrEmail сообщает, занят ли username или email кем-то кроме exclude.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string, exclude uuid.UUID) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	Ping(ctx context.Context) error
}
