package pg

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"calcHub/internal/domain"
)

// UserRepo реализует ports.IUserRepository для PostgreSQL.
type UserRepo struct {
	db  *DB
	log *slog.Logger
}

// NewUserRepo возвращает репозиторий пользователей.
func NewUserRepo(db *DB, log *slog.Logger) *UserRepo {
	return &UserRepo{db: db, log: log}
}

const userColumns = `id, first_name, last_name, email, username, password_hash,
	is_active, is_verified, last_login, created_at, updated_at`

// Create сохраняет нового пользователя.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID, u.FirstName, u.LastName, u.Email, u.Username, u.PasswordHash,
		u.IsActive, u.IsVerified, u.LastLogin, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		r.log.Debug("Create failed", "id", u.ID, "error", err)
		return err
	}
	return nil
}

// GetByID возвращает пользователя по ID или domain.ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return r.scanUser(row)
}

// GetByLogin ищет пользователя по username или email.
func (r *UserRepo) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $1`, login)
	return r.scanUser(row)
}

// ExistsByUsernameOrEmail сообщает, занят ли username или email кем-то кроме exclude.
func (r *UserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM users WHERE (username = $1 OR email = $2) AND id <> $3
		 )`, username, email, exclude).Scan(&exists)
	if err != nil {
		r.log.Debug("ExistsByUsernameOrEmail failed", "error", err)
		return false, err
	}
	return exists, nil
}

// Update заменяет изменяемые поля пользователя.
func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET first_name = $2, last_name = $3, email = $4, username = $5,
			password_hash = $6, is_active = $7, is_verified = $8, last_login = $9, updated_at = $10
		 WHERE id = $1`,
		u.ID, u.FirstName, u.LastName, u.Email, u.Username,
		u.PasswordHash, u.IsActive, u.IsVerified, u.LastLogin, u.UpdatedAt)
	if err != nil {
		r.log.Debug("Update failed", "id", u.ID, "error", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Ping проверяет доступность БД (readiness).
func (r *UserRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// scanUser читает одну строку users.
func (r *UserRepo) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var lastLogin sql.NullTime
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Username, &u.PasswordHash,
		&u.IsActive, &u.IsVerified, &lastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.log.Debug("scan user failed", "error", err)
		return nil, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return &u, nil
}
