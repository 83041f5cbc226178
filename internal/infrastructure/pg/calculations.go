package pg

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"calcHub/internal/domain"
)

// CalculationRepo реализует ports.ICalculationRepository для PostgreSQL.
// Inputs хранятся массивом DOUBLE PRECISION: порядок и точность float64 сохраняются как есть.
type CalculationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewCalculationRepo возвращает репозиторий вычислений.
func NewCalculationRepo(db *DB, log *slog.Logger) *CalculationRepo {
	return &CalculationRepo{db: db, log: log}
}

// Create сохраняет новую запись.
func (r *CalculationRepo) Create(ctx context.Context, c *domain.Calculation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculations (id, kind, owner_id, inputs, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, string(c.Kind), ownerValue(c.OwnerID), pq.Array(c.Inputs), c.CreatedAt, c.UpdatedAt)
	if err != nil {
		r.log.Debug("Create failed", "id", c.ID, "error", err)
		return err
	}
	return nil
}

// GetByID возвращает запись по ID или domain.ErrNotFound.
func (r *CalculationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, kind, owner_id, inputs, created_at, updated_at
		 FROM calculations WHERE id = $1`, id)
	c, err := scanCalculation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.log.Debug("GetByID failed", "id", id, "error", err)
		return nil, err
	}
	return c, nil
}

// ListByOwner возвращает вычисления пользователя (новые сначала) со сдвигом и лимитом.
func (r *CalculationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]domain.Calculation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, owner_id, inputs, created_at, updated_at
		 FROM calculations WHERE owner_id = $1
		 ORDER BY created_at DESC OFFSET $2 LIMIT $3`,
		ownerID, skip, limit)
	if err != nil {
		r.log.Debug("ListByOwner failed", "owner", ownerID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var list []domain.Calculation
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}

// Update заменяет kind, inputs и updated_at записи.
func (r *CalculationRepo) Update(ctx context.Context, c *domain.Calculation) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE calculations SET kind = $2, inputs = $3, updated_at = $4 WHERE id = $1`,
		c.ID, string(c.Kind), pq.Array(c.Inputs), c.UpdatedAt)
	if err != nil {
		r.log.Debug("Update failed", "id", c.ID, "error", err)
		return err
	}
	return requireRow(res)
}

// Delete удаляет запись по ID.
func (r *CalculationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calculations WHERE id = $1`, id)
	if err != nil {
		r.log.Debug("Delete failed", "id", id, "error", err)
		return err
	}
	return requireRow(res)
}

// Ping проверяет доступность БД (readiness).
func (r *CalculationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// scanner — общее для sql.Row и sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanCalculation читает одну строку calculations.
func scanCalculation(s scanner) (*domain.Calculation, error) {
	var c domain.Calculation
	var kind string
	var owner uuid.NullUUID
	var inputs []float64
	if err := s.Scan(&c.ID, &kind, &owner, pq.Array(&inputs), &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Kind = domain.Kind(kind)
	c.Inputs = inputs
	if owner.Valid {
		id := owner.UUID
		c.OwnerID = &id
	}
	return &c, nil
}

// ownerValue переводит опциональный владелец в nullable-значение для запроса.
func ownerValue(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return *id
}

// requireRow переводит «ничего не изменилось» в domain.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
