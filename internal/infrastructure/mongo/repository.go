package mongo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"calcHub/internal/domain"
)

// calculationDoc — документ в коллекции calculations. UUID хранятся строками,
// inputs — массивом double: порядок и точность float64 BSON сохраняет без потерь.
type calculationDoc struct {
	ID        string    `bson:"_id"`
	Kind      string    `bson:"kind"`
	OwnerID   string    `bson:"owner_id,omitempty"`
	Inputs    []float64 `bson:"inputs"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// CalculationRepo реализует ports.ICalculationRepository для MongoDB
// (альтернативное хранилище вычислений, выбирается конфигом CALCHUB_STORAGE=mongo).
type CalculationRepo struct {
	client *Client
	log    *slog.Logger
}

// NewCalculationRepo возвращает репозиторий вычислений.
func NewCalculationRepo(client *Client, log *slog.Logger) *CalculationRepo {
	return &CalculationRepo{client: client, log: log}
}

// toDoc переводит доменную запись в документ.
func toDoc(c *domain.Calculation) calculationDoc {
	doc := calculationDoc{
		ID:        c.ID.String(),
		Kind:      string(c.Kind),
		Inputs:    c.Inputs,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.OwnerID != nil {
		doc.OwnerID = c.OwnerID.String()
	}
	return doc
}

// fromDoc переводит документ обратно в доменную запись.
func fromDoc(doc calculationDoc) (*domain.Calculation, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}
	c := &domain.Calculation{
		ID:        id,
		Kind:      domain.Kind(doc.Kind),
		Inputs:    doc.Inputs,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
	if doc.OwnerID != "" {
		owner, err := uuid.Parse(doc.OwnerID)
		if err != nil {
			return nil, err
		}
		c.OwnerID = &owner
	}
	return c, nil
}

// Create сохраняет новую запись в коллекцию.
func (r *CalculationRepo) Create(ctx context.Context, c *domain.Calculation) error {
	if _, err := r.client.Coll().InsertOne(ctx, toDoc(c)); err != nil {
		r.log.Debug("Create failed", "id", c.ID, "error", err)
		return err
	}
	return nil
}

// GetByID возвращает запись по ID или domain.ErrNotFound.
func (r *CalculationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	var doc calculationDoc
	err := r.client.Coll().FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		r.log.Debug("GetByID failed", "id", id, "error", err)
		return nil, err
	}
	return fromDoc(doc)
}

// ListByOwner возвращает вычисления пользователя (новые сначала) со сдвигом и лимитом.
func (r *CalculationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]domain.Calculation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	cursor, err := r.client.Coll().Find(ctx, bson.M{"owner_id": ownerID.String()}, opts)
	if err != nil {
		r.log.Debug("ListByOwner failed", "owner", ownerID, "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []calculationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Calculation, 0, len(docs))
	for _, doc := range docs {
		c, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	return list, nil
}

// Update заменяет kind, inputs и updated_at записи.
func (r *CalculationRepo) Update(ctx context.Context, c *domain.Calculation) error {
	res, err := r.client.Coll().UpdateOne(ctx,
		bson.M{"_id": c.ID.String()},
		bson.M{"$set": bson.M{
			"kind":       string(c.Kind),
			"inputs":     c.Inputs,
			"updated_at": c.UpdatedAt,
		}})
	if err != nil {
		r.log.Debug("Update failed", "id", c.ID, "error", err)
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete удаляет запись по ID.
func (r *CalculationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.client.Coll().DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		r.log.Debug("Delete failed", "id", id, "error", err)
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Ping проверяет доступность БД.
func (r *CalculationRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
