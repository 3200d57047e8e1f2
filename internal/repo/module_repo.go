package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TanpaKamil/admin/internal/models"
)

type ModuleRepo struct {
	modules *mongo.Collection
	timeout time.Duration
}

func NewModuleRepo(modules *mongo.Collection, timeout time.Duration) *ModuleRepo {
	return &ModuleRepo{modules: modules, timeout: timeout}
}

func (r *ModuleRepo) List(ctx context.Context) ([]models.Module, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.modules.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	defer cursor.Close(ctx)

	var modules []models.Module
	if err := cursor.All(ctx, &modules); err != nil {
		return nil, fmt.Errorf("decode modules: %w", err)
	}
	return modules, nil
}

func (r *ModuleRepo) GetByID(ctx context.Context, id string) (*models.Module, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var module models.Module
	err = r.modules.FindOne(ctx, bson.M{"_id": oid}).Decode(&module)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get module by id: %w", err)
	}
	return &module, nil
}

// SetActive writes the active flag unconditionally, so repeated calls with
// the same value are idempotent.
func (r *ModuleRepo) SetActive(ctx context.Context, id string, active bool) (*models.Module, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var module models.Module
	err = r.modules.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"isActive": active}},
		opts,
	).Decode(&module)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("set module active: %w", err)
	}
	return &module, nil
}

// ToggleRecommended reads the current flag and writes its negation in a
// second round trip. Two concurrent toggles can both read the same value and
// collapse into one observed flip; this mirrors the upstream behavior and is
// deliberately not an atomic update.
func (r *ModuleRepo) ToggleRecommended(ctx context.Context, id string) (*models.Module, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var module models.Module
	err = r.modules.FindOneAndUpdate(ctx,
		bson.M{"_id": current.ID},
		bson.M{"$set": bson.M{"recommended": !current.Recommended}},
		opts,
	).Decode(&module)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("toggle module recommended: %w", err)
	}
	return &module, nil
}

func (r *ModuleRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.modules.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count modules: %w", err)
	}
	return count, nil
}

func (r *ModuleRepo) CountByActive(ctx context.Context, active bool) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.modules.CountDocuments(ctx, bson.M{"isActive": active})
	if err != nil {
		return 0, fmt.Errorf("count modules by active: %w", err)
	}
	return count, nil
}
