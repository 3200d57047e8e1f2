package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/TanpaKamil/admin/internal/models"
)

type SeedUser struct {
	Email    string
	Username string
	Password string
	Role     string
	Status   models.UserStatus
}

// EnsureSeedData inserts the demo admin account, two regular users and a
// handful of modules. Safe to run on every start: existing records are left
// alone, and modules are only seeded into an empty collection.
func EnsureSeedData(ctx context.Context, database *DB, timeout time.Duration) error {
	if err := ensureSeedUsers(ctx, database, timeout); err != nil {
		return err
	}
	return ensureSeedModules(ctx, database, timeout)
}

func ensureSeedUsers(ctx context.Context, database *DB, timeout time.Duration) error {
	seeds := []SeedUser{
		{Email: "admin@example.com", Username: "admin", Password: "admin123", Role: models.RoleAdmin, Status: models.UserStatusActive},
		{Email: "user1@example.com", Username: "user1", Password: "1111", Role: models.RoleUser, Status: models.UserStatusActive},
		{Email: "user2@example.com", Username: "user2", Password: "2222", Role: models.RoleUser, Status: models.UserStatusInactive},
	}

	users := database.Users()
	for _, seed := range seeds {
		ctxCheck, cancel := context.WithTimeout(ctx, timeout)
		count, err := users.CountDocuments(ctxCheck, bson.M{"email": seed.Email})
		cancel()
		if err != nil {
			return fmt.Errorf("check seed user %s: %w", seed.Email, err)
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}

		user := models.User{
			Email:        seed.Email,
			Username:     seed.Username,
			PasswordHash: string(hash),
			Role:         seed.Role,
			Status:       seed.Status,
		}

		ctxInsert, cancel := context.WithTimeout(ctx, timeout)
		_, err = users.InsertOne(ctxInsert, user)
		cancel()
		if err != nil {
			return fmt.Errorf("insert seed user %s: %w", seed.Email, err)
		}
	}

	return nil
}

func ensureSeedModules(ctx context.Context, database *DB, timeout time.Duration) error {
	modules := database.Modules()

	ctxCheck, cancel := context.WithTimeout(ctx, timeout)
	count, err := modules.CountDocuments(ctxCheck, bson.M{})
	cancel()
	if err != nil {
		return fmt.Errorf("check seed modules: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	seeds := []interface{}{
		models.Module{
			Title:       "Introduction to Algebra",
			IsActive:    true,
			Recommended: true,
			Documents: []models.ModuleDocument{
				{
					FileName: "algebra-basics.pdf",
					FileSize: 482133,
					Status:   models.DocumentStatusCompleted,
					Result: models.DocumentResult{
						Summaries:   []string{"Variables, expressions and linear equations."},
						KeyConcepts: []string{"variable", "equation", "slope"},
						Exercises:   []string{"Solve 2x + 3 = 11."},
					},
					CreatedAt: now,
					UpdatedAt: now,
				},
			},
		},
		models.Module{
			Title:    "World History Survey",
			IsActive: true,
			Documents: []models.ModuleDocument{
				{
					FileName:  "antiquity-notes.pdf",
					FileSize:  1048576,
					Status:    models.DocumentStatusProcessing,
					CreatedAt: now,
					UpdatedAt: now,
				},
			},
		},
		models.Module{
			Title: "Organic Chemistry Lab",
		},
	}

	ctxInsert, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if _, err := modules.InsertMany(ctxInsert, seeds); err != nil {
		return fmt.Errorf("insert seed modules: %w", err)
	}
	return nil
}
