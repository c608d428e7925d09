// Seeds the users table with two fixed accounts (one admin, one regular,
// both verified, password "Password42") plus a batch of fake users.
// Intended for development and testing databases only.
package main

import (
	"context"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/pkg/database"
	"account-service/pkg/utils"

	"go.uber.org/zap"
)

const numFakeUsers = 98

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	if err := database.RunMigrations(ctx, config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, logger)

	// All seeded accounts share one password
	hashedPassword, err := utils.HashPassword("Password42")
	if err != nil {
		logger.Fatal("Failed to hash seed password", zap.Error(err))
	}

	users := []*entity.User{
		seedUser("Julien Admin", "julien@admin.com", hashedPassword, entity.RoleAdmin),
		seedUser("Julien User", "julien@user.com", hashedPassword, entity.RoleUser),
	}

	for i := 0; i < numFakeUsers; i++ {
		users = append(users, seedUser(
			gofakeit.Name(),
			gofakeit.Email(),
			hashedPassword,
			entity.RoleUser,
		))
	}

	seeded := 0
	for _, user := range users {
		if err := userRepo.Create(ctx, user); err != nil {
			// Duplicate fake emails are skipped, anything else aborts
			if err == repository.ErrDuplicateEmail {
				logger.Warn("Skipping duplicate email", zap.String("email", user.Email))
				continue
			}
			logger.Fatal("Failed to seed user", zap.Error(err), zap.String("email", user.Email))
		}
		seeded++
	}

	logger.Info("Seeding complete", zap.Int("users", seeded))
}

func seedUser(fullName, email, passwordHash string, role entity.UserRole) *entity.User {
	now := time.Now()
	id := utils.GenerateUUID()

	return &entity.User{
		Base: entity.Base{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		Avatar:       utils.GenerateAvatarURL(id.String()),
		Role:         role,
		Verified:     true,
		VerifyToken:  utils.GenerateSecureToken(),
	}
}
