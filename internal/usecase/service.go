package usecase

import (
	"fmt"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/pkg/mailer"
	"account-service/pkg/token"
	"account-service/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	User  UserService
	Admin AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, tokens *token.Manager, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo.User, tokens, mail, config, log),
		User:  NewUserService(repo.User, tokens, log),
		Admin: NewAdminService(repo.User, mail, config, log),
	}
}

// validateRequest folds struct validation failures into ErrValidation so
// handlers can map them with errors.Is.
func validateRequest(req interface{}) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	return nil
}

// snapshotOf projects a user record into the public snapshot embedded in
// session tokens. The password hash and both tokens stay out.
func snapshotOf(user *entity.User) token.UserSnapshot {
	return token.UserSnapshot{
		ID:        user.ID.String(),
		FullName:  user.FullName,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Role:      string(user.Role),
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
	}
}
