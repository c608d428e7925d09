package usecase

import (
	"context"
	"fmt"
	"time"

	"account-service/internal/data/repository"
	"account-service/internal/dto/request"
	"account-service/internal/dto/response"
	"account-service/pkg/token"
	"account-service/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetUser(ctx context.Context, userID string) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	EditAccount(ctx context.Context, userID string, req *request.EditAccountRequest) (*response.AuthResponse, error)
	ChangePassword(ctx context.Context, userID string, req *request.EditPasswordRequest) (*response.AuthResponse, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, tokens *token.Manager, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
	}
}

func (us *userService) GetUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user")
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	// Set defaults
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}
	if req.PerPage > 100 {
		req.PerPage = 100
	}

	offset := utils.CalculateOffset(req.Page, req.PerPage)

	users, err := us.userRepo.FindAll(ctx, req.PerPage, offset)
	if err != nil {
		us.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("failed to get users")
	}

	total, err := us.userRepo.CountAll(ctx)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to count users")
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

// EditAccount applies the allowlisted profile fields. Role, verified flag,
// password and tokens are not reachable through this path.
func (us *userService) EditAccount(ctx context.Context, userID string, req *request.EditAccountRequest) (*response.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	id, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user for edit", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user")
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	user.UpdatedAt = time.Now()

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to update account", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to update account")
	}

	authToken, err := us.tokens.Mint(snapshotOf(user))
	if err != nil {
		us.log.Error("Failed to mint session token", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to create session")
	}

	us.log.Info("Account updated", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{
		User:      response.UserToResponse(user),
		AuthToken: authToken,
	}, nil
}

func (us *userService) ChangePassword(ctx context.Context, userID string, req *request.EditPasswordRequest) (*response.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	id, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user for password change", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user")
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Old password must verify before anything is written
	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		us.log.Warn("Old password mismatch", zap.String("user_id", userID))
		return nil, ErrOldPasswordMismatch
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to save new password", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to save new password")
	}

	authToken, err := us.tokens.Mint(snapshotOf(user))
	if err != nil {
		us.log.Error("Failed to mint session token", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to create session")
	}

	us.log.Info("Password changed", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{
		User:      response.UserToResponse(user),
		AuthToken: authToken,
	}, nil
}

func (us *userService) DeleteAccount(ctx context.Context, userID string) error {
	id, err := utils.ParseUUID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user for delete", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to get user")
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := us.userRepo.Delete(ctx, id); err != nil {
		us.log.Error("Failed to delete account", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to delete account")
	}

	us.log.Info("Account deleted",
		zap.String("user_id", id.String()),
		zap.String("email", user.Email))

	return nil
}
