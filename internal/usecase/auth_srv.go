package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/internal/dto/request"
	"account-service/internal/dto/response"
	"account-service/pkg/mailer"
	"account-service/pkg/token"
	"account-service/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	ValidateSession(authHeader string) (*token.UserSnapshot, error)
	Verify(ctx context.Context, req *request.VerifyRequest) (*response.AuthResponse, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
	mail     mailer.Mailer
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens *token.Manager,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		mail:     mail,
		config:   config,
		log:      log,
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 1. Check email is not registered yet
	existingUser, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 3. Create user entity with defaults
	now := time.Now()
	id := utils.GenerateUUID()
	user := &entity.User{
		Base: entity.Base{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Avatar:       utils.GenerateAvatarURL(id.String()),
		Role:         entity.RoleUser,
		Verified:     false,
		VerifyToken:  utils.GenerateSecureToken(),
	}

	// 4. Save user. The UNIQUE constraint settles concurrent signups.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicateEmail {
			return nil, ErrEmailTaken
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 5. Mint session token over the created snapshot
	authToken, err := s.tokens.Mint(snapshotOf(user))
	if err != nil {
		s.log.Error("Failed to mint session token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	// 6. Send verification email after the insert committed. Send failures
	// are logged, not surfaced; the account already exists.
	s.sendVerificationMail(user)

	s.log.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		User:      response.UserToResponse(user),
		AuthToken: authToken,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 1. Find user by email
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, ErrUserNotFound
	}

	// 2. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrWrongPassword
	}

	// 3. Mint session token. Login never writes to the store.
	authToken, err := s.tokens.Mint(snapshotOf(user))
	if err != nil {
		s.log.Error("Failed to mint session token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		User:      response.UserToResponse(user),
		AuthToken: authToken,
	}, nil
}

// ValidateSession checks the Authorization header and returns the snapshot
// embedded in the token. Pure, no store access; the snapshot may be stale
// relative to the store.
func (s *authService) ValidateSession(authHeader string) (*token.UserSnapshot, error) {
	if authHeader == "" {
		return nil, ErrMissingAuthorization
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, ErrMalformedAuthorization
	}

	snapshot, err := s.tokens.Verify(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}

	return snapshot, nil
}

func (s *authService) Verify(ctx context.Context, req *request.VerifyRequest) (*response.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 1. Look up user; id and token must both match
	id, err := utils.ParseUUID(req.ID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user for verification", zap.Error(err), zap.String("user_id", req.ID))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.VerifyToken == "" ||
		subtle.ConstantTimeCompare([]byte(user.VerifyToken), []byte(req.Token)) != 1 {
		s.log.Warn("Verification token mismatch", zap.String("user_id", req.ID))
		return nil, ErrUserNotFound
	}

	// 2. Mark verified and consume the token in the same update
	user.Verified = true
	user.VerifyToken = ""
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user verification", zap.Error(err), zap.String("user_id", req.ID))
		return nil, fmt.Errorf("failed to verify account")
	}

	// 3. Mint a fresh session over the post-update snapshot
	authToken, err := s.tokens.Mint(snapshotOf(user))
	if err != nil {
		s.log.Error("Failed to mint session token", zap.Error(err), zap.String("user_id", req.ID))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("Account verified",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		User:      response.UserToResponse(user),
		AuthToken: authToken,
	}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	// 1. Find user
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for password reset", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return ErrUserNotFound
	}

	// 2. Store a fresh reset token, overwriting any prior one
	resetToken := utils.GenerateSecureToken()
	user.ResetToken = &resetToken
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to store reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to initiate password reset")
	}

	// 3. Send the reset link after the token is persisted. The token itself
	// is never returned to the caller.
	s.sendResetMail(user, resetToken)

	s.log.Info("Password reset initiated",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	// 1. Find user
	id, err := utils.ParseUUID(req.ID)
	if err != nil {
		return ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user for password reset", zap.Error(err), zap.String("user_id", req.ID))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return ErrUserNotFound
	}

	// 2. Compare tokens. An absent stored token never matches.
	if user.ResetToken == nil ||
		subtle.ConstantTimeCompare([]byte(*user.ResetToken), []byte(req.ResetToken)) != 1 {
		s.log.Warn("Reset token mismatch", zap.String("user_id", req.ID))
		return ErrResetTokenMismatch
	}

	// 3. Hash the new password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	// 4. Overwrite the hash and consume the token in one update
	user.PasswordHash = hashedPassword
	user.ResetToken = nil
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to save new password", zap.Error(err), zap.String("user_id", req.ID))
		return fmt.Errorf("failed to save new password")
	}

	s.log.Info("Password reset completed", zap.String("user_id", user.ID.String()))

	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) sendVerificationMail(user *entity.User) {
	link := fmt.Sprintf("%s/verify?token=%s&id=%s", s.config.Client.URI, user.VerifyToken, user.ID.String())
	subject := fmt.Sprintf("Thank you for creating your account on %s", s.config.App.Name)
	body := fmt.Sprintf(
		`<p>Hello %s,<br /><br />Thank you for creating your account on %s! <a href="%s">Click here to verify your account</a>.</p>`,
		user.FullName, s.config.App.Name, link)

	if err := s.mail.Send(user.Email, subject, body); err != nil {
		s.log.Error("Failed to send verification email", zap.Error(err), zap.String("email", user.Email))
	}
}

func (s *authService) sendResetMail(user *entity.User, resetToken string) {
	link := fmt.Sprintf("%s/reset-password?id=%s&token=%s", s.config.Client.URI, user.ID.String(), resetToken)
	subject := fmt.Sprintf("Reset your password on %s", s.config.App.Name)
	body := fmt.Sprintf(
		`<p>Hello %s,<br /><br />To reset your password, <a href="%s">click here</a>.</p>`,
		user.FullName, link)

	if err := s.mail.Send(user.Email, subject, body); err != nil {
		s.log.Error("Failed to send reset email", zap.Error(err), zap.String("email", user.Email))
	}
}
