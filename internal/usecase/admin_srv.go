package usecase

import (
	"context"
	"fmt"
	"time"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/pkg/mailer"
	"account-service/pkg/utils"

	"go.uber.org/zap"
)

// AdminService holds the admin-privileged variants. Authorization is
// enforced in front of these by the session and admin-role middleware.
type AdminService interface {
	ResetPassword(ctx context.Context, userID string) (string, error)
	DeleteUser(ctx context.Context, userID string) (string, error)
}

type adminService struct {
	userRepo repository.UserRepository
	mail     mailer.Mailer
	config   *utils.Config
	log      *zap.Logger
}

func NewAdminService(userRepo repository.UserRepository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) AdminService {
	return &adminService{
		userRepo: userRepo,
		mail:     mail,
		config:   config,
		log:      log,
	}
}

// ResetPassword force-issues a reset token for any account, mirroring the
// forgot-password flow without requiring the caller to know the email.
// Returns the account holder's name for the acknowledgment message.
func (as *adminService) ResetPassword(ctx context.Context, userID string) (string, error) {
	id, err := utils.ParseUUID(userID)
	if err != nil {
		return "", ErrUserNotFound
	}

	user, err := as.userRepo.FindByID(ctx, id)
	if err != nil {
		as.log.Error("Failed to find user for admin reset", zap.Error(err), zap.String("user_id", userID))
		return "", fmt.Errorf("failed to get user")
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	resetToken := utils.GenerateSecureToken()
	user.ResetToken = &resetToken
	user.UpdatedAt = time.Now()

	if err := as.userRepo.Update(ctx, user); err != nil {
		as.log.Error("Failed to store reset token", zap.Error(err), zap.String("user_id", userID))
		return "", fmt.Errorf("failed to initiate password reset")
	}

	// Mail goes out only after the token is persisted
	as.sendResetMail(user, resetToken)

	as.log.Info("Admin-initiated password reset",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return user.FullName, nil
}

// DeleteUser removes the account, then sends the deletion notice. The
// committed delete survives a notification failure.
func (as *adminService) DeleteUser(ctx context.Context, userID string) (string, error) {
	id, err := utils.ParseUUID(userID)
	if err != nil {
		return "", ErrUserNotFound
	}

	user, err := as.userRepo.FindByID(ctx, id)
	if err != nil {
		as.log.Error("Failed to find user for admin delete", zap.Error(err), zap.String("user_id", userID))
		return "", fmt.Errorf("failed to get user")
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if err := as.userRepo.Delete(ctx, id); err != nil {
		as.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return "", fmt.Errorf("failed to delete user")
	}

	as.sendDeletionMail(user)

	as.log.Info("User deleted by admin",
		zap.String("user_id", id.String()),
		zap.String("email", user.Email))

	return user.FullName, nil
}

// ==================== HELPER METHODS ====================

func (as *adminService) sendResetMail(user *entity.User, resetToken string) {
	link := fmt.Sprintf("%s/reset-password?id=%s&token=%s", as.config.Client.URI, user.ID.String(), resetToken)
	subject := fmt.Sprintf("Reset your password on %s", as.config.App.Name)
	body := fmt.Sprintf(
		`<p>Hello %s,<br /><br />To reset your password, <a href="%s">click here</a>.</p>`,
		user.FullName, link)

	if err := as.mail.Send(user.Email, subject, body); err != nil {
		as.log.Error("Failed to send reset email", zap.Error(err), zap.String("email", user.Email))
	}
}

func (as *adminService) sendDeletionMail(user *entity.User) {
	subject := fmt.Sprintf("Your account on %s has been deleted", as.config.App.Name)
	body := fmt.Sprintf(
		`<p>Your account on %s has been deleted. If you think this is an error, please <a href="mailto:%s">contact us</a>.</p>`,
		as.config.App.Name, as.config.Email.From)

	if err := as.mail.Send(user.Email, subject, body); err != nil {
		as.log.Error("Failed to send deletion email", zap.Error(err), zap.String("email", user.Email))
	}
}
