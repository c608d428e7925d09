package usecase

import (
	"context"
	"testing"
	"time"

	"account-service/internal/dto/request"
	"account-service/pkg/token"
	"account-service/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		App:    utils.AppConfig{Name: "account-service"},
		Client: utils.ClientConfig{URI: "http://localhost:5173"},
		Email:  utils.EmailConfig{From: "noreply@example.com"},
	}
}

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *fakeMailer, *token.Manager) {
	t.Helper()

	repo := newFakeUserRepo()
	mail := &fakeMailer{}
	tokens := token.NewManager("test-secret", time.Hour)
	svc := NewAuthService(repo, tokens, mail, testConfig(), zap.NewNop())

	return svc, repo, mail, tokens
}

func signup(t *testing.T, svc AuthService, fullName, email, password string) string {
	t.Helper()

	resp, err := svc.Signup(context.Background(), &request.SignupRequest{
		FullName: fullName,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return resp.User.ID
}

func TestSignup_Defaults(t *testing.T) {
	svc, repo, _, tokens := newAuthFixture(t)

	resp, err := svc.Signup(context.Background(), &request.SignupRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@x.com",
		Password: "Secret123",
	})
	require.NoError(t, err)

	require.Equal(t, "Ada Lovelace", resp.User.FullName)
	require.Equal(t, "ada@x.com", resp.User.Email)
	require.Equal(t, "user", string(resp.User.Role))
	require.False(t, resp.User.Verified)
	require.NotEmpty(t, resp.User.Avatar)
	require.NotEmpty(t, resp.AuthToken)

	// Token embeds the created snapshot
	snapshot, err := tokens.Verify(resp.AuthToken)
	require.NoError(t, err)
	require.Equal(t, "ada@x.com", snapshot.Email)
	require.False(t, snapshot.Verified)

	// Stored record has hashed password and a verify token
	id, err := utils.ParseUUID(resp.User.ID)
	require.NoError(t, err)
	stored := repo.raw(id)
	require.NotNil(t, stored)
	require.NotEqual(t, "Secret123", stored.PasswordHash)
	require.True(t, utils.CheckPasswordHash("Secret123", stored.PasswordHash))
	require.NotEmpty(t, stored.VerifyToken)
	require.Nil(t, stored.ResetToken)
}

func TestSignup_SendsVerificationLink(t *testing.T) {
	svc, repo, mail, _ := newAuthFixture(t)

	userID := signup(t, svc, "Ada Lovelace", "ada@x.com", "Secret123")
	id, err := utils.ParseUUID(userID)
	require.NoError(t, err)

	// The verification mail is sent before Signup returns and carries the
	// stored token and user id
	messages := mail.messages()
	require.Len(t, messages, 1)
	require.Equal(t, "ada@x.com", messages[0].To)
	require.Contains(t, messages[0].Body, repo.raw(id).VerifyToken)
	require.Contains(t, messages[0].Body, userID)
}

func TestSignup_Validation(t *testing.T) {
	svc, _, mail, _ := newAuthFixture(t)

	_, err := svc.Signup(context.Background(), &request.SignupRequest{
		FullName: "Ada Lovelace",
		Email:    "not-an-email",
		Password: "Secret123",
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Signup(context.Background(), &request.SignupRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@x.com",
		Password: "short",
	})
	require.ErrorIs(t, err, ErrValidation)
	require.Empty(t, mail.messages())
}

func TestSignup_EmailTaken(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	signup(t, svc, "Ada Lovelace", "ada@x.com", "Secret123")

	_, err := svc.Signup(context.Background(), &request.SignupRequest{
		FullName: "Someone Else",
		Email:    "ada@x.com",
		Password: "Different1",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_AfterSignup(t *testing.T) {
	svc, _, _, tokens := newAuthFixture(t)

	signup(t, svc, "Ada Lovelace", "ada@x.com", "Secret123")

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ada@x.com",
		Password: "Secret123",
	})
	require.NoError(t, err)

	snapshot, err := tokens.Verify(resp.AuthToken)
	require.NoError(t, err)
	require.Equal(t, "ada@x.com", snapshot.Email)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@x.com",
		Password: "whatever1",
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	signup(t, svc, "Ada Lovelace", "ada@x.com", "Secret123")

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ada@x.com",
		Password: "NotTheOne1",
	})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestValidateSession(t *testing.T) {
	svc, _, _, tokens := newAuthFixture(t)

	_, err := svc.ValidateSession("")
	require.ErrorIs(t, err, ErrMissingAuthorization)

	_, err = svc.ValidateSession("just-a-token")
	require.ErrorIs(t, err, ErrMalformedAuthorization)

	_, err = svc.ValidateSession("Basic dXNlcjpwYXNz")
	require.ErrorIs(t, err, ErrMalformedAuthorization)

	_, err = svc.ValidateSession("Bearer not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)

	minted, err := tokens.Mint(token.UserSnapshot{ID: "u1", Email: "ada@x.com", Role: "user"})
	require.NoError(t, err)

	snapshot, err := svc.ValidateSession("Bearer " + minted)
	require.NoError(t, err)
	require.Equal(t, "ada@x.com", snapshot.Email)
}

func TestVerify_Flow(t *testing.T) {
	svc, repo, _, tokens := newAuthFixture(t)
	ctx := context.Background()

	userID := signup(t, svc, "Ada Lovelace", "ada@x.com", "Secret123")
	id, err := utils.ParseUUID(userID)
	require.NoError(t, err)
	verifyToken := repo.raw(id).VerifyToken

	// Wrong token: indistinguishable from an unknown user
	_, err = svc.Verify(ctx, &request.VerifyRequest{ID: userID, Token: "wrong-token"})
	require.ErrorIs(t, err, ErrUserNotFound)
	require.False(t, repo.raw(id).Verified)

	// Correct token: verified flips, token is consumed
	resp, err := svc.Verify(ctx, &request.VerifyRequest{ID: userID, Token: verifyToken})
	require.NoError(t, err)
	require.True(t, resp.User.Verified)

	stored := repo.raw(id)
	require.True(t, stored.Verified)
	require.Empty(t, stored.VerifyToken)

	// Fresh session reflects the post-update snapshot
	snapshot, err := tokens.Verify(resp.AuthToken)
	require.NoError(t, err)
	require.True(t, snapshot.Verified)

	// Replay with the consumed token fails
	_, err = svc.Verify(ctx, &request.VerifyRequest{ID: userID, Token: verifyToken})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestVerify_UnknownUser(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Verify(context.Background(), &request.VerifyRequest{
		ID:    "2b6a6c7e-6a66-4dfc-9d1a-6e3c3a3b1f00",
		Token: "anything",
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestForgotPassword_SendsResetLink(t *testing.T) {
	svc, repo, mail, _ := newAuthFixture(t)
	ctx := context.Background()

	userID := signup(t, svc, "Ada Lovelace", "ada@x.com", "Secret123")
	id, err := utils.ParseUUID(userID)
	require.NoError(t, err)

	err = svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "ada@x.com"})
	require.NoError(t, err)

	stored := repo.raw(id)
	require.NotNil(t, stored.ResetToken)

	messages := mail.messages()
	require.NotEmpty(t, messages)
	last := messages[len(messages)-1]
	require.Equal(t, "ada@x.com", last.To)
	require.Contains(t, last.Body, *stored.ResetToken)
	require.Contains(t, last.Body, userID)
}

func TestForgotPassword_UserNotFound(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	err := svc.ForgotPassword(context.Background(), &request.ForgotPasswordRequest{Email: "nobody@x.com"})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestResetPassword_WithoutRequest(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	userID := signup(t, svc, "Ada Lovelace", "ada@x.com", "Secret123")

	// No ForgotPassword was ever called; an absent token never matches
	err := svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		ID:         userID,
		Password:   "NewPass1",
		ResetToken: "some-guess",
	})
	require.ErrorIs(t, err, ErrResetTokenMismatch)
}

func TestResetPassword_Flow(t *testing.T) {
	svc, repo, _, _ := newAuthFixture(t)
	ctx := context.Background()

	userID := signup(t, svc, "Ada Lovelace", "ada@x.com", "Secret123")
	id, err := utils.ParseUUID(userID)
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "ada@x.com"}))
	resetToken := *repo.raw(id).ResetToken

	// Mismatched token leaves everything untouched
	err = svc.ResetPassword(ctx, &request.ResetPasswordRequest{
		ID:         userID,
		Password:   "NewPass1",
		ResetToken: "wrong",
	})
	require.ErrorIs(t, err, ErrResetTokenMismatch)
	require.True(t, utils.CheckPasswordHash("Secret123", repo.raw(id).PasswordHash))

	// Matching token overwrites the hash and consumes the token
	err = svc.ResetPassword(ctx, &request.ResetPasswordRequest{
		ID:         userID,
		Password:   "NewPass1",
		ResetToken: resetToken,
	})
	require.NoError(t, err)

	stored := repo.raw(id)
	require.Nil(t, stored.ResetToken)

	_, err = svc.Login(ctx, &request.LoginRequest{Email: "ada@x.com", Password: "NewPass1"})
	require.NoError(t, err)
	_, err = svc.Login(ctx, &request.LoginRequest{Email: "ada@x.com", Password: "Secret123"})
	require.ErrorIs(t, err, ErrWrongPassword)

	// The consumed token cannot be replayed
	err = svc.ResetPassword(ctx, &request.ResetPasswordRequest{
		ID:         userID,
		Password:   "AnotherPass1",
		ResetToken: resetToken,
	})
	require.ErrorIs(t, err, ErrResetTokenMismatch)
}
