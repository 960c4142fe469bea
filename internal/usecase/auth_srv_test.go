package usecase_test

import (
	"context"
	"testing"
	"time"

	"cineplex/internal/data/entity"
	"cineplex/internal/data/repository"
	"cineplex/internal/dto/request"
	"cineplex/internal/usecase"
	"cineplex/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthEnv(t *testing.T) (*repository.Repository, *fakeMailer, usecase.AuthService) {
	t.Helper()
	repo := newTestRepo()
	mail := &fakeMailer{}
	svc := usecase.NewAuthService(repo, newTestConfig(), mail, zap.NewNop())
	return repo, mail, svc
}

func registerReq(email, phone string) *request.RegisterRequest {
	return &request.RegisterRequest{
		FullName:        "Ada Lovelace",
		Email:           email,
		Phone:           phone,
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
	}
}

func TestRegisterCreatesDisabledUserAndSendsToken(t *testing.T) {
	ctx := context.Background()
	repo, mail, svc := newAuthEnv(t)

	resp, err := svc.Register(ctx, registerReq("ada@example.com", "0812345678"))
	require.NoError(t, err)
	require.False(t, resp.Enabled)

	user, err := repo.User.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.False(t, user.Enabled)

	require.Len(t, mail.registrations, 1)
	tc, err := repo.Token.FindByTokenAndType(ctx, mail.registrations[0].Token, entity.TokenTypeRegistration)
	require.NoError(t, err)
	require.NotNil(t, tc)
	require.Equal(t, user.ID, tc.UserID)
}

func TestRegisterDuplicateEmailFailsBeforeCreate(t *testing.T) {
	ctx := context.Background()
	repo, _, svc := newAuthEnv(t)

	_, err := svc.Register(ctx, registerReq("ada@example.com", "0812345678"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("ada@example.com", "0899999999"))
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	require.Equal(t, 1, repo.User.(*fakeUserRepo).count())
}

func TestRegisterDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newAuthEnv(t)

	_, err := svc.Register(ctx, registerReq("ada@example.com", "0812345678"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("grace@example.com", "0812345678"))
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestRegisterPasswordRules(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newAuthEnv(t)

	short := registerReq("ada@example.com", "0812345678")
	short.Password = "short"
	short.ConfirmPassword = "short"
	_, err := svc.Register(ctx, short)
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	mismatch := registerReq("ada@example.com", "0812345678")
	mismatch.ConfirmPassword = "different-pass"
	_, err = svc.Register(ctx, mismatch)
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestConfirmRegistrationActivatesAccount(t *testing.T) {
	ctx := context.Background()
	repo, mail, svc := newAuthEnv(t)

	_, err := svc.Register(ctx, registerReq("ada@example.com", "0812345678"))
	require.NoError(t, err)

	// Login rejected while the account is pending
	_, err = svc.Login(ctx, &request.LoginRequest{Email: "ada@example.com", Password: "supersecret"})
	require.ErrorIs(t, err, utils.ErrAccountDisabled)

	token := mail.registrations[0].Token
	verify, err := svc.ConfirmToken(ctx, token, entity.TokenTypeRegistration)
	require.NoError(t, err)
	require.Equal(t, usecase.OutcomeAccountActivated, verify.Outcome)

	user, err := repo.User.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.True(t, user.Enabled)

	auth, err := svc.Login(ctx, &request.LoginRequest{Email: "ada@example.com", Password: "supersecret"})
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)
}

func TestConfirmIsSingleUse(t *testing.T) {
	ctx := context.Background()
	_, mail, svc := newAuthEnv(t)

	_, err := svc.Register(ctx, registerReq("ada@example.com", "0812345678"))
	require.NoError(t, err)

	token := mail.registrations[0].Token
	_, err = svc.ConfirmToken(ctx, token, entity.TokenTypeRegistration)
	require.NoError(t, err)

	_, err = svc.ConfirmToken(ctx, token, entity.TokenTypeRegistration)
	require.ErrorIs(t, err, utils.ErrAlreadyConfirmed)
}

func TestConfirmExpiredToken(t *testing.T) {
	ctx := context.Background()
	repo, _, svc := newAuthEnv(t)

	tc := &entity.TokenConfirm{
		BaseSimple: entity.BaseSimple{ID: utils.GenerateUUID(), CreatedAt: time.Now().Add(-48 * time.Hour)},
		Token:      utils.GenerateConfirmToken(),
		Type:       entity.TokenTypeRegistration,
		UserID:     utils.GenerateUUID(),
		ExpiresAt:  time.Now().Add(-24 * time.Hour),
	}
	require.NoError(t, repo.Token.Create(ctx, tc))

	_, err := svc.ConfirmToken(ctx, tc.Token, entity.TokenTypeRegistration)
	require.ErrorIs(t, err, utils.ErrExpired)
}

func TestConfirmUnknownToken(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newAuthEnv(t)

	_, err := svc.ConfirmToken(ctx, utils.GenerateConfirmToken(), entity.TokenTypeRegistration)
	require.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	_, mail, svc := newAuthEnv(t)

	_, err := svc.Register(ctx, registerReq("ada@example.com", "0812345678"))
	require.NoError(t, err)
	_, err = svc.ConfirmToken(ctx, mail.registrations[0].Token, entity.TokenTypeRegistration)
	require.NoError(t, err)

	_, err = svc.Login(ctx, &request.LoginRequest{Email: "ada@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &request.LoginRequest{Email: "nobody@example.com", Password: "supersecret"})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestPasswordResetFlipsToPasswordChange(t *testing.T) {
	ctx := context.Background()
	repo, mail, svc := newAuthEnv(t)

	_, err := svc.Register(ctx, registerReq("ada@example.com", "0812345678"))
	require.NoError(t, err)
	_, err = svc.ConfirmToken(ctx, mail.registrations[0].Token, entity.TokenTypeRegistration)
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "ada@example.com"}))
	require.Len(t, mail.resets, 1)
	resetToken := mail.resets[0].Token

	verify, err := svc.ConfirmToken(ctx, resetToken, entity.TokenTypePasswordReset)
	require.NoError(t, err)
	require.Equal(t, usecase.OutcomePasswordChangeAuthorized, verify.Outcome)
	require.Equal(t, resetToken, verify.Token)

	// The record is no longer reachable under its original type
	tc, err := repo.Token.FindByTokenAndType(ctx, resetToken, entity.TokenTypePasswordReset)
	require.NoError(t, err)
	require.Nil(t, tc)

	tc, err = repo.Token.FindByTokenAndType(ctx, resetToken, entity.TokenTypePasswordChange)
	require.NoError(t, err)
	require.NotNil(t, tc)

	_, err = svc.ConfirmToken(ctx, resetToken, entity.TokenTypePasswordReset)
	require.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestChangePasswordLogsBackIn(t *testing.T) {
	ctx := context.Background()
	_, mail, svc := newAuthEnv(t)

	_, err := svc.Register(ctx, registerReq("ada@example.com", "0812345678"))
	require.NoError(t, err)
	_, err = svc.ConfirmToken(ctx, mail.registrations[0].Token, entity.TokenTypeRegistration)
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "ada@example.com"}))
	resetToken := mail.resets[0].Token
	_, err = svc.ConfirmToken(ctx, resetToken, entity.TokenTypePasswordReset)
	require.NoError(t, err)

	auth, err := svc.ChangePassword(ctx, &request.ChangePasswordRequest{
		Token:           resetToken,
		Password:        "brand-new-pass",
		ConfirmPassword: "brand-new-pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)

	_, err = svc.Login(ctx, &request.LoginRequest{Email: "ada@example.com", Password: "supersecret"})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &request.LoginRequest{Email: "ada@example.com", Password: "brand-new-pass"})
	require.NoError(t, err)
}

func TestChangePasswordWithoutVerifiedToken(t *testing.T) {
	ctx := context.Background()
	_, mail, svc := newAuthEnv(t)

	_, err := svc.Register(ctx, registerReq("ada@example.com", "0812345678"))
	require.NoError(t, err)
	_, err = svc.ConfirmToken(ctx, mail.registrations[0].Token, entity.TokenTypeRegistration)
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "ada@example.com"}))

	// Skipping the verify step leaves the token typed PASSWORD_RESET
	_, err = svc.ChangePassword(ctx, &request.ChangePasswordRequest{
		Token:           mail.resets[0].Token,
		Password:        "brand-new-pass",
		ConfirmPassword: "brand-new-pass",
	})
	require.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newAuthEnv(t)

	err := svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "nobody@example.com"})
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestLogoutRevokesSession(t *testing.T) {
	ctx := context.Background()
	repo, mail, svc := newAuthEnv(t)

	_, err := svc.Register(ctx, registerReq("ada@example.com", "0812345678"))
	require.NoError(t, err)
	_, err = svc.ConfirmToken(ctx, mail.registrations[0].Token, entity.TokenTypeRegistration)
	require.NoError(t, err)

	auth, err := svc.Login(ctx, &request.LoginRequest{Email: "ada@example.com", Password: "supersecret"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, auth.Token))

	session, err := repo.Session.FindValidSession(ctx, auth.Token)
	require.NoError(t, err)
	require.Nil(t, session)
}
