package usecase

import (
	"context"
	"fmt"
	"time"

	"cineplex/internal/data/entity"
	"cineplex/internal/data/repository"
	"cineplex/internal/dto/request"
	"cineplex/internal/dto/response"
	"cineplex/pkg/mailer"
	"cineplex/pkg/utils"

	"go.uber.org/zap"
)

const (
	OutcomeAccountActivated         = "ACCOUNT_ACTIVATED"
	OutcomePasswordChangeAuthorized = "PASSWORD_CHANGE_AUTHORIZED"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ConfirmToken(ctx context.Context, token string, tokenType entity.TokenType) (*response.VerifyResponse, error)
	ChangePassword(ctx context.Context, req *request.ChangePasswordRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validate input shape
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	// 2. Email must be unused
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", utils.ErrInvalidInput)
	}

	// 3. Phone must be unused
	existing, err = s.repo.User.FindByPhone(ctx, req.Phone)
	if err != nil {
		s.log.Error("Failed to check phone", zap.Error(err), zap.String("phone", req.Phone))
		return nil, fmt.Errorf("check phone: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("phone already registered: %w", utils.ErrInvalidInput)
	}

	// 4. Password rules
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", utils.ErrInvalidInput)
	}
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("passwords do not match: %w", utils.ErrInvalidInput)
	}

	// 5. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 6. Create disabled user; it activates on token confirmation
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hashed,
		Phone:        req.Phone,
		Gender:       req.Gender,
		Role:         entity.RoleUser,
		Enabled:      false,
	}

	if req.Birthday != nil {
		birthday, err := time.Parse("2006-01-02", *req.Birthday)
		if err != nil {
			return nil, fmt.Errorf("invalid birthday: %w", utils.ErrInvalidInput)
		}
		user.Birthday = &birthday
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	// 7. Issue registration token and send the confirmation mail
	token, err := s.issueToken(ctx, user, entity.TokenTypeRegistration)
	if err != nil {
		return nil, err
	}

	s.mail.SendRegistrationConfirm(mailer.MailData{
		Email:    user.Email,
		FullName: user.FullName,
		Token:    token.Token,
	})

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	// 2. Find user
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, utils.ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, utils.ErrInvalidCredentials
	}

	// 4. Account must be activated
	if !user.Enabled {
		s.log.Warn("Disabled account tried to login", zap.String("user_id", user.ID.String()))
		return nil, utils.ErrAccountDisabled
	}

	// 5. Create session
	session, err := s.createSession(ctx, user)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := utils.ParseUUID(token)
	if err != nil {
		s.log.Warn("Invalid session token format", zap.Error(err))
		return fmt.Errorf("session token: %w", utils.ErrInvalidToken)
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}

	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	// 2. Find user
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for password reset", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("account %s: %w", req.Email, utils.ErrNotFound)
	}

	// 3. Issue reset token and mail the link
	token, err := s.issueToken(ctx, user, entity.TokenTypePasswordReset)
	if err != nil {
		return err
	}

	s.mail.SendPasswordReset(mailer.MailData{
		Email:    user.Email,
		FullName: user.FullName,
		Token:    token.Token,
	})

	s.log.Info("Password reset requested",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}

func (s *authService) ConfirmToken(ctx context.Context, token string, tokenType entity.TokenType) (*response.VerifyResponse, error) {
	tc, err := s.repo.Token.Confirm(ctx, token, tokenType)
	if err != nil {
		return nil, err
	}

	switch tc.Type {
	case entity.TokenTypeRegistration:
		user, err := s.repo.User.FindByID(ctx, tc.UserID)
		if err != nil {
			s.log.Error("Failed to find user for activation", zap.Error(err),
				zap.String("user_id", tc.UserID.String()))
			return nil, fmt.Errorf("find user: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("account for token: %w", utils.ErrNotFound)
		}

		user.Enabled = true
		user.UpdatedAt = time.Now()
		if err := s.repo.User.Update(ctx, user); err != nil {
			s.log.Error("Failed to enable user", zap.Error(err),
				zap.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("enable user: %w", err)
		}

		s.log.Info("Account activated", zap.String("user_id", user.ID.String()))
		return &response.VerifyResponse{Outcome: OutcomeAccountActivated}, nil

	case entity.TokenTypePasswordReset:
		s.log.Info("Password change authorized", zap.String("user_id", tc.UserID.String()))
		return &response.VerifyResponse{
			Outcome: OutcomePasswordChangeAuthorized,
			Token:   tc.Token,
		}, nil

	default:
		return nil, fmt.Errorf("%s token: %w", tokenType, utils.ErrInvalidToken)
	}
}

func (s *authService) ChangePassword(ctx context.Context, req *request.ChangePasswordRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", utils.ErrInvalidInput)
	}
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("passwords do not match: %w", utils.ErrInvalidInput)
	}

	// 2. The token must have gone through the verify step already
	tc, err := s.repo.Token.FindByTokenAndType(ctx, req.Token, entity.TokenTypePasswordChange)
	if err != nil {
		return nil, fmt.Errorf("find password change token: %w", err)
	}
	if tc == nil {
		return nil, fmt.Errorf("password change token: %w", utils.ErrInvalidToken)
	}
	if time.Now().After(tc.ExpiresAt) {
		return nil, fmt.Errorf("password change token: %w", utils.ErrExpired)
	}

	// 3. Rehash the owning user's password
	user, err := s.repo.User.FindByID(ctx, tc.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("account for token: %w", utils.ErrNotFound)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = hashed
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update password", zap.Error(err),
			zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("update password: %w", err)
	}

	// 4. Old sessions no longer honor the previous password
	if err := s.repo.Session.RevokeAllUserSessions(ctx, user.ID); err != nil {
		s.log.Warn("Failed to revoke sessions after password change",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	// 5. Log the user back in with the new credentials
	return s.Login(ctx, &request.LoginRequest{
		Email:    user.Email,
		Password: req.Password,
	})
}

func (s *authService) issueToken(ctx context.Context, user *entity.User, tokenType entity.TokenType) (*entity.TokenConfirm, error) {
	ttl := time.Duration(s.config.Token.RegistrationTTLHours) * time.Hour
	if tokenType == entity.TokenTypePasswordReset {
		ttl = time.Duration(s.config.Token.PasswordResetTTLHours) * time.Hour
	}

	now := time.Now()
	token := &entity.TokenConfirm{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
		},
		Token:     utils.GenerateConfirmToken(),
		Type:      tokenType,
		UserID:    user.ID,
		ExpiresAt: now.Add(ttl),
	}

	if err := s.repo.Token.Create(ctx, token); err != nil {
		s.log.Error("Failed to create confirmation token",
			zap.Error(err),
			zap.String("type", string(tokenType)),
			zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue %s token: %w", tokenType, err)
	}

	return token, nil
}

func (s *authService) createSession(ctx context.Context, user *entity.User) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	userAgent, ipAddress := utils.GetClientFromContext(ctx)
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
