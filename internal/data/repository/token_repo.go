package repository

import (
	"context"
	"fmt"
	"time"

	"cineplex/internal/data/entity"
	"cineplex/pkg/database"
	"cineplex/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TokenConfirmRepository interface {
	Create(ctx context.Context, token *entity.TokenConfirm) error
	FindByTokenAndType(ctx context.Context, token string, tokenType entity.TokenType) (*entity.TokenConfirm, error)

	// Confirm runs the single-use check-then-set atomically on the token
	// row. On success the returned record carries the type it was looked
	// up under; a PASSWORD_RESET token has already been repurposed to
	// PASSWORD_CHANGE in the store. Failures map to utils.ErrInvalidToken,
	// utils.ErrAlreadyConfirmed and utils.ErrExpired.
	Confirm(ctx context.Context, token string, tokenType entity.TokenType) (*entity.TokenConfirm, error)
}

type tokenConfirmRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTokenConfirmRepository(db database.PgxIface, log *zap.Logger) TokenConfirmRepository {
	return &tokenConfirmRepository{
		db:  db,
		log: log.With(zap.String("repository", "token_confirm")),
	}
}

func (r *tokenConfirmRepository) Create(ctx context.Context, token *entity.TokenConfirm) error {
	query := `
		INSERT INTO token_confirms (id, token, type, user_id, expires_at,
		                            confirmed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		token.ID,
		token.Token,
		token.Type,
		token.UserID,
		token.ExpiresAt,
		token.ConfirmedAt,
		token.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create confirmation token",
			zap.Error(err),
			zap.String("type", string(token.Type)),
			zap.String("user_id", token.UserID.String()),
		)
		return fmt.Errorf("create %s token: %w", token.Type, err)
	}

	return nil
}

const tokenSelect = `
	SELECT id, token, type, user_id, expires_at, confirmed_at, created_at
	FROM token_confirms
	WHERE token = $1 AND type = $2
`

func (r *tokenConfirmRepository) FindByTokenAndType(ctx context.Context, token string, tokenType entity.TokenType) (*entity.TokenConfirm, error) {
	var tc entity.TokenConfirm
	err := r.db.QueryRow(ctx, tokenSelect, token, tokenType).Scan(
		&tc.ID,
		&tc.Token,
		&tc.Type,
		&tc.UserID,
		&tc.ExpiresAt,
		&tc.ConfirmedAt,
		&tc.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find confirmation token",
			zap.Error(err),
			zap.String("type", string(tokenType)),
		)
		return nil, fmt.Errorf("find %s token: %w", tokenType, err)
	}

	return &tc, nil
}

func (r *tokenConfirmRepository) Confirm(ctx context.Context, token string, tokenType entity.TokenType) (*entity.TokenConfirm, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin confirm tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the token row so two concurrent confirmations cannot both
	// pass the confirmed-at check.
	var tc entity.TokenConfirm
	err = tx.QueryRow(ctx, tokenSelect+" FOR UPDATE", token, tokenType).Scan(
		&tc.ID,
		&tc.Token,
		&tc.Type,
		&tc.UserID,
		&tc.ExpiresAt,
		&tc.ConfirmedAt,
		&tc.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("%s token: %w", tokenType, utils.ErrInvalidToken)
	}
	if err != nil {
		r.log.Error("Failed to lock confirmation token",
			zap.Error(err),
			zap.String("type", string(tokenType)),
		)
		return nil, fmt.Errorf("lock %s token: %w", tokenType, err)
	}

	if tc.ConfirmedAt != nil {
		return nil, fmt.Errorf("%s token: %w", tokenType, utils.ErrAlreadyConfirmed)
	}

	now := time.Now()
	if now.After(tc.ExpiresAt) {
		return nil, fmt.Errorf("%s token: %w", tokenType, utils.ErrExpired)
	}

	newType := tc.Type
	if tc.Type == entity.TokenTypePasswordReset {
		// Repurpose the record as the short-lived authorization for the
		// follow-up set-new-password step.
		newType = entity.TokenTypePasswordChange
	}

	_, err = tx.Exec(ctx,
		`UPDATE token_confirms SET confirmed_at = $2, type = $3 WHERE id = $1`,
		tc.ID, now, newType,
	)
	if err != nil {
		r.log.Error("Failed to confirm token",
			zap.Error(err),
			zap.String("token_id", tc.ID.String()),
		)
		return nil, fmt.Errorf("confirm %s token: %w", tokenType, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit confirm tx: %w", err)
	}

	tc.ConfirmedAt = &now
	return &tc, nil
}
