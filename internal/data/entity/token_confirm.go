package entity

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeRegistration   TokenType = "REGISTRATION"
	TokenTypePasswordReset  TokenType = "PASSWORD_RESET"
	TokenTypePasswordChange TokenType = "PASSWORD_CHANGE"
)

// TokenConfirm is a single-use confirmation token. A PASSWORD_RESET
// token becomes a PASSWORD_CHANGE token on its first successful
// confirmation, so the same record authorizes the follow-up
// set-new-password step.
type TokenConfirm struct {
	BaseSimple
	Token       string     `db:"token"`
	Type        TokenType  `db:"type"`
	UserID      uuid.UUID  `db:"user_id"`
	ExpiresAt   time.Time  `db:"expires_at"`
	ConfirmedAt *time.Time `db:"confirmed_at"`
}
