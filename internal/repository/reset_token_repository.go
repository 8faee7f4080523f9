package repository

import (
	"context"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

type ResetTokenRepository interface {
	// Replace removes any previous token for the user before storing the new one.
	Replace(ctx context.Context, token *domain.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	Delete(ctx context.Context, id int) error
}
