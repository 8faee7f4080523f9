package password

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/mail"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenTTL is how long a reset link stays valid.
const resetTokenTTL = time.Hour

type ResetUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.ResetTokenRepository
	mailer    *mail.Mailer
}

func NewResetUseCase(userRepo repository.UserRepository, tokenRepo repository.ResetTokenRepository, mailer *mail.Mailer) *ResetUseCase {
	return &ResetUseCase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
	}
}

// RequestReset stores a fresh token for the account and emails the link.
// Unknown emails succeed silently so the endpoint cannot be used to probe
// which addresses have accounts.
func (uc *ResetUseCase) RequestReset(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil
		}
		return err
	}

	token := &domain.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := uc.tokenRepo.Replace(ctx, token); err != nil {
		return err
	}

	if uc.mailer == nil {
		slog.Warn("mailer not configured, skipping reset email", "user_id", user.ID)
		return nil
	}

	// delivery happens off the request path; a failed send only costs the
	// user another /password/forgot call
	go func(to, t string, userID int) {
		if err := uc.mailer.SendPasswordReset(to, t); err != nil {
			slog.Error("failed to send reset email", "user_id", userID, "error", err)
		}
	}(user.Email, token.Token, user.ID)

	return nil
}

// ResetPassword consumes a token and replaces the account credential.
func (uc *ResetUseCase) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	if len(newPassword) < 8 {
		return domain.NewValidationError("Password must be at least 8 characters long")
	}

	token, err := uc.tokenRepo.GetByToken(ctx, tokenString)
	if err != nil {
		return err
	}
	if token.IsExpired() {
		return domain.ErrResetTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(ctx, token.UserID, string(hash)); err != nil {
		return err
	}

	// single use: drop the token once the credential changed
	if err := uc.tokenRepo.Delete(ctx, token.ID); err != nil {
		slog.Error("failed to delete consumed reset token", "token_id", token.ID, "error", err)
	}
	return nil
}
