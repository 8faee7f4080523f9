package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

type resetTokenRepository struct {
	db *sqlx.DB
}

func NewResetTokenRepository(db *sqlx.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

func (r *resetTokenRepository) Replace(ctx context.Context, token *domain.PasswordResetToken) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM password_reset_tokens WHERE user_id = $1`, token.UserID); err != nil {
		return err
	}

	query := `
		INSERT INTO password_reset_tokens (user_id, reset_token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, token.UserID, token.Token, token.ExpiresAt).Scan(&token.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *resetTokenRepository) GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	var t domain.PasswordResetToken
	query := `SELECT * FROM password_reset_tokens WHERE reset_token = $1`
	err := r.db.GetContext(ctx, &t, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResetTokenInvalid
		}
		return nil, err
	}
	return &t, nil
}

func (r *resetTokenRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM password_reset_tokens WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrResetTokenInvalid
	}
	return nil
}
