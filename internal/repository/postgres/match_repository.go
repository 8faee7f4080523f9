package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	query := `
		INSERT INTO matches (match_from_id, match_to_id, match_status)
		VALUES ($1, $2, $3)
		RETURNING match_id
	`
	return r.db.QueryRowContext(ctx, query, match.FromID, match.ToID, match.Status).
		Scan(&match.ID)
}

func (r *matchRepository) GetByID(ctx context.Context, id int) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT * FROM matches WHERE match_id = $1`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetByUsers(ctx context.Context, fromID, toID int) (*domain.Match, error) {
	var match domain.Match
	// the pair is ordered: the reverse direction is a distinct request
	query := `SELECT * FROM matches WHERE match_from_id = $1 AND match_to_id = $2`
	err := r.db.GetContext(ctx, &match, query, fromID, toID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id int, status domain.MatchStatus) error {
	query := `UPDATE matches SET match_status = $1 WHERE match_id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *matchRepository) DeleteByIDAndFrom(ctx context.Context, id, fromID int) error {
	query := `DELETE FROM matches WHERE match_id = $1 AND match_from_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, fromID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}
