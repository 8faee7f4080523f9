package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (reviewer_id, reviewee_id, score, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, review.ReviewerID, review.RevieweeID, review.Score, review.Comment).
		Scan(&review.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrReviewExists
		}
		return err
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int) (*domain.Review, error) {
	var review domain.Review
	query := `SELECT * FROM reviews WHERE id = $1`
	err := r.db.GetContext(ctx, &review, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByPair(ctx context.Context, reviewerID, revieweeID int) (*domain.Review, error) {
	var review domain.Review
	query := `SELECT * FROM reviews WHERE reviewer_id = $1 AND reviewee_id = $2`
	err := r.db.GetContext(ctx, &review, query, reviewerID, revieweeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *domain.Review) error {
	query := `UPDATE reviews SET score = $1, comment = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, review.Score, review.Comment, review.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *reviewRepository) DeleteByIDAndReviewer(ctx context.Context, id, reviewerID int) error {
	query := `DELETE FROM reviews WHERE id = $1 AND reviewer_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, reviewerID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *reviewRepository) ListByReviewee(ctx context.Context, revieweeID int) ([]*domain.Review, error) {
	var reviews []*domain.Review
	query := `SELECT * FROM reviews WHERE reviewee_id = $1 ORDER BY id`
	err := r.db.SelectContext(ctx, &reviews, query, revieweeID)
	return reviews, err
}

func (r *reviewRepository) RecomputeBestSharers(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM best_sharers`); err != nil {
		return err
	}

	// one row per user, zero average when nobody reviewed them yet
	insert := `
		INSERT INTO best_sharers (user_id, media_average)
		SELECT u.id, COALESCE(AVG(r.score), 0)
		FROM users u
		LEFT JOIN reviews r ON r.reviewee_id = u.id
		GROUP BY u.id
	`
	if _, err := tx.ExecContext(ctx, insert); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *reviewRepository) TopBestSharers(ctx context.Context, limit int) ([]*domain.BestSharer, error) {
	var sharers []*domain.BestSharer
	query := `
		SELECT u.*, b.media_average
		FROM best_sharers b
		JOIN users u ON u.id = b.user_id
		ORDER BY b.media_average DESC
		LIMIT $1
	`
	err := r.db.SelectContext(ctx, &sharers, query, limit)
	return sharers, err
}
