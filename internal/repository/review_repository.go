package repository

import (
	"context"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id int) (*domain.Review, error)
	GetByPair(ctx context.Context, reviewerID, revieweeID int) (*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	DeleteByIDAndReviewer(ctx context.Context, id, reviewerID int) error
	ListByReviewee(ctx context.Context, revieweeID int) ([]*domain.Review, error)

	// RecomputeBestSharers rebuilds the best_sharers snapshot from scratch:
	// one average per user, zero when the user has no received reviews.
	RecomputeBestSharers(ctx context.Context) error
	TopBestSharers(ctx context.Context, limit int) ([]*domain.BestSharer, error)
}
