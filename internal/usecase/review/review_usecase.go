package review

import (
	"context"
	"log/slog"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/cache"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

// BestSharersLimit is how many top-rated users the leaderboard exposes.
const BestSharersLimit = 6

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	board      *cache.LeaderboardCache
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, userRepo repository.UserRepository, board *cache.LeaderboardCache) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		board:      board,
	}
}

// AddReview creates a peer review and recomputes the leaderboard.
func (uc *ReviewUseCase) AddReview(ctx context.Context, reviewerID, revieweeID, score int, comment string) (*domain.Review, error) {
	if reviewerID == revieweeID {
		return nil, domain.ErrSelfReview
	}
	if score < 1 || score > 5 {
		return nil, domain.NewValidationError("Score must be between 1 and 5")
	}

	if _, err := uc.userRepo.GetByID(ctx, reviewerID); err != nil {
		return nil, err
	}
	if _, err := uc.userRepo.GetByID(ctx, revieweeID); err != nil {
		return nil, err
	}

	if _, err := uc.reviewRepo.GetByPair(ctx, reviewerID, revieweeID); err == nil {
		return nil, domain.ErrReviewExists
	} else if err != domain.ErrReviewNotFound {
		return nil, err
	}

	review := &domain.Review{
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Score:      score,
	}
	if comment != "" {
		review.Comment = &comment
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	uc.refreshLeaderboard(ctx)
	return review, nil
}

// UpdateReview applies a partial update; only the original reviewer may do it.
func (uc *ReviewUseCase) UpdateReview(ctx context.Context, reviewID, reviewerID int, score *int, comment string) (*domain.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.ReviewerID != reviewerID {
		return nil, domain.ErrReviewForbidden
	}

	if score != nil {
		if *score < 1 || *score > 5 {
			return nil, domain.NewValidationError("Score must be between 1 and 5")
		}
		review.Score = *score
	}
	if comment != "" {
		review.Comment = &comment
	}

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	uc.refreshLeaderboard(ctx)
	return review, nil
}

// DeleteReview removes a review scoped to its reviewer.
func (uc *ReviewUseCase) DeleteReview(ctx context.Context, reviewID, reviewerID int) error {
	if err := uc.reviewRepo.DeleteByIDAndReviewer(ctx, reviewID, reviewerID); err != nil {
		return err
	}
	uc.refreshLeaderboard(ctx)
	return nil
}

// ListReviewsReceived returns reviews a user has received; empty is an error,
// matching the API contract.
func (uc *ReviewUseCase) ListReviewsReceived(ctx context.Context, userID int) ([]*domain.Review, error) {
	reviews, err := uc.reviewRepo.ListByReviewee(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, domain.ErrNoReviewsFound
	}
	return reviews, nil
}

// BestSharers returns the top users by average received score, preferring the
// Redis snapshot and falling back to the best_sharers table.
func (uc *ReviewUseCase) BestSharers(ctx context.Context) ([]*domain.BestSharer, error) {
	if sharers, ok := uc.board.Get(ctx); ok {
		return sharers, nil
	}

	sharers, err := uc.reviewRepo.TopBestSharers(ctx, BestSharersLimit)
	if err != nil {
		return nil, err
	}
	if len(sharers) == 0 {
		// the snapshot only fills on review mutations, so a fresh deployment
		// has an empty table even with registered users; build it once from
		// the users table before concluding there is nobody to rank
		if err := uc.reviewRepo.RecomputeBestSharers(ctx); err != nil {
			return nil, err
		}
		sharers, err = uc.reviewRepo.TopBestSharers(ctx, BestSharersLimit)
		if err != nil {
			return nil, err
		}
	}
	if len(sharers) == 0 {
		return nil, domain.ErrNoUsersFound
	}

	uc.board.Set(ctx, sharers)
	return sharers, nil
}

// refreshLeaderboard rebuilds the best_sharers snapshot after a review
// mutation. Failures are logged, not surfaced: the review mutation itself
// already committed and the snapshot catches up on the next mutation.
func (uc *ReviewUseCase) refreshLeaderboard(ctx context.Context) {
	if err := uc.reviewRepo.RecomputeBestSharers(ctx); err != nil {
		slog.Error("failed to recompute best sharers", "error", err)
		uc.board.Invalidate(ctx)
		return
	}

	sharers, err := uc.reviewRepo.TopBestSharers(ctx, BestSharersLimit)
	if err != nil {
		slog.Error("failed to load best sharers", "error", err)
		uc.board.Invalidate(ctx)
		return
	}
	uc.board.Set(ctx, sharers)
}
