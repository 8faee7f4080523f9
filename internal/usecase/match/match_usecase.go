package match

import (
	"context"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

type MatchUseCase struct {
	matchRepo repository.MatchRepository
	userRepo  repository.UserRepository
}

func NewMatchUseCase(matchRepo repository.MatchRepository, userRepo repository.UserRepository) *MatchUseCase {
	return &MatchUseCase{
		matchRepo: matchRepo,
		userRepo:  userRepo,
	}
}

// CreateMatch sends a directed match request, initialized Pending.
func (uc *MatchUseCase) CreateMatch(ctx context.Context, fromID, toID int) (*domain.Match, error) {
	if fromID == toID {
		return nil, domain.ErrSelfMatch
	}

	if _, err := uc.userRepo.GetByID(ctx, toID); err != nil {
		return nil, err
	}

	if _, err := uc.matchRepo.GetByUsers(ctx, fromID, toID); err == nil {
		return nil, domain.ErrMatchExists
	} else if err != domain.ErrMatchNotFound {
		return nil, err
	}

	match := &domain.Match{
		FromID: fromID,
		ToID:   toID,
		Status: domain.MatchPending,
	}
	if err := uc.matchRepo.Create(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// GetMatch returns the match when the caller is one of its two parties.
func (uc *MatchUseCase) GetMatch(ctx context.Context, matchID, userID int) (*domain.Match, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasUser(userID) {
		return nil, domain.ErrMatchForbidden
	}
	return match, nil
}

// UpdateStatus transitions a pending match. Either party may transition it;
// terminal states are absorbing.
func (uc *MatchUseCase) UpdateStatus(ctx context.Context, matchID, userID int, status domain.MatchStatus) error {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if !match.HasUser(userID) {
		return domain.ErrMatchForbidden
	}
	if !status.IsValid() {
		return domain.ErrInvalidMatchStatus
	}
	if match.Status.IsTerminal() {
		return domain.ErrMatchFinalized
	}
	return uc.matchRepo.UpdateStatus(ctx, matchID, status)
}

// DeleteMatch cancels a request; only the original requester may do it.
// The delete is scoped to (id, from) so a recipient simply gets not-found.
func (uc *MatchUseCase) DeleteMatch(ctx context.Context, matchID, userID int) error {
	return uc.matchRepo.DeleteByIDAndFrom(ctx, matchID, userID)
}
