package repository

import (
	"context"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id int) (*domain.Match, error)
	GetByUsers(ctx context.Context, fromID, toID int) (*domain.Match, error)
	UpdateStatus(ctx context.Context, id int, status domain.MatchStatus) error
	DeleteByIDAndFrom(ctx context.Context, id, fromID int) error
}
