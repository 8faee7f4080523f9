package repository

import (
	"context"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	List(ctx context.Context) ([]*domain.User, error)
	Search(ctx context.Context, query string) ([]*domain.User, error)
	SearchBySkill(ctx context.Context, skill string) ([]*domain.User, error)
}
