package repository

import (
	"context"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

type SkillRepository interface {
	Create(ctx context.Context, skill *domain.Skill) error
	GetByUserAndName(ctx context.Context, userID int, name domain.SkillName) (*domain.Skill, error)
	CountByUser(ctx context.Context, userID int) (int, error)
	UpdateDescription(ctx context.Context, userID int, name domain.SkillName, description string) error
	Delete(ctx context.Context, userID int, name domain.SkillName) error
}
