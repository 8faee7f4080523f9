package skill

import (
	"context"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

type SkillUseCase struct {
	skillRepo repository.SkillRepository
}

func NewSkillUseCase(skillRepo repository.SkillRepository) *SkillUseCase {
	return &SkillUseCase{skillRepo: skillRepo}
}

// AddSkill tags the user with a skill from the fixed enumeration. A user
// holds at most MaxSkillsPerUser tags and at most one tag per skill name.
func (uc *SkillUseCase) AddSkill(ctx context.Context, userID int, name domain.SkillName, description string) (*domain.Skill, error) {
	if !name.IsValid() {
		return nil, domain.ErrInvalidSkill
	}

	count, err := uc.skillRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxSkillsPerUser {
		return nil, domain.ErrSkillLimitReached
	}

	if _, err := uc.skillRepo.GetByUserAndName(ctx, userID, name); err == nil {
		return nil, domain.ErrSkillExists
	} else if err != domain.ErrSkillNotFound {
		return nil, err
	}

	skill := &domain.Skill{
		UserID:    userID,
		SkillName: name,
	}
	if description != "" {
		skill.Description = &description
	}
	if err := uc.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// UpdateSkill replaces the description of an existing tag.
func (uc *SkillUseCase) UpdateSkill(ctx context.Context, userID int, name domain.SkillName, description string) error {
	if description == "" {
		return domain.NewValidationError("Description is required")
	}
	if !name.IsValid() {
		return domain.ErrInvalidSkill
	}
	return uc.skillRepo.UpdateDescription(ctx, userID, name, description)
}

// DeleteSkill removes the tag for this user.
func (uc *SkillUseCase) DeleteSkill(ctx context.Context, userID int, name domain.SkillName) error {
	if !name.IsValid() {
		return domain.ErrInvalidSkill
	}
	return uc.skillRepo.Delete(ctx, userID, name)
}
