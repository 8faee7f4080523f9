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

type skillRepository struct {
	db *sqlx.DB
}

func NewSkillRepository(db *sqlx.DB) repository.SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	query := `
		INSERT INTO categories (user_id, skill_name, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, skill.UserID, skill.SkillName, skill.Description).
		Scan(&skill.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrSkillExists
		}
		return err
	}
	return nil
}

func (r *skillRepository) GetByUserAndName(ctx context.Context, userID int, name domain.SkillName) (*domain.Skill, error) {
	var skill domain.Skill
	query := `SELECT * FROM categories WHERE user_id = $1 AND skill_name = $2`
	err := r.db.GetContext(ctx, &skill, query, userID, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) CountByUser(ctx context.Context, userID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM categories WHERE user_id = $1`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}

func (r *skillRepository) UpdateDescription(ctx context.Context, userID int, name domain.SkillName, description string) error {
	query := `UPDATE categories SET description = $1 WHERE user_id = $2 AND skill_name = $3`
	result, err := r.db.ExecContext(ctx, query, description, userID, name)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}

func (r *skillRepository) Delete(ctx context.Context, userID int, name domain.SkillName) error {
	query := `DELETE FROM categories WHERE user_id = $1 AND skill_name = $2`
	result, err := r.db.ExecContext(ctx, query, userID, name)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}
