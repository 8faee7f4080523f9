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

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, password, is_active, name, last_name, location, language, gender, profile_pic, description, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	err := r.db.QueryRowContext(
		ctx, query,
		user.Email, user.Password, user.IsActive, user.Name, user.LastName,
		user.Location, user.Language, user.Gender, user.ProfilePic,
		user.Description, user.Phone,
	).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE email = $1`
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET email = $1, name = $2, last_name = $3, location = $4, language = $5,
		    gender = $6, profile_pic = $7, description = $8, phone = $9
		WHERE id = $10
	`
	result, err := r.db.ExecContext(
		ctx, query,
		user.Email, user.Name, user.LastName, user.Location, user.Language,
		user.Gender, user.ProfilePic, user.Description, user.Phone, user.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	query := `UPDATE users SET password = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	query := `SELECT * FROM users ORDER BY id`
	err := r.db.SelectContext(ctx, &users, query)
	return users, err
}

func (r *userRepository) Search(ctx context.Context, query string) ([]*domain.User, error) {
	var users []*domain.User
	pattern := "%" + query + "%"
	stmt := `
		SELECT * FROM users
		WHERE name ILIKE $1 OR email ILIKE $1 OR last_name ILIKE $1
		   OR location ILIKE $1 OR language ILIKE $1 OR profile_pic ILIKE $1
		   OR description ILIKE $1 OR phone ILIKE $1
		ORDER BY id
	`
	err := r.db.SelectContext(ctx, &users, stmt, pattern)
	return users, err
}

func (r *userRepository) SearchBySkill(ctx context.Context, skill string) ([]*domain.User, error) {
	var users []*domain.User
	pattern := "%" + skill + "%"
	// skill_name is an enum, cast to text for the substring match
	stmt := `
		SELECT DISTINCT u.* FROM users u
		JOIN categories c ON c.user_id = u.id
		WHERE c.skill_name::text ILIKE $1
		ORDER BY u.id
	`
	err := r.db.SelectContext(ctx, &users, stmt, pattern)
	return users, err
}
