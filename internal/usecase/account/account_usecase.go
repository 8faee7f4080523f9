package account

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-]+$`)
)

type AccountUseCase struct {
	userRepo     repository.UserRepository
	jwtSecret    string
	accessExpiry time.Duration
}

func NewAccountUseCase(userRepo repository.UserRepository, jwtSecret string, accessExpiry time.Duration) *AccountUseCase {
	return &AccountUseCase{
		userRepo:     userRepo,
		jwtSecret:    jwtSecret,
		accessExpiry: accessExpiry,
	}
}

// RegisterRequest carries signup input.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// LoginResult is the issued bearer token with its expiry.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// UpdateProfileRequest carries optional profile fields; only supplied
// (non-empty) fields are validated and applied.
type UpdateProfileRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Language    string `json:"language"`
	Gender      string `json:"gender"`
	ProfilePic  string `json:"profile_pic"`
	Description string `json:"description"`
}

// Register creates a new user with a bcrypt-hashed password.
func (uc *AccountUseCase) Register(ctx context.Context, req *RegisterRequest) (*domain.User, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, domain.NewValidationError("Invalid email format")
	}
	if len(req.Password) < 8 {
		return nil, domain.NewValidationError("Password must be at least 8 characters long")
	}

	if _, err := uc.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user := &domain.User{
		Email:    req.Email,
		Password: string(hash),
		IsActive: isActive,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a signed bearer token.
func (uc *AccountUseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.issueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

// GetProfile returns the user by id.
func (uc *AccountUseCase) GetProfile(ctx context.Context, userID int) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// ListUsers returns every registered user.
func (uc *AccountUseCase) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}

// SearchUsers does a case-insensitive substring match across every textual
// profile field. An empty result is an error, matching the API contract.
func (uc *AccountUseCase) SearchUsers(ctx context.Context, query string) ([]*domain.User, error) {
	users, err := uc.userRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsersFound
	}
	return users, nil
}

// SearchUsersBySkill matches the skill enumeration cast to text.
func (uc *AccountUseCase) SearchUsersBySkill(ctx context.Context, skill string) ([]*domain.User, error) {
	users, err := uc.userRepo.SearchBySkill(ctx, skill)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsersFound
	}
	return users, nil
}

// UpdateProfile validates and applies the supplied fields. The first violated
// rule wins; updating nothing at all is itself an error.
func (uc *AccountUseCase) UpdateProfile(ctx context.Context, userID int, req *UpdateProfileRequest) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := 0

	if req.Name != "" {
		if len(req.Name) < 2 || len(req.Name) > 30 {
			return nil, domain.NewValidationError("Name must be between 2 and 30 characters")
		}
		user.Name = &req.Name
		updated++
	}
	if req.Email != "" {
		if !emailPattern.MatchString(req.Email) {
			return nil, domain.NewValidationError("Invalid email format")
		}
		if existing, err := uc.userRepo.GetByEmail(ctx, req.Email); err == nil {
			if existing.ID != userID {
				return nil, domain.ErrEmailTaken
			}
		} else if err != domain.ErrUserNotFound {
			return nil, err
		}
		user.Email = req.Email
		updated++
	}
	if req.LastName != "" {
		if len(req.LastName) < 2 || len(req.LastName) > 30 {
			return nil, domain.NewValidationError("Last name must be between 2 and 30 characters")
		}
		user.LastName = &req.LastName
		updated++
	}
	if req.Phone != "" {
		if !phonePattern.MatchString(req.Phone) {
			return nil, domain.NewValidationError("Invalid phone number format")
		}
		user.Phone = &req.Phone
		updated++
	}
	if req.Location != "" {
		if len(req.Location) < 2 || len(req.Location) > 50 {
			return nil, domain.NewValidationError("Location must be between 2 and 50 characters")
		}
		user.Location = &req.Location
		updated++
	}
	if req.Language != "" {
		user.Language = &req.Language
		updated++
	}
	if req.Gender != "" {
		user.Gender = &req.Gender
		updated++
	}
	if req.ProfilePic != "" {
		user.ProfilePic = &req.ProfilePic
		updated++
	}
	if req.Description != "" {
		user.Description = &req.Description
		updated++
	}

	if updated == 0 {
		return nil, domain.ErrNothingToUpdate
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// issueToken signs an HS256 JWT carrying the user identity.
func (uc *AccountUseCase) issueToken(userID int) (string, time.Time, error) {
	expiresAt := time.Now().Add(uc.accessExpiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// VerifyToken verifies a bearer token and returns the user id it carries.
func (uc *AccountUseCase) VerifyToken(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, domain.ErrInvalidToken
	}
	return int(userID), nil
}
