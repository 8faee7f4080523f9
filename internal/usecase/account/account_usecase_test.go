package account

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, query string) ([]*domain.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) SearchBySkill(ctx context.Context, skill string) ([]*domain.User, error) {
	args := m.Called(ctx, skill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestUseCase(repo *MockUserRepository) *AccountUseCase {
	return NewAccountUseCase(repo, testSecret, 2*time.Hour)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAccountUseCase_Register(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		setupMock   func(*MockUserRepository)
		expectedErr error
	}{
		{
			name:     "successful registration",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "test@example.com").Return(nil, domain.ErrUserNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
			},
		},
		{
			name:        "malformed email",
			email:       "not-an-email",
			password:    "password123",
			setupMock:   func(repo *MockUserRepository) {},
			expectedErr: &domain.ValidationError{Message: "Invalid email format"},
		},
		{
			name:        "password shorter than 8 characters",
			email:       "test@example.com",
			password:    "short",
			setupMock:   func(repo *MockUserRepository) {},
			expectedErr: &domain.ValidationError{Message: "Password must be at least 8 characters long"},
		},
		{
			name:     "duplicate email",
			email:    "taken@example.com",
			password: "password123",
			setupMock: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "taken@example.com").
					Return(&domain.User{ID: 7, Email: "taken@example.com"}, nil)
			},
			expectedErr: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			uc := newTestUseCase(repo)

			user, err := uc.Register(context.Background(), &RegisterRequest{
				Email:    tt.email,
				Password: tt.password,
			})

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.True(t, user.IsActive)
				// stored credential must be a hash of the input, not the input
				assert.NotEqual(t, tt.password, user.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(tt.password)))
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAccountUseCase_Login(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		setupMock   func(*testing.T, *MockUserRepository)
		expectedErr error
	}{
		{
			name:     "successful login",
			email:    "ok@example.com",
			password: "password123",
			setupMock: func(t *testing.T, repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "ok@example.com").Return(&domain.User{
					ID:       1,
					Email:    "ok@example.com",
					Password: hashOf(t, "password123"),
					IsActive: true,
				}, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "missing@example.com",
			password: "password123",
			setupMock: func(t *testing.T, repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "missing@example.com").Return(nil, domain.ErrUserNotFound)
			},
			expectedErr: domain.ErrUserNotFound,
		},
		{
			name:     "inactive account",
			email:    "inactive@example.com",
			password: "password123",
			setupMock: func(t *testing.T, repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "inactive@example.com").Return(&domain.User{
					ID:       2,
					Email:    "inactive@example.com",
					Password: hashOf(t, "password123"),
					IsActive: false,
				}, nil)
			},
			expectedErr: domain.ErrUserInactive,
		},
		{
			name:     "wrong password",
			email:    "ok@example.com",
			password: "wrongpassword",
			setupMock: func(t *testing.T, repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "ok@example.com").Return(&domain.User{
					ID:       1,
					Email:    "ok@example.com",
					Password: hashOf(t, "password123"),
					IsActive: true,
				}, nil)
			},
			expectedErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(t, repo)
			uc := newTestUseCase(repo)

			result, err := uc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.Token)
				assert.WithinDuration(t, time.Now().Add(2*time.Hour), result.ExpiresAt, time.Minute)

				// the issued token must round-trip back to the user id
				userID, err := uc.VerifyToken(result.Token)
				assert.NoError(t, err)
				assert.Equal(t, 1, userID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAccountUseCase_VerifyToken(t *testing.T) {
	uc := newTestUseCase(new(MockUserRepository))

	_, err := uc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	// token signed with a different secret must be rejected
	other := NewAccountUseCase(new(MockUserRepository), "another-secret-that-is-32-chars!", 2*time.Hour)
	token, _, err := other.issueToken(9)
	assert.NoError(t, err)
	_, err = uc.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	// expired token must be rejected
	expired := NewAccountUseCase(new(MockUserRepository), testSecret, -time.Hour)
	token, _, err = expired.issueToken(9)
	assert.NoError(t, err)
	_, err = uc.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAccountUseCase_UpdateProfile(t *testing.T) {
	existing := func() *domain.User {
		return &domain.User{ID: 1, Email: "me@example.com", IsActive: true}
	}

	tests := []struct {
		name        string
		req         *UpdateProfileRequest
		setupMock   func(*MockUserRepository)
		expectedErr string
	}{
		{
			name: "successful update",
			req:  &UpdateProfileRequest{Name: "Alice", Location: "Madrid"},
			setupMock: func(repo *MockUserRepository) {
				repo.On("GetByID", mock.Anything, 1).Return(existing(), nil)
				repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
			},
		},
		{
			name: "name too short",
			req:  &UpdateProfileRequest{Name: "A"},
			setupMock: func(repo *MockUserRepository) {
				repo.On("GetByID", mock.Anything, 1).Return(existing(), nil)
			},
			expectedErr: "Name must be between 2 and 30 characters",
		},
		{
			name: "invalid phone",
			req:  &UpdateProfileRequest{Phone: "call-me-maybe"},
			setupMock: func(repo *MockUserRepository) {
				repo.On("GetByID", mock.Anything, 1).Return(existing(), nil)
			},
			expectedErr: "Invalid phone number format",
		},
		{
			name: "location too long",
			req:  &UpdateProfileRequest{Location: strings.Repeat("x", 51)},
			setupMock: func(repo *MockUserRepository) {
				repo.On("GetByID", mock.Anything, 1).Return(existing(), nil)
			},
			expectedErr: "Location must be between 2 and 50 characters",
		},
		{
			name: "email collision with another user",
			req:  &UpdateProfileRequest{Email: "taken@example.com"},
			setupMock: func(repo *MockUserRepository) {
				repo.On("GetByID", mock.Anything, 1).Return(existing(), nil)
				repo.On("GetByEmail", mock.Anything, "taken@example.com").
					Return(&domain.User{ID: 2, Email: "taken@example.com"}, nil)
			},
			expectedErr: domain.ErrEmailTaken.Error(),
		},
		{
			name: "re-setting own email is allowed",
			req:  &UpdateProfileRequest{Email: "me@example.com"},
			setupMock: func(repo *MockUserRepository) {
				repo.On("GetByID", mock.Anything, 1).Return(existing(), nil)
				repo.On("GetByEmail", mock.Anything, "me@example.com").Return(existing(), nil)
				repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
			},
		},
		{
			name: "no fields supplied",
			req:  &UpdateProfileRequest{},
			setupMock: func(repo *MockUserRepository) {
				repo.On("GetByID", mock.Anything, 1).Return(existing(), nil)
			},
			expectedErr: domain.ErrNothingToUpdate.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			uc := newTestUseCase(repo)

			user, err := uc.UpdateProfile(context.Background(), 1, tt.req)

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAccountUseCase_SearchUsers(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Search", mock.Anything, "nobody").Return([]*domain.User{}, nil)
	repo.On("Search", mock.Anything, "alice").Return([]*domain.User{{ID: 1, Email: "alice@example.com"}}, nil)
	uc := newTestUseCase(repo)

	// empty result is an error, per the API contract
	_, err := uc.SearchUsers(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrNoUsersFound)

	users, err := uc.SearchUsers(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	repo.AssertExpectations(t)
}
