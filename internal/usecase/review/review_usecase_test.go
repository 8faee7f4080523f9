package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/cache"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByPair(ctx context.Context, reviewerID, revieweeID int) (*domain.Review, error) {
	args := m.Called(ctx, reviewerID, revieweeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) DeleteByIDAndReviewer(ctx context.Context, id, reviewerID int) error {
	args := m.Called(ctx, id, reviewerID)
	return args.Error(0)
}

func (m *MockReviewRepository) ListByReviewee(ctx context.Context, revieweeID int) ([]*domain.Review, error) {
	args := m.Called(ctx, revieweeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) RecomputeBestSharers(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReviewRepository) TopBestSharers(ctx context.Context, limit int) ([]*domain.BestSharer, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BestSharer), args.Error(1)
}

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

// noCache is a nil-client cache: reads miss, writes are no-ops.
func noCache() *cache.LeaderboardCache {
	return cache.NewLeaderboardCache(nil)
}

func TestReviewUseCase_AddReview(t *testing.T) {
	tests := []struct {
		name        string
		reviewerID  int
		revieweeID  int
		score       int
		setupMock   func(*MockReviewRepository, *MockUserRepository)
		expectedErr string
	}{
		{
			name:       "successful review triggers leaderboard rebuild",
			reviewerID: 1,
			revieweeID: 2,
			score:      5,
			setupMock: func(reviews *MockReviewRepository, users *MockUserRepository) {
				users.On("GetByID", mock.Anything, 1).Return(&domain.User{ID: 1}, nil)
				users.On("GetByID", mock.Anything, 2).Return(&domain.User{ID: 2}, nil)
				reviews.On("GetByPair", mock.Anything, 1, 2).Return(nil, domain.ErrReviewNotFound)
				reviews.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)
				reviews.On("RecomputeBestSharers", mock.Anything).Return(nil)
				reviews.On("TopBestSharers", mock.Anything, BestSharersLimit).
					Return([]*domain.BestSharer{}, nil)
			},
		},
		{
			name:        "reviewing yourself is rejected",
			reviewerID:  1,
			revieweeID:  1,
			score:       5,
			setupMock:   func(reviews *MockReviewRepository, users *MockUserRepository) {},
			expectedErr: domain.ErrSelfReview.Error(),
		},
		{
			name:        "score below range",
			reviewerID:  1,
			revieweeID:  2,
			score:       0,
			setupMock:   func(reviews *MockReviewRepository, users *MockUserRepository) {},
			expectedErr: "Score must be between 1 and 5",
		},
		{
			name:        "score above range",
			reviewerID:  1,
			revieweeID:  2,
			score:       6,
			setupMock:   func(reviews *MockReviewRepository, users *MockUserRepository) {},
			expectedErr: "Score must be between 1 and 5",
		},
		{
			name:       "second review of the same user is rejected",
			reviewerID: 1,
			revieweeID: 2,
			score:      4,
			setupMock: func(reviews *MockReviewRepository, users *MockUserRepository) {
				users.On("GetByID", mock.Anything, 1).Return(&domain.User{ID: 1}, nil)
				users.On("GetByID", mock.Anything, 2).Return(&domain.User{ID: 2}, nil)
				reviews.On("GetByPair", mock.Anything, 1, 2).
					Return(&domain.Review{ID: 3, ReviewerID: 1, RevieweeID: 2, Score: 5}, nil)
			},
			expectedErr: domain.ErrReviewExists.Error(),
		},
		{
			name:       "reviewee does not exist",
			reviewerID: 1,
			revieweeID: 42,
			score:      4,
			setupMock: func(reviews *MockReviewRepository, users *MockUserRepository) {
				users.On("GetByID", mock.Anything, 1).Return(&domain.User{ID: 1}, nil)
				users.On("GetByID", mock.Anything, 42).Return(nil, domain.ErrUserNotFound)
			},
			expectedErr: domain.ErrUserNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := new(MockReviewRepository)
			users := new(MockUserRepository)
			tt.setupMock(reviews, users)
			uc := NewReviewUseCase(reviews, users, noCache())

			review, err := uc.AddReview(context.Background(), tt.reviewerID, tt.revieweeID, tt.score, "great session")

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				assert.Nil(t, review)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.score, review.Score)
				assert.Equal(t, tt.revieweeID, review.RevieweeID)
			}
			reviews.AssertExpectations(t)
			users.AssertExpectations(t)
		})
	}
}

func TestReviewUseCase_UpdateReview(t *testing.T) {
	stored := func() *domain.Review {
		return &domain.Review{ID: 3, ReviewerID: 1, RevieweeID: 2, Score: 5}
	}
	three := 3

	t.Run("only the reviewer may update", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		reviews.On("GetByID", mock.Anything, 3).Return(stored(), nil)
		uc := NewReviewUseCase(reviews, new(MockUserRepository), noCache())

		_, err := uc.UpdateReview(context.Background(), 3, 2, &three, "")
		assert.ErrorIs(t, err, domain.ErrReviewForbidden)
		reviews.AssertExpectations(t)
	})

	t.Run("score update rebuilds the leaderboard", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		reviews.On("GetByID", mock.Anything, 3).Return(stored(), nil)
		reviews.On("Update", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)
		reviews.On("RecomputeBestSharers", mock.Anything).Return(nil)
		reviews.On("TopBestSharers", mock.Anything, BestSharersLimit).
			Return([]*domain.BestSharer{}, nil)
		uc := NewReviewUseCase(reviews, new(MockUserRepository), noCache())

		review, err := uc.UpdateReview(context.Background(), 3, 1, &three, "")
		assert.NoError(t, err)
		assert.Equal(t, 3, review.Score)
		reviews.AssertExpectations(t)
	})

	t.Run("out-of-range score is rejected", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		reviews.On("GetByID", mock.Anything, 3).Return(stored(), nil)
		uc := NewReviewUseCase(reviews, new(MockUserRepository), noCache())

		ten := 10
		_, err := uc.UpdateReview(context.Background(), 3, 1, &ten, "")
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		reviews.AssertExpectations(t)
	})
}

func TestReviewUseCase_DeleteReview(t *testing.T) {
	reviews := new(MockReviewRepository)
	// scoped to the reviewer: anyone else just gets not-found
	reviews.On("DeleteByIDAndReviewer", mock.Anything, 3, 2).Return(domain.ErrReviewNotFound)
	reviews.On("DeleteByIDAndReviewer", mock.Anything, 3, 1).Return(nil)
	reviews.On("RecomputeBestSharers", mock.Anything).Return(nil)
	reviews.On("TopBestSharers", mock.Anything, BestSharersLimit).
		Return([]*domain.BestSharer{}, nil)
	uc := NewReviewUseCase(reviews, new(MockUserRepository), noCache())

	err := uc.DeleteReview(context.Background(), 3, 2)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)

	err = uc.DeleteReview(context.Background(), 3, 1)
	assert.NoError(t, err)
	reviews.AssertExpectations(t)
}

func TestReviewUseCase_ListReviewsReceived(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("ListByReviewee", mock.Anything, 7).Return([]*domain.Review{}, nil)
	reviews.On("ListByReviewee", mock.Anything, 2).
		Return([]*domain.Review{{ID: 3, ReviewerID: 1, RevieweeID: 2, Score: 5}}, nil)
	uc := NewReviewUseCase(reviews, new(MockUserRepository), noCache())

	_, err := uc.ListReviewsReceived(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNoReviewsFound)

	got, err := uc.ListReviewsReceived(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	reviews.AssertExpectations(t)
}

func TestReviewUseCase_BestSharers(t *testing.T) {
	name := func(s string) *string { return &s }

	t.Run("falls back to the table and reflects the latest scores", func(t *testing.T) {
		// user 2 rated 5 by user 1 and 3 by user 3: average 4.0 on top
		board := []*domain.BestSharer{
			{User: domain.User{ID: 2, Name: name("Bea")}, MediaAverage: 4.0},
			{User: domain.User{ID: 5, Name: name("Dan")}, MediaAverage: 3.5},
		}
		reviews := new(MockReviewRepository)
		reviews.On("TopBestSharers", mock.Anything, BestSharersLimit).Return(board, nil)
		uc := NewReviewUseCase(reviews, new(MockUserRepository), noCache())

		got, err := uc.BestSharers(context.Background())
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 2, got[0].ID)
		assert.InDelta(t, 4.0, got[0].MediaAverage, 1e-9)
		reviews.AssertExpectations(t)
	})

	t.Run("empty snapshot with registered users is rebuilt, not a 404", func(t *testing.T) {
		// fresh deployment: two users signed up, nobody reviewed anyone yet
		board := []*domain.BestSharer{
			{User: domain.User{ID: 1, Name: name("Ana")}, MediaAverage: 0},
			{User: domain.User{ID: 2, Name: name("Bea")}, MediaAverage: 0},
		}
		reviews := new(MockReviewRepository)
		reviews.On("TopBestSharers", mock.Anything, BestSharersLimit).
			Return([]*domain.BestSharer{}, nil).Once()
		reviews.On("RecomputeBestSharers", mock.Anything).Return(nil).Once()
		reviews.On("TopBestSharers", mock.Anything, BestSharersLimit).
			Return(board, nil).Once()
		uc := NewReviewUseCase(reviews, new(MockUserRepository), noCache())

		got, err := uc.BestSharers(context.Background())
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Zero(t, got[0].MediaAverage)
		reviews.AssertExpectations(t)
	})

	t.Run("no users at all is an error", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		reviews.On("TopBestSharers", mock.Anything, BestSharersLimit).
			Return([]*domain.BestSharer{}, nil).Twice()
		reviews.On("RecomputeBestSharers", mock.Anything).Return(nil).Once()
		uc := NewReviewUseCase(reviews, new(MockUserRepository), noCache())

		_, err := uc.BestSharers(context.Background())
		assert.ErrorIs(t, err, domain.ErrNoUsersFound)
		reviews.AssertExpectations(t)
	})
}
