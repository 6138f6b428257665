package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewReviewService(ReviewServiceParams{
		TxManager:  txManager,
		ReviewRepo: reviewRepo,
		UserRepo:   userRepo,
		Logger:     newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:    service,
		txManager:  txManager,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

func testBusinessUser(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:      id,
		Profile: &entity.UserProfile{UserID: id, Type: entity.ProfileTypeBusiness},
	}
}

func TestReviewService_Create_Success(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	caller := customerCaller()
	businessID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			userRepo := mockRepo.NewMockUserRepository(t)
			reviewRepo := mockRepo.NewMockReviewRepository(t)

			userRepo.EXPECT().FindByID(ctx, businessID).Return(testBusinessUser(businessID), nil)
			reviewRepo.EXPECT().
				FindByReviewerAndBusiness(ctx, caller.AccountID, businessID).
				Return(nil, repository.ErrReviewNotFound)
			reviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				Run(func(ctx context.Context, review *entity.Review) {
					assert.Equal(t, businessID, review.BusinessUserID)
					assert.Equal(t, caller.AccountID, review.ReviewerID)
					assert.Equal(t, 4, review.Rating)
					assert.Equal(t, "Fast and reliable", review.Description)
				}).
				Return(nil)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().UserRepo().Return(userRepo)
			mockFactory.EXPECT().ReviewRepo().Return(reviewRepo)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, caller, usecase.CreateReviewInput{
		BusinessUserID: businessID,
		Rating:         4,
		Description:    "Fast and reliable",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, 4, output.Review.Rating)
}

func TestReviewService_Create_RejectsBusinessCaller(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	output, err := fx.service.Create(ctx, businessCaller(), usecase.CreateReviewInput{
		BusinessUserID: uuid.New(),
		Rating:         3,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotCustomer)
}

func TestReviewService_Create_RejectsSelfReview(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	caller := customerCaller()

	output, err := fx.service.Create(ctx, caller, usecase.CreateReviewInput{
		BusinessUserID: caller.AccountID,
		Rating:         5,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSelfReview)
}

func TestReviewService_Create_RejectsOutOfRangeRating(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		output, err := fx.service.Create(ctx, customerCaller(), usecase.CreateReviewInput{
			BusinessUserID: uuid.New(),
			Rating:         rating,
		})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	}
}

func TestReviewService_Create_RejectsCustomerRatee(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	caller := customerCaller()
	rateeID := uuid.New()

	ratee := &entity.User{
		ID:      rateeID,
		Profile: &entity.UserProfile{UserID: rateeID, Type: entity.ProfileTypeCustomer},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			userRepo := mockRepo.NewMockUserRepository(t)
			reviewRepo := mockRepo.NewMockReviewRepository(t)

			userRepo.EXPECT().FindByID(ctx, rateeID).Return(ratee, nil)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().UserRepo().Return(userRepo)
			mockFactory.EXPECT().ReviewRepo().Return(reviewRepo)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, caller, usecase.CreateReviewInput{
		BusinessUserID: rateeID,
		Rating:         2,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_Create_RejectsDuplicate(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	caller := customerCaller()
	businessID := uuid.New()

	existing := &entity.Review{
		ID:             uuid.New(),
		BusinessUserID: businessID,
		ReviewerID:     caller.AccountID,
		Rating:         5,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			userRepo := mockRepo.NewMockUserRepository(t)
			reviewRepo := mockRepo.NewMockReviewRepository(t)

			userRepo.EXPECT().FindByID(ctx, businessID).Return(testBusinessUser(businessID), nil)
			reviewRepo.EXPECT().
				FindByReviewerAndBusiness(ctx, caller.AccountID, businessID).
				Return(existing, nil)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().UserRepo().Return(userRepo)
			mockFactory.EXPECT().ReviewRepo().Return(reviewRepo)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, caller, usecase.CreateReviewInput{
		BusinessUserID: businessID,
		Rating:         3,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestReviewService_Create_ConcurrentDuplicateSurfacesAsConflict(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	caller := customerCaller()
	businessID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			userRepo := mockRepo.NewMockUserRepository(t)
			reviewRepo := mockRepo.NewMockReviewRepository(t)

			userRepo.EXPECT().FindByID(ctx, businessID).Return(testBusinessUser(businessID), nil)
			reviewRepo.EXPECT().
				FindByReviewerAndBusiness(ctx, caller.AccountID, businessID).
				Return(nil, repository.ErrReviewNotFound)
			// The unique index trips when a concurrent create won the race.
			reviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				Return(repository.ErrDuplicateReview)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().UserRepo().Return(userRepo)
			mockFactory.EXPECT().ReviewRepo().Return(reviewRepo)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, caller, usecase.CreateReviewInput{
		BusinessUserID: businessID,
		Rating:         3,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestReviewService_List_Success(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	query := repository.ReviewListQuery{SortField: repository.ReviewSortRating, SortDescending: true}
	reviews := []*entity.Review{
		{ID: uuid.New(), Rating: 5},
		{ID: uuid.New(), Rating: 3},
	}

	fx.reviewRepo.EXPECT().List(ctx, query).Return(reviews, nil)

	output, err := fx.service.List(ctx, usecase.ListReviewsInput{Query: query})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Len(t, output.Reviews, 2)
}

func TestReviewService_List_RejectsUnknownOrdering(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	output, err := fx.service.List(ctx, usecase.ListReviewsInput{
		Query: repository.ReviewListQuery{SortField: "description"},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFilter)
}

func TestReviewService_Get_NotFound(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(nil, repository.ErrReviewNotFound)

	output, err := fx.service.Get(ctx, reviewID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_Update_Success(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	caller := customerCaller()

	review := &entity.Review{
		ID:          uuid.New(),
		ReviewerID:  caller.AccountID,
		Rating:      2,
		Description: "Slow delivery",
	}
	newRating := 4

	fx.reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
	fx.reviewRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(ctx context.Context, updated *entity.Review) {
			assert.Equal(t, 4, updated.Rating)
			assert.Equal(t, "Slow delivery", updated.Description)
		}).
		Return(nil)

	output, err := fx.service.Update(ctx, caller, review.ID, usecase.UpdateReviewInput{Rating: &newRating})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, 4, output.Review.Rating)
}

func TestReviewService_Update_RejectsNonAuthor(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	review := &entity.Review{ID: uuid.New(), ReviewerID: uuid.New(), Rating: 3}
	fx.reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)

	newRating := 1
	output, err := fx.service.Update(ctx, customerCaller(), review.ID, usecase.UpdateReviewInput{Rating: &newRating})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestReviewService_Update_RejectsOutOfRangeRating(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	caller := customerCaller()

	review := &entity.Review{ID: uuid.New(), ReviewerID: caller.AccountID, Rating: 3}
	fx.reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)

	newRating := 9
	output, err := fx.service.Update(ctx, caller, review.ID, usecase.UpdateReviewInput{Rating: &newRating})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
}

func TestReviewService_Delete_Success(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	caller := customerCaller()

	review := &entity.Review{ID: uuid.New(), ReviewerID: caller.AccountID, Rating: 3}
	fx.reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
	fx.reviewRepo.EXPECT().Delete(ctx, review.ID).Return(nil)

	err := fx.service.Delete(ctx, caller, review.ID)

	require.NoError(t, err)
}

func TestReviewService_Delete_RejectsNonAuthor(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	review := &entity.Review{ID: uuid.New(), ReviewerID: uuid.New(), Rating: 3}
	fx.reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)

	err := fx.service.Delete(ctx, customerCaller(), review.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}
