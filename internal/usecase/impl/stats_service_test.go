package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statsServiceFixtures holds all test dependencies for stats service tests.
type statsServiceFixtures struct {
	service    usecase.StatsUsecase
	userRepo   *mockRepo.MockUserRepository
	offerRepo  *mockRepo.MockOfferRepository
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	service := NewStatsService(StatsServiceParams{
		UserRepo:   userRepo,
		OfferRepo:  offerRepo,
		ReviewRepo: reviewRepo,
		Logger:     newDiscardLogger(),
	})

	return statsServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		offerRepo:  offerRepo,
		reviewRepo: reviewRepo,
	}
}

func TestStatsService_BaseInfo_RoundsAverageToOneDecimal(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	fx.reviewRepo.EXPECT().Count(ctx).Return(int64(3), nil)
	fx.reviewRepo.EXPECT().AverageRating(ctx).Return(4.666666, nil)
	fx.userRepo.EXPECT().CountByType(ctx, entity.ProfileTypeBusiness).Return(int64(12), nil)
	fx.offerRepo.EXPECT().Count(ctx).Return(int64(40), nil)

	output, err := fx.service.BaseInfo(ctx)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(3), output.ReviewCount)
	assert.Equal(t, 4.7, output.AverageRating)
	assert.Equal(t, int64(12), output.BusinessProfileCount)
	assert.Equal(t, int64(40), output.OfferCount)
}

func TestStatsService_BaseInfo_ZeroReviews(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	// AverageRating must not be queried when no reviews exist.
	fx.reviewRepo.EXPECT().Count(ctx).Return(int64(0), nil)
	fx.userRepo.EXPECT().CountByType(ctx, entity.ProfileTypeBusiness).Return(int64(0), nil)
	fx.offerRepo.EXPECT().Count(ctx).Return(int64(0), nil)

	output, err := fx.service.BaseInfo(ctx)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(0), output.ReviewCount)
	assert.Equal(t, 0.0, output.AverageRating)
}

func TestStatsService_BaseInfo_CountFailure(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	fx.reviewRepo.EXPECT().Count(ctx).Return(int64(0), assert.AnError)

	output, err := fx.service.BaseInfo(ctx)

	require.Error(t, err)
	assert.Nil(t, output)
}
