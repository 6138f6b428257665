package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// offerServiceFixtures holds all test dependencies for offer service tests.
type offerServiceFixtures struct {
	service    usecase.OfferUsecase
	txManager  *mockRepo.MockTransactionManager
	offerRepo  *mockRepo.MockOfferRepository
	assetStore *mockSvc.MockAssetStore
}

func createTestOfferService(t *testing.T) offerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	assetStore := mockSvc.NewMockAssetStore(t)

	service := NewOfferService(OfferServiceParams{
		TxManager:  txManager,
		OfferRepo:  offerRepo,
		AssetStore: assetStore,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return offerServiceFixtures{
		service:    service,
		txManager:  txManager,
		offerRepo:  offerRepo,
		assetStore: assetStore,
	}
}

func businessCaller() usecase.Identity {
	return usecase.Identity{AccountID: uuid.New(), ProfileType: entity.ProfileTypeBusiness}
}

func customerCaller() usecase.Identity {
	return usecase.Identity{AccountID: uuid.New(), ProfileType: entity.ProfileTypeCustomer}
}

func validDetailInputs() []usecase.OfferDetailInput {
	return []usecase.OfferDetailInput{
		{Title: "Basic", Revisions: 1, DeliveryTimeInDays: 7, Price: 50, OfferType: "basic"},
		{Title: "Standard", Revisions: 3, DeliveryTimeInDays: 5, Price: 100, OfferType: "standard"},
		{Title: "Premium", Revisions: 5, DeliveryTimeInDays: 2, Price: 200, OfferType: "premium", Features: []string{"Logo", "Flyer"}},
	}
}

func TestOfferService_Create_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	caller := businessCaller()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)

			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockOfferRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Offer")).
				Run(func(ctx context.Context, offer *entity.Offer) {
					offer.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, caller, usecase.CreateOfferInput{
		Title:   "Website Design",
		Details: validDetailInputs(),
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, caller.AccountID, output.Offer.UserID)
	assert.Len(t, output.Offer.Details, 3)

	// Aggregates derive from the stored detail set.
	require.NotNil(t, output.Offer.MinPrice())
	assert.Equal(t, 50.0, *output.Offer.MinPrice())
	require.NotNil(t, output.Offer.MinDeliveryTime())
	assert.Equal(t, 2, *output.Offer.MinDeliveryTime())
}

func TestOfferService_Create_RejectsCustomer(t *testing.T) {
	fx := createTestOfferService(t)

	output, err := fx.service.Create(context.Background(), customerCaller(), usecase.CreateOfferInput{
		Title:   "Website Design",
		Details: validDetailInputs(),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotBusiness)
}

func TestOfferService_Create_RejectsTooFewDetails(t *testing.T) {
	fx := createTestOfferService(t)

	output, err := fx.service.Create(context.Background(), businessCaller(), usecase.CreateOfferInput{
		Title:   "Website Design",
		Details: validDetailInputs()[:2],
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTooFewDetails)
}

func TestOfferService_Create_RejectsUnknownTierTag(t *testing.T) {
	fx := createTestOfferService(t)

	details := validDetailInputs()
	details[1].OfferType = "deluxe"

	output, err := fx.service.Create(context.Background(), businessCaller(), usecase.CreateOfferInput{
		Title:   "Website Design",
		Details: details,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOfferService_List_DefaultsPageSize(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	fx.offerRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.OfferListQuery")).
		Run(func(ctx context.Context, query repository.OfferListQuery) {
			assert.Equal(t, 6, query.PageSize)
			assert.Equal(t, 1, query.Page)
		}).
		Return([]*entity.Offer{}, int64(0), nil)

	output, err := fx.service.List(ctx, usecase.ListOffersInput{})

	require.NoError(t, err)
	assert.Empty(t, output.Offers)
	assert.Zero(t, output.Total)
}

func TestOfferService_List_ClampsPageSize(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	fx.offerRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.OfferListQuery")).
		Run(func(ctx context.Context, query repository.OfferListQuery) {
			assert.Equal(t, 100, query.PageSize)
		}).
		Return([]*entity.Offer{}, int64(0), nil)

	_, err := fx.service.List(ctx, usecase.ListOffersInput{
		Query: repository.OfferListQuery{PageSize: 5000},
	})

	require.NoError(t, err)
}

func TestOfferService_List_RejectsUnknownOrdering(t *testing.T) {
	fx := createTestOfferService(t)

	output, err := fx.service.List(context.Background(), usecase.ListOffersInput{
		Query: repository.OfferListQuery{SortField: "price"},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFilter)
}

func TestOfferService_Patch_UpdatesExistingTier(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	caller := businessCaller()
	offerID := uuid.New()
	basic := &entity.OfferDetail{ID: uuid.New(), OfferID: offerID, Title: "Basic", Price: 50, OfferType: entity.OfferTierBasic}
	offer := &entity.Offer{
		ID:      offerID,
		UserID:  caller.AccountID,
		Title:   "Website Design",
		Details: []*entity.OfferDetail{basic},
	}

	newPrice := 75.0
	newTitle := "Refreshed Design"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)

			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockOfferRepo.EXPECT().FindByID(ctx, offerID).Return(offer, nil)
			mockOfferRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Offer")).
				Run(func(ctx context.Context, updated *entity.Offer) {
					assert.Equal(t, newTitle, updated.Title)
				}).
				Return(nil)
			mockOfferRepo.EXPECT().
				UpdateDetail(ctx, mock.AnythingOfType("*entity.OfferDetail")).
				Run(func(ctx context.Context, detail *entity.OfferDetail) {
					assert.Equal(t, basic.ID, detail.ID)
					assert.Equal(t, newPrice, detail.Price)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Patch(ctx, caller, offerID, usecase.PatchOfferInput{
		Title: &newTitle,
		Details: []usecase.PatchOfferDetailInput{
			{OfferType: "basic", Price: &newPrice},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, newPrice, output.Offer.Details[0].Price)
}

func TestOfferService_Patch_RejectsUnmatchedTierTag(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	caller := businessCaller()
	offerID := uuid.New()
	offer := &entity.Offer{
		ID:     offerID,
		UserID: caller.AccountID,
		Details: []*entity.OfferDetail{
			{ID: uuid.New(), OfferID: offerID, OfferType: entity.OfferTierBasic},
		},
	}

	newPrice := 75.0

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)

			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockOfferRepo.EXPECT().FindByID(ctx, offerID).Return(offer, nil)
			mockOfferRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Patch(ctx, caller, offerID, usecase.PatchOfferInput{
		Details: []usecase.PatchOfferDetailInput{
			{OfferType: "premium", Price: &newPrice},
		},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownDetailTier)
}

func TestOfferService_Patch_RejectsNonOwner(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	offerID := uuid.New()
	offer := &entity.Offer{ID: offerID, UserID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)

			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockOfferRepo.EXPECT().FindByID(ctx, offerID).Return(offer, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Patch(ctx, businessCaller(), offerID, usecase.PatchOfferInput{})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestOfferService_Delete_RejectsNonOwner(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	offerID := uuid.New()
	fx.offerRepo.EXPECT().FindByID(ctx, offerID).Return(&entity.Offer{ID: offerID, UserID: uuid.New()}, nil)

	err := fx.service.Delete(ctx, businessCaller(), offerID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestOfferService_Delete_RemovesStoredImage(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	caller := businessCaller()
	offerID := uuid.New()
	offer := &entity.Offer{ID: offerID, UserID: caller.AccountID, Image: "offer_images/banner.png"}

	fx.offerRepo.EXPECT().FindByID(ctx, offerID).Return(offer, nil)
	fx.offerRepo.EXPECT().Delete(ctx, offerID).Return(nil)
	fx.assetStore.EXPECT().Delete(ctx, "offer_images/banner.png").Return(nil)

	err := fx.service.Delete(ctx, caller, offerID)

	assert.NoError(t, err)
}

func TestOfferService_PatchDetail_ResolvesOwnershipThroughParent(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	offerID := uuid.New()
	detailID := uuid.New()
	detail := &entity.OfferDetail{ID: detailID, OfferID: offerID, Price: 50, OfferType: entity.OfferTierBasic}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)

			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockOfferRepo.EXPECT().FindDetailByID(ctx, detailID).Return(detail, nil)
			mockOfferRepo.EXPECT().FindByID(ctx, offerID).Return(&entity.Offer{ID: offerID, UserID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	newPrice := 99.0
	output, err := fx.service.PatchDetail(ctx, businessCaller(), detailID, usecase.PatchOfferDetailInput{Price: &newPrice})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestOfferService_PatchDetail_RejectsNegativePrice(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	caller := businessCaller()
	offerID := uuid.New()
	detailID := uuid.New()
	detail := &entity.OfferDetail{ID: detailID, OfferID: offerID, Price: 50, OfferType: entity.OfferTierBasic}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)

			// No UpdateDetail expectation: the patch must fail validation
			// before anything is written.
			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockOfferRepo.EXPECT().FindDetailByID(ctx, detailID).Return(detail, nil)
			mockOfferRepo.EXPECT().FindByID(ctx, offerID).Return(&entity.Offer{ID: offerID, UserID: caller.AccountID}, nil)

			return fn(mockFactory)
		})

	badPrice := -50.0
	output, err := fx.service.PatchDetail(ctx, caller, detailID, usecase.PatchOfferDetailInput{Price: &badPrice})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, 50.0, detail.Price)
}

func TestOfferService_Patch_RejectsNegativeTierFields(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	caller := businessCaller()
	offerID := uuid.New()
	basic := &entity.OfferDetail{ID: uuid.New(), OfferID: offerID, Revisions: 2, OfferType: entity.OfferTierBasic}
	offer := &entity.Offer{
		ID:      offerID,
		UserID:  caller.AccountID,
		Details: []*entity.OfferDetail{basic},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)

			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockOfferRepo.EXPECT().FindByID(ctx, offerID).Return(offer, nil)
			mockOfferRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)

			return fn(mockFactory)
		})

	badRevisions := -1
	output, err := fx.service.Patch(ctx, caller, offerID, usecase.PatchOfferInput{
		Details: []usecase.PatchOfferDetailInput{
			{OfferType: "basic", Revisions: &badRevisions},
		},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, 2, basic.Revisions)
}

func TestOfferService_UploadImage_RejectsCustomer(t *testing.T) {
	fx := createTestOfferService(t)

	output, err := fx.service.UploadImage(context.Background(), customerCaller(), usecase.UploadOfferImageInput{
		Filename: "banner.png",
		Data:     []byte("png"),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotBusiness)
}

func TestOfferService_UploadImage_StoresBytes(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	fx.assetStore.EXPECT().
		Save(ctx, "offer_images", "banner.png", []byte("png")).
		Return("offer_images/banner.png", nil)

	output, err := fx.service.UploadImage(ctx, businessCaller(), usecase.UploadOfferImageInput{
		Filename: "banner.png",
		Data:     []byte("png"),
	})

	require.NoError(t, err)
	assert.Equal(t, "offer_images/banner.png", output.Image)
}
