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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service    usecase.ProfileUsecase
	userRepo   *mockRepo.MockUserRepository
	assetStore *mockSvc.MockAssetStore
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	assetStore := mockSvc.NewMockAssetStore(t)

	service := NewProfileService(ProfileServiceParams{
		UserRepo:   userRepo,
		AssetStore: assetStore,
		Logger:     newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		assetStore: assetStore,
	}
}

func testUserWithProfile(id uuid.UUID, profileType entity.ProfileType) *entity.User {
	return &entity.User{
		ID:        id,
		Username:  "max",
		FirstName: "Max",
		LastName:  "Muster",
		Email:     "max@business.de",
		Profile: &entity.UserProfile{
			UserID:   id,
			Type:     profileType,
			Location: "Berlin",
		},
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, accountID).
		Return(testUserWithProfile(accountID, entity.ProfileTypeBusiness), nil)

	output, err := fx.service.GetProfile(ctx, accountID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, accountID, output.User.ID)
	assert.Equal(t, entity.ProfileTypeBusiness, output.User.Profile.Type)
}

func TestProfileService_GetProfile_UnknownAccount(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetProfile(ctx, accountID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()
	caller := usecase.Identity{AccountID: accountID, ProfileType: entity.ProfileTypeBusiness}

	fx.userRepo.EXPECT().FindByID(ctx, accountID).
		Return(testUserWithProfile(accountID, entity.ProfileTypeBusiness), nil)

	location := "Hamburg"
	tel := "040 123456"
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "Hamburg", user.Profile.Location)
			assert.Equal(t, "040 123456", user.Profile.Tel)
			// Untouched fields hold their previous values.
			assert.Equal(t, "Max", user.FirstName)
		}).
		Return(nil)

	output, err := fx.service.UpdateProfile(ctx, caller, accountID, usecase.UpdateProfileInput{
		Location: &location,
		Tel:      &tel,
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "Hamburg", output.User.Profile.Location)
}

func TestProfileService_UpdateProfile_RejectsOtherAccount(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	location := "Hamburg"
	output, err := fx.service.UpdateProfile(ctx, businessCaller(), uuid.New(), usecase.UpdateProfileInput{
		Location: &location,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestProfileService_UploadAvatar_ReplacesPrevious(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	caller := businessCaller()

	user := testUserWithProfile(caller.AccountID, entity.ProfileTypeBusiness)
	user.Profile.File = "profile_pictures/old.png"

	fx.userRepo.EXPECT().FindByID(ctx, caller.AccountID).Return(user, nil)
	fx.assetStore.EXPECT().
		Save(ctx, "profile_pictures", "new.png", []byte("png")).
		Return("profile_pictures/new.png", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Equal(t, "profile_pictures/new.png", updated.Profile.File)
		}).
		Return(nil)
	fx.assetStore.EXPECT().Delete(ctx, "profile_pictures/old.png").Return(nil)

	output, err := fx.service.UploadAvatar(ctx, caller, usecase.UploadAvatarInput{
		Filename: "new.png",
		Data:     []byte("png"),
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "profile_pictures/new.png", output.User.Profile.File)
}

func TestProfileService_UploadAvatar_RejectsEmptyFile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	output, err := fx.service.UploadAvatar(ctx, customerCaller(), usecase.UploadAvatarInput{
		Filename: "avatar.png",
		Data:     nil,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_UploadAvatar_KeepsProfileWhenCleanupFails(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	caller := customerCaller()

	user := testUserWithProfile(caller.AccountID, entity.ProfileTypeCustomer)
	user.Profile.File = "profile_pictures/old.png"

	fx.userRepo.EXPECT().FindByID(ctx, caller.AccountID).Return(user, nil)
	fx.assetStore.EXPECT().
		Save(ctx, "profile_pictures", "new.png", []byte("png")).
		Return("profile_pictures/new.png", nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.assetStore.EXPECT().Delete(ctx, "profile_pictures/old.png").Return(assert.AnError)

	output, err := fx.service.UploadAvatar(ctx, caller, usecase.UploadAvatarInput{
		Filename: "new.png",
		Data:     []byte("png"),
	})

	// Orphaning the old blob is tolerated; the upload itself succeeds.
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "profile_pictures/new.png", output.User.Profile.File)
}

func TestProfileService_ListByType_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	users := []*entity.User{
		testUserWithProfile(uuid.New(), entity.ProfileTypeCustomer),
		testUserWithProfile(uuid.New(), entity.ProfileTypeCustomer),
	}

	fx.userRepo.EXPECT().ListByType(ctx, entity.ProfileTypeCustomer).Return(users, nil)

	listed, err := fx.service.ListByType(ctx, entity.ProfileTypeCustomer)

	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestProfileService_ListByType_RejectsUnknownType(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	listed, err := fx.service.ListByType(ctx, entity.ProfileType("admin"))

	require.Error(t, err)
	assert.Nil(t, listed)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidProfileType)
}
