package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// avatarPrefix is the asset store folder for profile pictures.
const avatarPrefix = "profile_pictures"

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo   repository.UserRepository
	assetStore service.AssetStore
	logger     *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	AssetStore service.AssetStore
	Logger     *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:   params.UserRepo,
		assetStore: params.AssetStore,
		logger:     params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the profile of the given account.
func (srv *profileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.findUserWithProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &usecase.ProfileOutput{User: user}, nil
}

// UpdateProfile mutates the caller's own profile. The profile type, username
// and created_at never change after registration.
func (srv *profileService) UpdateProfile(ctx context.Context, caller usecase.Identity, accountID uuid.UUID, input usecase.UpdateProfileInput) (*usecase.ProfileOutput, error) {
	if caller.AccountID != accountID {
		srv.log(ctx).Warn("Profile update rejected for non-owner", slog.Any("callerID", caller.AccountID), slog.Any("accountID", accountID))

		return nil, errors.Wrap(domainerrors.ErrNotOwner, "profile belongs to another account")
	}

	user, err := srv.findUserWithProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	applyProfileUpdate(user, input)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("accountID", accountID))

	return &usecase.ProfileOutput{User: user}, nil
}

// UploadAvatar stores the picture bytes and attaches the reference to the
// caller's profile, replacing any previous avatar.
func (srv *profileService) UploadAvatar(ctx context.Context, caller usecase.Identity, input usecase.UploadAvatarInput) (*usecase.ProfileOutput, error) {
	if len(input.Data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("file is empty"), "avatar upload rejected")
	}

	user, err := srv.findUserWithProfile(ctx, caller.AccountID)
	if err != nil {
		return nil, err
	}

	ref, err := srv.assetStore.Save(ctx, avatarPrefix, input.Filename, input.Data)
	if err != nil {
		srv.log(ctx).Error("Failed to store avatar", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store avatar")
	}

	previous := user.Profile.File
	user.Profile.File = ref

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to attach avatar to profile")
	}

	if previous != "" && previous != ref {
		if err := srv.assetStore.Delete(ctx, previous); err != nil {
			// The profile already points at the new file; losing the old
			// blob only leaks storage, so log and move on.
			srv.log(ctx).Warn("Failed to delete previous avatar", slog.String("ref", previous), slog.Any("error", err))
		}
	}

	return &usecase.ProfileOutput{User: user}, nil
}

// ListByType returns all profiles of the given type.
func (srv *profileService) ListByType(ctx context.Context, profileType entity.ProfileType) ([]*entity.User, error) {
	if !profileType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidProfileType, "profile listing rejected")
	}

	users, err := srv.userRepo.ListByType(ctx, profileType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by type")
	}

	return users, nil
}

func (srv *profileService) findUserWithProfile(ctx context.Context, accountID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "account does not exist")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if user.Profile == nil {
		return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "account has no profile")
	}

	return user, nil
}

func applyProfileUpdate(user *entity.User, input usecase.UpdateProfileInput) {
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Location != nil {
		user.Profile.Location = *input.Location
	}
	if input.Tel != nil {
		user.Profile.Tel = *input.Tel
	}
	if input.Description != nil {
		user.Profile.Description = *input.Description
	}
	if input.WorkingHours != nil {
		user.Profile.WorkingHours = *input.WorkingHours
	}
	if input.File != nil {
		user.Profile.File = *input.File
	}
}
