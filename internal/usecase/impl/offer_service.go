package impl

import (
	"context"
	"fmt"
	"log/slog"

	"bazaar/config"
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

// offerImagePrefix is the asset store folder for offer images.
const offerImagePrefix = "offer_images"

// offerService implements the OfferUsecase interface.
type offerService struct {
	txManager       repository.TransactionManager
	offerRepo       repository.OfferRepository
	assetStore      service.AssetStore
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OfferRepo  repository.OfferRepository
	AssetStore service.AssetStore
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	defaultPageSize := 6
	maxPageSize := 100
	if params.Config != nil && params.Config.Pagination != nil {
		defaultPageSize = params.Config.Pagination.DefaultPageSize
		maxPageSize = params.Config.Pagination.MaxPageSize
	}

	return &offerService{
		txManager:       params.TxManager,
		offerRepo:       params.OfferRepo,
		assetStore:      params.AssetStore,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of offers matching the query. Open to anyone.
func (srv *offerService) List(ctx context.Context, input usecase.ListOffersInput) (*usecase.OfferListOutput, error) {
	query := input.Query

	switch query.SortField {
	case "", repository.OfferSortUpdatedAt, repository.OfferSortMinPrice, repository.OfferSortMinDeliveryTime:
	default:
		return nil, errors.Wrap(domainerrors.ErrInvalidFilter.WithDetails(fmt.Sprintf("unknown ordering %q", query.SortField)), "offer listing rejected")
	}

	if query.PageSize <= 0 {
		query.PageSize = srv.defaultPageSize
	}
	if query.PageSize > srv.maxPageSize {
		query.PageSize = srv.maxPageSize
	}
	if query.Page < 1 {
		query.Page = 1
	}

	offers, total, err := srv.offerRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return &usecase.OfferListOutput{Offers: offers, Total: total}, nil
}

// Create publishes a new offer with its full tier set. Business accounts only.
func (srv *offerService) Create(ctx context.Context, caller usecase.Identity, input usecase.CreateOfferInput) (*usecase.OfferOutput, error) {
	if !caller.IsBusiness() {
		srv.log(ctx).Warn("Offer creation rejected for non-business caller", slog.Any("callerID", caller.AccountID))

		return nil, errors.Wrap(domainerrors.ErrNotBusiness, "offer creation rejected")
	}

	if len(input.Details) < entity.MinOfferDetails {
		return nil, errors.Wrap(domainerrors.ErrTooFewDetails, "offer creation rejected")
	}

	offer, err := buildNewOfferEntity(caller.AccountID, input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OfferRepo().Create(ctx, offer)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create offer", slog.Any("callerID", caller.AccountID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Offer created", slog.Any("offerID", offer.ID), slog.Any("ownerID", caller.AccountID))

	return &usecase.OfferOutput{Offer: offer}, nil
}

func buildNewOfferEntity(ownerID uuid.UUID, input usecase.CreateOfferInput) (*entity.Offer, error) {
	offerType := entity.OfferTier(input.OfferType)
	if input.OfferType != "" && !offerType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("offer_type must be basic, standard or premium"), "offer creation rejected")
	}
	if offerType == "" {
		offerType = entity.OfferTierBasic
	}

	details := make([]*entity.OfferDetail, 0, len(input.Details))
	for _, detailInput := range input.Details {
		detail, err := buildNewDetailEntity(detailInput)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return &entity.Offer{
		UserID:      ownerID,
		Title:       input.Title,
		Image:       input.Image,
		Description: input.Description,
		OfferType:   offerType,
		Details:     details,
	}, nil
}

func buildNewDetailEntity(input usecase.OfferDetailInput) (*entity.OfferDetail, error) {
	tier := entity.OfferTier(input.OfferType)
	if !tier.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("detail offer_type %q is not a valid tier", input.OfferType)), "offer creation rejected")
	}
	if input.Revisions < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("revisions must not be negative"), "offer creation rejected")
	}
	if input.DeliveryTimeInDays < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("delivery_time_in_days must not be negative"), "offer creation rejected")
	}
	if input.Price < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("price must not be negative"), "offer creation rejected")
	}

	features := input.Features
	if features == nil {
		features = []string{}
	}

	return &entity.OfferDetail{
		Title:              input.Title,
		Revisions:          input.Revisions,
		DeliveryTimeInDays: input.DeliveryTimeInDays,
		Price:              input.Price,
		Features:           features,
		OfferType:          tier,
	}, nil
}

// Get returns the offer with details and owner loaded.
func (srv *offerService) Get(ctx context.Context, id uuid.UUID) (*usecase.OfferOutput, error) {
	offer, err := srv.findOffer(ctx, srv.offerRepo, id)
	if err != nil {
		return nil, err
	}

	return &usecase.OfferOutput{Offer: offer}, nil
}

// Patch applies a partial update. Detail entries select an existing tier by
// tag; a tag that matches no tier is a validation error, and no new tiers
// are ever created through patch.
func (srv *offerService) Patch(ctx context.Context, caller usecase.Identity, id uuid.UUID, input usecase.PatchOfferInput) (*usecase.OfferOutput, error) {
	var patched *entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		offer, err := srv.findOffer(ctx, offerRepo, id)
		if err != nil {
			return err
		}

		if offer.UserID != caller.AccountID {
			srv.log(ctx).Warn("Offer patch rejected for non-owner", slog.Any("offerID", id), slog.Any("callerID", caller.AccountID))

			return errors.Wrap(domainerrors.ErrNotOwner, "offer belongs to another account")
		}

		if input.Title != nil {
			offer.Title = *input.Title
		}
		if input.Description != nil {
			offer.Description = *input.Description
		}
		if input.Image != nil {
			offer.Image = *input.Image
		}

		if err := offerRepo.Update(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to update offer fields")
		}

		for _, detailInput := range input.Details {
			if err := patchDetailByTier(ctx, offerRepo, offer, detailInput); err != nil {
				return err
			}
		}

		patched = offer

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.OfferOutput{Offer: patched}, nil
}

func patchDetailByTier(ctx context.Context, offerRepo repository.OfferRepository, offer *entity.Offer, input usecase.PatchOfferDetailInput) error {
	detail := offer.DetailByTier(entity.OfferTier(input.OfferType))
	if detail == nil {
		return errors.Wrap(domainerrors.ErrUnknownDetailTier.WithDetails(fmt.Sprintf("offer has no %q tier", input.OfferType)), "offer patch rejected")
	}

	if err := applyDetailUpdate(detail, input); err != nil {
		return err
	}

	if err := offerRepo.UpdateDetail(ctx, detail); err != nil {
		return errors.Wrap(err, "failed to update offer detail")
	}

	return nil
}

// applyDetailUpdate holds patched tiers to the same bounds as creation, so
// the min_price aggregate and future price snapshots stay well-formed.
func applyDetailUpdate(detail *entity.OfferDetail, input usecase.PatchOfferDetailInput) error {
	if input.Revisions != nil && *input.Revisions < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("revisions must not be negative"), "detail patch rejected")
	}
	if input.DeliveryTimeInDays != nil && *input.DeliveryTimeInDays < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("delivery_time_in_days must not be negative"), "detail patch rejected")
	}
	if input.Price != nil && *input.Price < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("price must not be negative"), "detail patch rejected")
	}

	if input.Title != nil {
		detail.Title = *input.Title
	}
	if input.Revisions != nil {
		detail.Revisions = *input.Revisions
	}
	if input.DeliveryTimeInDays != nil {
		detail.DeliveryTimeInDays = *input.DeliveryTimeInDays
	}
	if input.Price != nil {
		detail.Price = *input.Price
	}
	if input.Features != nil {
		detail.Features = input.Features
	}

	return nil
}

// Delete removes an offer and all its tiers. Owner only.
func (srv *offerService) Delete(ctx context.Context, caller usecase.Identity, id uuid.UUID) error {
	offer, err := srv.findOffer(ctx, srv.offerRepo, id)
	if err != nil {
		return err
	}

	if offer.UserID != caller.AccountID {
		srv.log(ctx).Warn("Offer delete rejected for non-owner", slog.Any("offerID", id), slog.Any("callerID", caller.AccountID))

		return errors.Wrap(domainerrors.ErrNotOwner, "offer belongs to another account")
	}

	if err := srv.offerRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete offer")
	}

	if offer.Image != "" {
		if err := srv.assetStore.Delete(ctx, offer.Image); err != nil {
			srv.log(ctx).Warn("Failed to delete offer image", slog.String("ref", offer.Image), slog.Any("error", err))
		}
	}

	srv.log(ctx).Debug("Offer deleted", slog.Any("offerID", id))

	return nil
}

// GetDetail returns a single pricing tier.
func (srv *offerService) GetDetail(ctx context.Context, id uuid.UUID) (*usecase.OfferDetailOutput, error) {
	detail, err := srv.findDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.OfferDetailOutput{Detail: detail}, nil
}

// PatchDetail updates one tier. Ownership is resolved through the parent offer.
func (srv *offerService) PatchDetail(ctx context.Context, caller usecase.Identity, id uuid.UUID, input usecase.PatchOfferDetailInput) (*usecase.OfferDetailOutput, error) {
	var patched *entity.OfferDetail

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		detail, err := offerRepo.FindDetailByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOfferDetailNotFound) {
				return errors.Wrap(domainerrors.ErrOfferDetailNotFound, "offer detail does not exist")
			}

			return errors.Wrap(err, "failed to find offer detail")
		}

		if err := srv.authorizeDetailOwner(ctx, offerRepo, caller, detail); err != nil {
			return err
		}

		if err := applyDetailUpdate(detail, input); err != nil {
			return err
		}

		if err := offerRepo.UpdateDetail(ctx, detail); err != nil {
			return errors.Wrap(err, "failed to update offer detail")
		}

		patched = detail

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.OfferDetailOutput{Detail: patched}, nil
}

// DeleteDetail removes one tier. Ownership is resolved through the parent offer.
func (srv *offerService) DeleteDetail(ctx context.Context, caller usecase.Identity, id uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		detail, err := offerRepo.FindDetailByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOfferDetailNotFound) {
				return errors.Wrap(domainerrors.ErrOfferDetailNotFound, "offer detail does not exist")
			}

			return errors.Wrap(err, "failed to find offer detail")
		}

		if err := srv.authorizeDetailOwner(ctx, offerRepo, caller, detail); err != nil {
			return err
		}

		if err := offerRepo.DeleteDetail(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete offer detail")
		}

		return nil
	})
}

// UploadImage stores offer image bytes for a business caller.
func (srv *offerService) UploadImage(ctx context.Context, caller usecase.Identity, input usecase.UploadOfferImageInput) (*usecase.UploadOfferImageOutput, error) {
	if !caller.IsBusiness() {
		return nil, errors.Wrap(domainerrors.ErrNotBusiness, "offer image upload rejected")
	}
	if len(input.Data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("file is empty"), "offer image upload rejected")
	}

	ref, err := srv.assetStore.Save(ctx, offerImagePrefix, input.Filename, input.Data)
	if err != nil {
		srv.log(ctx).Error("Failed to store offer image", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store offer image")
	}

	return &usecase.UploadOfferImageOutput{Image: ref}, nil
}

func (srv *offerService) authorizeDetailOwner(ctx context.Context, offerRepo repository.OfferRepository, caller usecase.Identity, detail *entity.OfferDetail) error {
	offer, err := srv.findOffer(ctx, offerRepo, detail.OfferID)
	if err != nil {
		return err
	}

	if offer.UserID != caller.AccountID {
		srv.log(ctx).Warn("Offer detail mutation rejected for non-owner", slog.Any("detailID", detail.ID), slog.Any("callerID", caller.AccountID))

		return errors.Wrap(domainerrors.ErrNotOwner, "offer belongs to another account")
	}

	return nil
}

func (srv *offerService) findOffer(ctx context.Context, offerRepo repository.OfferRepository, id uuid.UUID) (*entity.Offer, error) {
	offer, err := offerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOfferNotFound, "offer does not exist")
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	return offer, nil
}

func (srv *offerService) findDetail(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	detail, err := srv.offerRepo.FindDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferDetailNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOfferDetailNotFound, "offer detail does not exist")
		}

		return nil, errors.Wrap(err, "failed to find offer detail")
	}

	return detail, nil
}
