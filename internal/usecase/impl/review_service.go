package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create rates a business account. Customer callers only, never themselves,
// at most once per business. The application-level pre-check is backed by
// the storage unique index, so a concurrent duplicate still comes back as
// the same conflict error.
func (srv *reviewService) Create(ctx context.Context, caller usecase.Identity, input usecase.CreateReviewInput) (*usecase.ReviewOutput, error) {
	if !caller.IsCustomer() {
		srv.log(ctx).Warn("Review creation rejected for non-customer caller", slog.Any("callerID", caller.AccountID))

		return nil, errors.Wrap(domainerrors.ErrNotCustomer, "review creation rejected")
	}

	if input.BusinessUserID == caller.AccountID {
		return nil, errors.Wrap(domainerrors.ErrSelfReview, "review creation rejected")
	}

	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, errors.Wrap(domainerrors.ErrInvalidRating, "review creation rejected")
	}

	review := &entity.Review{
		BusinessUserID: input.BusinessUserID,
		ReviewerID:     caller.AccountID,
		Rating:         input.Rating,
		Description:    input.Description,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		reviewRepo := repoFactory.ReviewRepo()

		ratee, err := userRepo.FindByID(ctx, input.BusinessUserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "business account does not exist")
			}

			return errors.Wrap(err, "failed to find business account")
		}
		if !ratee.IsBusiness() {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("reviews can only target business accounts"), "review creation rejected")
		}

		_, err = reviewRepo.FindByReviewerAndBusiness(ctx, caller.AccountID, input.BusinessUserID)
		if err == nil {
			return errors.Wrap(domainerrors.ErrDuplicateReview, "review creation rejected")
		}
		if !errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(err, "failed to check for existing review")
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return errors.Wrap(domainerrors.ErrDuplicateReview, "review creation rejected")
			}

			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Review creation failed", slog.Any("callerID", caller.AccountID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Review created", slog.Any("reviewID", review.ID), slog.Any("businessUserID", input.BusinessUserID))

	return &usecase.ReviewOutput{Review: review}, nil
}

// List returns reviews matching the optional filters.
func (srv *reviewService) List(ctx context.Context, input usecase.ListReviewsInput) (*usecase.ReviewListOutput, error) {
	query := input.Query

	switch query.SortField {
	case "", repository.ReviewSortUpdatedAt, repository.ReviewSortRating:
	default:
		return nil, errors.Wrap(domainerrors.ErrInvalidFilter.WithDetails("ordering must be rating or updated_at"), "review listing rejected")
	}

	reviews, err := srv.reviewRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ReviewListOutput{Reviews: reviews}, nil
}

// Get returns a single review.
func (srv *reviewService) Get(ctx context.Context, id uuid.UUID) (*usecase.ReviewOutput, error) {
	review, err := srv.findReview(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.ReviewOutput{Review: review}, nil
}

// Update edits a review. Only the original reviewer may call.
func (srv *reviewService) Update(ctx context.Context, caller usecase.Identity, id uuid.UUID, input usecase.UpdateReviewInput) (*usecase.ReviewOutput, error) {
	review, err := srv.findReview(ctx, id)
	if err != nil {
		return nil, err
	}

	if review.ReviewerID != caller.AccountID {
		srv.log(ctx).Warn("Review update rejected for non-author", slog.Any("reviewID", id), slog.Any("callerID", caller.AccountID))

		return nil, errors.Wrap(domainerrors.ErrNotOwner, "review belongs to another account")
	}

	if input.Rating != nil {
		if *input.Rating < entity.MinRating || *input.Rating > entity.MaxRating {
			return nil, errors.Wrap(domainerrors.ErrInvalidRating, "review update rejected")
		}
		review.Rating = *input.Rating
	}
	if input.Description != nil {
		review.Description = *input.Description
	}

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return &usecase.ReviewOutput{Review: review}, nil
}

// Delete removes a review. Only the original reviewer may call.
func (srv *reviewService) Delete(ctx context.Context, caller usecase.Identity, id uuid.UUID) error {
	review, err := srv.findReview(ctx, id)
	if err != nil {
		return err
	}

	if review.ReviewerID != caller.AccountID {
		srv.log(ctx).Warn("Review delete rejected for non-author", slog.Any("reviewID", id), slog.Any("callerID", caller.AccountID))

		return errors.Wrap(domainerrors.ErrNotOwner, "review belongs to another account")
	}

	if err := srv.reviewRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

func (srv *reviewService) findReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "review does not exist")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}
