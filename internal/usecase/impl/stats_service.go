package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	userRepo   repository.UserRepository
	offerRepo  repository.OfferRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	OfferRepo  repository.OfferRepository
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		userRepo:   params.UserRepo,
		offerRepo:  params.OfferRepo,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BaseInfo aggregates the public statistics live against current state.
// Zero reviews yield an average of 0.0, not an error.
func (srv *statsService) BaseInfo(ctx context.Context) (*usecase.BaseInfoOutput, error) {
	reviewCount, err := srv.reviewRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count reviews")
	}

	averageRating := 0.0
	if reviewCount > 0 {
		averageRating, err = srv.reviewRepo.AverageRating(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to compute average rating")
		}
		averageRating = math.Round(averageRating*10) / 10
	}

	businessCount, err := srv.userRepo.CountByType(ctx, entity.ProfileTypeBusiness)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count business profiles")
	}

	offerCount, err := srv.offerRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count offers")
	}

	srv.log(ctx).Debug("Base info computed",
		slog.Int64("reviewCount", reviewCount),
		slog.Float64("averageRating", averageRating),
		slog.Int64("businessProfileCount", businessCount),
		slog.Int64("offerCount", offerCount),
	)

	return &usecase.BaseInfoOutput{
		ReviewCount:          reviewCount,
		AverageRating:        averageRating,
		BusinessProfileCount: businessCount,
		OfferCount:           offerCount,
	}, nil
}
