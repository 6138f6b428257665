package usecase

import "context"

// BaseInfoOutput is the public statistics snapshot, computed live on every call.
type BaseInfoOutput struct {
	ReviewCount          int64
	AverageRating        float64 // Rounded to 1 decimal; 0.0 when no reviews exist.
	BusinessProfileCount int64
	OfferCount           int64
}

// StatsUsecase defines the interface for the unauthenticated reporting endpoint.
type StatsUsecase interface {
	BaseInfo(ctx context.Context) (*BaseInfoOutput, error)
}
