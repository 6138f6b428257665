package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for the review ledger.
var (
	ErrReviewNotFound = errors.New("review not found")

	// ErrDuplicateReview is returned when the (business_user, reviewer) pair
	// already exists; backed by a unique index to close the check/insert race.
	ErrDuplicateReview = errors.New("duplicate review")
)

// ReviewSortField enumerates the orderable columns of a review listing.
type ReviewSortField string

const (
	ReviewSortUpdatedAt ReviewSortField = "updated_at"
	ReviewSortRating    ReviewSortField = "rating"
)

// ReviewListQuery carries the optional filters of a review listing.
type ReviewListQuery struct {
	ReviewerID     *uuid.UUID
	BusinessUserID *uuid.UUID

	SortField      ReviewSortField
	SortDescending bool
}

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	// Create persists a new review. Returns ErrDuplicateReview when the
	// unique (business_user, reviewer) constraint is violated.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a single review.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByReviewerAndBusiness retrieves the review a reviewer left for a
	// business user, if any.
	FindByReviewerAndBusiness(ctx context.Context, reviewerID, businessUserID uuid.UUID) (*entity.Review, error)

	// List retrieves reviews matching the query.
	List(ctx context.Context, query ReviewListQuery) ([]*entity.Review, error)

	// Update persists changes to a review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of reviews.
	Count(ctx context.Context) (int64, error)

	// AverageRating returns the mean rating across all reviews, 0 when none exist.
	AverageRating(ctx context.Context) (float64, error)
}
