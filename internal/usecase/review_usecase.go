package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateReviewInput defines the data required to rate a business account.
type CreateReviewInput struct {
	BusinessUserID uuid.UUID
	Rating         int
	Description    string
}

// UpdateReviewInput carries a partial update. Nil means "leave unchanged".
type UpdateReviewInput struct {
	Rating      *int
	Description *string
}

// ListReviewsInput wraps the repository query after delivery-layer parsing.
type ListReviewsInput struct {
	Query repository.ReviewListQuery
}

// --- Output DTOs ---

// ReviewOutput wraps a single review.
type ReviewOutput struct {
	Review *entity.Review
}

// ReviewListOutput carries the matching reviews.
type ReviewListOutput struct {
	Reviews []*entity.Review
}

// ReviewUsecase defines the interface for review ledger operations.
type ReviewUsecase interface {
	// Create requires a customer-typed caller, rejects self-reviews and
	// allows at most one review per (business, reviewer) pair.
	Create(ctx context.Context, caller Identity, input CreateReviewInput) (*ReviewOutput, error)

	// List requires authentication.
	List(ctx context.Context, input ListReviewsInput) (*ReviewListOutput, error)

	// Get returns a single review.
	Get(ctx context.Context, id uuid.UUID) (*ReviewOutput, error)

	// Update is reviewer-only.
	Update(ctx context.Context, caller Identity, id uuid.UUID, input UpdateReviewInput) (*ReviewOutput, error)

	// Delete is reviewer-only.
	Delete(ctx context.Context, caller Identity, id uuid.UUID) error
}
