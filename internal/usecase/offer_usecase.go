package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OfferDetailInput is one pricing tier of a create payload.
type OfferDetailInput struct {
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              float64
	Features           []string
	OfferType          string // Tier tag: basic, standard or premium.
}

// CreateOfferInput defines the data required to publish a new offer.
type CreateOfferInput struct {
	Title       string
	Description string
	Image       string // Optional asset store reference.
	OfferType   string
	Details     []OfferDetailInput
}

// PatchOfferInput carries a partial update. Nil means "leave unchanged".
// Each detail entry must name an existing tier by its OfferType tag.
type PatchOfferInput struct {
	Title       *string
	Description *string
	Image       *string
	Details     []PatchOfferDetailInput
}

// PatchOfferDetailInput is a partial update of one existing tier, addressed
// by its tier tag.
type PatchOfferDetailInput struct {
	OfferType          string // Required: selects the tier to update.
	Title              *string
	Revisions          *int
	DeliveryTimeInDays *int
	Price              *float64
	Features           []string // Nil leaves the list unchanged.
}

// ListOffersInput wraps the repository query after delivery-layer parsing.
type ListOffersInput struct {
	Query repository.OfferListQuery
}

// UploadOfferImageInput carries the raw bytes of an offer image.
type UploadOfferImageInput struct {
	Filename string
	Data     []byte
}

// --- Output DTOs ---

// OfferOutput wraps a single offer with its details and owner loaded. The
// aggregates come from the entity's MinPrice/MinDeliveryTime accessors so
// they always reflect the current detail set.
type OfferOutput struct {
	Offer *entity.Offer
}

// OfferListOutput is one page of offers plus the total match count for the
// pagination envelope.
type OfferListOutput struct {
	Offers []*entity.Offer
	Total  int64
}

// OfferDetailOutput wraps a single pricing tier.
type OfferDetailOutput struct {
	Detail *entity.OfferDetail
}

// UploadOfferImageOutput returns the stored asset reference.
type UploadOfferImageOutput struct {
	Image string
}

// OfferUsecase defines the interface for offer catalog operations.
type OfferUsecase interface {
	// List is open to anyone, including unauthenticated callers.
	List(ctx context.Context, input ListOffersInput) (*OfferListOutput, error)

	// Create requires a business-typed caller and at least 3 details.
	Create(ctx context.Context, caller Identity, input CreateOfferInput) (*OfferOutput, error)

	// Get requires authentication.
	Get(ctx context.Context, id uuid.UUID) (*OfferOutput, error)

	// Patch is owner-only. Detail entries are matched to existing tiers by
	// tag; an unmatched tag is an error.
	Patch(ctx context.Context, caller Identity, id uuid.UUID, input PatchOfferInput) (*OfferOutput, error)

	// Delete is owner-only and cascades to the detail tiers.
	Delete(ctx context.Context, caller Identity, id uuid.UUID) error

	// GetDetail requires authentication.
	GetDetail(ctx context.Context, id uuid.UUID) (*OfferDetailOutput, error)

	// PatchDetail is owner-only (ownership resolved through the parent offer).
	PatchDetail(ctx context.Context, caller Identity, id uuid.UUID, input PatchOfferDetailInput) (*OfferDetailOutput, error)

	// DeleteDetail is owner-only.
	DeleteDetail(ctx context.Context, caller Identity, id uuid.UUID) error

	// UploadImage stores offer image bytes for a business caller and returns
	// the reference to embed in a later create or patch.
	UploadImage(ctx context.Context, caller Identity, input UploadOfferImageInput) (*UploadOfferImageOutput, error)
}
