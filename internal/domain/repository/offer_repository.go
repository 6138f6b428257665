package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for the offer catalog.
var (
	ErrOfferNotFound       = errors.New("offer not found")
	ErrOfferDetailNotFound = errors.New("offer detail not found")
)

// OfferSortField enumerates the orderable columns of an offer listing.
// The aggregate fields sort on min() across the offer's detail set.
type OfferSortField string

const (
	OfferSortUpdatedAt       OfferSortField = "updated_at"
	OfferSortMinPrice        OfferSortField = "min_price"
	OfferSortMinDeliveryTime OfferSortField = "min_delivery_time"
)

// OfferListQuery carries the filter, sort and page parameters of a listing.
// All filters are optional; price/delivery bounds are inclusive and apply to
// the derived min-price / min-delivery aggregates.
type OfferListQuery struct {
	MinPrice        *float64
	MaxPrice        *float64
	MinDeliveryTime *int
	MaxDeliveryTime *int
	CreatorID       *uuid.UUID
	Search          string // Substring match on title or description.

	SortField      OfferSortField
	SortDescending bool

	Page     int // 1-based.
	PageSize int
}

// OfferRepository defines persistence operations for offers and their detail tiers.
type OfferRepository interface {
	// Create persists a new offer together with its details.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID retrieves an offer with its details and owner preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// List retrieves a page of offers matching the query, details and owners
	// preloaded, plus the total match count before paging.
	List(ctx context.Context, query OfferListQuery) ([]*entity.Offer, int64, error)

	// Update persists changes to an offer's own fields and touches updated_at.
	// Detail rows are updated through UpdateDetail.
	Update(ctx context.Context, offer *entity.Offer) error

	// Delete hard-deletes an offer; detail rows cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of offers.
	Count(ctx context.Context) (int64, error)

	// FindDetailByID retrieves a single detail tier.
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error)

	// UpdateDetail persists changes to a single detail tier and touches the
	// parent offer's updated_at.
	UpdateDetail(ctx context.Context, detail *entity.OfferDetail) error

	// DeleteDetail removes a single detail tier.
	DeleteDetail(ctx context.Context, id uuid.UUID) error
}
