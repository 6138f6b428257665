package entity

import (
	"time"

	"github.com/google/uuid"
)

// MinOfferDetails is the minimum number of pricing tiers an offer must carry at creation.
const MinOfferDetails = 3

// Offer is a published service listing owned by a business account.
// It aggregates 1..N OfferDetail pricing tiers.
type Offer struct {
	ID          uuid.UUID
	UserID      uuid.UUID // Owning business account.
	Title       string
	Image       string // Reference into the binary asset store, may be empty.
	Description string
	OfferType   OfferTier
	Details     []*OfferDetail
	CreatedAt   time.Time
	UpdatedAt   time.Time // Auto-touched on any mutation.

	// Owner is the owning user, populated on reads that need the embedded
	// user_details projection. Nil otherwise.
	Owner *User
}

// MinPrice returns the minimum price across the offer's current detail set.
// Returns nil when the offer has no details; the public API never produces
// such an offer, but readers stay defensive about it.
func (o *Offer) MinPrice() *float64 {
	var min *float64
	for _, d := range o.Details {
		if min == nil || d.Price < *min {
			price := d.Price
			min = &price
		}
	}

	return min
}

// MinDeliveryTime returns the minimum delivery time in days across the
// offer's current detail set, or nil when the offer has no details.
func (o *Offer) MinDeliveryTime() *int {
	var min *int
	for _, d := range o.Details {
		if min == nil || d.DeliveryTimeInDays < *min {
			days := d.DeliveryTimeInDays
			min = &days
		}
	}

	return min
}

// DetailByTier returns the detail carrying the given tier tag, or nil.
// Tier tags are unique within an offer and are how PATCH payloads address
// an existing detail.
func (o *Offer) DetailByTier(tier OfferTier) *OfferDetail {
	for _, d := range o.Details {
		if d.OfferType == tier {
			return d
		}
	}

	return nil
}

// OfferDetail is a single pricing tier of an offer.
type OfferDetail struct {
	ID                 uuid.UUID
	OfferID            uuid.UUID
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              float64 // Decimal with 2 fraction digits at the storage layer.
	Features           []string
	OfferType          OfferTier // Tier tag, distinct from the parent Offer's OfferType.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
