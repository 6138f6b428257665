package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order records a customer's purchase of a single offer detail tier.
// PriceAtOrder is copied from the detail at creation time and is never
// recalculated, even if the tier's price later changes.
type Order struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID // Purchasing customer account.
	OfferID         uuid.UUID // Parent offer of the purchased tier.
	OrderedDetailID uuid.UUID // The specific tier purchased.
	Status          OrderStatus
	Quantity        int
	PriceAtOrder    float64
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Offer and OrderedDetail are populated on reads that need the combined
	// projection (flattened tier fields + both party ids). Nil otherwise.
	Offer         *Offer
	OrderedDetail *OfferDetail
}

// BusinessUserID returns the account owning the order's offer, or uuid.Nil
// when the offer reference is not loaded.
func (o *Order) BusinessUserID() uuid.UUID {
	if o.Offer == nil {
		return uuid.Nil
	}

	return o.Offer.UserID
}

// TotalPrice returns the snapshot price multiplied by the ordered quantity.
func (o *Order) TotalPrice() float64 {
	return o.PriceAtOrder * float64(o.Quantity)
}
