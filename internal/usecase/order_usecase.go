package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateOrderInput names the tier being purchased. Quantity defaults to 1
// when zero.
type CreateOrderInput struct {
	OfferDetailID uuid.UUID
	Quantity      int
}

// UpdateOrderStatusInput carries the requested target status as supplied by
// the caller; validation against the state machine happens in the usecase.
type UpdateOrderStatusInput struct {
	Status string
}

// --- Output DTOs ---

// OrderOutput wraps an order with its offer and purchased tier loaded for
// the combined projection.
type OrderOutput struct {
	Order *entity.Order
}

// OrderListOutput is the union of the caller's orders on both sides of the
// transaction.
type OrderListOutput struct {
	Orders []*entity.Order
}

// OrderCountOutput carries a single status count for a business account.
type OrderCountOutput struct {
	Count int64
}

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	// Create requires a customer-typed caller; the price is snapshotted from
	// the tier inside the creating transaction.
	Create(ctx context.Context, caller Identity, input CreateOrderInput) (*OrderOutput, error)

	// List returns orders where the caller is the customer or the business
	// owning the order's offer.
	List(ctx context.Context, caller Identity) (*OrderListOutput, error)

	// Get returns one order, restricted to the two involved parties.
	Get(ctx context.Context, caller Identity, id uuid.UUID) (*OrderOutput, error)

	// UpdateStatus may only be called by the business owning the order's
	// offer, and only on non-terminal orders.
	UpdateStatus(ctx context.Context, caller Identity, id uuid.UUID, input UpdateOrderStatusInput) (*OrderOutput, error)

	// Delete is restricted to the business owning the order's offer.
	Delete(ctx context.Context, caller Identity, id uuid.UUID) error

	// CountByStatus counts orders of the given business account in the given
	// status. Any authenticated caller may query any business's counts.
	CountByStatus(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (*OrderCountOutput, error)
}
