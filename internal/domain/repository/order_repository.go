package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order id does not resolve.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its offer and ordered detail preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListForUser retrieves all orders where the user is either the customer
	// or the business account owning the order's offer, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus sets the status of an order and touches updated_at.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// Delete removes an order.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByBusinessAndStatus counts orders whose offer belongs to the given
	// business account and whose status matches.
	CountByBusinessAndStatus(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error)
}
