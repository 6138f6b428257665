package entity

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending exists for storage compatibility but is never
	// produced: creation always starts an order at in_progress.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusInProgress is the initial state of every created order.
	OrderStatusInProgress OrderStatus = "in_progress"
	// OrderStatusCompleted is a terminal state.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled is a terminal state.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValidTarget checks whether the status is an allowed target for a status
// update. "pending" is deliberately not updatable-to.
func (s OrderStatus) IsValidTarget() bool {
	switch s {
	case OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions may leave this state.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the state machine permits moving from s to
// target. Only in_progress has outgoing transitions.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}

	return target.IsValidTarget()
}
