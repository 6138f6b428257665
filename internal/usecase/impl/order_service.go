package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create purchases one tier for a customer caller. The tier resolution and
// the price snapshot run inside a single transaction so a concurrent price
// patch cannot slip between read and insert.
func (srv *orderService) Create(ctx context.Context, caller usecase.Identity, input usecase.CreateOrderInput) (*usecase.OrderOutput, error) {
	if !caller.IsCustomer() {
		srv.log(ctx).Warn("Order creation rejected for non-customer caller", slog.Any("callerID", caller.AccountID))

		return nil, errors.Wrap(domainerrors.ErrNotCustomer, "order creation rejected")
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1"), "order creation rejected")
	}

	var created *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()
		orderRepo := repoFactory.OrderRepo()

		detail, err := offerRepo.FindDetailByID(ctx, input.OfferDetailID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferDetailNotFound) {
				return errors.Wrap(domainerrors.ErrOfferDetailNotFound, "ordered detail does not exist")
			}

			return errors.Wrap(err, "failed to resolve ordered detail")
		}

		order := &entity.Order{
			CustomerID:      caller.AccountID,
			OfferID:         detail.OfferID,
			OrderedDetailID: detail.ID,
			Status:          entity.OrderStatusInProgress,
			Quantity:        quantity,
			PriceAtOrder:    detail.Price, // Frozen here; later price patches never touch it.
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		created, err = orderRepo.FindByID(ctx, order.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load created order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation failed", slog.Any("callerID", caller.AccountID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Order created", slog.Any("orderID", created.ID), slog.Any("customerID", caller.AccountID))

	return &usecase.OrderOutput{Order: created}, nil
}

// List returns the caller's orders from both sides of the transaction.
func (srv *orderService) List(ctx context.Context, caller usecase.Identity) (*usecase.OrderListOutput, error) {
	orders, err := srv.orderRepo.ListForUser(ctx, caller.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderListOutput{Orders: orders}, nil
}

// Get returns a single order, visible only to its two parties.
func (srv *orderService) Get(ctx context.Context, caller usecase.Identity, id uuid.UUID) (*usecase.OrderOutput, error) {
	order, err := srv.findOrder(ctx, srv.orderRepo, id)
	if err != nil {
		return nil, err
	}

	if order.CustomerID != caller.AccountID && order.BusinessUserID() != caller.AccountID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order belongs to other parties")
	}

	return &usecase.OrderOutput{Order: order}, nil
}

// UpdateStatus moves an order through the state machine. Only the business
// owning the order's offer may call, and terminal orders reject every
// update, including re-setting the same terminal status.
func (srv *orderService) UpdateStatus(ctx context.Context, caller usecase.Identity, id uuid.UUID, input usecase.UpdateOrderStatusInput) (*usecase.OrderOutput, error) {
	target := entity.OrderStatus(input.Status)
	if !target.IsValidTarget() {
		return nil, errors.Wrap(domainerrors.ErrInvalidStatus.WithDetails("status must be in_progress, completed or cancelled"), "status update rejected")
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := srv.findOrder(ctx, orderRepo, id)
		if err != nil {
			return err
		}

		if order.BusinessUserID() != caller.AccountID {
			srv.log(ctx).Warn("Status update rejected for non-owner", slog.Any("orderID", id), slog.Any("callerID", caller.AccountID))

			return errors.Wrap(domainerrors.ErrNotOwner, "order's offer belongs to another account")
		}

		if !order.Status.CanTransitionTo(target) {
			return errors.Wrap(domainerrors.ErrOrderFinalized, "status update rejected")
		}

		if err := orderRepo.UpdateStatus(ctx, id, target); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		order.Status = target
		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Order status updated", slog.Any("orderID", id), slog.String("status", target.String()))

	return &usecase.OrderOutput{Order: updated}, nil
}

// Delete removes an order. Restricted to the business owning the order's offer.
func (srv *orderService) Delete(ctx context.Context, caller usecase.Identity, id uuid.UUID) error {
	order, err := srv.findOrder(ctx, srv.orderRepo, id)
	if err != nil {
		return err
	}

	if order.BusinessUserID() != caller.AccountID {
		srv.log(ctx).Warn("Order delete rejected for non-owner", slog.Any("orderID", id), slog.Any("callerID", caller.AccountID))

		return errors.Wrap(domainerrors.ErrNotOwner, "order's offer belongs to another account")
	}

	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// CountByStatus counts a business account's orders in the given status.
// Any authenticated caller may query; an unknown or non-business account id
// resolves to not-found.
func (srv *orderService) CountByStatus(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (*usecase.OrderCountOutput, error) {
	business, err := srv.userRepo.FindByID(ctx, businessUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "business account does not exist")
		}

		return nil, errors.Wrap(err, "failed to find business account")
	}
	if !business.IsBusiness() {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "account is not business-typed")
	}

	count, err := srv.orderRepo.CountByBusinessAndStatus(ctx, businessUserID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	return &usecase.OrderCountOutput{Count: count}, nil
}

func (srv *orderService) findOrder(ctx context.Context, orderRepo repository.OrderRepository, id uuid.UUID) (*entity.Order, error) {
	order, err := orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order does not exist")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
