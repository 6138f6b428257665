package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

// testOrder builds an order with both party references loaded, the way the
// repository returns them for the combined projection.
func testOrder(customerID, businessID uuid.UUID, status entity.OrderStatus) *entity.Order {
	detail := &entity.OfferDetail{
		ID:                 uuid.New(),
		Title:              "Standard Design",
		Revisions:          3,
		DeliveryTimeInDays: 5,
		Price:              100,
		Features:           []string{"Logo Design"},
		OfferType:          entity.OfferTierStandard,
	}

	return &entity.Order{
		ID:              uuid.New(),
		CustomerID:      customerID,
		OfferID:         uuid.New(),
		OrderedDetailID: detail.ID,
		Status:          status,
		Quantity:        1,
		PriceAtOrder:    detail.Price,
		Offer:           &entity.Offer{ID: uuid.New(), UserID: businessID},
		OrderedDetail:   detail,
	}
}

func TestOrderService_Create_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := customerCaller()

	detail := &entity.OfferDetail{
		ID:      uuid.New(),
		OfferID: uuid.New(),
		Price:   123.45,
	}
	createdID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			offerRepo := mockRepo.NewMockOfferRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			offerRepo.EXPECT().FindDetailByID(ctx, detail.ID).Return(detail, nil)
			orderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.Equal(t, caller.AccountID, order.CustomerID)
					assert.Equal(t, detail.OfferID, order.OfferID)
					assert.Equal(t, detail.ID, order.OrderedDetailID)
					assert.Equal(t, entity.OrderStatusInProgress, order.Status)
					assert.Equal(t, 1, order.Quantity)
					assert.Equal(t, 123.45, order.PriceAtOrder)
					order.ID = createdID
				}).
				Return(nil)
			orderRepo.EXPECT().
				FindByID(ctx, createdID).
				Return(testOrder(caller.AccountID, uuid.New(), entity.OrderStatusInProgress), nil)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().OfferRepo().Return(offerRepo)
			mockFactory.EXPECT().OrderRepo().Return(orderRepo)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, caller, usecase.CreateOrderInput{OfferDetailID: detail.ID})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, entity.OrderStatusInProgress, output.Order.Status)
}

func TestOrderService_Create_RejectsBusinessCaller(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	output, err := fx.service.Create(ctx, businessCaller(), usecase.CreateOrderInput{OfferDetailID: uuid.New()})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotCustomer)
}

func TestOrderService_Create_RejectsNegativeQuantity(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	output, err := fx.service.Create(ctx, customerCaller(), usecase.CreateOrderInput{
		OfferDetailID: uuid.New(),
		Quantity:      -2,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_Create_UnknownDetail(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := customerCaller()
	detailID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			offerRepo := mockRepo.NewMockOfferRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			offerRepo.EXPECT().FindDetailByID(ctx, detailID).Return(nil, repository.ErrOfferDetailNotFound)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().OfferRepo().Return(offerRepo)
			mockFactory.EXPECT().OrderRepo().Return(orderRepo)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, caller, usecase.CreateOrderInput{OfferDetailID: detailID})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOfferDetailNotFound)
}

func TestOrderService_List_ReturnsBothSides(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := customerCaller()

	orders := []*entity.Order{
		testOrder(caller.AccountID, uuid.New(), entity.OrderStatusInProgress),
		testOrder(caller.AccountID, uuid.New(), entity.OrderStatusCompleted),
	}

	fx.orderRepo.EXPECT().ListForUser(ctx, caller.AccountID).Return(orders, nil)

	output, err := fx.service.List(ctx, caller)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Len(t, output.Orders, 2)
}

func TestOrderService_Get_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := customerCaller()

	order := testOrder(caller.AccountID, uuid.New(), entity.OrderStatusInProgress)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	output, err := fx.service.Get(ctx, caller, order.ID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, order.ID, output.Order.ID)
}

func TestOrderService_Get_RejectsThirdParty(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	// The caller is neither the purchasing customer nor the offer's owner.
	order := testOrder(uuid.New(), uuid.New(), entity.OrderStatusInProgress)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	output, err := fx.service.Get(ctx, customerCaller(), order.ID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_Get_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	output, err := fx.service.Get(ctx, customerCaller(), orderID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := businessCaller()

	order := testOrder(uuid.New(), caller.AccountID, entity.OrderStatusInProgress)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusCompleted).Return(nil)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().OrderRepo().Return(orderRepo)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdateStatus(ctx, caller, order.ID, usecase.UpdateOrderStatusInput{Status: "completed"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, entity.OrderStatusCompleted, output.Order.Status)
}

func TestOrderService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	output, err := fx.service.UpdateStatus(ctx, businessCaller(), uuid.New(), usecase.UpdateOrderStatusInput{Status: "shipped"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestOrderService_UpdateStatus_RejectsNonOwner(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	order := testOrder(uuid.New(), uuid.New(), entity.OrderStatusInProgress)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().OrderRepo().Return(orderRepo)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdateStatus(ctx, businessCaller(), order.ID, usecase.UpdateOrderStatusInput{Status: "completed"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestOrderService_UpdateStatus_RejectsTerminalOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := businessCaller()

	order := testOrder(uuid.New(), caller.AccountID, entity.OrderStatusCancelled)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().OrderRepo().Return(orderRepo)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdateStatus(ctx, caller, order.ID, usecase.UpdateOrderStatusInput{Status: "in_progress"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOrderFinalized)
}

func TestOrderService_Delete_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := businessCaller()

	order := testOrder(uuid.New(), caller.AccountID, entity.OrderStatusCompleted)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Delete(ctx, order.ID).Return(nil)

	err := fx.service.Delete(ctx, caller, order.ID)

	require.NoError(t, err)
}

func TestOrderService_Delete_RejectsCustomerParty(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := customerCaller()

	// Even the purchasing customer may not delete; only the offer's owner.
	order := testOrder(caller.AccountID, uuid.New(), entity.OrderStatusInProgress)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	err := fx.service.Delete(ctx, caller, order.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestOrderService_CountByStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	businessID := uuid.New()

	business := &entity.User{
		ID:      businessID,
		Profile: &entity.UserProfile{UserID: businessID, Type: entity.ProfileTypeBusiness},
	}

	fx.userRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil)
	fx.orderRepo.EXPECT().CountByBusinessAndStatus(ctx, businessID, entity.OrderStatusInProgress).Return(int64(5), nil)

	output, err := fx.service.CountByStatus(ctx, businessID, entity.OrderStatusInProgress)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(5), output.Count)
}

func TestOrderService_CountByStatus_UnknownAccount(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	businessID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.CountByStatus(ctx, businessID, entity.OrderStatusCompleted)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestOrderService_CountByStatus_CustomerAccount(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()

	customer := &entity.User{
		ID:      customerID,
		Profile: &entity.UserProfile{UserID: customerID, Type: entity.ProfileTypeCustomer},
	}

	fx.userRepo.EXPECT().FindByID(ctx, customerID).Return(customer, nil)

	output, err := fx.service.CountByStatus(ctx, customerID, entity.OrderStatusCompleted)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
