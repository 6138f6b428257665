package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type createOrderRequest struct {
	OfferDetailID uuid.UUID `json:"offer_detail_id" validate:"required"`
	Quantity      int       `json:"quantity"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// orderResponse is the combined projection: the purchased tier's fields
// flattened next to both party ids and the snapshot price.
type orderResponse struct {
	ID                 uuid.UUID `json:"id"`
	CustomerUserID     uuid.UUID `json:"customer_user"`
	BusinessUserID     uuid.UUID `json:"business_user"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              float64   `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
	Status             string    `json:"status"`
	Quantity           int       `json:"quantity"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func newOrderResponse(order *entity.Order) orderResponse {
	resp := orderResponse{
		ID:             order.ID,
		CustomerUserID: order.CustomerID,
		BusinessUserID: order.BusinessUserID(),
		Price:          order.PriceAtOrder,
		Status:         order.Status.String(),
		Quantity:       order.Quantity,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		Features:       []string{},
	}

	if detail := order.OrderedDetail; detail != nil {
		resp.Title = detail.Title
		resp.Revisions = detail.Revisions
		resp.DeliveryTimeInDays = detail.DeliveryTimeInDays
		resp.OfferType = detail.OfferType.String()
		if detail.Features != nil {
			resp.Features = detail.Features
		}
	}

	return resp
}

// Create handles the request to purchase an offer tier.
func (h *OrderHandler) Create(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), caller, usecase.CreateOrderInput{
		OfferDetailID: req.OfferDetailID,
		Quantity:      req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(output.Order), "Order created successfully")
}

// List handles the request to list the caller's orders on both sides.
func (h *OrderHandler) List(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	output, err := h.uc.List(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]orderResponse, 0, len(output.Orders))
	for _, order := range output.Orders {
		results = append(results, newOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, results, "Orders retrieved successfully")
}

// Get handles the request to retrieve a single order.
func (h *OrderHandler) Get(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.Get(c.Request().Context(), caller, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(output.Order), "Order retrieved successfully")
}

// UpdateStatus handles the business-side status transition of an order.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.UpdateStatus(c.Request().Context(), caller, id, usecase.UpdateOrderStatusInput{
		Status: req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(output.Order), "Order status updated successfully")
}

// Delete handles the removal of an order.
func (h *OrderHandler) Delete(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), caller, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CountInProgress returns the number of in-progress orders of a business account.
func (h *OrderHandler) CountInProgress(c echo.Context) error {
	return h.countByStatus(c, entity.OrderStatusInProgress, "order_count")
}

// CountCompleted returns the number of completed orders of a business account.
func (h *OrderHandler) CountCompleted(c echo.Context) error {
	return h.countByStatus(c, entity.OrderStatusCompleted, "completed_order_count")
}

func (h *OrderHandler) countByStatus(c echo.Context, status entity.OrderStatus, field string) error {
	businessUserID, err := parseUUIDParam(c, "business_user_id")
	if err != nil {
		return err
	}

	output, err := h.uc.CountByStatus(c.Request().Context(), businessUserID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{field: output.Count}, "Order count retrieved successfully")
}
