package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review ledger handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type createReviewRequest struct {
	BusinessUserID uuid.UUID `json:"business_user" validate:"required"`
	Rating         int       `json:"rating" validate:"required"`
	Description    string    `json:"description"`
}

type updateReviewRequest struct {
	Rating      *int    `json:"rating"`
	Description *string `json:"description"`
}

type reviewResponse struct {
	ID             uuid.UUID `json:"id"`
	BusinessUserID uuid.UUID `json:"business_user"`
	ReviewerID     uuid.UUID `json:"reviewer"`
	Rating         int       `json:"rating"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newReviewResponse(review *entity.Review) reviewResponse {
	return reviewResponse{
		ID:             review.ID,
		BusinessUserID: review.BusinessUserID,
		ReviewerID:     review.ReviewerID,
		Rating:         review.Rating,
		Description:    review.Description,
		CreatedAt:      review.CreatedAt,
		UpdatedAt:      review.UpdatedAt,
	}
}

// Create handles the request to rate a business account.
func (h *ReviewHandler) Create(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), caller, usecase.CreateReviewInput{
		BusinessUserID: req.BusinessUserID,
		Rating:         req.Rating,
		Description:    req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newReviewResponse(output.Review), "Review created successfully")
}

// List handles the review listing request with filters and ordering.
func (h *ReviewHandler) List(c echo.Context) error {
	query, err := parseReviewListQuery(c)
	if err != nil {
		return err
	}

	output, err := h.uc.List(c.Request().Context(), usecase.ListReviewsInput{Query: query})
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]reviewResponse, 0, len(output.Reviews))
	for _, review := range output.Reviews {
		results = append(results, newReviewResponse(review))
	}

	return response.Success(c, http.StatusOK, results, "Reviews retrieved successfully")
}

// Get handles the request to retrieve a single review.
func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newReviewResponse(output.Review), "Review retrieved successfully")
}

// Patch handles the partial update of a review.
func (h *ReviewHandler) Patch(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	output, err := h.uc.Update(c.Request().Context(), caller, id, usecase.UpdateReviewInput{
		Rating:      req.Rating,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newReviewResponse(output.Review), "Review updated successfully")
}

// Delete handles the removal of a review.
func (h *ReviewHandler) Delete(c echo.Context) error {
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

// parseReviewListQuery validates and converts the review query parameters.
func parseReviewListQuery(c echo.Context) (repository.ReviewListQuery, error) {
	query := repository.ReviewListQuery{
		SortField:      repository.ReviewSortUpdatedAt,
		SortDescending: true,
	}

	for key, values := range c.QueryParams() {
		if len(values) == 0 || values[0] == "" {
			continue
		}
		value := values[0]

		switch key {
		case "reviewer_id":
			parsed, err := uuid.Parse(value)
			if err != nil {
				return query, domainerrors.ErrInvalidFilter.WithDetails("reviewer_id must be a valid UUID")
			}
			query.ReviewerID = &parsed
		case "business_user_id":
			parsed, err := uuid.Parse(value)
			if err != nil {
				return query, domainerrors.ErrInvalidFilter.WithDetails("business_user_id must be a valid UUID")
			}
			query.BusinessUserID = &parsed
		case "ordering":
			field, descending := parseOrdering(value)
			query.SortField = repository.ReviewSortField(field)
			query.SortDescending = descending
		default:
			return query, domainerrors.ErrInvalidFilter.WithDetails("unknown filter parameter: " + key)
		}
	}

	return query, nil
}
