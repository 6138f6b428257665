package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
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

// offerDetailURLPrefix builds the link target of a detail tier.
const offerDetailURLPrefix = "/api/offerdetails/"

// OfferHandler holds dependencies for offer catalog handlers.
type OfferHandler struct {
	uc     usecase.OfferUsecase
	logger *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler, injected by Fx.
func NewOfferHandler(uc usecase.OfferUsecase, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{
		uc:     uc,
		logger: logger,
	}
}

type offerDetailRequest struct {
	Title              string   `json:"title" validate:"required"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days" validate:"required"`
	Price              float64  `json:"price" validate:"required"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type" validate:"required"`
}

type createOfferRequest struct {
	Title       string               `json:"title" validate:"required"`
	Description string               `json:"description"`
	Image       string               `json:"image"`
	OfferType   string               `json:"offer_type"`
	Details     []offerDetailRequest `json:"details" validate:"required"`
}

type patchOfferDetailRequest struct {
	OfferType          string   `json:"offer_type" validate:"required"`
	Title              *string  `json:"title"`
	Revisions          *int     `json:"revisions"`
	DeliveryTimeInDays *int     `json:"delivery_time_in_days"`
	Price              *float64 `json:"price"`
	Features           []string `json:"features"`
}

type patchOfferRequest struct {
	Title       *string                   `json:"title"`
	Description *string                   `json:"description"`
	Image       *string                   `json:"image"`
	Details     []patchOfferDetailRequest `json:"details"`
}

// offerDetailLink is the {id, url} reference used by list and retrieve.
type offerDetailLink struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

// offerDetailResponse is the fully expanded tier used by create and patch
// responses and by the standalone detail endpoint.
type offerDetailResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              float64   `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
}

// offerListItemResponse is the listing projection: detail links, derived
// aggregates and the embedded owner details.
type offerListItemResponse struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"user"`
	Title           string            `json:"title"`
	Image           string            `json:"image"`
	Description     string            `json:"description"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Details         []offerDetailLink `json:"details"`
	MinPrice        *float64          `json:"min_price"`
	MinDeliveryTime *int              `json:"min_delivery_time"`
	UserDetails     *userDetails      `json:"user_details"`
}

// offerRetrieveResponse carries detail links plus aggregates.
type offerRetrieveResponse struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"user"`
	Title           string            `json:"title"`
	Image           string            `json:"image"`
	Description     string            `json:"description"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Details         []offerDetailLink `json:"details"`
	MinPrice        *float64          `json:"min_price"`
	MinDeliveryTime *int              `json:"min_delivery_time"`
}

// offerWriteResponse is returned by create and patch: full nested details.
type offerWriteResponse struct {
	ID          uuid.UUID             `json:"id"`
	UserID      uuid.UUID             `json:"user"`
	Title       string                `json:"title"`
	Image       string                `json:"image"`
	Description string                `json:"description"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	Details     []offerDetailResponse `json:"details"`
}

func newOfferDetailLinks(offer *entity.Offer) []offerDetailLink {
	links := make([]offerDetailLink, 0, len(offer.Details))
	for _, d := range offer.Details {
		links = append(links, offerDetailLink{
			ID:  d.ID,
			URL: offerDetailURLPrefix + d.ID.String() + "/",
		})
	}

	return links
}

func newOfferDetailResponse(detail *entity.OfferDetail) offerDetailResponse {
	features := detail.Features
	if features == nil {
		features = []string{}
	}

	return offerDetailResponse{
		ID:                 detail.ID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           features,
		OfferType:          detail.OfferType.String(),
	}
}

func newOfferWriteResponse(offer *entity.Offer) offerWriteResponse {
	details := make([]offerDetailResponse, 0, len(offer.Details))
	for _, d := range offer.Details {
		details = append(details, newOfferDetailResponse(d))
	}

	return offerWriteResponse{
		ID:          offer.ID,
		UserID:      offer.UserID,
		Title:       offer.Title,
		Image:       offer.Image,
		Description: offer.Description,
		CreatedAt:   offer.CreatedAt,
		UpdatedAt:   offer.UpdatedAt,
		Details:     details,
	}
}

// List handles the offer listing request with filters, ordering and paging.
func (h *OfferHandler) List(c echo.Context) error {
	query, err := parseOfferListQuery(c)
	if err != nil {
		return err
	}

	output, err := h.uc.List(c.Request().Context(), usecase.ListOffersInput{Query: query})
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]offerListItemResponse, 0, len(output.Offers))
	for _, offer := range output.Offers {
		results = append(results, offerListItemResponse{
			ID:              offer.ID,
			UserID:          offer.UserID,
			Title:           offer.Title,
			Image:           offer.Image,
			Description:     offer.Description,
			CreatedAt:       offer.CreatedAt,
			UpdatedAt:       offer.UpdatedAt,
			Details:         newOfferDetailLinks(offer),
			MinPrice:        offer.MinPrice(),
			MinDeliveryTime: offer.MinDeliveryTime(),
			UserDetails:     newUserDetails(offer.Owner),
		})
	}

	return response.Paginated(c, output.Total, results, "Offers retrieved successfully")
}

// Create handles the request to publish a new offer.
func (h *OfferHandler) Create(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	var req createOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	details := make([]usecase.OfferDetailInput, 0, len(req.Details))
	for _, d := range req.Details {
		details = append(details, usecase.OfferDetailInput{
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           d.Features,
			OfferType:          d.OfferType,
		})
	}

	output, err := h.uc.Create(c.Request().Context(), caller, usecase.CreateOfferInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		OfferType:   req.OfferType,
		Details:     details,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOfferWriteResponse(output.Offer), "Offer created successfully")
}

// Get handles the request to retrieve a single offer.
func (h *OfferHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	offer := output.Offer

	return response.Success(c, http.StatusOK, offerRetrieveResponse{
		ID:              offer.ID,
		UserID:          offer.UserID,
		Title:           offer.Title,
		Image:           offer.Image,
		Description:     offer.Description,
		CreatedAt:       offer.CreatedAt,
		UpdatedAt:       offer.UpdatedAt,
		Details:         newOfferDetailLinks(offer),
		MinPrice:        offer.MinPrice(),
		MinDeliveryTime: offer.MinDeliveryTime(),
	}, "Offer retrieved successfully")
}

// Patch handles the partial update of an offer and its tiers.
func (h *OfferHandler) Patch(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req patchOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	details := make([]usecase.PatchOfferDetailInput, 0, len(req.Details))
	for _, d := range req.Details {
		details = append(details, usecase.PatchOfferDetailInput{
			OfferType:          d.OfferType,
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           d.Features,
		})
	}

	output, err := h.uc.Patch(c.Request().Context(), caller, id, usecase.PatchOfferInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Details:     details,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOfferWriteResponse(output.Offer), "Offer updated successfully")
}

// Delete handles the removal of an offer and its tiers.
func (h *OfferHandler) Delete(c echo.Context) error {
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

// GetDetail handles the request to retrieve a single pricing tier.
func (h *OfferHandler) GetDetail(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.GetDetail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOfferDetailResponse(output.Detail), "Offer detail retrieved successfully")
}

// PatchDetail handles the partial update of a single pricing tier.
func (h *OfferHandler) PatchDetail(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req patchOfferDetailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer detail input")
	}

	output, err := h.uc.PatchDetail(c.Request().Context(), caller, id, usecase.PatchOfferDetailInput{
		OfferType:          req.OfferType,
		Title:              req.Title,
		Revisions:          req.Revisions,
		DeliveryTimeInDays: req.DeliveryTimeInDays,
		Price:              req.Price,
		Features:           req.Features,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOfferDetailResponse(output.Detail), "Offer detail updated successfully")
}

// DeleteDetail handles the removal of a single pricing tier.
func (h *OfferHandler) DeleteDetail(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteDetail(c.Request().Context(), caller, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadImage handles the multipart upload of an offer image.
func (h *OfferHandler) UploadImage(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	filename, data, err := readMultipartFile(c, "image")
	if err != nil {
		return err
	}

	output, err := h.uc.UploadImage(c.Request().Context(), caller, usecase.UploadOfferImageInput{
		Filename: filename,
		Data:     data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"image": output.Image}, "Offer image uploaded successfully")
}

// parseOfferListQuery validates and converts the listing query parameters.
// Unknown keys and non-numeric values are rejected, naming the offending key.
func parseOfferListQuery(c echo.Context) (repository.OfferListQuery, error) {
	query := repository.OfferListQuery{
		SortField:      repository.OfferSortUpdatedAt,
		SortDescending: true,
	}

	for key, values := range c.QueryParams() {
		if len(values) == 0 || values[0] == "" {
			continue
		}
		value := values[0]

		switch key {
		case "min_price":
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return query, domainerrors.ErrInvalidFilter.WithDetails("min_price must be numeric")
			}
			query.MinPrice = &parsed
		case "max_price":
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return query, domainerrors.ErrInvalidFilter.WithDetails("max_price must be numeric")
			}
			query.MaxPrice = &parsed
		case "min_delivery_time":
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return query, domainerrors.ErrInvalidFilter.WithDetails("min_delivery_time must be an integer")
			}
			query.MinDeliveryTime = &parsed
		case "max_delivery_time":
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return query, domainerrors.ErrInvalidFilter.WithDetails("max_delivery_time must be an integer")
			}
			query.MaxDeliveryTime = &parsed
		case "creator_id":
			parsed, err := uuid.Parse(value)
			if err != nil {
				return query, domainerrors.ErrInvalidFilter.WithDetails("creator_id must be a valid UUID")
			}
			query.CreatorID = &parsed
		case "search":
			query.Search = value
		case "ordering":
			field, descending := parseOrdering(value)
			query.SortField = repository.OfferSortField(field)
			query.SortDescending = descending
		case "page":
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return query, domainerrors.ErrInvalidFilter.WithDetails("page must be an integer")
			}
			query.Page = parsed
		case "page_size":
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return query, domainerrors.ErrInvalidFilter.WithDetails("page_size must be an integer")
			}
			query.PageSize = parsed
		default:
			return query, domainerrors.ErrInvalidFilter.WithDetails("unknown filter parameter: " + key)
		}
	}

	return query, nil
}

// parseOrdering splits an ordering value into its field and direction. A
// leading '-' selects descending order.
func parseOrdering(value string) (field string, descending bool) {
	if strings.HasPrefix(value, "-") {
		return strings.TrimPrefix(value, "-"), true
	}

	return value, false
}
