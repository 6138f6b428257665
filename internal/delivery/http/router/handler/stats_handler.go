package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler holds dependencies for the public statistics handler.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		uc:     uc,
		logger: logger,
	}
}

type baseInfoResponse struct {
	ReviewCount          int64   `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int64   `json:"business_profile_count"`
	OfferCount           int64   `json:"offer_count"`
}

// BaseInfo returns the live platform statistics. No authentication required.
func (h *StatsHandler) BaseInfo(c echo.Context) error {
	output, err := h.uc.BaseInfo(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, baseInfoResponse{
		ReviewCount:          output.ReviewCount,
		AverageRating:        output.AverageRating,
		BusinessProfileCount: output.BusinessProfileCount,
		OfferCount:           output.OfferCount,
	}, "Base info retrieved successfully")
}
