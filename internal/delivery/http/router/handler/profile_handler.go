package handler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateProfileRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	Location     *string `json:"location"`
	Tel          *string `json:"tel"`
	Description  *string `json:"description"`
	WorkingHours *string `json:"working_hours"`
	File         *string `json:"file"`
}

// profileResponse is the full profile projection. Optional fields come back
// as "" rather than null.
type profileResponse struct {
	UserID       uuid.UUID `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	File         string    `json:"file"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
}

// businessProfileResponse is the public projection of a business account.
type businessProfileResponse struct {
	UserID       uuid.UUID `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	File         string    `json:"file"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	Type         string    `json:"type"`
}

// customerProfileResponse is the public projection of a customer account.
type customerProfileResponse struct {
	UserID     uuid.UUID `json:"user"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	File       string    `json:"file"`
	UploadedAt time.Time `json:"uploaded_at"`
	Type       string    `json:"type"`
}

func newProfileResponse(user *entity.User) profileResponse {
	return profileResponse{
		UserID:       user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Location:     user.Profile.Location,
		Tel:          user.Profile.Tel,
		Description:  user.Profile.Description,
		WorkingHours: user.Profile.WorkingHours,
		File:         user.Profile.File,
		Type:         user.Profile.Type.String(),
		CreatedAt:    user.CreatedAt,
	}
}

// Get handles the request to read a single profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	accountID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(output.User), "Profile retrieved successfully")
}

// Patch handles the request to update the caller's own profile.
func (h *ProfileHandler) Patch(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	accountID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	output, err := h.uc.UpdateProfile(c.Request().Context(), caller, accountID, usecase.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Location:     req.Location,
		Tel:          req.Tel,
		Description:  req.Description,
		WorkingHours: req.WorkingHours,
		File:         req.File,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(output.User), "Profile updated successfully")
}

// UploadAvatar handles the multipart upload of a profile picture.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	filename, data, err := readMultipartFile(c, "file")
	if err != nil {
		return err
	}

	output, err := h.uc.UploadAvatar(c.Request().Context(), caller, usecase.UploadAvatarInput{
		Filename: filename,
		Data:     data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(output.User), "Avatar uploaded successfully")
}

// ListBusiness handles the request to list all business profiles.
func (h *ProfileHandler) ListBusiness(c echo.Context) error {
	users, err := h.uc.ListByType(c.Request().Context(), entity.ProfileTypeBusiness)
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]businessProfileResponse, 0, len(users))
	for _, user := range users {
		results = append(results, businessProfileResponse{
			UserID:       user.ID,
			Username:     user.Username,
			FirstName:    user.FirstName,
			LastName:     user.LastName,
			File:         user.Profile.File,
			Location:     user.Profile.Location,
			Tel:          user.Profile.Tel,
			Description:  user.Profile.Description,
			WorkingHours: user.Profile.WorkingHours,
			Type:         user.Profile.Type.String(),
		})
	}

	return response.Success(c, http.StatusOK, results, "Business profiles retrieved successfully")
}

// ListCustomer handles the request to list all customer profiles.
func (h *ProfileHandler) ListCustomer(c echo.Context) error {
	users, err := h.uc.ListByType(c.Request().Context(), entity.ProfileTypeCustomer)
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]customerProfileResponse, 0, len(users))
	for _, user := range users {
		results = append(results, customerProfileResponse{
			UserID:     user.ID,
			Username:   user.Username,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			File:       user.Profile.File,
			UploadedAt: user.Profile.UpdatedAt,
			Type:       user.Profile.Type.String(),
		})
	}

	return response.Success(c, http.StatusOK, results, "Customer profiles retrieved successfully")
}

// parseUUIDParam parses a path parameter as a UUID.
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID")
	}

	return id, nil
}

// readMultipartFile reads one uploaded file from a multipart form field.
func readMultipartFile(c echo.Context, field string) (string, []byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, domainerrors.ErrValidationFailed.WithDetails("multipart field '" + field + "' is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", nil, errors.Wrap(err, "open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", nil, errors.Wrap(err, "read uploaded file")
	}

	return fileHeader.Filename, data, nil
}
