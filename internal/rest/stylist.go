package rest

import (
	"context"
	"net/http"
	"styleflame/domain"
	"styleflame/pkg/logger"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type StylistService interface {
	GetAllStylists(ctx context.Context) ([]domain.Stylist, error)
	GetStylistByID(ctx context.Context, uniqueName string) (domain.Stylist, error)
	CreateStylist(ctx context.Context, stylist *domain.Stylist) error
	UpdateStylist(ctx context.Context, stylist *domain.Stylist) error
	DeleteStylist(ctx context.Context, uniqueName string) error
}

type StylistHandler struct {
	stylistService StylistService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewStylistHandler(stylistService StylistService) *StylistHandler {
	return &StylistHandler{
		stylistService: stylistService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateStylistRequest struct {
	UniqueName   string `json:"unique_name" validate:"required"`
	Name         string `json:"name" validate:"required"`
	PreviewImage string `json:"preview_image"`
}

type UpdateStylistRequest struct {
	Name         string `json:"name"`
	PreviewImage string `json:"preview_image"`
}

func (h *StylistHandler) GetAllStylists(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stylists, err := h.stylistService.GetAllStylists(ctx)
	if err != nil {
		logger.Error("Failed to find all stylists", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stylists))
}

func (h *StylistHandler) GetStylistByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stylist, err := h.stylistService.GetStylistByID(ctx, c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stylist))
}

func (h *StylistHandler) CreateStylist(c echo.Context) error {
	var req CreateStylistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	stylist := domain.Stylist{
		UniqueName:   req.UniqueName,
		Name:         req.Name,
		PreviewImage: req.PreviewImage,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.stylistService.CreateStylist(ctx, &stylist); err != nil {
		logger.Error("Failed to create stylist", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(stylist))
}

func (h *StylistHandler) UpdateStylist(c echo.Context) error {
	var req UpdateStylistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	stylist := domain.Stylist{
		UniqueName:   c.Param("id"),
		Name:         req.Name,
		PreviewImage: req.PreviewImage,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.stylistService.UpdateStylist(ctx, &stylist); err != nil {
		logger.Error("Failed to update stylist", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stylist))
}

func (h *StylistHandler) DeleteStylist(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.stylistService.DeleteStylist(ctx, c.Param("id")); err != nil {
		logger.Error("Failed to delete stylist", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("stylist deleted"))
}
