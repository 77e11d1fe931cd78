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

type OccasionService interface {
	GetAllOccasions(ctx context.Context) ([]domain.Occasion, error)
	GetOccasionByID(ctx context.Context, uniqueName string) (domain.Occasion, error)
	CreateOccasion(ctx context.Context, occasion *domain.Occasion) error
	UpdateOccasion(ctx context.Context, occasion *domain.Occasion) error
	DeleteOccasion(ctx context.Context, uniqueName string) error
}

type OccasionOpenLogger interface {
	LogOccasionOpen(userID, occasionID string)
}

type OccasionHandler struct {
	occasionService OccasionService
	openLogger      OccasionOpenLogger
	validator       *validator.Validate
	timeout         time.Duration
}

func NewOccasionHandler(occasionService OccasionService, openLogger OccasionOpenLogger) *OccasionHandler {
	return &OccasionHandler{
		occasionService: occasionService,
		openLogger:      openLogger,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type CreateOccasionRequest struct {
	UniqueName   string `json:"unique_name" validate:"required"`
	Name         string `json:"name" validate:"required"`
	PreviewImage string `json:"preview_image"`
}

type UpdateOccasionRequest struct {
	Name         string `json:"name"`
	PreviewImage string `json:"preview_image"`
}

func (h *OccasionHandler) GetAllOccasions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	occasions, err := h.occasionService.GetAllOccasions(ctx)
	if err != nil {
		logger.Error("Failed to find all occasions", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(occasions))
}

func (h *OccasionHandler) GetOccasionByID(c echo.Context) error {
	occasionID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	occasion, err := h.occasionService.GetOccasionByID(ctx, occasionID)
	if err != nil {
		return errorJSON(c, err)
	}

	if uid := viewerID(c); uid != "" {
		h.openLogger.LogOccasionOpen(uid, occasionID)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(occasion))
}

func (h *OccasionHandler) CreateOccasion(c echo.Context) error {
	var req CreateOccasionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	occasion := domain.Occasion{
		UniqueName:   req.UniqueName,
		Name:         req.Name,
		PreviewImage: req.PreviewImage,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.occasionService.CreateOccasion(ctx, &occasion); err != nil {
		logger.Error("Failed to create occasion", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(occasion))
}

func (h *OccasionHandler) UpdateOccasion(c echo.Context) error {
	var req UpdateOccasionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	occasion := domain.Occasion{
		UniqueName:   c.Param("id"),
		Name:         req.Name,
		PreviewImage: req.PreviewImage,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.occasionService.UpdateOccasion(ctx, &occasion); err != nil {
		logger.Error("Failed to update occasion", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(occasion))
}

func (h *OccasionHandler) DeleteOccasion(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.occasionService.DeleteOccasion(ctx, c.Param("id")); err != nil {
		logger.Error("Failed to delete occasion", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("occasion deleted"))
}
