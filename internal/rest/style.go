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

type StyleService interface {
	GetAllStyles(ctx context.Context) ([]domain.Style, error)
	GetStyleByID(ctx context.Context, uniqueName string) (domain.Style, error)
	CreateStyle(ctx context.Context, style *domain.Style) error
	UpdateStyle(ctx context.Context, style *domain.Style) error
	DeleteStyle(ctx context.Context, uniqueName string) error
}

type StyleOpenLogger interface {
	LogStyleOpen(userID, styleID string)
}

type StyleHandler struct {
	styleService StyleService
	openLogger   StyleOpenLogger
	validator    *validator.Validate
	timeout      time.Duration
}

func NewStyleHandler(styleService StyleService, openLogger StyleOpenLogger) *StyleHandler {
	return &StyleHandler{
		styleService: styleService,
		openLogger:   openLogger,
		validator:    validator.New(),
		timeout:      10 * time.Second,
	}
}

type CreateStyleRequest struct {
	UniqueName   string `json:"unique_name" validate:"required"`
	Name         string `json:"name" validate:"required"`
	PreviewImage string `json:"preview_image"`
}

type UpdateStyleRequest struct {
	Name         string `json:"name"`
	PreviewImage string `json:"preview_image"`
}

func (h *StyleHandler) GetAllStyles(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	styles, err := h.styleService.GetAllStyles(ctx)
	if err != nil {
		logger.Error("Failed to find all styles", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(styles))
}

func (h *StyleHandler) GetStyleByID(c echo.Context) error {
	styleID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	style, err := h.styleService.GetStyleByID(ctx, styleID)
	if err != nil {
		return errorJSON(c, err)
	}

	if uid := viewerID(c); uid != "" {
		h.openLogger.LogStyleOpen(uid, styleID)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(style))
}

func (h *StyleHandler) CreateStyle(c echo.Context) error {
	var req CreateStyleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	style := domain.Style{
		UniqueName:   req.UniqueName,
		Name:         req.Name,
		PreviewImage: req.PreviewImage,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.styleService.CreateStyle(ctx, &style); err != nil {
		logger.Error("Failed to create style", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(style))
}

func (h *StyleHandler) UpdateStyle(c echo.Context) error {
	var req UpdateStyleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	style := domain.Style{
		UniqueName:   c.Param("id"),
		Name:         req.Name,
		PreviewImage: req.PreviewImage,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.styleService.UpdateStyle(ctx, &style); err != nil {
		logger.Error("Failed to update style", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(style))
}

func (h *StyleHandler) DeleteStyle(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.styleService.DeleteStyle(ctx, c.Param("id")); err != nil {
		logger.Error("Failed to delete style", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("style deleted"))
}
