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

type OutfitService interface {
	GetAllOutfits(ctx context.Context, viewerID, orderBy string) ([]domain.OutfitView, error)
	GetOutfitByID(ctx context.Context, viewerID, uniqueName string) (domain.OutfitView, error)
	CreateOutfit(ctx context.Context, outfit *domain.Outfit, articleIDs []string) error
	UpdateOutfit(ctx context.Context, outfit *domain.Outfit, articleIDs []string) error
	DeleteOutfit(ctx context.Context, uniqueName string) error
}

// OutfitOpenLogger records outfit views without blocking the response.
type OutfitOpenLogger interface {
	LogOutfitOpen(userID, outfitID string)
}

type OutfitHandler struct {
	outfitService OutfitService
	openLogger    OutfitOpenLogger
	validator     *validator.Validate
	timeout       time.Duration
}

func NewOutfitHandler(outfitService OutfitService, openLogger OutfitOpenLogger) *OutfitHandler {
	return &OutfitHandler{
		outfitService: outfitService,
		openLogger:    openLogger,
		validator:     validator.New(),
		timeout:       10 * time.Second,
	}
}

type CreateOutfitRequest struct {
	UniqueName   string   `json:"unique_name" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	PreviewImage string   `json:"preview_image"`
	Image        string   `json:"image"`
	OccasionID   string   `json:"occasion_id"`
	StyleID      string   `json:"style_id"`
	StylistID    string   `json:"stylist_id"`
	TotalPrice   float64  `json:"total_price" validate:"gte=0"`
	Currency     string   `json:"currency"`
	ArticleIDs   []string `json:"article_ids"`
}

type UpdateOutfitRequest struct {
	Name         string   `json:"name"`
	PreviewImage string   `json:"preview_image"`
	Image        string   `json:"image"`
	OccasionID   string   `json:"occasion_id"`
	StyleID      string   `json:"style_id"`
	StylistID    string   `json:"stylist_id"`
	TotalPrice   float64  `json:"total_price" validate:"gte=0"`
	Currency     string   `json:"currency"`
	ArticleIDs   []string `json:"article_ids"`
}

func (h *OutfitHandler) GetAllOutfits(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	outfits, err := h.outfitService.GetAllOutfits(ctx, viewerID(c), c.QueryParam("orderBy"))
	if err != nil {
		logger.Error("Failed to find all outfits", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(outfits))
}

func (h *OutfitHandler) GetOutfitByID(c echo.Context) error {
	outfitID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	outfit, err := h.outfitService.GetOutfitByID(ctx, viewerID(c), outfitID)
	if err != nil {
		return errorJSON(c, err)
	}

	// opening an outfit is itself a profiling signal
	if uid := viewerID(c); uid != "" {
		h.openLogger.LogOutfitOpen(uid, outfitID)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(outfit))
}

func (h *OutfitHandler) CreateOutfit(c echo.Context) error {
	var req CreateOutfitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	outfit := domain.Outfit{
		UniqueName:   req.UniqueName,
		Name:         req.Name,
		PreviewImage: req.PreviewImage,
		Image:        req.Image,
		OccasionID:   req.OccasionID,
		StyleID:      req.StyleID,
		StylistID:    req.StylistID,
		TotalPrice:   req.TotalPrice,
		Currency:     req.Currency,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.outfitService.CreateOutfit(ctx, &outfit, req.ArticleIDs); err != nil {
		logger.Error("Failed to create outfit", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(outfit))
}

func (h *OutfitHandler) UpdateOutfit(c echo.Context) error {
	var req UpdateOutfitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	outfit := domain.Outfit{
		UniqueName:   c.Param("id"),
		Name:         req.Name,
		PreviewImage: req.PreviewImage,
		Image:        req.Image,
		OccasionID:   req.OccasionID,
		StyleID:      req.StyleID,
		StylistID:    req.StylistID,
		TotalPrice:   req.TotalPrice,
		Currency:     req.Currency,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.outfitService.UpdateOutfit(ctx, &outfit, req.ArticleIDs); err != nil {
		logger.Error("Failed to update outfit", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(outfit))
}

func (h *OutfitHandler) DeleteOutfit(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.outfitService.DeleteOutfit(ctx, c.Param("id")); err != nil {
		logger.Error("Failed to delete outfit", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("outfit deleted"))
}
