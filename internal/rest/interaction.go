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

type (
	InteractionService interface {
		UpvoteOutfit(ctx context.Context, userID, outfitID string) (domain.OutfitView, error)
		UnvoteOutfit(ctx context.Context, userID, outfitID string) (domain.OutfitView, error)

		LogOutfitOpen(userID, outfitID string)
		LogOutfitBuy(userID, outfitID string)
		LogOccasionOpen(userID, occasionID string)
		LogStyleOpen(userID, styleID string)
		LogArticleOpen(userID, articleID string)
		LogArticleBuy(userID, articleID string)
		LogOutfitShowTime(userID, outfitID string, showTimeMs int64) error
		LogOutfitZoomShowTime(userID, outfitID string, showTimeMs int64) error
		LogArticleZoomShowTime(userID, articleID string, showTimeMs int64) error
	}

	ShowTimeRequest struct {
		ShowTimeMs int64 `json:"show_time_ms" validate:"required,gt=0"`
	}
)

type InteractionHandler struct {
	interactionService InteractionService
	validator          *validator.Validate
	timeout            time.Duration
}

func NewInteractionHandler(interactionService InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
		validator:          validator.New(),
		timeout:            10 * time.Second,
	}
}

// ---- Upvotes ----

func (h *InteractionHandler) UpvoteOutfit(c echo.Context) error {
	uid := viewerID(c)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	outfit, err := h.interactionService.UpvoteOutfit(ctx, uid, c.Param("id"))
	if err != nil {
		logger.Error("Failed to upvote outfit", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(outfit))
}

func (h *InteractionHandler) UnvoteOutfit(c echo.Context) error {
	uid := viewerID(c)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	outfit, err := h.interactionService.UnvoteOutfit(ctx, uid, c.Param("id"))
	if err != nil {
		logger.Error("Failed to unvote outfit", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(outfit))
}

// ---- Fire-and-forget event routes ----
// Each accepts the event, returns immediately and never surfaces a storage
// failure to the client.

func (h *InteractionHandler) LogOutfitBuy(c echo.Context) error {
	uid := viewerID(c)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	h.interactionService.LogOutfitBuy(uid, c.Param("id"))
	return c.JSON(http.StatusAccepted, fres.Response.StatusOK("event accepted"))
}

func (h *InteractionHandler) LogOutfitShowTime(c echo.Context) error {
	uid := viewerID(c)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req ShowTimeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.interactionService.LogOutfitShowTime(uid, c.Param("id"), req.ShowTimeMs); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusAccepted, fres.Response.StatusOK("event accepted"))
}

func (h *InteractionHandler) LogOutfitZoomShowTime(c echo.Context) error {
	uid := viewerID(c)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req ShowTimeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.interactionService.LogOutfitZoomShowTime(uid, c.Param("id"), req.ShowTimeMs); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusAccepted, fres.Response.StatusOK("event accepted"))
}

func (h *InteractionHandler) LogArticleZoomShowTime(c echo.Context) error {
	uid := viewerID(c)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req ShowTimeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.interactionService.LogArticleZoomShowTime(uid, c.Param("id"), req.ShowTimeMs); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusAccepted, fres.Response.StatusOK("event accepted"))
}

func (h *InteractionHandler) LogArticleBuy(c echo.Context) error {
	uid := viewerID(c)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	h.interactionService.LogArticleBuy(uid, c.Param("id"))
	return c.JSON(http.StatusAccepted, fres.Response.StatusOK("event accepted"))
}
