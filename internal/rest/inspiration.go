package rest

import (
	"context"
	"net/http"
	"styleflame/domain"
	"styleflame/pkg/logger"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type FeedService interface {
	GetInspiration(ctx context.Context, viewerID, orderBy string) ([]domain.OutfitView, error)
}

type SortLogger interface {
	LogInspirationSort(userID, orderBy string)
}

type InspirationHandler struct {
	feedService FeedService
	sortLogger  SortLogger
	timeout     time.Duration
}

func NewInspirationHandler(feedService FeedService, sortLogger SortLogger) *InspirationHandler {
	return &InspirationHandler{
		feedService: feedService,
		sortLogger:  sortLogger,
		timeout:     10 * time.Second,
	}
}

// GetInspiration serves the personalized feed of the authenticated viewer.
func (h *InspirationHandler) GetInspiration(c echo.Context) error {
	uid := viewerID(c)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	orderBy := c.QueryParam("orderBy")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	outfits, err := h.feedService.GetInspiration(ctx, uid, orderBy)
	if err != nil {
		logger.Error("Failed to build inspiration feed", err)
		return errorJSON(c, err)
	}

	// an explicit sort choice is a logged event; the default order is not
	if orderBy != "" {
		h.sortLogger.LogInspirationSort(uid, orderBy)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(outfits))
}
