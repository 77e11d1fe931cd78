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

type SearchService interface {
	SearchOutfits(ctx context.Context, viewerID, searchBy, filterBy, orderBy string) ([]domain.OutfitView, error)
}

type SearchLogger interface {
	LogSearch(userID, searchBy, filterBy, orderBy string)
	LogSearchSort(userID, orderBy string)
}

type SearchHandler struct {
	searchService SearchService
	searchLogger  SearchLogger
	timeout       time.Duration
}

func NewSearchHandler(searchService SearchService, searchLogger SearchLogger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		searchLogger:  searchLogger,
		timeout:       10 * time.Second,
	}
}

// SearchOutfits serves GET /outfits/search?searchBy=&filterBy=&orderBy=.
func (h *SearchHandler) SearchOutfits(c echo.Context) error {
	searchBy := c.QueryParam("searchBy")
	filterBy := c.QueryParam("filterBy")
	orderBy := c.QueryParam("orderBy")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	outfits, err := h.searchService.SearchOutfits(ctx, viewerID(c), searchBy, filterBy, orderBy)
	if err != nil {
		logger.Error("Failed to search outfits", err)
		return errorJSON(c, err)
	}

	if uid := viewerID(c); uid != "" {
		if searchBy != "" || filterBy != "" {
			h.searchLogger.LogSearch(uid, searchBy, filterBy, orderBy)
		}
		if orderBy != "" {
			h.searchLogger.LogSearchSort(uid, orderBy)
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(outfits))
}
