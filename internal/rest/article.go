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

type ArticleService interface {
	GetAllArticles(ctx context.Context) ([]domain.Article, error)
	GetArticleByID(ctx context.Context, uniqueName string) (domain.Article, error)
}

type ArticleOpenLogger interface {
	LogArticleOpen(userID, articleID string)
}

type ArticleHandler struct {
	articleService ArticleService
	openLogger     ArticleOpenLogger
	timeout        time.Duration
}

func NewArticleHandler(articleService ArticleService, openLogger ArticleOpenLogger) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		openLogger:     openLogger,
		timeout:        10 * time.Second,
	}
}

func (h *ArticleHandler) GetAllArticles(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	articles, err := h.articleService.GetAllArticles(ctx)
	if err != nil {
		logger.Error("Failed to find all articles", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(articles))
}

func (h *ArticleHandler) GetArticleByID(c echo.Context) error {
	articleID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	article, err := h.articleService.GetArticleByID(ctx, articleID)
	if err != nil {
		return errorJSON(c, err)
	}

	if uid := viewerID(c); uid != "" {
		h.openLogger.LogArticleOpen(uid, articleID)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(article))
}
