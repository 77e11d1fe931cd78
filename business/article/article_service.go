package article

import (
	"context"
	"fmt"
	"styleflame/domain"
	"styleflame/pkg/logger"
)

// ArticleRepository contract interface
type ArticleRepository interface {
	FindByID(ctx context.Context, uniqueName string) (domain.Article, error)
	FindAll(ctx context.Context) ([]domain.Article, error)
}

type articleService struct {
	articleRepo ArticleRepository
}

func NewArticleService(articleRepo ArticleRepository) *articleService {
	return &articleService{
		articleRepo: articleRepo,
	}
}

func (s *articleService) GetAllArticles(ctx context.Context) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	articles, err := s.articleRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all articles", err)
		return nil, err
	}

	return articles, nil
}

func (s *articleService) GetArticleByID(ctx context.Context, uniqueName string) (domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return domain.Article{}, fmt.Errorf("context error: %w", err)
	}

	article, err := s.articleRepo.FindByID(ctx, uniqueName)
	if err != nil {
		return domain.Article{}, err
	}

	return article, nil
}
