package postgres

import (
	"context"
	"errors"
	"fmt"
	"styleflame/domain"

	"gorm.io/gorm"
)

type ArticleRepository struct {
	DB *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{
		DB: db,
	}
}

func (r *ArticleRepository) FindByID(ctx context.Context, uniqueName string) (domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return domain.Article{}, fmt.Errorf("context error: %w", err)
	}

	var article domain.Article
	err := r.DB.WithContext(ctx).Where("unique_name = ?", uniqueName).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Article{}, domain.ErrArticleNotFound
		}
		return domain.Article{}, fmt.Errorf("failed to find article: %w", err)
	}

	return article, nil
}

func (r *ArticleRepository) FindByIDs(ctx context.Context, uniqueNames []string) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(uniqueNames) == 0 {
		return nil, nil
	}

	var articles []domain.Article
	err := r.DB.WithContext(ctx).Where("unique_name IN ?", uniqueNames).Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find articles: %w", err)
	}

	return articles, nil
}

func (r *ArticleRepository) FindAll(ctx context.Context) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var articles []domain.Article
	err := r.DB.WithContext(ctx).Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find articles: %w", err)
	}

	return articles, nil
}

// FindIDsByFacets resolves article-tier facet values to article unique
// names. Dimensions are ANDed, values within a dimension are ORed. An empty
// result with non-empty inputs means no article matches the filters.
func (r *ArticleRepository) FindIDsByFacets(ctx context.Context, colors, wearabilities, brands []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(colors) == 0 && len(wearabilities) == 0 && len(brands) == 0 {
		return nil, nil
	}

	tx := r.DB.WithContext(ctx).Model(&domain.Article{})
	if len(colors) > 0 {
		tx = tx.Where("color IN ?", colors)
	}
	if len(wearabilities) > 0 {
		tx = tx.Where("wearability IN ?", wearabilities)
	}
	if len(brands) > 0 {
		tx = tx.Where("brand IN ?", brands)
	}

	var ids []string
	if err := tx.Pluck("unique_name", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to search articles by facets: %w", err)
	}

	return ids, nil
}
