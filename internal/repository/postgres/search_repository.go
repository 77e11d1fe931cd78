package postgres

import (
	"context"
	"fmt"
	"styleflame/domain"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SearchRepository struct {
	DB *gorm.DB
}

func NewSearchRepository(db *gorm.DB) *SearchRepository {
	return &SearchRepository{
		DB: db,
	}
}

// Search executes a resolved outfit search. With keywords present the rows
// are ranked by full-text relevance over the denormalized outfit text;
// otherwise by the requested order field descending. Filters are ANDed in
// either way.
func (r *SearchRepository) Search(ctx context.Context, query domain.OutfitSearchQuery) ([]domain.Outfit, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	tx := r.DB.WithContext(ctx).Model(&domain.Outfit{})

	if query.Keywords != "" {
		tx = tx.
			Joins("JOIN outfit_texts ON outfit_texts.outfit_id = outfits.unique_name").
			Where("to_tsvector('simple', outfit_texts.search_text) @@ plainto_tsquery('simple', ?)", query.Keywords)
	}

	if len(query.OccasionIDs) > 0 {
		tx = tx.Where("outfits.occasion_id IN ?", query.OccasionIDs)
	}
	if len(query.StyleIDs) > 0 {
		tx = tx.Where("outfits.style_id IN ?", query.StyleIDs)
	}

	if len(query.PriceRanges) > 0 {
		priceGroup := r.DB.Session(&gorm.Session{NewDB: true})
		grouped := false
		for _, tier := range query.PriceRanges {
			rangeCond := r.DB.Session(&gorm.Session{NewDB: true}).Model(&domain.Outfit{})
			if tier.Min != nil {
				rangeCond = rangeCond.Where("outfits.total_price > ?", *tier.Min)
			}
			if tier.Max != nil {
				rangeCond = rangeCond.Where("outfits.total_price <= ?", *tier.Max)
			}
			if tier.Min == nil && tier.Max == nil {
				continue
			}
			if !grouped {
				priceGroup = rangeCond
				grouped = true
			} else {
				priceGroup = priceGroup.Or(rangeCond)
			}
		}
		if grouped {
			tx = tx.Where(priceGroup)
		}
	}

	if query.MatchNoArticle {
		// article filters that no article satisfies must yield nothing,
		// never everything
		tx = tx.Where("1 = 0")
	} else if len(query.ArticleIDs) > 0 {
		tx = tx.Where(
			"outfits.unique_name IN (SELECT outfit_id FROM outfit_articles WHERE article_id IN ?)",
			query.ArticleIDs,
		)
	}

	if query.Keywords != "" {
		// relevance overrides any requested order field
		tx = tx.
			Select(
				"outfits.*, ts_rank(to_tsvector('simple', outfit_texts.search_text), plainto_tsquery('simple', ?)) AS relevance",
				query.Keywords,
			).
			Order("relevance DESC, outfits.unique_name ASC")
	} else {
		tx = tx.Order(OrderByColumn(query.OrderBy) + " DESC, outfits.unique_name ASC")
	}

	var outfits []domain.Outfit
	if err := tx.Find(&outfits).Error; err != nil {
		return nil, fmt.Errorf("failed to search outfits: %w", err)
	}

	return outfits, nil
}

// UpsertOutfitText rebuilds the searchable text row of one outfit.
func (r *SearchRepository) UpsertOutfitText(ctx context.Context, text *domain.OutfitText) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	now := time.Now()
	text.CreatedAt = now
	text.UpdatedAt = now

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "outfit_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"search_text", "updated_at"}),
		}).
		Create(text).Error
	if err != nil {
		return fmt.Errorf("failed to upsert outfit text: %w", err)
	}

	return nil
}
