package postgres

import (
	"context"
	"errors"
	"fmt"
	"styleflame/domain"
	"time"

	"gorm.io/gorm"
)

// orderByColumns maps the frontend orderBy values onto outfit columns. Only
// whitelisted fields are sortable; anything else falls back to the default.
var orderByColumns = map[string]string{
	"updatedAt":    "updated_at",
	"createdAt":    "created_at",
	"votesCounter": "votes_counter",
	"totalPrice":   "total_price",
}

// OrderByColumn resolves an orderBy request value to a column name, falling
// back to most-recently-updated-first.
func OrderByColumn(orderBy string) string {
	if col, ok := orderByColumns[orderBy]; ok {
		return col
	}
	return "updated_at"
}

type OutfitRepository struct {
	DB *gorm.DB
}

func NewOutfitRepository(db *gorm.DB) *OutfitRepository {
	return &OutfitRepository{
		DB: db,
	}
}

func (r *OutfitRepository) Create(ctx context.Context, outfit *domain.Outfit, articleIDs []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	now := time.Now()
	outfit.CreatedAt = now
	outfit.UpdatedAt = now

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(outfit).Error; err != nil {
			return fmt.Errorf("failed to create outfit: %w", err)
		}

		for _, articleID := range articleIDs {
			link := domain.OutfitArticle{OutfitID: outfit.UniqueName, ArticleID: articleID}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("failed to link article %s: %w", articleID, err)
			}
		}

		return nil
	})
}

func (r *OutfitRepository) FindByID(ctx context.Context, uniqueName string) (domain.Outfit, error) {
	if err := ctx.Err(); err != nil {
		return domain.Outfit{}, fmt.Errorf("context error: %w", err)
	}

	var outfit domain.Outfit
	err := r.DB.WithContext(ctx).Where("unique_name = ?", uniqueName).First(&outfit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Outfit{}, domain.ErrOutfitNotFound
		}
		return domain.Outfit{}, fmt.Errorf("failed to find outfit: %w", err)
	}

	return outfit, nil
}

func (r *OutfitRepository) FindByIDs(ctx context.Context, uniqueNames []string) ([]domain.Outfit, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(uniqueNames) == 0 {
		return nil, nil
	}

	var outfits []domain.Outfit
	err := r.DB.WithContext(ctx).Where("unique_name IN ?", uniqueNames).Find(&outfits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find outfits: %w", err)
	}

	return outfits, nil
}

// FindAll returns the catalog listing ordered by the requested field
// descending, capped at limit when limit > 0.
func (r *OutfitRepository) FindAll(ctx context.Context, orderBy string, limit int) ([]domain.Outfit, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	tx := r.DB.WithContext(ctx).Order(OrderByColumn(orderBy) + " DESC, unique_name ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var outfits []domain.Outfit
	if err := tx.Find(&outfits).Error; err != nil {
		return nil, fmt.Errorf("failed to find outfits: %w", err)
	}

	return outfits, nil
}

// FindByStyle returns up to limit outfits of one style in a deterministic
// catalog order. The caller re-sorts the concatenation afterwards.
func (r *OutfitRepository) FindByStyle(ctx context.Context, styleID string, limit int) ([]domain.Outfit, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var outfits []domain.Outfit
	err := r.DB.WithContext(ctx).
		Where("style_id = ?", styleID).
		Order("created_at DESC, unique_name ASC").
		Limit(limit).
		Find(&outfits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find outfits by style: %w", err)
	}

	return outfits, nil
}

func (r *OutfitRepository) Update(ctx context.Context, outfit *domain.Outfit, articleIDs []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if outfit.Name != "" {
		updateData["name"] = outfit.Name
	}
	if outfit.PreviewImage != "" {
		updateData["preview_image"] = outfit.PreviewImage
	}
	if outfit.Image != "" {
		updateData["image"] = outfit.Image
	}
	if outfit.OccasionID != "" {
		updateData["occasion_id"] = outfit.OccasionID
	}
	if outfit.StyleID != "" {
		updateData["style_id"] = outfit.StyleID
	}
	if outfit.StylistID != "" {
		updateData["stylist_id"] = outfit.StylistID
	}
	if outfit.TotalPrice > 0 {
		updateData["total_price"] = outfit.TotalPrice
	}
	if outfit.Currency != "" {
		updateData["currency"] = outfit.Currency
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Outfit{}).Where("unique_name = ?", outfit.UniqueName).Updates(updateData)
		if result.Error != nil {
			return fmt.Errorf("failed to update outfit: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrOutfitNotFound
		}

		if articleIDs != nil {
			if err := tx.Where("outfit_id = ?", outfit.UniqueName).Delete(&domain.OutfitArticle{}).Error; err != nil {
				return fmt.Errorf("failed to unlink articles: %w", err)
			}
			for _, articleID := range articleIDs {
				link := domain.OutfitArticle{OutfitID: outfit.UniqueName, ArticleID: articleID}
				if err := tx.Create(&link).Error; err != nil {
					return fmt.Errorf("failed to link article %s: %w", articleID, err)
				}
			}
		}

		return nil
	})
}

func (r *OutfitRepository) Delete(ctx context.Context, uniqueName string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("unique_name = ?", uniqueName).Delete(&domain.Outfit{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete outfit: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrOutfitNotFound
		}

		if err := tx.Where("outfit_id = ?", uniqueName).Delete(&domain.OutfitArticle{}).Error; err != nil {
			return fmt.Errorf("failed to unlink articles: %w", err)
		}
		if err := tx.Where("outfit_id = ?", uniqueName).Delete(&domain.OutfitText{}).Error; err != nil {
			return fmt.Errorf("failed to delete outfit text: %w", err)
		}

		return nil
	})
}

// AddVoteDelta applies an atomic increment/decrement to the vote counter.
// Never a read-modify-write of the whole row.
func (r *OutfitRepository) AddVoteDelta(ctx context.Context, uniqueName string, delta int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Model(&domain.Outfit{}).
		Where("unique_name = ?", uniqueName).
		UpdateColumn("votes_counter", gorm.Expr("votes_counter + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to update votes counter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOutfitNotFound
	}

	return nil
}

// ArticleLinks returns the outfit→article rows for the given outfits.
func (r *OutfitRepository) ArticleLinks(ctx context.Context, outfitIDs []string) ([]domain.OutfitArticle, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(outfitIDs) == 0 {
		return nil, nil
	}

	var links []domain.OutfitArticle
	err := r.DB.WithContext(ctx).Where("outfit_id IN ?", outfitIDs).Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find outfit articles: %w", err)
	}

	return links, nil
}

// StylesByOutfitIDs maps outfit unique names to their style ID. Outfits that
// no longer exist are simply absent from the map.
func (r *OutfitRepository) StylesByOutfitIDs(ctx context.Context, outfitIDs []string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	styles := make(map[string]string, len(outfitIDs))
	if len(outfitIDs) == 0 {
		return styles, nil
	}

	var outfits []domain.Outfit
	err := r.DB.WithContext(ctx).
		Select("unique_name", "style_id").
		Where("unique_name IN ?", outfitIDs).
		Find(&outfits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve outfit styles: %w", err)
	}

	for _, outfit := range outfits {
		styles[outfit.UniqueName] = outfit.StyleID
	}

	return styles, nil
}
