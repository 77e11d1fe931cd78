package postgres

import (
	"context"
	"errors"
	"fmt"
	"styleflame/domain"
	"time"

	"gorm.io/gorm"
)

type OccasionRepository struct {
	DB *gorm.DB
}

func NewOccasionRepository(db *gorm.DB) *OccasionRepository {
	return &OccasionRepository{
		DB: db,
	}
}

func (r *OccasionRepository) Create(ctx context.Context, occasion *domain.Occasion) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	now := time.Now()
	occasion.CreatedAt = now
	occasion.UpdatedAt = now

	if err := r.DB.WithContext(ctx).Create(occasion).Error; err != nil {
		return fmt.Errorf("failed to create occasion: %w", err)
	}

	return nil
}

func (r *OccasionRepository) FindByID(ctx context.Context, uniqueName string) (domain.Occasion, error) {
	if err := ctx.Err(); err != nil {
		return domain.Occasion{}, fmt.Errorf("context error: %w", err)
	}

	var occasion domain.Occasion
	err := r.DB.WithContext(ctx).Where("unique_name = ?", uniqueName).First(&occasion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Occasion{}, domain.ErrOccasionNotFound
		}
		return domain.Occasion{}, fmt.Errorf("failed to find occasion: %w", err)
	}

	return occasion, nil
}

func (r *OccasionRepository) FindByIDs(ctx context.Context, uniqueNames []string) ([]domain.Occasion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(uniqueNames) == 0 {
		return nil, nil
	}

	var occasions []domain.Occasion
	err := r.DB.WithContext(ctx).Where("unique_name IN ?", uniqueNames).Find(&occasions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find occasions: %w", err)
	}

	return occasions, nil
}

func (r *OccasionRepository) FindAll(ctx context.Context) ([]domain.Occasion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var occasions []domain.Occasion
	err := r.DB.WithContext(ctx).Find(&occasions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find occasions: %w", err)
	}

	return occasions, nil
}

func (r *OccasionRepository) Update(ctx context.Context, occasion *domain.Occasion) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if occasion.Name != "" {
		updateData["name"] = occasion.Name
	}
	if occasion.PreviewImage != "" {
		updateData["preview_image"] = occasion.PreviewImage
	}

	result := r.DB.WithContext(ctx).Model(&domain.Occasion{}).Where("unique_name = ?", occasion.UniqueName).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update occasion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOccasionNotFound
	}

	return nil
}

func (r *OccasionRepository) Delete(ctx context.Context, uniqueName string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("unique_name = ?", uniqueName).Delete(&domain.Occasion{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete occasion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOccasionNotFound
	}

	return nil
}
