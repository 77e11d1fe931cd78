package postgres

import (
	"context"
	"errors"
	"fmt"
	"styleflame/domain"
	"time"

	"gorm.io/gorm"
)

type StyleRepository struct {
	DB *gorm.DB
}

func NewStyleRepository(db *gorm.DB) *StyleRepository {
	return &StyleRepository{
		DB: db,
	}
}

func (r *StyleRepository) Create(ctx context.Context, style *domain.Style) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	now := time.Now()
	style.CreatedAt = now
	style.UpdatedAt = now

	if err := r.DB.WithContext(ctx).Create(style).Error; err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	return nil
}

func (r *StyleRepository) FindByID(ctx context.Context, uniqueName string) (domain.Style, error) {
	if err := ctx.Err(); err != nil {
		return domain.Style{}, fmt.Errorf("context error: %w", err)
	}

	var style domain.Style
	err := r.DB.WithContext(ctx).Where("unique_name = ?", uniqueName).First(&style).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Style{}, domain.ErrStyleNotFound
		}
		return domain.Style{}, fmt.Errorf("failed to find style: %w", err)
	}

	return style, nil
}

func (r *StyleRepository) FindByIDs(ctx context.Context, uniqueNames []string) ([]domain.Style, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(uniqueNames) == 0 {
		return nil, nil
	}

	var styles []domain.Style
	err := r.DB.WithContext(ctx).Where("unique_name IN ?", uniqueNames).Find(&styles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find styles: %w", err)
	}

	return styles, nil
}

func (r *StyleRepository) FindAll(ctx context.Context) ([]domain.Style, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var styles []domain.Style
	err := r.DB.WithContext(ctx).Find(&styles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find styles: %w", err)
	}

	return styles, nil
}

func (r *StyleRepository) Update(ctx context.Context, style *domain.Style) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if style.Name != "" {
		updateData["name"] = style.Name
	}
	if style.PreviewImage != "" {
		updateData["preview_image"] = style.PreviewImage
	}

	result := r.DB.WithContext(ctx).Model(&domain.Style{}).Where("unique_name = ?", style.UniqueName).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update style: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrStyleNotFound
	}

	return nil
}

func (r *StyleRepository) Delete(ctx context.Context, uniqueName string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("unique_name = ?", uniqueName).Delete(&domain.Style{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete style: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrStyleNotFound
	}

	return nil
}
