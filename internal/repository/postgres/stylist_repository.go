package postgres

import (
	"context"
	"errors"
	"fmt"
	"styleflame/domain"
	"time"

	"gorm.io/gorm"
)

type StylistRepository struct {
	DB *gorm.DB
}

func NewStylistRepository(db *gorm.DB) *StylistRepository {
	return &StylistRepository{
		DB: db,
	}
}

func (r *StylistRepository) Create(ctx context.Context, stylist *domain.Stylist) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	now := time.Now()
	stylist.CreatedAt = now
	stylist.UpdatedAt = now

	if err := r.DB.WithContext(ctx).Create(stylist).Error; err != nil {
		return fmt.Errorf("failed to create stylist: %w", err)
	}

	return nil
}

func (r *StylistRepository) FindByID(ctx context.Context, uniqueName string) (domain.Stylist, error) {
	if err := ctx.Err(); err != nil {
		return domain.Stylist{}, fmt.Errorf("context error: %w", err)
	}

	var stylist domain.Stylist
	err := r.DB.WithContext(ctx).Where("unique_name = ?", uniqueName).First(&stylist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Stylist{}, domain.ErrStylistNotFound
		}
		return domain.Stylist{}, fmt.Errorf("failed to find stylist: %w", err)
	}

	return stylist, nil
}

func (r *StylistRepository) FindByIDs(ctx context.Context, uniqueNames []string) ([]domain.Stylist, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(uniqueNames) == 0 {
		return nil, nil
	}

	var stylists []domain.Stylist
	err := r.DB.WithContext(ctx).Where("unique_name IN ?", uniqueNames).Find(&stylists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find stylists: %w", err)
	}

	return stylists, nil
}

func (r *StylistRepository) FindAll(ctx context.Context) ([]domain.Stylist, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var stylists []domain.Stylist
	err := r.DB.WithContext(ctx).Find(&stylists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find stylists: %w", err)
	}

	return stylists, nil
}

func (r *StylistRepository) Update(ctx context.Context, stylist *domain.Stylist) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if stylist.Name != "" {
		updateData["name"] = stylist.Name
	}
	if stylist.PreviewImage != "" {
		updateData["preview_image"] = stylist.PreviewImage
	}

	result := r.DB.WithContext(ctx).Model(&domain.Stylist{}).Where("unique_name = ?", stylist.UniqueName).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update stylist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrStylistNotFound
	}

	return nil
}

func (r *StylistRepository) Delete(ctx context.Context, uniqueName string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("unique_name = ?", uniqueName).Delete(&domain.Stylist{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete stylist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrStylistNotFound
	}

	return nil
}
