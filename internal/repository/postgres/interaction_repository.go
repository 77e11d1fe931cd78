package postgres

import (
	"context"
	"fmt"
	"styleflame/domain"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{
		DB: db,
	}
}

// Append stores one interaction event. Events are immutable facts; nothing
// ever updates them afterwards.
func (r *InteractionRepository) Append(ctx context.Context, interaction *domain.Interaction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if interaction.ID == "" {
		interaction.ID = uuid.NewString()
	}
	now := time.Now()
	interaction.CreatedAt = now
	interaction.UpdatedAt = now

	if err := r.DB.WithContext(ctx).Create(interaction).Error; err != nil {
		return fmt.Errorf("failed to append interaction: %w", err)
	}

	return nil
}

// InsertUpvote conditionally records an upvote for (user, outfit). The
// partial unique index on upvote rows makes the existence check and the
// insert a single statement; a false return means the upvote already existed.
func (r *InteractionRepository) InsertUpvote(ctx context.Context, userID, outfitID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	now := time.Now()
	interaction := domain.Interaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    domain.ActionOutfitUpvote,
		OutfitID:  outfitID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&interaction)
	if result.Error != nil {
		return false, fmt.Errorf("failed to insert upvote: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// DeleteUpvote removes the viewer's upvote for an outfit. A false return
// means there was nothing to remove.
func (r *InteractionRepository) DeleteUpvote(ctx context.Context, userID, outfitID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND action = ? AND outfit_id = ?", userID, domain.ActionOutfitUpvote, outfitID).
		Delete(&domain.Interaction{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete upvote: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// RecentByAction returns the viewer's most recent events on one channel,
// newest first. Limits are per channel, never pooled.
func (r *InteractionRepository) RecentByAction(ctx context.Context, userID, action string, limit int) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var interactions []domain.Interaction
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND action = ?", userID, action).
		Order("created_at DESC").
		Limit(limit).
		Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find interactions: %w", err)
	}

	return interactions, nil
}

// RecentStyleFilterSearches returns the viewer's most recent search events
// whose filter expression selects at least one style.
func (r *InteractionRepository) RecentStyleFilterSearches(ctx context.Context, userID string, limit int) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var interactions []domain.Interaction
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND action = ?", userID, domain.ActionOutfitSearch).
		Where("payload ->> 'filterBy' LIKE ?", "%"+domain.FilterFieldStyle+"%").
		Order("created_at DESC").
		Limit(limit).
		Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find style filter interactions: %w", err)
	}

	return interactions, nil
}

// UpvotedSet reports which of the given outfits the viewer currently has an
// active upvote for. Joined live at read time, never cached on the outfit.
func (r *InteractionRepository) UpvotedSet(ctx context.Context, userID string, outfitIDs []string) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	upvoted := make(map[string]bool, len(outfitIDs))
	if userID == "" || len(outfitIDs) == 0 {
		return upvoted, nil
	}

	var ids []string
	err := r.DB.WithContext(ctx).
		Model(&domain.Interaction{}).
		Where("user_id = ? AND action = ? AND outfit_id IN ?", userID, domain.ActionOutfitUpvote, outfitIDs).
		Pluck("outfit_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find upvoted outfits: %w", err)
	}

	for _, id := range ids {
		upvoted[id] = true
	}

	return upvoted, nil
}
