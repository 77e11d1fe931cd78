package occasion

import (
	"context"
	"fmt"
	"styleflame/domain"
	"styleflame/pkg/logger"
)

// OccasionRepository contract interface
type OccasionRepository interface {
	Create(ctx context.Context, occasion *domain.Occasion) error
	FindByID(ctx context.Context, uniqueName string) (domain.Occasion, error)
	FindAll(ctx context.Context) ([]domain.Occasion, error)
	Update(ctx context.Context, occasion *domain.Occasion) error
	Delete(ctx context.Context, uniqueName string) error
}

type occasionService struct {
	occasionRepo OccasionRepository
}

func NewOccasionService(occasionRepo OccasionRepository) *occasionService {
	return &occasionService{
		occasionRepo: occasionRepo,
	}
}

func (s *occasionService) GetAllOccasions(ctx context.Context) ([]domain.Occasion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	occasions, err := s.occasionRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all occasions", err)
		return nil, err
	}

	return occasions, nil
}

func (s *occasionService) GetOccasionByID(ctx context.Context, uniqueName string) (domain.Occasion, error) {
	if err := ctx.Err(); err != nil {
		return domain.Occasion{}, fmt.Errorf("context error: %w", err)
	}

	occasion, err := s.occasionRepo.FindByID(ctx, uniqueName)
	if err != nil {
		return domain.Occasion{}, err
	}

	return occasion, nil
}

func (s *occasionService) CreateOccasion(ctx context.Context, occasion *domain.Occasion) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.occasionRepo.Create(ctx, occasion); err != nil {
		logger.Error("Failed to create occasion", err)
		return err
	}

	return nil
}

func (s *occasionService) UpdateOccasion(ctx context.Context, occasion *domain.Occasion) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return s.occasionRepo.Update(ctx, occasion)
}

func (s *occasionService) DeleteOccasion(ctx context.Context, uniqueName string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return s.occasionRepo.Delete(ctx, uniqueName)
}
