package stylist

import (
	"context"
	"fmt"
	"styleflame/domain"
	"styleflame/pkg/logger"
)

// StylistRepository contract interface
type StylistRepository interface {
	Create(ctx context.Context, stylist *domain.Stylist) error
	FindByID(ctx context.Context, uniqueName string) (domain.Stylist, error)
	FindAll(ctx context.Context) ([]domain.Stylist, error)
	Update(ctx context.Context, stylist *domain.Stylist) error
	Delete(ctx context.Context, uniqueName string) error
}

type stylistService struct {
	stylistRepo StylistRepository
}

func NewStylistService(stylistRepo StylistRepository) *stylistService {
	return &stylistService{
		stylistRepo: stylistRepo,
	}
}

func (s *stylistService) GetAllStylists(ctx context.Context) ([]domain.Stylist, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	stylists, err := s.stylistRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all stylists", err)
		return nil, err
	}

	return stylists, nil
}

func (s *stylistService) GetStylistByID(ctx context.Context, uniqueName string) (domain.Stylist, error) {
	if err := ctx.Err(); err != nil {
		return domain.Stylist{}, fmt.Errorf("context error: %w", err)
	}

	stylist, err := s.stylistRepo.FindByID(ctx, uniqueName)
	if err != nil {
		return domain.Stylist{}, err
	}

	return stylist, nil
}

func (s *stylistService) CreateStylist(ctx context.Context, stylist *domain.Stylist) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.stylistRepo.Create(ctx, stylist); err != nil {
		logger.Error("Failed to create stylist", err)
		return err
	}

	return nil
}

func (s *stylistService) UpdateStylist(ctx context.Context, stylist *domain.Stylist) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return s.stylistRepo.Update(ctx, stylist)
}

func (s *stylistService) DeleteStylist(ctx context.Context, uniqueName string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return s.stylistRepo.Delete(ctx, uniqueName)
}
