package style

import (
	"context"
	"fmt"
	"styleflame/domain"
	"styleflame/pkg/logger"
)

// StyleRepository contract interface
type StyleRepository interface {
	Create(ctx context.Context, style *domain.Style) error
	FindByID(ctx context.Context, uniqueName string) (domain.Style, error)
	FindAll(ctx context.Context) ([]domain.Style, error)
	Update(ctx context.Context, style *domain.Style) error
	Delete(ctx context.Context, uniqueName string) error
}

type styleService struct {
	styleRepo StyleRepository
}

func NewStyleService(styleRepo StyleRepository) *styleService {
	return &styleService{
		styleRepo: styleRepo,
	}
}

func (s *styleService) GetAllStyles(ctx context.Context) ([]domain.Style, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	styles, err := s.styleRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all styles", err)
		return nil, err
	}

	return styles, nil
}

func (s *styleService) GetStyleByID(ctx context.Context, uniqueName string) (domain.Style, error) {
	if err := ctx.Err(); err != nil {
		return domain.Style{}, fmt.Errorf("context error: %w", err)
	}

	style, err := s.styleRepo.FindByID(ctx, uniqueName)
	if err != nil {
		return domain.Style{}, err
	}

	return style, nil
}

func (s *styleService) CreateStyle(ctx context.Context, style *domain.Style) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.styleRepo.Create(ctx, style); err != nil {
		logger.Error("Failed to create style", err)
		return err
	}

	return nil
}

func (s *styleService) UpdateStyle(ctx context.Context, style *domain.Style) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return s.styleRepo.Update(ctx, style)
}

func (s *styleService) DeleteStyle(ctx context.Context, uniqueName string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return s.styleRepo.Delete(ctx, uniqueName)
}
