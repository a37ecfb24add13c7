package service

import (
	"context"
	"strings"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository"

	"github.com/google/uuid"
)

type toolService struct {
	toolRepo repository.ToolRepository
}

func NewToolService(toolRepo repository.ToolRepository) ToolService {
	return &toolService{toolRepo: toolRepo}
}

func (s *toolService) List(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.List(ctx)
}

func (s *toolService) Get(ctx context.Context, id string) (*domain.Tool, error) {
	return s.toolRepo.GetByID(ctx, id)
}

func (s *toolService) Create(ctx context.Context, tool *domain.Tool) error {
	logger.EnterMethod("toolService.Create", "name", tool.Name)
	if err := validateTool(tool); err != nil {
		logger.ExitMethodWithError("toolService.Create", err)
		return err
	}
	tool.ID = uuid.NewString()
	if err := s.toolRepo.Create(ctx, tool); err != nil {
		logger.ExitMethodWithError("toolService.Create", err)
		return err
	}
	logger.ExitMethod("toolService.Create", "toolID", tool.ID)
	return nil
}

func (s *toolService) Update(ctx context.Context, tool *domain.Tool) error {
	if err := validateTool(tool); err != nil {
		return err
	}
	return s.toolRepo.Update(ctx, tool)
}

func (s *toolService) Delete(ctx context.Context, id string) error {
	return s.toolRepo.Delete(ctx, id)
}

func validateTool(t *domain.Tool) error {
	if strings.TrimSpace(t.Name) == "" {
		return domain.ValidationError("name", "is required")
	}
	if t.DayPrice.IsNegative() {
		return domain.ValidationError("day_price", "must not be negative")
	}
	if t.Pledge.IsNegative() {
		return domain.ValidationError("pledge", "must not be negative")
	}
	return nil
}
