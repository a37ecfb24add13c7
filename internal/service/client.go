package service

import (
	"context"
	"strings"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"

	"github.com/google/uuid"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) Create(ctx context.Context, client *domain.Client) error {
	if strings.TrimSpace(client.LastName) == "" {
		return domain.ValidationError("last_name", "is required")
	}
	client.ID = uuid.NewString()
	return s.clientRepo.Create(ctx, client)
}

func (s *clientService) Update(ctx context.Context, client *domain.Client) error {
	if strings.TrimSpace(client.LastName) == "" {
		return domain.ValidationError("last_name", "is required")
	}
	return s.clientRepo.Update(ctx, client)
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	return s.clientRepo.Delete(ctx, id)
}
