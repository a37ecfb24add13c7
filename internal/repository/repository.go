package repository

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Order, error)
	// Close sets end date and final price only while the stored end date is
	// still null. It reports false when another writer closed the order first.
	Close(ctx context.Context, id string, endDate time.Time, price decimal.Decimal) (bool, error)
	ListOpenStartedBefore(ctx context.Context, before time.Time) ([]domain.Order, error)
}

type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id string) (*domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Tool, error)
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Client, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
