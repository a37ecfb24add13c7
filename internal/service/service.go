package service

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"
)

// ListQuery carries the list screen parameters: filter keyword, client name
// search and sort key.
type ListQuery struct {
	Filter    domain.OrderFilter
	Search    string
	SortOrder domain.OrderSort
}

// OrderList is a filtered, searched and sorted order listing together with
// the parameters a list view uses to toggle sorting.
type OrderList struct {
	Orders          []domain.Order `json:"orders"`
	ClientSortParam string         `json:"client_sort_param"`
	ToolSortParam   string         `json:"tool_sort_param"`
	FilterParam     string         `json:"filter_param"`
	Search          string         `json:"search"`
}

// SelectItem is one option of a form dropdown.
type SelectItem struct {
	Text     string `json:"text"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// OrderFormOptions lists the choices offered by the create and edit forms.
type OrderFormOptions struct {
	Clients []SelectItem `json:"clients"`
	Tools   []SelectItem `json:"tools"`
}

type OrderService interface {
	List(ctx context.Context, q ListQuery) (*OrderList, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
	// CheckClosable loads an order for the close confirmation and fails
	// with an AlreadyClosedError when it has an end date.
	CheckClosable(ctx context.Context, id string) (*domain.Order, error)
	Close(ctx context.Context, id string) (*domain.Order, error)
	FormOptions(ctx context.Context, selectedClientID, selectedToolID string) (*OrderFormOptions, error)
	ListOverdue(ctx context.Context, olderThan time.Duration) ([]domain.Order, error)
}

type ToolService interface {
	List(ctx context.Context) ([]domain.Tool, error)
	Get(ctx context.Context, id string) (*domain.Tool, error)
	Create(ctx context.Context, tool *domain.Tool) error
	Update(ctx context.Context, tool *domain.Tool) error
	Delete(ctx context.Context, id string) error
}

type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, time.Time, *domain.User, error)
	CreateUser(ctx context.Context, email, password string, roles []domain.Role) (*domain.User, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}
