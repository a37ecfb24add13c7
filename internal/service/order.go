package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/metrics"
	"toolrent-backend/internal/repository"
	"toolrent-backend/internal/utils"

	"github.com/google/uuid"
)

type orderService struct {
	orderRepo  repository.OrderRepository
	toolRepo   repository.ToolRepository
	clientRepo repository.ClientRepository
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	toolRepo repository.ToolRepository,
	clientRepo repository.ClientRepository,
	m *metrics.Metrics,
	now func() time.Time,
) OrderService {
	if now == nil {
		now = time.Now
	}
	return &orderService{
		orderRepo:  orderRepo,
		toolRepo:   toolRepo,
		clientRepo: clientRepo,
		metrics:    m,
		now:        now,
	}
}

func (s *orderService) List(ctx context.Context, q ListQuery) (*OrderList, error) {
	logger.EnterMethod("orderService.List", "filter", q.Filter, "search", q.Search, "sort", q.SortOrder)

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		logger.ExitMethodWithError("orderService.List", err)
		return nil, err
	}

	clientSort, toolSort, filter := sortParams(q)
	list := &OrderList{
		Orders:          ApplyListQuery(orders, q),
		ClientSortParam: clientSort,
		ToolSortParam:   toolSort,
		FilterParam:     filter,
		Search:          q.Search,
	}

	logger.ExitMethod("orderService.List", "total", len(orders), "count", len(list.Orders))
	return list, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) Create(ctx context.Context, order *domain.Order) error {
	logger.EnterMethod("orderService.Create", "toolID", order.ToolID)

	if err := validateOrder(order); err != nil {
		logger.ExitMethodWithError("orderService.Create", err)
		return err
	}

	tool, err := s.toolRepo.GetByID(ctx, order.ToolID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = domain.ValidationError("tool_id", "refers to an unknown tool")
		}
		logger.ExitMethodWithError("orderService.Create", err)
		return err
	}

	order.ID = uuid.NewString()
	order.Tool = tool
	order.EndDate = nil
	if order.StartDate.IsZero() {
		order.StartDate = s.now()
	}
	if order.Price.IsZero() {
		order.Price = tool.DayPrice
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		logger.ExitMethodWithError("orderService.Create", err)
		return err
	}
	s.metrics.RecordOrderCreated()

	logger.ExitMethod("orderService.Create", "orderID", order.ID)
	return nil
}

// Update saves the editable fields of an order. The stored end date is kept.
func (s *orderService) Update(ctx context.Context, order *domain.Order) error {
	logger.EnterMethod("orderService.Update", "orderID", order.ID)

	if err := validateOrder(order); err != nil {
		logger.ExitMethodWithError("orderService.Update", err)
		return err
	}

	existing, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		logger.ExitMethodWithError("orderService.Update", err)
		return err
	}

	if order.ToolID != existing.ToolID {
		tool, err := s.toolRepo.GetByID(ctx, order.ToolID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				err = domain.ValidationError("tool_id", "refers to an unknown tool")
			}
			logger.ExitMethodWithError("orderService.Update", err)
			return err
		}
		order.Tool = tool
	} else {
		order.Tool = existing.Tool
	}
	order.EndDate = existing.EndDate
	if order.StartDate.IsZero() {
		order.StartDate = existing.StartDate
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		logger.ExitMethodWithError("orderService.Update", err)
		return err
	}

	logger.ExitMethod("orderService.Update", "orderID", order.ID)
	return nil
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	logger.EnterMethod("orderService.Delete", "orderID", id)
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		logger.ExitMethodWithError("orderService.Delete", err)
		return err
	}
	s.metrics.RecordOrderDeleted()
	logger.ExitMethod("orderService.Delete", "orderID", id)
	return nil
}

func (s *orderService) CheckClosable(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.IsClosed() {
		return nil, &domain.AlreadyClosedError{OrderID: order.ID, EndDate: *order.EndDate}
	}
	return order, nil
}

// Close ends an open order now and prices it by elapsed whole days at the
// order's day price. The write only succeeds while the stored end date is
// still null, so concurrent closes cannot both win.
func (s *orderService) Close(ctx context.Context, id string) (*domain.Order, error) {
	logger.EnterMethod("orderService.Close", "orderID", id)

	order, err := s.CheckClosable(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyClosed) {
			s.metrics.RecordCloseConflict()
		}
		logger.ExitMethodWithError("orderService.Close", err)
		return nil, err
	}

	endDate := s.now()
	finalPrice, err := utils.CalculatePaymentForDays(order.StartDate, endDate, order.Price)
	if err != nil {
		err = fmt.Errorf("price order %s: %w", id, err)
		logger.ExitMethodWithError("orderService.Close", err)
		return nil, err
	}

	closed, err := s.orderRepo.Close(ctx, id, endDate, finalPrice)
	if err != nil {
		logger.ExitMethodWithError("orderService.Close", err)
		return nil, err
	}
	if !closed {
		// Lost the race: report the end date that won.
		s.metrics.RecordCloseConflict()
		current, err := s.orderRepo.GetByID(ctx, id)
		if err != nil {
			logger.ExitMethodWithError("orderService.Close", err)
			return nil, err
		}
		if current.EndDate == nil {
			err = fmt.Errorf("close order %s: no row updated", id)
		} else {
			err = &domain.AlreadyClosedError{OrderID: id, EndDate: *current.EndDate}
		}
		logger.ExitMethodWithError("orderService.Close", err)
		return nil, err
	}

	if err := order.Close(endDate, finalPrice); err != nil {
		return nil, err
	}
	s.metrics.RecordOrderClosed(finalPrice.InexactFloat64())

	logger.ExitMethod("orderService.Close", "orderID", id, "price", finalPrice.String())
	return order, nil
}

func (s *orderService) FormOptions(ctx context.Context, selectedClientID, selectedToolID string) (*OrderFormOptions, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	tools, err := s.toolRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(clients, func(i, j int) bool { return clients[i].LastName < clients[j].LastName })
	sort.SliceStable(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })

	opts := &OrderFormOptions{
		Clients: make([]SelectItem, 0, len(clients)),
		Tools:   make([]SelectItem, 0, len(tools)),
	}
	for _, c := range clients {
		opts.Clients = append(opts.Clients, SelectItem{Text: c.FullName(), Value: c.ID, Selected: c.ID == selectedClientID})
	}
	for _, t := range tools {
		opts.Tools = append(opts.Tools, SelectItem{Text: t.Name, Value: t.ID, Selected: t.ID == selectedToolID})
	}
	return opts, nil
}

// ListOverdue returns open orders that started more than olderThan ago.
func (s *orderService) ListOverdue(ctx context.Context, olderThan time.Duration) ([]domain.Order, error) {
	return s.orderRepo.ListOpenStartedBefore(ctx, s.now().Add(-olderThan))
}

func validateOrder(o *domain.Order) error {
	if strings.TrimSpace(o.ClientName) == "" {
		return domain.ValidationError("client_name", "is required")
	}
	if strings.TrimSpace(o.ClientPhoneNumber) == "" {
		return domain.ValidationError("client_phone_number", "is required")
	}
	if strings.TrimSpace(o.ToolID) == "" {
		return domain.ValidationError("tool_id", "is required")
	}
	if o.Price.IsNegative() {
		return domain.ValidationError("price", "must not be negative")
	}
	if o.PaidPledge.IsNegative() {
		return domain.ValidationError("paid_pledge", "must not be negative")
	}
	if o.Payment != nil && o.Payment.IsNegative() {
		return domain.ValidationError("payment", "must not be negative")
	}
	return nil
}
