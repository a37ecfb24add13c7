package service

import (
	"sort"
	"strings"

	"toolrent-backend/internal/domain"
)

// ApplyListQuery filters, then searches, then sorts orders. The input slice
// is not modified.
func ApplyListQuery(orders []domain.Order, q ListQuery) []domain.Order {
	result := FilterOrders(orders, q.Filter)
	result = SearchOrders(result, q.Search)
	SortOrders(result, q.SortOrder)
	return result
}

// FilterOrders keeps open orders for "active" (or no filter) and closed
// orders for "closed". Any other keyword keeps everything.
func FilterOrders(orders []domain.Order, filter domain.OrderFilter) []domain.Order {
	if filter == "" {
		filter = domain.OrderFilterActive
	}
	result := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		switch filter {
		case domain.OrderFilterActive:
			if o.IsClosed() {
				continue
			}
		case domain.OrderFilterClosed:
			if !o.IsClosed() {
				continue
			}
		}
		result = append(result, o)
	}
	return result
}

// SearchOrders keeps orders whose client name contains search, ignoring case.
func SearchOrders(orders []domain.Order, search string) []domain.Order {
	if search == "" {
		return orders
	}
	needle := strings.ToLower(search)
	result := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.ClientName), needle) {
			result = append(result, o)
		}
	}
	return result
}

// SortOrders sorts in place by client or tool name. The sort is stable so
// equal names keep their relative order.
func SortOrders(orders []domain.Order, order domain.OrderSort) {
	var key func(o *domain.Order) string
	desc := false
	switch order {
	case domain.OrderSortClientDesc:
		key, desc = clientKey, true
	case domain.OrderSortToolAsc:
		key = toolKey
	case domain.OrderSortToolDesc:
		key, desc = toolKey, true
	default:
		key = clientKey
	}

	sort.SliceStable(orders, func(i, j int) bool {
		a, b := key(&orders[i]), key(&orders[j])
		if desc {
			return a > b
		}
		return a < b
	})
}

func clientKey(o *domain.Order) string { return strings.ToLower(o.ClientName) }
func toolKey(o *domain.Order) string   { return strings.ToLower(o.ToolName()) }

// sortParams returns the toggle values a list view links its column headers to.
func sortParams(q ListQuery) (clientSort, toolSort, filter string) {
	if q.SortOrder == "" {
		clientSort = string(domain.OrderSortClientDesc)
	}
	if q.SortOrder == domain.OrderSortToolAsc {
		toolSort = string(domain.OrderSortToolDesc)
	} else {
		toolSort = string(domain.OrderSortToolAsc)
	}
	filter = string(q.Filter)
	if filter == "" {
		filter = string(domain.OrderFilterActive)
	}
	return clientSort, toolSort, filter
}
