package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderFilter string

const (
	OrderFilterActive OrderFilter = "active"
	OrderFilterClosed OrderFilter = "closed"
	OrderFilterAll    OrderFilter = "all"
)

type OrderSort string

const (
	OrderSortClientAsc  OrderSort = ""
	OrderSortClientDesc OrderSort = "name_desc"
	OrderSortToolAsc    OrderSort = "Tool"
	OrderSortToolDesc   OrderSort = "tool_desc"
)

type Order struct {
	ID                string           `json:"id"`
	ClientName        string           `json:"client_name"`
	ClientPhoneNumber string           `json:"client_phone_number"`
	ToolID            string           `json:"tool_id"`
	Tool              *Tool            `json:"tool,omitempty"` // Populated when fetching order details
	StartDate         time.Time        `json:"start_date"`
	EndDate           *time.Time       `json:"end_date,omitempty"`

	// Price holds the day price while the order is open and the final
	// amount once it is closed.
	Price       decimal.Decimal  `json:"price"`
	PaidPledge  decimal.Decimal  `json:"paid_pledge"`
	Payment     *decimal.Decimal `json:"payment,omitempty"`
	Description string           `json:"description"`
}

// IsClosed reports whether the order has an end date.
func (o *Order) IsClosed() bool {
	return o.EndDate != nil
}

// ToolName returns the joined tool name, or "" when the tool was not loaded.
func (o *Order) ToolName() string {
	if o.Tool == nil {
		return ""
	}
	return o.Tool.Name
}

// Close marks the order closed at endDate and replaces the day price with
// the final price. The order is left untouched if it is already closed.
func (o *Order) Close(endDate time.Time, finalPrice decimal.Decimal) error {
	if o.EndDate != nil {
		return &AlreadyClosedError{OrderID: o.ID, EndDate: *o.EndDate}
	}
	o.EndDate = &endDate
	o.Price = finalPrice
	return nil
}
