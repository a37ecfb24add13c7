package domain

import "github.com/shopspring/decimal"

type Tool struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	DayPrice    decimal.Decimal `json:"day_price"`
	Pledge      decimal.Decimal `json:"pledge"`
}
