package postgres

import (
	"context"
	"database/sql"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository"

	"github.com/shopspring/decimal"
)

const orderSelect = `SELECT o.id, o.client_name, o.client_phone_number, o.tool_id, o.start_date, o.end_date,
       o.price, o.paid_pledge, o.payment, o.description,
       t.id, t.name, t.description, t.day_price, t.pledge
  FROM orders o
  JOIN tools t ON t.id = o.tool_id`

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	o := &domain.Order{Tool: &domain.Tool{}}
	err := row.Scan(&o.ID, &o.ClientName, &o.ClientPhoneNumber, &o.ToolID, &o.StartDate, &o.EndDate,
		&o.Price, &o.PaidPledge, &o.Payment, &o.Description,
		&o.Tool.ID, &o.Tool.Name, &o.Tool.Description, &o.Tool.DayPrice, &o.Tool.Pledge)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (id, client_name, client_phone_number, tool_id, start_date, end_date, price, paid_pledge, payment, description, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	logger.DatabaseCall("CreateOrder", query, "order_id", o.ID)
	now := time.Now()
	res, err := r.db.ExecContext(ctx, query, o.ID, o.ClientName, o.ClientPhoneNumber, o.ToolID, o.StartDate, o.EndDate, o.Price, o.PaidPledge, o.Payment, o.Description, now, now)
	if err != nil {
		logger.DatabaseResult("CreateOrder", 0, err)
		return mapError("order", o.ID, err)
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("CreateOrder", n, nil)
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := orderSelect + ` WHERE o.id = $1`
	logger.DatabaseCall("GetOrder", query, "order_id", id)
	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError("order", id, err)
	}
	return o, nil
}

// Update writes the editable fields. end_date is owned by Close and never written here.
func (r *orderRepository) Update(ctx context.Context, o *domain.Order) error {
	query := `UPDATE orders SET client_name=$1, client_phone_number=$2, tool_id=$3, start_date=$4, price=$5, paid_pledge=$6, payment=$7, description=$8, updated_on=$9 WHERE id=$10`
	logger.DatabaseCall("UpdateOrder", query, "order_id", o.ID)
	res, err := r.db.ExecContext(ctx, query, o.ClientName, o.ClientPhoneNumber, o.ToolID, o.StartDate, o.Price, o.PaidPledge, o.Payment, o.Description, time.Now(), o.ID)
	if err != nil {
		logger.DatabaseResult("UpdateOrder", 0, err)
		return mapError("order", o.ID, err)
	}
	return notFoundIfNoRows("order", o.ID, res)
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM orders WHERE id = $1`
	logger.DatabaseCall("DeleteOrder", query, "order_id", id)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.DatabaseResult("DeleteOrder", 0, err)
		return err
	}
	return notFoundIfNoRows("order", id, res)
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	query := orderSelect + ` ORDER BY o.created_on, o.id`
	return r.list(ctx, "ListOrders", query)
}

func (r *orderRepository) ListOpenStartedBefore(ctx context.Context, before time.Time) ([]domain.Order, error) {
	query := orderSelect + ` WHERE o.end_date IS NULL AND o.start_date < $1 ORDER BY o.start_date`
	return r.list(ctx, "ListOpenOrders", query, before)
}

func (r *orderRepository) list(ctx context.Context, operation, query string, args ...any) ([]domain.Order, error) {
	logger.DatabaseCall(operation, query)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult(operation, 0, err)
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.DatabaseResult(operation, int64(len(orders)), nil)
	return orders, nil
}

func (r *orderRepository) Close(ctx context.Context, id string, endDate time.Time, price decimal.Decimal) (bool, error) {
	query := `UPDATE orders SET end_date=$1, price=$2, updated_on=$3 WHERE id=$4 AND end_date IS NULL`
	logger.DatabaseCall("CloseOrder", query, "order_id", id)
	res, err := r.db.ExecContext(ctx, query, endDate, price, time.Now(), id)
	if err != nil {
		logger.DatabaseResult("CloseOrder", 0, err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	logger.DatabaseResult("CloseOrder", n, nil)
	return n == 1, nil
}
