package postgres

import (
	"context"
	"database/sql"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository"
)

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	query := `INSERT INTO tools (id, name, description, day_price, pledge, created_on) VALUES ($1, $2, $3, $4, $5, $6)`
	logger.DatabaseCall("CreateTool", query, "tool_id", t.ID)
	_, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.Description, t.DayPrice, t.Pledge, time.Now())
	return mapError("tool", t.ID, err)
}

func (r *toolRepository) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	t := &domain.Tool{}
	query := `SELECT id, name, description, day_price, pledge FROM tools WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Description, &t.DayPrice, &t.Pledge)
	if err != nil {
		return nil, mapError("tool", id, err)
	}
	return t, nil
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools SET name=$1, description=$2, day_price=$3, pledge=$4 WHERE id=$5`
	logger.DatabaseCall("UpdateTool", query, "tool_id", t.ID)
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Description, t.DayPrice, t.Pledge, t.ID)
	if err != nil {
		return mapError("tool", t.ID, err)
	}
	return notFoundIfNoRows("tool", t.ID, res)
}

func (r *toolRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tools WHERE id = $1`
	logger.DatabaseCall("DeleteTool", query, "tool_id", id)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapError("tool", id, err)
	}
	return notFoundIfNoRows("tool", id, res)
}

func (r *toolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	query := `SELECT id, name, description, day_price, pledge FROM tools ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tools := []domain.Tool{}
	for rows.Next() {
		var t domain.Tool
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.DayPrice, &t.Pledge); err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}
	return tools, rows.Err()
}
