package postgres

import (
	"context"
	"database/sql"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (id, first_name, last_name, phone_number, created_on) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.FirstName, c.LastName, c.PhoneNumber, time.Now())
	return mapError("client", c.ID, err)
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT id, first_name, last_name, phone_number FROM clients WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber)
	if err != nil {
		return nil, mapError("client", id, err)
	}
	return c, nil
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET first_name=$1, last_name=$2, phone_number=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, c.FirstName, c.LastName, c.PhoneNumber, c.ID)
	if err != nil {
		return mapError("client", c.ID, err)
	}
	return notFoundIfNoRows("client", c.ID, res)
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return mapError("client", id, err)
	}
	return notFoundIfNoRows("client", id, res)
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT id, first_name, last_name, phone_number FROM clients ORDER BY last_name, first_name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
