package postgres

import (
	"context"
	"database/sql"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, email, password_hash, roles, created_on) VALUES ($1, $2, $3, $4, $5) RETURNING created_on`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, u.ID, u.Email, u.PasswordHash, pq.Array(domain.RoleNames(u.Roles)), time.Now()).Scan(&createdOn)
	if err != nil {
		return mapError("user", u.Email, err)
	}
	u.CreatedOn = createdOn.Format(time.RFC3339)
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, email, password_hash, roles, created_on FROM users WHERE email = $1`, email)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, email, password_hash, roles, created_on FROM users WHERE id = $1`, id)
}

func (r *userRepository) getOne(ctx context.Context, query, key string) (*domain.User, error) {
	u := &domain.User{}
	var roles []string
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, key).Scan(&u.ID, &u.Email, &u.PasswordHash, pq.Array(&roles), &createdOn)
	if err != nil {
		return nil, mapError("user", key, err)
	}
	for _, role := range roles {
		u.Roles = append(u.Roles, domain.Role(role))
	}
	u.CreatedOn = createdOn.Format(time.RFC3339)
	return u, nil
}
