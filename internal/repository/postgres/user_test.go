package postgres_test

import (
	"context"
	"testing"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Create", func(t *testing.T) {
		u := &domain.User{ID: "u1", Email: "admin@example.com", PasswordHash: "hash", Roles: []domain.Role{domain.RoleAdmin}}
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("u1", "admin@example.com", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_on"}).AddRow(created))

		require.NoError(t, repo.Create(ctx, u))
		assert.Equal(t, "2024-01-01T00:00:00Z", u.CreatedOn)
	})

	t.Run("Create duplicate", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505"})
		err := repo.Create(ctx, &domain.User{ID: "u2", Email: "admin@example.com"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("admin@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "roles", "created_on"}).
				AddRow("u1", "admin@example.com", "hash", "{Admin,User}", created))

		u, err := repo.GetByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, []domain.Role{domain.RoleAdmin, domain.RoleUser}, u.Roles)
	})

	t.Run("GetByID NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs("u9").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "roles", "created_on"}))

		_, err := repo.GetByID(ctx, "u9")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
