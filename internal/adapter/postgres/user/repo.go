// Package user implements the User repository using PostgreSQL.
// Users are stored as JSONB documents keyed by the external account id.
package user

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/citywatch/storage-service/internal/adapter/postgres"
	"github.com/citywatch/storage-service/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by its external account id, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	query, args, err := psql.Select("data").From("users").Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("user.GetByID: build query: %w", err)
	}

	var data []byte
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&data); err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("user.GetByID %s: decode document: %w", userID, err)
	}
	return &user, nil
}

// Add inserts a new user document.
func (r *Repo) Add(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("user.Add %s: encode document: %w", user.UserID, err)
	}

	query, args, err := psql.Insert("users").
		Columns("user_id", "data", "created_at", "updated_at").
		Values(user.UserID, data, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("user.Add: build query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user", user.UserID)
	}
	return nil
}

// Edit replaces the user document. Returns domain.ErrNotFound if the user
// does not exist.
func (r *Repo) Edit(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("user.Edit %s: encode document: %w", user.UserID, err)
	}

	query, args, err := psql.Update("users").
		Set("data", data).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"user_id": user.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("user.Edit: build query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", user.UserID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", user.UserID, domain.ErrNotFound)
	}
	return nil
}
