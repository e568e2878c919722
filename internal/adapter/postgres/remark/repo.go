// Package remark implements the Remark repository using PostgreSQL.
// Remarks are stored as JSONB documents keyed by id; the document is the
// authoritative record and is replaced wholesale on update.
package remark

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/citywatch/storage-service/internal/adapter/postgres"
	"github.com/citywatch/storage-service/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides remark persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new remark repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a remark by id, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Remark, error) {
	query, args, err := psql.Select("data").From("remarks").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("remark.GetByID: build query: %w", err)
	}

	var data []byte
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&data); err != nil {
		return nil, postgres.MapError(err, "remark", id.String())
	}

	var remark domain.Remark
	if err := json.Unmarshal(data, &remark); err != nil {
		return nil, fmt.Errorf("remark.GetByID %s: decode document: %w", id, err)
	}
	return &remark, nil
}

// Add inserts a new remark document.
func (r *Repo) Add(ctx context.Context, remark *domain.Remark) error {
	data, err := json.Marshal(remark)
	if err != nil {
		return fmt.Errorf("remark.Add %s: encode document: %w", remark.ID, err)
	}

	query, args, err := psql.Insert("remarks").
		Columns("id", "data", "created_at", "updated_at").
		Values(remark.ID, data, remark.CreatedAt, remark.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("remark.Add: build query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "remark", remark.ID.String())
	}
	return nil
}

// Update replaces the remark document. Returns domain.ErrNotFound if the
// remark does not exist.
func (r *Repo) Update(ctx context.Context, remark *domain.Remark) error {
	data, err := json.Marshal(remark)
	if err != nil {
		return fmt.Errorf("remark.Update %s: encode document: %w", remark.ID, err)
	}

	query, args, err := psql.Update("remarks").
		Set("data", data).
		Set("updated_at", remark.UpdatedAt).
		Where(sq.Eq{"id": remark.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("remark.Update: build query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "remark", remark.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("remark %s: %w", remark.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the remark document. Deleting an absent remark is a no-op
// so redelivered deletion events stay idempotent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("remarks").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("remark.Delete: build query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "remark", id.String())
	}
	return nil
}
