// Package operation implements the Operation repository using PostgreSQL.
// Operations are looked up by the request correlation id, which carries a
// unique index, so outcome events can find the record the created event
// registered.
package operation

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

// Repo provides operation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new operation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByRequestID returns the operation correlated with the given request id,
// or domain.ErrNotFound.
func (r *Repo) GetByRequestID(ctx context.Context, requestID uuid.UUID) (*domain.Operation, error) {
	query, args, err := psql.Select("data").From("operations").
		Where(sq.Eq{"request_id": requestID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("operation.GetByRequestID: build query: %w", err)
	}

	var data []byte
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&data); err != nil {
		return nil, postgres.MapError(err, "operation", requestID.String())
	}

	var op domain.Operation
	if err := json.Unmarshal(data, &op); err != nil {
		return nil, fmt.Errorf("operation.GetByRequestID %s: decode document: %w", requestID, err)
	}
	return &op, nil
}

// Add inserts a new operation document.
func (r *Repo) Add(ctx context.Context, op *domain.Operation) error {
	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("operation.Add %s: encode document: %w", op.ID, err)
	}

	query, args, err := psql.Insert("operations").
		Columns("id", "request_id", "data", "created_at", "updated_at").
		Values(op.ID, op.RequestID, data, op.CreatedAt, op.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("operation.Add: build query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "operation", op.ID.String())
	}
	return nil
}

// Update replaces the operation document. Returns domain.ErrNotFound if the
// operation does not exist.
func (r *Repo) Update(ctx context.Context, op *domain.Operation) error {
	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("operation.Update %s: encode document: %w", op.ID, err)
	}

	query, args, err := psql.Update("operations").
		Set("data", data).
		Set("updated_at", op.UpdatedAt).
		Where(sq.Eq{"id": op.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("operation.Update: build query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "operation", op.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("operation %s: %w", op.ID, domain.ErrNotFound)
	}
	return nil
}
