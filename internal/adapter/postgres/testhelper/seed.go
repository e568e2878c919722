package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/citywatch/storage-service/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user document and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		UserID:    "user-" + suffix,
		Name:      "Test User " + suffix,
		Email:     "testuser-" + suffix + "@example.com",
		State:     "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	insertDocument(t, pool,
		`INSERT INTO users (user_id, data, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		user.UserID, &user, now)
	return user
}

// SeedRemark inserts a remark document authored by the given user and
// returns the filled domain.Remark.
func SeedRemark(t *testing.T, pool *pgxpool.Pool, author domain.UserSnapshot) domain.Remark {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	remark := domain.Remark{
		ID:          uuid.New(),
		Author:      author,
		Category:    domain.Category{ID: uuid.New(), Name: "damage"},
		Description: "seeded remark " + suffix,
		Location: domain.Location{
			Address:     "Test St " + suffix,
			Coordinates: []float64{21.01, 52.23},
			Type:        "Point",
		},
		CreatedAt: now,
		UpdatedAt: now,
		State:     domain.State{Tag: domain.StateNew, User: author, CreatedAt: now},
		States:    []domain.State{{Tag: domain.StateNew, User: author, CreatedAt: now}},
	}

	insertDocument(t, pool,
		`INSERT INTO remarks (id, data, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		remark.ID, &remark, now)
	return remark
}

// SeedOperation inserts a pending operation document and returns it.
func SeedOperation(t *testing.T, pool *pgxpool.Pool) domain.Operation {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	op := domain.Operation{
		ID:        uuid.New(),
		RequestID: uuid.New(),
		UserID:    "user-" + uniqueSuffix(),
		Name:      "create_remark",
		Status:    domain.OperationCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}

	data, err := json.Marshal(&op)
	if err != nil {
		t.Fatalf("testhelper: SeedOperation marshal: %v", err)
	}
	_, err = pool.Exec(context.Background(),
		`INSERT INTO operations (id, request_id, data, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		op.ID, op.RequestID, data, now, now)
	if err != nil {
		t.Fatalf("testhelper: SeedOperation insert: %v", err)
	}
	return op
}

func insertDocument(t *testing.T, pool *pgxpool.Pool, query string, key any, doc any, now time.Time) {
	t.Helper()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("testhelper: marshal document: %v", err)
	}
	if _, err := pool.Exec(context.Background(), query, key, data, now, now); err != nil {
		t.Fatalf("testhelper: insert document: %v", err)
	}
}
