package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/citywatch/storage-service/internal/adapter/postgres/testhelper"
	"github.com/citywatch/storage-service/internal/adapter/postgres/user"
	"github.com/citywatch/storage-service/internal/domain"
)

func newRepo(t *testing.T) *user.Repo {
	t.Helper()
	return user.New(testhelper.SetupTestDB(t))
}

func buildUser() *domain.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.User{
		UserID:    "user-" + uuid.NewString()[:8],
		Name:      "Tester",
		Email:     "tester@example.com",
		State:     "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRepo_AddAndGetByID(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	want := buildUser()
	if err := repo.Add(ctx, want); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := repo.GetByID(ctx, want.UserID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.UserID != want.UserID {
		t.Errorf("UserID = %q, want %q", got.UserID, want.UserID)
	}
	if got.Name != want.Name {
		t.Errorf("Name = %q, want %q", got.Name, want.Name)
	}
	if got.Email != want.Email {
		t.Errorf("Email = %q, want %q", got.Email, want.Email)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID(unknown) = %v, want domain.ErrNotFound", err)
	}
}

func TestRepo_Add_Duplicate(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	u := buildUser()
	if err := repo.Add(ctx, u); err != nil {
		t.Fatalf("Add: %v", err)
	}

	err := repo.Add(ctx, u)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Add(duplicate) = %v, want domain.ErrAlreadyExists", err)
	}
}

func TestRepo_Edit(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	u := buildUser()
	if err := repo.Add(ctx, u); err != nil {
		t.Fatalf("Add: %v", err)
	}

	u.AvatarURL = "https://cdn.example.com/avatars/new.jpg"
	u.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
	if err := repo.Edit(ctx, u); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	got, err := repo.GetByID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.AvatarURL != u.AvatarURL {
		t.Errorf("AvatarURL = %q, want %q", got.AvatarURL, u.AvatarURL)
	}
}

func TestRepo_Edit_NotFound(t *testing.T) {
	repo := newRepo(t)

	err := repo.Edit(context.Background(), buildUser())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Edit(unknown) = %v, want domain.ErrNotFound", err)
	}
}
