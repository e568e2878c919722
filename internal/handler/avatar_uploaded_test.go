package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citywatch/storage-service/internal/domain"
	"github.com/citywatch/storage-service/internal/event"
)

func TestAvatarUploadedHandler_PropagatesAvatar(t *testing.T) {
	t.Parallel()

	user := &domain.User{UserID: "user-1", Name: "Tester"}
	ev := event.AvatarUploaded{
		Meta:      event.NewMeta(uuid.New()),
		UserID:    user.UserID,
		AvatarURL: "https://cdn.example.com/avatars/user-1.jpg",
	}

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, userID string) (*domain.User, error) { return user, nil },
		EditFunc:    func(ctx context.Context, u *domain.User) error { return nil },
	}
	userCache := &userCacheMock{}

	env, reporter := newTestEnvelope()
	NewAvatarUploadedHandler(env, users, userCache).Handle(context.Background(), ev)

	require.Equal(t, []string{ev.UserID}, users.GetByIDCalls())

	edits := users.EditCalls()
	require.Len(t, edits, 1)
	assert.Equal(t, ev.AvatarURL, edits[0].AvatarURL)

	cacheAdds := userCache.AddCalls()
	require.Len(t, cacheAdds, 1)
	assert.Equal(t, ev.AvatarURL, cacheAdds[0].AvatarURL)

	assert.Empty(t, reporter.HandleCalls())
}

func TestAvatarUploadedHandler_UnknownUserIsNoop(t *testing.T) {
	t.Parallel()

	ev := event.AvatarUploaded{
		Meta:      event.NewMeta(uuid.New()),
		UserID:    "ghost",
		AvatarURL: "https://cdn.example.com/avatars/ghost.jpg",
	}

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, userID string) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}
	userCache := &userCacheMock{}

	env, reporter := newTestEnvelope()
	NewAvatarUploadedHandler(env, users, userCache).Handle(context.Background(), ev)

	assert.Len(t, users.GetByIDCalls(), 1)
	assert.Empty(t, users.EditCalls())
	assert.Empty(t, userCache.AddCalls())
	assert.Empty(t, reporter.HandleCalls())
}

func TestAvatarUploadedHandler_EditFailureIsReported(t *testing.T) {
	t.Parallel()

	user := &domain.User{UserID: "user-1"}
	ev := event.AvatarUploaded{Meta: event.NewMeta(uuid.New()), UserID: user.UserID}
	failure := errors.New("write timeout")

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, userID string) (*domain.User, error) { return user, nil },
		EditFunc:    func(ctx context.Context, u *domain.User) error { return failure },
	}

	env, reporter := newTestEnvelope()
	NewAvatarUploadedHandler(env, users, &userCacheMock{}).Handle(context.Background(), ev)

	calls := reporter.HandleCalls()
	require.Len(t, calls, 1)
	assert.ErrorIs(t, calls[0].Err, failure)
	assert.Equal(t, []any{"event", ev.Name()}, calls[0].Keyvals)
}

func TestUserCreatedHandler_HydratesAndSeeds(t *testing.T) {
	t.Parallel()

	user := &domain.User{UserID: "user-1", Name: "Fresh"}
	ev := event.UserCreated{Meta: event.NewMeta(uuid.New()), UserID: user.UserID}

	client := &userClientMock{
		GetUserFunc: func(ctx context.Context, userID string) (*domain.User, error) { return user, nil },
	}
	users := &userRepoMock{
		AddFunc: func(ctx context.Context, u *domain.User) error { return nil },
	}
	userCache := &userCacheMock{}

	env, reporter := newTestEnvelope()
	NewUserCreatedHandler(env, users, client, userCache).Handle(context.Background(), ev)

	assert.Equal(t, []string{ev.UserID}, client.GetUserCalls())
	assert.Len(t, users.AddCalls(), 1)
	assert.Len(t, userCache.AddCalls(), 1)
	assert.Empty(t, reporter.HandleCalls())
}

func TestAccountStateHandlers(t *testing.T) {
	t.Parallel()

	state := &accountStateMock{}
	env, reporter := newTestEnvelope()

	NewUserSignedInHandler(env, state).Handle(context.Background(),
		event.UserSignedIn{Meta: event.NewMeta(uuid.New()), UserID: "user-1"})

	sets := state.SetCalls()
	require.Len(t, sets, 1)
	assert.Equal(t, accountStateCall{UserID: "user-1", State: "active"}, sets[0])

	NewUserSignedOutHandler(env, state).Handle(context.Background(),
		event.UserSignedOut{Meta: event.NewMeta(uuid.New()), UserID: "user-1"})

	assert.Equal(t, []string{"user-1"}, state.DeleteCalls())
	assert.Empty(t, reporter.HandleCalls())
}
