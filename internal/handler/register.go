package handler

import (
	"log/slog"

	"github.com/citywatch/storage-service/internal/event"
	"github.com/citywatch/storage-service/internal/report"
)

// Deps bundles everything the handler set needs. The reporter is a
// constructed dependency, never process-wide state.
type Deps struct {
	Logger   *slog.Logger
	Reporter report.Reporter

	Remarks    RemarkRepository
	Users      UserRepository
	Operations OperationRepository

	RemarkClient RemarkServiceClient
	UserClient   UserServiceClient

	RemarkCache  RemarkCache
	UserCache    UserCache
	AccountState AccountState
}

// RegisterAll subscribes one handler per consumed event type, each with
// its own envelope carrying a handler-qualified logger.
func RegisterAll(bus event.Bus, d Deps) {
	env := func(name string) *Envelope {
		return NewEnvelope(d.Logger.With("handler", name), d.Reporter)
	}

	bus.Subscribe(event.RemarkCreated{}.Name(),
		NewRemarkCreatedHandler(env("remark_created"), d.Remarks, d.RemarkClient, d.RemarkCache, d.UserCache))
	bus.Subscribe(event.RemarkProcessed{}.Name(),
		NewRemarkProcessedHandler(env("remark_processed"), d.Remarks, d.RemarkClient, d.RemarkCache))
	bus.Subscribe(event.RemarkResolved{}.Name(),
		NewRemarkResolvedHandler(env("remark_resolved"), d.Remarks, d.Users))
	bus.Subscribe(event.RemarkDeleted{}.Name(),
		NewRemarkDeletedHandler(env("remark_deleted"), d.Remarks, d.RemarkCache, d.UserCache))
	bus.Subscribe(event.CommentEditedInRemark{}.Name(),
		NewCommentEditedHandler(env("comment_edited"), d.Remarks, d.RemarkCache))
	bus.Subscribe(event.UserCreated{}.Name(),
		NewUserCreatedHandler(env("user_created"), d.Users, d.UserClient, d.UserCache))
	bus.Subscribe(event.AvatarUploaded{}.Name(),
		NewAvatarUploadedHandler(env("avatar_uploaded"), d.Users, d.UserCache))
	bus.Subscribe(event.UserSignedIn{}.Name(),
		NewUserSignedInHandler(env("user_signed_in"), d.AccountState))
	bus.Subscribe(event.UserSignedOut{}.Name(),
		NewUserSignedOutHandler(env("user_signed_out"), d.AccountState))
	bus.Subscribe(event.OperationCreated{}.Name(),
		NewOperationCreatedHandler(env("operation_created"), d.Operations))
	bus.Subscribe(event.OperationUpdated{}.Name(),
		NewOperationUpdatedHandler(env("operation_updated"), d.Operations))
}
