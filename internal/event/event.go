// Package event defines the domain events the storage service consumes
// and the bus contract that delivers them.
package event

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Event is a typed domain event delivered by the bus. Name identifies the
// event type on the wire and in failure reports.
type Event interface {
	Name() string
}

// Meta carries the delivery envelope shared by every event: a sortable
// event id and the correlation id of the originating request.
type Meta struct {
	EventID   string    `json:"eventId"`
	RequestID uuid.UUID `json:"requestId"`
}

// NewMeta generates an envelope with a fresh monotonic ULID event id.
func NewMeta(requestID uuid.UUID) Meta {
	return Meta{EventID: NewID(), RequestID: requestID}
}

// NewID returns a new ULID string usable as an event identifier.
func NewID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// Metadata returns the delivery envelope. Embedding Meta gives every event
// this accessor, which the handler layer uses to propagate ids into the
// processing context.
func (m Meta) Metadata() Meta { return m }

// RemarkCreated signals that a new remark was accepted by the remarks
// service. The payload is id-only; the full representation is hydrated
// through the remark service client.
type RemarkCreated struct {
	Meta
	RemarkID uuid.UUID `json:"remarkId"`
}

func (RemarkCreated) Name() string { return "remark.created" }

// RemarkProcessed signals a lifecycle transition performed by the remarks
// service; like RemarkCreated it carries only the remark id.
type RemarkProcessed struct {
	Meta
	RemarkID uuid.UUID `json:"remarkId"`
}

func (RemarkProcessed) Name() string { return "remark.processed" }

// RemarkResolved signals that a remark was marked resolved, carrying the
// acting user and the resolution evidence files.
type RemarkResolved struct {
	Meta
	RemarkID   uuid.UUID           `json:"remarkId"`
	UserID     string              `json:"userId"`
	UserName   string              `json:"userName"`
	ResolvedAt time.Time           `json:"resolvedAt"`
	Files      []RemarkFilePayload `json:"files,omitempty"`
}

func (RemarkResolved) Name() string { return "remark.resolved" }

// RemarkFilePayload describes an attachment carried on resolution events.
type RemarkFilePayload struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Size string    `json:"size"`
	URL  string    `json:"url"`
}

// RemarkDeleted signals that a remark was removed at its source.
type RemarkDeleted struct {
	Meta
	RemarkID uuid.UUID `json:"remarkId"`
	UserID   string    `json:"userId"`
}

func (RemarkDeleted) Name() string { return "remark.deleted" }

// CommentEditedInRemark signals that the text of an existing comment
// changed. CreatedAt is the edit time assigned by the remarks service.
type CommentEditedInRemark struct {
	Meta
	RemarkID  uuid.UUID `json:"remarkId"`
	CommentID uuid.UUID `json:"commentId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CommentEditedInRemark) Name() string { return "remark.comment_edited" }

// UserCreated signals that a new account exists; the full profile is
// hydrated through the user service client.
type UserCreated struct {
	Meta
	UserID string `json:"userId"`
}

func (UserCreated) Name() string { return "user.created" }

// AvatarUploaded signals a new avatar URL for a user profile.
type AvatarUploaded struct {
	Meta
	UserID    string `json:"userId"`
	AvatarURL string `json:"avatarUrl"`
}

func (AvatarUploaded) Name() string { return "user.avatar_uploaded" }

// UserSignedIn and UserSignedOut drive the ephemeral per-user account
// state flag; they never touch the repository.
type UserSignedIn struct {
	Meta
	UserID string `json:"userId"`
}

func (UserSignedIn) Name() string { return "user.signed_in" }

type UserSignedOut struct {
	Meta
	UserID string `json:"userId"`
}

func (UserSignedOut) Name() string { return "user.signed_out" }

// OperationCreated registers the pending outcome record for an
// asynchronous request.
type OperationCreated struct {
	Meta
	OperationID uuid.UUID `json:"operationId"`
	UserID      string    `json:"userId"`
	Command     string    `json:"command"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (OperationCreated) Name() string { return "operation.created" }

// OperationUpdated records the final outcome of an asynchronous request,
// keyed by the request correlation id.
type OperationUpdated struct {
	Meta
	Status    string    `json:"status"`
	Code      string    `json:"code,omitempty"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (OperationUpdated) Name() string { return "operation.updated" }
