package domain

import (
	"time"

	"github.com/google/uuid"
)

// Remark lifecycle state tags.
const (
	StateNew        = "new"
	StateProcessing = "processing"
	StateResolved   = "resolved"
	StateRenewed    = "renewed"
	StateCanceled   = "canceled"
)

// Remark is a reported civic issue. The repository owns the authoritative
// record; handlers hold transient references while processing one event.
type Remark struct {
	ID          uuid.UUID    `json:"id"`
	Author      UserSnapshot `json:"author"`
	Category    Category     `json:"category"`
	Description string       `json:"description"`
	Location    Location     `json:"location"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	State       State        `json:"state"`
	States      []State      `json:"states"`
	Resolved    bool         `json:"resolved"`
	Status      string       `json:"status,omitempty"`
	Photos      []RemarkFile `json:"photos"`
	Comments    []Comment    `json:"comments"`
}

// UserSnapshot is a denormalized user reference embedded in remarks,
// states and comments.
type UserSnapshot struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// Category classifies a remark (e.g. damage, litter).
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Location is a GeoJSON-style point with a resolved street address.
// Coordinates are ordered longitude, latitude.
type Location struct {
	Address     string    `json:"address"`
	Coordinates []float64 `json:"coordinates"`
	Type        string    `json:"type"`
}

// State is one entry of a remark's lifecycle: a tag plus the acting user
// and the moment the transition happened.
type State struct {
	Tag       string       `json:"state"`
	User      UserSnapshot `json:"user"`
	CreatedAt time.Time    `json:"createdAt"`
}

// RemarkFile is a photo or attachment. Immutable once attached.
type RemarkFile struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Size     string    `json:"size"`
	URL      string    `json:"url"`
	Metadata string    `json:"metadata,omitempty"`
}

// Comment is a user comment on a remark. Text is mutable; History is the
// append-only record of edits.
type Comment struct {
	ID        uuid.UUID        `json:"id"`
	Text      string           `json:"text"`
	Author    UserSnapshot     `json:"author"`
	CreatedAt time.Time        `json:"createdAt"`
	History   []CommentHistory `json:"history"`
}

// CommentHistory is one edit of a comment's text.
type CommentHistory struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// FindComment returns a pointer to the comment with the given id,
// or nil if the remark carries no such comment.
func (r *Remark) FindComment(id uuid.UUID) *Comment {
	for i := range r.Comments {
		if r.Comments[i].ID == id {
			return &r.Comments[i]
		}
	}
	return nil
}

// Edit replaces the comment text and appends the new payload to the edit
// history, stamped with the event's timestamp rather than wall-clock time
// so the history stays consistent with event provenance.
func (c *Comment) Edit(text string, at time.Time) {
	c.Text = text
	c.History = append(c.History, CommentHistory{Text: text, CreatedAt: at})
}

// Resolve sets the current state to resolved with the acting user snapshot
// and the resolution timestamp carried on the event.
func (r *Remark) Resolve(user UserSnapshot, at time.Time) {
	r.State = State{Tag: StateResolved, User: user, CreatedAt: at}
	r.Resolved = true
}
