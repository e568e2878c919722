package domain

import "time"

// User is a platform account. UserID is the stable external identifier
// assigned by the identity service; it is distinct from any internal
// database key and is what events carry.
type User struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	State     string    `json:"state,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Snapshot returns the denormalized form embedded in remarks and comments.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{UserID: u.UserID, Name: u.Name}
}

// NotificationSettings holds a user's notification preferences, mirrored
// into the cache for the notification service to read.
type NotificationSettings struct {
	UserID            string    `json:"userId"`
	RemarkCreated     bool      `json:"remarkCreated"`
	RemarkStateChange bool      `json:"remarkStateChange"`
	NewComment        bool      `json:"newComment"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
