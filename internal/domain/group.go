package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group is a community of users collaborating on remarks within an
// organization or standalone. Mirrored into the cache for read APIs.
type Group struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	IsPublic       bool              `json:"isPublic"`
	State          string            `json:"state,omitempty"`
	OrganizationID *uuid.UUID        `json:"organizationId,omitempty"`
	Members        map[string]string `json:"members,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// Organization groups multiple groups under one umbrella (e.g. a city hall).
type Organization struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	IsPublic  bool              `json:"isPublic"`
	Members   map[string]string `json:"members,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}
