package entities

import "time"

// Service is an entry in the offered-services catalog. Job orders reference
// services by name in JobServices (free strings, not enforced foreign keys).
type Service struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"serviceID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
