package entities

import "time"

// Portfolio is a showcase entry for completed work, displayed on the
// public site. The image lives in the upload gateway, referenced by key.
type Portfolio struct {
	ID             string    `json:"id"`
	PortfolioID    string    `json:"portfolioID"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"imageURL"`
	ImagePublicKey string    `json:"imagePublicKey"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
