package response

import (
	"time"

	"homefix_api/internal/domain/entities"
)

type PortfolioResponse struct {
	ID          string    `json:"id"`
	PortfolioID string    `json:"portfolioID"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageURL"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromPortfolio(p entities.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		ID:          p.ID,
		PortfolioID: p.PortfolioID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromPortfolios(list []entities.Portfolio) []PortfolioResponse {
	out := make([]PortfolioResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPortfolio(p))
	}
	return out
}

type ServiceResponse struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"serviceID"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		ServiceID:   s.ServiceID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromServices(list []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromService(s))
	}
	return out
}
