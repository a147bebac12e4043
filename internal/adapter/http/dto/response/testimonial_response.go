package response

import (
	"time"

	"homefix_api/internal/domain/entities"
)

type TestimonialResponse struct {
	JobID      string    `json:"jobID"`
	ClientName string    `json:"clientName"`
	Rating     int       `json:"rating"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromTestimonial(t entities.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		JobID:      t.JobID,
		ClientName: t.ClientName,
		Rating:     t.Rating,
		Message:    t.Message,
		Status:     string(t.Status),
		IsRead:     t.IsRead,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func FromTestimonials(list []entities.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTestimonial(t))
	}
	return out
}
