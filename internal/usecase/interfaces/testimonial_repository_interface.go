package interfaces

import (
	"context"

	"homefix_api/internal/domain/entities"
)

// ITestimonialRepository abstracts DynamoDB persistence for Testimonial.
//
// Create is a conditional put keyed by job id; it returns a zero
// Testimonial and no error when one already exists for the job order.
type ITestimonialRepository interface {
	Create(ctx context.Context, t entities.Testimonial) (entities.Testimonial, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Testimonial, error)
	List(ctx context.Context) ([]entities.Testimonial, error)
	UpdateStatus(ctx context.Context, jobID string, status entities.TestimonialStatus) (entities.Testimonial, error)
	MarkRead(ctx context.Context, jobID string) (entities.Testimonial, error)
}
