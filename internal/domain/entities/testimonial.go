package entities

import "time"

// TestimonialStatus controls whether a testimonial is visible on the
// public site.

type TestimonialStatus string

const (
	TestimonialStatusDraft     TestimonialStatus = "Draft"
	TestimonialStatusPublished TestimonialStatus = "Published"
)

// Testimonial is post-completion client feedback.
//
// Storage model (DynamoDB):
//   - PK: job_id
//
// We purposely use the job-order id as PK to guarantee at most one
// testimonial per job order (duplicate submits fail the conditional put).
type Testimonial struct {
	JobID      string            `json:"jobID"`
	ClientName string            `json:"clientName"`
	Rating     int               `json:"rating"`
	Message    string            `json:"message"`
	Status     TestimonialStatus `json:"status"`
	IsRead     bool              `json:"isRead"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}
