package request

// TestimonialSubmitRequest is the client-facing feedback payload.
type TestimonialSubmitRequest struct {
	JobID   string `json:"jobID" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Message string `json:"message"`
}

// TestimonialStatusRequest toggles a testimonial between Draft and
// Published.
type TestimonialStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
