package request

// PortfolioCreateRequest binds the multipart fields of a new showcase
// entry; the image file itself is read separately by the handler.
type PortfolioCreateRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// ServiceCreateRequest adds an entry to the offered-services catalog.
type ServiceCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
