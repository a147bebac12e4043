package routes

import (
	"homefix_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTestimonials = "/testimonials"
)

func addTestimonialRoutes(rg *gin.RouterGroup, testimonialHandler *handlers.TestimonialHandler) {
	testimonials := rg.Group(PathTestimonials)
	{
		testimonials.POST("", testimonialHandler.Submit)
		testimonials.GET("", testimonialHandler.List)
		testimonials.PATCH("/:id/status", testimonialHandler.UpdateStatus)
		testimonials.PATCH("/:id/read", testimonialHandler.MarkRead)
	}
}
