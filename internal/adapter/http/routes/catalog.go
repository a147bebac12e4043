package routes

import (
	"homefix_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPortfolio = "/portfolio"
	PathServices  = "/services"
)

func addCatalogRoutes(rg *gin.RouterGroup, portfolioHandler *handlers.PortfolioHandler, serviceHandler *handlers.ServiceHandler) {
	portfolio := rg.Group(PathPortfolio)
	{
		portfolio.POST("", portfolioHandler.Create)
		portfolio.GET("", portfolioHandler.List)
		portfolio.DELETE("/:id", portfolioHandler.Delete)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.Create)
		services.GET("", serviceHandler.List)
		services.DELETE("/:id", serviceHandler.Delete)
	}
}
