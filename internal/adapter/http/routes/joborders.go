package routes

import (
	"homefix_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobOrders = "/job-orders"
)

func addJobOrderRoutes(rg *gin.RouterGroup, jobOrderHandler *handlers.JobOrderHandler) {
	jobOrders := rg.Group(PathJobOrders)
	{
		jobOrders.POST("", jobOrderHandler.Create)
		jobOrders.POST("/savenofile", jobOrderHandler.CreateNoFile)
		jobOrders.GET("", jobOrderHandler.List)
		jobOrders.GET("/:id", jobOrderHandler.GetByID)
		jobOrders.PATCH("/:id", jobOrderHandler.Update)
		jobOrders.PATCH("/:id/updateQuotation", jobOrderHandler.UpdateQuotation)
		jobOrders.PATCH("/:id/inquiry", jobOrderHandler.UpdateInquiry)
		jobOrders.PATCH("/:id/archive", jobOrderHandler.Archive)
		jobOrders.PATCH("/note/:id", jobOrderHandler.SetNote)
		jobOrders.DELETE("/:id", jobOrderHandler.Delete)
	}
}
