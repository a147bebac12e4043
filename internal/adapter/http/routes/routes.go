package routes

import (
	"context"
	"log"
	"os"

	_ "homefix_api/docs" // This will be auto-generated
	"homefix_api/internal/adapter/http/handlers"
	repository2 "homefix_api/internal/adapter/persistence/repository"
	"homefix_api/internal/infrastructure/database"
	"homefix_api/internal/infrastructure/mail"
	"homefix_api/internal/infrastructure/storage"
	"homefix_api/internal/usecase"
	"homefix_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	jobOrderRepo := repository2.NewJobOrderDynamoRepository(ddb)
	counterRepo := repository2.NewCounterDynamoRepository(ddb)
	testimonialRepo := repository2.NewTestimonialDynamoRepository(ddb)
	portfolioRepo := repository2.NewPortfolioDynamoRepository(ddb, counterRepo)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	operatorDirectory := repository2.NewAdminOperatorDirectory(ddb)

	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err.Error())
	}

	var uploadGateway interfaces.IUploadGateway
	s3Gateway, err := storage.NewS3UploadGateway(awsCfg)
	if err != nil {
		log.Printf("Upload gateway not configured: %v", err)
	} else {
		uploadGateway = s3Gateway
	}

	var mailer interfaces.IMailer
	sesMailer, err := mail.NewSESMailer(awsCfg)
	if err != nil {
		log.Printf("Mailer not configured: %v", err)
	} else {
		mailer = sesMailer
	}

	jobOrderUseCase := usecase.NewJobOrderUseCase(jobOrderRepo, counterRepo, uploadGateway, mailer, operatorDirectory)
	testimonialUseCase := usecase.NewTestimonialUseCase(testimonialRepo, jobOrderRepo)
	portfolioUseCase := usecase.NewPortfolioUseCase(portfolioRepo, uploadGateway)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, counterRepo)

	jobOrderHandler := handlers.NewJobOrderHandler(jobOrderUseCase)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialUseCase)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobOrderRoutes(v1, jobOrderHandler)
	addTestimonialRoutes(v1, testimonialHandler)
	addCatalogRoutes(v1, portfolioHandler, serviceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
