package routes

import (
	"log"
	"os"

	_ "freelance_marketplace/docs" // This will be auto-generated
	"freelance_marketplace/internal/adapter/http/handlers"
	repository2 "freelance_marketplace/internal/adapter/persistence/repository"
	"freelance_marketplace/internal/infrastructure/cache"
	"freelance_marketplace/internal/infrastructure/database"
	"freelance_marketplace/internal/infrastructure/notifications"
	"freelance_marketplace/internal/infrastructure/payments"
	"freelance_marketplace/internal/usecase"
	"freelance_marketplace/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	var projectRepo interfaces.IProjectRepository = repository2.NewProjectDynamoRepository(ddb)
	if rdb, err := cache.ConnectRedis(); err != nil {
		log.Printf("Redis cache not configured, reads go straight to DynamoDB: %v", err)
	} else {
		projectRepo = repository2.NewProjectReadCache(projectRepo, rdb)
	}

	bidRepo := repository2.NewBidDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	submissionRepo := repository2.NewSubmissionDynamoRepository(ddb)
	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)
	ledger := repository2.NewLedgerDynamoStore(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var notifier interfaces.INotificationDispatcher
	dispatcher, err := notifications.NewKafkaDispatcherFromEnv()
	if err != nil {
		log.Printf("Kafka dispatcher not configured, notifications disabled: %v", err)
	} else {
		notifier = dispatcher
	}

	feePolicy := usecase.NewFeePolicyFromEnv()

	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	bidUseCase := usecase.NewBidUseCase(bidRepo, projectRepo, ledger, notifier)
	contractUseCase := usecase.NewContractUseCase(contractRepo, bidRepo, projectRepo, ledger, notifier)
	workReviewUseCase := usecase.NewWorkReviewUseCase(submissionRepo, projectRepo, ledger, notifier)
	settlementUseCase := usecase.NewSettlementUseCase(transactionRepo, contractRepo, projectRepo, ledger, paymentGateway, notifier, feePolicy)
	adminUseCase := usecase.NewAdminUseCase(projectRepo, contractRepo, transactionRepo, ledger, notifier)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	bidHandler := handlers.NewBidHandler(bidUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	workReviewHandler := handlers.NewWorkReviewHandler(workReviewUseCase)
	settlementHandler := handlers.NewSettlementHandler(settlementUseCase)
	adminHandler := handlers.NewAdminHandler(adminUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, projectHandler, bidHandler, contractHandler, workReviewHandler, settlementHandler, adminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
