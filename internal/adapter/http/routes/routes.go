package routes

import (
	"context"
	"log"
	"strconv"

	_ "billreview/docs" // This will be auto-generated
	"billreview/internal/adapter/http/handlers"
	repository2 "billreview/internal/adapter/persistence/repository"
	"billreview/internal/infrastructure/database"
	"billreview/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	pg := database.ConnectPostgres(context.Background())

	billRepo := repository2.NewBillDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	referenceRepo := repository2.NewReferencePgRepository(pg)
	ledgerRepo := repository2.NewExportLedgerPgRepository(pg)

	validateUseCase := usecase.NewValidateUseCase(billRepo)
	reconcileUseCase := usecase.NewReconcileUseCase(billRepo, orderRepo, referenceRepo, usecase.NewRateResolver(referenceRepo), referenceRepo)
	reviewUseCase := usecase.NewReviewUseCase(billRepo)
	exportUseCase := usecase.NewExportUseCase(billRepo, orderRepo, ledgerRepo)

	billHandler := handlers.NewBillHandler(validateUseCase, reconcileUseCase, reviewUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)
	batchHandler := handlers.NewBatchHandler(reconcileUseCase, exportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillRoutes(v1, billHandler, reviewHandler, batchHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
