package routes

import (
	"log"
	"os"
	"strconv"

	_ "realnest_crm/docs" // This will be auto-generated
	"realnest_crm/internal/adapter/http/handlers"
	repository2 "realnest_crm/internal/adapter/persistence/repository"
	"realnest_crm/internal/infrastructure/database"
	"realnest_crm/internal/infrastructure/messaging"
	"realnest_crm/internal/infrastructure/payments"
	"realnest_crm/internal/usecase"
	"realnest_crm/internal/usecase/interfaces"

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

	unitRepo := repository2.NewUnitDynamoRepository(ddb)
	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	configRepo := repository2.NewPricingConfigDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		// Token collection falls back to offline receipts when the gateway
		// is not configured.
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	messenger := messaging.NewWhatsAppMessenger()

	quoteUseCase := usecase.NewQuoteUseCase(leadRepo, unitRepo, projectRepo, configRepo, messenger)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, leadRepo, unitRepo, paymentGateway)
	inventoryUseCase := usecase.NewInventoryUseCase(unitRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSalesRoutes(v1, quoteHandler, bookingHandler, inventoryHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
