package routes

import (
	"log"
	_ "modular_homes/docs" // This will be auto-generated
	"modular_homes/internal/adapter/http/handlers"
	repository2 "modular_homes/internal/adapter/persistence/repository"
	"modular_homes/internal/domain/pricing"
	"modular_homes/internal/infrastructure/database"
	"modular_homes/internal/infrastructure/payments"
	"modular_homes/internal/usecase"
	"modular_homes/internal/usecase/interfaces"
	"os"
	"strconv"

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

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	tables := pricing.DefaultTables()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, tables)
	changeOrderUseCase := usecase.NewChangeOrderUseCase(quoteRepo, tables)
	scrubbUseCase := usecase.NewScrubbUseCase(quoteRepo, tables)
	paymentUseCase := usecase.NewPaymentUseCase(quoteRepo, paymentGateway)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	changeOrderHandler := handlers.NewChangeOrderHandler(changeOrderUseCase)
	scrubbHandler := handlers.NewScrubbHandler(scrubbUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, changeOrderHandler, scrubbHandler)
	addBillingRoutes(v1, paymentHandler, customerHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
