package routes

import (
	"modular_homes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments  = "/payments"
	PathCustomers = "/customers"
)

func addBillingRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, customerHandler *handlers.CustomerHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreatePayment)
		payments.GET("/:quote_id", paymentHandler.GetPayments)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("/:customer_id", customerHandler.GetCustomer)
	}
}
