package handlers

import (
	"errors"
	"log"
	request "modular_homes/internal/adapter/http/dto/request"
	response "modular_homes/internal/adapter/http/dto/response"
	"modular_homes/internal/usecase"
	"modular_homes/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for contract payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment records a payment against a contract, optionally charging it
// through the payment gateway first.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log.Printf("[payment][handler] create start quote_id=%s", quoteID)

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload quote_id=%s err=%v", quoteID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.RecordPayment(c.Request.Context(), quoteID, usecase.PaymentInput{
		Amount:               payload.Amount,
		IsContingencyPayment: payload.IsContingencyPayment,
		ChargeGateway:        payload.ChargeGateway,
		GatewayPayload:       payload.GatewayPayload,
		CreatedBy:            payload.CreatedBy,
	})
	if err != nil {
		log.Printf("[payment][handler] create failed quote_id=%s err=%v", quoteID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success quote_id=%s payment_id=%s contingency=%t", quoteID, created.ID, created.IsContingencyPayment)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// GetPayments returns all payments recorded against a contract.
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	quoteID := c.Param("quote_id")

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidGatewayInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotAContract):
		return pkg.NewDomainErrorSimple("NOT_A_CONTRACT", "Payments require an accepted contract", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGatewayDeclined):
		return pkg.NewDomainErrorSimple("GATEWAY_DECLINED", "Payment gateway declined the charge", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
