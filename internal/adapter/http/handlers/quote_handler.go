package handlers

import (
	"context"
	"errors"
	request "modular_homes/internal/adapter/http/dto/request"
	response "modular_homes/internal/adapter/http/dto/response"
	"modular_homes/internal/domain/entities"
	"modular_homes/internal/usecase"
	"modular_homes/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quotes/contracts, including the two
// derived reads: itemized totals and the reconciled contingency fund.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote creates a draft quote from the priceable selections payload.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), toQuoteInput(payload))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// UpdateSelections replaces the priceable selections of a draft quote.
func (h *QuoteHandler) UpdateSelections(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateSelections(c.Request.Context(), c.Param("quote_id"), toQuoteInput(payload))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Send)
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Accept)
}

func (h *QuoteHandler) DeclineQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Decline)
}

func (h *QuoteHandler) StartContract(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.StartContract)
}

func (h *QuoteHandler) CompleteQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Complete)
}

func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Cancel)
}

// GetTotals returns the itemized pricing of the quote as priced right now.
func (h *QuoteHandler) GetTotals(c *gin.Context) {
	quoteID := c.Param("quote_id")
	totals, err := h.usecase.Totals(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTotals(quoteID, totals))
}

// GetContingency returns the contingency fund replayed from the quote's logs.
func (h *QuoteHandler) GetContingency(c *gin.Context) {
	quoteID := c.Param("quote_id")
	rec, err := h.usecase.Contingency(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReconciliation(quoteID, rec))
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	quote, err := updater(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func toQuoteInput(payload request.QuoteRequest) usecase.QuoteInput {
	in := usecase.QuoteInput{
		CustomerID:    payload.ResolveCustomerID(),
		HomeModelID:   payload.HomeModelID,
		HomeBasePrice: payload.HomeBasePrice,
		Dimensions: entities.HomeDimensions{
			WidthFt:       payload.Dimensions.WidthFt,
			LengthFt:      payload.Dimensions.LengthFt,
			DoubleWide:    payload.Dimensions.DoubleWide,
			WalkDoors:     payload.Dimensions.WalkDoors,
			IBeamHeightIn: payload.Dimensions.IBeamHeightIn,
		},
		DriveMiles:        payload.DriveMiles,
		SelectedServices:  payload.SelectedServices,
		PriceOverrides:    payload.PriceOverrides,
		ServiceQuantities: payload.ServiceQuantities,
		ServiceDays:       payload.ServiceDays,
		MarkupRate:        payload.MarkupRate,
		ContingencyRate:   payload.ContingencyRate,
		RemovedMaterials:  payload.ResolveRemovedMaterials(),
	}
	for _, cm := range payload.CustomMaterials {
		in.CustomMaterials = append(in.CustomMaterials, entities.CustomMaterial{
			Name:     cm.Name,
			Price:    float64(cm.Price),
			Quantity: cm.Quantity,
		})
	}
	return in
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid quote status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteLocked):
		return pkg.NewDomainErrorSimple("QUOTE_LOCKED", "Quote selections are locked; use a change order", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
