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
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidChangeOrderPayload = pkg.NewDomainErrorSimple("INVALID_CHANGE_ORDER_INPUT", "Invalid change order payload", http.StatusBadRequest)
	errInvalidChangeOrderNum     = pkg.NewDomainErrorSimple("INVALID_CHANGE_ORDER_NUM", "Invalid change order number", http.StatusBadRequest)
)

// ChangeOrderHandler handles HTTP requests for contract change orders.

type ChangeOrderHandler struct {
	usecase usecase.IChangeOrderUseCase
}

func NewChangeOrderHandler(uc usecase.IChangeOrderUseCase) *ChangeOrderHandler {
	return &ChangeOrderHandler{usecase: uc}
}

// CreateChangeOrder appends a draft change order to a contract.
func (h *ChangeOrderHandler) CreateChangeOrder(c *gin.Context) {
	var payload request.ChangeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.Create(c.Request.Context(), c.Param("quote_id"), toChangeOrderInput(payload))
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChangeOrder(entry))
}

func (h *ChangeOrderHandler) SendChangeOrder(c *gin.Context) {
	h.patchChangeOrderStatus(c, h.usecase.Send)
}

// SignChangeOrder signs a change order. Signing while the contingency fund
// is overdrawn is rejected unless `force=true` is passed.
func (h *ChangeOrderHandler) SignChangeOrder(c *gin.Context) {
	force := c.Query("force") == "true"
	h.patchChangeOrderStatus(c, func(ctx context.Context, quoteID string, num int) (entities.ChangeOrderEntry, error) {
		return h.usecase.Sign(ctx, quoteID, num, force)
	})
}

func (h *ChangeOrderHandler) UnsignChangeOrder(c *gin.Context) {
	h.patchChangeOrderStatus(c, h.usecase.Unsign)
}

// VoidChangeOrder appends the compensating reversal entry for a change
// order. The original entry stays in the history untouched.
func (h *ChangeOrderHandler) VoidChangeOrder(c *gin.Context) {
	num, ok := changeOrderNum(c)
	if !ok {
		return
	}

	// Body is optional; an absent or malformed one just means no voided_by.
	var payload request.ChangeOrderVoidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		payload = request.ChangeOrderVoidRequest{}
	}

	entry, err := h.usecase.Void(c.Request.Context(), c.Param("quote_id"), num, payload.VoidedBy)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChangeOrder(entry))
}

func (h *ChangeOrderHandler) patchChangeOrderStatus(
	c *gin.Context,
	updater func(ctx context.Context, quoteID string, num int) (entities.ChangeOrderEntry, error),
) {
	num, ok := changeOrderNum(c)
	if !ok {
		return
	}

	entry, err := updater(c.Request.Context(), c.Param("quote_id"), num)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrder(entry))
}

func changeOrderNum(c *gin.Context) (int, bool) {
	num, err := strconv.Atoi(c.Param("num"))
	if err != nil || num <= 0 {
		c.JSON(errInvalidChangeOrderNum.HTTPStatus, errInvalidChangeOrderNum.ToHTTPError())
		return 0, false
	}
	return num, true
}

func toChangeOrderInput(payload request.ChangeOrderRequest) usecase.ChangeOrderInput {
	in := usecase.ChangeOrderInput{CreatedBy: payload.ResolveCreatedBy()}
	for _, line := range payload.Additions {
		in.Additions = append(in.Additions, entities.ChangeOrderLine(line))
	}
	for _, line := range payload.Deletions {
		in.Deletions = append(in.Deletions, entities.ChangeOrderLine(line))
	}
	if len(payload.Adjustments) > 0 {
		in.Adjustments = make(map[string]entities.Adjustment, len(payload.Adjustments))
		for key, amount := range payload.Adjustments {
			in.Adjustments[key] = entities.Adjustment{Amount: amount}
		}
	}
	return in
}

func mapChangeOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrEmptyChangeOrder):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChangeOrderNotFound):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_FOUND", "Change order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotAContract):
		return pkg.NewDomainErrorSimple("NOT_A_CONTRACT", "Change orders require an accepted contract", http.StatusConflict)
	case errors.Is(err, usecase.ErrChangeOrderVoided):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_VOIDED", "Change order is voided", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidChangeOrderMove):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid change order status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrContingencyOverdrawn):
		return pkg.NewDomainErrorSimple("CONTINGENCY_OVERDRAWN", "Contingency fund is overdrawn; pass force=true to sign anyway", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
