package handlers

import (
	"errors"
	request "modular_homes/internal/adapter/http/dto/request"
	response "modular_homes/internal/adapter/http/dto/response"
	"modular_homes/internal/usecase"
	"modular_homes/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidScrubbPayload = pkg.NewDomainErrorSimple("INVALID_SCRUBB_INPUT", "Invalid scrubb payload", http.StatusBadRequest)
	errInvalidPermitPayload = pkg.NewDomainErrorSimple("INVALID_PERMIT_INPUT", "Invalid permit payload", http.StatusBadRequest)
)

// ScrubbHandler handles actual-cost ("scrubb") updates and the permit log.

type ScrubbHandler struct {
	usecase usecase.IScrubbUseCase
}

func NewScrubbHandler(uc usecase.IScrubbUseCase) *ScrubbHandler {
	return &ScrubbHandler{usecase: uc}
}

// RecordActualCost appends an actual-cost update for one contract service.
func (h *ScrubbHandler) RecordActualCost(c *gin.Context) {
	var payload request.ScrubbRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidScrubbPayload.HTTPStatus, errInvalidScrubbPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.RecordActualCost(
		c.Request.Context(),
		c.Param("quote_id"),
		payload.ResolveServiceKey(),
		float64(payload.ActualCost),
		payload.ResolveUpdatedBy(),
	)
	if err != nil {
		appErr := mapScrubbError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromScrubb(entry))
}

func (h *ScrubbHandler) GetHistory(c *gin.Context) {
	history, err := h.usecase.History(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapScrubbError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromScrubbHistory(history))
}

// RecordPermit appends a permit cost entry to the contract.
func (h *ScrubbHandler) RecordPermit(c *gin.Context) {
	var payload request.PermitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPermitPayload.HTTPStatus, errInvalidPermitPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.RecordPermit(
		c.Request.Context(),
		c.Param("quote_id"),
		payload.ResolveDescription(),
		payload.Amount,
		payload.CreatedBy,
	)
	if err != nil {
		appErr := mapScrubbError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPermit(entry))
}

func (h *ScrubbHandler) GetPermits(c *gin.Context) {
	entries, err := h.usecase.Permits(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapScrubbError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPermits(entries))
}

func mapScrubbError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidServiceKey),
		errors.Is(err, usecase.ErrInvalidActualCost), errors.Is(err, usecase.ErrInvalidPermitEntry):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotAContract):
		return pkg.NewDomainErrorSimple("NOT_A_CONTRACT", "Actual costs require an accepted contract", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceNotTracked):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_TRACKED", "Service is not tracked on this contract", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
