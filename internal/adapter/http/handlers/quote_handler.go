package handlers

import (
	"errors"
	"net/http"

	request "clima_hogar/internal/adapter/http/dto/request"
	response "clima_hogar/internal/adapter/http/dto/response"
	"clima_hogar/internal/usecase"
	"clima_hogar/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler drives the quotation form and the external handoff.

type QuoteHandler struct {
	quotes  usecase.IQuoteUseCase
	handoff usecase.IHandoffUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, handoff usecase.IHandoffUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, handoff: handoff}
}

// UpdateQuote applies the provided field transitions to the session's form.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	if payload.IsEmpty() {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.quotes.Update(c.Request.Context(), c.Param("session_id"), usecase.QuoteUpdate{
		ServiceType:   payload.ServiceType,
		CapacityRange: payload.CapacityRange,
		PlanTier:      payload.PlanTier,
		ContactName:   payload.ContactName,
		ContactPhone:  payload.ContactPhone,
		ContactEmail:  payload.ContactEmail,
		Message:       payload.Message,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

// ApplyEquipmentReference consumes the equipment-quote-request signal from
// the catalog detail view and pre-fills the form.
func (h *QuoteHandler) ApplyEquipmentReference(c *gin.Context) {
	var payload request.EquipmentReferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.quotes.ApplyEquipmentReference(c.Request.Context(), c.Param("session_id"), usecase.EquipmentReference{
		Marca:     payload.ResolveMarca(),
		Modelo:    payload.ResolveModelo(),
		Capacidad: payload.Capacidad,
		Precio:    payload.Precio,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

// PreviewQuote returns the composed message triple without side effects.
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	msg, err := h.quotes.Compose(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteMessage(msg))
}

// SubmitQuote runs the external handoff state machine. A repeat submit while
// one is in flight answers 200 with started=false.
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	result, err := h.handoff.Submit(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHandoffResult(result))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidServiceType), errors.Is(err, usecase.ErrInvalidPlanTier), errors.Is(err, usecase.ErrInvalidEquipmentInfo):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHandoffNotConfigured):
		return pkg.NewDomainErrorSimple("HANDOFF_NOT_CONFIGURED", "Contact channels not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
