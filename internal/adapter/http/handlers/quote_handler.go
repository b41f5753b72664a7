package handlers

import (
	"context"
	"errors"
	"net/http"

	request "realnest_crm/internal/adapter/http/dto/request"
	response "realnest_crm/internal/adapter/http/dto/response"
	"realnest_crm/internal/domain/entities"
	"realnest_crm/internal/usecase"
	"realnest_crm/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for the quote lifecycle.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GenerateQuote prices a unit for a lead and appends a new quote version to
// the lead's history.
func (h *QuoteHandler) GenerateQuote(c *gin.Context) {
	var payload request.GenerateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.GenerateQuote(c.Request.Context(), usecase.GenerateQuoteCommand{
		LeadID:          payload.ResolveLeadID(),
		UnitID:          payload.ResolveUnitID(),
		DiscountPerSqft: payload.DiscountPerSqft,
		ParkingCount:    payload.ParkingCount,
		PaymentPlan:     payload.PaymentPlan,
		CreatedBy:       payload.CreatedBy,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.ApproveQuote)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.RejectQuote)
}

func (h *QuoteHandler) patchQuoteStatusByRequest(
	c *gin.Context,
	updater func(ctx context.Context, leadID, quoteID string) (entities.Quote, error),
) {
	var payload request.QuoteActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := updater(c.Request.Context(), payload.ResolveLeadID(), payload.ResolveQuoteID())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ShareQuote composes the summary message and hands it to the messaging
// deep-link target, returning the share link.
func (h *QuoteHandler) ShareQuote(c *gin.Context) {
	var payload request.QuoteActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	link, err := h.usecase.ShareQuote(c.Request.Context(), payload.ResolveLeadID(), payload.ResolveQuoteID())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ShareQuoteResponse{ShareLink: link})
}

// GetQuote returns one quote from a lead's history.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	leadID := c.Param("lead_id")
	quoteID := c.Param("quote_id")

	q, err := h.usecase.GetQuote(c.Request.Context(), leadID, quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListQuotesByLead returns the lead's full quote history, oldest first.
func (h *QuoteHandler) ListQuotesByLead(c *gin.Context) {
	leadID := c.Param("lead_id")

	quotes, err := h.usecase.ListQuotesByLead(c.Request.Context(), leadID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID),
		errors.Is(err, usecase.ErrInvalidUnitID),
		errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidDiscount),
		errors.Is(err, usecase.ErrInvalidParkingCount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnitNotFound):
		return pkg.NewDomainErrorSimple("UNIT_NOT_FOUND", "Unit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound), errors.Is(err, usecase.ErrPricingConfigNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_CONFIGURED", "Project is not configured for pricing", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnitNotSellable):
		return pkg.NewDomainErrorSimple("UNIT_NOT_SELLABLE", "Unit is already sold", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalQuoteTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Quote status cannot move this way", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
