package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "realnest_crm/internal/adapter/http/dto/request"
	response "realnest_crm/internal/adapter/http/dto/response"
	"realnest_crm/internal/usecase"
	"realnest_crm/internal/usecase/interfaces"
	"realnest_crm/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler handles HTTP requests for the booking lifecycle, from the
// initial unit hold through token collection and possession handover.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// InitiateBooking places a hold on the unit before the booking wizard opens.
func (h *BookingHandler) InitiateBooking(c *gin.Context) {
	var payload request.InitiateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	log.Printf("[booking][handler] initiate start lead_id=%s unit_id=%s", payload.ResolveLeadID(), payload.ResolveUnitID())

	unit, err := h.usecase.InitiateBooking(c.Request.Context(), payload.ResolveLeadID(), payload.ResolveUnitID(), payload.ResolveQuoteID())
	if err != nil {
		log.Printf("[booking][handler] initiate failed unit_id=%s err=%v", payload.ResolveUnitID(), err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[booking][handler] initiate success unit_id=%s status=%s", unit.ID, unit.Status)
	c.JSON(http.StatusOK, response.FromUnit(unit))
}

// SubmitBooking validates applicants, collects the token payment and
// materializes the booking with its milestone schedule.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var payload request.SubmitBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	log.Printf("[booking][handler] submit start lead_id=%s quote_id=%s", payload.ResolveLeadID(), payload.ResolveQuoteID())

	booking, err := h.usecase.SubmitBooking(c.Request.Context(), usecase.SubmitBookingCommand{
		LeadID:         payload.ResolveLeadID(),
		QuoteID:        payload.ResolveQuoteID(),
		Applicants:     payload.ToApplicants(),
		TokenAmount:    payload.TokenAmount,
		PaymentMode:    payload.PaymentMode,
		PaymentPayload: payload.PaymentPayload,
	})
	if err != nil {
		log.Printf("[booking][handler] submit failed quote_id=%s err=%v", payload.ResolveQuoteID(), err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[booking][handler] submit success booking_id=%s token_txn=%s", booking.ID, booking.TokenPayment.ID)
	c.JSON(http.StatusCreated, response.FromBooking(booking, time.Now()))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")

	booking, err := h.usecase.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking, time.Now()))
}

func (h *BookingHandler) ListBookingsByLead(c *gin.Context) {
	leadID := c.Param("lead_id")

	bookings, err := h.usecase.ListBookingsByLead(c.Request.Context(), leadID)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings, time.Now()))
}

// CancelBooking cancels an active booking. The unit is not put back on the
// market automatically; releasing it is a separate inventory decision.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")
	log.Printf("[booking][handler] cancel start booking_id=%s", bookingID)

	booking, err := h.usecase.CancelBooking(c.Request.Context(), bookingID)
	if err != nil {
		log.Printf("[booking][handler] cancel failed booking_id=%s err=%v", bookingID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[booking][handler] cancel success booking_id=%s status=%s", booking.ID, booking.Status)
	c.JSON(http.StatusOK, response.FromBooking(booking, time.Now()))
}

// MarkHandover records possession handover on a fully active booking.
func (h *BookingHandler) MarkHandover(c *gin.Context) {
	bookingID := c.Param("booking_id")

	booking, err := h.usecase.MarkHandover(c.Request.Context(), bookingID)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking, time.Now()))
}

// PayMilestone marks one scheduled installment as paid.
func (h *BookingHandler) PayMilestone(c *gin.Context) {
	bookingID := c.Param("booking_id")

	var payload request.PayMilestoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	log.Printf("[booking][handler] pay-milestone start booking_id=%s milestone=%s", bookingID, payload.ResolveMilestone())

	booking, err := h.usecase.PayMilestone(c.Request.Context(), bookingID, payload.ResolveMilestone(), payload.TransactionID)
	if err != nil {
		log.Printf("[booking][handler] pay-milestone failed booking_id=%s milestone=%s err=%v", bookingID, payload.ResolveMilestone(), err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[booking][handler] pay-milestone success booking_id=%s milestone=%s", booking.ID, payload.ResolveMilestone())
	c.JSON(http.StatusOK, response.FromBooking(booking, time.Now()))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID),
		errors.Is(err, usecase.ErrInvalidUnitID),
		errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidTokenAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPrimaryApplicant),
		errors.Is(err, usecase.ErrMissingApplicantName),
		errors.Is(err, usecase.ErrMissingApplicantMobile),
		errors.Is(err, usecase.ErrInvalidPAN),
		errors.Is(err, usecase.ErrMissingDateOfBirth),
		errors.Is(err, usecase.ErrApplicantUnderage):
		return pkg.NewDomainError("INVALID_APPLICANT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnitNotFound):
		return pkg.NewDomainErrorSimple("UNIT_NOT_FOUND", "Unit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved), errors.Is(err, usecase.ErrQuoteUnitMismatch):
		return pkg.NewDomainError("QUOTE_NOT_BOOKABLE", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteAlreadyBooked):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_BOOKED", "Quote already has a booking", http.StatusConflict)
	case errors.Is(err, interfaces.ErrUnitConflict):
		return pkg.NewDomainErrorSimple("UNIT_CONFLICT", "Unit was taken by another booking", http.StatusConflict)
	case errors.Is(err, usecase.ErrMilestoneAlreadyPaid):
		return pkg.NewDomainErrorSimple("MILESTONE_ALREADY_PAID", "Milestone is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalBookingTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Booking status cannot move this way", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
