package routes

import (
	"realnest_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathBookings = "/bookings"
	PathUnits    = "/units"
	PathLeads    = "/leads"
)

func addSalesRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, bookingHandler *handlers.BookingHandler, inventoryHandler *handlers.InventoryHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.GenerateQuote)
		quotes.PATCH("/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/reject", quoteHandler.RejectQuote)
		quotes.POST("/share", quoteHandler.ShareQuote)
	}

	leads := rg.Group(PathLeads)
	{
		leads.GET("/:lead_id/quotes", quoteHandler.ListQuotesByLead)
		leads.GET("/:lead_id/quotes/:quote_id", quoteHandler.GetQuote)
		leads.GET("/:lead_id/bookings", bookingHandler.ListBookingsByLead)
	}

	bookings := rg.Group(PathBookings)
	{
		bookings.POST("/initiate", bookingHandler.InitiateBooking)
		bookings.POST("", bookingHandler.SubmitBooking)
		bookings.GET("/:booking_id", bookingHandler.GetBooking)
		bookings.PATCH("/:booking_id/cancel", bookingHandler.CancelBooking)
		bookings.PATCH("/:booking_id/handover", bookingHandler.MarkHandover)
		bookings.POST("/:booking_id/milestones/pay", bookingHandler.PayMilestone)
	}

	units := rg.Group(PathUnits)
	{
		units.GET("/:unit_id", inventoryHandler.GetUnit)
		units.PATCH("/:unit_id/release", inventoryHandler.ReleaseBlock)
		units.GET("/tower/:tower", inventoryHandler.ListUnitsByTower)
	}
}
