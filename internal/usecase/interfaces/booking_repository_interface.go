package interfaces

import (
	"context"
	"realnest_crm/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Bookings are never deleted; cancellation and handover are status updates.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Booking, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
	// UpdateMilestone persists one installment's payment transition and the new
	// running amount paid. Schedule shape (names, percentages, amounts) is fixed
	// at creation and never rewritten.
	UpdateMilestone(ctx context.Context, id string, milestoneIndex int, m entities.PaymentMilestone, amountPaid float64) (entities.Booking, error)
}
