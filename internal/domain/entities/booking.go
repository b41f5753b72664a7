package entities

import "time"

// BookingStatus represents the lifecycle of a committed sale.
//
// Domain notes:
//   - Cancellation is a status change, never a delete, and does not release
//     the unit (Sold is terminal).

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "Active"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusHandover  BookingStatus = "Handover"
)

// CanTransitionTo reports whether moving from s to next is legal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return s == BookingStatusActive && (next == BookingStatusCancelled || next == BookingStatusHandover)
}

// MilestoneStatus is the payment state of one scheduled installment.

type MilestoneStatus string

const (
	MilestoneStatusPaid     MilestoneStatus = "Paid"
	MilestoneStatusDue      MilestoneStatus = "Due"
	MilestoneStatusOverdue  MilestoneStatus = "Overdue"
	MilestoneStatusUpcoming MilestoneStatus = "Upcoming"
)

// PaymentMilestone is one scheduled installment of a booking.
//
// The schedule is fixed at booking time; subsequent mutations only move the
// status (and paid metadata), never the percentages or amounts.

type PaymentMilestone struct {
	Name          string          `json:"name"`
	Percent       float64         `json:"percent"`
	Amount        float64         `json:"amount"`
	DueDate       time.Time       `json:"due_date"`
	Status        MilestoneStatus `json:"status"`
	PaidDate      time.Time       `json:"paid_date,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
}

// EffectiveStatus treats an unpaid installment whose due date has passed as
// Overdue at read time.
func (m PaymentMilestone) EffectiveStatus(now time.Time) MilestoneStatus {
	if m.Status != MilestoneStatusPaid && !m.DueDate.IsZero() && now.After(m.DueDate) {
		return MilestoneStatusOverdue
	}
	return m.Status
}

// Applicant is one person on the booking (primary plus optional co-applicant),
// with the KYC fields collected at booking time.

type Applicant struct {
	FullName    string `json:"full_name"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email,omitempty"`
	PAN         string `json:"pan,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Address     string `json:"address,omitempty"`
	IsPrimary   bool   `json:"is_primary"`
}

// PaymentTransaction records the token payment collected at booking submit.

type PaymentTransaction struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	Reference string    `json:"reference,omitempty"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
}

// Booking is the committed sale persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//   - GSI2 (lead_id-index): lead_id
//
// Financials are copied from the quote's cost sheet at booking time and are
// never recalculated from a live rate card afterwards: a booking is an
// immutable financial contract.

type Booking struct {
	ID             string             `json:"id"`
	QuoteID        string             `json:"quote_id"`
	LeadID         string             `json:"lead_id"`
	CustomerName   string             `json:"customer_name"`
	CustomerMobile string             `json:"customer_mobile"`
	UnitID         string             `json:"unit_id"`
	UnitNo         string             `json:"unit_no"`
	Tower          string             `json:"tower"`
	Floor          float64            `json:"floor"`
	CarpetArea     float64            `json:"carpet_area"`
	AgreementValue float64            `json:"agreement_value"`
	Taxes          float64            `json:"taxes"`
	OtherCharges   float64            `json:"other_charges"`
	TotalCost      float64            `json:"total_cost"`
	AmountPaid     float64            `json:"amount_paid"`
	BookingDate    time.Time          `json:"booking_date"`
	Status         BookingStatus      `json:"status"`
	Applicants     []Applicant        `json:"applicants"`
	TokenPayment   PaymentTransaction `json:"token_payment"`
	Milestones     []PaymentMilestone `json:"milestones"`
}

// MilestoneByName returns the named installment and its index.
func (b Booking) MilestoneByName(name string) (PaymentMilestone, int) {
	for i, m := range b.Milestones {
		if m.Name == name {
			return m, i
		}
	}
	return PaymentMilestone{}, -1
}
