package response

import (
	"time"

	"realnest_crm/internal/domain/entities"
)

type MilestoneResponse struct {
	Name          string    `json:"name"`
	Percent       float64   `json:"percent"`
	Amount        float64   `json:"amount"`
	DueDate       time.Time `json:"due_date"`
	Status        string    `json:"status"`
	PaidDate      time.Time `json:"paid_date,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
}

type ApplicantResponse struct {
	FullName    string `json:"full_name"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email,omitempty"`
	PAN         string `json:"pan,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	IsPrimary   bool   `json:"is_primary"`
}

type BookingResponse struct {
	BookingID      string              `json:"booking_id"`
	ID             string              `json:"id"`
	QuoteID        string              `json:"quote_id"`
	LeadID         string              `json:"lead_id"`
	CustomerName   string              `json:"customer_name"`
	CustomerMobile string              `json:"customer_mobile"`
	UnitID         string              `json:"unit_id"`
	UnitNo         string              `json:"unit_no"`
	Tower          string              `json:"tower"`
	Floor          float64             `json:"floor"`
	CarpetArea     float64             `json:"carpet_area"`
	AgreementValue float64             `json:"agreement_value"`
	Taxes          float64             `json:"taxes"`
	OtherCharges   float64             `json:"other_charges"`
	TotalCost      float64             `json:"total_cost"`
	AmountPaid     float64             `json:"amount_paid"`
	BookingDate    time.Time           `json:"booking_date"`
	Status         string              `json:"status"`
	Applicants     []ApplicantResponse `json:"applicants"`
	Milestones     []MilestoneResponse `json:"milestones"`
}

// FromBooking projects the booking for the API. Milestone statuses are the
// effective view: an unpaid installment past its due date reads as Overdue.
func FromBooking(b entities.Booking, now time.Time) BookingResponse {
	applicants := make([]ApplicantResponse, 0, len(b.Applicants))
	for _, a := range b.Applicants {
		applicants = append(applicants, ApplicantResponse{
			FullName:    a.FullName,
			Mobile:      a.Mobile,
			Email:       a.Email,
			PAN:         a.PAN,
			DateOfBirth: a.DateOfBirth,
			IsPrimary:   a.IsPrimary,
		})
	}

	milestones := make([]MilestoneResponse, 0, len(b.Milestones))
	for _, m := range b.Milestones {
		milestones = append(milestones, MilestoneResponse{
			Name:          m.Name,
			Percent:       m.Percent,
			Amount:        m.Amount,
			DueDate:       m.DueDate,
			Status:        string(m.EffectiveStatus(now)),
			PaidDate:      m.PaidDate,
			TransactionID: m.TransactionID,
		})
	}

	return BookingResponse{
		BookingID:      b.ID,
		ID:             b.ID,
		QuoteID:        b.QuoteID,
		LeadID:         b.LeadID,
		CustomerName:   b.CustomerName,
		CustomerMobile: b.CustomerMobile,
		UnitID:         b.UnitID,
		UnitNo:         b.UnitNo,
		Tower:          b.Tower,
		Floor:          b.Floor,
		CarpetArea:     b.CarpetArea,
		AgreementValue: b.AgreementValue,
		Taxes:          b.Taxes,
		OtherCharges:   b.OtherCharges,
		TotalCost:      b.TotalCost,
		AmountPaid:     b.AmountPaid,
		BookingDate:    b.BookingDate,
		Status:         string(b.Status),
		Applicants:     applicants,
		Milestones:     milestones,
	}
}

func FromBookings(bookings []entities.Booking, now time.Time) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b, now))
	}
	return out
}
