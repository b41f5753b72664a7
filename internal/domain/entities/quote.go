package entities

import "time"

// QuoteStatus represents the lifecycle of a quote offered to a lead.
//
// Domain notes:
//   - Transitions only move forward: Draft/Pending Approval -> Approved/Rejected,
//     Approved -> Booked. Booked and Rejected are terminal.
//   - A quote whose discount exceeds the rate card's MaxDiscount starts in
//     Pending Approval instead of Approved.

type QuoteStatus string

const (
	QuoteStatusDraft           QuoteStatus = "Draft"
	QuoteStatusPendingApproval QuoteStatus = "Pending Approval"
	QuoteStatusApproved        QuoteStatus = "Approved"
	QuoteStatusRejected        QuoteStatus = "Rejected"
	QuoteStatusBooked          QuoteStatus = "Booked"
)

// CanTransitionTo reports whether moving from s to next is a legal forward
// transition.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	switch s {
	case QuoteStatusDraft:
		return next == QuoteStatusApproved || next == QuoteStatusPendingApproval || next == QuoteStatusRejected
	case QuoteStatusPendingApproval:
		return next == QuoteStatusApproved || next == QuoteStatusRejected
	case QuoteStatusApproved:
		return next == QuoteStatusBooked
	default:
		return false
	}
}

// QuoteValidity is how long a generated quote stays open for acceptance.
const QuoteValidity = 7 * 24 * time.Hour

// Quote is a versioned cost-sheet snapshot offered to a specific lead for a
// specific unit. Quotes live embedded in the lead's append-only history; later
// versions supersede, never replace, earlier ones.

type Quote struct {
	ID          string      `json:"id"`
	LeadID      string      `json:"lead_id"`
	UnitID      string      `json:"unit_id"`
	UnitNo      string      `json:"unit_no"`
	Version     int         `json:"version"`
	CostSheet   CostSheet   `json:"cost_sheet"`
	PaymentPlan string      `json:"payment_plan"`
	Status      QuoteStatus `json:"status"`
	CreatedBy   string      `json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
	ValidUntil  time.Time   `json:"valid_until"`
}
