package request

import (
	"encoding/json"
	"strings"

	"realnest_crm/internal/domain/entities"
)

// InitiateBookingRequest reserves a unit for a lead against an approved quote
// before the booking form is filled.
type InitiateBookingRequest struct {
	LeadID  string `json:"lead_id" binding:"required"`
	UnitID  string `json:"unit_id" binding:"required"`
	QuoteID string `json:"quote_id" binding:"required"`
}

func (r InitiateBookingRequest) ResolveLeadID() string  { return strings.TrimSpace(r.LeadID) }
func (r InitiateBookingRequest) ResolveUnitID() string  { return strings.TrimSpace(r.UnitID) }
func (r InitiateBookingRequest) ResolveQuoteID() string { return strings.TrimSpace(r.QuoteID) }

// ApplicantRequest carries one applicant's KYC fields as entered in the
// booking wizard.
type ApplicantRequest struct {
	FullName    string `json:"full_name"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	PAN         string `json:"pan"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	Address     string `json:"address"`
	IsPrimary   bool   `json:"is_primary"`
}

// SubmitBookingRequest finalizes a booking. TokenAmount of 0 means "use the
// default 10% suggestion"; PaymentPayload is forwarded to the payment
// provider untouched except for amount/reference enrichment.
type SubmitBookingRequest struct {
	LeadID         string             `json:"lead_id" binding:"required"`
	QuoteID        string             `json:"quote_id" binding:"required"`
	Applicants     []ApplicantRequest `json:"applicants" binding:"required"`
	TokenAmount    float64            `json:"token_amount"`
	PaymentMode    string             `json:"payment_mode"`
	PaymentPayload json.RawMessage    `json:"payment_payload,omitempty"`
}

func (r SubmitBookingRequest) ResolveLeadID() string  { return strings.TrimSpace(r.LeadID) }
func (r SubmitBookingRequest) ResolveQuoteID() string { return strings.TrimSpace(r.QuoteID) }

// ToApplicants maps the wizard rows onto domain applicants. PAN is passed
// through as entered: the downstream format check expects uppercase and a
// lowercase PAN is a validation failure, not something to fix up silently.
func (r SubmitBookingRequest) ToApplicants() []entities.Applicant {
	out := make([]entities.Applicant, 0, len(r.Applicants))
	for _, a := range r.Applicants {
		out = append(out, entities.Applicant{
			FullName:    strings.TrimSpace(a.FullName),
			Mobile:      strings.TrimSpace(a.Mobile),
			Email:       strings.TrimSpace(a.Email),
			PAN:         strings.TrimSpace(a.PAN),
			DateOfBirth: strings.TrimSpace(a.DateOfBirth),
			Address:     strings.TrimSpace(a.Address),
			IsPrimary:   a.IsPrimary,
		})
	}
	return out
}

// PayMilestoneRequest marks one scheduled installment as paid.
type PayMilestoneRequest struct {
	Milestone     string `json:"milestone" binding:"required"`
	TransactionID string `json:"transaction_id"`
}

func (r PayMilestoneRequest) ResolveMilestone() string {
	return strings.TrimSpace(r.Milestone)
}
