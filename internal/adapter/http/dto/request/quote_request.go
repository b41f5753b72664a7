package request

import "strings"

// GenerateQuoteRequest is the payload the sales UI posts when an agent prices
// a unit for a lead. Discount and parking bounds ([0,500] in steps of 50,
// [0,4]) are enforced upstream by the form; the service only rejects negatives.
type GenerateQuoteRequest struct {
	LeadID          string  `json:"lead_id" binding:"required"`
	UnitID          string  `json:"unit_id" binding:"required"`
	DiscountPerSqft float64 `json:"discount_per_sqft"`
	ParkingCount    int     `json:"parking_count"`
	PaymentPlan     string  `json:"payment_plan"`
	CreatedBy       string  `json:"created_by"`
}

func (r GenerateQuoteRequest) ResolveLeadID() string {
	return strings.TrimSpace(r.LeadID)
}

func (r GenerateQuoteRequest) ResolveUnitID() string {
	return strings.TrimSpace(r.UnitID)
}

// QuoteActionRequest addresses one quote inside a lead's history; used by the
// approve/reject/share endpoints.
type QuoteActionRequest struct {
	LeadID  string `json:"lead_id" binding:"required"`
	QuoteID string `json:"quote_id" binding:"required"`
}

func (r QuoteActionRequest) ResolveLeadID() string {
	return strings.TrimSpace(r.LeadID)
}

func (r QuoteActionRequest) ResolveQuoteID() string {
	return strings.TrimSpace(r.QuoteID)
}
