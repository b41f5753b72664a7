package response

import (
	"time"

	"realnest_crm/internal/domain/entities"
)

type CostSheetResponse struct {
	BaseCost           float64 `json:"base_cost"`
	FloorRiseCost      float64 `json:"floor_rise_cost"`
	PLC                float64 `json:"plc"`
	Amenities          float64 `json:"amenities"`
	ParkingCount       int     `json:"parking_count"`
	ParkingCost        float64 `json:"parking_cost"`
	AgreementValue     float64 `json:"agreement_value"`
	GSTRate            float64 `json:"gst_rate"`
	GSTAmount          float64 `json:"gst_amount"`
	StampDutyAmount    float64 `json:"stamp_duty_amount"`
	RegistrationAmount float64 `json:"registration_amount"`
	GrossTotal         float64 `json:"gross_total"`
	DiscountPerSqft    float64 `json:"discount_per_sqft"`
	DiscountAmount     float64 `json:"discount_amount"`
	FinalPrice         float64 `json:"final_price"`
}

func fromCostSheet(cs entities.CostSheet) CostSheetResponse {
	return CostSheetResponse{
		BaseCost:           cs.BaseCost,
		FloorRiseCost:      cs.FloorRiseCost,
		PLC:                cs.PLC,
		Amenities:          cs.Amenities,
		ParkingCount:       cs.ParkingCount,
		ParkingCost:        cs.ParkingCost,
		AgreementValue:     cs.AgreementValue,
		GSTRate:            cs.GSTRate,
		GSTAmount:          cs.GSTAmount,
		StampDutyAmount:    cs.StampDutyAmount,
		RegistrationAmount: cs.RegistrationAmount,
		GrossTotal:         cs.GrossTotal,
		DiscountPerSqft:    cs.DiscountPerSqft,
		DiscountAmount:     cs.DiscountAmount,
		FinalPrice:         cs.FinalPrice,
	}
}

type QuoteResponse struct {
	QuoteID     string            `json:"quote_id"`
	ID          string            `json:"id"`
	LeadID      string            `json:"lead_id"`
	UnitID      string            `json:"unit_id"`
	UnitNo      string            `json:"unit_no"`
	Version     int               `json:"version"`
	CostSheet   CostSheetResponse `json:"cost_sheet"`
	PaymentPlan string            `json:"payment_plan"`
	Status      string            `json:"status"`
	CreatedBy   string            `json:"created_by,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	ValidUntil  time.Time         `json:"valid_until"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:     q.ID,
		ID:          q.ID,
		LeadID:      q.LeadID,
		UnitID:      q.UnitID,
		UnitNo:      q.UnitNo,
		Version:     q.Version,
		CostSheet:   fromCostSheet(q.CostSheet),
		PaymentPlan: q.PaymentPlan,
		Status:      string(q.Status),
		CreatedBy:   q.CreatedBy,
		CreatedAt:   q.CreatedAt,
		ValidUntil:  q.ValidUntil,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

// ShareQuoteResponse returns the composed deep link for the share action.
type ShareQuoteResponse struct {
	ShareLink string `json:"share_link"`
}
