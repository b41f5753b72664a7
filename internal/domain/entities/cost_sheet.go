package entities

// CostSheet is the fully itemized price breakdown for one
// (unit, config, discount, parking, payment plan) combination.
//
// Domain notes:
//   - Value object: once embedded in a Quote it is never recomputed from a
//     live PricingConfig.
//   - Reconciliation invariant:
//     FinalPrice = AgreementValue + GSTAmount + StampDutyAmount + RegistrationAmount - DiscountAmount.
//   - FinalPrice is deliberately not clamped; a discount larger than the gross
//     total is a caller validation concern, not an engine one.

type CostSheet struct {
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
	PaymentPlan        string  `json:"payment_plan"`
}
