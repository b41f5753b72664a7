package entities

// PricingConfig is the project-level rate card.
//
// Domain notes:
//   - Treated as immutable for the duration of a quote calculation; a cost
//     sheet embedded in a quote is never recomputed from a changed config.
//   - MaxDiscount is the largest per-sqft discount an agent may give without
//     the quote entering the approval queue.
//
// Storage model (DynamoDB):
//   - PK: project_id (one rate card per project)

type PricingConfig struct {
	ProjectID    string  `json:"project_id"`
	BaseRate     float64 `json:"base_rate"`     // per sqft
	FloorRise    float64 `json:"floor_rise"`    // per sqft per floor
	Amenities    float64 `json:"amenities"`     // flat
	ParkingRate  float64 `json:"parking_rate"`  // per slot
	StampDuty    float64 `json:"stamp_duty"`    // fraction of agreement value
	Registration float64 `json:"registration"`  // flat
	MaxDiscount  float64 `json:"max_discount"`  // per sqft, approval threshold
}
