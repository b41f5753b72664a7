package entities

import "time"

// UnitStatus represents the sales lifecycle of an inventory unit.
//
// Domain notes:
//   - Blocked is a temporary hold taken while a booking form is being filled.
//   - Sold is terminal: a sold unit never re-enters Available or Blocked.

type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "Available"
	UnitStatusBlocked   UnitStatus = "Blocked"
	UnitStatusSold      UnitStatus = "Sold"
)

// BlockHoldDuration is how long a Blocked hold stays effective. Expiry is not
// driven by a timer; it is evaluated lazily whenever the unit is read.
const BlockHoldDuration = 24 * time.Hour

// CanTransitionTo reports whether moving from s to next is a legal forward
// transition. Sold accepts nothing.
func (s UnitStatus) CanTransitionTo(next UnitStatus) bool {
	switch s {
	case UnitStatusAvailable:
		return next == UnitStatusBlocked || next == UnitStatusSold
	case UnitStatusBlocked:
		return next == UnitStatusSold || next == UnitStatusAvailable
	default:
		return false
	}
}

// Unit is a sellable inventory item persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tower-index): tower
//
// Status transitions are performed with conditional writes so that two agents
// racing for the same unit cannot both win the hold.

type Unit struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	UnitNo     string     `json:"unit_no"`
	Floor      float64    `json:"floor"`
	Tower      string     `json:"tower"`
	UnitType   string     `json:"unit_type"`
	Status     UnitStatus `json:"status"`
	CarpetArea float64    `json:"carpet_area"`
	BasePrice  float64    `json:"base_price"`
	BlockedBy  string     `json:"blocked_by,omitempty"`
	BlockedAt  time.Time  `json:"blocked_at,omitempty"`
}

// BlockExpired reports whether a Blocked hold has lapsed as of now.
func (u Unit) BlockExpired(now time.Time) bool {
	if u.Status != UnitStatusBlocked || u.BlockedAt.IsZero() {
		return false
	}
	return now.Sub(u.BlockedAt) > BlockHoldDuration
}

// EffectiveStatus is the status a reader should act on: a lapsed hold is
// treated as Available even before the release has been persisted.
func (u Unit) EffectiveStatus(now time.Time) UnitStatus {
	if u.BlockExpired(now) {
		return UnitStatusAvailable
	}
	return u.Status
}
