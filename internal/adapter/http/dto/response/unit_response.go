package response

import (
	"time"

	"realnest_crm/internal/domain/entities"
)

type UnitResponse struct {
	UnitID     string    `json:"unit_id"`
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	UnitNo     string    `json:"unit_no"`
	Floor      float64   `json:"floor"`
	Tower      string    `json:"tower"`
	UnitType   string    `json:"unit_type"`
	Status     string    `json:"status"`
	CarpetArea float64   `json:"carpet_area"`
	BasePrice  float64   `json:"base_price"`
	BlockedBy  string    `json:"blocked_by,omitempty"`
	BlockedAt  time.Time `json:"blocked_at,omitempty"`
}

func FromUnit(u entities.Unit) UnitResponse {
	return UnitResponse{
		UnitID:     u.ID,
		ID:         u.ID,
		ProjectID:  u.ProjectID,
		UnitNo:     u.UnitNo,
		Floor:      u.Floor,
		Tower:      u.Tower,
		UnitType:   u.UnitType,
		Status:     string(u.Status),
		CarpetArea: u.CarpetArea,
		BasePrice:  u.BasePrice,
		BlockedBy:  u.BlockedBy,
		BlockedAt:  u.BlockedAt,
	}
}

func FromUnits(units []entities.Unit) []UnitResponse {
	out := make([]UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, FromUnit(u))
	}
	return out
}
