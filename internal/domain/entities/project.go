package entities

// ConstructionStatus of a project decides whether GST applies at all:
// completed inventory (Ready to Move) is sold without GST.

type ConstructionStatus string

const (
	ConstructionStatusUnderConstruction ConstructionStatus = "Under Construction"
	ConstructionStatusReadyToMove       ConstructionStatus = "Ready to Move"
)

type ProjectType string

const (
	ProjectTypeResidential ProjectType = "Residential"
	ProjectTypeCommercial  ProjectType = "Commercial"
)

// Project carries the context the pricing engine needs beyond the unit itself:
// construction status, metro classification and project type drive the GST
// slab selection.
//
// Storage model (DynamoDB):
//   - PK: id

type Project struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	ConstructionStatus ConstructionStatus `json:"construction_status"`
	IsMetro            bool               `json:"is_metro"`
	Type               ProjectType        `json:"type"`
}
