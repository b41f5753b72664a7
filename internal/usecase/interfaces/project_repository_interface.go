package interfaces

import (
	"context"
	"realnest_crm/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.

type IProjectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
}

// IPricingConfigRepository abstracts DynamoDB persistence for the per-project
// rate card.

type IPricingConfigRepository interface {
	GetByProjectID(ctx context.Context, projectID string) (entities.PricingConfig, error)
	Put(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error)
}
