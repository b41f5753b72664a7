package interfaces

import (
	"context"
	"realnest_crm/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// The quote history is append-only: AppendQuote pushes a new version onto the
// lead's quotes list, it never replaces prior entries. Callers treat leads as
// copy-on-write values.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	AppendQuote(ctx context.Context, leadID string, q entities.Quote) (entities.Lead, error)
	// UpdateQuoteStatus flips the status of the quote matched by id inside the
	// lead's history, leaving every other entry untouched.
	UpdateQuoteStatus(ctx context.Context, leadID, quoteID string, status entities.QuoteStatus) (entities.Lead, error)
	// UpdateStage moves the lead's funnel position (e.g. BOOKED / Token Received).
	UpdateStage(ctx context.Context, leadID string, stage entities.LeadStage, subStage string) (entities.Lead, error)
}
