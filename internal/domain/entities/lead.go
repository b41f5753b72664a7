package entities

// LeadStage is the coarse sales-funnel position of a prospect. Only the
// booking-related stages matter to this service; upstream CRM stages pass
// through untouched.

type LeadStage string

const (
	LeadStageNew         LeadStage = "NEW"
	LeadStageQualified   LeadStage = "QUALIFIED"
	LeadStageNegotiation LeadStage = "NEGOTIATION"
	LeadStageBooked      LeadStage = "BOOKED"
)

const LeadSubStageTokenReceived = "Token Received"

// Lead is a prospect record carrying its append-only quote history.
//
// Storage model (DynamoDB):
//   - PK: id
//   - quotes: list attribute, append-only (new versions are pushed via
//     list_append; prior entries are never replaced)

type Lead struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Mobile   string    `json:"mobile"`
	Email    string    `json:"email,omitempty"`
	Stage    LeadStage `json:"stage"`
	SubStage string    `json:"sub_stage,omitempty"`
	Quotes   []Quote   `json:"quotes"`
}

// QuoteByID returns the quote with the given id from the lead's history.
func (l Lead) QuoteByID(quoteID string) (Quote, bool) {
	for _, q := range l.Quotes {
		if q.ID == quoteID {
			return q, true
		}
	}
	return Quote{}, false
}
