package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"realnest_crm/internal/domain/entities"
	"realnest_crm/internal/domain/pricing"
	"realnest_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound           = errors.New("lead not found")
	ErrUnitNotFound           = errors.New("unit not found")
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrProjectNotFound        = errors.New("project not found")
	ErrPricingConfigNotFound  = errors.New("pricing config not found")
	ErrInvalidLeadID          = errors.New("invalid lead id")
	ErrInvalidUnitID          = errors.New("invalid unit id")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrInvalidDiscount        = errors.New("invalid discount")
	ErrInvalidParkingCount    = errors.New("invalid parking count")
	ErrUnitNotSellable        = errors.New("unit is not sellable")
	ErrIllegalQuoteTransition = errors.New("illegal quote status transition")
)

// GenerateQuoteCommand carries the agent's pricing choices for one lead+unit.

type GenerateQuoteCommand struct {
	LeadID          string
	UnitID          string
	DiscountPerSqft float64
	ParkingCount    int
	PaymentPlan     string
	CreatedBy       string
}

// IQuoteUseCase exposes the quote lifecycle:
//   - generate a versioned cost-sheet snapshot for a lead+unit
//   - approve/reject quotes held in the approval queue
//   - share a quote summary to the lead's mobile

type IQuoteUseCase interface {
	GenerateQuote(ctx context.Context, cmd GenerateQuoteCommand) (entities.Quote, error)
	ApproveQuote(ctx context.Context, leadID, quoteID string) (entities.Quote, error)
	RejectQuote(ctx context.Context, leadID, quoteID string) (entities.Quote, error)
	ShareQuote(ctx context.Context, leadID, quoteID string) (string, error)
	GetQuote(ctx context.Context, leadID, quoteID string) (entities.Quote, error)
	ListQuotesByLead(ctx context.Context, leadID string) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	leadRepo    interfaces.ILeadRepository
	unitRepo    interfaces.IUnitRepository
	projectRepo interfaces.IProjectRepository
	configRepo  interfaces.IPricingConfigRepository
	messenger   interfaces.IQuoteMessenger
	now         func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	leadRepo interfaces.ILeadRepository,
	unitRepo interfaces.IUnitRepository,
	projectRepo interfaces.IProjectRepository,
	configRepo interfaces.IPricingConfigRepository,
	messenger interfaces.IQuoteMessenger,
) *QuoteUseCase {
	return &QuoteUseCase{
		leadRepo:    leadRepo,
		unitRepo:    unitRepo,
		projectRepo: projectRepo,
		configRepo:  configRepo,
		messenger:   messenger,
		now:         time.Now,
	}
}

// GenerateQuote prices the unit for the lead and appends a new quote version
// to the lead's history.
//
// Version numbering is a single per-lead counter: quoting the same lead
// against different units shares one sequence. A discount above the rate
// card's MaxDiscount parks the quote in Pending Approval instead of Approved.
func (u *QuoteUseCase) GenerateQuote(ctx context.Context, cmd GenerateQuoteCommand) (entities.Quote, error) {
	cmd.LeadID = strings.TrimSpace(cmd.LeadID)
	cmd.UnitID = strings.TrimSpace(cmd.UnitID)
	if cmd.LeadID == "" {
		return entities.Quote{}, ErrInvalidLeadID
	}
	if cmd.UnitID == "" {
		return entities.Quote{}, ErrInvalidUnitID
	}
	if cmd.DiscountPerSqft < 0 {
		return entities.Quote{}, ErrInvalidDiscount
	}
	if cmd.ParkingCount < 0 {
		return entities.Quote{}, ErrInvalidParkingCount
	}

	lead, err := u.leadRepo.GetByID(ctx, cmd.LeadID)
	if err != nil {
		return entities.Quote{}, err
	}
	if lead.ID == "" {
		return entities.Quote{}, ErrLeadNotFound
	}

	unit, err := u.unitRepo.GetByID(ctx, cmd.UnitID)
	if err != nil {
		return entities.Quote{}, err
	}
	if unit.ID == "" {
		return entities.Quote{}, ErrUnitNotFound
	}
	if unit.EffectiveStatus(u.now()) == entities.UnitStatusSold {
		return entities.Quote{}, ErrUnitNotSellable
	}

	project, err := u.projectRepo.GetByID(ctx, unit.ProjectID)
	if err != nil {
		return entities.Quote{}, err
	}
	if project.ID == "" {
		return entities.Quote{}, ErrProjectNotFound
	}

	cfg, err := u.configRepo.GetByProjectID(ctx, unit.ProjectID)
	if err != nil {
		return entities.Quote{}, err
	}
	if cfg.ProjectID == "" {
		return entities.Quote{}, ErrPricingConfigNotFound
	}

	sheet := pricing.ComputeCostSheet(unit, cfg, cmd.DiscountPerSqft, cmd.ParkingCount, project, cmd.PaymentPlan)

	status := entities.QuoteStatusApproved
	if cmd.DiscountPerSqft > cfg.MaxDiscount {
		status = entities.QuoteStatusPendingApproval
	}

	now := u.now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		LeadID:      lead.ID,
		UnitID:      unit.ID,
		UnitNo:      unit.UnitNo,
		Version:     len(lead.Quotes) + 1,
		CostSheet:   sheet,
		PaymentPlan: cmd.PaymentPlan,
		Status:      status,
		CreatedBy:   strings.TrimSpace(cmd.CreatedBy),
		CreatedAt:   now,
		ValidUntil:  now.Add(entities.QuoteValidity),
	}

	if _, err := u.leadRepo.AppendQuote(ctx, lead.ID, q); err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] generated quote_id=%s lead_id=%s unit_no=%s version=%d status=%s final_price=%.2f",
		q.ID, q.LeadID, q.UnitNo, q.Version, q.Status, sheet.FinalPrice)
	return q, nil
}

func (u *QuoteUseCase) ApproveQuote(ctx context.Context, leadID, quoteID string) (entities.Quote, error) {
	return u.transitionQuote(ctx, leadID, quoteID, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) RejectQuote(ctx context.Context, leadID, quoteID string) (entities.Quote, error) {
	return u.transitionQuote(ctx, leadID, quoteID, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) transitionQuote(ctx context.Context, leadID, quoteID string, next entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.GetQuote(ctx, leadID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if !q.Status.CanTransitionTo(next) {
		return entities.Quote{}, ErrIllegalQuoteTransition
	}

	updated, err := u.leadRepo.UpdateQuoteStatus(ctx, q.LeadID, q.ID, next)
	if err != nil {
		return entities.Quote{}, err
	}
	out, ok := updated.QuoteByID(q.ID)
	if !ok {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] transition quote_id=%s lead_id=%s %s->%s", q.ID, q.LeadID, q.Status, next)
	return out, nil
}

// ShareQuote composes the deterministic summary message (price, plan, 7-day
// validity) and hands it to the messenger. The returned string is the share
// link the caller can open.
func (u *QuoteUseCase) ShareQuote(ctx context.Context, leadID, quoteID string) (string, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return "", ErrInvalidLeadID
	}
	lead, err := u.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return "", err
	}
	if lead.ID == "" {
		return "", ErrLeadNotFound
	}
	q, ok := lead.QuoteByID(strings.TrimSpace(quoteID))
	if !ok {
		return "", ErrQuoteNotFound
	}

	msg := ComposeQuoteMessage(lead, q)
	link, err := u.messenger.ShareQuote(ctx, lead.Mobile, msg)
	if err != nil {
		return "", err
	}
	log.Printf("[quote][usecase] shared quote_id=%s lead_id=%s mobile=%s", q.ID, lead.ID, lead.Mobile)
	return link, nil
}

// ComposeQuoteMessage is the one templated outbound surface of the quote flow.
// Tests pin the content, not the delivery.
func ComposeQuoteMessage(lead entities.Lead, q entities.Quote) string {
	return fmt.Sprintf(
		"Hi %s, here is your quote for unit %s: final price INR %.2f under the %s plan. This offer is valid until %s.",
		lead.Name, q.UnitNo, q.CostSheet.FinalPrice, q.PaymentPlan, q.ValidUntil.Format("02 Jan 2006"),
	)
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, leadID, quoteID string) (entities.Quote, error) {
	leadID = strings.TrimSpace(leadID)
	quoteID = strings.TrimSpace(quoteID)
	if leadID == "" {
		return entities.Quote{}, ErrInvalidLeadID
	}
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	lead, err := u.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return entities.Quote{}, err
	}
	if lead.ID == "" {
		return entities.Quote{}, ErrLeadNotFound
	}
	q, ok := lead.QuoteByID(quoteID)
	if !ok {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListQuotesByLead(ctx context.Context, leadID string) ([]entities.Quote, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, ErrInvalidLeadID
	}
	lead, err := u.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead.ID == "" {
		return nil, ErrLeadNotFound
	}
	return lead.Quotes, nil
}
