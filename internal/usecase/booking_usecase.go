package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"realnest_crm/internal/domain/entities"
	"realnest_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound          = errors.New("booking not found")
	ErrInvalidBookingID         = errors.New("invalid booking id")
	ErrQuoteNotApproved         = errors.New("quote not approved")
	ErrQuoteUnitMismatch        = errors.New("quote does not belong to this unit")
	ErrQuoteAlreadyBooked       = errors.New("quote already has a booking")
	ErrMissingPrimaryApplicant  = errors.New("primary applicant is required")
	ErrMissingApplicantName     = errors.New("primary applicant name is required")
	ErrMissingApplicantMobile   = errors.New("primary applicant mobile is required")
	ErrInvalidPAN               = errors.New("invalid PAN format")
	ErrMissingDateOfBirth       = errors.New("primary applicant date of birth is required")
	ErrApplicantUnderage        = errors.New("primary applicant must be at least 18")
	ErrInvalidTokenAmount       = errors.New("invalid token amount")
	ErrIllegalBookingTransition = errors.New("illegal booking status transition")
	ErrMilestoneNotFound        = errors.New("milestone not found")
	ErrMilestoneAlreadyPaid     = errors.New("milestone already paid")
)

// panPattern: 5 uppercase letters, 4 digits, 1 uppercase letter.
var panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

const minApplicantAge = 18

// tokenFraction is the default token suggestion: 10% of the final price.
const tokenFraction = 0.10

// milestonePlan is the fixed installment schedule stamped onto every booking.
// The token head is marked Paid immediately; the tail is Upcoming with rolling
// due dates. The last installment absorbs the rounding remainder so the
// schedule always reconciles to the booking's total cost.
var milestonePlan = []struct {
	name    string
	percent float64
	dueIn   time.Duration
}{
	{name: "Token", percent: 0.10, dueIn: 0},
	{name: "Agreement", percent: 0.20, dueIn: 30 * 24 * time.Hour},
	{name: "Plinth Completion", percent: 0.15, dueIn: 90 * 24 * time.Hour},
	{name: "Slab Completion", percent: 0.25, dueIn: 180 * 24 * time.Hour},
	{name: "Possession", percent: 0.30, dueIn: 365 * 24 * time.Hour},
}

// SubmitBookingCommand is everything collected by the booking wizard before
// finalization.

type SubmitBookingCommand struct {
	LeadID         string
	QuoteID        string
	Applicants     []entities.Applicant
	TokenAmount    float64 // 0 means "use the default 10% suggestion"
	PaymentMode    string
	PaymentPayload json.RawMessage // provider payload forwarded to the gateway
}

// IBookingUseCase materializes an approved quote into a booking.
//
// InitiateBooking reserves the unit (Available -> Blocked) before the booking
// form is filled; SubmitBooking validates applicants, collects the token
// through the payment gateway and commits the sale.

type IBookingUseCase interface {
	InitiateBooking(ctx context.Context, leadID, unitID, quoteID string) (entities.Unit, error)
	SubmitBooking(ctx context.Context, cmd SubmitBookingCommand) (entities.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (entities.Booking, error)
	MarkHandover(ctx context.Context, bookingID string) (entities.Booking, error)
	PayMilestone(ctx context.Context, bookingID, milestoneName, transactionID string) (entities.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (entities.Booking, error)
	ListBookingsByLead(ctx context.Context, leadID string) ([]entities.Booking, error)
}

type BookingUseCase struct {
	bookingRepo interfaces.IBookingRepository
	leadRepo    interfaces.ILeadRepository
	unitRepo    interfaces.IUnitRepository
	gateway     interfaces.IPaymentGateway
	now         func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	bookingRepo interfaces.IBookingRepository,
	leadRepo interfaces.ILeadRepository,
	unitRepo interfaces.IUnitRepository,
	gateway interfaces.IPaymentGateway,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo: bookingRepo,
		leadRepo:    leadRepo,
		unitRepo:    unitRepo,
		gateway:     gateway,
		now:         time.Now,
	}
}

// InitiateBooking reserves the unit for the lead while the booking form is
// being filled. The block is a conditional write: if another agent won the
// unit first, the repository surfaces the conflict and no state moves.
func (u *BookingUseCase) InitiateBooking(ctx context.Context, leadID, unitID, quoteID string) (entities.Unit, error) {
	leadID = strings.TrimSpace(leadID)
	unitID = strings.TrimSpace(unitID)
	quoteID = strings.TrimSpace(quoteID)
	if leadID == "" {
		return entities.Unit{}, ErrInvalidLeadID
	}
	if unitID == "" {
		return entities.Unit{}, ErrInvalidUnitID
	}
	if quoteID == "" {
		return entities.Unit{}, ErrInvalidQuoteID
	}

	lead, err := u.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return entities.Unit{}, err
	}
	if lead.ID == "" {
		return entities.Unit{}, ErrLeadNotFound
	}
	quote, ok := lead.QuoteByID(quoteID)
	if !ok {
		return entities.Unit{}, ErrQuoteNotFound
	}
	if quote.Status != entities.QuoteStatusApproved {
		return entities.Unit{}, ErrQuoteNotApproved
	}
	if quote.UnitID != unitID {
		return entities.Unit{}, ErrQuoteUnitMismatch
	}

	blocked, err := u.unitRepo.Block(ctx, unitID, lead.Name)
	if errors.Is(err, interfaces.ErrUnitConflict) {
		// The CAS loses against a unit still marked Blocked in storage even
		// when its 24h hold has lapsed. Apply the lazy-expiry strategy here
		// too: release the stale hold and retry the block once.
		unit, getErr := u.unitRepo.GetByID(ctx, unitID)
		if getErr != nil {
			return entities.Unit{}, getErr
		}
		if unit.ID == "" {
			return entities.Unit{}, ErrUnitNotFound
		}
		if !unit.BlockExpired(u.now()) {
			return entities.Unit{}, err
		}
		if _, relErr := u.unitRepo.Release(ctx, unit.ID); relErr != nil {
			return entities.Unit{}, relErr
		}
		log.Printf("[booking][usecase] expired hold released unit_id=%s", unit.ID)
		blocked, err = u.unitRepo.Block(ctx, unitID, lead.Name)
	}
	if err != nil {
		return entities.Unit{}, err
	}
	log.Printf("[booking][usecase] unit blocked unit_id=%s unit_no=%s blocked_by=%s quote_id=%s",
		blocked.ID, blocked.UnitNo, blocked.BlockedBy, quote.ID)
	return blocked, nil
}

// SubmitBooking finalizes the sale. Validation is fail-fast: any failure
// aborts before a single write. The unit's Blocked -> Sold CAS runs before the
// booking row is persisted, so losing the race never strands an orphan booking
// against the quote.
//
// Financials are copied verbatim from the quote's cost sheet; they are never
// recalculated from a live rate card.
func (u *BookingUseCase) SubmitBooking(ctx context.Context, cmd SubmitBookingCommand) (entities.Booking, error) {
	cmd.LeadID = strings.TrimSpace(cmd.LeadID)
	cmd.QuoteID = strings.TrimSpace(cmd.QuoteID)
	if cmd.LeadID == "" {
		return entities.Booking{}, ErrInvalidLeadID
	}
	if cmd.QuoteID == "" {
		return entities.Booking{}, ErrInvalidQuoteID
	}

	primary, err := validateApplicants(cmd.Applicants, u.now())
	if err != nil {
		return entities.Booking{}, err
	}
	if cmd.TokenAmount < 0 {
		return entities.Booking{}, ErrInvalidTokenAmount
	}

	lead, err := u.leadRepo.GetByID(ctx, cmd.LeadID)
	if err != nil {
		return entities.Booking{}, err
	}
	if lead.ID == "" {
		return entities.Booking{}, ErrLeadNotFound
	}
	quote, ok := lead.QuoteByID(cmd.QuoteID)
	if !ok {
		return entities.Booking{}, ErrQuoteNotFound
	}
	if quote.Status != entities.QuoteStatusApproved {
		return entities.Booking{}, ErrQuoteNotApproved
	}

	// One booking per quote.
	if existing, err := u.bookingRepo.GetByQuoteID(ctx, quote.ID); err != nil {
		return entities.Booking{}, err
	} else if existing.ID != "" {
		return entities.Booking{}, ErrQuoteAlreadyBooked
	}

	unit, err := u.unitRepo.GetByID(ctx, quote.UnitID)
	if err != nil {
		return entities.Booking{}, err
	}
	if unit.ID == "" {
		return entities.Booking{}, ErrUnitNotFound
	}
	// The hold must still be live and owned by this lead. The terminal CAS
	// below revalidates the status, but failing here avoids charging a token
	// for a unit that is already gone.
	if unit.Status != entities.UnitStatusBlocked || unit.BlockExpired(u.now()) || unit.BlockedBy != lead.Name {
		return entities.Booking{}, interfaces.ErrUnitConflict
	}

	sheet := quote.CostSheet
	tokenAmount := cmd.TokenAmount
	if tokenAmount == 0 {
		tokenAmount = sheet.FinalPrice * tokenFraction
	}

	txn, err := u.collectToken(ctx, quote.ID, tokenAmount, cmd.PaymentMode, cmd.PaymentPayload)
	if err != nil {
		return entities.Booking{}, err
	}

	now := u.now().UTC()
	b := entities.Booking{
		ID:             uuid.NewString(),
		QuoteID:        quote.ID,
		LeadID:         lead.ID,
		CustomerName:   primary.FullName,
		CustomerMobile: primary.Mobile,
		UnitID:         unit.ID,
		UnitNo:         unit.UnitNo,
		Tower:          unit.Tower,
		Floor:          unit.Floor,
		CarpetArea:     unit.CarpetArea,
		AgreementValue: sheet.AgreementValue,
		Taxes:          sheet.GSTAmount,
		OtherCharges:   sheet.StampDutyAmount + sheet.RegistrationAmount,
		TotalCost:      sheet.FinalPrice,
		AmountPaid:     tokenAmount,
		BookingDate:    now,
		Status:         entities.BookingStatusActive,
		Applicants:     cmd.Applicants,
		TokenPayment:   txn,
		Milestones:     BuildMilestoneSchedule(sheet.FinalPrice, now, txn.ID),
	}

	// The Blocked -> Sold CAS is the commit point and runs before the booking
	// row is written: if it loses (hold lapsed and released, another agent got
	// there first) no booking exists and the quote stays bookable.
	if _, err := u.unitRepo.MarkSold(ctx, unit.ID); err != nil {
		log.Printf("[booking][usecase] mark-sold failed quote_id=%s unit_id=%s err=%v", quote.ID, unit.ID, err)
		return entities.Booking{}, err
	}

	created, err := u.bookingRepo.Create(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}

	// Remaining side effects: the quote is terminal, the lead moves to
	// BOOKED / Token Received.
	if _, err := u.leadRepo.UpdateQuoteStatus(ctx, lead.ID, quote.ID, entities.QuoteStatusBooked); err != nil {
		log.Printf("[booking][usecase] quote flip failed booking_id=%s quote_id=%s err=%v", created.ID, quote.ID, err)
		return entities.Booking{}, err
	}
	if _, err := u.leadRepo.UpdateStage(ctx, lead.ID, entities.LeadStageBooked, entities.LeadSubStageTokenReceived); err != nil {
		log.Printf("[booking][usecase] lead stage update failed booking_id=%s lead_id=%s err=%v", created.ID, lead.ID, err)
		return entities.Booking{}, err
	}

	log.Printf("[booking][usecase] submit success booking_id=%s quote_id=%s unit_no=%s total_cost=%.2f token=%.2f",
		created.ID, quote.ID, unit.UnitNo, created.TotalCost, tokenAmount)
	return created, nil
}

func (u *BookingUseCase) collectToken(ctx context.Context, quoteID string, amount float64, mode string, payload json.RawMessage) (entities.PaymentTransaction, error) {
	now := u.now().UTC()
	txn := entities.PaymentTransaction{
		Mode:   strings.TrimSpace(mode),
		Amount: amount,
		Date:   now,
	}

	if u.gateway == nil {
		// No gateway configured (offline modes: cheque, bank transfer). The
		// transaction is still recorded against the booking.
		txn.ID = uuid.NewString()
		return txn, nil
	}

	reqMap := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		if err := json.Unmarshal(payload, &reqMap); err != nil {
			reqMap = map[string]any{}
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quoteID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Booking token for quote %s", quoteID)
	}
	// The source of truth for the amount is the cost sheet, not the payload.
	reqMap["transaction_amount"] = amount

	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[booking][usecase] token payment failed quote_id=%s err=%v", quoteID, err)
		return entities.PaymentTransaction{}, err
	}
	log.Printf("[booking][usecase] token payment collected quote_id=%s provider_payment_id=%s provider_status=%s",
		quoteID, providerID, providerStatus)

	txn.ID = providerID
	txn.Reference = providerStatus
	return txn, nil
}

// validateApplicants enforces the booking-wizard rules: the primary applicant
// needs a name, a mobile and a date of birth; PAN, when supplied, must match
// the 5-letter/4-digit/1-letter format; computed age (year difference, not
// full date-aware) must be at least 18.
func validateApplicants(applicants []entities.Applicant, now time.Time) (entities.Applicant, error) {
	var primary *entities.Applicant
	for i := range applicants {
		if applicants[i].IsPrimary {
			primary = &applicants[i]
			break
		}
	}
	if primary == nil {
		return entities.Applicant{}, ErrMissingPrimaryApplicant
	}
	if strings.TrimSpace(primary.FullName) == "" {
		return entities.Applicant{}, ErrMissingApplicantName
	}
	if strings.TrimSpace(primary.Mobile) == "" {
		return entities.Applicant{}, ErrMissingApplicantMobile
	}

	for _, a := range applicants {
		if a.PAN != "" && !panPattern.MatchString(a.PAN) {
			return entities.Applicant{}, ErrInvalidPAN
		}
	}

	dob := strings.TrimSpace(primary.DateOfBirth)
	if dob == "" {
		return entities.Applicant{}, ErrMissingDateOfBirth
	}
	birthYear, err := parseBirthYear(dob)
	if err != nil {
		return entities.Applicant{}, ErrMissingDateOfBirth
	}
	if now.Year()-birthYear < minApplicantAge {
		return entities.Applicant{}, ErrApplicantUnderage
	}
	return *primary, nil
}

func parseBirthYear(dob string) (int, error) {
	if t, err := time.Parse("2006-01-02", dob); err == nil {
		return t.Year(), nil
	}
	// Tolerate a bare year.
	if y, err := strconv.Atoi(dob); err == nil && y > 1900 {
		return y, nil
	}
	return 0, fmt.Errorf("unparseable date of birth %q", dob)
}

// BuildMilestoneSchedule stamps the fixed installment plan onto a booking.
// The token head is Paid as of bookedAt; later stages are Upcoming. The last
// installment absorbs the rounding remainder so the amounts always sum to
// totalCost.
func BuildMilestoneSchedule(totalCost float64, bookedAt time.Time, tokenTxnID string) []entities.PaymentMilestone {
	out := make([]entities.PaymentMilestone, 0, len(milestonePlan))
	allocated := 0.0
	for i, stage := range milestonePlan {
		amount := roundMoney(totalCost * stage.percent)
		if i == len(milestonePlan)-1 {
			amount = roundMoney(totalCost - allocated)
		}
		allocated += amount

		m := entities.PaymentMilestone{
			Name:    stage.name,
			Percent: stage.percent,
			Amount:  amount,
			DueDate: bookedAt.Add(stage.dueIn),
			Status:  entities.MilestoneStatusUpcoming,
		}
		if i == 0 {
			m.Status = entities.MilestoneStatusPaid
			m.PaidDate = bookedAt
			m.TransactionID = tokenTxnID
		}
		out = append(out, m)
	}
	return out
}

func roundMoney(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

func (u *BookingUseCase) CancelBooking(ctx context.Context, bookingID string) (entities.Booking, error) {
	return u.transitionBooking(ctx, bookingID, entities.BookingStatusCancelled)
}

func (u *BookingUseCase) MarkHandover(ctx context.Context, bookingID string) (entities.Booking, error) {
	return u.transitionBooking(ctx, bookingID, entities.BookingStatusHandover)
}

func (u *BookingUseCase) transitionBooking(ctx context.Context, bookingID string, next entities.BookingStatus) (entities.Booking, error) {
	b, err := u.GetBooking(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if !b.Status.CanTransitionTo(next) {
		return entities.Booking{}, ErrIllegalBookingTransition
	}
	updated, err := u.bookingRepo.UpdateStatus(ctx, b.ID, next)
	if err != nil {
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] transition booking_id=%s %s->%s", b.ID, b.Status, next)
	return updated, nil
}

// PayMilestone marks one scheduled installment as Paid and rolls the amount
// into the booking's running total. The schedule is never re-percentaged.
func (u *BookingUseCase) PayMilestone(ctx context.Context, bookingID, milestoneName, transactionID string) (entities.Booking, error) {
	b, err := u.GetBooking(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	m, idx := b.MilestoneByName(strings.TrimSpace(milestoneName))
	if idx < 0 {
		return entities.Booking{}, ErrMilestoneNotFound
	}
	if m.Status == entities.MilestoneStatusPaid {
		return entities.Booking{}, ErrMilestoneAlreadyPaid
	}

	now := u.now().UTC()
	m.Status = entities.MilestoneStatusPaid
	m.PaidDate = now
	m.TransactionID = strings.TrimSpace(transactionID)

	updated, err := u.bookingRepo.UpdateMilestone(ctx, b.ID, idx, m, b.AmountPaid+m.Amount)
	if err != nil {
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] milestone paid booking_id=%s milestone=%s amount=%.2f", b.ID, m.Name, m.Amount)
	return updated, nil
}

func (u *BookingUseCase) GetBooking(ctx context.Context, bookingID string) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) ListBookingsByLead(ctx context.Context, leadID string) ([]entities.Booking, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, ErrInvalidLeadID
	}
	return u.bookingRepo.ListByLeadID(ctx, leadID)
}
