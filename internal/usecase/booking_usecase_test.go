package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"realnest_crm/internal/domain/entities"
	"realnest_crm/internal/usecase/interfaces"
	mock_interfaces "realnest_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type bookingMocks struct {
	bookingRepo *mock_interfaces.MockIBookingRepository
	leadRepo    *mock_interfaces.MockILeadRepository
	unitRepo    *mock_interfaces.MockIUnitRepository
	gateway     *mock_interfaces.MockIPaymentGateway
}

func newBookingUseCaseForTest(t *testing.T) (*BookingUseCase, bookingMocks) {
	ctrl := gomock.NewController(t)
	m := bookingMocks{
		bookingRepo: mock_interfaces.NewMockIBookingRepository(ctrl),
		leadRepo:    mock_interfaces.NewMockILeadRepository(ctrl),
		unitRepo:    mock_interfaces.NewMockIUnitRepository(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	// Offline token collection by default; gateway-backed cases wire m.gateway
	// in explicitly.
	uc := NewBookingUseCase(m.bookingRepo, m.leadRepo, m.unitRepo, nil)
	uc.now = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }
	return uc, m
}

func approvedQuote() entities.Quote {
	return entities.Quote{
		ID:     "q-1",
		LeadID: "lead-1",
		UnitID: "unit-1",
		UnitNo: "A-1204",
		Status: entities.QuoteStatusApproved,
		CostSheet: entities.CostSheet{
			AgreementValue:     8143750,
			GSTAmount:          407187.5,
			StampDutyAmount:    570062.5,
			RegistrationAmount: 30000,
			GrossTotal:         9151000,
			FinalPrice:         9151000,
		},
	}
}

// blockedTestUnit is the unit as SubmitBooking must find it: still under a
// live hold owned by the booking lead.
func blockedTestUnit() entities.Unit {
	u := testUnit()
	u.Status = entities.UnitStatusBlocked
	u.BlockedBy = "Asha Rao"
	u.BlockedAt = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	return u
}

func primaryApplicant() entities.Applicant {
	return entities.Applicant{
		FullName:    "Asha Rao",
		Mobile:      "+919812345678",
		PAN:         "ABCDE1234F",
		DateOfBirth: "1988-04-12",
		IsPrimary:   true,
	}
}

func TestBookingUseCase_InitiateBooking(t *testing.T) {
	t.Run("quote must be approved", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		q := approvedQuote()
		q.Status = entities.QuoteStatusPendingApproval

		m.leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(testLead(q), nil)

		_, err := uc.InitiateBooking(context.Background(), "lead-1", "unit-1", "q-1")
		if !errors.Is(err, ErrQuoteNotApproved) {
			t.Fatalf("expected ErrQuoteNotApproved, got %v", err)
		}
	})

	t.Run("quote must match the unit", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(testLead(approvedQuote()), nil)

		_, err := uc.InitiateBooking(context.Background(), "lead-1", "unit-9", "q-1")
		if !errors.Is(err, ErrQuoteUnitMismatch) {
			t.Fatalf("expected ErrQuoteUnitMismatch, got %v", err)
		}
	})

	t.Run("losing the block race against a live hold surfaces the conflict", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		held := testUnit()
		held.Status = entities.UnitStatusBlocked
		held.BlockedBy = "Another Agent"
		held.BlockedAt = time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

		m.leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(testLead(approvedQuote()), nil)
		m.unitRepo.EXPECT().Block(gomock.Any(), "unit-1", "Asha Rao").Return(entities.Unit{}, interfaces.ErrUnitConflict)
		m.unitRepo.EXPECT().GetByID(gomock.Any(), "unit-1").Return(held, nil)

		_, err := uc.InitiateBooking(context.Background(), "lead-1", "unit-1", "q-1")
		if !errors.Is(err, interfaces.ErrUnitConflict) {
			t.Fatalf("expected ErrUnitConflict, got %v", err)
		}
	})

	t.Run("lapsed hold is released and the block retried", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		stale := testUnit()
		stale.Status = entities.UnitStatusBlocked
		stale.BlockedBy = "Another Agent"
		stale.BlockedAt = time.Date(2025, 6, 13, 10, 0, 0, 0, time.UTC)

		blocked := testUnit()
		blocked.Status = entities.UnitStatusBlocked
		blocked.BlockedBy = "Asha Rao"

		m.leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(testLead(approvedQuote()), nil)
		m.unitRepo.EXPECT().Block(gomock.Any(), "unit-1", "Asha Rao").Return(entities.Unit{}, interfaces.ErrUnitConflict)
		m.unitRepo.EXPECT().GetByID(gomock.Any(), "unit-1").Return(stale, nil)
		m.unitRepo.EXPECT().Release(gomock.Any(), "unit-1").Return(testUnit(), nil)
		m.unitRepo.EXPECT().Block(gomock.Any(), "unit-1", "Asha Rao").Return(blocked, nil)

		unit, err := uc.InitiateBooking(context.Background(), "lead-1", "unit-1", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if unit.BlockedBy != "Asha Rao" {
			t.Fatalf("expected the retried block to stick, got %+v", unit)
		}
	})

	t.Run("block success", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		blocked := testUnit()
		blocked.Status = entities.UnitStatusBlocked
		blocked.BlockedBy = "Asha Rao"

		m.leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(testLead(approvedQuote()), nil)
		m.unitRepo.EXPECT().Block(gomock.Any(), "unit-1", "Asha Rao").Return(blocked, nil)

		unit, err := uc.InitiateBooking(context.Background(), "lead-1", "unit-1", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if unit.Status != entities.UnitStatusBlocked {
			t.Fatalf("expected Blocked, got %s", unit.Status)
		}
	})
}

func TestBookingUseCase_SubmitBooking_Validation(t *testing.T) {
	// Validation failures must abort before any repository call; the mocks
	// have no expectations set.
	cases := []struct {
		name       string
		applicants []entities.Applicant
		wantErr    error
	}{
		{
			name:       "no primary applicant",
			applicants: []entities.Applicant{{FullName: "Co Applicant"}},
			wantErr:    ErrMissingPrimaryApplicant,
		},
		{
			name: "missing name",
			applicants: []entities.Applicant{func() entities.Applicant {
				a := primaryApplicant()
				a.FullName = "  "
				return a
			}()},
			wantErr: ErrMissingApplicantName,
		},
		{
			name: "missing mobile",
			applicants: []entities.Applicant{func() entities.Applicant {
				a := primaryApplicant()
				a.Mobile = ""
				return a
			}()},
			wantErr: ErrMissingApplicantMobile,
		},
		{
			name: "lowercase PAN rejected",
			applicants: []entities.Applicant{func() entities.Applicant {
				a := primaryApplicant()
				a.PAN = "abcde1234f"
				return a
			}()},
			wantErr: ErrInvalidPAN,
		},
		{
			name: "short PAN rejected",
			applicants: []entities.Applicant{func() entities.Applicant {
				a := primaryApplicant()
				a.PAN = "ABCD1234F"
				return a
			}()},
			wantErr: ErrInvalidPAN,
		},
		{
			name: "co-applicant PAN is checked too",
			applicants: []entities.Applicant{
				primaryApplicant(),
				{FullName: "Ravi Rao", PAN: "XYZ"},
			},
			wantErr: ErrInvalidPAN,
		},
		{
			name: "missing date of birth",
			applicants: []entities.Applicant{func() entities.Applicant {
				a := primaryApplicant()
				a.DateOfBirth = ""
				return a
			}()},
			wantErr: ErrMissingDateOfBirth,
		},
		{
			name: "underage primary",
			applicants: []entities.Applicant{func() entities.Applicant {
				a := primaryApplicant()
				a.DateOfBirth = "2010-01-01"
				return a
			}()},
			wantErr: ErrApplicantUnderage,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newBookingUseCaseForTest(t)
			_, err := uc.SubmitBooking(context.Background(), SubmitBookingCommand{
				LeadID: "lead-1", QuoteID: "q-1", Applicants: tc.applicants,
			})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	t.Run("age boundary: turning 18 this year passes", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		a := primaryApplicant()
		a.DateOfBirth = "2007-12-31" // year difference is exactly 18 in 2025

		m.leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(testLead(approvedQuote()), nil)
		m.bookingRepo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Booking{}, nil)
		m.unitRepo.EXPECT().GetByID(gomock.Any(), "unit-1").Return(blockedTestUnit(), nil)
		m.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) { return b, nil },
		)
		m.unitRepo.EXPECT().MarkSold(gomock.Any(), "unit-1").Return(testUnit(), nil)
		m.leadRepo.EXPECT().UpdateQuoteStatus(gomock.Any(), "lead-1", "q-1", entities.QuoteStatusBooked).Return(testLead(), nil)
		m.leadRepo.EXPECT().UpdateStage(gomock.Any(), "lead-1", entities.LeadStageBooked, entities.LeadSubStageTokenReceived).Return(testLead(), nil)

		if _, err := uc.SubmitBooking(context.Background(), SubmitBookingCommand{
			LeadID: "lead-1", QuoteID: "q-1", Applicants: []entities.Applicant{a},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative token amount", func(t *testing.T) {
		uc, _ := newBookingUseCaseForTest(t)
		_, err := uc.SubmitBooking(context.Background(), SubmitBookingCommand{
			LeadID: "lead-1", QuoteID: "q-1",
			Applicants:  []entities.Applicant{primaryApplicant()},
			TokenAmount: -1,
		})
		if !errors.Is(err, ErrInvalidTokenAmount) {
			t.Fatalf("expected ErrInvalidTokenAmount, got %v", err)
		}
	})
}

func TestBookingUseCase_SubmitBooking(t *testing.T) {
	submit := func(uc *BookingUseCase) (entities.Booking, error) {
		return uc.SubmitBooking(context.Background(), SubmitBookingCommand{
			LeadID: "lead-1", QuoteID: "q-1",
			Applicants:  []entities.Applicant{primaryApplicant()},
			PaymentMode: "cheque",
		})
	}

	expectHappyPath := func(m bookingMocks) {
		m.leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(testLead(approvedQuote()), nil)
		m.bookingRepo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Booking{}, nil)
		m.unitRepo.EXPECT().GetByID(gomock.Any(), "unit-1").Return(blockedTestUnit(), nil)
		m.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) { return b, nil },
		)
		m.unitRepo.EXPECT().MarkSold(gomock.Any(), "unit-1").Return(testUnit(), nil)
		m.leadRepo.EXPECT().UpdateQuoteStatus(gomock.Any(), "lead-1", "q-1", entities.QuoteStatusBooked).Return(testLead(), nil)
		m.leadRepo.EXPECT().UpdateStage(gomock.Any(), "lead-1", entities.LeadStageBooked, entities.LeadSubStageTokenReceived).Return(testLead(), nil)
	}

	t.Run("one booking per quote", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(testLead(approvedQuote()), nil)
		m.bookingRepo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Booking{ID: "existing"}, nil)

		_, err := submit(uc)
		if !errors.Is(err, ErrQuoteAlreadyBooked) {
			t.Fatalf("expected ErrQuoteAlreadyBooked, got %v", err)
		}
	})

	t.Run("losing the sold race writes no booking row", func(t *testing.T) {
		// Create has no expectation: the sale CAS fails first, so the quote
		// must stay bookable for a retry.
		uc, m := newBookingUseCaseForTest(t)
		m.leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(testLead(approvedQuote()), nil)
		m.bookingRepo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Booking{}, nil)
		m.unitRepo.EXPECT().GetByID(gomock.Any(), "unit-1").Return(blockedTestUnit(), nil)
		m.unitRepo.EXPECT().MarkSold(gomock.Any(), "unit-1").Return(entities.Unit{}, interfaces.ErrUnitConflict)

		_, err := submit(uc)
		if !errors.Is(err, interfaces.ErrUnitConflict) {
			t.Fatalf("expected ErrUnitConflict, got %v", err)
		}
	})

	t.Run("hold owned by another lead rejects the submit", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		held := blockedTestUnit()
		held.BlockedBy = "Another Agent"

		m.leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(testLead(approvedQuote()), nil)
		m.bookingRepo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Booking{}, nil)
		m.unitRepo.EXPECT().GetByID(gomock.Any(), "unit-1").Return(held, nil)

		_, err := submit(uc)
		if !errors.Is(err, interfaces.ErrUnitConflict) {
			t.Fatalf("expected ErrUnitConflict, got %v", err)
		}
	})

	t.Run("lapsed hold rejects the submit", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		stale := blockedTestUnit()
		stale.BlockedAt = time.Date(2025, 6, 13, 10, 0, 0, 0, time.UTC)

		m.leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(testLead(approvedQuote()), nil)
		m.bookingRepo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Booking{}, nil)
		m.unitRepo.EXPECT().GetByID(gomock.Any(), "unit-1").Return(stale, nil)

		_, err := submit(uc)
		if !errors.Is(err, interfaces.ErrUnitConflict) {
			t.Fatalf("expected ErrUnitConflict, got %v", err)
		}
	})

	t.Run("financials copied verbatim from the quote", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		expectHappyPath(m)

		b, err := submit(uc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sheet := approvedQuote().CostSheet
		if b.AgreementValue != sheet.AgreementValue {
			t.Fatalf("agreement value: expected %v, got %v", sheet.AgreementValue, b.AgreementValue)
		}
		if b.Taxes != sheet.GSTAmount {
			t.Fatalf("taxes: expected %v, got %v", sheet.GSTAmount, b.Taxes)
		}
		if b.OtherCharges != sheet.StampDutyAmount+sheet.RegistrationAmount {
			t.Fatalf("other charges: expected %v, got %v", sheet.StampDutyAmount+sheet.RegistrationAmount, b.OtherCharges)
		}
		if b.TotalCost != sheet.FinalPrice {
			t.Fatalf("total cost: expected %v, got %v", sheet.FinalPrice, b.TotalCost)
		}
		if b.CustomerName != "Asha Rao" || b.UnitNo != "A-1204" {
			t.Fatalf("unexpected snapshot: %+v", b)
		}
	})

	t.Run("default token is ten percent", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		expectHappyPath(m)

		b, err := submit(uc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.AmountPaid != 915100 {
			t.Fatalf("expected default token 915100, got %v", b.AmountPaid)
		}
		if b.TokenPayment.ID == "" {
			t.Fatalf("offline token still gets a transaction id")
		}
		if b.TokenPayment.Mode != "cheque" {
			t.Fatalf("expected cheque mode, got %q", b.TokenPayment.Mode)
		}
	})

	t.Run("explicit token amount wins", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		expectHappyPath(m)

		b, err := uc.SubmitBooking(context.Background(), SubmitBookingCommand{
			LeadID: "lead-1", QuoteID: "q-1",
			Applicants:  []entities.Applicant{primaryApplicant()},
			TokenAmount: 500000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.AmountPaid != 500000 {
			t.Fatalf("expected 500000, got %v", b.AmountPaid)
		}
	})

	t.Run("milestone schedule reconciles to the total", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		expectHappyPath(m)

		b, err := submit(uc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(b.Milestones) != 5 {
			t.Fatalf("expected 5 milestones, got %d", len(b.Milestones))
		}

		sum := 0.0
		for _, ms := range b.Milestones {
			sum += ms.Amount
		}
		if diff := math.Abs(sum - b.TotalCost); diff > 0.01 {
			t.Fatalf("milestones sum to %v, total is %v", sum, b.TotalCost)
		}

		if b.Milestones[0].Name != "Token" || b.Milestones[0].Status != entities.MilestoneStatusPaid {
			t.Fatalf("token head must be Paid: %+v", b.Milestones[0])
		}
		if b.Milestones[0].TransactionID != b.TokenPayment.ID {
			t.Fatalf("token milestone should reference the token transaction")
		}
		for _, ms := range b.Milestones[1:] {
			if ms.Status != entities.MilestoneStatusUpcoming {
				t.Fatalf("later milestones start Upcoming: %+v", ms)
			}
		}
		if last := b.Milestones[4]; last.Name != "Possession" {
			t.Fatalf("expected Possession last, got %q", last.Name)
		}
	})

	t.Run("gateway-backed token collection", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		uc.gateway = m.gateway
		expectHappyPath(m)

		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-123", "approved", json.RawMessage(`{}`), nil)

		b, err := submit(uc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.TokenPayment.ID != "mp-123" {
			t.Fatalf("expected provider payment id, got %q", b.TokenPayment.ID)
		}
	})

	t.Run("gateway failure aborts the booking", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		uc.gateway = m.gateway

		m.leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(testLead(approvedQuote()), nil)
		m.bookingRepo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Booking{}, nil)
		m.unitRepo.EXPECT().GetByID(gomock.Any(), "unit-1").Return(blockedTestUnit(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("declined"))

		_, err := submit(uc)
		if err == nil || err.Error() != "declined" {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})
}

func TestBuildMilestoneSchedule(t *testing.T) {
	bookedAt := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("shape and due dates", func(t *testing.T) {
		ms := BuildMilestoneSchedule(9151000, bookedAt, "txn-1")
		if len(ms) != 5 {
			t.Fatalf("expected 5 stages, got %d", len(ms))
		}

		wantNames := []string{"Token", "Agreement", "Plinth Completion", "Slab Completion", "Possession"}
		wantDue := []time.Duration{0, 30 * 24 * time.Hour, 90 * 24 * time.Hour, 180 * 24 * time.Hour, 365 * 24 * time.Hour}
		for i, m := range ms {
			if m.Name != wantNames[i] {
				t.Fatalf("stage %d: expected %q, got %q", i, wantNames[i], m.Name)
			}
			if got := m.DueDate.Sub(bookedAt); got != wantDue[i] {
				t.Fatalf("stage %d: expected due offset %v, got %v", i, wantDue[i], got)
			}
		}
	})

	t.Run("last stage absorbs the rounding remainder", func(t *testing.T) {
		// A total that does not split cleanly into the percentages.
		total := 1000000.01
		ms := BuildMilestoneSchedule(total, bookedAt, "txn-1")

		sum := 0.0
		for _, m := range ms {
			sum += m.Amount
		}
		if diff := math.Abs(sum - total); diff > 0.005 {
			t.Fatalf("expected amounts to sum to %v, got %v", total, sum)
		}
	})
}

func TestBookingUseCase_Transitions(t *testing.T) {
	active := entities.Booking{ID: "b-1", Status: entities.BookingStatusActive}

	t.Run("cancel active booking", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		cancelled := active
		cancelled.Status = entities.BookingStatusCancelled

		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(active, nil)
		m.bookingRepo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BookingStatusCancelled).Return(cancelled, nil)

		b, err := uc.CancelBooking(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.BookingStatusCancelled {
			t.Fatalf("expected Cancelled, got %s", b.Status)
		}
	})

	t.Run("cancelled booking cannot hand over", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		cancelled := active
		cancelled.Status = entities.BookingStatusCancelled

		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(cancelled, nil)

		_, err := uc.MarkHandover(context.Background(), "b-1")
		if !errors.Is(err, ErrIllegalBookingTransition) {
			t.Fatalf("expected ErrIllegalBookingTransition, got %v", err)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{}, nil)

		_, err := uc.CancelBooking(context.Background(), "b-1")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestBookingUseCase_PayMilestone(t *testing.T) {
	booked := entities.Booking{
		ID:         "b-1",
		Status:     entities.BookingStatusActive,
		AmountPaid: 915100,
		Milestones: []entities.PaymentMilestone{
			{Name: "Token", Amount: 915100, Status: entities.MilestoneStatusPaid},
			{Name: "Agreement", Amount: 1830200, Status: entities.MilestoneStatusUpcoming},
		},
	}

	t.Run("pay upcoming milestone", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(booked, nil)
		m.bookingRepo.EXPECT().UpdateMilestone(gomock.Any(), "b-1", 1, gomock.Any(), 915100.0+1830200.0).DoAndReturn(
			func(_ context.Context, _ string, _ int, ms entities.PaymentMilestone, amountPaid float64) (entities.Booking, error) {
				if ms.Status != entities.MilestoneStatusPaid {
					t.Fatalf("expected Paid, got %s", ms.Status)
				}
				if ms.TransactionID != "txn-9" {
					t.Fatalf("expected txn-9, got %q", ms.TransactionID)
				}
				if ms.Amount != 1830200 {
					t.Fatalf("amount must not be rewritten, got %v", ms.Amount)
				}
				out := booked
				out.AmountPaid = amountPaid
				return out, nil
			},
		)

		b, err := uc.PayMilestone(context.Background(), "b-1", "Agreement", "txn-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.AmountPaid != 2745300 {
			t.Fatalf("expected running total 2745300, got %v", b.AmountPaid)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(booked, nil)

		_, err := uc.PayMilestone(context.Background(), "b-1", "Token", "txn-9")
		if !errors.Is(err, ErrMilestoneAlreadyPaid) {
			t.Fatalf("expected ErrMilestoneAlreadyPaid, got %v", err)
		}
	})

	t.Run("unknown milestone", func(t *testing.T) {
		uc, m := newBookingUseCaseForTest(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(booked, nil)

		_, err := uc.PayMilestone(context.Background(), "b-1", "Roof", "txn-9")
		if !errors.Is(err, ErrMilestoneNotFound) {
			t.Fatalf("expected ErrMilestoneNotFound, got %v", err)
		}
	})
}
