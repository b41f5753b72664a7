package request

import "testing"

func TestSubmitBookingRequest_ToApplicants(t *testing.T) {
	r := SubmitBookingRequest{
		LeadID:  " lead-1 ",
		QuoteID: "q-1",
		Applicants: []ApplicantRequest{
			{FullName: "  Asha Rao ", Mobile: " +919812345678 ", PAN: " ABCDE1234F ", DateOfBirth: " 1988-04-12 ", IsPrimary: true},
			{FullName: "Ravi Rao", PAN: "abcde1234f"},
		},
	}

	if r.ResolveLeadID() != "lead-1" {
		t.Fatalf("expected trimmed lead id, got %q", r.ResolveLeadID())
	}

	applicants := r.ToApplicants()
	if len(applicants) != 2 {
		t.Fatalf("expected 2 applicants, got %d", len(applicants))
	}

	primary := applicants[0]
	if primary.FullName != "Asha Rao" || primary.Mobile != "+919812345678" || primary.DateOfBirth != "1988-04-12" {
		t.Fatalf("expected trimmed fields, got %+v", primary)
	}
	if primary.PAN != "ABCDE1234F" {
		t.Fatalf("expected trimmed PAN, got %q", primary.PAN)
	}
	if !primary.IsPrimary {
		t.Fatalf("primary flag must carry through")
	}

	// Case is preserved: a lowercase PAN reaches validation as entered.
	if applicants[1].PAN != "abcde1234f" {
		t.Fatalf("PAN must not be upcased, got %q", applicants[1].PAN)
	}
}

func TestPayMilestoneRequest_ResolveMilestone(t *testing.T) {
	r := PayMilestoneRequest{Milestone: "  Agreement  "}
	if r.ResolveMilestone() != "Agreement" {
		t.Fatalf("expected trimmed milestone, got %q", r.ResolveMilestone())
	}
}
