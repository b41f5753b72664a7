package pricing

import (
	"math"
	"reflect"
	"testing"

	"realnest_crm/internal/domain/entities"
)

func baseConfig() entities.PricingConfig {
	return entities.PricingConfig{
		ProjectID:    "proj-1",
		BaseRate:     8500,
		FloorRise:    50,
		Amenities:    500000,
		ParkingRate:  500000,
		StampDuty:    0.07,
		Registration: 30000,
		MaxDiscount:  200,
	}
}

func metroResidential() entities.Project {
	return entities.Project{
		ID:                 "proj-1",
		Name:               "Skyline Heights",
		ConstructionStatus: entities.ConstructionStatusUnderConstruction,
		IsMetro:            true,
		Type:               entities.ProjectTypeResidential,
	}
}

func TestComputeCostSheet_Breakdown(t *testing.T) {
	unit := entities.Unit{
		ID:         "unit-1",
		ProjectID:  "proj-1",
		UnitNo:     "A-1204",
		Floor:      12,
		CarpetArea: 750,
	}

	sheet := ComputeCostSheet(unit, baseConfig(), 0, 1, metroResidential(), "CLP")

	if sheet.BaseCost != 6375000 {
		t.Fatalf("base cost: expected 6375000, got %v", sheet.BaseCost)
	}
	if sheet.FloorRiseCost != 450000 {
		t.Fatalf("floor rise: expected 450000, got %v", sheet.FloorRiseCost)
	}
	if sheet.PLC != 318750 {
		t.Fatalf("plc: expected 318750, got %v", sheet.PLC)
	}
	if sheet.ParkingCost != 500000 {
		t.Fatalf("parking: expected 500000, got %v", sheet.ParkingCost)
	}
	if sheet.Amenities != 500000 {
		t.Fatalf("amenities: expected 500000, got %v", sheet.Amenities)
	}
	if sheet.AgreementValue != 8143750 {
		t.Fatalf("agreement value: expected 8143750, got %v", sheet.AgreementValue)
	}
	if sheet.GSTRate != 0.05 {
		t.Fatalf("gst rate: expected 0.05, got %v", sheet.GSTRate)
	}
	if sheet.GSTAmount != 407187.5 {
		t.Fatalf("gst amount: expected 407187.5, got %v", sheet.GSTAmount)
	}
	if sheet.StampDutyAmount != 570062.5 {
		t.Fatalf("stamp duty: expected 570062.5, got %v", sheet.StampDutyAmount)
	}
	if sheet.RegistrationAmount != 30000 {
		t.Fatalf("registration: expected 30000, got %v", sheet.RegistrationAmount)
	}
	if sheet.GrossTotal != 9151000 {
		t.Fatalf("gross total: expected 9151000, got %v", sheet.GrossTotal)
	}
	if sheet.FinalPrice != 9151000 {
		t.Fatalf("final price: expected 9151000, got %v", sheet.FinalPrice)
	}
	if sheet.PaymentPlan != "CLP" {
		t.Fatalf("payment plan: expected CLP, got %q", sheet.PaymentPlan)
	}
}

func TestComputeCostSheet_Deterministic(t *testing.T) {
	unit := entities.Unit{ID: "unit-1", UnitNo: "B-701", Floor: 7, CarpetArea: 980}

	a := ComputeCostSheet(unit, baseConfig(), 150, 2, metroResidential(), "Flexi")
	b := ComputeCostSheet(unit, baseConfig(), 150, 2, metroResidential(), "Flexi")

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different sheets:\n%+v\n%+v", a, b)
	}
}

func TestComputeCostSheet_Reconciliation(t *testing.T) {
	units := []entities.Unit{
		{UnitNo: "A-101", Floor: 1, CarpetArea: 500},
		{UnitNo: "C-1502", Floor: 15, CarpetArea: 1200},
		{UnitNo: "D-304", Floor: 3, CarpetArea: 860},
	}

	for _, u := range units {
		sheet := ComputeCostSheet(u, baseConfig(), 75, 1, metroResidential(), "CLP")

		want := sheet.AgreementValue + sheet.GSTAmount + sheet.StampDutyAmount + sheet.RegistrationAmount - sheet.DiscountAmount
		if diff := math.Abs(sheet.FinalPrice - want); diff > 1e-6 {
			t.Fatalf("unit %s: final price %v does not reconcile with components %v", u.UnitNo, sheet.FinalPrice, want)
		}
		if sheet.AgreementValue != sheet.BaseCost+sheet.FloorRiseCost+sheet.PLC+sheet.ParkingCost+sheet.Amenities {
			t.Fatalf("unit %s: agreement value does not reconcile", u.UnitNo)
		}
	}
}

func TestComputeCostSheet_PreferredLocationCharge(t *testing.T) {
	cases := []struct {
		unitNo  string
		wantPLC bool
	}{
		{"A-101", true},
		{"B-1204", true},
		{"C-702", false},
		{"D-305", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.unitNo, func(t *testing.T) {
			unit := entities.Unit{UnitNo: tc.unitNo, Floor: 2, CarpetArea: 600}
			sheet := ComputeCostSheet(unit, baseConfig(), 0, 0, metroResidential(), "")

			if tc.wantPLC && sheet.PLC != sheet.BaseCost*0.05 {
				t.Fatalf("expected plc of 5%% of base, got %v", sheet.PLC)
			}
			if !tc.wantPLC && sheet.PLC != 0 {
				t.Fatalf("expected no plc, got %v", sheet.PLC)
			}
		})
	}
}

func TestComputeCostSheet_GSTSlabs(t *testing.T) {
	t.Run("ready to move carries no GST", func(t *testing.T) {
		project := metroResidential()
		project.ConstructionStatus = entities.ConstructionStatusReadyToMove

		unit := entities.Unit{UnitNo: "A-902", Floor: 9, CarpetArea: 1100}
		sheet := ComputeCostSheet(unit, baseConfig(), 0, 0, project, "")
		if sheet.GSTRate != 0 || sheet.GSTAmount != 0 {
			t.Fatalf("expected zero GST, got rate=%v amount=%v", sheet.GSTRate, sheet.GSTAmount)
		}
	})

	t.Run("commercial under construction is 12 percent", func(t *testing.T) {
		project := metroResidential()
		project.Type = entities.ProjectTypeCommercial

		unit := entities.Unit{UnitNo: "S-12", Floor: 1, CarpetArea: 400}
		sheet := ComputeCostSheet(unit, baseConfig(), 0, 0, project, "")
		if sheet.GSTRate != 0.12 {
			t.Fatalf("expected 0.12, got %v", sheet.GSTRate)
		}
	})

	t.Run("affordable metro unit gets 1 percent", func(t *testing.T) {
		// 640 sqft is 59.46 sqm, inside the 60 sqm metro ceiling; a low base
		// rate keeps the agreement value under the 45 lakh cap.
		cfg := entities.PricingConfig{ProjectID: "proj-1", BaseRate: 3000}
		unit := entities.Unit{UnitNo: "A-102", CarpetArea: 640}

		sheet := ComputeCostSheet(unit, cfg, 0, 0, metroResidential(), "")
		if sheet.GSTRate != 0.01 {
			t.Fatalf("expected 0.01, got %v", sheet.GSTRate)
		}
	})

	t.Run("area over the metro ceiling falls back to 5 percent", func(t *testing.T) {
		// 660 sqft is 61.32 sqm, just outside the metro ceiling.
		cfg := entities.PricingConfig{ProjectID: "proj-1", BaseRate: 3000}
		unit := entities.Unit{UnitNo: "A-102", CarpetArea: 660}

		sheet := ComputeCostSheet(unit, cfg, 0, 0, metroResidential(), "")
		if sheet.GSTRate != 0.05 {
			t.Fatalf("expected 0.05, got %v", sheet.GSTRate)
		}
	})

	t.Run("non metro ceiling is 90 sqm", func(t *testing.T) {
		// 900 sqft is 83.61 sqm: standard slab in a metro, affordable outside.
		cfg := entities.PricingConfig{ProjectID: "proj-1", BaseRate: 3000}
		unit := entities.Unit{UnitNo: "A-102", CarpetArea: 900}

		project := metroResidential()
		project.IsMetro = false
		sheet := ComputeCostSheet(unit, cfg, 0, 0, project, "")
		if sheet.GSTRate != 0.01 {
			t.Fatalf("non metro: expected 0.01, got %v", sheet.GSTRate)
		}

		project.IsMetro = true
		sheet = ComputeCostSheet(unit, cfg, 0, 0, project, "")
		if sheet.GSTRate != 0.05 {
			t.Fatalf("metro: expected 0.05, got %v", sheet.GSTRate)
		}
	})

	t.Run("agreement value cap is inclusive", func(t *testing.T) {
		// 600 sqft is 55.74 sqm, within the metro ceiling; 7500/sqft lands the
		// agreement value exactly on the 45 lakh cap.
		cfg := entities.PricingConfig{ProjectID: "proj-1", BaseRate: 7500}
		unit := entities.Unit{UnitNo: "A-102", CarpetArea: 600}

		sheet := ComputeCostSheet(unit, cfg, 0, 0, metroResidential(), "")
		if sheet.AgreementValue != 4500000 {
			t.Fatalf("agreement value: expected 4500000, got %v", sheet.AgreementValue)
		}
		if sheet.GSTRate != 0.01 {
			t.Fatalf("at cap: expected 0.01, got %v", sheet.GSTRate)
		}

		cfg.Amenities = 1
		sheet = ComputeCostSheet(unit, cfg, 0, 0, metroResidential(), "")
		if sheet.AgreementValue != 4500001 {
			t.Fatalf("agreement value: expected 4500001, got %v", sheet.AgreementValue)
		}
		if sheet.GSTRate != 0.05 {
			t.Fatalf("one rupee over cap: expected 0.05, got %v", sheet.GSTRate)
		}
	})

	t.Run("agreement value over the cap is not affordable", func(t *testing.T) {
		// Small area but a rate card that pushes the agreement value past 45
		// lakh.
		cfg := entities.PricingConfig{ProjectID: "proj-1", BaseRate: 9000}
		unit := entities.Unit{UnitNo: "A-102", CarpetArea: 600}

		sheet := ComputeCostSheet(unit, cfg, 0, 0, metroResidential(), "")
		if sheet.GSTRate != 0.05 {
			t.Fatalf("expected 0.05, got %v", sheet.GSTRate)
		}
	})
}

func TestComputeCostSheet_MalformedInputs(t *testing.T) {
	t.Run("NaN carpet area degrades to zero", func(t *testing.T) {
		unit := entities.Unit{UnitNo: "A-104", Floor: 4, CarpetArea: math.NaN()}
		sheet := ComputeCostSheet(unit, baseConfig(), 0, 0, metroResidential(), "")

		if sheet.BaseCost != 0 || sheet.FloorRiseCost != 0 || sheet.PLC != 0 {
			t.Fatalf("expected zeroed area components, got %+v", sheet)
		}
		if math.IsNaN(sheet.FinalPrice) {
			t.Fatalf("final price must not be NaN")
		}
	})

	t.Run("negative floor degrades to zero rise", func(t *testing.T) {
		unit := entities.Unit{UnitNo: "A-002", Floor: -2, CarpetArea: 500}
		sheet := ComputeCostSheet(unit, baseConfig(), 0, 0, metroResidential(), "")
		if sheet.FloorRiseCost != 0 {
			t.Fatalf("expected zero floor rise, got %v", sheet.FloorRiseCost)
		}
	})

	t.Run("infinite discount degrades to zero", func(t *testing.T) {
		unit := entities.Unit{UnitNo: "A-002", Floor: 2, CarpetArea: 500}
		sheet := ComputeCostSheet(unit, baseConfig(), math.Inf(1), 0, metroResidential(), "")
		if sheet.DiscountAmount != 0 {
			t.Fatalf("expected zero discount, got %v", sheet.DiscountAmount)
		}
	})

	t.Run("negative parking count degrades to zero", func(t *testing.T) {
		unit := entities.Unit{UnitNo: "A-002", Floor: 2, CarpetArea: 500}
		sheet := ComputeCostSheet(unit, baseConfig(), 0, -3, metroResidential(), "")
		if sheet.ParkingCount != 0 || sheet.ParkingCost != 0 {
			t.Fatalf("expected zero parking, got %+v", sheet)
		}
	})

	t.Run("poisoned rate card degrades to zero rates", func(t *testing.T) {
		cfg := entities.PricingConfig{
			ProjectID:    "proj-1",
			BaseRate:     math.NaN(),
			FloorRise:    math.Inf(1),
			Amenities:    -500000,
			ParkingRate:  math.NaN(),
			StampDuty:    math.Inf(-1),
			Registration: math.NaN(),
		}
		unit := entities.Unit{UnitNo: "A-1204", Floor: 12, CarpetArea: 750}

		sheet := ComputeCostSheet(unit, cfg, 50, 2, metroResidential(), "")

		if sheet.BaseCost != 0 || sheet.FloorRiseCost != 0 || sheet.PLC != 0 {
			t.Fatalf("expected zeroed rate components, got %+v", sheet)
		}
		if sheet.Amenities != 0 || sheet.ParkingCost != 0 {
			t.Fatalf("expected zeroed charges, got %+v", sheet)
		}
		if sheet.StampDutyAmount != 0 || sheet.RegistrationAmount != 0 {
			t.Fatalf("expected zeroed statutory charges, got %+v", sheet)
		}
		for name, v := range map[string]float64{
			"agreement value": sheet.AgreementValue,
			"gst amount":      sheet.GSTAmount,
			"gross total":     sheet.GrossTotal,
			"final price":     sheet.FinalPrice,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("%s must be finite, got %v", name, v)
			}
		}
	})
}

func TestComputeCostSheet_FinalPriceNotClamped(t *testing.T) {
	unit := entities.Unit{UnitNo: "A-002", Floor: 1, CarpetArea: 500}
	cfg := entities.PricingConfig{ProjectID: "proj-1", BaseRate: 100}

	// 10,000 per sqft discount on a 100 per sqft unit.
	sheet := ComputeCostSheet(unit, cfg, 10000, 0, metroResidential(), "")
	if sheet.FinalPrice >= 0 {
		t.Fatalf("expected negative final price, got %v", sheet.FinalPrice)
	}
}
