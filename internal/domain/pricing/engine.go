package pricing

import (
	"math"

	"realnest_crm/internal/domain/entities"
)

// Engine constants. The PLC rule (last digit 1 or 4 gets a flat 5% of base) is
// carried over from the legacy rate logic unchanged; treat it as policy, not
// physics.
const (
	plcRate = 0.05

	sqftToSqm = 0.092903

	affordableAreaLimitMetroSqm    = 60.0
	affordableAreaLimitNonMetroSqm = 90.0
	affordableValueCap             = 4_500_000.0

	gstRateAffordable = 0.01
	gstRateStandard   = 0.05
	gstRateCommercial = 0.12
)

// ComputeCostSheet produces the itemized breakdown for one unit under one rate
// card. It is a pure function: no I/O, no clock, and identical inputs yield
// identical output.
//
// Malformed numerics (NaN, Inf, negative) on the unit or the rate card degrade
// to zero-valued components rather than failing; a poisoned input must never
// crash pricing or leak non-finite values into the sheet.
// FinalPrice is not clamped: a discount larger than the gross total is for the
// caller to validate.
func ComputeCostSheet(
	unit entities.Unit,
	cfg entities.PricingConfig,
	discountPerSqft float64,
	parkingCount int,
	project entities.Project,
	paymentPlan string,
) entities.CostSheet {
	carpetArea := sanitize(unit.CarpetArea)
	floor := sanitize(unit.Floor)
	discountPerSqft = sanitize(discountPerSqft)
	if parkingCount < 0 {
		parkingCount = 0
	}

	baseRate := sanitize(cfg.BaseRate)
	floorRiseRate := sanitize(cfg.FloorRise)
	amenities := sanitize(cfg.Amenities)
	parkingRate := sanitize(cfg.ParkingRate)
	stampDutyRate := sanitize(cfg.StampDuty)
	registrationAmount := sanitize(cfg.Registration)

	baseCost := baseRate * carpetArea
	floorRiseCost := floor * floorRiseRate * carpetArea

	plc := 0.0
	if hasPreferredLocation(unit.UnitNo) {
		plc = baseRate * carpetArea * plcRate
	}

	parkingCost := float64(parkingCount) * parkingRate
	agreementValue := baseCost + floorRiseCost + plc + parkingCost + amenities

	gstRate := selectGSTRate(project, carpetArea, agreementValue)
	gstAmount := agreementValue * gstRate

	stampDutyAmount := agreementValue * stampDutyRate

	grossTotal := agreementValue + gstAmount + stampDutyAmount + registrationAmount
	discountAmount := discountPerSqft * carpetArea

	return entities.CostSheet{
		BaseCost:           baseCost,
		FloorRiseCost:      floorRiseCost,
		PLC:                plc,
		Amenities:          amenities,
		ParkingCount:       parkingCount,
		ParkingCost:        parkingCost,
		AgreementValue:     agreementValue,
		GSTRate:            gstRate,
		GSTAmount:          gstAmount,
		StampDutyAmount:    stampDutyAmount,
		RegistrationAmount: registrationAmount,
		GrossTotal:         grossTotal,
		DiscountPerSqft:    discountPerSqft,
		DiscountAmount:     discountAmount,
		FinalPrice:         grossTotal - discountAmount,
		PaymentPlan:        paymentPlan,
	}
}

// selectGSTRate picks the slab for the transaction:
//   - completed inventory (Ready to Move) carries no GST;
//   - commercial under-construction stock is taxed at 12%;
//   - residential under-construction stock gets the 1% affordable-housing slab
//     when the carpet area is within the metro/non-metro sqm ceiling AND the
//     agreement value is within the cap, else the standard 5%.
func selectGSTRate(project entities.Project, carpetArea, agreementValue float64) float64 {
	if project.ConstructionStatus == entities.ConstructionStatusReadyToMove {
		return 0
	}
	if project.Type == entities.ProjectTypeCommercial {
		return gstRateCommercial
	}

	areaSqm := carpetArea * sqftToSqm
	limit := affordableAreaLimitNonMetroSqm
	if project.IsMetro {
		limit = affordableAreaLimitMetroSqm
	}
	if areaSqm <= limit && agreementValue <= affordableValueCap {
		return gstRateAffordable
	}
	return gstRateStandard
}

// hasPreferredLocation applies the legacy PLC rule: unit numbers whose last
// digit is 1 or 4 carry the premium.
func hasPreferredLocation(unitNo string) bool {
	if unitNo == "" {
		return false
	}
	switch unitNo[len(unitNo)-1] {
	case '1', '4':
		return true
	}
	return false
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
