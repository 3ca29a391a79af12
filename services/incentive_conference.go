// services/incentive_conference.go - conference presentation reimbursement
package services

import (
	"strings"

	"incentive-portal-api/models"

	"github.com/shopspring/decimal"
)

// CalculateConferenceIncentive computes the reimbursement for a conference
// presentation. The result carries the eligible-expense subtotal and the
// policy cap alongside the final amount so reviewers can audit the figure.
func CalculateConferenceIncentive(claim *models.IncentiveClaim) (result CalculationResult) {
	defer recoverResult(&result)

	detail := claim.ConferenceDetail
	if detail == nil {
		return failure("claim has no conference details")
	}

	registration := decimal.NewFromFloat(detail.RegistrationFee)

	// Offline attendance may claim travel on top of registration.
	eligible := registration
	if strings.EqualFold(detail.Mode, ConferenceModeOffline) {
		eligible = eligible.Add(decimal.NewFromFloat(detail.TravelExpenses))
	}

	limit := conferenceCap(detail, registration)

	amount := eligible
	if limit.GreaterThan(decimal.Zero) && amount.GreaterThan(limit) {
		amount = limit
	}

	return CalculationResult{
		Success:          true,
		Amount:           roundToInt(amount),
		EligibleExpenses: roundToInt(eligible),
		MaxReimbursement: roundToInt(limit),
	}
}

// conferenceCap resolves the reimbursement ceiling. Home-organized events are
// checked first and override mode and venue entirely.
func conferenceCap(detail *models.ConferenceDetail, registration decimal.Decimal) decimal.Decimal {
	if isHomeOrganizedConference(detail) {
		return registration.Mul(decimal.NewFromFloat(homeOrganizerFeeShare))
	}

	if strings.EqualFold(detail.Mode, ConferenceModeOnline) {
		tier, ok := onlineCapTiers[detail.OnlinePresentationOrder]
		if !ok {
			tier = onlineCapDefault
		}
		limit := registration.Mul(decimal.NewFromFloat(tier.FeeShare))
		ceiling := decimal.NewFromInt(tier.Ceiling)
		if limit.GreaterThan(ceiling) {
			limit = ceiling
		}
		return limit
	}

	if strings.EqualFold(detail.Mode, ConferenceModeOffline) {
		switch detail.ConferenceType {
		case ConferenceTypeInternational:
			return decimal.NewFromInt(internationalVenueCaps[detail.ConferenceVenue])
		case ConferenceTypeNational:
			if detail.PresentationType == PresentationTypeOral {
				return decimal.NewFromInt(nationalOralCap)
			}
			return decimal.NewFromInt(nationalPosterCap)
		default:
			if detail.PresentationType == PresentationTypeOral {
				return decimal.NewFromInt(regionalOralCap)
			}
			return decimal.NewFromInt(regionalDefaultCap)
		}
	}

	return decimal.Zero
}

func isHomeOrganizedConference(detail *models.ConferenceDetail) bool {
	organizer := strings.ToLower(detail.OrganizerName)
	name := strings.ToLower(detail.ConferenceName)
	return strings.Contains(organizer, "parul university") || strings.Contains(name, "picet")
}
