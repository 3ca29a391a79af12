// services/incentive_misc.go - membership and patent calculators
package services

import (
	"incentive-portal-api/models"

	"github.com/shopspring/decimal"
)

// CalculateMembershipIncentive reimburses half the membership fee of a
// professional body, capped at the policy limit.
func CalculateMembershipIncentive(claim *models.IncentiveClaim) (result CalculationResult) {
	defer recoverResult(&result)

	detail := claim.MembershipDetail
	if detail == nil {
		return failure("claim has no membership details")
	}
	if detail.AmountPaid <= 0 {
		return CalculationResult{Success: true, Amount: 0}
	}

	amount := decimal.NewFromFloat(detail.AmountPaid).Mul(decimal.NewFromFloat(membershipFeeShare))
	limit := decimal.NewFromInt(membershipCap)
	if amount.GreaterThan(limit) {
		amount = limit
	}

	return CalculationResult{Success: true, Amount: roundToInt(amount)}
}

// CalculatePatentIncentive computes the per-inventor patent incentive. A
// patent not filed in the university's name earns nothing; joint applications
// earn 80% of the base.
func CalculatePatentIncentive(claim *models.IncentiveClaim) (result CalculationResult) {
	defer recoverResult(&result)

	detail := claim.PatentDetail
	if detail == nil {
		return failure("claim has no patent details")
	}

	var base int64
	switch detail.Status {
	case PatentStatusPublished:
		base = patentPublishedBase
	case PatentStatusGranted:
		base = patentGrantedBase
	}

	if !detail.FiledInInstituteName {
		return CalculationResult{Success: true, Amount: 0}
	}

	total := decimal.NewFromInt(base)
	if !detail.IsSoleApplicant {
		total = total.Mul(decimal.NewFromFloat(patentJointApplicantRate))
	}

	inventorCount := len(claim.Inventors)
	if inventorCount < 1 {
		inventorCount = 1
	}
	perInventor := total.Div(decimal.NewFromInt(int64(inventorCount)))

	return CalculationResult{Success: true, Amount: roundToInt(perInventor)}
}
