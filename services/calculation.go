// services/calculation.go - incentive engine entry points
package services

import (
	"fmt"
	"incentive-portal-api/models"

	"github.com/shopspring/decimal"
)

// CalculationResult is the uniform return shape of every calculator. A false
// Success is a recoverable validation failure, never a panic. The conference
// calculator additionally reports its eligible-expense subtotal and the
// policy cap for auditability.
type CalculationResult struct {
	Success          bool   `json:"success"`
	Amount           int    `json:"amount"`
	Error            string `json:"error,omitempty"`
	EligibleExpenses int    `json:"eligible_expenses,omitempty"`
	MaxReimbursement int    `json:"max_reimbursement,omitempty"`
}

func failure(format string, args ...interface{}) CalculationResult {
	return CalculationResult{Success: false, Error: fmt.Sprintf(format, args...)}
}

// CalculateClaimIncentive dispatches a claim to the calculator for its type.
// Faculty and designation come from the claimant's profile, not the claim.
func CalculateClaimIncentive(claim *models.IncentiveClaim, faculty, designation string) CalculationResult {
	if claim == nil {
		return failure("no claim provided")
	}

	switch claim.ClaimType {
	case models.ClaimTypeResearchPaper:
		return CalculateResearchPaperIncentive(claim, faculty, designation)
	case models.ClaimTypeBook:
		return CalculateBookIncentive(claim)
	case models.ClaimTypeApc:
		return CalculateApcIncentive(claim, IsSpecialPolicyFaculty(faculty))
	case models.ClaimTypeConference:
		return CalculateConferenceIncentive(claim)
	case models.ClaimTypeMembership:
		return CalculateMembershipIncentive(claim)
	case models.ClaimTypePatent:
		return CalculatePatentIncentive(claim)
	default:
		return failure("unknown claim type: %s", claim.ClaimType)
	}
}

// recoverResult converts a panic inside a calculator (malformed numeric
// fields and the like) into a failed result so nothing escapes the engine
// boundary.
func recoverResult(result *CalculationResult) {
	if r := recover(); r != nil {
		*result = failure("calculation error: %v", r)
	}
}

// roundToInt rounds half away from zero, the convention used for all INR
// amounts leaving the engine.
func roundToInt(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}
