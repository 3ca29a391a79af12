// services/incentive_apc.go - article processing charge reimbursement
package services

import (
	"incentive-portal-api/models"

	"github.com/shopspring/decimal"
)

// CalculateApcIncentive computes the per-author APC reimbursement. The
// ceiling is the maximum over every applicable policy limit, not their sum;
// the admissible amount is the actual payment capped by that ceiling and
// divided across all authors, external included.
func CalculateApcIncentive(claim *models.IncentiveClaim, isSpecialFaculty bool) (result CalculationResult) {
	defer recoverResult(&result)

	detail := claim.ApcDetail
	if detail == nil {
		return failure("claim has no APC details")
	}
	if len(claim.Authors) == 0 {
		return failure("no authors specified for APC claim")
	}

	indexedInCoreDatabase := detail.IsScopusIndexed || detail.IsWosIndexed || detail.IsSciIndexed

	var ceiling int64
	if indexedInCoreDatabase && detail.QRating != "" {
		ceiling = apcQuartileCeilings[detail.QRating]
	}

	if !isSpecialFaculty {
		if detail.IsEsciIndexed && apcEsciCeiling > ceiling {
			ceiling = apcEsciCeiling
		}
		if detail.IsUgcCareGroupOne && apcUgcCareCeiling > ceiling {
			ceiling = apcUgcCareCeiling
		}
	}

	if ceiling == 0 && !indexedInCoreDatabase {
		return failure("No applicable policy limit found")
	}

	admissible := decimal.NewFromFloat(detail.AmountPaid)
	if ceiling > 0 && admissible.GreaterThan(decimal.NewFromInt(ceiling)) {
		admissible = decimal.NewFromInt(ceiling)
	}

	perAuthor := admissible.Div(decimal.NewFromInt(int64(len(claim.Authors))))

	return CalculationResult{Success: true, Amount: roundToInt(perAuthor)}
}
