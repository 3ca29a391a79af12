// services/incentive_paper.go - research paper incentive calculator
package services

import (
	"incentive-portal-api/models"

	"github.com/shopspring/decimal"
)

// CalculateResearchPaperIncentive computes the claimant's monetary incentive
// for a published research paper. It is a pure function of the claim
// attributes plus the claimant's faculty and designation.
func CalculateResearchPaperIncentive(claim *models.IncentiveClaim, faculty, designation string) (result CalculationResult) {
	defer recoverResult(&result)

	detail := claim.PaperDetail
	if detail == nil {
		return failure("claim has no research paper details")
	}

	claimant, found := findClaimant(claim.Authors, claim.ClaimantEmail)
	if !found {
		return failure("Claimant not found in author list")
	}

	// The Ph.D Scholar schedule overrides every other branch, including
	// faculty policy and author splitting.
	if designation == DesignationPhdScholar {
		amount := phdScholarAmounts[detail.JournalClassification]
		return CalculationResult{Success: true, Amount: int(amount)}
	}

	base := getBaseIncentiveForPaper(detail, faculty)

	pool, flatPool := adjustForPublicationType(base, detail.PublicationType, detail.JournalClassification)

	groups := classifyAuthors(claim.Authors)

	var share decimal.Decimal

	switch {
	case flatPool:
		// Letters and editorials split a flat pool across all authors,
		// external included in the denominator.
		if len(groups.All) > 0 {
			share = pool.Div(decimal.NewFromInt(int64(len(groups.All))))
		}

	case detail.PublicationType == PubTypeScopusProceedings:
		// Only presenting internal authors are eligible. A non-presenting
		// claimant still gets a recorded claim at zero value.
		if !isPresentingRole(claimant.Role) || claimant.IsExternal {
			return CalculationResult{
				Success: true,
				Amount:  0,
				Error:   "only presenting authors are eligible for conference proceedings incentive",
			}
		}
		share = pool.Div(decimal.NewFromInt(int64(len(groups.Presenting))))

	default:
		share = splitPoolShare(pool, claimant, groups)
	}

	// Post-adjustments apply to the claimant's share, not the pool, and
	// multiply independently.
	if detail.WasApcPaidByUniversity {
		share = share.Div(decimal.NewFromInt(2))
	}
	if detail.IsPuNameInPublication != nil && !*detail.IsPuNameInPublication {
		share = share.Div(decimal.NewFromInt(2))
	}

	return CalculationResult{Success: true, Amount: roundToInt(share)}
}

// getBaseIncentiveForPaper resolves the base amount in fixed precedence
// order: proceedings flat rate, quartile table, special-faculty restriction,
// then the WoS / UGC-CARE fallbacks for non-special faculties.
func getBaseIncentiveForPaper(detail *models.PaperDetail, faculty string) int64 {
	if detail.PublicationType == PubTypeScopusProceedings {
		return scopusProceedingsBase
	}

	if amount, ok := quartileBaseAmounts[detail.JournalClassification]; ok {
		return amount
	}

	if IsSpecialPolicyFaculty(faculty) {
		// No fallback incentives for special-policy faculties.
		return 0
	}

	if wosFallbackTypes[detail.WosType] {
		return wosFallbackBase
	}
	if detail.PublicationType == PubTypeUgcCareGroupOne {
		return ugcCareFallbackBase
	}
	return 0
}

// adjustForPublicationType scales the base amount by publication subtype.
// Letters and editorials override the base with a flat total pool, reported
// through the second return value.
func adjustForPublicationType(base int64, publicationType, classification string) (decimal.Decimal, bool) {
	amount := decimal.NewFromInt(base)

	switch publicationType {
	case PubTypeLetterToEditor, PubTypeEditorial:
		return decimal.NewFromInt(letterEditorialPool), true
	case PubTypeCaseReport, PubTypeShortSurvey:
		return amount.Mul(decimal.NewFromFloat(0.9)), false
	case PubTypeReviewArticle:
		if classification == ClassQ3 || classification == ClassQ4 {
			return amount.Mul(decimal.NewFromFloat(0.8)), false
		}
		return amount, false
	default:
		return amount, false
	}
}
