// services/incentive_book.go - book and book-chapter incentive calculator
package services

import (
	"incentive-portal-api/models"

	"github.com/shopspring/decimal"
)

// fullBookPageCount is large enough to hit the top tier of every book table;
// used to derive the full-book cap for multi-chapter claims.
const fullBookPageCount = 10000

// CalculateBookIncentive computes the incentive for a book or book-chapter
// claim. Multiple chapters in the same book earn a diminishing series capped
// at the equivalent full-book incentive.
func CalculateBookIncentive(claim *models.IncentiveClaim) (result CalculationResult) {
	defer recoverResult(&result)

	detail := claim.BookDetail
	if detail == nil {
		return failure("claim has no book details")
	}

	base := decimal.NewFromInt(lookupBookBase(detail.IsChapter, detail.IsScopusIndexed, detail.PublisherType, detail.PageCount))

	// An editor earns half the author rate.
	if claimant, found := findClaimant(claim.Authors, claim.ClaimantEmail); found && claimant.Role == RoleEditor {
		base = base.Div(decimal.NewFromInt(2))
	}

	total := base
	if detail.IsChapter && detail.ChapterCount > 1 {
		// Diminishing series: base + base/2 + ... + base/N, capped at the
		// full-book incentive for the same locale and indexing.
		total = decimal.Zero
		for k := 1; k <= detail.ChapterCount; k++ {
			total = total.Add(base.Div(decimal.NewFromInt(int64(k))))
		}
		fullBookCap := decimal.NewFromInt(lookupBookBase(false, detail.IsScopusIndexed, detail.PublisherType, fullBookPageCount))
		if total.GreaterThan(fullBookCap) {
			total = fullBookCap
		}
	}

	// The university-author denominator adds the separate count field to the
	// internal entries of the author list, as captured upstream.
	internalCount := 0
	for _, a := range claim.Authors {
		if !a.IsExternal {
			internalCount++
		}
	}
	internalCount += detail.TotalInstituteAuthors

	if internalCount >= 2 {
		total = total.Div(decimal.NewFromInt(int64(internalCount)))
	}

	return CalculationResult{Success: true, Amount: roundToInt(total)}
}
