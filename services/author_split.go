// services/author_split.go - author classification and pool splitting
package services

import (
	"strings"

	"incentive-portal-api/models"

	"github.com/shopspring/decimal"
)

// authorGroups partitions a claim's author list for the splitting step.
// External authors never receive a share but still count in the denominators
// that include all authors (letters/editorials).
type authorGroups struct {
	All        []models.ClaimAuthor
	Internal   []models.ClaimAuthor
	Main       []models.ClaimAuthor
	Co         []models.ClaimAuthor
	Presenting []models.ClaimAuthor
}

func isMainRole(role string) bool {
	switch role {
	case RoleFirstAuthor, RoleCorrespondingAuthor, RoleFirstAndCorresponding:
		return true
	}
	return false
}

func isPresentingRole(role string) bool {
	return role == RolePresentingAuthor || role == RoleFirstAndPresentingAuthor
}

func classifyAuthors(authors []models.ClaimAuthor) authorGroups {
	groups := authorGroups{All: authors}
	for _, a := range authors {
		if a.IsExternal {
			continue
		}
		groups.Internal = append(groups.Internal, a)
		switch {
		case isMainRole(a.Role):
			groups.Main = append(groups.Main, a)
		case a.Role == RoleCoAuthor:
			groups.Co = append(groups.Co, a)
		}
		if isPresentingRole(a.Role) {
			groups.Presenting = append(groups.Presenting, a)
		}
	}
	return groups
}

// findClaimant locates the claimant in the author list by case-insensitive
// email match. The claimant must appear in the list; absence is a hard error
// handled by the caller.
func findClaimant(authors []models.ClaimAuthor, email string) (models.ClaimAuthor, bool) {
	target := strings.ToLower(strings.TrimSpace(email))
	for _, a := range authors {
		if strings.ToLower(strings.TrimSpace(a.Email)) == target {
			return a, true
		}
	}
	return models.ClaimAuthor{}, false
}

// splitPoolShare resolves the claimant's share of the total incentive pool
// for the general research-paper case. The pool is a property of the paper:
// shares summed across all co-submitting internal authors never exceed the
// pool (70/30 between main and co-authors, even split within each group).
func splitPoolShare(pool decimal.Decimal, claimant models.ClaimAuthor, groups authorGroups) decimal.Decimal {
	if len(groups.Internal) == 0 || claimant.IsExternal {
		return decimal.Zero
	}

	claimantIsMain := isMainRole(claimant.Role)
	claimantIsCo := claimant.Role == RoleCoAuthor

	switch {
	case len(groups.Main) == 1 && len(groups.Co) == 0 && len(groups.Internal) == 1:
		// Sole internal author takes the full pool.
		if claimantIsMain {
			return pool
		}
		return decimal.Zero

	case len(groups.Main) > 0 && len(groups.Co) > 0:
		if claimantIsMain {
			return pool.Mul(decimal.NewFromFloat(0.7)).Div(decimal.NewFromInt(int64(len(groups.Main))))
		}
		if claimantIsCo {
			return pool.Mul(decimal.NewFromFloat(0.3)).Div(decimal.NewFromInt(int64(len(groups.Co))))
		}
		return decimal.Zero

	case len(groups.Main) == 0 && len(groups.Co) == 1 && len(groups.Internal) == 1:
		// A lone internal co-author with no internal main author gets 80%.
		if claimantIsCo {
			return pool.Mul(decimal.NewFromFloat(0.8))
		}
		return decimal.Zero

	case len(groups.Main) == 0 && len(groups.Co) > 1:
		if claimantIsCo {
			return pool.Mul(decimal.NewFromFloat(0.8)).Div(decimal.NewFromInt(int64(len(groups.Co))))
		}
		return decimal.Zero

	case len(groups.Main) > 0 && len(groups.Co) == 0:
		if claimantIsMain {
			return pool.Div(decimal.NewFromInt(int64(len(groups.Main))))
		}
		return decimal.Zero
	}

	return decimal.Zero
}
