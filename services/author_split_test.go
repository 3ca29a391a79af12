package services

import (
	"testing"

	"incentive-portal-api/models"

	"github.com/shopspring/decimal"
)

func TestClassifyAuthorsSkipsExternal(t *testing.T) {
	authors := []models.ClaimAuthor{
		{Email: "a@paruluniversity.ac.in", Role: RoleFirstAuthor},
		{Email: "b@paruluniversity.ac.in", Role: RoleCoAuthor},
		{Email: "c@elsewhere.edu", Role: RoleCorrespondingAuthor, IsExternal: true},
		{Email: "d@paruluniversity.ac.in", Role: RolePresentingAuthor},
	}

	groups := classifyAuthors(authors)

	if len(groups.Internal) != 3 {
		t.Fatalf("expected 3 internal authors, got %d", len(groups.Internal))
	}
	if len(groups.Main) != 1 {
		t.Fatalf("expected 1 main author, got %d", len(groups.Main))
	}
	if len(groups.Co) != 1 {
		t.Fatalf("expected 1 co-author, got %d", len(groups.Co))
	}
	if len(groups.Presenting) != 1 {
		t.Fatalf("expected 1 presenting author, got %d", len(groups.Presenting))
	}
}

func TestFindClaimantIgnoresCaseAndSpaces(t *testing.T) {
	authors := []models.ClaimAuthor{
		{Email: " First.Author@ParulUniversity.ac.in ", Role: RoleFirstAuthor},
	}

	claimant, found := findClaimant(authors, "first.author@paruluniversity.ac.in")
	if !found {
		t.Fatal("expected claimant to be found")
	}
	if claimant.Role != RoleFirstAuthor {
		t.Fatalf("unexpected claimant role: %s", claimant.Role)
	}

	if _, found := findClaimant(authors, "missing@paruluniversity.ac.in"); found {
		t.Fatal("expected missing claimant not to be found")
	}
}

// The pool is a property of the paper: summing every internal author's share
// must never exceed the pool, whichever subset of authors ends up claiming.
func TestPoolSharesNeverExceedPool(t *testing.T) {
	pool := decimal.NewFromInt(10000)

	configurations := [][]models.ClaimAuthor{
		{
			{Email: "a@pu.in", Role: RoleFirstAuthor},
		},
		{
			{Email: "a@pu.in", Role: RoleFirstAuthor},
			{Email: "b@pu.in", Role: RoleCorrespondingAuthor},
		},
		{
			{Email: "a@pu.in", Role: RoleFirstAndCorresponding},
			{Email: "b@pu.in", Role: RoleCoAuthor},
			{Email: "c@pu.in", Role: RoleCoAuthor},
		},
		{
			{Email: "a@pu.in", Role: RoleCoAuthor},
			{Email: "b@pu.in", Role: RoleCoAuthor},
			{Email: "c@pu.in", Role: RoleCoAuthor},
		},
		{
			{Email: "a@pu.in", Role: RoleCoAuthor},
			{Email: "b@pu.in", Role: RoleFirstAuthor, IsExternal: true},
		},
		{
			{Email: "a@pu.in", Role: RoleFirstAuthor},
			{Email: "b@pu.in", Role: RoleCoAuthor},
			{Email: "c@pu.in", Role: RoleEditor},
			{Email: "d@other.edu", Role: RoleCoAuthor, IsExternal: true},
		},
	}

	for i, authors := range configurations {
		groups := classifyAuthors(authors)

		total := decimal.Zero
		for _, claimant := range authors {
			if claimant.IsExternal {
				continue
			}
			total = total.Add(splitPoolShare(pool, claimant, groups))
		}

		if total.GreaterThan(pool) {
			t.Fatalf("configuration %d: shares %s exceed pool %s", i, total, pool)
		}
	}
}

func TestSeventyThirtySplitConservesPoolExactly(t *testing.T) {
	pool := decimal.NewFromInt(10000)
	authors := []models.ClaimAuthor{
		{Email: "a@pu.in", Role: RoleFirstAuthor},
		{Email: "b@pu.in", Role: RoleCoAuthor},
	}
	groups := classifyAuthors(authors)

	mainShare := splitPoolShare(pool, authors[0], groups)
	coShare := splitPoolShare(pool, authors[1], groups)

	if !mainShare.Equal(decimal.NewFromInt(7000)) {
		t.Fatalf("expected main share 7000, got %s", mainShare)
	}
	if !coShare.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("expected co share 3000, got %s", coShare)
	}
	if !mainShare.Add(coShare).Equal(pool) {
		t.Fatalf("expected shares to sum to pool, got %s", mainShare.Add(coShare))
	}
}

func TestNoInternalAuthorsYieldNothing(t *testing.T) {
	pool := decimal.NewFromInt(10000)
	authors := []models.ClaimAuthor{
		{Email: "a@other.edu", Role: RoleFirstAuthor, IsExternal: true},
	}
	groups := classifyAuthors(authors)

	share := splitPoolShare(pool, authors[0], groups)
	if !share.IsZero() {
		t.Fatalf("expected zero share, got %s", share)
	}
}
