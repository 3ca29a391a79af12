package services

import (
	"testing"

	"incentive-portal-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paperClaim(authors []models.ClaimAuthor, detail models.PaperDetail) *models.IncentiveClaim {
	return &models.IncentiveClaim{
		ClaimType:     models.ClaimTypeResearchPaper,
		ClaimantEmail: "claimant@paruluniversity.ac.in",
		Authors:       authors,
		PaperDetail:   &detail,
	}
}

func soleAuthor() []models.ClaimAuthor {
	return []models.ClaimAuthor{
		{Email: "claimant@paruluniversity.ac.in", Name: "A Sharma", Role: RoleFirstAuthor},
	}
}

func mainAndCoAuthors() []models.ClaimAuthor {
	return []models.ClaimAuthor{
		{Email: "claimant@paruluniversity.ac.in", Name: "A Sharma", Role: RoleFirstAuthor},
		{Email: "co@paruluniversity.ac.in", Name: "B Patel", Role: RoleCoAuthor},
	}
}

func TestResearchPaperClaimantMustBeListed(t *testing.T) {
	claim := paperClaim([]models.ClaimAuthor{
		{Email: "someone.else@paruluniversity.ac.in", Role: RoleFirstAuthor},
	}, models.PaperDetail{JournalClassification: ClassQ1, PublicationType: PubTypeResearchArticle})

	result := CalculateResearchPaperIncentive(claim, "Faculty of Engineering", "")
	require.False(t, result.Success)
	assert.Contains(t, result.Error, "Claimant not found")
}

func TestResearchPaperClaimantEmailMatchIsCaseInsensitive(t *testing.T) {
	claim := paperClaim([]models.ClaimAuthor{
		{Email: "CLAIMANT@ParulUniversity.ac.in", Role: RoleFirstAuthor},
	}, models.PaperDetail{JournalClassification: ClassQ1, PublicationType: PubTypeResearchArticle})

	result := CalculateResearchPaperIncentive(claim, "Faculty of Engineering", "")
	require.True(t, result.Success)
	assert.Equal(t, 15000, result.Amount)
}

func TestPhdScholarOverridesEverything(t *testing.T) {
	cases := []struct {
		name           string
		classification string
		faculty        string
		want           int
	}{
		{"Q1 on regular faculty", ClassQ1, "Faculty of Engineering", 6000},
		{"Q2 on special faculty", ClassQ2, "Faculty of Medicine", 4000},
		{"Q3 yields nothing", ClassQ3, "Faculty of Engineering", 0},
		{"Nature yields nothing", ClassNatureScienceLancet, "Faculty of Medicine", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claim := paperClaim(soleAuthor(), models.PaperDetail{
				JournalClassification: tc.classification,
				PublicationType:       PubTypeResearchArticle,
			})
			result := CalculateResearchPaperIncentive(claim, tc.faculty, DesignationPhdScholar)
			require.True(t, result.Success)
			assert.Equal(t, tc.want, result.Amount)
		})
	}
}

func TestSpecialFacultyHasNoFallback(t *testing.T) {
	claim := paperClaim(soleAuthor(), models.PaperDetail{
		PublicationType: PubTypeResearchArticle,
		WosType:         "SCIE",
	})

	result := CalculateResearchPaperIncentive(claim, "Faculty of Medicine", "")
	require.True(t, result.Success)
	assert.Equal(t, 0, result.Amount)
}

func TestNonSpecialFacultyFallbacks(t *testing.T) {
	wos := paperClaim(soleAuthor(), models.PaperDetail{
		PublicationType: PubTypeResearchArticle,
		WosType:         "SSCI",
	})
	result := CalculateResearchPaperIncentive(wos, "Faculty of Engineering", "")
	require.True(t, result.Success)
	assert.Equal(t, 3000, result.Amount)

	ugc := paperClaim(soleAuthor(), models.PaperDetail{
		PublicationType: PubTypeUgcCareGroupOne,
	})
	result = CalculateResearchPaperIncentive(ugc, "Faculty of Engineering", "")
	require.True(t, result.Success)
	assert.Equal(t, 1000, result.Amount)
}

func TestSoleInternalAuthorTakesFullPool(t *testing.T) {
	claim := paperClaim(soleAuthor(), models.PaperDetail{
		JournalClassification: ClassQ1,
		PublicationType:       PubTypeResearchArticle,
	})

	result := CalculateResearchPaperIncentive(claim, "Faculty of Engineering", "")
	require.True(t, result.Success)
	assert.Equal(t, 15000, result.Amount)
}

func TestMainAndCoAuthorSplitConservesPool(t *testing.T) {
	detail := models.PaperDetail{
		JournalClassification: ClassQ2,
		PublicationType:       PubTypeResearchArticle,
	}

	main := paperClaim(mainAndCoAuthors(), detail)
	mainResult := CalculateResearchPaperIncentive(main, "Faculty of Engineering", "")
	require.True(t, mainResult.Success)
	assert.Equal(t, 7000, mainResult.Amount)

	co := paperClaim(mainAndCoAuthors(), detail)
	co.ClaimantEmail = "co@paruluniversity.ac.in"
	coResult := CalculateResearchPaperIncentive(co, "Faculty of Engineering", "")
	require.True(t, coResult.Success)
	assert.Equal(t, 3000, coResult.Amount)

	assert.Equal(t, 10000, mainResult.Amount+coResult.Amount)
}

func TestOnlyInternalCoAuthorsSplitEightyPercent(t *testing.T) {
	authors := []models.ClaimAuthor{
		{Email: "claimant@paruluniversity.ac.in", Role: RoleCoAuthor},
		{Email: "co2@paruluniversity.ac.in", Role: RoleCoAuthor},
		{Email: "external@elsewhere.edu", Role: RoleFirstAuthor, IsExternal: true},
	}
	claim := paperClaim(authors, models.PaperDetail{
		JournalClassification: ClassQ2,
		PublicationType:       PubTypeResearchArticle,
	})

	result := CalculateResearchPaperIncentive(claim, "Faculty of Engineering", "")
	require.True(t, result.Success)
	// 80% of 10000 split between the two internal co-authors.
	assert.Equal(t, 4000, result.Amount)
}

func TestLoneInternalCoAuthorGetsEightyPercent(t *testing.T) {
	authors := []models.ClaimAuthor{
		{Email: "claimant@paruluniversity.ac.in", Role: RoleCoAuthor},
		{Email: "external@elsewhere.edu", Role: RoleFirstAuthor, IsExternal: true},
	}
	claim := paperClaim(authors, models.PaperDetail{
		JournalClassification: ClassQ1,
		PublicationType:       PubTypeResearchArticle,
	})

	result := CalculateResearchPaperIncentive(claim, "Faculty of Engineering", "")
	require.True(t, result.Success)
	assert.Equal(t, 12000, result.Amount)
}

func TestApcAndAffiliationHalvingsAreIndependent(t *testing.T) {
	no := false
	base := models.PaperDetail{
		JournalClassification: ClassQ1,
		PublicationType:       PubTypeResearchArticle,
	}

	apcPaid := base
	apcPaid.WasApcPaidByUniversity = true
	result := CalculateResearchPaperIncentive(paperClaim(soleAuthor(), apcPaid), "Faculty of Engineering", "")
	require.True(t, result.Success)
	assert.Equal(t, 7500, result.Amount)

	noAffiliation := base
	noAffiliation.IsPuNameInPublication = &no
	result = CalculateResearchPaperIncentive(paperClaim(soleAuthor(), noAffiliation), "Faculty of Engineering", "")
	require.True(t, result.Success)
	assert.Equal(t, 7500, result.Amount)

	both := base
	both.WasApcPaidByUniversity = true
	both.IsPuNameInPublication = &no
	result = CalculateResearchPaperIncentive(paperClaim(soleAuthor(), both), "Faculty of Engineering", "")
	require.True(t, result.Success)
	assert.Equal(t, 3750, result.Amount)
}

func TestLetterToEditorSplitsFlatPoolAcrossAllAuthors(t *testing.T) {
	authors := []models.ClaimAuthor{
		{Email: "claimant@paruluniversity.ac.in", Role: RoleFirstAuthor},
		{Email: "external@elsewhere.edu", Role: RoleCoAuthor, IsExternal: true},
	}
	claim := paperClaim(authors, models.PaperDetail{
		JournalClassification: ClassQ1,
		PublicationType:       PubTypeLetterToEditor,
	})

	result := CalculateResearchPaperIncentive(claim, "Faculty of Engineering", "")
	require.True(t, result.Success)
	// 2500 pool over both authors, the external one included in the denominator.
	assert.Equal(t, 1250, result.Amount)
}

func TestProceedingsRequirePresentingClaimant(t *testing.T) {
	authors := []models.ClaimAuthor{
		{Email: "claimant@paruluniversity.ac.in", Role: RoleCoAuthor},
		{Email: "presenter@paruluniversity.ac.in", Role: RolePresentingAuthor},
	}
	claim := paperClaim(authors, models.PaperDetail{
		PublicationType: PubTypeScopusProceedings,
	})

	result := CalculateResearchPaperIncentive(claim, "Faculty of Engineering", "")
	require.True(t, result.Success)
	assert.Equal(t, 0, result.Amount)
	assert.NotEmpty(t, result.Error)

	presenting := paperClaim(authors, models.PaperDetail{
		PublicationType: PubTypeScopusProceedings,
	})
	presenting.ClaimantEmail = "presenter@paruluniversity.ac.in"
	result = CalculateResearchPaperIncentive(presenting, "Faculty of Engineering", "")
	require.True(t, result.Success)
	assert.Equal(t, 3000, result.Amount)
	assert.Empty(t, result.Error)
}

func TestProceedingsFlatRateIgnoresSpecialFaculty(t *testing.T) {
	authors := []models.ClaimAuthor{
		{Email: "claimant@paruluniversity.ac.in", Role: RoleFirstAndPresentingAuthor},
	}
	claim := paperClaim(authors, models.PaperDetail{
		PublicationType: PubTypeScopusProceedings,
	})

	result := CalculateResearchPaperIncentive(claim, "Faculty of Medicine", "")
	require.True(t, result.Success)
	assert.Equal(t, 3000, result.Amount)
}

func TestPublicationSubtypeAdjustments(t *testing.T) {
	cases := []struct {
		name           string
		publicationType string
		classification string
		want           int
	}{
		{"review article keeps Q1 base", PubTypeReviewArticle, ClassQ1, 15000},
		{"review article scaled on Q3", PubTypeReviewArticle, ClassQ3, 4800},
		{"review article scaled on Q4", PubTypeReviewArticle, ClassQ4, 3200},
		{"case report scaled", PubTypeCaseReport, ClassQ2, 9000},
		{"short survey scaled", PubTypeShortSurvey, ClassQ4, 3600},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claim := paperClaim(soleAuthor(), models.PaperDetail{
				JournalClassification: tc.classification,
				PublicationType:       tc.publicationType,
			})
			result := CalculateResearchPaperIncentive(claim, "Faculty of Engineering", "")
			require.True(t, result.Success)
			assert.Equal(t, tc.want, result.Amount)
		})
	}
}

func TestResearchPaperCalculationIsDeterministic(t *testing.T) {
	claim := paperClaim(mainAndCoAuthors(), models.PaperDetail{
		JournalClassification: ClassQ2,
		PublicationType:       PubTypeResearchArticle,
	})

	first := CalculateResearchPaperIncentive(claim, "Faculty of Engineering", "")
	second := CalculateResearchPaperIncentive(claim, "Faculty of Engineering", "")
	assert.Equal(t, first, second)
}

func TestResearchPaperAmountsAreNonNegative(t *testing.T) {
	classifications := []string{
		ClassNatureScienceLancet, ClassTopOnePercent, ClassQ1, ClassQ2, ClassQ3, ClassQ4, "",
	}
	types := []string{
		PubTypeResearchArticle, PubTypeReviewArticle, PubTypeCaseReport,
		PubTypeLetterToEditor, PubTypeScopusProceedings, PubTypeUgcCareGroupOne,
	}

	for _, classification := range classifications {
		for _, publicationType := range types {
			claim := paperClaim(mainAndCoAuthors(), models.PaperDetail{
				JournalClassification:  classification,
				PublicationType:        publicationType,
				WasApcPaidByUniversity: true,
			})
			result := CalculateResearchPaperIncentive(claim, "Faculty of Engineering", "")
			require.True(t, result.Success, "classification=%q type=%q", classification, publicationType)
			assert.GreaterOrEqual(t, result.Amount, 0)
		}
	}
}
