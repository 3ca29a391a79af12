package services

import (
	"testing"

	"incentive-portal-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookClaim(detail models.BookDetail, authors ...models.ClaimAuthor) *models.IncentiveClaim {
	if len(authors) == 0 {
		authors = []models.ClaimAuthor{
			{Email: "claimant@paruluniversity.ac.in", Role: RoleFirstAuthor},
		}
	}
	return &models.IncentiveClaim{
		ClaimType:     models.ClaimTypeBook,
		ClaimantEmail: "claimant@paruluniversity.ac.in",
		Authors:       authors,
		BookDetail:    &detail,
	}
}

func TestBookBaseTiers(t *testing.T) {
	cases := []struct {
		name   string
		detail models.BookDetail
		want   int
	}{
		{"national chapter mid tier", models.BookDetail{IsChapter: true, PublisherType: PublisherNational, PageCount: 12}, 2000},
		{"international chapter mid tier", models.BookDetail{IsChapter: true, PublisherType: PublisherInternational, PageCount: 12}, 4000},
		{"international chapter top tier", models.BookDetail{IsChapter: true, PublisherType: PublisherInternational, PageCount: 25}, 6000},
		{"chapter below minimum pages", models.BookDetail{IsChapter: true, PublisherType: PublisherInternational, PageCount: 3}, 0},
		{"scopus chapter flat", models.BookDetail{IsChapter: true, IsScopusIndexed: true, PublisherType: PublisherNational, PageCount: 3}, 6000},
		{"national book mid tier", models.BookDetail{PublisherType: PublisherNational, PageCount: 250}, 10000},
		{"international book top tier", models.BookDetail{PublisherType: PublisherInternational, PageCount: 400}, 30000},
		{"book below minimum pages", models.BookDetail{PublisherType: PublisherNational, PageCount: 80}, 0},
		{"scopus book flat", models.BookDetail{IsScopusIndexed: true, PublisherType: PublisherNational, PageCount: 80}, 18000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := CalculateBookIncentive(bookClaim(tc.detail))
			require.True(t, result.Success)
			assert.Equal(t, tc.want, result.Amount)
		})
	}
}

func TestBookEditorEarnsHalf(t *testing.T) {
	detail := models.BookDetail{PublisherType: PublisherInternational, PageCount: 400}
	claim := bookClaim(detail, models.ClaimAuthor{
		Email: "claimant@paruluniversity.ac.in",
		Role:  RoleEditor,
	})

	result := CalculateBookIncentive(claim)
	require.True(t, result.Success)
	assert.Equal(t, 15000, result.Amount)
}

func TestMultipleChaptersEarnDiminishingSeries(t *testing.T) {
	detail := models.BookDetail{
		IsChapter:       true,
		IsScopusIndexed: true,
		PublisherType:   PublisherNational,
		ChapterCount:    3,
	}

	result := CalculateBookIncentive(bookClaim(detail))
	require.True(t, result.Success)
	// 6000 + 6000/2 + 6000/3
	assert.Equal(t, 11000, result.Amount)
}

func TestChapterSeriesIsCappedAtFullBook(t *testing.T) {
	detail := models.BookDetail{
		IsChapter:       true,
		IsScopusIndexed: true,
		PublisherType:   PublisherNational,
		ChapterCount:    20,
	}

	// The harmonic series over 20 chapters exceeds the Scopus full-book
	// amount, so the cap binds.
	result := CalculateBookIncentive(bookClaim(detail))
	require.True(t, result.Success)
	assert.Equal(t, 18000, result.Amount)
}

func TestBookAmountDividedAcrossInstituteAuthors(t *testing.T) {
	detail := models.BookDetail{
		IsScopusIndexed:       true,
		PublisherType:         PublisherNational,
		PageCount:             150,
		TotalInstituteAuthors: 1,
	}
	claim := bookClaim(detail,
		models.ClaimAuthor{Email: "claimant@paruluniversity.ac.in", Role: RoleFirstAuthor},
	)

	// One internal author in the list plus one in the separate count field.
	result := CalculateBookIncentive(claim)
	require.True(t, result.Success)
	assert.Equal(t, 9000, result.Amount)
}

func TestBookCalculationIsDeterministic(t *testing.T) {
	detail := models.BookDetail{
		IsChapter:     true,
		PublisherType: PublisherInternational,
		PageCount:     15,
		ChapterCount:  4,
	}

	first := CalculateBookIncentive(bookClaim(detail))
	second := CalculateBookIncentive(bookClaim(detail))
	assert.Equal(t, first, second)
}
