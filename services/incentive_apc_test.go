package services

import (
	"testing"

	"incentive-portal-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apcClaim(detail models.ApcDetail, authorCount int) *models.IncentiveClaim {
	var authors []models.ClaimAuthor
	for i := 0; i < authorCount; i++ {
		authors = append(authors, models.ClaimAuthor{Role: RoleCoAuthor})
	}
	if len(authors) > 0 {
		authors[0] = models.ClaimAuthor{
			Email: "claimant@paruluniversity.ac.in",
			Role:  RoleFirstAuthor,
		}
	}
	return &models.IncentiveClaim{
		ClaimType:     models.ClaimTypeApc,
		ClaimantEmail: "claimant@paruluniversity.ac.in",
		Authors:       authors,
		ApcDetail:     &detail,
	}
}

func TestApcRequiresAuthors(t *testing.T) {
	result := CalculateApcIncentive(apcClaim(models.ApcDetail{AmountPaid: 20000}, 0), false)
	require.False(t, result.Success)
	assert.Contains(t, result.Error, "authors")
}

func TestApcQuartileCeilingBinds(t *testing.T) {
	detail := models.ApcDetail{
		IsScopusIndexed: true,
		QRating:         ClassQ1,
		AmountPaid:      50000,
	}

	result := CalculateApcIncentive(apcClaim(detail, 2), false)
	require.True(t, result.Success)
	// min(50000, 40000) split across both authors.
	assert.Equal(t, 20000, result.Amount)
}

func TestApcCeilingIsMaximumNotSum(t *testing.T) {
	detail := models.ApcDetail{
		IsEsciIndexed:     true,
		IsUgcCareGroupOne: true,
		AmountPaid:        30000,
	}

	result := CalculateApcIncentive(apcClaim(detail, 1), false)
	require.True(t, result.Success)
	// ESCI 8000 vs UGC-CARE 5000: the maximum applies, they do not add.
	assert.Equal(t, 8000, result.Amount)
}

func TestApcSpecialFacultyIgnoresAlternativeCeilings(t *testing.T) {
	detail := models.ApcDetail{
		IsEsciIndexed: true,
		AmountPaid:    30000,
	}

	result := CalculateApcIncentive(apcClaim(detail, 1), true)
	require.False(t, result.Success)
	assert.Equal(t, "No applicable policy limit found", result.Error)
}

func TestApcNoPolicyLimitFails(t *testing.T) {
	detail := models.ApcDetail{AmountPaid: 12000}

	result := CalculateApcIncentive(apcClaim(detail, 1), false)
	require.False(t, result.Success)
	assert.Equal(t, "No applicable policy limit found", result.Error)
}

func TestApcIndexedWithoutQuartileIsUncapped(t *testing.T) {
	detail := models.ApcDetail{
		IsWosIndexed: true,
		AmountPaid:   12000,
	}

	result := CalculateApcIncentive(apcClaim(detail, 3), false)
	require.True(t, result.Success)
	assert.Equal(t, 4000, result.Amount)
}

func TestApcBelowCeilingIsNotCapped(t *testing.T) {
	detail := models.ApcDetail{
		IsSciIndexed: true,
		QRating:      ClassQ3,
		AmountPaid:   15000,
	}

	result := CalculateApcIncentive(apcClaim(detail, 1), false)
	require.True(t, result.Success)
	assert.Equal(t, 15000, result.Amount)
}
