package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluationWindowRunsJuneToMay(t *testing.T) {
	start, end := EvaluationWindow(2024)

	assert.Equal(t, time.June, start.Month())
	assert.Equal(t, 2024, start.Year())
	assert.Equal(t, time.May, end.Month())
	assert.Equal(t, 2025, end.Year())
	assert.Equal(t, 31, end.Day())
}

func TestComputeArpsWeightsAndCaps(t *testing.T) {
	papers := []PaperScoreItem{
		{JournalClassification: ClassQ1, ClaimantRole: RoleFirstAndCorresponding},
		{JournalClassification: ClassQ2, ClaimantRole: RoleCoAuthor},
	}
	patents := []PatentScoreItem{
		{Status: PatentStatusGranted, IsSoleApplicant: true},
	}
	emr := []EmrScoreItem{
		{Role: "Principal Investigator"},
	}

	result := ComputeArps(papers, patents, emr)

	// 20*1.0 + 15*0.5
	assert.InDelta(t, 27.5, result.Publications.Raw, 1e-9)
	assert.InDelta(t, 13.75, result.Publications.Weighted, 1e-9)
	assert.InDelta(t, 13.75, result.Publications.Final, 1e-9)

	assert.InDelta(t, 30, result.Patents.Raw, 1e-9)
	assert.InDelta(t, 4.5, result.Patents.Final, 1e-9)

	assert.InDelta(t, 20, result.Emr.Raw, 1e-9)
	assert.InDelta(t, 3, result.Emr.Final, 1e-9)

	assert.InDelta(t, result.Publications.Final+result.Patents.Final+result.Emr.Final, result.TotalArps, 1e-9)
}

func TestComputeArpsCategoryCapsBind(t *testing.T) {
	var papers []PaperScoreItem
	for i := 0; i < 20; i++ {
		papers = append(papers, PaperScoreItem{
			JournalClassification: ClassNatureScienceLancet,
			ClaimantRole:          RoleFirstAndCorresponding,
		})
	}
	var patents []PatentScoreItem
	for i := 0; i < 20; i++ {
		patents = append(patents, PatentScoreItem{Status: PatentStatusGranted, IsSoleApplicant: true})
	}
	var emr []EmrScoreItem
	for i := 0; i < 20; i++ {
		emr = append(emr, EmrScoreItem{Role: "Principal Investigator"})
	}

	result := ComputeArps(papers, patents, emr)

	assert.Greater(t, result.Publications.Weighted, arpsPublicationCap)
	assert.Equal(t, arpsPublicationCap, result.Publications.Final)
	assert.Equal(t, arpsPatentCap, result.Patents.Final)
	assert.Equal(t, arpsEmrCap, result.Emr.Final)
	assert.InDelta(t, 80, result.TotalArps, 1e-9)
	assert.Equal(t, "A+", result.Grade)
}

func TestArpsJointApplicantPatentMultiplier(t *testing.T) {
	sole := ComputeArps(nil, []PatentScoreItem{{Status: PatentStatusGranted, IsSoleApplicant: true}}, nil)
	joint := ComputeArps(nil, []PatentScoreItem{{Status: PatentStatusGranted}}, nil)

	assert.InDelta(t, 30, sole.Patents.Raw, 1e-9)
	assert.InDelta(t, 24, joint.Patents.Raw, 1e-9)
}

func TestArpsUnlistedClassificationScoresAsOtherIndexed(t *testing.T) {
	result := ComputeArps([]PaperScoreItem{
		{JournalClassification: "", ClaimantRole: RoleFirstAuthor},
	}, nil, nil)

	assert.InDelta(t, arpsOtherIndexedPoints*0.9, result.Publications.Raw, 1e-9)
}

func TestArpsGradeThresholds(t *testing.T) {
	cases := []struct {
		total float64
		want  string
	}{
		{80, "A+"},
		{70, "A+"},
		{60, "A"},
		{45, "B+"},
		{30, "B"},
		{12, "C"},
		{3, "D"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, arpsGradeForScore(tc.total), "total=%v", tc.total)
	}
}

func TestComputeArpsEmptyInputs(t *testing.T) {
	result := ComputeArps(nil, nil, nil)

	require.Zero(t, result.TotalArps)
	assert.Equal(t, "D", result.Grade)
}

func TestComputeArpsIsDeterministic(t *testing.T) {
	papers := []PaperScoreItem{{JournalClassification: ClassQ3, ClaimantRole: RoleCoAuthor}}

	first := ComputeArps(papers, nil, nil)
	second := ComputeArps(papers, nil, nil)
	assert.Equal(t, first, second)
}
