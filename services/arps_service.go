// services/arps_service.go - Annual Research Performance Score aggregation
package services

import (
	"time"

	"incentive-portal-api/models"

	"gorm.io/gorm"
)

// ArpsCategoryScore is one category of an ARPS record. Final is the weighted
// score clamped to the category cap.
type ArpsCategoryScore struct {
	Raw      float64 `json:"raw"`
	Weighted float64 `json:"weighted"`
	Final    float64 `json:"final"`
}

// ArpsResult is the aggregate score for one user and evaluation year.
type ArpsResult struct {
	UserID       int               `json:"user_id"`
	Year         int               `json:"year"`
	WindowStart  time.Time         `json:"window_start"`
	WindowEnd    time.Time         `json:"window_end"`
	Publications ArpsCategoryScore `json:"publications"`
	Patents      ArpsCategoryScore `json:"patents"`
	Emr          ArpsCategoryScore `json:"emr"`
	TotalArps    float64           `json:"total_arps"`
	Grade        string            `json:"grade"`
}

// PaperScoreItem is the slice of an approved paper claim the scorer needs.
type PaperScoreItem struct {
	JournalClassification string
	ClaimantRole          string
}

// PatentScoreItem is the slice of an approved patent claim the scorer needs.
type PatentScoreItem struct {
	Status          string
	IsSoleApplicant bool
}

// EmrScoreItem is the slice of an approved EMR project the scorer needs.
type EmrScoreItem struct {
	Role string
}

// ArpsService aggregates approved claims and projects into ARPS records. It
// only reads; ARPS is never persisted as the source of truth for a claim's
// incentive.
type ArpsService struct {
	db *gorm.DB
}

func NewArpsService(db *gorm.DB) *ArpsService {
	return &ArpsService{db: db}
}

// EvaluationWindow returns the ARPS window for a year: June 1 of the year to
// May 31 of the next.
func EvaluationWindow(year int) (time.Time, time.Time) {
	start := time.Date(year, time.June, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(year+1, time.June, 1, 0, 0, 0, 0, time.Local).Add(-time.Second)
	return start, end
}

// ForUser collects the user's approved claims and EMR projects whose approval
// falls in the evaluation window and scores them.
func (s *ArpsService) ForUser(userID, year int) (*ArpsResult, error) {
	start, end := EvaluationWindow(year)

	var claims []models.IncentiveClaim
	if err := s.db.
		Preload("Authors").
		Preload("PaperDetail").
		Preload("PatentDetail").
		Where("user_id = ? AND status = ? AND delete_at IS NULL", userID, models.ClaimStatusApproved).
		Where("approved_at BETWEEN ? AND ?", start, end).
		Where("claim_type IN ?", []string{models.ClaimTypeResearchPaper, models.ClaimTypePatent}).
		Find(&claims).Error; err != nil {
		return nil, err
	}

	var projects []models.EmrProject
	if err := s.db.
		Where("user_id = ? AND status = ? AND delete_at IS NULL", userID, models.ClaimStatusApproved).
		Where("approved_at BETWEEN ? AND ?", start, end).
		Find(&projects).Error; err != nil {
		return nil, err
	}

	var papers []PaperScoreItem
	var patents []PatentScoreItem
	for _, claim := range claims {
		switch claim.ClaimType {
		case models.ClaimTypeResearchPaper:
			if claim.PaperDetail == nil {
				continue
			}
			role := ""
			if claimant, found := findClaimant(claim.Authors, claim.ClaimantEmail); found {
				role = claimant.Role
			}
			papers = append(papers, PaperScoreItem{
				JournalClassification: claim.PaperDetail.JournalClassification,
				ClaimantRole:          role,
			})
		case models.ClaimTypePatent:
			if claim.PatentDetail == nil {
				continue
			}
			patents = append(patents, PatentScoreItem{
				Status:          claim.PatentDetail.Status,
				IsSoleApplicant: claim.PatentDetail.IsSoleApplicant,
			})
		}
	}

	var emr []EmrScoreItem
	for _, p := range projects {
		emr = append(emr, EmrScoreItem{Role: p.Role})
	}

	result := ComputeArps(papers, patents, emr)
	result.UserID = userID
	result.Year = year
	result.WindowStart = start
	result.WindowEnd = end
	return &result, nil
}

// ComputeArps is the pure aggregation: raw per-category sums, fixed weights,
// per-category caps, total and grade.
func ComputeArps(papers []PaperScoreItem, patents []PatentScoreItem, emr []EmrScoreItem) ArpsResult {
	var result ArpsResult

	for _, p := range papers {
		result.Publications.Raw += scorePaperItem(p)
	}
	for _, p := range patents {
		result.Patents.Raw += scorePatentItem(p)
	}
	for _, e := range emr {
		result.Emr.Raw += scoreEmrItem(e)
	}

	finalize(&result.Publications, arpsPublicationWeight, arpsPublicationCap)
	finalize(&result.Patents, arpsPatentWeight, arpsPatentCap)
	finalize(&result.Emr, arpsEmrWeight, arpsEmrCap)

	result.TotalArps = result.Publications.Final + result.Patents.Final + result.Emr.Final
	result.Grade = arpsGradeForScore(result.TotalArps)
	return result
}

func finalize(score *ArpsCategoryScore, weight, limit float64) {
	score.Weighted = score.Raw * weight
	score.Final = score.Weighted
	if score.Final > limit {
		score.Final = limit
	}
}

func scorePaperItem(item PaperScoreItem) float64 {
	points, ok := arpsQuartilePoints[item.JournalClassification]
	if !ok {
		points = arpsOtherIndexedPoints
	}

	multiplier, ok := arpsRoleMultipliers[item.ClaimantRole]
	if !ok {
		multiplier = arpsDefaultRoleMultiplier
	}
	return points * multiplier
}

func scorePatentItem(item PatentScoreItem) float64 {
	points := arpsPatentBasePoints[item.Status]
	if !item.IsSoleApplicant {
		points *= arpsJointApplicantMultiplier
	}
	return points
}

func scoreEmrItem(item EmrScoreItem) float64 {
	if item.Role == models.EmrRolePrincipalInvestigator {
		return arpsEmrPiPoints
	}
	return arpsEmrCoPoints
}
