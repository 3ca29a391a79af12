// controllers/claim.go - incentive claim lifecycle
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"incentive-portal-api/config"
	"incentive-portal-api/models"
	"incentive-portal-api/services"
	"incentive-portal-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateClaimRequest carries the claim envelope plus the type-specific
// detail; exactly one detail block must match the claim type.
type CreateClaimRequest struct {
	ClaimType        string                   `json:"claim_type" binding:"required"`
	Authors          []models.ClaimAuthor     `json:"authors"`
	Inventors        []models.PatentInventor  `json:"inventors"`
	PaperDetail      *models.PaperDetail      `json:"paper_detail"`
	BookDetail       *models.BookDetail       `json:"book_detail"`
	ApcDetail        *models.ApcDetail        `json:"apc_detail"`
	ConferenceDetail *models.ConferenceDetail `json:"conference_detail"`
	MembershipDetail *models.MembershipDetail `json:"membership_detail"`
	PatentDetail     *models.PatentDetail     `json:"patent_detail"`
}

func (r *CreateClaimRequest) validate() string {
	for i := range r.Authors {
		r.Authors[i].Name = utils.SanitizeInput(r.Authors[i].Name)
		r.Authors[i].Email = utils.SanitizeInput(r.Authors[i].Email)
		if r.Authors[i].Email != "" && !utils.ValidateEmail(r.Authors[i].Email) {
			return "Invalid author email: " + r.Authors[i].Email
		}
	}
	for i := range r.Inventors {
		r.Inventors[i].Name = utils.SanitizeInput(r.Inventors[i].Name)
	}
	return ""
}

func (r *CreateClaimRequest) toClaim(user models.User) models.IncentiveClaim {
	return models.IncentiveClaim{
		ClaimNumber:      "CLM-" + strings.ToUpper(uuid.NewString()[:8]),
		UserID:           user.UserID,
		ClaimantEmail:    user.Email,
		ClaimType:        r.ClaimType,
		Status:           models.ClaimStatusPending,
		Authors:          r.Authors,
		Inventors:        r.Inventors,
		PaperDetail:      r.PaperDetail,
		BookDetail:       r.BookDetail,
		ApcDetail:        r.ApcDetail,
		ConferenceDetail: r.ConferenceDetail,
		MembershipDetail: r.MembershipDetail,
		PatentDetail:     r.PatentDetail,
	}
}

func loadCurrentUser(c *gin.Context) (models.User, bool) {
	userID, _ := c.Get("userID")

	var user models.User
	if err := config.DB.Preload("Faculty").
		Where("user_id = ? AND delete_at IS NULL", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return user, false
	}
	return user, true
}

// CreateClaim stores a new incentive claim. The matching calculator runs at
// submission time and its amount is persisted as calculated_incentive; ARPS
// never recomputes it.
func CreateClaim(c *gin.Context) {
	var req CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	user, ok := loadCurrentUser(c)
	if !ok {
		return
	}

	claim := req.toClaim(user)

	result := services.CalculateClaimIncentive(&claim, user.Faculty.FacultyName, user.Designation)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   result.Error,
		})
		return
	}

	claim.CalculatedIncentive = result.Amount
	claim.CalculationNote = result.Error
	now := time.Now()
	claim.CreateAt = &now
	claim.UpdateAt = &now

	if err := config.DB.Create(&claim).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create claim"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Claim submitted successfully",
		"data":        claim,
		"calculation": result,
	})
}

// GetClaims lists the caller's claims; admins see everyone's.
func GetClaims(c *gin.Context) {
	userID, _ := c.Get("userID")
	roleID, _ := c.Get("roleID")

	query := config.DB.Preload("Authors").Preload("User").
		Where("delete_at IS NULL")

	if roleID.(int) != RoleAdmin {
		query = query.Where("user_id = ?", userID)
	} else if filter := c.Query("user_id"); filter != "" {
		query = query.Where("user_id = ?", filter)
	}

	if claimType := c.Query("claim_type"); claimType != "" {
		query = query.Where("claim_type = ?", claimType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var claims []models.IncentiveClaim
	if err := query.Order("create_at DESC").Find(&claims).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch claims"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    claims,
		"total":   len(claims),
	})
}

func findClaimForCaller(c *gin.Context) (*models.IncentiveClaim, bool) {
	userID, _ := c.Get("userID")
	roleID, _ := c.Get("roleID")
	id := c.Param("id")

	query := config.DB.
		Preload("User").
		Preload("Authors").
		Preload("Inventors").
		Preload("PaperDetail").
		Preload("BookDetail").
		Preload("ApcDetail").
		Preload("ConferenceDetail").
		Preload("MembershipDetail").
		Preload("PatentDetail").
		Where("claim_id = ? AND delete_at IS NULL", id)

	if roleID.(int) != RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var claim models.IncentiveClaim
	if err := query.First(&claim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Claim not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch claim"})
		}
		return nil, false
	}
	return &claim, true
}

// GetClaim returns a single claim with its detail block.
func GetClaim(c *gin.Context) {
	claim, ok := findClaimForCaller(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    claim,
	})
}

// DeleteClaim soft deletes a pending claim.
func DeleteClaim(c *gin.Context) {
	claim, ok := findClaimForCaller(c)
	if !ok {
		return
	}

	if claim.Status != models.ClaimStatusPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending claims can be deleted"})
		return
	}

	now := time.Now()
	claim.DeleteAt = &now
	if err := config.DB.Save(claim).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete claim"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Claim deleted successfully",
	})
}

// UpdateClaim replaces a pending claim's attributes and recalculates the
// incentive. Decided claims are immutable.
func UpdateClaim(c *gin.Context) {
	claim, ok := findClaimForCaller(c)
	if !ok {
		return
	}

	if claim.Status != models.ClaimStatusPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending claims can be updated"})
		return
	}

	var req CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ClaimType != claim.ClaimType {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Claim type cannot be changed"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	user, ok := loadCurrentUser(c)
	if !ok {
		return
	}

	updated := req.toClaim(user)
	updated.ClaimID = claim.ClaimID
	updated.ClaimNumber = claim.ClaimNumber
	updated.Status = claim.Status
	updated.CreateAt = claim.CreateAt

	result := services.CalculateClaimIncentive(&updated, user.Faculty.FacultyName, user.Designation)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   result.Error,
		})
		return
	}

	updated.CalculatedIncentive = result.Amount
	updated.CalculationNote = result.Error
	now := time.Now()
	updated.UpdateAt = &now

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// Replace dependent rows wholesale; partial edits are not supported.
		dependents := []interface{}{
			&models.ClaimAuthor{}, &models.PatentInventor{},
			&models.PaperDetail{}, &models.BookDetail{}, &models.ApcDetail{},
			&models.ConferenceDetail{}, &models.MembershipDetail{}, &models.PatentDetail{},
		}
		for _, dependent := range dependents {
			if err := tx.Where("claim_id = ?", claim.ClaimID).Delete(dependent).Error; err != nil {
				return err
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&updated).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update claim"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Claim updated successfully",
		"data":        updated,
		"calculation": result,
	})
}

// ApproveClaim marks a pending claim approved and notifies the claimant.
func ApproveClaim(c *gin.Context) {
	claim, ok := findClaimForCaller(c)
	if !ok {
		return
	}

	if claim.Status != models.ClaimStatusPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Claim has already been decided"})
		return
	}

	adminID, _ := c.Get("userID")
	approver := adminID.(int)
	now := time.Now()
	claim.Status = models.ClaimStatusApproved
	claim.ApprovedBy = &approver
	claim.ApprovedAt = &now
	claim.UpdateAt = &now

	if err := config.DB.Save(claim).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve claim"})
		return
	}

	services.NotifyClaimDecision(config.DB, claim, claim.User)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Claim approved successfully",
		"data":    claim,
	})
}

// RejectClaim marks a pending claim rejected with a reason.
func RejectClaim(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claim, ok := findClaimForCaller(c)
	if !ok {
		return
	}

	if claim.Status != models.ClaimStatusPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Claim has already been decided"})
		return
	}

	now := time.Now()
	claim.Status = models.ClaimStatusRejected
	claim.RejectionReason = req.Reason
	claim.UpdateAt = &now

	if err := config.DB.Save(claim).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject claim"})
		return
	}

	services.NotifyClaimDecision(config.DB, claim, claim.User)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Claim rejected",
		"data":    claim,
	})
}
