// controllers/claim_preview.go - dry-run incentive calculation
package controllers

import (
	"net/http"

	"incentive-portal-api/services"

	"github.com/gin-gonic/gin"
)

// PreviewClaimIncentive runs the calculator for a claim payload without
// persisting anything, so the form can show the expected amount before
// submission.
func PreviewClaimIncentive(c *gin.Context) {
	var req CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := loadCurrentUser(c)
	if !ok {
		return
	}

	claim := req.toClaim(user)
	result := services.CalculateClaimIncentive(&claim, user.Faculty.FacultyName, user.Designation)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{
		"success":     result.Success,
		"claim_type":  claim.ClaimType,
		"calculation": result,
	})
}

// GetIncentivePolicy exposes the in-code policy tables read-only for
// auditability.
func GetIncentivePolicy(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.PolicySnapshot(),
	})
}
