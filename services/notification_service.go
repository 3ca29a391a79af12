// services/notification_service.go - claim decision notifications
package services

import (
	"fmt"
	"log"
	"time"

	"incentive-portal-api/config"
	"incentive-portal-api/models"

	"gorm.io/gorm"
)

// NotifyClaimDecision records an in-app notification and emails the claimant
// after an approve/reject decision. Email failures are logged, not returned:
// the decision itself has already been persisted.
func NotifyClaimDecision(db *gorm.DB, claim *models.IncentiveClaim, user *models.User) {
	var title, body string
	switch claim.Status {
	case models.ClaimStatusApproved:
		title = "Incentive claim approved"
		body = fmt.Sprintf(
			"Your claim %s (%s) has been approved. Calculated incentive: INR %d.",
			claim.ClaimNumber, claim.ClaimType, claim.CalculatedIncentive,
		)
	case models.ClaimStatusRejected:
		title = "Incentive claim rejected"
		body = fmt.Sprintf(
			"Your claim %s (%s) has been rejected. Reason: %s",
			claim.ClaimNumber, claim.ClaimType, claim.RejectionReason,
		)
	default:
		return
	}

	notification := models.Notification{
		UserID:         claim.UserID,
		Title:          title,
		Message:        body,
		RelatedClaimID: &claim.ClaimID,
		CreateAt:       time.Now(),
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("Warning: failed to store notification for claim %s: %v", claim.ClaimNumber, err)
	}

	if user == nil || user.Email == "" {
		return
	}

	html := fmt.Sprintf("<p>Dear %s %s,</p><p>%s</p><p>Research Administration Portal</p>",
		user.UserFname, user.UserLname, body)
	if err := config.SendMail([]string{user.Email}, title, html); err != nil {
		log.Printf("Warning: failed to send decision email for claim %s: %v", claim.ClaimNumber, err)
	}
}
