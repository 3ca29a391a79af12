// controllers/emr.go - extramural grant interest tracking
package controllers

import (
	"errors"
	"net/http"
	"time"

	"incentive-portal-api/config"
	"incentive-portal-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateEmrProject registers interest in an extramural grant.
func CreateEmrProject(c *gin.Context) {
	var project models.EmrProject
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")
	now := time.Now()
	project.ProjectID = 0
	project.UserID = userID.(int)
	project.Status = models.ClaimStatusPending
	project.CreateAt = &now
	project.UpdateAt = &now

	if err := config.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create EMR project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "EMR project registered successfully",
		"data":    project,
	})
}

// GetEmrProjects lists the caller's EMR projects; admins see everyone's.
func GetEmrProjects(c *gin.Context) {
	userID, _ := c.Get("userID")
	roleID, _ := c.Get("roleID")

	query := config.DB.Preload("User").Where("delete_at IS NULL")
	if roleID.(int) != RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var projects []models.EmrProject
	if err := query.Order("create_at DESC").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch EMR projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    projects,
		"total":   len(projects),
	})
}

func findEmrProject(c *gin.Context) (*models.EmrProject, bool) {
	id := c.Param("id")

	var project models.EmrProject
	if err := config.DB.Where("project_id = ? AND delete_at IS NULL", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "EMR project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch EMR project"})
		}
		return nil, false
	}
	return &project, true
}

// ApproveEmrProject marks an EMR project approved; it then counts toward the
// ARPS EMR category for the window its approval falls in.
func ApproveEmrProject(c *gin.Context) {
	project, ok := findEmrProject(c)
	if !ok {
		return
	}

	if project.Status != models.ClaimStatusPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "EMR project has already been decided"})
		return
	}

	adminID, _ := c.Get("userID")
	approver := adminID.(int)
	now := time.Now()
	project.Status = models.ClaimStatusApproved
	project.ApprovedBy = &approver
	project.ApprovedAt = &now
	project.UpdateAt = &now

	if err := config.DB.Save(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve EMR project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "EMR project approved successfully",
		"data":    project,
	})
}

// DeleteEmrProject soft deletes a pending EMR project owned by the caller.
func DeleteEmrProject(c *gin.Context) {
	userID, _ := c.Get("userID")

	project, ok := findEmrProject(c)
	if !ok {
		return
	}

	if project.UserID != userID.(int) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your EMR project"})
		return
	}
	if project.Status != models.ClaimStatusPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending EMR projects can be deleted"})
		return
	}

	now := time.Now()
	project.DeleteAt = &now
	if err := config.DB.Save(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete EMR project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "EMR project deleted successfully",
	})
}
