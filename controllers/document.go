// controllers/document.go - supporting documents for claims
package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"incentive-portal-api/config"
	"incentive-portal-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func uploadPath() string {
	path := os.Getenv("UPLOAD_PATH")
	if path == "" {
		path = "./uploads"
	}
	return path
}

// UploadClaimDocument stores a supporting file for a claim owned by the
// caller.
func UploadClaimDocument(c *gin.Context) {
	claim, ok := findClaimForCaller(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	if file.Size > 20<<20 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds 20MB limit"})
		return
	}

	storedName := uuid.NewString() + filepath.Ext(file.Filename)
	storedPath := filepath.Join(uploadPath(), storedName)
	if err := c.SaveUploadedFile(file, storedPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	userID, _ := c.Get("userID")
	now := time.Now()
	document := models.ClaimDocument{
		ClaimID:      claim.ClaimID,
		OriginalName: file.Filename,
		StoredPath:   storedPath,
		FileSize:     file.Size,
		MimeType:     file.Header.Get("Content-Type"),
		UploadedBy:   userID.(int),
		UploadedAt:   now,
		CreateAt:     now,
		UpdateAt:     now,
	}

	if !document.IsValidDocumentType() {
		os.Remove(storedPath)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
		return
	}

	if err := config.DB.Create(&document).Error; err != nil {
		os.Remove(storedPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Document uploaded successfully",
		"data":    document,
	})
}

// GetClaimDocuments lists the documents attached to a claim.
func GetClaimDocuments(c *gin.Context) {
	claim, ok := findClaimForCaller(c)
	if !ok {
		return
	}

	var documents []models.ClaimDocument
	if err := config.DB.
		Where("claim_id = ? AND delete_at IS NULL", claim.ClaimID).
		Order("uploaded_at").
		Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    documents,
		"total":   len(documents),
	})
}

// DownloadClaimDocument streams a stored document back to the caller.
func DownloadClaimDocument(c *gin.Context) {
	userID, _ := c.Get("userID")
	roleID, _ := c.Get("roleID")

	var document models.ClaimDocument
	if err := config.DB.
		Where("document_id = ? AND delete_at IS NULL", c.Param("document_id")).
		First(&document).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch document"})
		}
		return
	}

	if roleID.(int) != RoleAdmin && document.UploadedBy != userID.(int) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your document"})
		return
	}

	c.FileAttachment(document.StoredPath, document.OriginalName)
}
