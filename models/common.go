package models

import "time"

// ClaimDocument represents an uploaded supporting file for a claim.
type ClaimDocument struct {
	DocumentID   int        `gorm:"primaryKey;column:document_id" json:"document_id"`
	ClaimID      int        `gorm:"column:claim_id" json:"claim_id"`
	OriginalName string     `gorm:"column:original_name" json:"original_name"`
	StoredPath   string     `gorm:"column:stored_path" json:"stored_path"`
	FileSize     int64      `gorm:"column:file_size" json:"file_size"`
	MimeType     string     `gorm:"column:mime_type" json:"mime_type"`
	UploadedBy   int        `gorm:"column:uploaded_by" json:"uploaded_by"`
	UploadedAt   time.Time  `gorm:"column:uploaded_at" json:"uploaded_at"`
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt     time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Uploader User `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
}

// Notification represents an in-app notification row; claim decisions also
// go out by email via config.SendMail.
type Notification struct {
	NotificationID int        `gorm:"primaryKey;column:notification_id" json:"notification_id"`
	UserID         int        `gorm:"column:user_id" json:"user_id"`
	Title          string     `gorm:"column:title" json:"title"`
	Message        string     `gorm:"column:message" json:"message"`
	IsRead         bool       `gorm:"column:is_read" json:"is_read"`
	RelatedClaimID *int       `gorm:"column:related_claim_id" json:"related_claim_id,omitempty"`
	CreateAt       time.Time  `gorm:"column:create_at" json:"create_at"`
	DeleteAt       *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides
func (ClaimDocument) TableName() string {
	return "claim_documents"
}

func (Notification) TableName() string {
	return "notifications"
}

// Helper methods for file validation
func (d *ClaimDocument) IsValidDocumentType() bool {
	validTypes := []string{
		"application/pdf",
		"image/jpeg",
		"image/png",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	for _, validType := range validTypes {
		if d.MimeType == validType {
			return true
		}
	}
	return false
}
