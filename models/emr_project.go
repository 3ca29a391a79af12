package models

import (
	"time"
)

// EMR project statuses follow the claim lifecycle.
const (
	EmrRolePrincipalInvestigator = "Principal Investigator"
	EmrRoleCoInvestigator        = "Co-Investigator"
)

// EmrProject records a faculty member's interest in an extramural grant.
// Approved projects feed the EMR category of the ARPS aggregation.
type EmrProject struct {
	ProjectID       int        `gorm:"primaryKey;column:project_id" json:"project_id"`
	UserID          int        `gorm:"column:user_id" json:"user_id"`
	ProjectTitle    string     `gorm:"column:project_title" json:"project_title"`
	FundingAgency   string     `gorm:"column:funding_agency" json:"funding_agency"`
	Scheme          string     `gorm:"column:scheme" json:"scheme"`
	AmountRequested float64    `gorm:"column:amount_requested" json:"amount_requested"`
	AmountSanctioned float64   `gorm:"column:amount_sanctioned" json:"amount_sanctioned"`
	Role            string     `gorm:"column:role" json:"role"`
	Status          string     `gorm:"column:status" json:"status"`
	ApprovedBy      *int       `gorm:"column:approved_by" json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	CreateAt        *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt        *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt        *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (EmrProject) TableName() string {
	return "emr_projects"
}
