package models

import (
	"time"
)

// Claim types accepted by the incentive engine.
const (
	ClaimTypeResearchPaper = "Research Papers"
	ClaimTypeBook          = "Books"
	ClaimTypeApc           = "Seed Money for APC"
	ClaimTypeConference    = "Conference Presentations"
	ClaimTypeMembership    = "Membership of Professional Bodies"
	ClaimTypePatent        = "Patents"
)

// Claim statuses.
const (
	ClaimStatusPending  = "pending"
	ClaimStatusApproved = "approved"
	ClaimStatusRejected = "rejected"
)

// IncentiveClaim is the generic claim envelope. Exactly one of the detail
// relations is populated, selected by ClaimType.
type IncentiveClaim struct {
	ClaimID             int        `gorm:"primaryKey;column:claim_id" json:"claim_id"`
	ClaimNumber         string     `gorm:"column:claim_number;unique" json:"claim_number"`
	UserID              int        `gorm:"column:user_id" json:"user_id"`
	ClaimantEmail       string     `gorm:"column:claimant_email" json:"claimant_email"`
	ClaimType           string     `gorm:"column:claim_type" json:"claim_type"`
	Status              string     `gorm:"column:status" json:"status"`
	CalculatedIncentive int        `gorm:"column:calculated_incentive" json:"calculated_incentive"`
	CalculationNote     string     `gorm:"column:calculation_note" json:"calculation_note,omitempty"`
	ApprovedBy          *int       `gorm:"column:approved_by" json:"approved_by,omitempty"`
	ApprovedAt          *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	RejectionReason     string     `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
	CreateAt            *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt            *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt            *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	User             *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Authors          []ClaimAuthor     `gorm:"foreignKey:ClaimID" json:"authors,omitempty"`
	PaperDetail      *PaperDetail      `gorm:"foreignKey:ClaimID" json:"paper_detail,omitempty"`
	BookDetail       *BookDetail       `gorm:"foreignKey:ClaimID" json:"book_detail,omitempty"`
	ApcDetail        *ApcDetail        `gorm:"foreignKey:ClaimID" json:"apc_detail,omitempty"`
	ConferenceDetail *ConferenceDetail `gorm:"foreignKey:ClaimID" json:"conference_detail,omitempty"`
	MembershipDetail *MembershipDetail `gorm:"foreignKey:ClaimID" json:"membership_detail,omitempty"`
	PatentDetail     *PatentDetail     `gorm:"foreignKey:ClaimID" json:"patent_detail,omitempty"`
	Inventors        []PatentInventor  `gorm:"foreignKey:ClaimID" json:"inventors,omitempty"`
}

// ClaimAuthor is one entry of a claim's author list. Only authors with
// IsExternal=false are affiliated with the university and eligible for a
// share of the incentive pool.
type ClaimAuthor struct {
	AuthorID   int    `gorm:"primaryKey;column:author_id" json:"author_id"`
	ClaimID    int    `gorm:"column:claim_id" json:"claim_id"`
	UID        string `gorm:"column:uid" json:"uid"`
	Email      string `gorm:"column:email" json:"email"`
	Name       string `gorm:"column:name" json:"name"`
	Role       string `gorm:"column:role" json:"role"`
	IsExternal bool   `gorm:"column:is_external" json:"is_external"`
	Status     string `gorm:"column:status" json:"status"`
}

// PaperDetail holds the attributes of a research-paper claim.
type PaperDetail struct {
	PaperDetailID          int    `gorm:"primaryKey;column:paper_detail_id" json:"paper_detail_id"`
	ClaimID                int    `gorm:"column:claim_id" json:"claim_id"`
	ArticleTitle           string `gorm:"column:article_title" json:"article_title"`
	JournalName            string `gorm:"column:journal_name" json:"journal_name"`
	JournalClassification  string `gorm:"column:journal_classification" json:"journal_classification"`
	PublicationType        string `gorm:"column:publication_type" json:"publication_type"`
	WosType                string `gorm:"column:wos_type" json:"wos_type"`
	Doi                    string `gorm:"column:doi" json:"doi"`
	WasApcPaidByUniversity bool   `gorm:"column:was_apc_paid_by_university" json:"was_apc_paid_by_university"`
	IsPuNameInPublication  *bool  `gorm:"column:is_pu_name_in_publication" json:"is_pu_name_in_publication,omitempty"`
}

// BookDetail holds the attributes of a book or book-chapter claim.
type BookDetail struct {
	BookDetailID          int    `gorm:"primaryKey;column:book_detail_id" json:"book_detail_id"`
	ClaimID               int    `gorm:"column:claim_id" json:"claim_id"`
	BookTitle             string `gorm:"column:book_title" json:"book_title"`
	IsChapter             bool   `gorm:"column:is_chapter" json:"is_chapter"`
	IsScopusIndexed       bool   `gorm:"column:is_scopus_indexed" json:"is_scopus_indexed"`
	PublisherType         string `gorm:"column:publisher_type" json:"publisher_type"`
	PageCount             int    `gorm:"column:page_count" json:"page_count"`
	ChapterCount          int    `gorm:"column:chapter_count" json:"chapter_count"`
	TotalInstituteAuthors int    `gorm:"column:total_institute_authors" json:"total_institute_authors"`
}

// ApcDetail holds the attributes of a seed-money-for-APC claim.
type ApcDetail struct {
	ApcDetailID       int     `gorm:"primaryKey;column:apc_detail_id" json:"apc_detail_id"`
	ClaimID           int     `gorm:"column:claim_id" json:"claim_id"`
	JournalName       string  `gorm:"column:journal_name" json:"journal_name"`
	IsScopusIndexed   bool    `gorm:"column:is_scopus_indexed" json:"is_scopus_indexed"`
	IsWosIndexed      bool    `gorm:"column:is_wos_indexed" json:"is_wos_indexed"`
	IsSciIndexed      bool    `gorm:"column:is_sci_indexed" json:"is_sci_indexed"`
	IsEsciIndexed     bool    `gorm:"column:is_esci_indexed" json:"is_esci_indexed"`
	IsUgcCareGroupOne bool    `gorm:"column:is_ugc_care_group_one" json:"is_ugc_care_group_one"`
	QRating           string  `gorm:"column:q_rating" json:"q_rating"`
	AmountPaid        float64 `gorm:"column:amount_paid" json:"amount_paid"`
}

// ConferenceDetail holds the attributes of a conference-presentation claim.
type ConferenceDetail struct {
	ConferenceDetailID      int     `gorm:"primaryKey;column:conference_detail_id" json:"conference_detail_id"`
	ClaimID                 int     `gorm:"column:claim_id" json:"claim_id"`
	ConferenceName          string  `gorm:"column:conference_name" json:"conference_name"`
	OrganizerName           string  `gorm:"column:organizer_name" json:"organizer_name"`
	Mode                    string  `gorm:"column:mode" json:"mode"`
	ConferenceType          string  `gorm:"column:conference_type" json:"conference_type"`
	ConferenceVenue         string  `gorm:"column:conference_venue" json:"conference_venue"`
	PresentationType        string  `gorm:"column:presentation_type" json:"presentation_type"`
	OnlinePresentationOrder string  `gorm:"column:online_presentation_order" json:"online_presentation_order"`
	RegistrationFee         float64 `gorm:"column:registration_fee" json:"registration_fee"`
	TravelExpenses          float64 `gorm:"column:travel_expenses" json:"travel_expenses"`
}

// MembershipDetail holds the attributes of a professional-body membership claim.
type MembershipDetail struct {
	MembershipDetailID int     `gorm:"primaryKey;column:membership_detail_id" json:"membership_detail_id"`
	ClaimID            int     `gorm:"column:claim_id" json:"claim_id"`
	BodyName           string  `gorm:"column:body_name" json:"body_name"`
	AmountPaid         float64 `gorm:"column:amount_paid" json:"amount_paid"`
}

// PatentDetail holds the attributes of a patent claim.
type PatentDetail struct {
	PatentDetailID       int    `gorm:"primaryKey;column:patent_detail_id" json:"patent_detail_id"`
	ClaimID              int    `gorm:"column:claim_id" json:"claim_id"`
	PatentTitle          string `gorm:"column:patent_title" json:"patent_title"`
	ApplicationNumber    string `gorm:"column:application_number" json:"application_number"`
	Status               string `gorm:"column:status" json:"status"`
	FiledInInstituteName bool   `gorm:"column:filed_in_institute_name" json:"filed_in_institute_name"`
	IsSoleApplicant      bool   `gorm:"column:is_sole_applicant" json:"is_sole_applicant"`
}

// PatentInventor is one entry of a patent claim's inventor list.
type PatentInventor struct {
	InventorID int    `gorm:"primaryKey;column:inventor_id" json:"inventor_id"`
	ClaimID    int    `gorm:"column:claim_id" json:"claim_id"`
	Name       string `gorm:"column:name" json:"name"`
	Email      string `gorm:"column:email" json:"email"`
	IsExternal bool   `gorm:"column:is_external" json:"is_external"`
}

// TableName overrides
func (IncentiveClaim) TableName() string {
	return "incentive_claims"
}

func (ClaimAuthor) TableName() string {
	return "claim_authors"
}

func (PaperDetail) TableName() string {
	return "claim_paper_details"
}

func (BookDetail) TableName() string {
	return "claim_book_details"
}

func (ApcDetail) TableName() string {
	return "claim_apc_details"
}

func (ConferenceDetail) TableName() string {
	return "claim_conference_details"
}

func (MembershipDetail) TableName() string {
	return "claim_membership_details"
}

func (PatentDetail) TableName() string {
	return "claim_patent_details"
}

func (PatentInventor) TableName() string {
	return "patent_inventors"
}
