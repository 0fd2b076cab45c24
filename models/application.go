package models

import "time"

// Application status values. Any status may be overwritten with any other;
// there is no guarded transition graph and no history of prior values.
const (
	StatusPending     = "pending"
	StatusUnderReview = "under_review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
)

// ValidStatuses lists every accepted application status.
var ValidStatuses = []string{StatusPending, StatusUnderReview, StatusApproved, StatusRejected}

// IsValidStatus reports whether s is one of the four application statuses.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ScholarshipApplication represents one submitted scholarship application.
// Rows are created once by the public intake flow and mutated only by the
// admin status update; they are never deleted.
type ScholarshipApplication struct {
	ApplicationID int    `gorm:"primaryKey;column:application_id" json:"application_id"`
	FullName      string `gorm:"column:full_name" json:"full_name"`
	Email         string `gorm:"column:email" json:"email"`
	Phone         string `gorm:"column:phone" json:"phone"`
	CommunityName string `gorm:"column:community_name" json:"community_name"`
	University    string `gorm:"column:university" json:"university"`
	Course        string `gorm:"column:course" json:"course"`
	YearOfStudy   string `gorm:"column:year_of_study" json:"year_of_study"`
	CGPA          string `gorm:"column:cgpa" json:"cgpa"`
	Reason        string `gorm:"column:reason" json:"reason"`

	// Storage paths for uploaded documents. The first three are non-null at
	// creation time (enforced by the intake validator); supporting docs are
	// optional.
	TranscriptPath        string  `gorm:"column:transcript_path" json:"transcript_path"`
	ApplicationLetterPath string  `gorm:"column:application_letter_path" json:"application_letter_path"`
	NominationLetterPath  string  `gorm:"column:nomination_letter_path" json:"nomination_letter_path"`
	SupportingDocsPath    *string `gorm:"column:supporting_docs_path" json:"supporting_docs_path,omitempty"`

	Status   string     `gorm:"column:status;default:pending" json:"status"`
	CreateAt time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

func (ScholarshipApplication) TableName() string {
	return "scholarship_applications"
}
