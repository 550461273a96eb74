package models

import "time"

// Submission status values shared by thesis, seminar and defense
// records.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the three submission states.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type Thesis struct {
	ID              int        `gorm:"primaryKey;column:id" json:"id"`
	StudentID       int        `gorm:"column:student_id" json:"student_id"`
	Title           string     `gorm:"column:title;size:255" json:"title"`
	ResearchObject  string     `gorm:"column:research_object;type:text" json:"research_object"`
	Methodology     string     `gorm:"column:methodology;type:text" json:"methodology"`
	AttachmentFile  string     `gorm:"column:attachment_file;size:255" json:"attachment_file"`
	Status          string     `gorm:"column:status;size:20;default:pending" json:"status"`
	ApprovalDate    *time.Time `gorm:"column:approval_date" json:"approval_date"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text" json:"rejection_reason"`
	CreatedAt       time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at" json:"updated_at"`

	Student StudentPublic `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (Thesis) TableName() string { return "thesis_submissions" }

type Seminar struct {
	ID              int        `gorm:"primaryKey;column:id" json:"id"`
	ThesisID        int        `gorm:"column:thesis_id" json:"thesis_id"`
	StudentID       int        `gorm:"column:student_id" json:"student_id"`
	Title           string     `gorm:"column:title;size:255" json:"title"`
	ResearchObject  string     `gorm:"column:research_object;type:text" json:"research_object"`
	Methodology     string     `gorm:"column:methodology;type:text" json:"methodology"`
	SeminarDate     *time.Time `gorm:"column:seminar_date" json:"seminar_date"`
	Status          string     `gorm:"column:status;size:20;default:pending" json:"status"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text" json:"rejection_reason"`
	SuggestedDate   *time.Time `gorm:"column:suggested_date" json:"suggested_date"`
	CreatedAt       time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at" json:"updated_at"`

	Student StudentPublic `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Thesis  *Thesis       `gorm:"foreignKey:ThesisID" json:"thesis,omitempty"`
}

func (Seminar) TableName() string { return "seminar_submissions" }

type Defense struct {
	ID                 int        `gorm:"primaryKey;column:id" json:"id"`
	SeminarID          int        `gorm:"column:seminar_id" json:"seminar_id"`
	StudentID          int        `gorm:"column:student_id" json:"student_id"`
	Title              string     `gorm:"column:title;size:255" json:"title"`
	ResearchObject     string     `gorm:"column:research_object;type:text" json:"research_object"`
	Methodology        string     `gorm:"column:methodology;type:text" json:"methodology"`
	DefenseDate        *time.Time `gorm:"column:defense_date" json:"defense_date"`
	ApprovalLetterFile *string    `gorm:"column:approval_letter_file;size:255" json:"approval_letter_file"`
	Status             string     `gorm:"column:status;size:20;default:pending" json:"status"`
	RejectionReason    *string    `gorm:"column:rejection_reason;type:text" json:"rejection_reason"`
	SuggestedDate      *time.Time `gorm:"column:suggested_date" json:"suggested_date"`
	CreatedAt          time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at" json:"updated_at"`

	Student StudentPublic `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Seminar *Seminar      `gorm:"foreignKey:SeminarID" json:"seminar,omitempty"`
}

func (Defense) TableName() string { return "defense_submissions" }
