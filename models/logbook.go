package models

import "time"

type Logbook struct {
	ID            int       `gorm:"primaryKey;column:id" json:"id"`
	StudentID     int       `gorm:"column:student_id" json:"student_id"`
	Date          time.Time `gorm:"column:date" json:"date"`
	Activity      string    `gorm:"column:activity;type:text" json:"activity"`
	IsLocked      bool      `gorm:"column:is_locked;default:false" json:"is_locked"`
	LecturerNotes *string   `gorm:"column:lecturer_notes;type:text" json:"lecturer_notes"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`

	Student StudentPublic `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (Logbook) TableName() string { return "logbooks" }
