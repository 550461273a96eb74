package models

import "time"

// Notification rows are written only as side effects of workflow
// actions (approve, reject, logbook lock, logbook note); clients never
// create them directly.
type Notification struct {
	ID        int       `gorm:"primaryKey;column:id" json:"id"`
	UserID    int       `gorm:"column:user_id" json:"user_id"`
	Title     string    `gorm:"column:title;size:255" json:"title"`
	Message   string    `gorm:"column:message;type:text" json:"message"`
	IsRead    bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Notification) TableName() string { return "notifications" }
