package services

import (
	"errors"
	"fmt"
	"html/template"
	"log"

	"gorm.io/gorm"

	"sita-api/config"
	"sita-api/models"
	"sita-api/utils"
)

// NotificationService owns the notifications table. Rows are inserted
// only by workflow side effects; the client-facing surface is read and
// mark-read bookkeeping.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Create inserts a notification using the caller's transaction handle
// so the insert commits or rolls back together with the status write.
func (s *NotificationService) Create(tx *gorm.DB, userID int, title, message string) (*models.Notification, error) {
	n := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		IsRead:  false,
	}
	if err := tx.Create(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *NotificationService) ListForUser(userID int) ([]models.Notification, error) {
	var items []models.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, utils.InternalError("Failed to fetch notifications", err)
	}
	return items, nil
}

// MarkRead flips is_read on a single notification. The ownership check
// keeps users from marking each other's rows.
func (s *NotificationService) MarkRead(id, userID int) (*models.Notification, error) {
	var n models.Notification
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Notification not found")
		}
		return nil, utils.InternalError("Failed to fetch notification", err)
	}

	if err := s.db.Model(&n).Update("is_read", true).Error; err != nil {
		return nil, utils.InternalError("Failed to update notification", err)
	}
	n.IsRead = true
	return &n, nil
}

// MarkAllRead is idempotent; re-running it is a no-op.
func (s *NotificationService) MarkAllRead(userID int) error {
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		return utils.InternalError("Failed to update notifications", err)
	}
	return nil
}

func (s *NotificationService) UnreadCount(userID int) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, utils.InternalError("Failed to count notifications", err)
	}
	return count, nil
}

// MailCopy mirrors a notification to the student's email when one is
// on file. Best effort: mail problems are logged and never surface to
// the request that produced the notification.
func (s *NotificationService) MailCopy(userID int, title, message string) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil || user.Email == nil || *user.Email == "" {
		return
	}
	to := *user.Email
	name := user.Name

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("notification mail panic: %v", r)
			}
		}()
		html := buildNotificationHTML(name, title, message)
		if err := config.SendMail([]string{to}, title, html); err != nil {
			log.Printf("notification mail to %s failed: %v", to, err)
		}
	}()
}

func buildNotificationHTML(recipientName, title, message string) string {
	return fmt.Sprintf(
		`<div style="font-family:Arial,sans-serif;max-width:560px;margin:0 auto">
<h3>%s</h3>
<p>Yth. %s,</p>
<p>%s</p>
<p style="color:#888;font-size:12px">Email ini dikirim otomatis oleh sistem SITA.</p>
</div>`,
		template.HTMLEscapeString(title),
		template.HTMLEscapeString(recipientName),
		template.HTMLEscapeString(message),
	)
}
