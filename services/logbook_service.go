package services

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	"sita-api/models"
	"sita-api/utils"
)

// LogbookService covers the supervision logbook: the student appends
// entries, the lecturer reviews, annotates, locks and exports them.
type LogbookService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewLogbookService(db *gorm.DB) *LogbookService {
	return &LogbookService{db: db, notifications: NewNotificationService(db)}
}

// StudentSummary is one row of the lecturer's student list.
type StudentSummary struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	NIM          *string `json:"nim"`
	ProfilePhoto *string `json:"profile_photo"`
	LogbookCount int64   `json:"logbook_count"`
}

func (s *LogbookService) StudentList(search string) ([]StudentSummary, error) {
	q := s.db.Table("users").
		Select("users.id, users.name, users.nim, users.profile_photo, COUNT(logbooks.id) AS logbook_count").
		Joins("LEFT JOIN logbooks ON logbooks.student_id = users.id").
		Where("users.role = ?", models.RoleStudent).
		Group("users.id, users.name, users.nim, users.profile_photo")

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(users.name) LIKE LOWER(?) OR users.nim LIKE ?", like, like)
	}

	var items []StudentSummary
	if err := q.Order("users.name ASC").Scan(&items).Error; err != nil {
		return nil, utils.InternalError("Failed to fetch students", err)
	}
	return items, nil
}

func (s *LogbookService) findStudent(studentID int) (*models.User, error) {
	var student models.User
	err := s.db.Where("id = ? AND role = ?", studentID, models.RoleStudent).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Student not found")
		}
		return nil, utils.InternalError("Failed to fetch student", err)
	}
	return &student, nil
}

// StudentLogbook returns the student and their entries, newest first.
func (s *LogbookService) StudentLogbook(studentID int) (*models.User, []models.Logbook, error) {
	student, err := s.findStudent(studentID)
	if err != nil {
		return nil, nil, err
	}

	var entries []models.Logbook
	err = s.db.Where("student_id = ?", studentID).Order("date DESC").Find(&entries).Error
	if err != nil {
		return nil, nil, utils.InternalError("Failed to fetch logbook entries", err)
	}
	return student, entries, nil
}

// AddEntry appends a student activity. Once the logbook is locked no
// further entries are accepted.
func (s *LogbookService) AddEntry(studentID int, date time.Time, activity string) (*models.Logbook, error) {
	if activity == "" {
		return nil, utils.ValidationError(utils.FieldError{Field: "activity", Message: "Activity is required"})
	}

	var locked int64
	err := s.db.Model(&models.Logbook{}).
		Where("student_id = ? AND is_locked = ?", studentID, true).
		Count(&locked).Error
	if err != nil {
		return nil, utils.InternalError("Failed to check logbook state", err)
	}
	if locked > 0 {
		return nil, utils.ValidationError(utils.FieldError{Field: "activity", Message: "Logbook sudah dikunci"})
	}

	entry := models.Logbook{
		StudentID: studentID,
		Date:      date,
		Activity:  activity,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, utils.InternalError("Failed to create logbook entry", err)
	}
	return &entry, nil
}

// Lock flags every entry of the student as locked and notifies them.
// Locking an already-locked logbook is a no-op on the rows but the
// notification is still sent, matching historical behavior.
func (s *LogbookService) Lock(studentID int) error {
	if _, err := s.findStudent(studentID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Logbook{}).
			Where("student_id = ?", studentID).
			Update("is_locked", true).Error
		if err != nil {
			return err
		}
		_, err = s.notifications.Create(tx, studentID, titleLogbookLocked, messageLogbookLocked)
		return err
	})
	if err != nil {
		return utils.InternalError("Failed to lock logbook", err)
	}

	s.notifications.MailCopy(studentID, titleLogbookLocked, messageLogbookLocked)
	return nil
}

// Annotate stores the lecturer's note on one entry. Locked entries can
// no longer be annotated.
func (s *LogbookService) Annotate(entryID int, note string) (*models.Logbook, error) {
	if note == "" {
		return nil, utils.ValidationError(utils.FieldError{Field: "note", Message: "Note is required"})
	}

	var entry models.Logbook
	err := s.db.First(&entry, entryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Logbook entry not found")
		}
		return nil, utils.InternalError("Failed to fetch logbook entry", err)
	}
	if entry.IsLocked {
		return nil, utils.ValidationError(utils.FieldError{Field: "note", Message: "Logbook sudah dikunci"})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entry).Update("lecturer_notes", note).Error; err != nil {
			return err
		}
		_, err := s.notifications.Create(tx, entry.StudentID, titleLogbookNote, messageLogbookNote)
		return err
	})
	if err != nil {
		return nil, utils.InternalError("Failed to update logbook entry", err)
	}

	s.notifications.MailCopy(entry.StudentID, titleLogbookNote, messageLogbookNote)
	entry.LecturerNotes = &note
	return &entry, nil
}

// Export renders the student's full logbook as a PDF and returns the
// document bytes plus a download filename.
func (s *LogbookService) Export(studentID int) ([]byte, string, error) {
	student, err := s.findStudent(studentID)
	if err != nil {
		return nil, "", err
	}

	var entries []models.Logbook
	err = s.db.Where("student_id = ?", studentID).Order("date ASC").Find(&entries).Error
	if err != nil {
		return nil, "", utils.InternalError("Failed to fetch logbook entries", err)
	}

	data, err := RenderLogbookPDF(student, entries)
	if err != nil {
		return nil, "", utils.InternalError("Failed to render logbook PDF", err)
	}

	nim := ""
	if student.NIM != nil {
		nim = *student.NIM
	}
	filename := fmt.Sprintf("logbook_%s_%d.pdf", nim, time.Now().Unix())
	return data, filename, nil
}

// RenderLogbookPDF lays out the logbook document: a centered header,
// the student identity, then one block per dated entry.
func RenderLogbookPDF(student *models.User, entries []models.Logbook) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Logbook Bimbingan Tugas Akhir", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 7, "Nama: "+student.Name, "", 1, "L", false, 0, "")
	nim := "-"
	if student.NIM != nil {
		nim = *student.NIM
	}
	pdf.CellFormat(0, 7, "NIM: "+nim, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, entry := range entries {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 7, "Tanggal: "+entry.Date.Format("02/01/2006"), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "U", 12)
		pdf.CellFormat(0, 7, "Aktivitas:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 6, entry.Activity, "", "L", false)
		if entry.LecturerNotes != nil && *entry.LecturerNotes != "" {
			pdf.SetFont("Arial", "U", 12)
			pdf.CellFormat(0, 7, "Catatan Dosen:", "", 1, "L", false, 0, "")
			pdf.SetFont("Arial", "", 12)
			pdf.MultiCell(0, 6, *entry.LecturerNotes, "", "L", false)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
