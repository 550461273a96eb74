package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"sita-api/models"
	"sita-api/utils"
)

// ProgressService reports where a student stands in the
// thesis -> seminar -> defense chain.
type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

type StageProgress struct {
	Status      string     `json:"status"`
	Date        *time.Time `json:"date,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
}

type StudentProgress struct {
	Thesis  *StageProgress `json:"thesis"`
	Seminar *StageProgress `json:"seminar"`
	Defense *StageProgress `json:"defense"`
}

// StudentProgress resolves each stage with an explicit query per step,
// so the response shape stays fixed regardless of what exists.
func (s *ProgressService) StudentProgress(studentID int) (*models.User, *StudentProgress, error) {
	var student models.User
	err := s.db.Where("id = ? AND role = ?", studentID, models.RoleStudent).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, utils.NotFoundError("Mahasiswa tidak ditemukan")
		}
		return nil, nil, utils.InternalError("Failed to fetch student", err)
	}

	progress := &StudentProgress{}

	var thesis models.Thesis
	err = s.db.Where("student_id = ?", studentID).Order("created_at DESC").First(&thesis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &student, progress, nil
		}
		return nil, nil, utils.InternalError("Failed to fetch thesis submission", err)
	}
	progress.Thesis = &StageProgress{Status: thesis.Status, Date: thesis.ApprovalDate, SubmittedAt: thesis.CreatedAt}

	var seminar models.Seminar
	err = s.db.Where("thesis_id = ?", thesis.ID).Order("created_at DESC").First(&seminar).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &student, progress, nil
		}
		return nil, nil, utils.InternalError("Failed to fetch seminar submission", err)
	}
	progress.Seminar = &StageProgress{Status: seminar.Status, Date: seminar.SeminarDate, SubmittedAt: seminar.CreatedAt}

	var defense models.Defense
	err = s.db.Where("seminar_id = ?", seminar.ID).Order("created_at DESC").First(&defense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &student, progress, nil
		}
		return nil, nil, utils.InternalError("Failed to fetch defense submission", err)
	}
	progress.Defense = &StageProgress{Status: defense.Status, Date: defense.DefenseDate, SubmittedAt: defense.CreatedAt}

	return &student, progress, nil
}
