package services

import (
	"errors"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"sita-api/config"
	"sita-api/models"
	"sita-api/utils"
)

// WorkflowService implements the submission lifecycle shared by
// thesis, seminar and defense records: list/detail for the reviewing
// lecturer, student creation, and the approve/reject transitions with
// their notification side effects.
type WorkflowService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewWorkflowService(db *gorm.DB) *WorkflowService {
	return &WorkflowService{db: db, notifications: NewNotificationService(db)}
}

// SubmissionFilter narrows list queries. Search matches the owning
// student's name or nim, case-insensitive.
type SubmissionFilter struct {
	Status string
	Search string
}

func (f SubmissionFilter) validate() error {
	if f.Status != "" && !models.ValidStatus(f.Status) {
		return utils.ValidationError(utils.FieldError{Field: "status", Message: "Invalid status value"})
	}
	return nil
}

func (s *WorkflowService) applyFilter(q *gorm.DB, f SubmissionFilter) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("student_id IN (?)",
			s.db.Model(&models.User{}).Select("id").
				Where("role = ? AND (LOWER(name) LIKE LOWER(?) OR nim LIKE ?)",
					models.RoleStudent, like, like))
	}
	return q
}

// commitTransition applies the status update and writes exactly one
// notification for the owning student inside a single transaction,
// then mirrors the notification to email outside of it.
func (s *WorkflowService) commitTransition(record interface{}, updates map[string]interface{}, studentID int, title, message string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(record).Updates(updates).Error; err != nil {
			return err
		}
		_, err := s.notifications.Create(tx, studentID, title, message)
		return err
	})
	if err != nil {
		return utils.InternalError("Failed to update submission", err)
	}

	s.notifications.MailCopy(studentID, title, message)
	return nil
}

func requirePending(status string) error {
	if status != models.StatusPending {
		return utils.ValidationError(utils.FieldError{Field: "status", Message: "Submission already processed"})
	}
	return nil
}

/* ==========================
   Thesis
   ========================== */

type ThesisInput struct {
	Title          string
	ResearchObject string
	Methodology    string
	AttachmentFile string
}

func (s *WorkflowService) ListTheses(f SubmissionFilter) ([]models.Thesis, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	var items []models.Thesis
	q := s.applyFilter(s.db.Model(&models.Thesis{}), f)
	if err := q.Preload("Student").Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, utils.InternalError("Failed to fetch thesis submissions", err)
	}
	return items, nil
}

func (s *WorkflowService) GetThesis(id int) (*models.Thesis, error) {
	var thesis models.Thesis
	err := s.db.Preload("Student").First(&thesis, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Thesis submission not found")
		}
		return nil, utils.InternalError("Failed to fetch thesis submission", err)
	}
	return &thesis, nil
}

func (s *WorkflowService) CreateThesis(studentID int, input ThesisInput) (*models.Thesis, error) {
	var fields []utils.FieldError
	if input.Title == "" {
		fields = append(fields, utils.FieldError{Field: "title", Message: "Title is required"})
	}
	if input.ResearchObject == "" {
		fields = append(fields, utils.FieldError{Field: "research_object", Message: "Research object is required"})
	}
	if input.Methodology == "" {
		fields = append(fields, utils.FieldError{Field: "methodology", Message: "Methodology is required"})
	}
	if input.AttachmentFile == "" {
		fields = append(fields, utils.FieldError{Field: "thesis_file", Message: "Thesis file is required"})
	}
	if len(fields) > 0 {
		return nil, utils.ValidationError(fields...)
	}

	thesis := models.Thesis{
		StudentID:      studentID,
		Title:          input.Title,
		ResearchObject: input.ResearchObject,
		Methodology:    input.Methodology,
		AttachmentFile: input.AttachmentFile,
		Status:         models.StatusPending,
	}
	if err := s.db.Create(&thesis).Error; err != nil {
		return nil, utils.InternalError("Failed to create thesis submission", err)
	}
	return &thesis, nil
}

func (s *WorkflowService) ApproveThesis(id int, approvalDate time.Time) (*models.Thesis, error) {
	thesis, err := s.GetThesis(id)
	if err != nil {
		return nil, err
	}
	if err := requirePending(thesis.Status); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":        models.StatusApproved,
		"approval_date": approvalDate,
	}
	err = s.commitTransition(&models.Thesis{ID: thesis.ID}, updates, thesis.StudentID,
		titleThesisApproved, thesisApprovedMessage(approvalDate))
	if err != nil {
		return nil, err
	}

	thesis.Status = models.StatusApproved
	thesis.ApprovalDate = &approvalDate
	return thesis, nil
}

func (s *WorkflowService) RejectThesis(id int, reason string) (*models.Thesis, error) {
	if reason == "" {
		return nil, utils.ValidationError(utils.FieldError{Field: "rejection_reason", Message: "Rejection reason is required"})
	}

	thesis, err := s.GetThesis(id)
	if err != nil {
		return nil, err
	}
	if err := requirePending(thesis.Status); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":           models.StatusRejected,
		"rejection_reason": reason,
	}
	err = s.commitTransition(&models.Thesis{ID: thesis.ID}, updates, thesis.StudentID,
		titleThesisRejected, thesisRejectedMessage(reason))
	if err != nil {
		return nil, err
	}

	thesis.Status = models.StatusRejected
	thesis.RejectionReason = &reason
	return thesis, nil
}

// ThesisFilePath resolves a stored attachment filename to a path under
// the thesis upload folder. Traversal segments are stripped before the
// join.
func (s *WorkflowService) ThesisFilePath(filename string) (string, error) {
	safe := filepath.Base(utils.SanitizeRelativePath(filename))
	if safe == "" || safe == "." {
		return "", utils.NotFoundError("File not found")
	}

	fullPath := filepath.Join(config.UploadPath(), "thesis", safe)
	if !utils.FileExists(fullPath) {
		return "", utils.NotFoundError("File not found")
	}
	return fullPath, nil
}

/* ==========================
   Seminar
   ========================== */

type SeminarInput struct {
	ThesisID       int
	Title          string
	ResearchObject string
	Methodology    string
}

func (s *WorkflowService) ListSeminars(f SubmissionFilter) ([]models.Seminar, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	var items []models.Seminar
	q := s.applyFilter(s.db.Model(&models.Seminar{}), f)
	if err := q.Preload("Student").Preload("Thesis").Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, utils.InternalError("Failed to fetch seminar submissions", err)
	}
	return items, nil
}

func (s *WorkflowService) GetSeminar(id int) (*models.Seminar, error) {
	var seminar models.Seminar
	err := s.db.Preload("Student").Preload("Thesis").First(&seminar, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Seminar submission not found")
		}
		return nil, utils.InternalError("Failed to fetch seminar submission", err)
	}
	return &seminar, nil
}

func (s *WorkflowService) CreateSeminar(studentID int, input SeminarInput) (*models.Seminar, error) {
	var thesis models.Thesis
	err := s.db.Where("id = ? AND student_id = ?", input.ThesisID, studentID).First(&thesis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Thesis submission not found")
		}
		return nil, utils.InternalError("Failed to fetch thesis submission", err)
	}
	if thesis.Status != models.StatusApproved {
		return nil, utils.ValidationError(utils.FieldError{Field: "thesis_id", Message: "Thesis must be approved before submitting a seminar"})
	}

	seminar := models.Seminar{
		ThesisID:       thesis.ID,
		StudentID:      studentID,
		Title:          input.Title,
		ResearchObject: input.ResearchObject,
		Methodology:    input.Methodology,
		Status:         models.StatusPending,
	}
	if seminar.Title == "" {
		seminar.Title = thesis.Title
	}
	if seminar.ResearchObject == "" {
		seminar.ResearchObject = thesis.ResearchObject
	}
	if seminar.Methodology == "" {
		seminar.Methodology = thesis.Methodology
	}

	if err := s.db.Create(&seminar).Error; err != nil {
		return nil, utils.InternalError("Failed to create seminar submission", err)
	}
	return &seminar, nil
}

func (s *WorkflowService) ApproveSeminar(id int, seminarDate time.Time) (*models.Seminar, error) {
	seminar, err := s.GetSeminar(id)
	if err != nil {
		return nil, err
	}
	if err := requirePending(seminar.Status); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":       models.StatusApproved,
		"seminar_date": seminarDate,
	}
	err = s.commitTransition(&models.Seminar{ID: seminar.ID}, updates, seminar.StudentID,
		titleSeminarApproved, seminarApprovedMessage(seminarDate))
	if err != nil {
		return nil, err
	}

	seminar.Status = models.StatusApproved
	seminar.SeminarDate = &seminarDate
	return seminar, nil
}

func (s *WorkflowService) RejectSeminar(id int, reason string, suggestedDate *time.Time) (*models.Seminar, error) {
	if reason == "" {
		return nil, utils.ValidationError(utils.FieldError{Field: "rejection_reason", Message: "Rejection reason is required"})
	}

	seminar, err := s.GetSeminar(id)
	if err != nil {
		return nil, err
	}
	if err := requirePending(seminar.Status); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":           models.StatusRejected,
		"rejection_reason": reason,
	}
	if suggestedDate != nil {
		updates["suggested_date"] = *suggestedDate
	}
	err = s.commitTransition(&models.Seminar{ID: seminar.ID}, updates, seminar.StudentID,
		titleSeminarRejected, seminarRejectedMessage(reason, suggestedDate))
	if err != nil {
		return nil, err
	}

	seminar.Status = models.StatusRejected
	seminar.RejectionReason = &reason
	seminar.SuggestedDate = suggestedDate
	return seminar, nil
}

// SeminarThesisReviewPath resolves the attachment of the seminar's
// parent thesis for the reviewing lecturer.
func (s *WorkflowService) SeminarThesisReviewPath(id int) (string, error) {
	seminar, err := s.GetSeminar(id)
	if err != nil {
		return "", err
	}
	if seminar.Thesis == nil || seminar.Thesis.AttachmentFile == "" {
		return "", utils.NotFoundError("Thesis file not found")
	}

	rel := utils.SanitizeRelativePath(seminar.Thesis.AttachmentFile)
	fullPath := filepath.Join(config.UploadPath(), filepath.FromSlash(rel))
	if !utils.FileExists(fullPath) {
		return "", utils.NotFoundError("File not found")
	}
	return fullPath, nil
}

/* ==========================
   Defense
   ========================== */

type DefenseInput struct {
	SeminarID          int
	Title              string
	ResearchObject     string
	Methodology        string
	ApprovalLetterFile string
}

func (s *WorkflowService) ListDefenses(f SubmissionFilter) ([]models.Defense, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	var items []models.Defense
	q := s.applyFilter(s.db.Model(&models.Defense{}), f)
	err := q.Preload("Student").Preload("Seminar").Preload("Seminar.Thesis").
		Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, utils.InternalError("Failed to fetch defense submissions", err)
	}
	return items, nil
}

func (s *WorkflowService) GetDefense(id int) (*models.Defense, error) {
	var defense models.Defense
	err := s.db.Preload("Student").Preload("Seminar").Preload("Seminar.Thesis").
		First(&defense, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Defense submission not found")
		}
		return nil, utils.InternalError("Failed to fetch defense submission", err)
	}
	return &defense, nil
}

func (s *WorkflowService) CreateDefense(studentID int, input DefenseInput) (*models.Defense, error) {
	var seminar models.Seminar
	err := s.db.Where("id = ? AND student_id = ?", input.SeminarID, studentID).First(&seminar).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Seminar submission not found")
		}
		return nil, utils.InternalError("Failed to fetch seminar submission", err)
	}
	if seminar.Status != models.StatusApproved {
		return nil, utils.ValidationError(utils.FieldError{Field: "seminar_id", Message: "Seminar must be approved before submitting a defense"})
	}

	defense := models.Defense{
		SeminarID:      seminar.ID,
		StudentID:      studentID,
		Title:          input.Title,
		ResearchObject: input.ResearchObject,
		Methodology:    input.Methodology,
		Status:         models.StatusPending,
	}
	if input.ApprovalLetterFile != "" {
		defense.ApprovalLetterFile = &input.ApprovalLetterFile
	}
	if defense.Title == "" {
		defense.Title = seminar.Title
	}
	if defense.ResearchObject == "" {
		defense.ResearchObject = seminar.ResearchObject
	}
	if defense.Methodology == "" {
		defense.Methodology = seminar.Methodology
	}

	if err := s.db.Create(&defense).Error; err != nil {
		return nil, utils.InternalError("Failed to create defense submission", err)
	}
	return &defense, nil
}

func (s *WorkflowService) ApproveDefense(id int, defenseDate time.Time) (*models.Defense, error) {
	defense, err := s.GetDefense(id)
	if err != nil {
		return nil, err
	}
	if err := requirePending(defense.Status); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":       models.StatusApproved,
		"defense_date": defenseDate,
	}
	err = s.commitTransition(&models.Defense{ID: defense.ID}, updates, defense.StudentID,
		titleDefenseApproved, defenseApprovedMessage(defenseDate))
	if err != nil {
		return nil, err
	}

	defense.Status = models.StatusApproved
	defense.DefenseDate = &defenseDate
	return defense, nil
}

func (s *WorkflowService) RejectDefense(id int, reason string, suggestedDate *time.Time) (*models.Defense, error) {
	if reason == "" {
		return nil, utils.ValidationError(utils.FieldError{Field: "rejection_reason", Message: "Rejection reason is required"})
	}

	defense, err := s.GetDefense(id)
	if err != nil {
		return nil, err
	}
	if err := requirePending(defense.Status); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":           models.StatusRejected,
		"rejection_reason": reason,
	}
	if suggestedDate != nil {
		updates["suggested_date"] = *suggestedDate
	}
	err = s.commitTransition(&models.Defense{ID: defense.ID}, updates, defense.StudentID,
		titleDefenseRejected, defenseRejectedMessage(reason, suggestedDate))
	if err != nil {
		return nil, err
	}

	defense.Status = models.StatusRejected
	defense.RejectionReason = &reason
	defense.SuggestedDate = suggestedDate
	return defense, nil
}

// DefenseApprovalLetterPath resolves the stored approval letter of a
// defense submission.
func (s *WorkflowService) DefenseApprovalLetterPath(id int) (string, error) {
	var defense models.Defense
	err := s.db.First(&defense, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", utils.NotFoundError("Approval letter not found")
		}
		return "", utils.InternalError("Failed to fetch defense submission", err)
	}
	if defense.ApprovalLetterFile == nil || *defense.ApprovalLetterFile == "" {
		return "", utils.NotFoundError("Approval letter not found")
	}

	rel := utils.SanitizeRelativePath(*defense.ApprovalLetterFile)
	fullPath := filepath.Join(config.UploadPath(), filepath.FromSlash(rel))
	if !utils.FileExists(fullPath) {
		return "", utils.NotFoundError("File not found")
	}
	return fullPath, nil
}
