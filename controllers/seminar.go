package controllers

import (
	"github.com/gin-gonic/gin"

	"sita-api/config"
	"sita-api/middleware"
	"sita-api/services"
	"sita-api/utils"
)

func GetSeminarList(c *gin.Context) {
	filter := services.SubmissionFilter{
		Status: c.Query("status"),
		Search: utils.SanitizeInput(c.Query("search")),
	}

	items, err := workflow().ListSeminars(filter)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "", items)
}

func GetSeminarDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	seminar, err := workflow().GetSeminar(id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "", seminar)
}

// GetGuidanceHistory lists the logbook of the student who owns the
// seminar, so the lecturer can review supervision before scheduling.
func GetGuidanceHistory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	seminar, err := workflow().GetSeminar(id)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	_, entries, err := services.NewLogbookService(config.DB).StudentLogbook(seminar.StudentID)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "", entries)
}

type createSeminarRequest struct {
	ThesisID       int    `json:"thesis_id" binding:"required"`
	Title          string `json:"title"`
	ResearchObject string `json:"research_object"`
	Methodology    string `json:"methodology"`
}

// CreateSeminar stores a student's seminar submission against an
// approved thesis.
func CreateSeminar(c *gin.Context) {
	var req createSeminarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, utils.ValidationError(utils.FieldError{Field: "thesis_id", Message: "Thesis id is required"}))
		return
	}

	input := services.SeminarInput{
		ThesisID:       req.ThesisID,
		Title:          utils.SanitizeInput(req.Title),
		ResearchObject: utils.SanitizeInput(req.ResearchObject),
		Methodology:    utils.SanitizeInput(req.Methodology),
	}

	seminar, err := workflow().CreateSeminar(middleware.CurrentUserID(c), input)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, "Seminar submission created successfully", seminar)
}

func ApproveSeminar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		SeminarDate string `json:"seminar_date"`
	}
	_ = c.ShouldBindJSON(&req)

	seminarDate, valid := utils.ParseDate(req.SeminarDate)
	if !valid {
		message := "Seminar date is required"
		if req.SeminarDate != "" {
			message = "Invalid date format"
		}
		utils.Fail(c, utils.ValidationError(utils.FieldError{Field: "seminar_date", Message: message}))
		return
	}

	seminar, err := workflow().ApproveSeminar(id, seminarDate)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "Seminar submission approved successfully", seminar)
}

func RejectSeminar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		RejectionReason string `json:"rejection_reason"`
		SuggestedDate   string `json:"suggested_date"`
	}
	_ = c.ShouldBindJSON(&req)

	suggested, err := optionalDate(req.SuggestedDate, "suggested_date")
	if err != nil {
		utils.Fail(c, err)
		return
	}

	seminar, err := workflow().RejectSeminar(id, utils.SanitizeInput(req.RejectionReason), suggested)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "Seminar submission rejected successfully", seminar)
}

// DownloadThesisReview streams the attachment of the seminar's parent
// thesis.
func DownloadThesisReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	fullPath, err := workflow().SeminarThesisReviewPath(id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	sendFile(c, fullPath)
}
