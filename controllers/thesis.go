package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sita-api/config"
	"sita-api/middleware"
	"sita-api/services"
	"sita-api/utils"
)

func workflow() *services.WorkflowService {
	return services.NewWorkflowService(config.DB)
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		utils.Fail(c, utils.ValidationError(utils.FieldError{Field: name, Message: "Invalid id"}))
		return 0, false
	}
	return id, true
}

// optionalDate parses a date field that may be omitted entirely.
func optionalDate(value, field string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, ok := utils.ParseDate(value)
	if !ok {
		return nil, utils.ValidationError(utils.FieldError{Field: field, Message: "Invalid date format"})
	}
	return &t, nil
}

// GetThesisList returns thesis submissions for the reviewing lecturer,
// optionally filtered by status and student search.
func GetThesisList(c *gin.Context) {
	filter := services.SubmissionFilter{
		Status: c.Query("status"),
		Search: utils.SanitizeInput(c.Query("search")),
	}

	items, err := workflow().ListTheses(filter)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "", items)
}

func GetThesisDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	thesis, err := workflow().GetThesis(id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "", thesis)
}

// CreateThesis stores a student's thesis submission with its uploaded
// attachment.
func CreateThesis(c *gin.Context) {
	attachment, err := saveUpload(c, "thesis_file", true)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	input := services.ThesisInput{
		Title:          utils.SanitizeInput(c.PostForm("title")),
		ResearchObject: utils.SanitizeInput(c.PostForm("research_object")),
		Methodology:    utils.SanitizeInput(c.PostForm("methodology")),
		AttachmentFile: attachment,
	}

	thesis, err := workflow().CreateThesis(middleware.CurrentUserID(c), input)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, "Thesis submission created successfully", thesis)
}

// ApproveThesis sets the submission to approved on the given date and
// notifies the student.
func ApproveThesis(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		ApprovalDate string `json:"approval_date"`
	}
	_ = c.ShouldBindJSON(&req)

	approvalDate, valid := utils.ParseDate(req.ApprovalDate)
	if !valid {
		message := "Approval date is required"
		if req.ApprovalDate != "" {
			message = "Invalid date format"
		}
		utils.Fail(c, utils.ValidationError(utils.FieldError{Field: "approval_date", Message: message}))
		return
	}

	thesis, err := workflow().ApproveThesis(id, approvalDate)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "Thesis submission approved successfully", thesis)
}

func RejectThesis(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		RejectionReason string `json:"rejection_reason"`
	}
	_ = c.ShouldBindJSON(&req)

	thesis, err := workflow().RejectThesis(id, utils.SanitizeInput(req.RejectionReason))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "Thesis submission rejected successfully", thesis)
}

// DownloadThesisFile streams a thesis attachment by stored filename.
func DownloadThesisFile(c *gin.Context) {
	fullPath, err := workflow().ThesisFilePath(c.Param("filename"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	sendFile(c, fullPath)
}
