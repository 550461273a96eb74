package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sita-api/middleware"
	"sita-api/services"
	"sita-api/utils"
)

func GetDefenseList(c *gin.Context) {
	filter := services.SubmissionFilter{
		Status: c.Query("status"),
		Search: utils.SanitizeInput(c.Query("search")),
	}

	items, err := workflow().ListDefenses(filter)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "", items)
}

func GetDefenseDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	defense, err := workflow().GetDefense(id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "", defense)
}

// CreateDefense stores a student's defense submission against an
// approved seminar, with an optional approval letter upload.
func CreateDefense(c *gin.Context) {
	seminarID, err := strconv.Atoi(c.PostForm("seminar_id"))
	if err != nil || seminarID <= 0 {
		utils.Fail(c, utils.ValidationError(utils.FieldError{Field: "seminar_id", Message: "Seminar id is required"}))
		return
	}

	letter, err := saveUpload(c, "approval_letter", false)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	input := services.DefenseInput{
		SeminarID:          seminarID,
		Title:              utils.SanitizeInput(c.PostForm("title")),
		ResearchObject:     utils.SanitizeInput(c.PostForm("research_object")),
		Methodology:        utils.SanitizeInput(c.PostForm("methodology")),
		ApprovalLetterFile: letter,
	}

	defense, err := workflow().CreateDefense(middleware.CurrentUserID(c), input)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, "Defense submission created successfully", defense)
}

func ApproveDefense(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		DefenseDate string `json:"defense_date"`
	}
	_ = c.ShouldBindJSON(&req)

	defenseDate, valid := utils.ParseDate(req.DefenseDate)
	if !valid {
		message := "Defense date is required"
		if req.DefenseDate != "" {
			message = "Invalid date format"
		}
		utils.Fail(c, utils.ValidationError(utils.FieldError{Field: "defense_date", Message: message}))
		return
	}

	defense, err := workflow().ApproveDefense(id, defenseDate)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "Defense submission approved successfully", defense)
}

func RejectDefense(c *gin.Context) {
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

	defense, err := workflow().RejectDefense(id, utils.SanitizeInput(req.RejectionReason), suggested)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "Defense submission rejected successfully", defense)
}

// GetApprovalLetter streams the defense approval letter.
func GetApprovalLetter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	fullPath, err := workflow().DefenseApprovalLetterPath(id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	sendFile(c, fullPath)
}
