package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sita-api/config"
	"sita-api/middleware"
	"sita-api/services"
	"sita-api/utils"
)

func logbooks() *services.LogbookService {
	return services.NewLogbookService(config.DB)
}

// GetStudentList returns the lecturer's supervised students with their
// logbook entry counts.
func GetStudentList(c *gin.Context) {
	items, err := logbooks().StudentList(utils.SanitizeInput(c.Query("search")))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "", items)
}

func GetStudentLogbook(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}

	student, entries, err := logbooks().StudentLogbook(studentID)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, "", gin.H{
		"student":  student,
		"logbooks": entries,
	})
}

// AddLogbookEntry appends an activity to the authenticated student's
// own logbook. Rejected once the logbook has been locked.
func AddLogbookEntry(c *gin.Context) {
	var req struct {
		Date     string `json:"date"`
		Activity string `json:"activity"`
	}
	_ = c.ShouldBindJSON(&req)

	date, valid := utils.ParseDate(req.Date)
	if !valid {
		date = time.Now()
	}

	entry, err := logbooks().AddEntry(middleware.CurrentUserID(c), date, utils.SanitizeInput(req.Activity))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, "Logbook entry created successfully", entry)
}

// LockLogbook locks every entry of the student and notifies them.
func LockLogbook(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}

	if err := logbooks().Lock(studentID); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "Logbook locked successfully", nil)
}

// AddNote stores the lecturer's note on one logbook entry.
func AddNote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Note string `json:"note"`
	}
	_ = c.ShouldBindJSON(&req)

	entry, err := logbooks().Annotate(id, utils.SanitizeInput(req.Note))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "Note added successfully", entry)
}

// DownloadLogbook renders the student's logbook as PDF and streams it.
func DownloadLogbook(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}

	data, filename, err := logbooks().Export(studentID)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
