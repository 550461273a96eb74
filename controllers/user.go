package controllers

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"sita-api/config"
	"sita-api/middleware"
	"sita-api/models"
	"sita-api/services"
	"sita-api/utils"
)

// UpdateProfile changes the caller's username, password and/or profile
// photo. The password is hashed explicitly here before persisting.
func UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.Fail(c, utils.AuthError("User tidak ditemukan"))
		return
	}

	username := utils.SanitizeInput(c.PostForm("username"))
	password := c.PostForm("password")

	updates := map[string]interface{}{}

	if username != "" {
		if len(username) < 3 {
			utils.Fail(c, utils.ValidationError(utils.FieldError{Field: "username", Message: "Username must be at least 3 characters"}))
			return
		}
		var count int64
		err := config.DB.Model(&models.User{}).
			Where("username = ? AND id <> ?", username, user.ID).
			Count(&count).Error
		if err != nil {
			utils.Fail(c, utils.InternalError("Failed to check username", err))
			return
		}
		if count > 0 {
			utils.Fail(c, utils.ValidationError(utils.FieldError{Field: "username", Message: "Username sudah digunakan"}))
			return
		}
		updates["username"] = username
	}

	if password != "" {
		if len(password) < 6 {
			utils.Fail(c, utils.ValidationError(utils.FieldError{Field: "password", Message: "Password must be at least 6 characters"}))
			return
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			utils.Fail(c, utils.InternalError("Failed to hash password", err))
			return
		}
		updates["password"] = hash
	}

	photo, err := saveUpload(c, "profile_photo", false)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if photo != "" {
		// Best effort removal of the previous photo.
		if user.ProfilePhoto != nil && *user.ProfilePhoto != "" {
			old := filepath.Join(config.UploadPath(), filepath.FromSlash(utils.SanitizeRelativePath(*user.ProfilePhoto)))
			if err := os.Remove(old); err != nil && !os.IsNotExist(err) {
				log.Printf("failed to remove old profile photo %s: %v", old, err)
			}
		}
		updates["profile_photo"] = photo
	}

	if len(updates) > 0 {
		if err := config.DB.Model(user).Updates(updates).Error; err != nil {
			utils.Fail(c, utils.InternalError("Failed to update profile", err))
			return
		}
	}

	var updated models.User
	if err := config.DB.First(&updated, user.ID).Error; err != nil {
		utils.Fail(c, utils.InternalError("Failed to fetch user", err))
		return
	}
	utils.OK(c, "Profile berhasil diupdate", updated)
}

// GetStudentProgress reports a student's thesis/seminar/defense chain.
func GetStudentProgress(c *gin.Context) {
	studentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	student, progress, err := services.NewProgressService(config.DB).StudentProgress(studentID)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, "", gin.H{
		"student": gin.H{
			"id":            student.ID,
			"name":          student.Name,
			"nim":           student.NIM,
			"profile_photo": student.ProfilePhoto,
		},
		"progress": progress,
	})
}
