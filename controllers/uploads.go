package controllers

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"sita-api/config"
	"sita-api/utils"
)

// saveUpload validates and stores one multipart file, returning the
// path relative to the upload root (forward slashes). When the field
// is absent and not required, it returns "" without error.
func saveUpload(c *gin.Context, field string, required bool) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if !required {
			return "", nil
		}
		return "", utils.ValidationError(utils.FieldError{Field: field, Message: "File is required"})
	}

	if err := validateUpload(file); err != nil {
		return "", err
	}

	folder := utils.UploadFolder(field)
	dir := filepath.Join(config.UploadPath(), folder)
	if err := utils.EnsureDir(dir); err != nil {
		return "", utils.InternalError("Failed to create upload directory", err)
	}

	stored := utils.StoredFilename(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, stored)); err != nil {
		return "", utils.InternalError("Failed to save file", err)
	}

	return folder + "/" + stored, nil
}

func validateUpload(file *multipart.FileHeader) error {
	maxSize := config.MaxFileSize()
	if file.Size > maxSize {
		return utils.FileError(fmt.Sprintf("File too large. Maximum size is %dMB", maxSize/(1024*1024)))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !config.AllowedFileTypes()[ext] {
		return utils.FileError("File type not allowed")
	}
	return nil
}

// sendFile streams a stored file as a download.
func sendFile(c *gin.Context, fullPath string) {
	c.FileAttachment(fullPath, filepath.Base(fullPath))
}
