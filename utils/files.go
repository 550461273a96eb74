package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadFolder maps an upload form field to its subdirectory under the
// upload root.
func UploadFolder(field string) string {
	switch field {
	case "profile_photo":
		return "profiles"
	case "thesis_file":
		return "thesis"
	case "approval_letter":
		return "letters"
	default:
		return "others"
	}
}

// StoredFilename builds a collision-free name for an uploaded file,
// keeping the original extension.
func StoredFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return uuid.New().String() + ext
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, os.ModePerm)
}

// SanitizeRelativePath normalizes a stored path to forward slashes and
// strips any traversal segments so it stays inside the upload root.
func SanitizeRelativePath(stored string) string {
	cleaned := filepath.ToSlash(filepath.Clean(strings.ReplaceAll(stored, "\\", "/")))
	parts := strings.Split(cleaned, "/")
	safe := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" || part == "." || part == ".." {
			continue
		}
		safe = append(safe, part)
	}
	return strings.Join(safe, "/")
}

// FileExists reports whether a regular file exists at path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
