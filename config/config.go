package config

import (
	"os"
	"strconv"
	"strings"
)

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// ServerPort returns the port the HTTP server listens on.
func ServerPort() string {
	return getEnv("SERVER_PORT", "3000")
}

// JWTSecret returns the HS256 signing key for session tokens.
func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// JWTExpireHours returns the token lifetime in hours.
func JWTExpireHours() int {
	hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil || hours <= 0 {
		return 24
	}
	return hours
}

// UploadPath returns the root directory for uploaded files.
func UploadPath() string {
	return getEnv("UPLOAD_PATH", "./uploads")
}

// MaxFileSize returns the upload size limit in bytes.
func MaxFileSize() int64 {
	size, err := strconv.ParseInt(os.Getenv("MAX_FILE_SIZE"), 10, 64)
	if err != nil || size <= 0 {
		return 10 * 1024 * 1024
	}
	return size
}

// AllowedFileTypes returns the set of permitted upload extensions
// (lowercase, with leading dot). Overridable via ALLOWED_FILE_TYPES
// as a comma separated list, e.g. ".pdf,.doc,.docx".
func AllowedFileTypes() map[string]bool {
	raw := os.Getenv("ALLOWED_FILE_TYPES")
	if raw == "" {
		return map[string]bool{
			".pdf":  true,
			".doc":  true,
			".docx": true,
			".png":  true,
			".jpg":  true,
			".jpeg": true,
		}
	}

	allowed := make(map[string]bool)
	for _, ext := range strings.Split(raw, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}
	return allowed
}

// AllowedOrigins returns the CORS allow-list. Empty means same-origin
// tools only; "*" allows everything (development).
func AllowedOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
