package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"sita-api/config"
	"sita-api/middleware"
	"sita-api/models"
	"sita-api/utils"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates username/password and issues a session token.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, utils.ValidationError(
			utils.FieldError{Field: "username", Message: "Username harus diisi"},
			utils.FieldError{Field: "password", Message: "Password harus diisi"},
		))
		return
	}

	var user models.User
	err := config.DB.Where("username = ?", req.Username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.FailStatus(c, http.StatusUnauthorized, "Username atau password salah", nil)
			return
		}
		utils.Fail(c, utils.InternalError("Failed to fetch user", err))
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		utils.FailStatus(c, http.StatusUnauthorized, "Username atau password salah", nil)
		return
	}

	token, err := GenerateToken(&user)
	if err != nil {
		utils.Fail(c, utils.InternalError("Failed to generate token", err))
		return
	}

	utils.OK(c, "Login berhasil", gin.H{
		"token": token,
		"user":  user,
	})
}

// GetCurrentUser returns the authenticated user's profile.
func GetCurrentUser(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.FailStatus(c, http.StatusUnauthorized, "User tidak ditemukan", nil)
		return
	}
	utils.OK(c, "", user)
}

// GenerateToken signs an HS256 token carrying the user id and role.
func GenerateToken(user *models.User) (string, error) {
	claims := middleware.Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(config.JWTExpireHours()) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
