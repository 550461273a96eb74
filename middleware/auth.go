package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"sita-api/config"
	"sita-api/models"
	"sita-api/utils"
)

// Claims binds the user id and role into the session token.
type Claims struct {
	UserID int    `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token and loads the current user
// into the request context under "currentUser".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.FailStatus(c, http.StatusUnauthorized, "Token tidak ditemukan", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			utils.FailStatus(c, http.StatusUnauthorized, "Token tidak ditemukan", nil)
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret(), nil
		})
		if err != nil {
			message := "Token tidak valid"
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = "Token telah kadaluarsa"
			}
			utils.FailStatus(c, http.StatusUnauthorized, message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok || !token.Valid {
			utils.FailStatus(c, http.StatusUnauthorized, "Token tidak valid", nil)
			c.Abort()
			return
		}

		// The user may have been removed since the token was issued.
		var user models.User
		if err := config.DB.First(&user, claims.UserID).Error; err != nil {
			utils.FailStatus(c, http.StatusUnauthorized, "User tidak ditemukan", nil)
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Set("currentUser", &user)

		c.Next()
	}
}

// RequireRole rejects requests whose authenticated role differs.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get("role")
		if !exists || current.(string) != role {
			message := "Akses terbatas untuk dosen"
			if role == models.RoleStudent {
				message = "Akses terbatas untuk mahasiswa"
			}
			utils.FailStatus(c, http.StatusForbidden, message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get("currentUser"); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// CurrentUserID returns the authenticated user's id, or 0.
func CurrentUserID(c *gin.Context) int {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return 0
}
