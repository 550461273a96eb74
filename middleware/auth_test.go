package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"sita-api/utils"
)

func signToken(t *testing.T, secret []byte, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		UserID: 1,
		Role:   "mahasiswa",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func performAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body utils.APIResponse
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
	}
	return w, body
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	for _, header := range []string{"", "Basic dXNlcjpwYXNz", "Bearer ", "token-without-scheme"} {
		w, body := performAuth(t, header)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
		if body.Message != "Token tidak ditemukan" {
			t.Fatalf("header %q: unexpected message %q", header, body.Message)
		}
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w, body := performAuth(t, "Bearer not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body.Message != "Token tidak valid" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestAuthMiddlewareWrongSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := signToken(t, []byte("different-secret"), time.Now().Add(time.Hour))
	w, body := performAuth(t, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body.Message != "Token tidak valid" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := signToken(t, []byte("test-secret"), time.Now().Add(-time.Minute))
	w, body := performAuth(t, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body.Message != "Token telah kadaluarsa" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name        string
		contextRole string
		required    string
		status      int
		message     string
	}{
		{"lecturer allowed", "dosen", "dosen", http.StatusOK, ""},
		{"student allowed", "mahasiswa", "mahasiswa", http.StatusOK, ""},
		{"student blocked from lecturer route", "mahasiswa", "dosen", http.StatusForbidden, "Akses terbatas untuk dosen"},
		{"lecturer blocked from student route", "dosen", "mahasiswa", http.StatusForbidden, "Akses terbatas untuk mahasiswa"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/x",
				func(c *gin.Context) { c.Set("role", tc.contextRole) },
				RequireRole(tc.required),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.message != "" {
				var body utils.APIResponse
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("invalid JSON response: %v", err)
				}
				if body.Message != tc.message {
					t.Fatalf("unexpected message: %q", body.Message)
				}
			}
		})
	}
}

func TestRequireRoleWithoutAuthContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/x", RequireRole("dosen"), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
