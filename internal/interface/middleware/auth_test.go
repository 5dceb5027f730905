package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"blogspace/internal/domain/entity"
	"blogspace/pkg/helpers"
)

func testRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(CtxUserIDKey),
			"role":    c.GetString(CtxUserRoleKey),
		})
	})
	r.GET("/admin", Auth(jwt), AdminOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuth(t *testing.T) {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	r := testRouter(jwt)

	token, _, err := jwt.GenerateAccessToken("u1", entity.RoleUser)
	assert.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer scheme", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuth_RejectsExpiredToken(t *testing.T) {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)
	token, _, err := jwt.GenerateAccessToken("u1", entity.RoleUser)
	assert.NoError(t, err)

	r := testRouter(jwt)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	other := helpers.NewJWTManager("other-secret", "refresh-secret", time.Hour, 24*time.Hour)
	token, _, err := other.GenerateAccessToken("u1", entity.RoleUser)
	assert.NoError(t, err)

	r := testRouter(jwt)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly(t *testing.T) {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	r := testRouter(jwt)

	userToken, _, _ := jwt.GenerateAccessToken("u1", entity.RoleUser)
	adminToken, _, _ := jwt.GenerateAccessToken("a1", entity.RoleAdmin)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{"user role is rejected", userToken, http.StatusForbidden},
		{"admin role passes", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
