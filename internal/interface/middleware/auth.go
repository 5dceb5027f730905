package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogspace/internal/domain/entity"
	"blogspace/pkg/helpers"
	"blogspace/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// Auth reads the Authorization header, validates the bearer token, and
// attaches the identity (user id, role) to the Gin context. It never touches
// storage; the claims are the identity for the rest of the request.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Abort(c, http.StatusUnauthorized, response.KindUnauthenticated, "no token provided")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, response.KindInvalidToken, "invalid token")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}

// AdminOnly is the role gate: pure predicate over the attached identity.
// Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRoleKey) != entity.RoleAdmin {
			response.Abort(c, http.StatusForbidden, response.KindForbidden, "admin access only")
			return
		}
		c.Next()
	}
}
