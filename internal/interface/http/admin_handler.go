package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blogspace/internal/application"
	"blogspace/internal/domain/entity"
	"blogspace/internal/interface/middleware"
	"blogspace/pkg/response"
)

// AdminHandler serves the moderation endpoints. Post deletion goes through
// the same PostService policy as the user-facing route, so there is exactly
// one authorization path.
type AdminHandler struct {
	Svc    *application.AdminService
	Posts  *application.PostService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, posts *application.PostService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Posts: posts, Logger: logger}
}

// ListUsers GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, usersJSON(users), "users", gin.H{"count": len(users)})
}

// DeleteUser DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	tombstoned, err := h.Svc.DeleteUser(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{
		"deleted":          true,
		"posts_tombstoned": tombstoned,
	}, "user deleted", nil)
}

// ListPosts GET /api/admin/posts?include_deleted=true
func (h *AdminHandler) ListPosts(c *gin.Context) {
	includeDeleted := c.Query("include_deleted") == "true"
	posts, err := h.Svc.ListPosts(c.Request.Context(), includeDeleted)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, postsJSON(posts), "posts", gin.H{
		"count":           len(posts),
		"include_deleted": includeDeleted,
	})
}

// DeletePost DELETE /api/admin/posts/:id
func (h *AdminHandler) DeletePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Posts.SoftDelete(c.Request.Context(), id, uid, entity.RoleAdmin); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "post deleted", nil)
}
