package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blogspace/internal/application"
	"blogspace/internal/interface/middleware"
	"blogspace/pkg/response"
	"blogspace/pkg/validation"
)

const maxImageSize = 10 << 20 // 10 MiB

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

// createPostRequest deliberately has no author field: authorship comes from
// the verified identity, a client-supplied author is ignored by design.
type createPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type updatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

// idParam validates the :id path segment; a malformed id reads as not found,
// same as a missing row.
func idParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Fail(c, http.StatusNotFound, response.KindNotFound, "not found", nil)
		return "", false
	}
	return id, true
}

// List GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	posts, err := h.Svc.List(c.Request.Context(), "", limit, offset)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, postsJSON(posts), "posts", gin.H{"count": len(posts)})
}

// Get GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, postJSON(p), "post", nil)
}

// ListMine GET /api/my-posts
func (h *PostHandler) ListMine(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	limit, offset := pageParams(c)
	posts, err := h.Svc.List(c.Request.Context(), uid, limit, offset)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, postsJSON(posts), "my posts", gin.H{"count": len(posts)})
}

// Create POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindValidation, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Create(c.Request.Context(), uid, application.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, postJSON(p), "post created", nil)
}

// Update PUT /api/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindValidation, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Update(c.Request.Context(), id, uid, application.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, postJSON(p), "post updated", nil)
}

// Delete DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	role := c.GetString(middleware.CtxUserRoleKey)
	if err := h.Svc.SoftDelete(c.Request.Context(), id, uid, role); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "post deleted", nil)
}

// UploadImage POST /api/posts/:id/image (multipart field "image")
func (h *PostHandler) UploadImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindValidation, "image file is required", nil)
		return
	}
	if fileHeader.Size > maxImageSize {
		response.Fail(c, http.StatusBadRequest, response.KindValidation, "image too large", nil)
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindValidation, "unreadable image file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.UploadImage(c.Request.Context(), id, uid, f, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, postJSON(p), "image uploaded", nil)
}
