package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"blogspace/internal/container"
	handlers "blogspace/internal/interface/http"
	"blogspace/internal/interface/middleware"
	"blogspace/pkg/helpers"
)

// PostModule wires the post lifecycle routes.
// Public: GET /api/posts, GET /api/posts/:id
// Protected: GET /api/my-posts, POST /api/posts, PUT/DELETE /api/posts/:id,
// POST /api/posts/:id/image
type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	feedLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/posts", feedLimiter, m.Handler.List)
	rg.GET("/posts/:id", feedLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/my-posts", m.Handler.ListMine)
		auth.POST("/posts", m.Handler.Create)
		auth.PUT("/posts/:id", m.Handler.Update)
		auth.DELETE("/posts/:id", m.Handler.Delete)
		auth.POST("/posts/:id/image", m.Handler.UploadImage)
	}
}
