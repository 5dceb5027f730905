package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"blogspace/internal/container"
	handlers "blogspace/internal/interface/http"
	"blogspace/internal/interface/middleware"
	"blogspace/pkg/helpers"
)

// AdminModule wires the moderation routes. Every route sits behind the
// identity middleware and the admin role gate.
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.JWT), middleware.AdminOnly())
	admin.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		admin.GET("/users", m.Handler.ListUsers)
		admin.DELETE("/users/:id", m.Handler.DeleteUser)
		admin.GET("/posts", m.Handler.ListPosts)
		admin.DELETE("/posts/:id", m.Handler.DeletePost)
	}
}
