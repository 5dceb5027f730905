package handlers

import (
	"github.com/gin-gonic/gin"

	"blogspace/internal/domain/entity"
)

// userJSON serializes a user for API responses. The password hash never
// leaves the process.
func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"role":       u.Role,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

func usersJSON(users []*entity.User) []gin.H {
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userJSON(u))
	}
	return out
}

func postJSON(p *entity.Post) gin.H {
	return gin.H{
		"id":         p.ID,
		"title":      p.Title,
		"content":    p.Content,
		"image_path": p.ImagePath,
		"author_id":  p.AuthorID,
		"deleted":    p.Deleted,
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}

func postsJSON(posts []*entity.Post) []gin.H {
	out := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		out = append(out, postJSON(p))
	}
	return out
}
