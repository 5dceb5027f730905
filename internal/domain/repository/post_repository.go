package repository

import (
	"context"

	"blogspace/internal/domain/entity"
)

// PostRepository defines the interface for post-related database operations.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	// GetByID returns the post regardless of its tombstone flag; callers decide
	// whether a deleted post counts as found.
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	// ListVisible returns non-deleted posts, newest first, optionally scoped to
	// an author. limit <= 0 falls back to a server-side default.
	ListVisible(ctx context.Context, authorID string, limit, offset int) ([]*entity.Post, error)
	// ListAll is the moderation view; includeDeleted exposes tombstones.
	ListAll(ctx context.Context, includeDeleted bool) ([]*entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
}
