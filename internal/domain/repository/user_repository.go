package repository

import (
	"context"
	"errors"

	"blogspace/internal/domain/entity"
)

// Shared storage errors returned by repository implementations.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrUnavailable is returned while the database connection is down; the
	// server keeps serving and data operations answer 503.
	ErrUnavailable = errors.New("storage unavailable")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// DeleteCascade removes the user and tombstones every post they authored
	// in a single transaction. It returns the number of posts tombstoned.
	DeleteCascade(ctx context.Context, id string) (int64, error)
}
