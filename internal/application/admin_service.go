package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"blogspace/internal/domain/entity"
	repo "blogspace/internal/domain/repository"
)

// AdminService backs the moderation endpoints: user listing, cascading user
// deletion, and the moderation post view.
type AdminService struct {
	Users  repo.UserRepository
	Posts  repo.PostRepository
	Logger *logrus.Logger
}

func NewAdminService(users repo.UserRepository, posts repo.PostRepository, logger *logrus.Logger) *AdminService {
	return &AdminService{Users: users, Posts: posts, Logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return s.Users.List(ctx)
}

// DeleteUser removes the user and tombstones all their posts in one storage
// transaction, so no live post can outlive its author.
func (s *AdminService) DeleteUser(ctx context.Context, userID string) (int64, error) {
	tombstoned, err := s.Users.DeleteCascade(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, ErrNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("cascade delete failed, rolled back")
		}
		return 0, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "posts_tombstoned": tombstoned}).Info("user deleted")
	}
	return tombstoned, nil
}

// ListPosts is the moderation view. Tombstones are hidden unless explicitly
// requested.
func (s *AdminService) ListPosts(ctx context.Context, includeDeleted bool) ([]*entity.Post, error) {
	return s.Posts.ListAll(ctx, includeDeleted)
}
