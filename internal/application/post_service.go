package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blogspace/internal/domain/entity"
	repo "blogspace/internal/domain/repository"
	"blogspace/pkg/helpers"
)

// PostService owns the post lifecycle: Active --edit--> Active,
// Active --delete--> Deleted (terminal). Authorship always comes from the
// verified identity, never from a request body.
type PostService struct {
	Posts     repo.PostRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewPostService(posts repo.PostRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

type CreatePostInput struct {
	Title     string
	Content   string
	ImagePath string
}

type UpdatePostInput struct {
	Title     string
	Content   string
	ImagePath string
}

func (s *PostService) Create(ctx context.Context, authorID string, in CreatePostInput) (*entity.Post, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return nil, ErrMissingFields
	}
	p := &entity.Post{
		Title:     in.Title,
		Content:   in.Content,
		ImagePath: in.ImagePath,
		AuthorID:  authorID,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"post_id": p.ID, "author_id": authorID}).Info("post created")
	}
	return p, nil
}

// Get returns a post only while it is not tombstoned.
func (s *PostService) Get(ctx context.Context, id string) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.Deleted {
		return nil, ErrNotFound
	}
	return p, nil
}

// List returns the public feed, newest first. authorID scopes to one owner.
func (s *PostService) List(ctx context.Context, authorID string, limit, offset int) ([]*entity.Post, error) {
	return s.Posts.ListVisible(ctx, authorID, limit, offset)
}

// Update edits an active post. Ownership is exclusive: admins do not get edit
// rights, only delete rights. Empty patch fields keep their prior value.
func (s *PostService) Update(ctx context.Context, id, requesterID string, in UpdatePostInput) (*entity.Post, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.OwnedBy(requesterID) {
		return nil, ErrForbidden
	}
	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Content != "" {
		p.Content = in.Content
	}
	if in.ImagePath != "" {
		p.ImagePath = in.ImagePath
	}
	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SoftDelete tombstones a post. Allowed for the author or an admin; a post
// already tombstoned reads as not found. There is no resurrection path.
func (s *PostService) SoftDelete(ctx context.Context, id, requesterID, requesterRole string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !p.OwnedBy(requesterID) && requesterRole != entity.RoleAdmin {
		return ErrForbidden
	}
	p.Deleted = true
	if err := s.Posts.Update(ctx, p); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"post_id":      p.ID,
			"author_id":    p.AuthorID,
			"requester_id": requesterID,
		}).Info("post soft-deleted")
	}
	return nil
}

// UploadImage stores a post image in GCS and records its public URL on the
// post. Only the author may attach an image.
func (s *PostService) UploadImage(ctx context.Context, postID, requesterID string, r io.Reader, filename, contentType string) (*entity.Post, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, ErrImageUnavailable
	}
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !p.OwnedBy(requesterID) {
		return nil, ErrForbidden
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("posts", postID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}

	p.ImagePath = url
	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
