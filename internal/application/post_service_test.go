package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogspace/internal/domain/entity"
	"blogspace/internal/domain/repository"
)

func newPostService(posts *MockPostRepository) *PostService {
	return NewPostService(posts, nil, "", nil)
}

func activePost(id, authorID string) *entity.Post {
	return &entity.Post{
		ID:       id,
		Title:    "Hello",
		Content:  "First post",
		AuthorID: authorID,
	}
}

func TestPostService_Create(t *testing.T) {
	tests := []struct {
		name          string
		authorID      string
		input         CreatePostInput
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name:     "successful create attributes the identity author",
			authorID: "author-1",
			input:    CreatePostInput{Title: "Hello", Content: "First post"},
			setupMock: func(m *MockPostRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Post) bool {
					return p.AuthorID == "author-1" && !p.Deleted
				})).Return(nil)
			},
		},
		{
			name:          "empty title rejected",
			authorID:      "author-1",
			input:         CreatePostInput{Title: "   ", Content: "body"},
			setupMock:     func(m *MockPostRepository) {},
			expectedError: ErrMissingFields,
		},
		{
			name:          "empty content rejected",
			authorID:      "author-1",
			input:         CreatePostInput{Title: "Hello", Content: ""},
			setupMock:     func(m *MockPostRepository) {},
			expectedError: ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			svc := newPostService(mockRepo)
			p, err := svc.Create(context.Background(), tt.authorID, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.authorID, p.AuthorID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_Get_ExcludesTombstones(t *testing.T) {
	mockRepo := new(MockPostRepository)
	deleted := activePost("p1", "author-1")
	deleted.Deleted = true
	mockRepo.On("GetByID", mock.Anything, "p1").Return(deleted, nil)
	mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	svc := newPostService(mockRepo)

	_, err := svc.Get(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostService_Update_OwnershipExclusive(t *testing.T) {
	tests := []struct {
		name          string
		requesterID   string
		post          *entity.Post
		expectUpdate  bool
		expectedError error
	}{
		{
			name:         "author may edit",
			requesterID:  "author-1",
			post:         activePost("p1", "author-1"),
			expectUpdate: true,
		},
		{
			name:          "stranger is forbidden",
			requesterID:   "author-2",
			post:          activePost("p1", "author-1"),
			expectedError: ErrForbidden,
		},
		{
			// admins get delete rights, not edit rights
			name:          "admin without ownership is forbidden",
			requesterID:   "admin-1",
			post:          activePost("p1", "author-1"),
			expectedError: ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			mockRepo.On("GetByID", mock.Anything, tt.post.ID).Return(tt.post, nil)
			if tt.expectUpdate {
				mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Post")).Return(nil)
			}

			svc := newPostService(mockRepo)
			p, err := svc.Update(context.Background(), tt.post.ID, tt.requesterID, UpdatePostInput{Title: "Edited"})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Edited", p.Title)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_Update_PatchKeepsUnsetFields(t *testing.T) {
	mockRepo := new(MockPostRepository)
	post := activePost("p1", "author-1")
	post.Content = "original content"
	mockRepo.On("GetByID", mock.Anything, "p1").Return(post, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Post")).Return(nil)

	svc := newPostService(mockRepo)
	p, err := svc.Update(context.Background(), "p1", "author-1", UpdatePostInput{Title: "New title"})

	assert.NoError(t, err)
	assert.Equal(t, "New title", p.Title)
	assert.Equal(t, "original content", p.Content)
}

func TestPostService_Update_DeletedReadsAsNotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	post := activePost("p1", "author-1")
	post.Deleted = true
	mockRepo.On("GetByID", mock.Anything, "p1").Return(post, nil)

	svc := newPostService(mockRepo)
	_, err := svc.Update(context.Background(), "p1", "author-1", UpdatePostInput{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostService_SoftDelete(t *testing.T) {
	tests := []struct {
		name          string
		requesterID   string
		requesterRole string
		post          *entity.Post
		alreadyGone   bool
		expectedError error
	}{
		{
			name:          "author may delete",
			requesterID:   "author-1",
			requesterRole: entity.RoleUser,
			post:          activePost("p1", "author-1"),
		},
		{
			name:          "admin may delete another author's post",
			requesterID:   "admin-1",
			requesterRole: entity.RoleAdmin,
			post:          activePost("p1", "author-1"),
		},
		{
			name:          "stranger is forbidden",
			requesterID:   "author-2",
			requesterRole: entity.RoleUser,
			post:          activePost("p1", "author-1"),
			expectedError: ErrForbidden,
		},
		{
			name:          "already deleted reads as not found",
			requesterID:   "author-1",
			requesterRole: entity.RoleUser,
			post:          activePost("p1", "author-1"),
			alreadyGone:   true,
			expectedError: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			if tt.alreadyGone {
				tt.post.Deleted = true
			}
			mockRepo.On("GetByID", mock.Anything, tt.post.ID).Return(tt.post, nil)
			if tt.expectedError == nil {
				mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Post) bool {
					return p.Deleted
				})).Return(nil)
			}

			svc := newPostService(mockRepo)
			err := svc.SoftDelete(context.Background(), tt.post.ID, tt.requesterID, tt.requesterRole)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.post.Deleted)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_List_ScopesToOwner(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mine := []*entity.Post{activePost("p1", "author-1")}
	mockRepo.On("ListVisible", mock.Anything, "author-1", 50, 0).Return(mine, nil)

	svc := newPostService(mockRepo)
	posts, err := svc.List(context.Background(), "author-1", 50, 0)

	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "author-1", posts[0].AuthorID)
	mockRepo.AssertExpectations(t)
}
