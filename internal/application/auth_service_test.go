package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"blogspace/internal/domain/entity"
	"blogspace/internal/domain/repository"
	"blogspace/pkg/helpers"
)

func testJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("test-access-secret", "test-refresh-secret", time.Hour, 24*time.Hour)
}

func newAuthService(users *MockUserRepository) *AuthService {
	return NewAuthService(users, testJWT(), nil, "blogspace", false, nil)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration defaults to user role",
			userName: "Ava",
			email:    "a@x.com",
			password: "password1",
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, repository.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
			},
		},
		{
			name:     "duplicate email",
			userName: "Ava",
			email:    "taken@x.com",
			password: "password1",
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "taken@x.com").Return(&entity.User{Email: "taken@x.com"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:     "duplicate email lost race at insert",
			userName: "Ava",
			email:    "race@x.com",
			password: "password1",
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "race@x.com").Return(nil, repository.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:          "empty name rejected",
			userName:      "  ",
			email:         "a@x.com",
			password:      "password1",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := newAuthService(mockRepo)
			u, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, u)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, entity.RoleUser, u.Role)
				assert.NotEqual(t, tt.password, u.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(tt.password)))
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.DefaultCost)
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByEmail", mock.Anything, "known@x.com").Return(&entity.User{
		ID:       "u1",
		Email:    "known@x.com",
		Password: string(hash),
		Role:     entity.RoleUser,
	}, nil)
	mockRepo.On("GetByEmail", mock.Anything, "unknown@x.com").Return(nil, repository.ErrNotFound)

	svc := newAuthService(mockRepo)

	_, _, errUnknown := svc.Login(context.Background(), "unknown@x.com", "whatever")
	_, _, errWrongPass := svc.Login(context.Background(), "known@x.com", "wrongpass")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestAuthService_Login_IssuesTokensWithRole(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.DefaultCost)
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByEmail", mock.Anything, "admin@x.com").Return(&entity.User{
		ID:       "admin-1",
		Email:    "admin@x.com",
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}, nil)

	jwt := testJWT()
	svc := NewAuthService(mockRepo, jwt, nil, "blogspace", false, nil)

	u, pair, err := svc.Login(context.Background(), "admin@x.com", "rightpass")
	assert.NoError(t, err)
	assert.Equal(t, "admin-1", u.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := jwt.ParseAccessToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "admin-1", claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestAuthService_Refresh_RotatesPair(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByID", mock.Anything, "u1").Return(&entity.User{
		ID:   "u1",
		Role: entity.RoleUser,
	}, nil)

	jwt := testJWT()
	svc := NewAuthService(mockRepo, jwt, nil, "blogspace", false, nil)

	refresh, _, err := jwt.GenerateRefreshToken("u1", entity.RoleUser)
	assert.NoError(t, err)

	_, pair, err := svc.Refresh(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	_, _, err = svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// an access token is not accepted as a refresh token
	access, _, err := jwt.GenerateAccessToken("u1", entity.RoleUser)
	assert.NoError(t, err)
	_, _, err = svc.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
