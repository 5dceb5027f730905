package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogspace/internal/application"
	"blogspace/internal/domain/repository"
	"blogspace/pkg/response"
)

// fail maps application failures onto the HTTP error taxonomy. Anything not
// explicitly typed is a 500 with no internals leaked.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrMissingFields):
		response.Fail(c, http.StatusBadRequest, response.KindValidation, err.Error(), nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Fail(c, http.StatusConflict, response.KindDuplicateEmail, "email already registered", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.KindInvalidCredentials, "invalid credentials", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Fail(c, http.StatusForbidden, response.KindForbidden, "forbidden", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.KindNotFound, "not found", nil)
	case errors.Is(err, repository.ErrUnavailable):
		response.Fail(c, http.StatusServiceUnavailable, response.KindStorageUnavailable, "storage unavailable", nil)
	case errors.Is(err, application.ErrImageUnavailable):
		response.Fail(c, http.StatusServiceUnavailable, response.KindStorageUnavailable, "image storage not configured", nil)
	default:
		response.Fail(c, http.StatusInternalServerError, response.KindInternal, "internal error", nil)
	}
}
