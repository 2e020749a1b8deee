package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"newssense/internal/common"
)

// respondError translates a service error into a JSON error body with the
// matching status code. Unexpected errors never leak their message.
func (s *Server) respondError(c *gin.Context, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError &&
		!errors.Is(err, common.ErrDelivery) && !errors.Is(err, common.ErrUpstream) {
		message = common.ErrInternal.Error()
	}

	if status == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err.Error())
	}

	c.JSON(status, gin.H{"error": message})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrConflict),
		errors.Is(err, common.ErrDuplicate),
		errors.Is(err, common.ErrNoCode),
		errors.Is(err, common.ErrCodeMismatch),
		errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrNotVerified):
		return http.StatusForbidden
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
