package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"studytrack/internal/domain"
)

// translationKey names the message the interaction layer should show. The
// translator echoes the key itself when no table matches, so responses are
// always populated.
func classify(err error) (status int, key string) {
	var validationErr *domain.ValidationError
	var roleMismatchErr *domain.RoleMismatchError
	var rateLimitedErr *domain.RateLimitedError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "login_required"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "teacher_required"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.As(err, &roleMismatchErr):
		return http.StatusConflict, "role_mismatch"
	case errors.Is(err, domain.ErrAlreadyAnswered):
		return http.StatusConflict, "doubt_already_answered"
	case errors.Is(err, domain.ErrTeacherNotVerified):
		return http.StatusUnprocessableEntity, "teacher_not_verified"
	case errors.As(err, &rateLimitedErr):
		return http.StatusTooManyRequests, "rate_limited"
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "storage_unavailable"
	}
	return http.StatusInternalServerError, "internal_error"
}

func (h *Handler) fail(c echo.Context, err error) error {
	status, key := classify(err)

	lang := "English"
	if user := currentSession(c).Current(); user != nil && user.Preferences.Language != "" {
		lang = user.Preferences.Language
	}

	return c.JSON(status, map[string]string{
		"error":   key,
		"message": h.translator.T(key, lang),
		"detail":  err.Error(),
	})
}
