package apperrors

import (
	"errors"
	"net/http"
)

// StatusCode maps err onto the HTTP status it should be reported with.
func StatusCode(err error) int {
	var scopeErr *ScopeError
	if errors.As(err, &scopeErr) {
		switch scopeErr.Reason {
		case ScopeNotAuthenticated:
			return http.StatusUnauthorized
		case ScopeNoARSelected:
			return http.StatusConflict
		default:
			return http.StatusForbidden
		}
	}
	var invErr *InvariantError
	if errors.As(err, &invErr) {
		return http.StatusUnprocessableEntity
	}
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
