package http

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/hksalaudeen/bookman/internal/service"
	"github.com/hksalaudeen/bookman/internal/store"
	"github.com/hksalaudeen/bookman/internal/utils"
	"github.com/hksalaudeen/bookman/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotBookOwner:            http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrBookNotFound:       http.StatusNotFound,
	store.ErrOwnerDoesNotExist:  http.StatusUnauthorized,
	store.ErrBookNotSaved:       http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends the uniform `{message}` error body with the given status.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

// writeValidationErrors flattens the per-field violations accumulated by the
// request validator into the `{errors: [...]}` body, one entry per failing
// field, sorted by field name so the output is stable.
func writeValidationErrors(w http.ResponseWriter, err error) bool {
	var violations validation.Errors
	if !errors.As(err, &violations) {
		return false
	}

	fields := make([]string, 0, len(violations))
	for field := range violations {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, violations[field].Error()))
	}

	utils.WriteJSON(w, models.ValidationErrorResponse{Errors: messages}, http.StatusBadRequest)
	return true
}
