package http

import (
	"errors"
	"net/http"
	"testing"

	"foodshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"forbidden", errs.NewActionForbiddenError("reserve donation"), http.StatusForbidden},
		{"not_found", errs.NewObjectNotFoundError("donation", "abc"), http.StatusNotFound},
		{"state_conflict", errs.NewStateConflictError("donation is not available"), http.StatusConflict},
		{"required", errs.NewValueIsRequiredError("title"), http.StatusBadRequest},
		{"invalid", errs.NewValueIsInvalidError("verificationCode"), http.StatusBadRequest},
		{"out_of_range", errs.NewValueIsOutOfRangeError("donations", 25, 1, 20), http.StatusBadRequest},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, statusFromError(tc.err))
		})
	}
}

func TestStatusFromError_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("item 2"), errs.NewValueIsRequiredError("title"))

	assert.Equal(t, http.StatusBadRequest, statusFromError(wrapped))
}
