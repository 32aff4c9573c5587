package errs_test

import (
	"errors"
	"testing"

	"foodshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("donationId", "123")

		assert.Equal(t, "donationId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("donationId", "123", cause)

		assert.Equal(t, "donationId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: donationId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("category")

		assert.Equal(t, "category", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: category", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("category", cause)

		assert.Equal(t, "category", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: category (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("pickupPersonID length", 25, 6, 20)

		assert.Equal(t, "pickupPersonID length", err.ParamName)
		assert.Equal(t, 25, err.Value)
		assert.Equal(t, 6, err.Min)
		assert.Equal(t, 20, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"value is invalid: 25 is pickupPersonID length, min value is 6, max value is 20",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 1, 1000, cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 1, max value is 1000 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("title")

		assert.Equal(t, "title", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: title", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("title", cause)

		assert.Equal(t, "title", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: title (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestStateConflictError(t *testing.T) {
	t.Run("NewStateConflictError", func(t *testing.T) {
		err := errs.NewStateConflictError("donation is not available")

		assert.Equal(t, "donation is not available", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "state conflict: donation is not available", err.Error())
		assert.Equal(t, errs.ErrStateConflict, err.Unwrap())
	})

	t.Run("NewStateConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("row already updated")
		err := errs.NewStateConflictErrorWithCause("reservation already confirmed", cause)

		assert.Equal(t, "reservation already confirmed", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "state conflict: reservation already confirmed (cause: row already updated)", err.Error())
		assert.Equal(t, errs.ErrStateConflict, err.Unwrap())
	})
}

func TestActionForbiddenError(t *testing.T) {
	t.Run("NewActionForbiddenError", func(t *testing.T) {
		err := errs.NewActionForbiddenError("only the donor can confirm the pickup time")

		assert.Equal(t, "only the donor can confirm the pickup time", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "action is forbidden: only the donor can confirm the pickup time", err.Error())
		assert.Equal(t, errs.ErrActionForbidden, err.Unwrap())
	})

	t.Run("NewActionForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("actor is unrelated to the donation")
		err := errs.NewActionForbiddenErrorWithCause("confirm", cause)

		assert.Equal(t, "confirm", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "action is forbidden: confirm (cause: actor is unrelated to the donation)", err.Error())
		assert.Equal(t, errs.ErrActionForbidden, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrStateConflict)
		require.Error(t, errs.ErrActionForbidden)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "state conflict", errs.ErrStateConflict.Error())
		assert.Equal(t, "action is forbidden", errs.ErrActionForbidden.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("donationId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("category")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("title")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		stateConflictErr := errs.NewStateConflictError("donation is not available")
		require.ErrorIs(t, stateConflictErr, errs.ErrStateConflict)

		actionForbiddenErr := errs.NewActionForbiddenError("reserve")
		require.ErrorIs(t, actionForbiddenErr, errs.ErrActionForbidden)
	})
}
