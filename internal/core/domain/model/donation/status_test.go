package donation_test

import (
	"testing"

	"foodshare/internal/core/domain/model/donation"
	"foodshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("parses persisted representations", func(t *testing.T) {
		cases := map[string]donation.Status{
			"available": donation.StatusAvailable,
			"reserved":  donation.StatusReserved,
			"completed": donation.StatusCompleted,
		}
		for input, expected := range cases {
			status, err := donation.StatusFromString(input)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("rejects unknown representations", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "Available", "RESERVED", "done"} {
			_, err := donation.StatusFromString(input)
			require.Error(t, err)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, donation.StatusAvailable.Validate())
	require.NoError(t, donation.StatusReserved.Validate())
	require.NoError(t, donation.StatusCompleted.Validate())
	require.Error(t, donation.StatusUnknown.Validate())
	require.Error(t, donation.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "available", donation.StatusAvailable.String())
	assert.Equal(t, "reserved", donation.StatusReserved.String())
	assert.Equal(t, "completed", donation.StatusCompleted.String())
	assert.Equal(t, "unknown", donation.StatusUnknown.String())
	assert.Equal(t, "unknown", donation.Status(99).String())
}

func TestStatus_HasReservation(t *testing.T) {
	assert.False(t, donation.StatusAvailable.HasReservation())
	assert.True(t, donation.StatusReserved.HasReservation())
	assert.True(t, donation.StatusCompleted.HasReservation())
}

func TestStatus_Reserve(t *testing.T) {
	t.Run("available can be reserved", func(t *testing.T) {
		next, err := donation.StatusAvailable.Reserve()

		require.NoError(t, err)
		assert.Equal(t, donation.StatusReserved, next)
	})

	t.Run("reserved and completed cannot be reserved again", func(t *testing.T) {
		for _, status := range []donation.Status{donation.StatusReserved, donation.StatusCompleted} {
			_, err := status.Reserve()
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrStateConflict)
		}
	})
}

func TestStatus_Release(t *testing.T) {
	t.Run("reserved reverts to available", func(t *testing.T) {
		next, err := donation.StatusReserved.Release()

		require.NoError(t, err)
		assert.Equal(t, donation.StatusAvailable, next)
	})

	t.Run("available and completed cannot be released", func(t *testing.T) {
		for _, status := range []donation.Status{donation.StatusAvailable, donation.StatusCompleted} {
			_, err := status.Release()
			require.ErrorIs(t, err, errs.ErrStateConflict)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("reserved can complete", func(t *testing.T) {
		next, err := donation.StatusReserved.Complete()

		require.NoError(t, err)
		assert.Equal(t, donation.StatusCompleted, next)
		assert.True(t, next.IsTerminal())
	})

	t.Run("available cannot complete directly", func(t *testing.T) {
		_, err := donation.StatusAvailable.Complete()
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		_, err := donation.StatusCompleted.Complete()
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}
