package donation

import (
	"fmt"

	"foodshare/internal/pkg/errs"
)

// Status represents the lifecycle state of a donation.
// It implements a state machine with defined transitions:
//
//	Available ──> Reserved ──> Completed
//	     ^            │
//	     └────────────┘
//	  (donor rejection reverts)
//
// Completed is terminal; a donation is never deleted.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAvailable is the initial status of a published donation.
	// Available donations carry no reservation or confirmation state.
	StatusAvailable

	// StatusReserved indicates an organization holds the donation's single
	// active reservation. All reservation fields, including the verification
	// code, are set exactly while a donation is reserved or completed.
	StatusReserved

	// StatusCompleted indicates both parties confirmed the handoff.
	// This is a final state with no further transitions allowed.
	StatusCompleted
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusAvailable: "available",
		StatusReserved:  "reserved",
		StatusCompleted: "completed",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable: "available",
		StatusReserved:  "reserved",
		StatusCompleted: "completed",
	}
}

// StatusFromString parses the persisted (lower-case) representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted lower-case name of the status.
// It implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// HasReservation reports whether donations in this status carry
// reservation fields (reserved_by, pickup logistics, verification code).
// They do exactly when reserved or completed, and never when available.
func (s Status) HasReservation() bool {
	return s == StatusReserved || s == StatusCompleted
}

// Reserve transitions the status to Reserved.
// The only valid source state is Available; a reservation attempt from any
// other state reports the conflict the caller should surface.
func (s Status) Reserve() (Status, error) {
	if s != StatusAvailable {
		return 0, errs.NewStateConflictErrorWithCause(
			"donation is not available",
			fmt.Errorf("%s is not a valid status to reserve", s))
	}
	return StatusReserved, nil
}

// Release reverts a reserved donation back to Available, used when the donor
// rejects the proposed pickup.
func (s Status) Release() (Status, error) {
	if s != StatusReserved {
		return 0, errs.NewStateConflictErrorWithCause(
			"donation is not reserved",
			fmt.Errorf("%s is not a valid status to release", s))
	}
	return StatusAvailable, nil
}

// Complete transitions the status to Completed, valid only from Reserved.
func (s Status) Complete() (Status, error) {
	if s != StatusReserved {
		return 0, errs.NewStateConflictErrorWithCause(
			"donation is not reserved",
			fmt.Errorf("%s is not a valid status to complete", s))
	}
	return StatusCompleted, nil
}
