// Package actor models the authenticated party performing a lifecycle
// operation. The core receives an already verified identity and role from the
// transport layer; this package turns that identity into the enumerated
// capability checks the use cases rely on, so role and
// relationship-to-donation decisions happen in one place instead of being
// re-derived ad hoc by each component.
package actor

import (
	"errors"
	"fmt"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
)

// Role distinguishes the two kinds of authenticated parties: donors, who
// publish donations, and organizations, who reserve and collect them.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleDonor identifies a donating business.
	RoleDonor

	// RoleOrganization identifies a receiving organization.
	RoleOrganization
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:      "unknown",
		RoleDonor:        "donor",
		RoleOrganization: "organization",
	}
}

// RoleFromString parses the wire representation of a role ("donor" or
// "organization").
func RoleFromString(s string) (Role, error) {
	for role, str := range roleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleDonor && r != RoleOrganization {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is the authenticated party on whose behalf an operation runs.
// It is a value object carrying the verified identity and role; it performs
// no authentication itself.
type Actor struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewActor creates an Actor from a verified identity and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{id: id, role: role, isConstructed: true}, nil
}

// ID returns the actor's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsOrganization reports whether the actor holds the organization role.
func (a Actor) IsOrganization() bool {
	return a.role == RoleOrganization
}

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// Relationship describes how an actor relates to a specific donation:
// as its donor, as the organization that reserved it, or not at all.
type Relationship int

const (
	// RelationNone means the actor is unrelated to the donation.
	RelationNone Relationship = iota

	// RelationDonor means the actor owns the donation.
	RelationDonor

	// RelationRecipient means the actor holds the donation's reservation.
	RelationRecipient
)

// String returns the wire representation of the relationship.
func (r Relationship) String() string {
	switch r {
	case RelationDonor:
		return "donor"
	case RelationRecipient:
		return "recipient"
	default:
		return "none"
	}
}

// ResolveRelationship classifies an actor against a donation's donor and
// reserver. The donor side wins when an actor somehow matches both
// (the self-reservation case, which role checks make unlikely but which the
// lifecycle does not explicitly forbid).
func ResolveRelationship(actorID kernel.UUID, donorID kernel.UUID, reservedBy *kernel.UUID) Relationship {
	if actorID.IsEqual(donorID) {
		return RelationDonor
	}
	if reservedBy != nil && actorID.IsEqual(*reservedBy) {
		return RelationRecipient
	}
	return RelationNone
}
