// Package auth defines the verified principal passed into every lifecycle
// operation. The principal is produced once by the transport layer from the
// authentication collaborator's verdict and handed down explicitly; command
// handlers never re-derive identity or role on their own.
package auth

import (
	"fmt"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/errs"
)

// Role identifies the capability class of a principal within the pipeline.
type Role int

const (
	RoleUnknown Role = iota

	// RoleCustomer owns files and orders.
	RoleCustomer

	// RoleTranscriber works transcription assignments.
	RoleTranscriber

	// RoleQC reviews transcripts before finalization.
	RoleQC

	// RoleFinalizer performs the last review stage before delivery.
	RoleFinalizer

	// RoleOM is the operations manager who screens and routes files.
	RoleOM

	// RoleAdmin has unrestricted back-office access.
	RoleAdmin
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:     "Unknown",
		RoleCustomer:    "Customer",
		RoleTranscriber: "Transcriber",
		RoleQC:          "QC",
		RoleFinalizer:   "Finalizer",
		RoleOM:          "OM",
		RoleAdmin:       "Admin",
	}
}

// ParseRole maps the wire representation of a role to its Role value.
func ParseRole(s string) (Role, error) {
	for role, str := range roleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Principal is an authenticated actor. It is immutable once constructed.
type Principal struct {
	id   kernel.UUID
	role Role
}

// NewPrincipal creates a verified principal from an already-authenticated
// identity.
func NewPrincipal(id kernel.UUID, role Role) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}
	return Principal{id: id, role: role}, nil
}

// ID returns the principal's user identifier.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Role returns the principal's role.
func (p Principal) Role() Role {
	return p.role
}

// Validate rejects the zero-value principal.
func (p Principal) Validate() error {
	if err := p.id.Validate(); err != nil {
		return err
	}
	return p.role.Validate()
}

// Require returns an UnauthorizedError unless the principal holds one of the
// allowed roles. Admin passes every check.
func (p Principal) Require(action string, allowed ...Role) error {
	if p.role == RoleAdmin {
		return nil
	}
	for _, role := range allowed {
		if p.role == role {
			return nil
		}
	}
	return errs.NewUnauthorizedError(action, p.role.String())
}

// RequireOwner returns an UnauthorizedError unless the principal is the given
// owner or holds staff privileges (OM or Admin).
func (p Principal) RequireOwner(action string, owner kernel.UUID) error {
	if p.role == RoleAdmin || p.role == RoleOM {
		return nil
	}
	if p.id.IsEqual(owner) {
		return nil
	}
	return errs.NewUnauthorizedError(action, p.role.String())
}
