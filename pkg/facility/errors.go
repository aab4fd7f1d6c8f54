package facility

import "fmt"

// The four error kinds every operation can fail with. The HTTP layer maps
// them to 400/409/403/404 via errors.As; nothing here is retried and nothing
// is fatal to the process.

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Constraint)
}

// StateError reports an operation attempted against an entity whose current
// status disqualifies it.
type StateError struct {
	Op           string
	Current      string
	Precondition string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s while %s: requires %s", e.Op, e.Current, e.Precondition)
}

// AuthzError reports an actor lacking ownership or role.
type AuthzError struct {
	Reason string
}

func (e *AuthzError) Error() string {
	return "not allowed: " + e.Reason
}

// NotFoundError reports an absent referenced entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func errValidation(field, constraint string) error {
	return &ValidationError{Field: field, Constraint: constraint}
}

func errState(op, current, precondition string) error {
	return &StateError{Op: op, Current: current, Precondition: precondition}
}

func errAuthz(reason string) error {
	return &AuthzError{Reason: reason}
}

func errNotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}
