package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied, so that validation always fails with a usable message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having been built through its designated
// constructor. Embedding it lets Validate distinguish constructed values from
// zero values, which keeps domain invariants intact.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed. Call it inside
// the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was properly constructed.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
