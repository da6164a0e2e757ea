// Package errs provides standardized error types for the dispatch application.
//
// Each error type follows a consistent pattern: a sentinel error variable for
// errors.Is classification, a struct carrying the error details, constructor
// functions with and without a cause, and Error/Unwrap methods. Adapters and
// constructors use these types; the planning and reconciliation engines do not
// raise errors at all, malformed data degrades to defaults there.
package errs
