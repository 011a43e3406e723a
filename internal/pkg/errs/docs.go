// Package errs provides standardized error types for the parcel matching service.
// Every type follows the same shape: a sentinel error, a struct carrying the details,
// constructors with and without cause, an Error method and an Unwrap method returning
// the sentinel so callers classify errors with errors.Is and inspect them with errors.As.
//
// The sentinels form the error taxonomy the HTTP adapter maps to status codes:
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: validation
//   - ErrObjectNotFound: lookup miss
//   - ErrPreconditionFailed: a prerequisite such as a profile is missing
//   - ErrConflict, ErrAlreadyExists: the object state no longer allows the operation
package errs
