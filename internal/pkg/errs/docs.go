// Package errs provides standardized error types for the transcription
// platform. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package defines one error type per failure class in the lifecycle
// taxonomy:
//   - ObjectNotFoundError: a referenced entity is missing
//   - InvalidStateError: a status precondition on an operation is not met
//   - UnauthorizedError: the acting principal lacks the required role
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError:
//     malformed or missing input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidState)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter maps sentinels to response codes; everything that does not
// unwrap to one of them is treated as an internal failure.
package errs
