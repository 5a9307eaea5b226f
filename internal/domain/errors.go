package domain

import "errors"

// ErrNotFound is returned by service functions when the requested resource
// does not exist (a trip ID nobody has, a POI missing from the library).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. unknown swipe action, missing budget tier).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
