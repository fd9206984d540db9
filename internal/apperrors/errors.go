package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates that the caller is not allowed to use one of the
// requested currencies.
var ErrForbidden = errors.New("currency not allowed")

// ErrPreferencesNotFound indicates that the caller has no currency preference
// record configured yet.
var ErrPreferencesNotFound = errors.New("user currency preferences not found")

// ErrUpstreamUnavailable indicates that the external rate provider could not be
// reached or did not return a usable rate.
var ErrUpstreamUnavailable = errors.New("exchange rate provider unavailable")

// ErrPersistence indicates that a write to the record store failed.
var ErrPersistence = errors.New("persistence failure")
