package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCurrency indicates a currency code outside the supported set.
var ErrInvalidCurrency = errors.New("unsupported currency code")

// ErrUpstreamUnavailable indicates that the external rate source could not be reached.
var ErrUpstreamUnavailable = errors.New("rate source unavailable")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")
