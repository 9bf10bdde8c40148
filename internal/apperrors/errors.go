package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the credentials are valid but the account lacks the
// admin role required to use this application.
var ErrForbidden = errors.New("forbidden: admin role required")

// ErrCategoryInUse indicates a category cannot be deleted because cash book
// entries still reference it.
var ErrCategoryInUse = errors.New("category is still referenced by cash book entries")

// ErrUnknownKind indicates a transaction carries a direction tag outside
// {INBOUND, OUTBOUND}. Aggregation refuses to guess a sign for it.
var ErrUnknownKind = errors.New("unknown transaction kind")
