package fieldElements

import "errors"

// This file collects all errors that can be returned by functions in this package.
// Note that the arithmetic itself never returns errors; these only concern parsing and tier lookup.
//
// IMPORTANT: We often return errors wrapping some error given here. Never compare errors for equality. Use [errors.Is]

// ErrorPrefix is the prefix used by all error message strings originating from this package.
const ErrorPrefix = "mont381 / field element: "

var (
	// ErrInvalidLiteral is returned (wrapped) when a string could not be parsed as an integer.
	ErrInvalidLiteral = errors.New(ErrorPrefix + "string is not a valid integer literal")
	// ErrOutOfRange is returned (wrapped) when a parsed value is negative or does not fit the requested range.
	ErrOutOfRange = errors.New(ErrorPrefix + "value out of range")
	// ErrUnknownTier is returned (wrapped) by [TierByName] for names that do not denote a multiplication tier.
	ErrUnknownTier = errors.New(ErrorPrefix + "unknown Montgomery multiplication tier")
	// ErrUnknownOperation is returned (wrapped) when a [KnownAnswer] names an operation we do not know.
	ErrUnknownOperation = errors.New(ErrorPrefix + "unknown known-answer operation")
)
