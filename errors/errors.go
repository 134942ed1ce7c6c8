// Package errors provides error handling for ffigen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap a sentinel with the declaration that triggered it
//	return errors.Wrapf(errors.ErrMalformed, "struct %s: nested paragraph", name)
//
//	// Add hints for users
//	return errors.WithHint(err, "rebuild with -tags libclang")
//
//	// Classify
//	if errors.IsMalformed(err) {
//	    // report and continue with the next declaration
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the generation pipeline.
// Wrap these with errors.Wrapf() to add the offending declaration while
// preserving the class for errors.Is().
var (
	// ErrMalformed indicates the provider returned a tree shape the pipeline
	// does not support (nested paragraphs, non-field struct members, ...)
	ErrMalformed = New("malformed declaration")

	// ErrUnsupportedType indicates a type kind with no resolution rule
	ErrUnsupportedType = New("unsupported type kind")

	// ErrProvider indicates the AST provider failed to produce a usable tree
	ErrProvider = New("provider failure")

	// ErrProviderUnavailable indicates the selected provider is not compiled in
	ErrProviderUnavailable = New("provider unavailable")

	// ErrDeclarationsFailed indicates a strict run in which at least one
	// declaration could not be generated
	ErrDeclarationsFailed = New("declarations failed")

	// ErrOutOfDate indicates generated output differs from the file on disk
	ErrOutOfDate = New("generated output is out of date")
)

// IsMalformed checks if an error is or wraps ErrMalformed
func IsMalformed(err error) bool {
	return err != nil && Is(err, ErrMalformed)
}

// IsUnsupportedType checks if an error is or wraps ErrUnsupportedType
func IsUnsupportedType(err error) bool {
	return err != nil && Is(err, ErrUnsupportedType)
}

// IsDeclarationError reports whether err is local to one declaration.
// Such errors are reported and skipped; anything else aborts the run.
func IsDeclarationError(err error) bool {
	return err != nil && IsAny(err, ErrMalformed, ErrUnsupportedType)
}

// IsProviderError checks if an error is or wraps ErrProvider or ErrProviderUnavailable
func IsProviderError(err error) bool {
	return err != nil && IsAny(err, ErrProvider, ErrProviderUnavailable)
}

// NewMalformedError creates a malformed-declaration error with a formatted message
func NewMalformedError(format string, args ...interface{}) error {
	return Wrapf(ErrMalformed, format, args...)
}

// NewUnsupportedTypeError creates an unsupported-type error naming the raw kind spelling
func NewUnsupportedTypeError(kindSpelling string) error {
	return Wrapf(ErrUnsupportedType, "%s", kindSpelling)
}
