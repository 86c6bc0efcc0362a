package core

import "errors"

// Sentinel errors for the call-level error taxonomy. Resolver and driver
// wrap these with fmt.Errorf("...: %w", ...) so callers can still use
// errors.Is to tell fatal-to-the-call errors apart from per-file ones.
var (
	// ErrInvalidInput covers empty/malformed pattern lists and bad option
	// values. Always fatal to the call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownLanguage means no adapter matches a name, alias, or
	// extension. Fatal unless the caller set IgnoreErrors and the cause
	// was per-file language detection.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrFileNotFound means a literal path argument does not exist.
	// Per-file; ignorable.
	ErrFileNotFound = errors.New("file not found")

	// ErrReadError wraps a filesystem failure while reading a file.
	// Per-file; ignorable.
	ErrReadError = errors.New("read error")

	// ErrParseError means the grammar failed unrecoverably. Soft syntax
	// errors never reach this; they become ERROR nodes. Per-file;
	// ignorable.
	ErrParseError = errors.New("parse error")

	// ErrAdapterInit means a grammar ABI mismatch or registration
	// failure. Fatal to the call.
	ErrAdapterInit = errors.New("adapter init error")
)

// perFileError reports whether err represents a failure that
// ignore_errors is allowed to swallow for a single file, as opposed to a
// call-level failure (InvalidInput, AdapterInitError) that must always
// abort.
func perFileError(err error) bool {
	return errors.Is(err, ErrUnknownLanguage) ||
		errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrReadError) ||
		errors.Is(err, ErrParseError)
}
