package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthRequired indicates no usable credential was supplied.
	ErrAuthRequired = errors.New("authentication required")

	// ErrSessionFailed indicates session establishment failed. This is the
	// only fault that aborts a whole load.
	ErrSessionFailed = errors.New("session establishment failed")

	// ErrUnsupportedKind indicates a file kind with no registered
	// extraction routine.
	ErrUnsupportedKind = errors.New("unsupported file kind")

	// ErrContentTooLarge indicates a download exceeded the size cap.
	ErrContentTooLarge = errors.New("content exceeds size limit")

	// ErrMalformedContent indicates an extractor could not decode the
	// bytes (corrupted, encrypted, or mislabelled content).
	ErrMalformedContent = errors.New("malformed or unreadable content")

	// ErrLegacyFormat indicates a pre-OOXML binary office format that has
	// no decoder.
	ErrLegacyFormat = errors.New("legacy binary format not supported")
)
