package common

import "errors"

var (
	// Construction errors.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
	ErrUnsupportedKDF       = errors.New("unsupported key derivation function")

	// Input validation errors (empty master password, empty site).
	ErrInvalidInput = errors.New("invalid input")

	// Template errors.
	ErrUnknownTemplate   = errors.New("unknown template")
	ErrInvalidPattern    = errors.New("invalid template pattern")
	ErrDuplicateTemplate = errors.New("duplicate template")

	// Lifecycle errors.
	ErrClosed             = errors.New("generator is closed")
	ErrKeystreamExhausted = errors.New("keystream exhausted")
)
