// Package kverrors defines the typed error kinds the storage engine can
// surface, so callers can distinguish failure modes with errors.Is rather
// than by matching error strings.
package kverrors

import "errors"

var (
	// ErrKeyNotFound is returned by Remove when the key has no live entry.
	// Get never returns it; Get reports absence by its boolean result.
	ErrKeyNotFound = errors.New("key not found")

	// ErrHeaderDecode means fewer than the fixed header width could be
	// parsed into key_len/value_len.
	ErrHeaderDecode = errors.New("malformed record header")

	// ErrKindDecode means the kind byte was neither PUT nor DEL.
	ErrKindDecode = errors.New("unknown record kind")

	// ErrUtf8Decode means a key or value was not valid UTF-8.
	ErrUtf8Decode = errors.New("invalid utf-8 in record")

	// ErrInvalidDataPath means the data directory has no parent, so a
	// sibling merge file cannot be sited.
	ErrInvalidDataPath = errors.New("data directory has no parent")
)
