package compiler

import "errors"

// Sentinel compile errors (spec.md §7 E-COMPILE-OVERFLOW / E-COMPILE-MALFORMED).
// regex4's public package re-exports these so callers can use errors.Is
// without importing this internal package.
var (
	ErrTableOverflow     = errors.New("compiled pattern exceeds the command table limit")
	ErrUnterminatedGroup = errors.New("unterminated group or hook")
	ErrUnterminatedSet   = errors.New("unterminated character set")
)
