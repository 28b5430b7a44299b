package regex4

import (
	"fmt"

	"github.com/nasciiboy/regex4/internal/compiler"
)

// Sentinel compile errors (spec.md §7 E-COMPILE-OVERFLOW / E-COMPILE-MALFORMED),
// re-exported so callers can use errors.Is without importing internal/compiler.
var (
	ErrTableOverflow     = compiler.ErrTableOverflow
	ErrUnterminatedGroup = compiler.ErrUnterminatedGroup
	ErrUnterminatedSet   = compiler.ErrUnterminatedSet
)

// CompileError reports that a pattern failed to compile, naming the
// pattern and wrapping the underlying sentinel.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("regex4: compile %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "regex4: invalid config: " + e.Field + ": " + e.Message
}
