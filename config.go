package regex4

// Encoding selects which code-unit width the matcher uses: Byte treats
// every input byte as its own code unit; UTF8 treats a leading byte's
// multi-byte run as one code unit (spec.md §2/§4.4).
type Encoding int

const (
	// Byte is single-byte mode: every byte is one code unit.
	Byte Encoding = iota
	// UTF8 is variable-width mode: one UTF-8 code point is one code unit.
	UTF8
)

// Config controls compile-time limits and the encoding a Regexp matches
// against.
//
// Example:
//
//	config := regex4.DefaultConfig()
//	config.Encoding = regex4.UTF8
//	config.MaxTableEntries = 1024
//	re, err := regex4.CompileWithConfig(`[áéí]+`, config)
type Config struct {
	// Encoding selects Byte or UTF8 code-unit width.
	// Default: Byte
	Encoding Encoding

	// MaxCaptures bounds the number of capture slots a single match can
	// populate (spec.md MAX_CATCHS). A pattern that opens more capturing
	// groups than this keeps matching, but the excess captures are silently
	// dropped (spec.md §7 E-RUNTIME-CAPSLIMIT, non-fatal).
	// Default: 16
	MaxCaptures int

	// MaxTableEntries bounds the number of command-table entries a single
	// compiled pattern may occupy (spec.md MAX_TABLE). A pattern that would
	// overflow this limit fails to compile (spec.md §9 Q3).
	// Default: 256
	MaxTableEntries int

	// EnablePrefilter enables the literal-prefix/alternation prefilter fast
	// path in the outer scan loop. When false, every start position runs
	// the full backtracking matcher.
	// Default: true
	EnablePrefilter bool
}

// DefaultConfig returns a Config with sensible defaults for Byte-mode
// patterns.
//
// Example:
//
//	config := regex4.DefaultConfig()
//	config.MaxCaptures = 32
//	re, err := regex4.CompileWithConfig(`<:w+>:@<:w+>`, config)
func DefaultConfig() Config {
	return Config{
		Encoding:        Byte,
		MaxCaptures:     16,
		MaxTableEntries: 256,
		EnablePrefilter: true,
	}
}

// Validate checks that c's fields are within supported ranges, returning a
// *ConfigError naming the first offending field.
func (c Config) Validate() error {
	if c.Encoding != Byte && c.Encoding != UTF8 {
		return &ConfigError{Field: "Encoding", Message: "must be regex4.Byte or regex4.UTF8"}
	}
	if c.MaxCaptures < 2 || c.MaxCaptures > 4096 {
		return &ConfigError{Field: "MaxCaptures", Message: "must be between 2 and 4096"}
	}
	if c.MaxTableEntries < 8 || c.MaxTableEntries > 1_000_000 {
		return &ConfigError{Field: "MaxTableEntries", Message: "must be between 8 and 1,000,000"}
	}
	return nil
}
