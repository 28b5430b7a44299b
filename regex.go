// Package regex4 implements the recursive-descent, backtracking regex
// engine spec.md describes: a pattern compiles into a flat command table
// (packages internal/compiler and internal/table) which a recursive matcher
// (internal/vm) interprets directly, rather than building an NFA/DFA.
//
// Two encodings share one implementation: Byte mode treats every input
// byte as a code unit, UTF8 mode treats a leading byte's whole multi-byte
// run as one code unit.
//
// Basic usage:
//
//	re, err := regex4.Compile(`:d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("age: 42") {
//	    println("matched!")
//	}
//
// Capture groups are addressed by slot, not by name — Find populates the
// capture store as a side effect, and TotalCaptures/CaptureStart/CaptureLen/
// CaptureBytes/CaptureString read it back:
//
//	re := regex4.MustCompile(`<:w+>:@<:w+>`)
//	re.Find([]byte("user@host"))
//	user := re.CaptureString(1) // "user"
package regex4

import (
	"github.com/nasciiboy/regex4/internal/compiler"
	"github.com/nasciiboy/regex4/internal/table"
	"github.com/nasciiboy/regex4/internal/vm"
	"github.com/nasciiboy/regex4/prefilter"
	"github.com/nasciiboy/regex4/replace"
)

// Regexp is a compiled pattern. Match, MatchString, Find and FindString all
// record the searched text and its capture store on the Regexp for the
// capture accessors to read, so none of these methods is safe for
// concurrent use on one Regexp — call them from one goroutine at a time,
// the way the reference engine's single Catch/text pair does.
type Regexp struct {
	pattern string
	config  Config
	engine  *vm.Engine

	lastText     []byte
	lastCaptures *vm.Captures
}

// Compile compiles pattern with DefaultConfig.
//
// Example:
//
//	re, err := regex4.Compile(`[a-z]+:d*`)
func Compile(pattern string) (*Regexp, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails.
//
// Example:
//
//	var word = regex4.MustCompile(`:w+`)
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("regex4: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern with a custom Config.
//
// Example:
//
//	config := regex4.DefaultConfig()
//	config.MaxCaptures = 32
//	re, err := regex4.CompileWithConfig(`<:w+>:@<:w+>`, config)
func CompileWithConfig(pattern string, config Config) (*Regexp, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	comp := compiler.New(config.Encoding == UTF8, config.MaxTableEntries)
	tbl, globalMods, err := comp.Compile([]byte(pattern))
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	engine := vm.NewEngine(tbl, globalMods, config.MaxCaptures, config.Encoding == UTF8)
	if config.EnablePrefilter {
		engine.Skip = buildSkip(tbl)
	}

	return &Regexp{pattern: pattern, config: config, engine: engine}, nil
}

// buildSkip tries, in order, to recognize a top-level literal alternation
// and a mandatory leading literal/set — see prefilter.DetectLiteralAlternation
// and prefilter.DetectLeading. Returns nil if neither applies; Run then
// falls back to trying every start position.
func buildSkip(tbl *table.Table) vm.Prefilter {
	if literals, ok := prefilter.DetectLiteralAlternation(tbl); ok {
		if la, err := prefilter.BuildLiteralAlternation(literals); err == nil {
			return la
		}
	}

	if pf, ok := prefilter.DetectLeading(tbl); ok {
		return pf
	}

	return nil
}

// String returns the source pattern re was compiled from.
func (re *Regexp) String() string {
	return re.pattern
}

// run executes the engine over b, remembering b and the resulting capture
// store so the accessor methods below can read them afterward.
func (re *Regexp) run(b []byte) vm.Result {
	captures, result := re.engine.Run(b)
	re.lastText = b
	re.lastCaptures = captures
	return result
}

// Match reports whether b contains any match of the pattern.
//
// Example:
//
//	re := regex4.MustCompile(`:d+`)
//	if re.Match([]byte("hello 123")) {
//	    println("contains digits")
//	}
func (re *Regexp) Match(b []byte) bool {
	return re.run(b).Matched
}

// MatchString reports whether s contains any match of the pattern.
func (re *Regexp) MatchString(s string) bool {
	return re.Match([]byte(s))
}

// Find runs the pattern against b and returns the number of non-overlapping
// matches found, per the reference engine's `regexp4` contract. Under the
// `#?` (LONLEY) or `#$` (OMEGA) pattern modifiers this is always 0 or 1; the
// capture accessors below read back the captures of every successful
// attempt of this call, in scan order.
//
// Example:
//
//	re := regex4.MustCompile(`:d+`)
//	n := re.Find([]byte("there are 12 cats and 7 dogs"))
//	// n == 2
func (re *Regexp) Find(b []byte) int {
	return re.run(b).Count
}

// FindString is Find over a string.
func (re *Regexp) FindString(s string) int {
	return re.Find([]byte(s))
}

// TotalCaptures returns the number of capture slots populated by the last
// Match/MatchString/Find call.
func (re *Regexp) TotalCaptures() int {
	if re.lastCaptures == nil {
		return 0
	}
	return re.lastCaptures.Total()
}

// CaptureStart returns the byte offset of capture slot i (1-based) into the
// text passed to the last Match/MatchString/Find call, or -1 if i is out of
// range.
func (re *Regexp) CaptureStart(i int) int {
	if re.lastCaptures == nil {
		return -1
	}
	return re.lastCaptures.Start(i)
}

// CaptureLen returns the byte length of capture slot i, or 0 if i is out of
// range.
func (re *Regexp) CaptureLen(i int) int {
	if re.lastCaptures == nil {
		return 0
	}
	return re.lastCaptures.Len(i)
}

// CaptureBytes returns the text captured by slot i, or nil if i is out of
// range.
func (re *Regexp) CaptureBytes(i int) []byte {
	start := re.CaptureStart(i)
	if start < 0 {
		return nil
	}
	return re.lastText[start : start+re.CaptureLen(i)]
}

// CaptureString is CaptureBytes converted to a string.
func (re *Regexp) CaptureString(i int) string {
	return string(re.CaptureBytes(i))
}

// ReplaceCapture appends to dst the text passed to the last
// Match/MatchString/Find call with every capture slot carrying id replaced
// by repl, and returns the extended slice.
//
// Example:
//
//	re := regex4.MustCompile(`:<:/?<:w+>:>`)
//	re.Find([]byte("<b>hi</b>"))
//	out := re.ReplaceCapture(nil, []byte("B"), 1) // "<B>hi</B>"
func (re *Regexp) ReplaceCapture(dst []byte, repl []byte, id int) []byte {
	if re.lastCaptures == nil {
		return dst
	}
	return replace.Capture(dst, re.lastText, re.lastCaptures, id, repl)
}

// Expand appends template to dst, replacing each `#N` placeholder with
// capture slot N's text and `##` with a literal `#`.
//
// Example:
//
//	re := regex4.MustCompile(`<:w+>:@<:w+>`)
//	re.Find([]byte("user@host"))
//	out := re.Expand(nil, []byte("#2/#1")) // "host/user"
func (re *Regexp) Expand(dst []byte, template []byte) []byte {
	if re.lastCaptures == nil {
		return dst
	}
	return replace.Expand(dst, re.lastText, re.lastCaptures, template)
}
