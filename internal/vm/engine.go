package vm

import (
	"github.com/nasciiboy/regex4/internal/element"
	"github.com/nasciiboy/regex4/internal/table"
)

// Engine runs a compiled table's outer scan loop against arbitrary input
// text, the direct transcription of original_source/regexp4_utf8.c:378-410
// (`regexp4`). Unlike the reference's single package-level Catch/text pair,
// every Run call gets its own Cursor and Captures so one Engine is safe to
// reuse across concurrent searches — see DESIGN.md [MATCHER].
type Engine struct {
	Table       *table.Table
	GlobalMods  element.Mod
	MaxCaptures int
	UTF8        bool

	// Skip, when set, narrows which outer-scan start positions Run bothers
	// to try (see the prefilter package). It never changes which positions
	// would have matched — only how quickly Run gets to them — and is
	// ignored entirely under ALPHA, where only position 0 is ever tried.
	Skip Prefilter
}

// Prefilter narrows the outer scan's candidate start positions. Defined
// here, at the point of use, rather than imported from the prefilter
// package, so internal/vm has no dependency on it.
type Prefilter interface {
	Find(haystack []byte, start int) int
}

// NewEngine wraps a compiled table for repeated searches.
func NewEngine(t *table.Table, globalMods element.Mod, maxCaptures int, utf8Mode bool) *Engine {
	return &Engine{Table: t, GlobalMods: globalMods, MaxCaptures: maxCaptures, UTF8: utf8Mode}
}

// Result reports the outcome of a Run: whether the pattern matched at all,
// and how many non-overlapping matches were counted (spec.md §4.2.1 — the
// count semantics a plain pattern reports through the public Find API).
type Result struct {
	Matched bool
	Count   int
}

// Run scans text start position by start position (or, under ALPHA, only
// at position 0) and returns the capture store left behind by the search
// together with its Result. Captures holds the slots of every successful
// attempt, in scan order: a failed attempt restores the store to what it
// held at the start of that attempt, so earlier matches' captures survive
// (spec.md §4.3 "Lifecycle").
func (e *Engine) Run(text []byte) (*Captures, Result) {
	captures := NewCaptures(e.MaxCaptures)

	// original_source/regexp4_utf8.c:386 guards both `text.len == 0` and
	// `strLen( re ) == 0` before ever starting the outer scan. An empty
	// pattern's table holds nothing but the trailing End entry, so it
	// would otherwise match zero bytes at every position.
	if len(text) == 0 || e.Table.Len() <= 1 {
		captures.Reset(0)
		return captures, Result{}
	}
	captures.Reset(len(text))

	cursor := NewCursor(text, e.UTF8)
	matcher := NewMatcher(e.Table, captures, cursor)

	loops := len(text)
	if e.GlobalMods.Has(element.Alpha) {
		loops = 1
	}

	useSkip := e.Skip != nil && !e.GlobalMods.Has(element.Alpha)
	result := 0

	for i := 0; i < loops; {
		if useSkip {
			next := e.Skip.Find(text, i)
			if next < 0 {
				break
			}
			i = next
		}

		forward := cursor.WidthAt(i)
		if forward == 0 {
			forward = 1
		}

		oCount := captures.BeginAttempt()
		cursor.StartAttempt(i)

		if matcher.Trekking(0) {
			switch {
			case e.GlobalMods.Has(element.Omega):
				if cursor.Pos() == len(text) {
					return captures, Result{Matched: true, Count: 1}
				}
				captures.RestoreCount(1)
			case e.GlobalMods.Has(element.Lonley):
				return captures, Result{Matched: true, Count: 1}
			default:
				matchLen := cursor.Pos() - i
				if e.GlobalMods.Has(element.FwrByChar) || matchLen == 0 {
					result++
				} else {
					forward = matchLen
					result++
				}
			}
		} else {
			captures.RestoreCount(oCount)
		}

		i += forward
	}

	return captures, Result{Matched: result > 0, Count: result}
}
