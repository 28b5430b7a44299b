// Package prefilter provides fast candidate filtering for a compiled
// pattern: a way to skip outer-scan start positions that cannot possibly
// begin a match before handing the remainder to the full backtracking
// matcher.
//
// Prefilters never change match semantics (spec.md §4.2 is unaffected) —
// they only narrow which positions the outer scan bothers to try, the way
// the teacher's own prefilter package frames itself ("candidates, not the
// final verdict").
package prefilter

// Prefilter locates candidate start positions for a compiled pattern.
type Prefilter interface {
	// Find returns the index of the first candidate position at or after
	// start, or -1 if no candidate exists in haystack[start:].
	Find(haystack []byte, start int) int
}

// ByteFilter is a Prefilter for patterns whose first compiled atom is a
// single required literal byte (the common case: most literal runs and
// one-character classes).
type ByteFilter struct {
	b byte
}

// NewByteFilter returns a Prefilter that finds the next occurrence of b.
func NewByteFilter(b byte) *ByteFilter {
	return &ByteFilter{b: b}
}

func (f *ByteFilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	return indexByteSWAR(haystack, start, f.b)
}

// SetFilter is a Prefilter for patterns whose first compiled atom is a
// small required byte set (a bracket expression with no ranges/metas),
// e.g. `[abc]`. It reports the first position holding any member byte.
type SetFilter struct {
	present [256]bool
}

// NewSetFilter returns a Prefilter that finds the next occurrence of any
// byte in members.
func NewSetFilter(members []byte) *SetFilter {
	f := &SetFilter{}
	for _, b := range members {
		f.present[b] = true
	}
	return f
}

func (f *SetFilter) Find(haystack []byte, start int) int {
	for i := start; i < len(haystack); i++ {
		if f.present[haystack[i]] {
			return i
		}
	}
	return -1
}
