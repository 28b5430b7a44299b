package prefilter

import "github.com/coregx/ahocorasick"

// LiteralAlternation is a Prefilter backed by an Aho-Corasick automaton over
// every branch of a compiled PATH frame whose branches are all bare literal
// runs (no nested groups, sets, metaclasses, or repetition) — the "large
// literal alternation" case the teacher's meta/compile.go recognizes and
// builds its own ahoCorasick field for.
//
// It only narrows which outer-scan start positions are worth trying; the
// full matcher still runs at every position it reports; semantics are
// unchanged from a plain left-to-right branch scan.
type LiteralAlternation struct {
	automaton *ahocorasick.Automaton
}

// BuildLiteralAlternation builds the automaton over literals, one per
// alternation branch.
func BuildLiteralAlternation(literals [][]byte) (*LiteralAlternation, error) {
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}

	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &LiteralAlternation{automaton: automaton}, nil
}

// Find returns the start of the next branch occurrence at or after start,
// or -1 if none of the branches occurs again.
func (la *LiteralAlternation) Find(haystack []byte, start int) int {
	m := la.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsMatch reports whether any branch literal occurs anywhere in haystack,
// delegating straight to the automaton (mirrors meta/ismatch.go's
// ahoCorasick.IsMatch fast path).
func (la *LiteralAlternation) IsMatch(haystack []byte) bool {
	return la.automaton.IsMatch(haystack)
}
