package prefilter

import (
	"github.com/nasciiboy/regex4/internal/element"
	"github.com/nasciiboy/regex4/internal/table"
)

// DetectLiteralAlternation reports whether t's top-level frame is a plain
// `lit1|lit2|...` alternation — a PATH whose every branch is exactly one
// unmodified, unrepeated SIMPLE literal run — and if so returns each
// branch's literal bytes in branch order. Anything else (nested groups,
// sets, metaclasses, repetition, case folding) returns ok=false and the
// caller falls back to the plain backtracking walker with no prefilter.
func DetectLiteralAlternation(t *table.Table) (literals [][]byte, ok bool) {
	if t.Len() == 0 || t.Entries[0].Command != table.PathIni {
		return nil, false
	}

	i := 1
	for t.Entries[i].Command == table.PathEle {
		close := t.Entries[i].Close
		if close != i+2 || t.Entries[i+1].Command != table.Simple {
			return nil, false
		}

		elem := &t.Entries[i+1].Elem
		if elem.LoopsMin != 1 || elem.LoopsMax != 1 || elem.Has(element.Communism) || elem.Has(element.Negative) {
			return nil, false
		}

		literals = append(literals, elem.Src)
		i = close
	}

	if len(literals) < 2 {
		return nil, false
	}
	return literals, true
}

// DetectLeading reports whether t's very first compiled entry is a
// mandatory (LoopsMin >= 1, non-NEGATIVE, non-COMMUNISM) literal run or
// character set, and if so returns a Prefilter that finds where that run/set
// can next occur. Anything else (the pattern opens with a group, an optional
// atom, a case-folded atom, or a set containing a range/metaclass/UTF-8 member
// this prefilter can't enumerate) returns ok=false.
func DetectLeading(t *table.Table) (Prefilter, bool) {
	if t.Len() == 0 {
		return nil, false
	}

	entry := &t.Entries[0]
	if entry.Elem.LoopsMin < 1 || entry.Elem.Has(element.Negative) {
		return nil, false
	}

	switch entry.Command {
	case table.Simple:
		if len(entry.Elem.Src) == 0 || entry.Elem.Has(element.Communism) {
			return nil, false
		}
		return NewByteFilter(entry.Elem.Src[0]), true
	case table.SetIni:
		members, ok := enumerateSetMembers(t, 0)
		if !ok {
			return nil, false
		}
		return NewSetFilter(members), true
	default:
		return nil, false
	}
}

// enumerateSetMembers collects every single byte a SET_INI..SET_END span at
// setIni can match. It bails (ok=false) the moment it meets a RANGEAB, META,
// or UTF8 member, or a COMMUNISM-folded one, since those can't be reduced to
// a flat byte list without losing precision.
func enumerateSetMembers(t *table.Table, setIni int) (members []byte, ok bool) {
	for i := setIni + 1; t.Entries[i].Command != table.SetEnd; i++ {
		entry := &t.Entries[i]
		if entry.Command != table.Simple || entry.Elem.Has(element.Communism) {
			return nil, false
		}
		members = append(members, entry.Elem.Src...)
	}
	return members, true
}
