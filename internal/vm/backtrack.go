// Package vm is the backtracking interpreter for a compiled command table,
// the direct transcription of original_source/regexp4_utf8.c:412-628
// (trekking/walker/loopGroup/looper/match*/*Catch), generalized to serve
// both encodings per spec.md §9 Q1/Q2.
package vm

import (
	"github.com/nasciiboy/regex4/internal/classify"
	"github.com/nasciiboy/regex4/internal/element"
	"github.com/nasciiboy/regex4/internal/table"
)

// Matcher walks one compiled table against one Cursor/Captures pair. It
// holds no state of its own beyond the instance fields below — styled after
// the teacher's nfa/backtrack.go BoundedBacktracker, which keeps engine
// state on a struct instance instead of package globals (see DESIGN.md
// [MATCHER]).
type Matcher struct {
	Table    *table.Table
	Captures *Captures
	Cursor   *Cursor
}

// NewMatcher builds a Matcher over an already-compiled table.
func NewMatcher(t *table.Table, captures *Captures, cursor *Cursor) *Matcher {
	return &Matcher{Table: t, Captures: captures, Cursor: cursor}
}

// Trekking attempts to match the table starting at entry index, returning
// whether the remainder of the table (from index onward, including
// everything trekking recurses into at index's close+1) matched. This is
// the engine's single recursive step: spec.md §4.2.2's "depth-first
// backtracking walk over the command table".
func (m *Matcher) Trekking(index int) bool {
	entry := &m.Table.Entries[index]
	var result bool

	switch entry.Command {
	case table.End, table.PathEnd, table.PathEle, table.GroupEnd, table.HookEnd, table.SetEnd:
		return true
	case table.PathIni:
		result = m.walker(index)
	case table.GroupIni:
		result = m.loopGroup(index)
	case table.HookIni:
		iCatch := m.Captures.Open(m.Cursor.Pos())
		if m.loopGroup(index) {
			m.Captures.Close(iCatch, m.Cursor.Pos())
			result = true
		}
	default: // SetIni, Backref, Meta, UTF8, Point, Simple
		result = m.looper(index)
	}

	if result && m.Trekking(entry.Close+1) {
		return true
	}
	return false
}

// walker tries each PATH_ELE branch in turn, restoring captures, the
// per-attempt id counter, and cursor position before trying the next
// branch — spec.md §4.2.3, resolving Q2's "inner restore" at this choice
// point.
func (m *Matcher) walker(index int) bool {
	index++

	oCount := m.Captures.Count()
	oIdx := m.Captures.IDCounter()
	oPos := m.Cursor.Pos()

	for m.Table.Entries[index].Command == table.PathEle {
		if m.Trekking(index + 1) {
			return true
		}
		index = m.Table.Entries[index].Close
		m.Captures.RestoreCount(oCount)
		m.Captures.SetIDCounter(oIdx)
		m.Cursor.SetPos(oPos)
	}

	return false
}

// loopGroup repeats a Group/Hook body between LoopsMin and LoopsMax times.
// Under NEGATIVE it instead scans forward one code unit at a time until the
// body first matches ("scan until", spec.md §4.1's `#!` modifier on a
// group) — spec.md §4.2.4.
func (m *Matcher) loopGroup(index int) bool {
	entry := &m.Table.Entries[index].Elem
	loops := 0

	if entry.Has(element.Negative) {
		pos := m.Cursor.Pos()
		for loops < entry.LoopsMax && !m.Trekking(index+1) {
			pos += m.Cursor.WidthAt(pos)
			m.Cursor.SetPos(pos)
			loops++
		}
		m.Cursor.SetPos(pos)
	} else {
		for loops < entry.LoopsMax {
			oCount := m.Captures.Count()
			oIdx := m.Captures.IDCounter()
			oPos := m.Cursor.Pos()
			if !m.Trekking(index + 1) {
				m.Captures.RestoreCount(oCount)
				m.Captures.SetIDCounter(oIdx)
				m.Cursor.SetPos(oPos)
				break
			}
			loops++
		}
	}

	return loops >= entry.LoopsMin
}

// looper repeats a single atomic element (set, backref, metaclass, UTF-8
// code point, wildcard, or literal run) between LoopsMin and LoopsMax times,
// advancing the cursor by however many bytes each repetition consumed.
// Under NEGATIVE it advances one code unit at a time past positions where
// the atom does NOT match — spec.md §4.2.5.
func (m *Matcher) looper(index int) bool {
	entry := &m.Table.Entries[index].Elem
	loops := 0

	if entry.Has(element.Negative) {
		for loops < entry.LoopsMax && !m.Cursor.AtEnd() && m.match(index) == 0 {
			m.Cursor.Advance(m.Cursor.Width())
			loops++
		}
	} else {
		for loops < entry.LoopsMax && !m.Cursor.AtEnd() {
			steps := m.match(index)
			if steps == 0 {
				break
			}
			m.Cursor.Advance(steps)
			loops++
		}
	}

	return loops >= entry.LoopsMin
}

// match dispatches a single atom at the current cursor position, returning
// the number of bytes it consumed, or 0 on no match — spec.md §4.2.6.
func (m *Matcher) match(index int) int {
	entry := &m.Table.Entries[index].Elem
	switch entry.Kind {
	case element.Point:
		return m.Cursor.Width()
	case element.Set:
		return m.matchSet(index)
	case element.Backref:
		return m.matchBackRef(index)
	case element.Meta:
		return m.matchMeta(index)
	default: // Simple
		return m.matchText(index)
	}
}

// matchText compares a literal run against the text at the cursor,
// honoring COMMUNISM (ASCII case folding).
func (m *Matcher) matchText(index int) int {
	entry := &m.Table.Entries[index].Elem
	n := len(entry.Src)
	if m.Cursor.Remaining() < n {
		return 0
	}

	txt := m.Cursor.From()[:n]
	var ok bool
	if entry.Has(element.Communism) {
		ok = classify.StrnEqlFold(txt, entry.Src, n)
	} else {
		ok = classify.StrnEql(txt, entry.Src, n)
	}
	if !ok {
		return 0
	}
	return n
}

// matchMeta evaluates a `:X` metaclass against the byte at the cursor. The
// uppercase classes (A/D/W/S) match "one code unit that is NOT this class"
// and consume that code unit's full width; the lowercase classes consume
// exactly one byte. `:&` ("any multi-byte code point lead") only applies in
// UTF8 mode; in Byte mode there are no multi-byte code points, so it falls
// through to literal equality against `&` like any other non-alphameta
// character.
func (m *Matcher) matchMeta(index int) int {
	entry := &m.Table.Entries[index].Elem
	if m.Cursor.AtEnd() {
		return 0
	}

	b := m.Cursor.Byte()
	switch entry.Src[1] {
	case 'a':
		return boolToN(classify.IsAlpha(b), 1)
	case 'A':
		return boolToN(!classify.IsAlpha(b), m.Cursor.Width())
	case 'd':
		return boolToN(classify.IsDigit(b), 1)
	case 'D':
		return boolToN(!classify.IsDigit(b), m.Cursor.Width())
	case 'w':
		return boolToN(classify.IsAlnum(b), 1)
	case 'W':
		return boolToN(!classify.IsAlnum(b), m.Cursor.Width())
	case 's':
		return boolToN(classify.IsSpace(b), 1)
	case 'S':
		return boolToN(!classify.IsSpace(b), m.Cursor.Width())
	case '&':
		if m.Cursor.UTF8 {
			return boolToN(b&0x80 != 0, m.Cursor.Width())
		}
		return boolToN(b == entry.Src[1], 1)
	default:
		return boolToN(b == entry.Src[1], 1)
	}
}

func boolToN(ok bool, n int) int {
	if ok {
		return n
	}
	return 0
}

// matchSet scans a SET_INI..SET_END span for the first member that matches
// the byte at the cursor — spec.md §4.2.7.
func (m *Matcher) matchSet(index int) int {
	i := index + 1
	for m.Table.Entries[i].Command != table.SetEnd {
		entry := &m.Table.Entries[i]
		var result int

		switch entry.Command {
		case table.Rangeab:
			result = m.matchRange(i)
		case table.UTF8, table.Meta:
			result = m.match(i)
		default: // Simple
			b := m.Cursor.Byte()
			src := entry.Elem.Src
			var found bool
			if entry.Elem.Has(element.Communism) {
				found = classify.StrnChrFold(src, b, len(src))
			} else {
				found = classify.StrnChr(src, b, len(src))
			}
			result = boolToN(found, 1)
		}

		if result != 0 {
			return result
		}
		i++
	}
	return 0
}

// matchRange evaluates an `a-b` range member inside a set.
func (m *Matcher) matchRange(index int) int {
	entry := &m.Table.Entries[index].Elem
	b := m.Cursor.Byte()
	lo, hi := entry.Src[0], entry.Src[2]

	if entry.Has(element.Communism) {
		b = classify.ToLower(b)
		lo, hi = classify.ToLower(lo), classify.ToLower(hi)
	}

	return boolToN(b >= lo && b <= hi, 1)
}

// matchBackRef matches the text most recently captured under the
// referenced id against the text at the cursor — spec.md §4.2.7's
// back-reference rule, invariant I6 (no prior capture means no match).
func (m *Matcher) matchBackRef(index int) int {
	entry := &m.Table.Entries[index].Elem
	id := classify.LeadingInt(entry.Src[1:])
	slot := m.Captures.LastID(id)

	start := m.Captures.Start(slot)
	if start < 0 {
		return 0
	}
	n := m.Captures.Len(slot)
	if m.Cursor.Remaining() < n {
		return 0
	}

	ref := m.Cursor.Full[start : start+n]
	if !classify.StrnEql(m.Cursor.From()[:n], ref, n) {
		return 0
	}
	return n
}
