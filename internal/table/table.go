// Package table implements the flat, index-addressable command table the
// compiler emits and the matcher interprets, as described in spec.md §3
// "Command table".
package table

import "github.com/nasciiboy/regex4/internal/element"

// Command tags a table entry.
type Command uint8

const (
	PathIni Command = iota
	PathEle
	PathEnd
	GroupIni
	GroupEnd
	HookIni
	HookEnd
	SetIni
	SetEnd
	Backref
	Meta
	Rangeab
	UTF8
	Point
	Simple
	End
)

// Entry is one row of the command table: a command tag, the element record
// that produced it (zero value for the structural *_END/End entries that
// carry no element), and a close-index.
//
// Invariant I1 (spec.md §3): for every *_INI entry at index i, Entry.Close
// points to the matching *_END entry; for every other entry, Close == its own
// index.
type Entry struct {
	Command Command
	Elem    element.Element
	Close   int
}

// Table is the compiled command table for one pattern.
type Table struct {
	Entries []Entry
	Max     int // spec.md §5 MAX_TABLE, enforced as a compile error (Q3)
}

// New returns an empty Table with room for at most max entries.
func New(max int) *Table {
	return &Table{Max: max}
}

// Append adds a new entry for the given command, optionally carrying an
// element record, and returns its index. elem may be nil for structural
// entries (*_END, End) that carry no element of their own.
//
// Returns -1 if the table has reached its Max capacity; the caller
// (internal/compiler) turns this into a compile error.
func (t *Table) Append(elem *element.Element, command Command) int {
	idx := len(t.Entries)
	if idx >= t.Max {
		return -1
	}

	e := Entry{Command: command, Close: idx}
	if elem != nil {
		elem.Index = idx
		e.Elem = *elem
	}
	t.Entries = append(t.Entries, e)
	return idx
}

// CloseAt sets the close-index of the *_INI entry at index to the table's
// current length (i.e. the index the matching *_END entry will occupy once
// appended), per spec.md §4.1 "Emission rules".
func (t *Table) CloseAt(index int) {
	t.Entries[index].Close = len(t.Entries)
}

// Len returns the number of entries currently in the table.
func (t *Table) Len() int {
	return len(t.Entries)
}
