// Package compiler lowers a pattern into a flat, index-addressable command
// table, as described in spec.md §4.1. It is the direct Go transcription of
// original_source/regexp4_{ascii,utf8}.c's tokenizer/emitter pair
// (compile/tableAppend/tableClose/genPaths/genTracks/genSet/tracker/
// trackerSet/cutByType/cutByLen/cutSimple/walkSet/walkMeta/getMods/getLoops),
// generalized to serve both encodings from one implementation (Q1/Q2 in
// spec.md §9, resolved in DESIGN.md).
package compiler

import (
	"github.com/nasciiboy/regex4/internal/element"
	"github.com/nasciiboy/regex4/internal/table"
)

// Compiler lowers one pattern at a time into a table.Table. It holds no
// state between calls other than what Compile sets up, matching the "modern
// port re-expresses process-wide state as instance state" guidance in
// spec.md §9.
type Compiler struct {
	UTF8Mode bool
	MaxTable int

	t   *table.Table
	err error
}

// New returns a Compiler for the given encoding and table-size limit.
func New(utf8Mode bool, maxTable int) *Compiler {
	return &Compiler{UTF8Mode: utf8Mode, MaxTable: maxTable}
}

// Compile lowers pattern into a command table and returns the global
// modifier bits read from its leading `#...` prefix (spec.md §4.1, `compile`).
func (c *Compiler) Compile(pattern []byte) (*table.Table, element.Mod, error) {
	c.t = table.New(c.MaxTable)
	c.err = nil

	rexp := element.Element{Src: pattern, Kind: element.Path}
	c.getMods(&rexp, &rexp)
	globalMods := rexp.Mods

	if c.isPath(&rexp) {
		c.genPaths(rexp)
	} else {
		c.genTracks(&rexp)
	}

	c.append(nil, table.End)

	if c.err != nil {
		return nil, 0, c.err
	}
	return c.t, globalMods, nil
}

// append wraps table.Table.Append, recording a table-overflow error the
// first time the table runs out of room (spec.md §5/§9 Q3: a conforming
// implementation must report overflow rather than leave it undefined).
func (c *Compiler) append(elem *element.Element, command table.Command) int {
	idx := c.t.Append(elem, command)
	if idx < 0 && c.err == nil {
		c.err = &overflowError{max: c.MaxTable}
	}
	return idx
}

func (c *Compiler) closeAt(index int) {
	if index >= 0 {
		c.t.CloseAt(index)
	}
}

// genPaths emits a PATH frame: one PATH_ELE child per `|`-separated branch at
// the current depth, per spec.md §4.1 "genPaths".
func (c *Compiler) genPaths(rexp element.Element) {
	ini := c.append(&rexp, table.PathIni)

	var track element.Element
	for c.err == nil {
		ok, _ := c.cutByType(&rexp, &track, element.Path)
		if !ok {
			break
		}
		ele := c.append(&track, table.PathEle)
		c.genTracks(&track)
		c.closeAt(ele)
	}

	c.closeAt(ini)
	c.append(nil, table.PathEnd)
}

// genTracks emits a flat sequence of element commands for rexp's body, per
// spec.md §4.1 "genTracks".
func (c *Compiler) genTracks(rexp *element.Element) {
	var track element.Element
	for c.err == nil && c.tracker(rexp, &track) {
		switch track.Kind {
		case element.Hook:
			ini := c.append(&track, table.HookIni)
			if c.err != nil {
				return
			}
			if c.isPath(&track) {
				c.genPaths(track)
			} else {
				c.genTracks(&track)
			}
			c.closeAt(ini)
			c.append(nil, table.HookEnd)
		case element.Group:
			ini := c.append(&track, table.GroupIni)
			if c.err != nil {
				return
			}
			if c.isPath(&track) {
				c.genPaths(track)
			} else {
				c.genTracks(&track)
			}
			c.closeAt(ini)
			c.append(nil, table.GroupEnd)
		case element.Set:
			c.genSet(&track)
		case element.Backref:
			c.append(&track, table.Backref)
		case element.Meta:
			c.append(&track, table.Meta)
		case element.UTF8:
			c.append(&track, table.UTF8)
		case element.Point:
			c.append(&track, table.Point)
		default: // Simple
			c.append(&track, table.Simple)
		}
	}
}

// genSet emits a SET frame. A leading `^` toggles NEGATIVE, per spec.md
// §4.1's bracket-set syntax.
func (c *Compiler) genSet(rexp *element.Element) {
	if len(rexp.Src) > 0 && rexp.Src[0] == '^' {
		cutRexp(rexp, 1)
		rexp.Mods ^= element.Negative
	}

	ini := c.append(rexp, table.SetIni)
	if c.err != nil {
		return
	}

	var track element.Element
	for c.err == nil && c.trackerSet(rexp, &track) {
		switch track.Kind {
		case element.Meta:
			c.append(&track, table.Meta)
		case element.Rangeab:
			c.append(&track, table.Rangeab)
		case element.UTF8:
			c.append(&track, table.UTF8)
		default: // Simple
			c.append(&track, table.Simple)
		}
	}

	c.closeAt(ini)
	c.append(nil, table.SetEnd)
}

// isPath reports whether rexp's body contains an unparenthesized `|` at
// depth 0, per spec.md §4.1 "isPath".
func (c *Compiler) isPath(rexp *element.Element) bool {
	src := rexp.Src
	deep := 0
	i := 0
	for {
		i += walkMeta(src[i:])
		if i >= len(src) {
			break
		}
		switch src[i] {
		case '(', '<':
			deep++
		case ')', '>':
			deep--
		case '[':
			i += walkSet(src[i:])
			if i >= len(src) {
				return false
			}
		case '|':
			if deep == 0 {
				return true
			}
		}
		i++
	}
	return false
}

// overflowError reports that a pattern would emit more commands than the
// configured table can hold (spec.md §7 E-COMPILE-OVERFLOW).
type overflowError struct {
	max int
}

func (e *overflowError) Error() string {
	return "regex4: compiled pattern exceeds table limit of " + itoa(e.max) + " entries: " + ErrTableOverflow.Error()
}

func (e *overflowError) Unwrap() error {
	return ErrTableOverflow
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
