package compiler

import (
	"github.com/nasciiboy/regex4/internal/charwidth"
	"github.com/nasciiboy/regex4/internal/classify"
	"github.com/nasciiboy/regex4/internal/element"
)

// cutRexp advances rexp past its first n bytes, shrinking its view in place.
// This is the Go equivalent of the reference's pointer-and-length cutRexp.
func cutRexp(rexp *element.Element, n int) {
	rexp.Src = rexp.Src[n:]
}

// walkMeta skips `:X` pairs two bytes at a time (tokenization rule T1),
// returning the offset of the first byte that is not a `:`.
func walkMeta(src []byte) int {
	i := 0
	for i < len(src) {
		if src[i] != ':' {
			return i
		}
		i += 2
	}
	return len(src)
}

// walkSet scans from the start of a `[...]` set to its matching `]`,
// treating `:X` pairs as atomic so an internal `]` right after `:` is not
// mistaken for the terminator (tokenization rule T2).
func walkSet(src []byte) int {
	i := 0
	for {
		i += walkMeta(src[i:])
		if i >= len(src) {
			break
		}
		if src[i] == ']' {
			return i
		}
		i++
	}
	return len(src)
}

// isUTF8Lead reports whether b starts a multi-byte UTF-8 code point, only
// meaningful in UTF-8 mode (tokenization rule T5).
func (c *Compiler) isUTF8Lead(b byte) bool {
	return c.UTF8Mode && b&0x80 != 0
}

// cutByLen cuts exactly n bytes from rexp into track, tagging track with kind.
func cutByLen(rexp, track *element.Element, n int, kind element.Kind) {
	*track = *rexp
	track.Kind = kind
	track.Src = rexp.Src[:n]
	cutRexp(rexp, n)
}

// cutByType scans rexp for the delimiter matching kind (Hook/Group/Set close
// the opening prefix already present at rexp.Src[0]; Path looks for the next
// depth-0 `|`), cutting the matched span into track. It reports whether a
// span was produced at all (ok) and, for Hook/Group/Set, whether a genuine
// closing delimiter was found rather than the span simply running out at end
// of input (terminated) — the latter is how a malformed, unterminated group
// is detected (spec.md §7 E-COMPILE-MALFORMED).
func (c *Compiler) cutByType(rexp, track *element.Element, kind element.Kind) (ok, terminated bool) {
	if len(rexp.Src) == 0 {
		return false, false
	}

	*track = *rexp
	track.Kind = kind

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
				goto unterminated
			}
		}

		var cut bool
		switch kind {
		case element.Hook, element.Group:
			cut = deep == 0
		case element.Set:
			cut = src[i] == ']'
		case element.Path:
			cut = deep == 0 && src[i] == '|'
		}

		if cut {
			track.Src = src[:i]
			cutRexp(rexp, i+1)
			if kind != element.Path {
				cutRexp(track, 1)
			}
			return true, true
		}
		i++
	}

unterminated:
	cutRexp(rexp, len(rexp.Src))
	return true, false
}

// cutSimple cuts a maximal literal run (tokenization rule T4): the run ends
// right before the next structural byte, and a repetition suffix beyond
// offset 1 truncates the run by one byte so the suffix's own atom is left for
// the next tracker() call.
func (c *Compiler) cutSimple(rexp, track *element.Element) {
	src := rexp.Src
	for i := 1; i < len(src); i++ {
		b := src[i]
		if c.isUTF8Lead(b) {
			cutByLen(rexp, track, i, element.Simple)
			return
		}
		switch b {
		case '(', '<', '[', '@', ':', '.':
			cutByLen(rexp, track, i, element.Simple)
			return
		case '?', '+', '*', '{', '#':
			if i == 1 {
				cutByLen(rexp, track, 1, element.Simple)
			} else {
				cutByLen(rexp, track, i-1, element.Simple)
			}
			return
		}
	}

	cutByLen(rexp, track, len(src), element.Simple)
}

// tracker cuts the next top-level atom from rexp into track and reads its
// loop bounds and modifier prefix, per spec.md §4.1/§4.2.2. It reports false
// once rexp is exhausted.
func (c *Compiler) tracker(rexp, track *element.Element) bool {
	if len(rexp.Src) == 0 {
		return false
	}

	lead := rexp.Src[0]
	switch {
	case lead == ':':
		cutByLen(rexp, track, 2, element.Meta)
	case lead == '.':
		cutByLen(rexp, track, 1, element.Point)
	case lead == '@':
		n := 1 + classify.DigitRunLen(rexp.Src[1:])
		cutByLen(rexp, track, n, element.Backref)
	case lead == '(':
		if _, terminated := c.cutByType(rexp, track, element.Group); !terminated && c.err == nil {
			c.err = ErrUnterminatedGroup
		}
	case lead == '<':
		if _, terminated := c.cutByType(rexp, track, element.Hook); !terminated && c.err == nil {
			c.err = ErrUnterminatedGroup
		}
	case lead == '[':
		if _, terminated := c.cutByType(rexp, track, element.Set); !terminated && c.err == nil {
			c.err = ErrUnterminatedSet
		}
	case c.isUTF8Lead(lead):
		cutByLen(rexp, track, charwidth.UTF8Meter(rexp.Src), element.UTF8)
	default:
		c.cutSimple(rexp, track)
	}

	c.getLoops(rexp, track)
	c.getMods(rexp, track)
	return true
}

// trackerSet is tracker's counterpart for the inside of a `[...]` set, where
// `-` at offset 1 always produces a RANGEAB (tokenization rule T4's set
// variant) and loop bounds never apply (spec.md §3 invariant I3).
func (c *Compiler) trackerSet(rexp, track *element.Element) bool {
	if len(rexp.Src) == 0 {
		return false
	}

	lead := rexp.Src[0]
	switch {
	case lead == ':':
		cutByLen(rexp, track, 2, element.Meta)
	case c.isUTF8Lead(lead):
		cutByLen(rexp, track, charwidth.UTF8Meter(rexp.Src), element.UTF8)
	default:
		src := rexp.Src
		cut := false
		for i := 1; i < len(src); i++ {
			b := src[i]
			if b == ':' || c.isUTF8Lead(b) {
				cutByLen(rexp, track, i, element.Simple)
				cut = true
				break
			}
			if b == '-' {
				if i == 1 {
					cutByLen(rexp, track, 3, element.Rangeab)
				} else {
					cutByLen(rexp, track, i-1, element.Simple)
				}
				cut = true
				break
			}
		}
		if !cut {
			cutByLen(rexp, track, len(src), element.Simple)
		}
	}

	track.LoopsMin, track.LoopsMax = 1, 1
	return true
}

// getMods reads an optional `#<flags>` modifier prefix from rexp, applying
// it to track. NEGATIVE is always cleared first: it is never inherited from
// the enclosing element, only set explicitly by `#!` on this atom (spec.md
// §4.1's modifier-prefix table).
func (c *Compiler) getMods(rexp, track *element.Element) {
	track.Mods &^= element.Negative

	if len(rexp.Src) == 0 || rexp.Src[0] != '#' {
		return
	}

	pos := 1
	for pos < len(rexp.Src) {
		switch rexp.Src[pos] {
		case '^':
			track.Mods |= element.Alpha
		case '$':
			track.Mods |= element.Omega
		case '?':
			track.Mods |= element.Lonley
		case '~':
			track.Mods |= element.FwrByChar
		case '*':
			track.Mods |= element.Communism
		case '/':
			track.Mods &^= element.Communism
		case '!':
			track.Mods |= element.Negative
		default:
			cutRexp(rexp, pos)
			return
		}
		pos++
	}
	cutRexp(rexp, pos)
}

// getLoops reads an optional repetition suffix (`?`, `+`, `*`, `{m}`,
// `{m,}`, `{m,n}`) from rexp into track's loop bounds, defaulting to exactly
// one repetition when no suffix is present (spec.md §4.1).
func (c *Compiler) getLoops(rexp, track *element.Element) {
	track.LoopsMin, track.LoopsMax = 1, 1

	if len(rexp.Src) == 0 {
		return
	}

	switch rexp.Src[0] {
	case '?':
		cutRexp(rexp, 1)
		track.LoopsMin, track.LoopsMax = 0, 1
	case '+':
		cutRexp(rexp, 1)
		track.LoopsMin, track.LoopsMax = 1, element.Infinity
	case '*':
		cutRexp(rexp, 1)
		track.LoopsMin, track.LoopsMax = 0, element.Infinity
	case '{':
		cutRexp(rexp, 1)
		track.LoopsMin = classify.LeadingInt(rexp.Src)
		cutRexp(rexp, classify.DigitRunLen(rexp.Src))

		if len(rexp.Src) > 0 && rexp.Src[0] == ',' {
			cutRexp(rexp, 1)
			if len(rexp.Src) > 0 && rexp.Src[0] == '}' {
				track.LoopsMax = element.Infinity
			} else {
				track.LoopsMax = classify.LeadingInt(rexp.Src)
				cutRexp(rexp, classify.DigitRunLen(rexp.Src))
			}
		} else {
			track.LoopsMax = track.LoopsMin
		}

		if len(rexp.Src) > 0 {
			cutRexp(rexp, 1)
		}
	}
}
