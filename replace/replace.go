// Package replace implements the capture-template operations spec.md §4.3
// describes, the direct transcription of original_source/regexp4_utf8.c:
// 589-628 (`rplCatch`/`putCatch`).
package replace

import (
	"github.com/nasciiboy/regex4/internal/classify"
	"github.com/nasciiboy/regex4/internal/vm"
)

// Capture replaces every capture slot carrying id with repl and appends the
// result to dst, copying the untouched spans of text verbatim — rplCatch.
// text must be the same full input the match was run against.
func Capture(dst, text []byte, captures *vm.Captures, id int, repl []byte) []byte {
	last := captures.SentinelStart()

	for i := 1; i < captures.Count(); i++ {
		if captures.ID(i) != id {
			continue
		}

		start := captures.Start(i)
		if last > start {
			last = start
		}

		dst = append(dst, text[last:start]...)
		dst = append(dst, repl...)
		last = start + captures.Len(i)
	}

	dst = append(dst, text[last:captures.SentinelEnd()]...)
	return dst
}

// Expand appends template to dst, replacing each `#N` placeholder with
// capture slot N's text (1-based, the order captures were opened in) and
// `##` with a literal `#` — putCatch.
func Expand(dst, text []byte, captures *vm.Captures, template []byte) []byte {
	i := 0
	for i < len(template) {
		if template[i] != '#' {
			dst = append(dst, template[i])
			i++
			continue
		}

		i++
		if i >= len(template) {
			break
		}
		if template[i] == '#' {
			dst = append(dst, '#')
			i++
			continue
		}

		index := classify.LeadingInt(template[i:])
		n := classify.DigitRunLen(template[i:])
		i += n

		start := captures.Start(index)
		if start >= 0 {
			dst = append(dst, text[start:start+captures.Len(index)]...)
		}
	}
	return dst
}
