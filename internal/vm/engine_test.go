package vm_test

import (
	"testing"

	"github.com/nasciiboy/regex4/internal/compiler"
	"github.com/nasciiboy/regex4/internal/vm"
)

func buildEngine(t *testing.T, pattern string, utf8Mode bool) *vm.Engine {
	t.Helper()
	c := compiler.New(utf8Mode, 256)
	tbl, mods, err := c.Compile([]byte(pattern))
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", pattern, err)
	}
	return vm.NewEngine(tbl, mods, 16, utf8Mode)
}

func TestEngineSimpleLiteralMatch(t *testing.T) {
	e := buildEngine(t, "cat", false)

	_, result := e.Run([]byte("a black cat sat"))
	if !result.Matched {
		t.Fatal("expected a match")
	}
}

func TestEngineNoMatch(t *testing.T) {
	e := buildEngine(t, "dog", false)

	_, result := e.Run([]byte("a black cat sat"))
	if result.Matched {
		t.Fatal("expected no match")
	}
}

func TestEngineFindCountsNonOverlappingMatches(t *testing.T) {
	e := buildEngine(t, ":d+", false)

	_, result := e.Run([]byte("there are 12 cats and 7 dogs"))
	if result.Count != 2 {
		t.Errorf("Count = %d, want 2", result.Count)
	}
}

func TestEngineAlphaAnchorsToStart(t *testing.T) {
	e := buildEngine(t, "#^cat", false)

	_, result := e.Run([]byte("a cat"))
	if result.Matched {
		t.Error("ALPHA-anchored pattern matched despite the text not starting with it")
	}

	_, result2 := e.Run([]byte("cats"))
	if !result2.Matched {
		t.Error("ALPHA-anchored pattern should match when the text starts with it")
	}
}

func TestEngineOmegaRequiresReachingTheEnd(t *testing.T) {
	e := buildEngine(t, "#$cat", false)

	_, result := e.Run([]byte("cats"))
	if result.Matched {
		t.Error("OMEGA pattern matched a prefix that does not reach the true end")
	}

	_, result2 := e.Run([]byte("cat"))
	if !result2.Matched {
		t.Error("OMEGA pattern should match text that is exactly the pattern")
	}
}

func TestEngineLonleyStopsAtFirstMatch(t *testing.T) {
	e := buildEngine(t, "#?:d+", false)

	_, result := e.Run([]byte("1 2 3"))
	if result.Count != 1 {
		t.Errorf("Count = %d, want 1 under LONLEY", result.Count)
	}
}

func TestEngineCapturesFromHook(t *testing.T) {
	e := buildEngine(t, "<:w+>:@<:w+>", false)

	captures, result := e.Run([]byte("user@host"))
	if !result.Matched {
		t.Fatal("expected a match")
	}
	if captures.Total() != 2 {
		t.Fatalf("Total() = %d, want 2", captures.Total())
	}

	user := string(capturedBytes([]byte("user@host"), captures, 1))
	host := string(capturedBytes([]byte("user@host"), captures, 2))
	if user != "user" || host != "host" {
		t.Errorf("captures = %q, %q, want \"user\", \"host\"", user, host)
	}
}

func capturedBytes(text []byte, c *vm.Captures, i int) []byte {
	start := c.Start(i)
	if start < 0 {
		return nil
	}
	return text[start : start+c.Len(i)]
}

func TestEngineAlternation(t *testing.T) {
	e := buildEngine(t, "cat|dog", false)

	if _, r := e.Run([]byte("a dog ran")); !r.Matched {
		t.Error("expected \"dog\" branch to match")
	}
	if _, r := e.Run([]byte("a bird ran")); r.Matched {
		t.Error("expected no match for neither branch")
	}
}

func TestEngineGroupRepetition(t *testing.T) {
	// ALPHA+OMEGA together pin the match to the whole string starting at
	// position 0, so the loop bounds are tested without the outer scan
	// finding a later start offset that also happens to fit exactly.
	e := buildEngine(t, "#^$(ab){2,3}", false)

	if _, r := e.Run([]byte("abab")); !r.Matched {
		t.Error("expected (ab){2,3} to match \"abab\"")
	}
	if _, r := e.Run([]byte("ababab")); !r.Matched {
		t.Error("expected (ab){2,3} to match \"ababab\"")
	}
	if _, r := e.Run([]byte("ab")); r.Matched {
		t.Error("expected (ab){2,3} not to match a single \"ab\"")
	}
	if _, r := e.Run([]byte("abababab")); r.Matched {
		t.Error("expected (ab){2,3} not to match four repeats")
	}
}

func TestEngineNegativeSet(t *testing.T) {
	// ALPHA+OMEGA anchors both ends, so the whole string must be one run
	// of non-digits.
	e := buildEngine(t, "#^$[^0-9]+", false)

	if _, r := e.Run([]byte("abc")); !r.Matched {
		t.Error("expected [^0-9]+ to match a non-digit run")
	}
	if _, r := e.Run([]byte("a1c")); r.Matched {
		t.Error("expected [^0-9]+ not to match a string containing a digit")
	}
}

func TestEngineBackreference(t *testing.T) {
	e := buildEngine(t, "#^$<:w+>-@1", false)

	if _, r := e.Run([]byte("abc-abc")); !r.Matched {
		t.Error("expected <\\w+>-@1 to match a repeated word")
	}
	if _, r := e.Run([]byte("abc-xyz")); r.Matched {
		t.Error("expected <\\w+>-@1 not to match mismatched halves")
	}
}

func TestEngineCommunismCaseFold(t *testing.T) {
	e := buildEngine(t, "#*cat", false)

	if _, r := e.Run([]byte("CAT")); !r.Matched {
		t.Error("expected #* (COMMUNISM) to fold case")
	}
}

func TestEngineMetaAmpersandIsUTF8OnlyElsewhereLiteral(t *testing.T) {
	// :& means "any multi-byte code point lead" only in UTF8 mode; in Byte
	// mode it falls through to literal equality against '&'.
	byteEngine := buildEngine(t, "#^$a:&b", false)
	if _, r := byteEngine.Run([]byte("a&b")); !r.Matched {
		t.Error("expected :& to match a literal '&' in Byte mode")
	}
	if _, r := byteEngine.Run([]byte("a\xc3b")); r.Matched {
		t.Error("expected :& to reject a high-bit byte in Byte mode")
	}

	utf8Engine := buildEngine(t, "#^$a:&b", true)
	text := append(append([]byte("a"), 0xC3, 0xA9), 'b') // "a" + "é" + "b"
	if _, r := utf8Engine.Run(text); !r.Matched {
		t.Error("expected :& to match a UTF-8 lead byte in UTF8 mode")
	}
}

func TestEngineUTF8ModeMatchesWholeCodePoint(t *testing.T) {
	e := buildEngine(t, "#$.+", true)

	text := append([]byte{0xC3, 0xA9}, []byte{0xC3, 0xA8}...) // "éè"
	captures, r := e.Run(text)
	if !r.Matched {
		t.Fatal("expected .+ to match the whole UTF-8 string")
	}
	_ = captures
}

func TestEngineEmptyTextNeverMatchesNonEmptyPattern(t *testing.T) {
	e := buildEngine(t, "a", false)

	_, r := e.Run(nil)
	if r.Matched {
		t.Error("expected no match against empty text")
	}
}

func TestEngineEmptyPatternNeverMatches(t *testing.T) {
	e := buildEngine(t, "", false)

	_, r := e.Run([]byte("abc"))
	if r.Matched || r.Count != 0 {
		t.Errorf("Run(%q) = %+v, want an unmatched, zero-count result", "abc", r)
	}
}

func TestEngineAlternationBranchFailureRestoresCaptures(t *testing.T) {
	// The first branch opens a capture, then fails on the literal that
	// follows; the walker must restore the capture count before trying
	// the second branch, so the engine ends up with exactly one capture
	// slot (from whichever branch actually succeeded), not two.
	e := buildEngine(t, "#^$(<.>x|<.>y)z", false)

	captures, r := e.Run([]byte("qyz"))
	if !r.Matched {
		t.Fatal("expected the second branch to match \"qyz\"")
	}
	if captures.Total() != 1 {
		t.Fatalf("Total() = %d, want 1 (failed first branch must not leave a stray capture)", captures.Total())
	}
	if got := capturedBytes([]byte("qyz"), captures, 1); string(got) != "q" {
		t.Errorf("capture 1 = %q, want %q", got, "q")
	}
}
