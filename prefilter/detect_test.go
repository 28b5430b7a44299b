package prefilter

import (
	"testing"

	"github.com/nasciiboy/regex4/internal/compiler"
	"github.com/nasciiboy/regex4/internal/table"
)

func compileTable(t *testing.T, pattern string) *table.Table {
	t.Helper()
	c := compiler.New(false, 256)
	tbl, _, err := c.Compile([]byte(pattern))
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", pattern, err)
	}
	return tbl
}

func TestDetectLiteralAlternationRecognizesPlainBranches(t *testing.T) {
	tbl := compileTable(t, "cat|dog|bird")

	literals, ok := DetectLiteralAlternation(tbl)
	if !ok {
		t.Fatal("expected a plain literal alternation to be recognized")
	}
	if len(literals) != 3 {
		t.Fatalf("got %d literals, want 3", len(literals))
	}
	want := []string{"cat", "dog", "bird"}
	for i, lit := range literals {
		if string(lit) != want[i] {
			t.Errorf("literals[%d] = %q, want %q", i, lit, want[i])
		}
	}
}

func TestDetectLiteralAlternationRejectsNonLiteralBranch(t *testing.T) {
	tbl := compileTable(t, "cat|do+g")

	if _, ok := DetectLiteralAlternation(tbl); ok {
		t.Error("expected detection to fail: one branch has a repetition suffix")
	}
}

func TestDetectLiteralAlternationRejectsSingleBranch(t *testing.T) {
	tbl := compileTable(t, "cat")

	if _, ok := DetectLiteralAlternation(tbl); ok {
		t.Error("expected detection to fail: not an alternation at all")
	}
}

func TestDetectLiteralAlternationRejectsGroupedBranch(t *testing.T) {
	tbl := compileTable(t, "(cat)|dog")

	if _, ok := DetectLiteralAlternation(tbl); ok {
		t.Error("expected detection to fail: a branch is a nested group, not a bare literal")
	}
}

func TestDetectLeadingMandatoryLiteral(t *testing.T) {
	tbl := compileTable(t, "cat:d+")

	pf, ok := DetectLeading(tbl)
	if !ok {
		t.Fatal("expected a leading literal to be detected")
	}
	if got := pf.Find([]byte("xx cat1"), 0); got != 3 {
		t.Errorf("Find = %d, want 3", got)
	}
}

func TestDetectLeadingRejectsOptionalFirstAtom(t *testing.T) {
	tbl := compileTable(t, "x?cat")

	if _, ok := DetectLeading(tbl); ok {
		t.Error("expected detection to fail: the first atom is optional (LoopsMin == 0)")
	}
}

func TestDetectLeadingSet(t *testing.T) {
	tbl := compileTable(t, "[xyz]abc")

	pf, ok := DetectLeading(tbl)
	if !ok {
		t.Fatal("expected a leading flat set to be detected")
	}
	if got := pf.Find([]byte("__y__"), 0); got != 2 {
		t.Errorf("Find = %d, want 2", got)
	}
}

func TestDetectLeadingRejectsSetWithRange(t *testing.T) {
	tbl := compileTable(t, "[a-z]cat")

	if _, ok := DetectLeading(tbl); ok {
		t.Error("expected detection to fail: the set contains a range, not flat members")
	}
}

func TestDetectLeadingRejectsGroupFirst(t *testing.T) {
	tbl := compileTable(t, "(ab)cd")

	if _, ok := DetectLeading(tbl); ok {
		t.Error("expected detection to fail: the first entry is a group, not a literal or set")
	}
}
