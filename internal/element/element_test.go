package element

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{Path, "Path"},
		{Group, "Group"},
		{Hook, "Hook"},
		{Set, "Set"},
		{Backref, "Backref"},
		{Meta, "Meta"},
		{Rangeab, "Rangeab"},
		{UTF8, "UTF8"},
		{Point, "Point"},
		{Simple, "Simple"},
		{Kind(255), "Unknown"},
	}

	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.k, got, c.want)
		}
	}
}

func TestModHas(t *testing.T) {
	m := Alpha | Communism

	if !m.Has(Alpha) {
		t.Error("Has(Alpha) = false, want true")
	}
	if !m.Has(Communism) {
		t.Error("Has(Communism) = false, want true")
	}
	if m.Has(Omega) {
		t.Error("Has(Omega) = true, want false")
	}
	if m.Has(Negative) {
		t.Error("Has(Negative) = true, want false")
	}
}

func TestElementHasDelegatesToMod(t *testing.T) {
	e := Element{Mods: Lonley | Negative}

	if !e.Has(Lonley) {
		t.Error("Element.Has(Lonley) = false, want true")
	}
	if !e.Has(Negative) {
		t.Error("Element.Has(Negative) = false, want true")
	}
	if e.Has(FwrByChar) {
		t.Error("Element.Has(FwrByChar) = true, want false")
	}
}

func TestInfinityExceedsAnyRealisticLoopBound(t *testing.T) {
	if Infinity <= 1<<20 {
		t.Errorf("Infinity = %d, too small to act as an unbounded sentinel", Infinity)
	}
}
