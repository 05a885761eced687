package rules

import (
	"testing"
)

func TestTable_FirstMatchWins(t *testing.T) {
	table := New[string]().
		Add(`\bfixed\s+shelf\b`, "fixed").
		Add(`\bshelf\b`, "generic")

	value, matched, ok := table.Match("one fixed shelf please")
	if !ok {
		t.Fatal("expected a match")
	}
	if value != "fixed" {
		t.Errorf("Match() value = %q, want %q", value, "fixed")
	}
	if matched != "fixed shelf" {
		t.Errorf("Match() matched = %q, want %q", matched, "fixed shelf")
	}
}

func TestTable_OrderIsLoadBearing(t *testing.T) {
	// The same patterns in the opposite order shadow the specific rule.
	table := New[string]().
		Add(`\bshelf\b`, "generic").
		Add(`\bfixed\s+shelf\b`, "fixed")

	value, _, ok := table.Match("one fixed shelf please")
	if !ok || value != "generic" {
		t.Errorf("Match() value = %q, want %q (earlier entry wins)", value, "generic")
	}
}

func TestTable_CaseInsensitive(t *testing.T) {
	table := New[string]().Add(`\bmdf\b`, "MDF")

	if _, _, ok := table.Match("18mm MDF board"); !ok {
		t.Error("expected case-insensitive match")
	}
}

func TestTable_NoMatch(t *testing.T) {
	table := New[int]().Add(`\bdoor\b`, 1)

	value, matched, ok := table.Match("window")
	if ok || value != 0 || matched != "" {
		t.Errorf("Match() = (%v, %q, %v), want zero values", value, matched, ok)
	}
}

func TestTable_MatchSubmatch(t *testing.T) {
	table := New[string]().Add(`(\d+)\s*x\s*(\d+)`, "dims")

	value, groups, ok := table.MatchSubmatch("cut 300 x 600")
	if !ok {
		t.Fatal("expected a match")
	}
	if value != "dims" {
		t.Errorf("value = %q, want %q", value, "dims")
	}
	if len(groups) != 3 || groups[1] != "300" || groups[2] != "600" {
		t.Errorf("groups = %v, want full match plus 300 and 600", groups)
	}
}

func TestAdd_PanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid pattern")
		}
	}()
	New[string]().Add(`[unclosed`, "bad")
}
