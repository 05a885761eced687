// Package rules provides ordered, first-match-wins regex rule tables.
// Both the correction detector and the name suggester dispatch on these
// tables; table order is a load-bearing part of their contracts, so the
// table preserves insertion order and never ranks or scores entries.
package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Entry is one rule in a table: a compiled pattern and the value it
// maps to.
type Entry[T any] struct {
	Pattern *regexp.Regexp
	Value   T
}

// Table is an ordered list of rules. Matching scans top to bottom and
// stops at the first pattern that matches.
type Table[T any] struct {
	entries []Entry[T]
}

// New creates an empty rule table.
func New[T any]() *Table[T] {
	return &Table[T]{}
}

// Add compiles the pattern case-insensitively and appends it to the
// table. It panics on an invalid pattern; tables are package-level
// literals, so a bad pattern is a programming error.
func (t *Table[T]) Add(pattern string, value T) *Table[T] {
	re, err := compile(pattern)
	if err != nil {
		panic(err)
	}
	t.entries = append(t.entries, Entry[T]{Pattern: re, Value: value})
	return t
}

// Match scans the table in order and returns the first matching entry's
// value along with the matched text. ok is false when nothing matches.
func (t *Table[T]) Match(input string) (value T, matched string, ok bool) {
	for _, e := range t.entries {
		if loc := e.Pattern.FindString(input); loc != "" {
			return e.Value, loc, true
		}
	}
	var zero T
	return zero, "", false
}

// MatchSubmatch is like Match but also returns the capture groups of
// the winning pattern (index 0 is the full match).
func (t *Table[T]) MatchSubmatch(input string) (value T, groups []string, ok bool) {
	for _, e := range t.entries {
		if groups := e.Pattern.FindStringSubmatch(input); groups != nil {
			return e.Value, groups, true
		}
	}
	var zero T
	return zero, nil, false
}

// Len returns the number of rules in the table.
func (t *Table[T]) Len() int {
	return len(t.entries)
}

// compile prepares a case-insensitive regex.
func compile(pattern string) (*regexp.Regexp, error) {
	if !strings.HasPrefix(pattern, "(?i)") {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid rule pattern %q: %w", pattern, err)
	}
	return re, nil
}

// MustCompile compiles a standalone case-insensitive pattern, panicking
// on error. Used for one-off patterns outside a table.
func MustCompile(pattern string) *regexp.Regexp {
	re, err := compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}
