// Package suggest proposes default operation sets from a part's
// free-text label, reducing manual data entry for common cabinet-part
// vocabulary. The rule table encodes curated domain knowledge; matching
// is first-rule-first-pattern-wins, so table order is part of the
// contract (specific rules like "Fixed Shelf" must precede the generic
// "Shelf" rule or they would never be reached).
package suggest

import (
	"strings"
	"unicode/utf8"

	"github.com/panelworks/cutplan/pkg/cutlist"
)

// Confidence is the fixed confidence assigned to every table match.
// The table is curated domain knowledge, not a learned score.
const Confidence = 0.85

// OpsPatch is a partial operation set. Only the keys present carry
// meaning: the Edging map specifies individual side flags, and the
// operation lists are additions rather than replacements.
type OpsPatch struct {
	Edging     map[cutlist.Side]bool `json:"edging,omitempty" yaml:"edging,omitempty"`
	EdgebandID string                `json:"edgeband_id,omitempty" yaml:"edgeband_id,omitempty"`
	Grooves    []cutlist.Groove      `json:"grooves,omitempty" yaml:"grooves,omitempty"`
	Holes      []cutlist.Hole        `json:"holes,omitempty" yaml:"holes,omitempty"`
	CNC        []cutlist.CNCOp       `json:"cnc,omitempty" yaml:"cnc,omitempty"`
}

// Suggestion is a proposed default operation set for a labeled part.
// It is a derived value and is never applied until explicitly accepted.
type Suggestion struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ops         OpsPatch `json:"ops"`
	Confidence  float64  `json:"confidence"`
}

// ForLabel matches the label against the rule table and returns the
// winning rule's suggestion, or nil when the trimmed label is shorter
// than two characters or nothing matches.
func ForLabel(label string) *Suggestion {
	trimmed := strings.ToLower(strings.TrimSpace(label))
	if utf8.RuneCountInString(trimmed) < 2 {
		return nil
	}
	for _, r := range nameRules {
		for _, p := range r.patterns {
			if p.MatchString(trimmed) {
				return &Suggestion{
					Name:        r.name,
					Description: r.description,
					Ops:         r.ops,
					Confidence:  Confidence,
				}
			}
		}
	}
	return nil
}

// OperationsMatch reports whether the current operation set already
// satisfies the suggestion, comparing only the keys the patch
// specifies: edging side flags must match exactly where specified, and
// each operation list must have at least the suggested count. Used to
// suppress a suggestion chip once its effect is present.
func OperationsMatch(current cutlist.OperationSet, patch OpsPatch) bool {
	for side, want := range patch.Edging {
		if current.Edging.Has(side) != want {
			return false
		}
	}
	if len(current.Grooves) < len(patch.Grooves) {
		return false
	}
	if len(current.Holes) < len(patch.Holes) {
		return false
	}
	if len(current.CNC) < len(patch.CNC) {
		return false
	}
	return true
}

// Apply merges the patch into the current operation set and returns the
// result. Edging sides are shallow-merged with explicit patch values
// winning; groove, hole, and CNC lists are concatenated with the patch
// entries appended after existing ones. Nothing is deduplicated here;
// duplicate suppression is the caller's job. defaultEdgebandID is
// assigned when the patch introduces edging and neither the current set
// nor the patch names a band.
func Apply(current cutlist.OperationSet, patch OpsPatch, defaultEdgebandID string) cutlist.OperationSet {
	out := current

	for side, on := range patch.Edging {
		out.Edging = out.Edging.With(side, on)
	}

	switch {
	case patch.EdgebandID != "":
		out.EdgebandID = patch.EdgebandID
	case out.EdgebandID == "" && out.Edging.Any() && defaultEdgebandID != "":
		out.EdgebandID = defaultEdgebandID
	}

	out.Grooves = append(append([]cutlist.Groove{}, current.Grooves...), patch.Grooves...)
	out.Holes = append(append([]cutlist.Hole{}, current.Holes...), patch.Holes...)
	out.CNC = append(append([]cutlist.CNCOp{}, current.CNC...), patch.CNC...)

	return out
}
