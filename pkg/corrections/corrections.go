// Package corrections reconstructs, for human audit, which corrections
// the upstream parser applied when it normalized a part's raw source
// text into canonical field values. Detection never mutates the part
// and never fails: a non-match is an expected outcome, not a fault.
package corrections

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/panelworks/cutplan/internal/rules"
	"github.com/panelworks/cutplan/pkg/cutlist"
)

// Type classifies how a canonical value relates to the raw input.
type Type string

// Correction types.
const (
	// TypeSwap indicates two values were transposed, e.g. length/width.
	TypeSwap Type = "swap"
	// TypeNormalize indicates free-text notation was rewritten to a
	// canonical code.
	TypeNormalize Type = "normalize"
	// TypeInfer indicates a value absent from the input was defaulted.
	TypeInfer Type = "infer"
	// TypeFix indicates an outright error was repaired.
	TypeFix Type = "fix"
)

// Correction is one detected difference between a part's raw source
// text and its canonical field value. Corrections are ephemeral derived
// values: recomputed on demand, never persisted.
type Correction struct {
	Field      string `json:"field"`
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
	Type       Type   `json:"type"`
}

// Detector reconstructs corrections from a part's source text.
type Detector interface {
	// Detect returns the corrections for one part, at most one per
	// category, in fixed category order. Parts without source text
	// yield an empty result.
	Detect(p cutlist.Part) []Correction
}

// detector is the default table-driven implementation.
type detector struct{}

// New creates a Detector backed by the package's pattern tables.
func New() Detector {
	return &detector{}
}

// dimensionPattern captures a "<num> x <num>" pair in raw text.
var dimensionPattern = rules.MustCompile(`(\d+(?:\.\d+)?)\s*[x×]\s*(\d+(?:\.\d+)?)`)

// edgeNotation maps free-text edging shorthand to canonical codes.
// Order is load-bearing: earlier entries win.
var edgeNotation = rules.New[string]().
	Add(`\b1l\b`, "L1").
	Add(`\b2l\b`, "L2").
	Add(`\beb\s*all\b`, "EB:4").
	Add(`\ball\s+edges\b`, "EB:4").
	Add(`\b2l\s+2w\b`, "EB:4").
	Add(`\b4\s+edges\b`, "EB:4")

// materialNotation maps free-text material names to catalog codes.
var materialNotation = rules.New[string]().
	Add(`\bwhite(?:\s+(?:melamine|board))?\b`, "W").
	Add(`\bwm\b`, "W").
	Add(`\bply(?:wood)?\b`, "Ply").
	Add(`\bblack\b`, "B").
	Add(`\bmdf\b`, "MDF").
	Add(`\boak\b`, "Oak")

// quantityMarker recognizes an explicit quantity in raw text.
// The × branch carries no \b because × is not a word character.
var quantityMarker = rules.MustCompile(`(?:\b(?:qty|q|x)|×)\s*\.?\s*\d+`)

// grooveNotation recognizes groove shorthand in raw text.
var grooveNotation = rules.New[string]().
	Add(`\bgl\b`, "GL").
	Add(`\bgw\b`, "GW").
	Add(`\bgrv\b`, "GRV").
	Add(`\bback\s+groove\b`, "BACK").
	Add(`\bbpg\b`, "BPG")

// Detect applies each category's table independently, short-circuiting
// after the first match within a category.
func (d *detector) Detect(p cutlist.Part) []Correction {
	text := strings.TrimSpace(p.SourceText)
	if text == "" {
		return nil
	}

	var out []Correction
	if c := d.detectDimensionSwap(text, p); c != nil {
		out = append(out, *c)
	}
	if c := d.detectEdgeNotation(text); c != nil {
		out = append(out, *c)
	}
	if c := d.detectMaterial(text); c != nil {
		out = append(out, *c)
	}
	if c := d.detectQuantity(text, p); c != nil {
		out = append(out, *c)
	}
	if c := d.detectGrooves(text, p); c != nil {
		out = append(out, *c)
	}
	return out
}

// detectDimensionSwap emits a swap correction when the raw text lists
// the smaller dimension first and the canonical size has them in the
// conventional longest-first order.
func (d *detector) detectDimensionSwap(text string, p cutlist.Part) *Correction {
	groups := dimensionPattern.FindStringSubmatch(text)
	if groups == nil {
		return nil
	}
	first, err1 := strconv.ParseFloat(groups[1], 64)
	second, err2 := strconv.ParseFloat(groups[2], 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	if first >= second {
		return nil
	}
	if p.Size.L != second || p.Size.W != first {
		return nil
	}
	return &Correction{
		Field:      "size",
		Original:   fmt.Sprintf("%g×%g", first, second),
		Normalized: fmt.Sprintf("%g×%g", second, first),
		Type:       TypeSwap,
	}
}

// detectEdgeNotation emits a normalize correction for the first edging
// shorthand recognized in the raw text.
func (d *detector) detectEdgeNotation(text string) *Correction {
	code, matched, ok := edgeNotation.Match(text)
	if !ok {
		return nil
	}
	return &Correction{
		Field:      "edging",
		Original:   matched,
		Normalized: code,
		Type:       TypeNormalize,
	}
}

// detectMaterial emits a normalize correction when the matched literal
// differs (case-insensitively) from its canonical material code.
func (d *detector) detectMaterial(text string) *Correction {
	code, matched, ok := materialNotation.Match(text)
	if !ok {
		return nil
	}
	// A Caser is stateful; build one per call so Detect stays re-entrant.
	fold := cases.Fold()
	if fold.String(matched) == fold.String(code) {
		return nil
	}
	return &Correction{
		Field:      "material",
		Original:   matched,
		Normalized: code,
		Type:       TypeNormalize,
	}
}

// detectQuantity emits an infer correction when the raw text carries no
// explicit quantity marker and the canonical quantity defaulted to 1.
func (d *detector) detectQuantity(text string, p cutlist.Part) *Correction {
	if p.Qty != 1 {
		return nil
	}
	if quantityMarker.MatchString(text) {
		return nil
	}
	return &Correction{
		Field:      "qty",
		Original:   "(not specified)",
		Normalized: "1",
		Type:       TypeInfer,
	}
}

// detectGrooves emits a normalize correction summarizing the canonical
// groove sides when the raw text carries groove shorthand.
func (d *detector) detectGrooves(text string, p cutlist.Part) *Correction {
	if len(p.Ops.Grooves) == 0 {
		return nil
	}
	_, matched, ok := grooveNotation.Match(text)
	if !ok {
		return nil
	}
	sides := make([]string, 0, len(p.Ops.Grooves))
	for _, g := range p.Ops.Grooves {
		sides = append(sides, string(g.Side))
	}
	return &Correction{
		Field:      "grooves",
		Original:   matched,
		Normalized: "GR:" + strings.Join(sides, "+"),
		Type:       TypeNormalize,
	}
}
