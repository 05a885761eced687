// Package shortcode encodes structured operation sets as compact,
// human-writable code strings, e.g. "EB:4S GR:DADO:8x4@W1 H:SYS32@left CNC:POCKET1".
// The codes are used for display and as the vocabulary recognized by
// the correction detector's pattern tables.
package shortcode

import (
	"fmt"
	"strings"

	"github.com/panelworks/cutplan/pkg/cutlist"
)

// Token prefixes for each operation component.
const (
	PrefixEdging = "EB"
	PrefixGroove = "GR"
	PrefixHole   = "H"
	PrefixCNC    = "CNC"
)

// Named side-set abbreviations. Asymmetric combinations fall back to
// the concatenation of side codes in canonical order.
const (
	SidesAll       = "4S" // all four sides
	SidesBothLong  = "2L" // L1+L2
	SidesBothShort = "2W" // W1+W2
)

// sideSets maps recognized side-set codes back to their side flags.
// This is a lookup table, not a parser: only known combinations are
// recognized, which is all the diff vocabulary requires.
var sideSets = map[string]cutlist.EdgingSides{
	SidesAll:       {L1: true, L2: true, W1: true, W2: true},
	SidesBothLong:  {L1: true, L2: true},
	SidesBothShort: {W1: true, W2: true},
	"L1":           {L1: true},
	"L2":           {L2: true},
	"W1":           {W1: true},
	"W2":           {W2: true},
	"L1W1":         {L1: true, W1: true},
	"L1W2":         {L1: true, W2: true},
	"L2W1":         {L2: true, W1: true},
	"L2W2":         {L2: true, W2: true},
	"L1L2W1":       {L1: true, L2: true, W1: true},
	"L1L2W2":       {L1: true, L2: true, W2: true},
	"L1W1W2":       {L1: true, W1: true, W2: true},
	"L2W1W2":       {L2: true, W1: true, W2: true},
}

// Encode renders an operation set as space-joined tokens in fixed
// component order: edging, grooves, holes, CNC. The result is empty
// for a zero operation set and deterministic for a given input.
func Encode(ops cutlist.OperationSet) string {
	tokens := make([]string, 0, 1+len(ops.Grooves)+len(ops.Holes)+len(ops.CNC))

	if tok := EncodeEdging(ops.Edging, ops.EdgebandID); tok != "" {
		tokens = append(tokens, tok)
	}
	for _, g := range ops.Grooves {
		tokens = append(tokens, EncodeGroove(g))
	}
	for _, h := range ops.Holes {
		tokens = append(tokens, EncodeHole(h))
	}
	for _, c := range ops.CNC {
		tokens = append(tokens, EncodeCNC(c))
	}

	return strings.Join(tokens, " ")
}

// EncodeEdging renders the edging token, or "" when no side is banded.
// With a band ID the token is "EB:<band>:<sides>", otherwise "EB:<sides>".
func EncodeEdging(sides cutlist.EdgingSides, bandID string) string {
	if !sides.Any() {
		return ""
	}
	code := SidesCode(sides)
	if bandID != "" {
		return PrefixEdging + ":" + bandID + ":" + code
	}
	return PrefixEdging + ":" + code
}

// SidesCode returns the abbreviation for a side set: 4S for all four,
// 2L for both long edges, 2W for both short edges, and otherwise the
// concatenation of the set side codes in canonical order.
func SidesCode(sides cutlist.EdgingSides) string {
	switch {
	case sides.L1 && sides.L2 && sides.W1 && sides.W2:
		return SidesAll
	case sides.L1 && sides.L2 && !sides.W1 && !sides.W2:
		return SidesBothLong
	case sides.W1 && sides.W2 && !sides.L1 && !sides.L2:
		return SidesBothShort
	}
	var b strings.Builder
	for _, s := range sides.Codes() {
		b.WriteString(string(s))
	}
	return b.String()
}

// SideSet resolves a known side-set code to its side flags. It reports
// false for codes outside the recognized vocabulary.
func SideSet(code string) (cutlist.EdgingSides, bool) {
	sides, ok := sideSets[strings.ToUpper(strings.TrimSpace(code))]
	return sides, ok
}

// EncodeGroove renders one groove token, e.g. "GR:DADO:8x4@W1".
// A nonzero offset is appended as "+<offset>".
func EncodeGroove(g cutlist.Groove) string {
	tok := fmt.Sprintf("%s:%s:%gx%g@%s", PrefixGroove, strings.ToUpper(g.Kind), g.WidthMM, g.DepthMM, g.Side)
	if g.OffsetMM != 0 {
		tok += fmt.Sprintf("+%g", g.OffsetMM)
	}
	return tok
}

// EncodeHole renders one hole token, e.g. "H:SYS32@left".
func EncodeHole(h cutlist.Hole) string {
	tok := PrefixHole + ":" + strings.ToUpper(h.Pattern)
	if h.Anchor != "" {
		tok += "@" + h.Anchor
	}
	return tok
}

// EncodeCNC renders one CNC token, e.g. "CNC:POCKET1".
func EncodeCNC(c cutlist.CNCOp) string {
	return PrefixCNC + ":" + strings.ToUpper(c.Program)
}
