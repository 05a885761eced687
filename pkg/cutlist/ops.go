package cutlist

// Side identifies one edge of a rectangular panel. L1/L2 are the long
// edges, W1/W2 the short edges, following the convention that L ≥ W.
type Side string

// Panel side codes, in canonical sort order.
const (
	SideL1 Side = "L1"
	SideL2 Side = "L2"
	SideW1 Side = "W1"
	SideW2 Side = "W2"
)

// Sides lists all panel sides in canonical order.
var Sides = []Side{SideL1, SideL2, SideW1, SideW2}

// EdgingSides records which edges of a panel receive edge banding.
type EdgingSides struct {
	L1 bool `json:"l1,omitempty" yaml:"l1,omitempty"`
	L2 bool `json:"l2,omitempty" yaml:"l2,omitempty"`
	W1 bool `json:"w1,omitempty" yaml:"w1,omitempty"`
	W2 bool `json:"w2,omitempty" yaml:"w2,omitempty"`
}

// Has reports whether the given side is set.
func (e EdgingSides) Has(s Side) bool {
	switch s {
	case SideL1:
		return e.L1
	case SideL2:
		return e.L2
	case SideW1:
		return e.W1
	case SideW2:
		return e.W2
	}
	return false
}

// With returns a copy of e with the given side set to on.
func (e EdgingSides) With(s Side, on bool) EdgingSides {
	switch s {
	case SideL1:
		e.L1 = on
	case SideL2:
		e.L2 = on
	case SideW1:
		e.W1 = on
	case SideW2:
		e.W2 = on
	}
	return e
}

// Count returns the number of banded sides.
func (e EdgingSides) Count() int {
	n := 0
	for _, s := range Sides {
		if e.Has(s) {
			n++
		}
	}
	return n
}

// Codes returns the set sides as side codes in canonical order.
func (e EdgingSides) Codes() []Side {
	codes := make([]Side, 0, 4)
	for _, s := range Sides {
		if e.Has(s) {
			codes = append(codes, s)
		}
	}
	return codes
}

// Any reports whether at least one side is banded.
func (e EdgingSides) Any() bool {
	return e.L1 || e.L2 || e.W1 || e.W2
}

// Groove is a linear routed channel, such as a dado for a back panel.
type Groove struct {
	Kind    string  `json:"kind" yaml:"kind"` // e.g. "DADO", "RABBET"
	WidthMM float64 `json:"width_mm" yaml:"width_mm"`
	DepthMM float64 `json:"depth_mm" yaml:"depth_mm"`
	Side    Side    `json:"side" yaml:"side"`
	// OffsetMM is the distance from the reference edge, zero when the
	// groove runs along the edge itself.
	OffsetMM float64 `json:"offset_mm,omitempty" yaml:"offset_mm,omitempty"`
}

// Hole is a drilling pattern anchored to one region of the panel.
type Hole struct {
	Pattern string `json:"pattern" yaml:"pattern"` // e.g. "SYS32", "HINGE35"
	Anchor  string `json:"anchor,omitempty" yaml:"anchor,omitempty"`
}

// CNCOp references a named CNC routing program.
type CNCOp struct {
	Program string `json:"program" yaml:"program"` // e.g. "POCKET1"
}

// OperationSet is the full set of manufacturing operations on a part.
type OperationSet struct {
	Edging EdgingSides `json:"edging,omitempty" yaml:"edging,omitempty"`
	// EdgebandID references the edge band material in the external
	// catalog; empty means the workshop default.
	EdgebandID string   `json:"edgeband_id,omitempty" yaml:"edgeband_id,omitempty"`
	Grooves    []Groove `json:"grooves,omitempty" yaml:"grooves,omitempty"`
	Holes      []Hole   `json:"holes,omitempty" yaml:"holes,omitempty"`
	CNC        []CNCOp  `json:"cnc,omitempty" yaml:"cnc,omitempty"`
}

// IsZero reports whether no operation of any kind is present.
func (o OperationSet) IsZero() bool {
	return !o.Edging.Any() && len(o.Grooves) == 0 && len(o.Holes) == 0 && len(o.CNC) == 0
}
