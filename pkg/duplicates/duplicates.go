// Package duplicates surfaces panels that are physically identical but
// were entered as separate rows, and computes the merge that collapses
// such a group into one part. Detection is a pure projection of the
// current part snapshot; the merge itself is a two-phase protocol where
// this package only computes the intended new state and the external
// store performs the mutation.
package duplicates

import (
	"fmt"

	"github.com/panelworks/cutplan/pkg/cutlist"
)

// Member is one part's membership in a duplicate group, with its index
// in the snapshot it was detected from.
type Member struct {
	Part  cutlist.Part
	Index int
}

// Group is a set of parts sharing identical normalized dimensions,
// material, and thickness. Groups are derived values recomputed on
// every detection pass and never stored.
type Group struct {
	// Key is the normalized grouping key: dimensions sorted largest
	// first, then thickness, then material. Orientation-invariant, so
	// 600×300 and 300×600 share a key.
	Key         string
	Parts       []Member
	Size        cutlist.Size // normalized, L ≥ W
	ThicknessMM float64
	MaterialID  string
	TotalQty    int
}

// Detector finds duplicate groups in a part snapshot.
type Detector interface {
	// Detect returns groups of two or more duplicate parts, in the
	// order their keys were first encountered. Rejected parts and
	// parts without dimensions never participate.
	Detect(parts []cutlist.Part) []Group
}

// Option configures a Detector.
type Option func(*detector)

// WithExcludedKeys suppresses groups whose key the caller has dismissed
// as "not duplicates". The exclusion set is caller state; the detector
// itself stays stateless across calls.
func WithExcludedKeys(keys ...string) Option {
	return func(d *detector) {
		for _, k := range keys {
			d.excluded[k] = true
		}
	}
}

// detector is the default Detector implementation.
type detector struct {
	excluded map[string]bool
}

// New creates a Detector with the given options.
func New(opts ...Option) Detector {
	d := &detector{excluded: make(map[string]bool)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Key builds the normalized grouping key for a part. The dimensions are
// sorted descending, so orientation does not affect the key; a square
// panel participates normally.
func Key(p cutlist.Part) string {
	long, short := p.Size.L, p.Size.W
	if short > long {
		long, short = short, long
	}
	return fmt.Sprintf("%gx%g|%g|%s", long, short, p.ThicknessMM, p.MaterialID)
}

// Detect groups parts by normalized key and returns only groups with at
// least two members, preserving first-encounter order.
func (d *detector) Detect(parts []cutlist.Part) []Group {
	byKey := make(map[string]*Group)
	order := make([]string, 0, len(parts))

	for i, p := range parts {
		if p.Rejected() || !p.HasDimensions() {
			continue
		}
		key := Key(p)
		if d.excluded[key] {
			continue
		}
		g, ok := byKey[key]
		if !ok {
			long, short := p.Size.L, p.Size.W
			if short > long {
				long, short = short, long
			}
			g = &Group{
				Key:         key,
				Size:        cutlist.Size{L: long, W: short},
				ThicknessMM: p.ThicknessMM,
				MaterialID:  p.MaterialID,
			}
			byKey[key] = g
			order = append(order, key)
		}
		g.Parts = append(g.Parts, Member{Part: p, Index: i})
		g.TotalQty += p.Qty
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		if g := byKey[key]; len(g.Parts) >= 2 {
			groups = append(groups, *g)
		}
	}
	return groups
}
