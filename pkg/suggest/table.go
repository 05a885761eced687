package suggest

import (
	"regexp"

	"github.com/panelworks/cutplan/internal/rules"
	"github.com/panelworks/cutplan/pkg/cutlist"
)

// rule is one entry in the curated name table.
type rule struct {
	patterns    []*regexp.Regexp
	name        string
	description string
	ops         OpsPatch
}

// nameRules is scanned top to bottom; within a rule, patterns are tried
// in listed order. Specific labels must stay above their generic
// fallbacks ("fixed shelf" above "shelf", the drawer parts above
// "back"/"side"/"front").
var nameRules = []rule{
	{
		patterns:    compile(`\bfixed\s+shelf\b`, `\bfxd\.?\s*shelf\b`),
		name:        "Fixed Shelf",
		description: "Front edge banded, dado grooves at both ends",
		ops: OpsPatch{
			Edging: map[cutlist.Side]bool{cutlist.SideL1: true},
			Grooves: []cutlist.Groove{
				{Kind: "DADO", WidthMM: 8, DepthMM: 4, Side: cutlist.SideW1},
				{Kind: "DADO", WidthMM: 8, DepthMM: 4, Side: cutlist.SideW2},
			},
		},
	},
	{
		patterns:    compile(`\bdrawer\s+front\b`),
		name:        "Drawer Front",
		description: "All four edges banded",
		ops: OpsPatch{
			Edging: map[cutlist.Side]bool{
				cutlist.SideL1: true, cutlist.SideL2: true,
				cutlist.SideW1: true, cutlist.SideW2: true,
			},
		},
	},
	{
		patterns:    compile(`\bdrawer\s+side\b`, `\bdrawer\s+runner\b`),
		name:        "Drawer Side",
		description: "Top edge banded, bottom groove for drawer base",
		ops: OpsPatch{
			Edging: map[cutlist.Side]bool{cutlist.SideL1: true},
			Grooves: []cutlist.Groove{
				{Kind: "DADO", WidthMM: 6, DepthMM: 6, Side: cutlist.SideL2, OffsetMM: 10},
			},
		},
	},
	{
		patterns:    compile(`\bdrawer\s+back\b`),
		name:        "Drawer Back",
		description: "Top edge banded",
		ops: OpsPatch{
			Edging: map[cutlist.Side]bool{cutlist.SideL1: true},
		},
	},
	{
		patterns:    compile(`\bdoor\b`, `\bflap\b`),
		name:        "Door",
		description: "All four edges banded",
		ops: OpsPatch{
			Edging: map[cutlist.Side]bool{
				cutlist.SideL1: true, cutlist.SideL2: true,
				cutlist.SideW1: true, cutlist.SideW2: true,
			},
		},
	},
	{
		patterns:    compile(`\bshelf\b`, `\bshelves\b`),
		name:        "Shelf",
		description: "Front edge banded",
		ops: OpsPatch{
			Edging: map[cutlist.Side]bool{cutlist.SideL1: true},
		},
	},
	{
		patterns:    compile(`\bback\s*(?:panel|board)?\b`),
		name:        "Back Panel",
		description: "No edge banding",
		ops: OpsPatch{
			Edging: map[cutlist.Side]bool{
				cutlist.SideL1: false, cutlist.SideL2: false,
				cutlist.SideW1: false, cutlist.SideW2: false,
			},
		},
	},
	{
		patterns:    compile(`\bside\s*(?:panel)?\b`, `\bgable\b`),
		name:        "Side Panel",
		description: "Front edge banded, back groove for back panel",
		ops: OpsPatch{
			Edging: map[cutlist.Side]bool{cutlist.SideL1: true},
			Grooves: []cutlist.Groove{
				{Kind: "DADO", WidthMM: 8, DepthMM: 4, Side: cutlist.SideL2, OffsetMM: 12},
			},
		},
	},
	{
		patterns:    compile(`\bkick\s*board\b`, `\btoe\s*kick\b`, `\bplinth\b`),
		name:        "Kick Board",
		description: "Front edge banded",
		ops: OpsPatch{
			Edging: map[cutlist.Side]bool{cutlist.SideL1: true},
		},
	},
	{
		patterns:    compile(`\bdivider\b`, `\bpartition\b`),
		name:        "Divider",
		description: "Front edge banded",
		ops: OpsPatch{
			Edging: map[cutlist.Side]bool{cutlist.SideL1: true},
		},
	},
	{
		patterns:    compile(`\bcounter\s*top\b`, `\bworktop\b`, `\bbench\s*top\b`),
		name:        "Countertop",
		description: "Front and both end edges banded",
		ops: OpsPatch{
			Edging: map[cutlist.Side]bool{
				cutlist.SideL1: true, cutlist.SideW1: true, cutlist.SideW2: true,
			},
		},
	},
	{
		patterns:    compile(`\brail\b`, `\bstretcher\b`),
		name:        "Rail",
		description: "No edge banding",
		ops: OpsPatch{
			Edging: map[cutlist.Side]bool{
				cutlist.SideL1: false, cutlist.SideL2: false,
				cutlist.SideW1: false, cutlist.SideW2: false,
			},
		},
	},
	{
		patterns:    compile(`\b(?:top|bottom)\s+panel\b`, `\bcabinet\s+(?:top|bottom)\b`),
		name:        "Top/Bottom Panel",
		description: "Front edge banded",
		ops: OpsPatch{
			Edging: map[cutlist.Side]bool{cutlist.SideL1: true},
		},
	},
}

// compile builds the case-insensitive pattern list for one rule.
func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, rules.MustCompile(p))
	}
	return out
}
