package duplicates

import (
	"fmt"

	"github.com/panelworks/cutplan/pkg/cutlist"
	"github.com/panelworks/cutplan/pkg/errors"
)

// MergePlan is the intended outcome of collapsing a duplicate group:
// the surviving part keeps the summed quantity and the remaining parts
// are removed. The plan is a result value; applying it is the external
// store's responsibility.
type MergePlan struct {
	Key        string   `json:"key"`
	SurvivorID string   `json:"survivor_id"`
	RemoveIDs  []string `json:"remove_ids"`
	NewQty     int      `json:"new_qty"`
}

// Plan nominates one member of the group as the survivor and computes
// the merge outcome. The survivor must be a member of the group.
func (g Group) Plan(survivorID string) (MergePlan, error) {
	plan := MergePlan{Key: g.Key, SurvivorID: survivorID}
	found := false
	for _, m := range g.Parts {
		if m.Part.ID == survivorID {
			found = true
			continue
		}
		plan.RemoveIDs = append(plan.RemoveIDs, m.Part.ID)
	}
	if !found {
		return MergePlan{}, errors.NewNotFoundError("part", survivorID)
	}
	plan.NewQty = g.TotalQty
	return plan, nil
}

// Validate checks the plan against a part snapshot before the store
// applies it: every referenced part must exist and NewQty must equal
// the quantity sum across the survivor and all removed parts.
func (p MergePlan) Validate(parts []cutlist.Part) error {
	byID := make(map[string]cutlist.Part, len(parts))
	for _, part := range parts {
		byID[part.ID] = part
	}

	survivor, ok := byID[p.SurvivorID]
	if !ok {
		return errors.NewNotFoundError("part", p.SurvivorID)
	}
	sum := survivor.Qty
	for _, id := range p.RemoveIDs {
		part, ok := byID[id]
		if !ok {
			return errors.NewNotFoundError("part", id)
		}
		sum += part.Qty
	}

	if p.NewQty != sum {
		return errors.NewMergePlanError(p.SurvivorID,
			fmt.Sprintf("new quantity %d does not equal group sum %d", p.NewQty, sum))
	}
	return nil
}

// Apply returns a copy of the snapshot with the plan carried out: the
// survivor holds the summed quantity and the removed parts are gone.
// This mirrors what the external store performs; it is provided for
// callers that hold the snapshot themselves. The plan should be
// validated against the same snapshot first.
func (p MergePlan) Apply(parts []cutlist.Part) []cutlist.Part {
	removed := make(map[string]bool, len(p.RemoveIDs))
	for _, id := range p.RemoveIDs {
		removed[id] = true
	}
	out := make([]cutlist.Part, 0, len(parts))
	for _, part := range parts {
		if removed[part.ID] {
			continue
		}
		if part.ID == p.SurvivorID {
			part.Qty = p.NewQty
		}
		out = append(out, part)
	}
	return out
}
