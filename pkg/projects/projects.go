// Package projects reconciles multi-page submissions that were ingested
// as independent batches sharing a project code. Merging collapses the
// per-part batch and page provenance into one logical batch; it never
// touches quantities or deduplicates parts, so it composes with the
// duplicates package (batch merge first, duplicate detection after).
package projects

import (
	"sort"

	"github.com/panelworks/cutplan/pkg/cutlist"
)

// Batch is one originating page or file of a multi-page submission.
type Batch struct {
	BatchID    string   `json:"batch_id"`
	PageNumber int      `json:"page_number,omitempty"`
	TotalPages int      `json:"total_pages,omitempty"`
	SourceFile string   `json:"source_file,omitempty"`
	PartIDs    []string `json:"part_ids"`
}

// Group is a project that still has two or more batches awaiting merge.
type Group struct {
	ProjectCode string  `json:"project_code"`
	Batches     []Batch `json:"batches"`
	TotalParts  int     `json:"total_parts"`
}

// MergePlan names the parts whose batch/page provenance is to be
// cleared once the user confirms the pages belong together. Applying
// the plan is the external store's responsibility.
type MergePlan struct {
	ProjectCode string   `json:"project_code"`
	PartIDs     []string `json:"part_ids"`
}

// IsNoop reports whether the plan has nothing to do, which is the case
// for an already-merged or unknown project.
func (p MergePlan) IsNoop() bool {
	return len(p.PartIDs) == 0
}

// Unmerged groups all parts carrying a non-empty project code by that
// code, reconstructs the originating batches, and returns the projects
// that still have at least two distinct batches. Projects appear in
// first-encounter order; batches are ordered by page number.
func Unmerged(parts []cutlist.Part) []Group {
	type projectAcc struct {
		batches    map[string]*Batch
		batchOrder []string
		total      int
	}
	byCode := make(map[string]*projectAcc)
	order := make([]string, 0)

	for _, p := range parts {
		if p.ProjectCode == "" || p.BatchID == "" {
			continue
		}
		acc, ok := byCode[p.ProjectCode]
		if !ok {
			acc = &projectAcc{batches: make(map[string]*Batch)}
			byCode[p.ProjectCode] = acc
			order = append(order, p.ProjectCode)
		}
		b, ok := acc.batches[p.BatchID]
		if !ok {
			b = &Batch{
				BatchID:    p.BatchID,
				PageNumber: p.PageNumber,
				TotalPages: p.TotalPages,
				SourceFile: p.SourceFile,
			}
			acc.batches[p.BatchID] = b
			acc.batchOrder = append(acc.batchOrder, p.BatchID)
		}
		b.PartIDs = append(b.PartIDs, p.ID)
		acc.total++
	}

	groups := make([]Group, 0, len(order))
	for _, code := range order {
		acc := byCode[code]
		if len(acc.batches) < 2 {
			continue
		}
		g := Group{ProjectCode: code, TotalParts: acc.total}
		for _, id := range acc.batchOrder {
			g.Batches = append(g.Batches, *acc.batches[id])
		}
		sort.SliceStable(g.Batches, func(i, j int) bool {
			return g.Batches[i].PageNumber < g.Batches[j].PageNumber
		})
		groups = append(groups, g)
	}
	return groups
}

// Plan computes the provenance-collapsing merge for one project code.
// Merging an already-merged project is a no-op: the plan simply lists
// zero parts.
func Plan(projectCode string, parts []cutlist.Part) MergePlan {
	plan := MergePlan{ProjectCode: projectCode}
	for _, g := range Unmerged(parts) {
		if g.ProjectCode != projectCode {
			continue
		}
		for _, b := range g.Batches {
			plan.PartIDs = append(plan.PartIDs, b.PartIDs...)
		}
	}
	return plan
}

// Apply returns a copy of the snapshot with the plan's batch and page
// provenance cleared. This mirrors what the external store performs;
// it is provided for callers that hold the snapshot themselves.
func Apply(parts []cutlist.Part, plan MergePlan) []cutlist.Part {
	planned := make(map[string]bool, len(plan.PartIDs))
	for _, id := range plan.PartIDs {
		planned[id] = true
	}
	out := make([]cutlist.Part, len(parts))
	for i, p := range parts {
		if planned[p.ID] {
			p.BatchID = ""
			p.PageNumber = 0
			p.TotalPages = 0
		}
		out[i] = p
	}
	return out
}
