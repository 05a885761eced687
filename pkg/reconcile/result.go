package reconcile

import (
	"time"

	"github.com/agentstation/utc"

	"github.com/panelworks/cutplan/pkg/corrections"
	"github.com/panelworks/cutplan/pkg/cutlist"
	"github.com/panelworks/cutplan/pkg/duplicates"
	"github.com/panelworks/cutplan/pkg/projects"
	"github.com/panelworks/cutplan/pkg/suggest"
)

// Result is the derived view of one reconciliation pass. Everything in
// it is recomputed from the snapshot; nothing outlives the pass.
type Result struct {
	// Corrections per part ID, for human audit of upstream parsing.
	Corrections map[string][]corrections.Correction

	// Shortcodes per part ID: the compact rendering of each part's
	// operation set.
	Shortcodes map[string]string

	// Suggestions per part ID. Suggestions whose effect is already
	// present on the part are suppressed.
	Suggestions map[string]*suggest.Suggestion

	// Duplicates lists groups of physically identical parts.
	Duplicates []duplicates.Group

	// Projects lists multi-page projects awaiting a batch merge.
	Projects []projects.Group

	// Metadata about the pass.
	Metadata ResultMetadata
}

// ResultMetadata contains metadata about the reconciliation pass.
type ResultMetadata struct {
	StartTime utc.Time
	EndTime   utc.Time
	Duration  time.Duration
	Stats     ResultStatistics
}

// ResultStatistics contains statistics about the reconciliation pass.
type ResultStatistics struct {
	PartsProcessed      int
	PartsRejected       int
	CorrectionsDetected int
	DuplicateGroups     int
	UnmergedProjects    int
	SuggestionsOffered  int
}

// HasFindings reports whether the pass surfaced anything for review.
func (r *Result) HasFindings() bool {
	return len(r.Corrections) > 0 || len(r.Duplicates) > 0 ||
		len(r.Projects) > 0 || len(r.Suggestions) > 0
}

// resultBuilder accumulates a Result during one pass.
type resultBuilder struct {
	result *Result
}

func newResultBuilder() *resultBuilder {
	return &resultBuilder{
		result: &Result{
			Corrections: make(map[string][]corrections.Correction),
			Shortcodes:  make(map[string]string),
			Suggestions: make(map[string]*suggest.Suggestion),
			Metadata:    ResultMetadata{StartTime: utc.Now()},
		},
	}
}

func (b *resultBuilder) countPart(p cutlist.Part) {
	b.result.Metadata.Stats.PartsProcessed++
	if p.Rejected() {
		b.result.Metadata.Stats.PartsRejected++
	}
}

func (b *resultBuilder) addCorrections(partID string, cs []corrections.Correction) {
	b.result.Corrections[partID] = cs
	b.result.Metadata.Stats.CorrectionsDetected += len(cs)
}

func (b *resultBuilder) addShortcode(partID, code string) {
	b.result.Shortcodes[partID] = code
}

func (b *resultBuilder) addSuggestion(partID string, s *suggest.Suggestion) {
	b.result.Suggestions[partID] = s
	b.result.Metadata.Stats.SuggestionsOffered++
}

func (b *resultBuilder) setDuplicates(groups []duplicates.Group) {
	b.result.Duplicates = groups
	b.result.Metadata.Stats.DuplicateGroups = len(groups)
}

func (b *resultBuilder) setProjects(groups []projects.Group) {
	b.result.Projects = groups
	b.result.Metadata.Stats.UnmergedProjects = len(groups)
}

func (b *resultBuilder) build() *Result {
	b.result.Metadata.EndTime = utc.Now()
	b.result.Metadata.Duration = b.result.Metadata.EndTime.Sub(b.result.Metadata.StartTime)
	return b.result
}
