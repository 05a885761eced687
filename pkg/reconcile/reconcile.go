// Package reconcile orchestrates the full reconciliation pass over one
// part snapshot: correction annotation, duplicate grouping, unmerged
// project detection, and name-based operation suggestions. The pass is
// stateless and deterministic for a fixed snapshot, so it is safe to
// run on every render or poll; all outputs are derived values the
// caller acts upon, never mutations.
package reconcile

import (
	"context"

	"github.com/panelworks/cutplan/pkg/corrections"
	"github.com/panelworks/cutplan/pkg/cutlist"
	"github.com/panelworks/cutplan/pkg/duplicates"
	"github.com/panelworks/cutplan/pkg/logging"
	"github.com/panelworks/cutplan/pkg/projects"
	"github.com/panelworks/cutplan/pkg/shortcode"
	"github.com/panelworks/cutplan/pkg/suggest"
)

// Reconciler runs the reconciliation pass over part snapshots.
type Reconciler interface {
	// Snapshot computes the full derived view for one part snapshot.
	// It is total over its input: missing source text, unmatched
	// patterns, or an empty snapshot yield empty results, not errors.
	Snapshot(ctx context.Context, parts []cutlist.Part) *Result
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	detector      corrections.Detector
	duplicateOpts []duplicates.Option
}

// Option configures a Reconciler.
type Option func(*reconciler)

// WithDetector replaces the default correction detector.
func WithDetector(d corrections.Detector) Option {
	return func(r *reconciler) {
		r.detector = d
	}
}

// WithDuplicateOptions forwards options to the duplicate detector, such
// as the caller's dismissed-group exclusion set.
func WithDuplicateOptions(opts ...duplicates.Option) Option {
	return func(r *reconciler) {
		r.duplicateOpts = append(r.duplicateOpts, opts...)
	}
}

// New creates a Reconciler with options.
func New(opts ...Option) Reconciler {
	r := &reconciler{
		detector: corrections.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Snapshot computes the derived view for one snapshot.
func (r *reconciler) Snapshot(ctx context.Context, parts []cutlist.Part) *Result {
	log := logging.FromContext(ctx)
	builder := newResultBuilder()

	for _, p := range parts {
		builder.countPart(p)

		if cs := r.detector.Detect(p); len(cs) > 0 {
			builder.addCorrections(p.ID, cs)
		}

		if code := shortcode.Encode(p.Ops); code != "" {
			builder.addShortcode(p.ID, code)
		}

		if p.Rejected() {
			continue
		}
		if s := suggest.ForLabel(p.Label); s != nil && !suggest.OperationsMatch(p.Ops, s.Ops) {
			builder.addSuggestion(p.ID, s)
		}
	}

	builder.setDuplicates(duplicates.New(r.duplicateOpts...).Detect(parts))
	builder.setProjects(projects.Unmerged(parts))

	result := builder.build()
	log.Debug().
		Int("parts", result.Metadata.Stats.PartsProcessed).
		Int("corrections", result.Metadata.Stats.CorrectionsDetected).
		Int("duplicate_groups", result.Metadata.Stats.DuplicateGroups).
		Int("unmerged_projects", result.Metadata.Stats.UnmergedProjects).
		Int("suggestions", result.Metadata.Stats.SuggestionsOffered).
		Msg("reconciliation pass complete")
	return result
}
