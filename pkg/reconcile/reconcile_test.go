package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelworks/cutplan/pkg/cutlist"
	"github.com/panelworks/cutplan/pkg/duplicates"
	"github.com/panelworks/cutplan/pkg/logging"
)

func snapshot() []cutlist.Part {
	return []cutlist.Part{
		{
			ID:          "p1",
			Label:       "Shelf",
			SourceText:  "shelf 300 x 600 white",
			Size:        cutlist.Size{L: 600, W: 300},
			ThicknessMM: 18,
			MaterialID:  "W",
			Qty:         2,
		},
		{
			ID:          "p2",
			Label:       "Shelf",
			Size:        cutlist.Size{L: 300, W: 600},
			ThicknessMM: 18,
			MaterialID:  "W",
			Qty:         1,
		},
		{
			ID:          "p3",
			Label:       "Back Panel",
			Size:        cutlist.Size{L: 1200, W: 600},
			ThicknessMM: 6,
			MaterialID:  "W",
			Qty:         1,
			ProjectCode: "K-102",
			BatchID:     "b1",
			PageNumber:  1,
		},
		{
			ID:          "p4",
			Label:       "Kick Board",
			Size:        cutlist.Size{L: 900, W: 120},
			ThicknessMM: 18,
			MaterialID:  "W",
			Qty:         1,
			ProjectCode: "K-102",
			BatchID:     "b2",
			PageNumber:  2,
		},
	}
}

func TestSnapshot(t *testing.T) {
	logging.DisableLoggingForTest(t)
	r := New()

	result := r.Snapshot(context.Background(), snapshot())
	require.NotNil(t, result)

	// p1 carries source text with a swapped dimension pair and a
	// material alias.
	require.Contains(t, result.Corrections, "p1")
	assert.NotContains(t, result.Corrections, "p2", "no source text, no corrections")

	// p1/p2 are the same physical panel in different orientations.
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, 3, result.Duplicates[0].TotalQty)

	// K-102 still has two batches.
	require.Len(t, result.Projects, 1)
	assert.Equal(t, "K-102", result.Projects[0].ProjectCode)

	// Every labeled part gets a suggestion; none has the suggested ops
	// yet except p3, whose rule asks for no edging on a part that has
	// none.
	assert.Contains(t, result.Suggestions, "p1")
	assert.Contains(t, result.Suggestions, "p2")
	assert.NotContains(t, result.Suggestions, "p3", "suggestion already satisfied is suppressed")

	stats := result.Metadata.Stats
	assert.Equal(t, 4, stats.PartsProcessed)
	assert.Equal(t, 0, stats.PartsRejected)
	assert.Equal(t, 1, stats.DuplicateGroups)
	assert.Equal(t, 1, stats.UnmergedProjects)
	assert.False(t, result.Metadata.EndTime.Before(result.Metadata.StartTime))
}

func TestSnapshot_RejectedPartsSkipSuggestions(t *testing.T) {
	logging.DisableLoggingForTest(t)
	parts := snapshot()
	parts[0].Status = cutlist.StatusRejected

	result := New().Snapshot(context.Background(), parts)
	assert.NotContains(t, result.Suggestions, "p1")
	assert.Equal(t, 1, result.Metadata.Stats.PartsRejected)
	assert.Empty(t, result.Duplicates, "rejected part breaks the p1/p2 pair")
}

func TestSnapshot_Deterministic(t *testing.T) {
	logging.DisableLoggingForTest(t)
	r := New()
	parts := snapshot()

	first := r.Snapshot(context.Background(), parts)
	second := r.Snapshot(context.Background(), parts)

	assert.Equal(t, first.Corrections, second.Corrections)
	assert.Equal(t, first.Duplicates, second.Duplicates)
	assert.Equal(t, first.Projects, second.Projects)
	assert.Equal(t, first.Suggestions, second.Suggestions)
	assert.Equal(t, first.Shortcodes, second.Shortcodes)
}

func TestSnapshot_EmptyInput(t *testing.T) {
	logging.DisableLoggingForTest(t)
	result := New().Snapshot(context.Background(), nil)
	require.NotNil(t, result)
	assert.False(t, result.HasFindings())
}

func TestSnapshot_DuplicateOptionsForwarded(t *testing.T) {
	logging.DisableLoggingForTest(t)
	parts := snapshot()
	key := duplicates.Key(parts[0])

	r := New(WithDuplicateOptions(duplicates.WithExcludedKeys(key)))
	result := r.Snapshot(context.Background(), parts)
	assert.Empty(t, result.Duplicates)
}

func TestSnapshot_Shortcodes(t *testing.T) {
	logging.DisableLoggingForTest(t)
	parts := []cutlist.Part{
		{
			ID:          "p1",
			Size:        cutlist.Size{L: 600, W: 300},
			ThicknessMM: 18,
			Qty:         1,
			Ops: cutlist.OperationSet{
				Edging: cutlist.EdgingSides{L1: true, L2: true},
			},
		},
		{
			ID:          "p2",
			Size:        cutlist.Size{L: 600, W: 300},
			ThicknessMM: 16,
			Qty:         1,
		},
	}

	result := New().Snapshot(context.Background(), parts)
	assert.Equal(t, "EB:2L", result.Shortcodes["p1"])
	assert.NotContains(t, result.Shortcodes, "p2", "zero operation sets render nothing")
}
