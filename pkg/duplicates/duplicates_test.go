package duplicates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelworks/cutplan/pkg/cutlist"
	"github.com/panelworks/cutplan/pkg/errors"
)

func part(id string, l, w, thickness float64, material string, qty int) cutlist.Part {
	return cutlist.Part{
		ID:          id,
		Size:        cutlist.Size{L: l, W: w},
		ThicknessMM: thickness,
		MaterialID:  material,
		Qty:         qty,
	}
}

func TestDetect_OrientationInvariant(t *testing.T) {
	parts := []cutlist.Part{
		part("a", 600, 300, 18, "W", 2),
		part("b", 300, 600, 18, "W", 3),
	}

	groups := New().Detect(parts)
	require.Len(t, groups, 1)
	assert.Equal(t, 5, groups[0].TotalQty)
	assert.Equal(t, cutlist.Size{L: 600, W: 300}, groups[0].Size)
	assert.Len(t, groups[0].Parts, 2)
}

func TestDetect_SingletonsNeverGroup(t *testing.T) {
	parts := []cutlist.Part{
		part("a", 600, 300, 18, "W", 1),
		part("b", 600, 300, 16, "W", 1),  // different thickness
		part("c", 600, 300, 18, "MDF", 1), // different material
		part("d", 720, 300, 18, "W", 1),   // different size
	}

	assert.Empty(t, New().Detect(parts))
}

func TestDetect_RejectedExcluded(t *testing.T) {
	rejected := part("a", 600, 300, 18, "W", 2)
	rejected.Status = cutlist.StatusRejected
	parts := []cutlist.Part{
		rejected,
		part("b", 600, 300, 18, "W", 2),
	}

	assert.Empty(t, New().Detect(parts))
}

func TestDetect_MissingDimensionsExcluded(t *testing.T) {
	parts := []cutlist.Part{
		part("a", 0, 300, 18, "W", 2),
		part("b", 0, 300, 18, "W", 2),
	}

	assert.Empty(t, New().Detect(parts))
}

func TestDetect_SquareParticipates(t *testing.T) {
	parts := []cutlist.Part{
		part("a", 400, 400, 18, "W", 1),
		part("b", 400, 400, 18, "W", 4),
	}

	groups := New().Detect(parts)
	require.Len(t, groups, 1)
	assert.Equal(t, 5, groups[0].TotalQty)
}

func TestDetect_InsertionOrder(t *testing.T) {
	parts := []cutlist.Part{
		part("a", 600, 300, 18, "W", 1),
		part("b", 720, 560, 18, "W", 1),
		part("c", 600, 300, 18, "W", 1),
		part("d", 720, 560, 18, "W", 1),
	}

	groups := New().Detect(parts)
	require.Len(t, groups, 2)
	// Groups come back in the order their keys were first encountered.
	assert.Equal(t, "a", groups[0].Parts[0].Part.ID)
	assert.Equal(t, "b", groups[1].Parts[0].Part.ID)
}

func TestDetect_ExcludedKeysSuppressed(t *testing.T) {
	parts := []cutlist.Part{
		part("a", 600, 300, 18, "W", 1),
		part("b", 600, 300, 18, "W", 1),
	}

	key := Key(parts[0])
	assert.Empty(t, New(WithExcludedKeys(key)).Detect(parts))
	assert.Len(t, New().Detect(parts), 1, "detector without exclusions is unaffected")
}

func TestPlan(t *testing.T) {
	parts := []cutlist.Part{
		part("a", 600, 300, 18, "W", 2),
		part("b", 300, 600, 18, "W", 3),
	}
	groups := New().Detect(parts)
	require.Len(t, groups, 1)

	plan, err := groups[0].Plan("a")
	require.NoError(t, err)
	assert.Equal(t, "a", plan.SurvivorID)
	assert.Equal(t, []string{"b"}, plan.RemoveIDs)
	assert.Equal(t, 5, plan.NewQty)
}

func TestPlan_SurvivorMustBeMember(t *testing.T) {
	parts := []cutlist.Part{
		part("a", 600, 300, 18, "W", 2),
		part("b", 600, 300, 18, "W", 3),
	}
	groups := New().Detect(parts)
	require.Len(t, groups, 1)

	_, err := groups[0].Plan("z")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestValidate_SumInvariant(t *testing.T) {
	parts := []cutlist.Part{
		part("a", 600, 300, 18, "W", 2),
		part("b", 600, 300, 18, "W", 3),
	}

	good := MergePlan{SurvivorID: "a", RemoveIDs: []string{"b"}, NewQty: 5}
	assert.NoError(t, good.Validate(parts))

	bad := MergePlan{SurvivorID: "a", RemoveIDs: []string{"b"}, NewQty: 4}
	err := bad.Validate(parts)
	assert.ErrorIs(t, err, errors.ErrInvalidMergePlan)

	missing := MergePlan{SurvivorID: "a", RemoveIDs: []string{"ghost"}, NewQty: 5}
	assert.ErrorIs(t, missing.Validate(parts), errors.ErrNotFound)
}

func TestMergeIdempotence(t *testing.T) {
	parts := []cutlist.Part{
		part("a", 600, 300, 18, "W", 2),
		part("b", 300, 600, 18, "W", 3),
	}
	groups := New().Detect(parts)
	require.Len(t, groups, 1)

	plan, err := groups[0].Plan("a")
	require.NoError(t, err)
	require.NoError(t, plan.Validate(parts))

	// Apply the plan the way the external store would.
	merged := []cutlist.Part{parts[0]}
	merged[0].Qty = plan.NewQty

	assert.Empty(t, New().Detect(merged), "merged snapshot has no group for the key")
}

func TestMergePlan_Apply(t *testing.T) {
	parts := []cutlist.Part{
		part("a", 600, 300, 18, "W", 2),
		part("unrelated", 720, 400, 18, "MDF", 1),
		part("b", 300, 600, 18, "W", 3),
	}
	groups := New().Detect(parts)
	require.Len(t, groups, 1)

	plan, err := groups[0].Plan("a")
	require.NoError(t, err)
	require.NoError(t, plan.Validate(parts))

	merged := plan.Apply(parts)
	require.Len(t, merged, 2)
	assert.Equal(t, "a", merged[0].ID)
	assert.Equal(t, 5, merged[0].Qty)
	assert.Equal(t, "unrelated", merged[1].ID)

	// Original snapshot untouched.
	assert.Equal(t, 2, parts[0].Qty)
	assert.Len(t, parts, 3)

	assert.Empty(t, New().Detect(merged))
}
