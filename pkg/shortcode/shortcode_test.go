package shortcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelworks/cutplan/pkg/cutlist"
)

func TestEncodeEdging(t *testing.T) {
	tests := []struct {
		name   string
		sides  cutlist.EdgingSides
		bandID string
		want   string
	}{
		{
			name:  "all four sides",
			sides: cutlist.EdgingSides{L1: true, L2: true, W1: true, W2: true},
			want:  "EB:4S",
		},
		{
			name:  "both long edges",
			sides: cutlist.EdgingSides{L1: true, L2: true},
			want:  "EB:2L",
		},
		{
			name:  "both short edges",
			sides: cutlist.EdgingSides{W1: true, W2: true},
			want:  "EB:2W",
		},
		{
			name:  "single side",
			sides: cutlist.EdgingSides{L1: true},
			want:  "EB:L1",
		},
		{
			name:  "asymmetric set sorts side codes",
			sides: cutlist.EdgingSides{W1: true, L1: true},
			want:  "EB:L1W1",
		},
		{
			name:  "three sides",
			sides: cutlist.EdgingSides{L1: true, W1: true, W2: true},
			want:  "EB:L1W1W2",
		},
		{
			name:   "band id included",
			sides:  cutlist.EdgingSides{L1: true, L2: true, W1: true, W2: true},
			bandID: "W",
			want:   "EB:W:4S",
		},
		{
			name:  "no sides yields no token",
			sides: cutlist.EdgingSides{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeEdging(tt.sides, tt.bandID))
		})
	}
}

func TestEncode_ComponentOrder(t *testing.T) {
	ops := cutlist.OperationSet{
		Edging: cutlist.EdgingSides{L1: true, L2: true, W1: true, W2: true},
		Grooves: []cutlist.Groove{
			{Kind: "DADO", WidthMM: 8, DepthMM: 4, Side: cutlist.SideW1},
		},
		Holes: []cutlist.Hole{
			{Pattern: "SYS32", Anchor: "left"},
		},
		CNC: []cutlist.CNCOp{
			{Program: "POCKET1"},
		},
	}

	assert.Equal(t, "EB:4S GR:DADO:8x4@W1 H:SYS32@left CNC:POCKET1", Encode(ops))
}

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "", Encode(cutlist.OperationSet{}))
}

func TestEncode_Deterministic(t *testing.T) {
	ops := cutlist.OperationSet{
		Edging: cutlist.EdgingSides{L2: true, W2: true},
		Grooves: []cutlist.Groove{
			{Kind: "DADO", WidthMM: 6, DepthMM: 6, Side: cutlist.SideL2, OffsetMM: 10},
			{Kind: "RABBET", WidthMM: 12, DepthMM: 6, Side: cutlist.SideW1},
		},
	}

	first := Encode(ops)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Encode(ops))
	}
	assert.Equal(t, "EB:L2W2 GR:DADO:6x6@L2+10 GR:RABBET:12x6@W1", first)
}

func TestSideSet(t *testing.T) {
	sides, ok := SideSet("4S")
	require.True(t, ok)
	assert.Equal(t, cutlist.EdgingSides{L1: true, L2: true, W1: true, W2: true}, sides)

	sides, ok = SideSet("2l")
	require.True(t, ok)
	assert.Equal(t, cutlist.EdgingSides{L1: true, L2: true}, sides)

	sides, ok = SideSet(" l1w1 ")
	require.True(t, ok)
	assert.Equal(t, cutlist.EdgingSides{L1: true, W1: true}, sides)

	_, ok = SideSet("5S")
	assert.False(t, ok, "unknown codes are not recognized")
}

func TestSidesCode_RoundTripsThroughSideSet(t *testing.T) {
	combos := []cutlist.EdgingSides{
		{L1: true},
		{L1: true, W2: true},
		{L1: true, L2: true},
		{W1: true, W2: true},
		{L1: true, L2: true, W1: true, W2: true},
	}
	for _, sides := range combos {
		code := SidesCode(sides)
		got, ok := SideSet(code)
		require.True(t, ok, "code %q should be recognized", code)
		assert.Equal(t, sides, got)
	}
}
