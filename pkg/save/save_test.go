package save

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelworks/cutplan/pkg/cutlist"
	"github.com/panelworks/cutplan/pkg/errors"
)

func sampleParts() []cutlist.Part {
	return []cutlist.Part{
		{ID: "p1", Label: "Shelf", Size: cutlist.Size{L: 600, W: 300}, ThicknessMM: 18, Qty: 2, MaterialID: "W"},
	}
}

func TestCutlist_Writer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Cutlist(sampleParts(), WithWriter(&buf)))

	parts, err := cutlist.Parse(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "p1", parts[0].ID)
	assert.Equal(t, 2, parts[0].Qty)
}

func TestCutlist_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Cutlist(sampleParts(), WithWriter(&buf), WithFormat(FormatJSON)))
	assert.Contains(t, buf.String(), `"parts"`)
	assert.Contains(t, buf.String(), `"thickness_mm": 18`)
}

func TestCutlist_Path(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Cutlist(sampleParts(), WithPath(path)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	parts, err := cutlist.Parse(data)
	require.NoError(t, err)
	assert.Len(t, parts, 1)
}

func TestCutlist_NoDestination(t *testing.T) {
	err := Cutlist(sampleParts())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.True(t, FormatYAML.IsValid())
	assert.False(t, Format(99).IsValid())
	assert.Equal(t, "unknown", Format(99).String())
}
