package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelworks/cutplan/pkg/corrections"
	"github.com/panelworks/cutplan/pkg/reconcile"
	"github.com/panelworks/cutplan/pkg/suggest"
)

func TestCorrectionData_SortedByPartID(t *testing.T) {
	result := &reconcile.Result{
		Corrections: map[string][]corrections.Correction{
			"p9": {{Field: "size", Original: "300×600", Normalized: "600×300", Type: corrections.TypeSwap}},
			"p1": {{Field: "qty", Original: "(not specified)", Normalized: "1", Type: corrections.TypeInfer}},
			"p5": {{Field: "material", Original: "white", Normalized: "W", Type: corrections.TypeNormalize}},
		},
	}

	for i := 0; i < 10; i++ {
		data := correctionData(result)
		require.Len(t, data.Rows, 3)
		assert.Equal(t, "p1", data.Rows[0][0])
		assert.Equal(t, "p5", data.Rows[1][0])
		assert.Equal(t, "p9", data.Rows[2][0])
	}
}

func TestSuggestionData_SortedByPartID(t *testing.T) {
	result := &reconcile.Result{
		Suggestions: map[string]*suggest.Suggestion{
			"p2": {Name: "Shelf", Confidence: suggest.Confidence},
			"p1": {Name: "Door", Confidence: suggest.Confidence},
		},
	}

	for i := 0; i < 10; i++ {
		data := suggestionData(result)
		require.Len(t, data.Rows, 2)
		assert.Equal(t, "p1", data.Rows[0][0])
		assert.Equal(t, "Door", data.Rows[0][1])
		assert.Equal(t, "p2", data.Rows[1][0])
	}
}
