package cutlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelworks/cutplan/pkg/errors"
)

func validPart() Part {
	return Part{
		ID:          "p1",
		Size:        Size{L: 600, W: 300},
		ThicknessMM: 18,
		Qty:         1,
	}
}

func TestPart_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Part)
		valid  bool
	}{
		{name: "valid part", mutate: func(*Part) {}, valid: true},
		{name: "missing id", mutate: func(p *Part) { p.ID = "" }},
		{name: "zero length", mutate: func(p *Part) { p.Size.L = 0 }},
		{name: "negative width", mutate: func(p *Part) { p.Size.W = -10 }},
		{name: "zero thickness", mutate: func(p *Part) { p.ThicknessMM = 0 }},
		{name: "zero qty", mutate: func(p *Part) { p.Qty = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPart()
			tt.mutate(&p)
			err := p.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrInvalidInput)
			}
		})
	}
}

func TestPart_Rejected(t *testing.T) {
	p := validPart()
	assert.False(t, p.Rejected())

	p.Status = StatusRejected
	assert.True(t, p.Rejected())
}

func TestPart_HasDimensions(t *testing.T) {
	p := validPart()
	assert.True(t, p.HasDimensions())

	p.Size.W = 0
	assert.False(t, p.HasDimensions())
}

func TestSize_String(t *testing.T) {
	assert.Equal(t, "600×300", Size{L: 600, W: 300}.String())
	assert.Equal(t, "601.5×300", Size{L: 601.5, W: 300}.String())
}
