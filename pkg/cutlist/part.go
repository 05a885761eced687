package cutlist

import (
	"fmt"

	"github.com/agentstation/utc"

	"github.com/panelworks/cutplan/pkg/errors"
)

// Status is the review state of a part within a session.
type Status string

// Part review states.
const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Size holds the face dimensions of a rectangular panel in millimeters.
// L is conventionally the longer dimension, but upstream extraction does
// not guarantee it.
type Size struct {
	L float64 `json:"l" yaml:"l"`
	W float64 `json:"w" yaml:"w"`
}

// String renders the size as "L×W" with millimeter precision.
func (s Size) String() string {
	return fmt.Sprintf("%g×%g", s.L, s.W)
}

// Part is one rectangular panel entry in a cut list.
type Part struct {
	// Core identity
	ID    string `json:"id" yaml:"id"`                             // Unique part identifier, stable until a merge collapses it
	Label string `json:"label,omitempty" yaml:"label,omitempty"`   // Free-text name, e.g. "Fixed Shelf"

	// Geometry and material
	Size        Size    `json:"size" yaml:"size"`
	ThicknessMM float64 `json:"thickness_mm" yaml:"thickness_mm"`
	Qty         int     `json:"qty" yaml:"qty"`
	MaterialID  string  `json:"material_id,omitempty" yaml:"material_id,omitempty"`

	// Manufacturing operations
	Ops OperationSet `json:"ops,omitempty" yaml:"ops,omitempty"`

	// SourceText is the raw source snippet this part was extracted from.
	// It is used only for correction diffing and is never canonical data.
	SourceText string `json:"source_text,omitempty" yaml:"source_text,omitempty"`

	// Status is the review state; rejected parts are excluded from
	// duplicate, merge, and suggestion consideration.
	Status Status `json:"status,omitempty" yaml:"status,omitempty"`

	// Multi-page provenance
	ProjectCode string `json:"project_code,omitempty" yaml:"project_code,omitempty"`
	BatchID     string `json:"batch_id,omitempty" yaml:"batch_id,omitempty"`
	PageNumber  int    `json:"page_number,omitempty" yaml:"page_number,omitempty"`
	TotalPages  int    `json:"total_pages,omitempty" yaml:"total_pages,omitempty"`
	SourceFile  string `json:"source_file,omitempty" yaml:"source_file,omitempty"`

	// Timestamps for record keeping and auditing
	CreatedAt utc.Time `json:"created_at,omitzero" yaml:"created_at,omitempty"`
	UpdatedAt utc.Time `json:"updated_at,omitzero" yaml:"updated_at,omitempty"`
}

// HasDimensions reports whether both face dimensions are positive.
func (p *Part) HasDimensions() bool {
	return p.Size.L > 0 && p.Size.W > 0
}

// Rejected reports whether the part has been rejected by review.
func (p *Part) Rejected() bool {
	return p.Status == StatusRejected
}

// Validate checks the part invariants: positive dimensions and qty ≥ 1.
func (p *Part) Validate() error {
	if p.ID == "" {
		return errors.NewValidationError("id", p.ID, "part ID must not be empty")
	}
	if p.Size.L <= 0 {
		return errors.NewValidationError("size.l", p.Size.L, "length must be positive")
	}
	if p.Size.W <= 0 {
		return errors.NewValidationError("size.w", p.Size.W, "width must be positive")
	}
	if p.ThicknessMM <= 0 {
		return errors.NewValidationError("thickness_mm", p.ThicknessMM, "thickness must be positive")
	}
	if p.Qty < 1 {
		return errors.NewValidationError("qty", p.Qty, "quantity must be at least 1")
	}
	return nil
}
