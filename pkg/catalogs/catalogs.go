// Package catalogs provides the read-only operation-type catalog: a
// mapping from operation-type code to display metadata, supplied to the
// reconciliation layer by the surrounding system. The catalog is safe
// for concurrent readers.
package catalogs

import (
	"maps"
	"os"
	"sort"
	"sync"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/panelworks/cutplan/pkg/errors"
)

// Category groups operation types by the component they belong to.
type Category string

// Operation categories.
const (
	CategoryEdging Category = "edging"
	CategoryGroove Category = "groove"
	CategoryHole   Category = "hole"
	CategoryCNC    Category = "cnc"
)

// OperationType is display metadata for one operation-type code.
type OperationType struct {
	Code        string   `json:"code" yaml:"code"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Category    Category `json:"category" yaml:"category"`
}

// DisplayName returns the name, falling back to a title-cased code.
// A Caser is stateful, so a fresh one is built per call to keep
// concurrent readers safe.
func (t *OperationType) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return cases.Title(language.English).String(t.Code)
}

// OperationTypes is a concurrent safe map of operation types.
type OperationTypes struct {
	mu    sync.RWMutex
	types map[string]*OperationType
}

// Option defines a function that configures an OperationTypes instance.
type Option func(*OperationTypes)

// WithMap initializes the catalog with existing operation types.
func WithMap(types map[string]*OperationType) Option {
	return func(c *OperationTypes) {
		if types != nil {
			c.types = make(map[string]*OperationType, len(types))
			maps.Copy(c.types, types)
		}
	}
}

// New creates a new operation-type catalog with optional configuration.
func New(opts ...Option) *OperationTypes {
	c := &OperationTypes{
		types: make(map[string]*OperationType),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns an operation type by code and whether it exists.
func (c *OperationTypes) Get(code string) (*OperationType, bool) {
	c.mu.RLock()
	t, ok := c.types[code]
	c.mu.RUnlock()
	return t, ok
}

// Set registers an operation type by code. Returns an error if the
// operation type is nil.
func (c *OperationTypes) Set(code string, t *OperationType) error {
	if t == nil {
		return errors.NewValidationError("operation_type", nil, "operation type cannot be nil")
	}
	c.mu.Lock()
	c.types[code] = t
	c.mu.Unlock()
	return nil
}

// List returns all operation types sorted by code.
func (c *OperationTypes) List() []*OperationType {
	c.mu.RLock()
	out := make([]*OperationType, 0, len(c.types))
	for _, t := range c.types {
		out = append(out, t)
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Len returns the number of operation types in the catalog.
func (c *OperationTypes) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.types)
}

// catalogFile is the on-disk YAML shape.
type catalogFile struct {
	OperationTypes []OperationType `yaml:"operation_types"`
}

// LoadFile reads an operation-type catalog from a YAML file.
func LoadFile(path string) (*OperationTypes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Parse(data)
}

// Parse decodes an operation-type catalog from YAML bytes.
func Parse(data []byte) (*OperationTypes, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapIO("decode", "operation type catalog", err)
	}
	c := New()
	for i := range file.OperationTypes {
		t := file.OperationTypes[i]
		if err := c.Set(t.Code, &t); err != nil {
			return nil, err
		}
	}
	return c, nil
}
