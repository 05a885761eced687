package cutlist

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/panelworks/cutplan/pkg/errors"
)

// File is the on-disk YAML shape of a part snapshot, as exported by the
// surrounding system for inspection.
type File struct {
	Parts []Part `json:"parts" yaml:"parts"`
}

// LoadFile reads a part snapshot from a YAML file.
func LoadFile(path string) ([]Part, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Parse(data)
}

// Parse decodes a part snapshot from YAML bytes.
func Parse(data []byte) ([]Part, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapIO("decode", "cutlist snapshot", err)
	}
	return file.Parts, nil
}
