// Package save writes part snapshots back to disk or to a writer, in
// YAML or JSON. It is the output half of pkg/cutlist's loader and is
// used after merge plans have been applied to a snapshot.
package save

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/panelworks/cutplan/pkg/cutlist"
	"github.com/panelworks/cutplan/pkg/errors"
)

// Cutlist writes the parts as a snapshot file. A path option writes to
// the filesystem, a writer option streams; at least one is required.
func Cutlist(parts []cutlist.Part, opts ...Option) error {
	options := Defaults().Apply(opts...)

	if !options.Format().IsValid() {
		return errors.NewValidationError("format", options.Format(), "unknown save format")
	}

	file := cutlist.File{Parts: parts}
	var data []byte
	var err error
	switch options.Format() {
	case FormatJSON:
		data, err = json.MarshalIndent(file, "", "  ")
	default:
		data, err = yaml.Marshal(file)
	}
	if err != nil {
		return errors.WrapIO("encode", "cutlist snapshot", err)
	}

	if w := options.Writer(); w != nil {
		if _, err := w.Write(data); err != nil {
			return errors.WrapIO("write", "cutlist snapshot", err)
		}
		return nil
	}

	path := options.Path()
	if path == "" {
		return errors.NewValidationError("path", path, "either a path or a writer is required")
	}
	if err := writeFileAtomic(path, data); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// writeFileAtomic writes via a temp file and rename so a failed save
// never truncates an existing snapshot. The temp file lives next to the
// target so the rename stays on one filesystem.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cutplan-save-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
