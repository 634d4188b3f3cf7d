// Package jsonfile persists each collection as one human-readable JSON
// document, rewritten in full on every save. No file locking is done;
// concurrent multi-process access is unsupported.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/records"
)

// readDoc decodes the document at path into v. A missing file maps to
// records.ErrNoData, undecodable content to records.ErrBadData.
func readDoc(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return records.ErrNoData
		}
		return errors.Wrapf(err, "reading %s", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(records.ErrBadData, "decoding %s: %v", path, err)
	}
	return nil
}

// writeDoc rewrites the whole document at path, creating the parent directory
// if needed. Indentation matches the historical on-disk format.
func writeDoc(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
