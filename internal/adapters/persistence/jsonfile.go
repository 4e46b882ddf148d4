package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"pulpito/internal/domain/model"
)

// slotFilePermission keeps the roster file private to the owner.
const slotFilePermission = 0600

// JSONFile persists the roster as a JSON array of {name, date} objects
// in a single file, the same shape the backup and export collaborators
// speak.
type JSONFile struct {
	path string
}

// NewJSONFile creates a slot backed by the file at path.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the slot's file location.
func (j *JSONFile) Path() string { return j.path }

// Load reads and decodes the slot. A missing file yields an empty
// roster without error; malformed content is reported so the caller
// can log it and start empty.
func (j *JSONFile) Load(_ context.Context) (model.Roster, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Roster{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	var roster model.Roster
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return roster, nil
}

// Save writes the roster atomically: encode to a sibling temp file,
// then rename over the slot so readers never observe a torn write.
func (j *JSONFile) Save(_ context.Context, roster model.Roster) error {
	data, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	dir := filepath.Dir(j.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(j.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	if err := os.Chmod(tmpName, slotFilePermission); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	if err := os.Rename(tmpName, j.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}
