// Package highscore keeps the score of the current run and the best score
// ever reached, and persists the best score as a small binary record.
//
// File layout (little-endian):
//
//	int32 version   // currently 1
//	int32 score     // present only when version == 1
//
// A missing, short or unknown-version file leaves the score at zero.
package highscore

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileVersion is the only record version this package reads and writes.
const FileVersion int32 = 1

// DefaultFileName is used when no path is configured.
const DefaultFileName = "spaceinvaders.hscore"

// Highscore tracks the running score and the best finished score.
type Highscore struct {
	path    string
	current int
	best    int
	last    int
}

// New creates a Highscore persisted at path. An empty path means
// DefaultFileName in the working directory.
func New(path string) *Highscore {
	if path == "" {
		path = DefaultFileName
	}
	return &Highscore{path: path}
}

// Path returns the file the record is stored in.
func (h *Highscore) Path() string {
	return h.path
}

// AddScore adds a point to the current run.
func (h *Highscore) AddScore() {
	h.current++
}

// FinishScore ends the current run: the best score absorbs it and the
// current score starts again from zero. Does not touch the disk.
func (h *Highscore) FinishScore() {
	if h.current > h.best {
		h.best = h.current
	}
	h.last = h.current
	h.current = 0
}

// CurrentScore returns the score of the run in progress.
func (h *Highscore) CurrentScore() int {
	return h.current
}

// Highscore returns the best finished score.
func (h *Highscore) Highscore() int {
	return h.best
}

// LastScore returns the score of the most recently finished run.
func (h *Highscore) LastScore() int {
	return h.last
}

// WriteToDisk stores max(current, best). The record is written to a
// temporary file and renamed into place, so readers never see a torn file.
func (h *Highscore) WriteToDisk() error {
	score := max(h.current, h.best)

	var buf bytes.Buffer
	//nolint:errcheck // writes to bytes.Buffer cannot fail
	binary.Write(&buf, binary.LittleEndian, FileVersion)
	//nolint:errcheck // writes to bytes.Buffer cannot fail
	binary.Write(&buf, binary.LittleEndian, int32(score)) //#nosec G115 -- scores are far below 2^31

	dir := filepath.Dir(h.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".hscore-*")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: cannot write %s: %w", h.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", h.path, err)
	}
	if err := os.Rename(tmp.Name(), h.path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", h.path, err)
	}
	return nil
}

// ReadFromDisk loads the best score. A missing file is not an error; a
// short or unreadable file is reported but leaves the score untouched.
func (h *Highscore) ReadFromDisk() error {
	f, err := os.Open(h.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("highscore: cannot open %s: %w", h.path, err)
	}
	defer f.Close()

	best, ok, err := decode(f)
	if err != nil {
		return fmt.Errorf("highscore: cannot read %s: %w", h.path, err)
	}
	if ok {
		h.best = best
	}
	return nil
}

// decode reads one record. ok is false for an unknown version.
func decode(r io.Reader) (score int, ok bool, err error) {
	var version int32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return 0, false, err
	}
	if version != FileVersion {
		return 0, false, nil
	}

	var value int32
	if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
		return 0, false, err
	}
	return int(value), true, nil
}
