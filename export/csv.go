// SPDX-License-Identifier: EPL-2.0

// Package export writes mixed buffers to the inspection outputs: CSV
// dumps and the per-azimuth directory layout
// <root>/data/<azimuth>.wav, <root>/data/csv/<azimuth>.csv.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/auris-audio/auris/audio"
)

// WriteCSV dumps a buffer as text, one row per sample and one column
// per channel. The output is a sink for inspection only; nothing in the
// pipeline reads it back.
func WriteCSV(w io.Writer, buf *audio.Buffer) error {
	if buf == nil || buf.NumChannels() == 0 || buf.Empty() {
		return fmt.Errorf("export: buffer not populated: %w", audio.ErrInvalidState)
	}
	if err := buf.Validate(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	record := make([]string, buf.NumChannels())
	for i, frames := 0, buf.Frames(); i < frames; i++ {
		for c := range buf.Channels {
			record[c] = strconv.FormatFloat(buf.Channels[c][i], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// WriteCSVFile writes the CSV dump of buf to path.
func WriteCSVFile(path string, buf *audio.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, buf); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Tree is the output directory layout for one spatialization run.
type Tree struct {
	root string
}

// NewTree creates (if needed) the data/ and data/csv/ directories under
// root and returns the layout.
func NewTree(root string) (*Tree, error) {
	if err := os.MkdirAll(filepath.Join(root, "data", "csv"), 0o755); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &Tree{root: root}, nil
}

// WavPath returns the WAV output path for one azimuth index.
func (t *Tree) WavPath(azimuth int) string {
	return filepath.Join(t.root, "data", strconv.Itoa(azimuth)+".wav")
}

// CSVPath returns the CSV output path for one azimuth index.
func (t *Tree) CSVPath(azimuth int) string {
	return filepath.Join(t.root, "data", "csv", strconv.Itoa(azimuth)+".csv")
}
