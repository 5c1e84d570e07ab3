// SPDX-License-Identifier: EPL-2.0

package hrir

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/auris-audio/auris/audio"
)

// Position is one of the four fixed source directions for which a
// distinct impulse-response set exists.
type Position int

const (
	Left Position = iota
	Right
	Front
	Back

	// NumPositions is the number of directions in a grid.
	NumPositions = 4
)

// Positions lists all directions in file order.
var Positions = [NumPositions]Position{Left, Right, Front, Back}

func (p Position) String() string {
	switch p {
	case Left:
		return "left"
	case Right:
		return "right"
	case Front:
		return "front"
	case Back:
		return "back"
	}
	return fmt.Sprintf("position(%d)", int(p))
}

const (
	// NumAzimuths is the native directional resolution: 72 bins, 5°
	// apart, covering the full circle.
	NumAzimuths = 72

	// Resolution is the angular spacing between azimuth bins in degrees.
	Resolution = 5

	// IRLength is the impulse-response length per azimuth bin.
	IRLength = 512
)

// Grid is the position x azimuth x sample impulse-response table.
// Immutable once built; it is loaded fully before any convolution starts
// and stays read-only for the rest of the session.
type Grid struct {
	data [NumPositions][NumAzimuths][]float64
}

// New builds a grid from rows keyed by position. Each position needs
// exactly NumAzimuths rows of IRLength samples. Rows are copied so later
// mutation of the input cannot reach the grid.
func New(rows map[Position][][]float64) (*Grid, error) {
	g := &Grid{}
	for _, p := range Positions {
		pr, ok := rows[p]
		if !ok {
			return nil, fmt.Errorf("hrir: no rows for position %s: %w", p, audio.ErrInvalidArgument)
		}
		if len(pr) != NumAzimuths {
			return nil, fmt.Errorf("hrir: position %s has %d rows, want %d: %w",
				p, len(pr), NumAzimuths, audio.ErrMalformedInput)
		}
		for a, row := range pr {
			if len(row) != IRLength {
				return nil, fmt.Errorf("hrir: position %s row %d has %d values, want %d: %w",
					p, a, len(row), IRLength, audio.ErrMalformedInput)
			}
			g.data[p][a] = make([]float64, IRLength)
			copy(g.data[p][a], row)
		}
	}
	return g, nil
}

// Load reads the four direction files (left.csv, right.csv, front.csv,
// back.csv) from dir. Each file must hold exactly 72 lines of 512
// comma-separated decimal values.
func Load(dir string) (*Grid, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("hrir: %s: %w", dir, audio.ErrMissingResource)
	}

	rows := make(map[Position][][]float64, NumPositions)
	for _, p := range Positions {
		path := filepath.Join(dir, p.String()+".csv")
		pr, err := loadPosition(path)
		if err != nil {
			return nil, err
		}
		rows[p] = pr
	}
	return New(rows)
}

func loadPosition(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("hrir: %s: %w", path, audio.ErrMissingResource)
		}
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = IRLength

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("hrir: %s: %v: %w", path, err, audio.ErrMalformedInput)
	}
	if len(records) != NumAzimuths {
		return nil, fmt.Errorf("hrir: %s has %d lines, want %d: %w",
			path, len(records), NumAzimuths, audio.ErrMalformedInput)
	}

	rows := make([][]float64, len(records))
	for a, record := range records {
		row := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("hrir: %s line %d field %d: %v: %w",
					path, a+1, i+1, err, audio.ErrMalformedInput)
			}
			row[i] = v
		}
		rows[a] = row
	}
	return rows, nil
}

// Impulse returns a copy of the impulse response for one position and
// azimuth bin.
func (g *Grid) Impulse(p Position, bin int) []float64 {
	row := make([]float64, IRLength)
	copy(row, g.data[p][bin])
	return row
}
