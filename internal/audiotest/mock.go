// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic fixtures shared by tests:
// scripted random sources and synthetic impulse-response grids.
package audiotest

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/auris-audio/auris/hrir"
)

// SequenceSource replays a fixed cycle of values, so stochastic
// generators become deterministic under test. It implements
// signal.RandomSource (without importing it to avoid cycles).
type SequenceSource struct {
	values []float64
	next   int
}

// NewSequenceSource builds a source cycling through values.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Reset rewinds the sequence to its start.
func (s *SequenceSource) Reset() {
	s.next = 0
}

// ImpulseRow returns an impulse response that is a unit impulse delayed
// by delay samples.
func ImpulseRow(delay int) []float64 {
	row := make([]float64, hrir.IRLength)
	row[delay%hrir.IRLength] = 1
	return row
}

// ImpulseGrid builds an in-memory grid where every bin is a unit impulse
// at sample 0. Convolving against it reproduces the source (up to
// normalization), which makes expected outputs easy to state.
func ImpulseGrid() *hrir.Grid {
	rows := make(map[hrir.Position][][]float64, hrir.NumPositions)
	for _, p := range hrir.Positions {
		pr := make([][]float64, hrir.NumAzimuths)
		for a := range pr {
			pr[a] = ImpulseRow(0)
		}
		rows[p] = pr
	}
	g, err := hrir.New(rows)
	if err != nil {
		panic(fmt.Sprintf("audiotest: building impulse grid: %v", err))
	}
	return g
}

// ScaledGrid builds a grid where bin a of every position is an impulse
// scaled by scale(position, a). Useful for exercising per-azimuth
// amplitude tracking.
func ScaledGrid(scale func(p hrir.Position, azimuth int) float64) *hrir.Grid {
	rows := make(map[hrir.Position][][]float64, hrir.NumPositions)
	for _, p := range hrir.Positions {
		pr := make([][]float64, hrir.NumAzimuths)
		for a := range pr {
			row := make([]float64, hrir.IRLength)
			row[0] = scale(p, a)
			pr[a] = row
		}
		rows[p] = pr
	}
	g, err := hrir.New(rows)
	if err != nil {
		panic(fmt.Sprintf("audiotest: building scaled grid: %v", err))
	}
	return g
}

// WriteGridDir writes a full 4x72x512 grid directory under dir, one row
// builder call per (position, azimuth).
func WriteGridDir(dir string, row func(p hrir.Position, azimuth int) []float64) error {
	for _, p := range hrir.Positions {
		var sb strings.Builder
		for a := 0; a < hrir.NumAzimuths; a++ {
			r := row(p, a)
			for i, v := range r {
				if i > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
			sb.WriteByte('\n')
		}
		path := filepath.Join(dir, p.String()+".csv")
		if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
			return err
		}
	}
	return nil
}
