// SPDX-License-Identifier: EPL-2.0

package auris

import (
	"fmt"

	"github.com/auris-audio/auris/audio"
	"github.com/auris-audio/auris/export"
	"github.com/auris-audio/auris/formats/wav"
	"github.com/auris-audio/auris/hrir"
	"github.com/auris-audio/auris/spatial"
)

// Options controls one spatialization run.
type Options struct {
	// AzimuthStep is the output resolution in degrees, a multiple of
	// the grid's 5° resolution. Default 5 (72 outputs).
	AzimuthStep int

	// Channels is the output channel count: 2, 4 or 6. Default 6. The
	// gain-weighted mode lays all four grid positions on channels, so
	// it needs at least 4; 2 works only with FixedOrder, which drops
	// the positions mapped beyond the channel count.
	Channels int

	// BitDepth selects WAV serialization: 16 or 24. Default 24.
	BitDepth int

	// FixedOrder switches mixing to the hardcoded surround permutation
	// (back, right, left, front) instead of peak-weighted gains.
	FixedOrder bool
}

func (o Options) withDefaults() Options {
	if o.AzimuthStep == 0 {
		o.AzimuthStep = hrir.Resolution
	}
	if o.Channels == 0 {
		o.Channels = 6
	}
	if o.BitDepth == 0 {
		o.BitDepth = 24
	}
	return o
}

// Spatialize runs the whole pipeline: the source is copied once per
// grid position, convolved against that position's impulse responses,
// and the per-position results are mixed into one multichannel buffer
// per azimuth. Each mixed buffer is written under outRoot as
// data/<azimuth>.wav plus a data/csv/<azimuth>.csv inspection dump.
//
// It returns the number of azimuth outputs written. The whole source is
// held in memory; nothing is retried internally, and the first failure
// aborts the run.
func Spatialize(src *audio.Buffer, grid *hrir.Grid, outRoot string, opts Options) (int, error) {
	opts = opts.withDefaults()

	if grid == nil {
		return 0, fmt.Errorf("auris: nil grid: %w", audio.ErrInvalidArgument)
	}

	results := make([]*spatial.Result, hrir.NumPositions)
	for i, p := range hrir.Positions {
		res, err := spatial.Convolve(src.Clone(), grid, p, opts.AzimuthStep)
		if err != nil {
			return 0, err
		}
		results[i] = res
	}

	// Per-position convolution peaks become the relative mixing gains.
	// They are rescaled by the loudest position up front so every gain
	// fits the mixer's [0, 1] contract.
	gains := make([]float64, hrir.NumPositions)
	maxPeak := 0.0
	for i, res := range results {
		gains[i] = res.Peak
		if res.Peak > maxPeak {
			maxPeak = res.Peak
		}
	}
	if maxPeak > 0 {
		for i := range gains {
			gains[i] /= maxPeak
		}
	}

	tree, err := export.NewTree(outRoot)
	if err != nil {
		return 0, err
	}

	count := 360 / opts.AzimuthStep
	for a := 0; a < count; a++ {
		mixed, err := mixAzimuth(results, gains, a, opts)
		if err != nil {
			return 0, err
		}
		if err := wav.EncodeFile(tree.WavPath(a), mixed, opts.BitDepth, src.SampleRate); err != nil {
			return 0, err
		}
		if err := export.WriteCSVFile(tree.CSVPath(a), mixed); err != nil {
			return 0, err
		}
	}

	return count, nil
}

func mixAzimuth(results []*spatial.Result, gains []float64, azimuth int, opts Options) (*audio.Buffer, error) {
	if opts.FixedOrder {
		byPosition := make(map[hrir.Position]*audio.Buffer, hrir.NumPositions)
		for i, p := range hrir.Positions {
			byPosition[p] = results[i].Azimuths[azimuth]
		}
		return spatial.CombineFixed(byPosition, opts.Channels)
	}

	buffers := make([]*audio.Buffer, hrir.NumPositions)
	for i := range results {
		buffers[i] = results[i].Azimuths[azimuth]
	}
	return spatial.Combine(buffers, gains, opts.Channels)
}
