// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/auris-audio/auris/audio"
	"github.com/auris-audio/auris/hrir"
)

// fftSize is the zero-padded transform length: twice the IR block, so
// each cyclic per-block convolution realizes a linear one.
const fftSize = 2 * hrir.IRLength

// Result is the outcome of convolving one source against every azimuth
// of a single position.
type Result struct {
	// Azimuths holds one normalized mono buffer per output azimuth, all
	// the same length.
	Azimuths []*audio.Buffer

	// Amplitudes holds the signed pre-normalization peak of each
	// azimuth buffer.
	Amplitudes []float64

	// Peak is the maximum absolute amplitude across all azimuths. Every
	// sample has been divided by it, so after Convolve the loudest
	// sample of the loudest azimuth is exactly +/-1. Downstream mixing
	// uses it for relative gain weighting across positions.
	Peak float64
}

// Convolve runs block-wise FFT overlap-add convolution of the source's
// first channel against every selected azimuth bin of one position.
//
// The source channel length must be a power of two. step is the output
// resolution in degrees; it must be a positive multiple of the grid's
// native 5° resolution, at most 180, and yields 360/step output
// azimuths, one per grid bin step/5 apart.
func Convolve(src *audio.Buffer, grid *hrir.Grid, pos hrir.Position, step int) (*Result, error) {
	if src == nil || src.NumChannels() == 0 || src.Empty() {
		return nil, ErrEmptySource
	}
	n := src.Frames()
	if n&(n-1) != 0 {
		return nil, ErrSourceLength
	}
	if step < hrir.Resolution || step > 180 || step%hrir.Resolution != 0 {
		return nil, ErrAzimuthStep
	}

	signal := src.Channels[0]
	blocks := (n + hrir.IRLength - 1) / hrir.IRLength
	count := 360 / step

	fft := fourier.NewFFT(fftSize)
	bins := fftSize/2 + 1

	// Source block spectra are shared by every azimuth, so transform
	// each zero-padded block exactly once.
	srcSpectra := make([][]complex128, blocks)
	padded := make([]float64, fftSize)
	for b := 0; b < blocks; b++ {
		for i := range padded {
			padded[i] = 0
		}
		lo := b * hrir.IRLength
		hi := min(lo+hrir.IRLength, n)
		copy(padded, signal[lo:hi])
		srcSpectra[b] = fft.Coefficients(make([]complex128, bins), padded)
	}

	// Work buffers reused across azimuths and blocks.
	var (
		irSpectrum = make([]complex128, bins)
		product    = make([]complex128, bins)
		inverse    = make([]float64, fftSize)
	)

	outLen := blocks*hrir.IRLength + hrir.IRLength
	outputs := make([][]float64, count)

	for a := 0; a < count; a++ {
		row := grid.Impulse(pos, a*(step/hrir.Resolution))
		for i := range padded {
			padded[i] = 0
		}
		copy(padded, row)
		irSpectrum = fft.Coefficients(irSpectrum, padded)

		out := make([]float64, outLen)
		for b := 0; b < blocks; b++ {
			for k := range product {
				product[k] = srcSpectra[b][k] * irSpectrum[k]
			}
			inverse = fft.Sequence(inverse, product)

			// The gonum inverse is unnormalized; fold the 1/N into the
			// overlap-add accumulation.
			off := b * hrir.IRLength
			for i, v := range inverse {
				out[off+i] += v / fftSize
			}
		}
		outputs[a] = out
	}

	// Convolution extends every buffer by one block of tail. Trim the
	// trailing exact-zero run of azimuth 0 and cut every azimuth at the
	// same point so lengths stay uniform.
	trimmed := outLen
	for trimmed > 0 && outputs[0][trimmed-1] == 0 {
		trimmed--
	}
	for a := range outputs {
		outputs[a] = outputs[a][:trimmed]
	}

	res := &Result{
		Azimuths:   make([]*audio.Buffer, count),
		Amplitudes: make([]float64, count),
	}
	for a, out := range outputs {
		amp := signedPeak(out)
		res.Amplitudes[a] = amp
		if abs := math.Abs(amp); abs > res.Peak {
			res.Peak = abs
		}
	}

	// One global divisor across all azimuths preserves the relative
	// level differences between directions.
	if res.Peak != 0 {
		for _, out := range outputs {
			for i := range out {
				out[i] /= res.Peak
			}
		}
	}
	for a, out := range outputs {
		res.Azimuths[a] = audio.Mono(out, src.SampleRate)
	}

	return res, nil
}

// signedPeak returns the sample with the largest magnitude, keeping its
// sign. Ties keep the first occurrence.
func signedPeak(samples []float64) float64 {
	peak := 0.0
	for _, s := range samples {
		if math.Abs(s) > math.Abs(peak) {
			peak = s
		}
	}
	return peak
}
