// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/auris-audio/auris/audio"
)

// Swept-sine signals are built in the frequency domain: a phase-only
// spectrum of size 2^power whose lower half follows the phase law and
// whose upper half mirrors it around the Nyquist bin, inverse
// transformed, circularly rotated by half the effective length and
// normalized by the peak real-part magnitude. The resulting half-length
// waveform is tiled twice to fill the output buffer.

// LinearSweep generates a linearly swept sine of 2^power samples using
// the quadratic phase law θ(k) = -4π·m·k²/N² with m = N/4.
func LinearSweep(power, sampleRate int) (*audio.Buffer, error) {
	return sweep(power, sampleRate, func(n, m, k int) float64 {
		return -4 * math.Pi * float64(m) * float64(k) * float64(k) / float64(n*n)
	})
}

// LogSweep generates a logarithmically swept sine of 2^power samples.
// The phase law θ(k) = -α·k·ln(k) is scaled so the phase at the Nyquist
// bin matches LinearSweep's.
func LogSweep(power, sampleRate int) (*audio.Buffer, error) {
	return sweep(power, sampleRate, func(n, m, k int) float64 {
		half := float64(n / 2)
		alpha := 2 * math.Pi * float64(m) / float64(n) / math.Log(half)
		return -alpha * float64(k) * math.Log(float64(k))
	})
}

func sweep(power, sampleRate int, phase func(n, m, k int) float64) (*audio.Buffer, error) {
	if power < 2 || power > 30 {
		return nil, fmt.Errorf("signal: sweep power %d out of [2,30]: %w", power, audio.ErrInvalidArgument)
	}

	n := 1 << power
	m := n / 4

	spectrum := make([]complex128, n)
	spectrum[0] = 1
	for k := 1; k <= n/2; k++ {
		spectrum[k] = cmplx.Exp(complex(0, phase(n, m, k)))
		if k < n/2 {
			// Time-reversal symmetry around the Nyquist bin keeps the
			// inverse transform real.
			spectrum[n-k] = cmplx.Conj(spectrum[k])
		}
	}

	fft := fourier.NewCmplxFFT(n)
	sequence := fft.Sequence(nil, spectrum)

	// Inverse is unnormalized; rotate by half the 2m effective length
	// while scaling by 1/N.
	rotated := make([]float64, n)
	for i := range rotated {
		rotated[i] = real(sequence[(i+n-m)%n]) / float64(n)
	}

	peak := 0.0
	for _, v := range rotated {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak > 0 {
		for i := range rotated {
			rotated[i] /= peak
		}
	}

	half := n / 2
	out := make([]float64, n)
	for i := range out {
		out[i] = rotated[i%half]
	}
	return audio.Mono(out, sampleRate), nil
}
