// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"

	"github.com/auris-audio/auris/audio"
)

// WhiteNoise generates frames samples of uniform noise in [-1, 1],
// drawing one value per sample from src.
func WhiteNoise(frames, sampleRate int, src RandomSource) *audio.Buffer {
	samples := make([]float64, frames)
	for i := range samples {
		samples[i] = src.Float64()
	}
	return audio.Mono(samples, sampleRate)
}

// NormalNoise generates frames samples of noise shaped by
// sqrt(-2·ln|u1|)·cos(2π·|u2|) from two draws per sample.
//
// Both uniforms are folded through their absolute value before use.
// This deviates from the textbook Box-Muller transform and biases the
// distribution, but it is the established output of this generator and
// is kept exactly.
func NormalNoise(frames, sampleRate int, src RandomSource) *audio.Buffer {
	samples := make([]float64, frames)
	for i := range samples {
		u1 := math.Abs(src.Float64())
		u2 := math.Abs(src.Float64())
		samples[i] = math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	}
	return audio.Mono(samples, sampleRate)
}
