// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"

	"github.com/auris-audio/auris/audio"
)

// Sine generates frames samples of sin(2π·frequency·n/sampleRate).
func Sine(frequency float64, frames, sampleRate int) *audio.Buffer {
	samples := make([]float64, frames)
	omega := 2 * math.Pi * frequency / float64(sampleRate)
	for n := range samples {
		samples[n] = math.Sin(omega * float64(n))
	}
	return audio.Mono(samples, sampleRate)
}

// SineDuration generates a sine of the given length in milliseconds.
func SineDuration(frequency float64, milliseconds, sampleRate int) *audio.Buffer {
	return Sine(frequency, DurationFrames(milliseconds, sampleRate), sampleRate)
}

// SinePow2 generates a sine of 2^power samples, the length the
// convolution engine requires.
func SinePow2(frequency float64, power, sampleRate int) *audio.Buffer {
	return Sine(frequency, Pow2Frames(power), sampleRate)
}

// DurationFrames converts a length in milliseconds to a sample count.
func DurationFrames(milliseconds, sampleRate int) int {
	return milliseconds * sampleRate / 1000
}

// Pow2Frames converts a power-of-two exponent to a sample count.
func Pow2Frames(power int) int {
	return 1 << power
}
