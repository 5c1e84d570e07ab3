// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Buffer is an in-memory multichannel sample buffer. Samples are stored
// de-interleaved, one float64 slice per channel, nominally in [-1, 1].
// Every channel holds the same number of samples.
//
// A Buffer has exactly one owner at a time. Operations that change the
// buffer's shape return a new Buffer instead of mutating in place.
type Buffer struct {
	// Channels holds one sample sequence per channel, all equal length.
	Channels [][]float64

	// SampleRate in Hz. Zero means unspecified.
	SampleRate int
}

// New allocates a zeroed buffer of channels x frames samples.
func New(channels, frames, sampleRate int) *Buffer {
	chs := make([][]float64, channels)
	for c := range chs {
		chs[c] = make([]float64, frames)
	}
	return &Buffer{Channels: chs, SampleRate: sampleRate}
}

// Mono wraps a single channel of samples in a Buffer. The slice is taken
// over, not copied.
func Mono(samples []float64, sampleRate int) *Buffer {
	return &Buffer{Channels: [][]float64{samples}, SampleRate: sampleRate}
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int {
	if b == nil {
		return 0
	}
	return len(b.Channels)
}

// Frames returns the per-channel sample count.
func (b *Buffer) Frames() int {
	if b == nil || len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// Empty reports whether the buffer holds no samples.
func (b *Buffer) Empty() bool {
	return b.Frames() == 0
}

// Duration returns the buffer length as wall time. Zero if the sample
// rate is unset.
func (b *Buffer) Duration() time.Duration {
	if b == nil || b.SampleRate <= 0 {
		return 0
	}
	seconds := float64(b.Frames()) / float64(b.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// Validate checks the equal-length invariant across channels.
func (b *Buffer) Validate() error {
	if b == nil || len(b.Channels) == 0 {
		return fmt.Errorf("buffer not populated: %w", ErrInvalidState)
	}
	n := len(b.Channels[0])
	for c, ch := range b.Channels {
		if len(ch) != n {
			return fmt.Errorf("channel %d has %d samples, channel 0 has %d: %w",
				c, len(ch), n, ErrMalformedInput)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		Channels:   make([][]float64, len(b.Channels)),
		SampleRate: b.SampleRate,
	}
	for c, ch := range b.Channels {
		out.Channels[c] = make([]float64, len(ch))
		copy(out.Channels[c], ch)
	}
	return out
}

// Resized returns a copy truncated or zero-padded to frames samples per
// channel. Sample values are never interpolated.
func (b *Buffer) Resized(frames int) *Buffer {
	out := &Buffer{
		Channels:   make([][]float64, len(b.Channels)),
		SampleRate: b.SampleRate,
	}
	for c, ch := range b.Channels {
		out.Channels[c] = make([]float64, frames)
		copy(out.Channels[c], ch)
	}
	return out
}

// Interleaved flattens the buffer into frame-major order: sample i of
// channel c lands at index i*numChannels+c.
func (b *Buffer) Interleaved() []float64 {
	frames := b.Frames()
	channels := b.NumChannels()
	out := make([]float64, frames*channels)
	for c, ch := range b.Channels {
		for i, s := range ch {
			out[i*channels+c] = s
		}
	}
	return out
}

// Deinterleave splits frame-major data into a Buffer with the given
// channel count. Trailing samples that do not fill a whole frame are
// dropped.
func Deinterleave(data []float64, channels, sampleRate int) *Buffer {
	frames := len(data) / channels
	b := New(channels, frames, sampleRate)
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			b.Channels[c][i] = data[i*channels+c]
		}
	}
	return b
}
