// SPDX-License-Identifier: EPL-2.0

// Package audio provides the shared sample buffer and the failure
// categories used across the module.
//
// # Buffer
//
// Buffer stores multichannel audio de-interleaved as float64 samples in
// [-1.0, 1.0]:
//
//	buf := audio.New(2, 48000, 48000) // stereo, 1 second
//	mono := audio.Mono(samples, 44100)
//
// All channels of one buffer hold the same number of samples. Shape
// changing operations (Resized, Deinterleave) return a new buffer; a
// buffer is never resized in place, so each one has a single owner.
//
// # Interop
//
// Buffers convert to and from go-audio buffers:
//
//	fb := buf.FloatBuffer()          // *goaudio.FloatBuffer
//	buf2 := audio.FromFloatBuffer(fb)
//
// # Failure categories
//
// The package exports four sentinel errors that every other package in
// the module wraps: ErrMissingResource, ErrMalformedInput,
// ErrInvalidArgument and ErrInvalidState. Classify failures with
// errors.Is:
//
//	if errors.Is(err, audio.ErrMalformedInput) {
//	    // bad file contents
//	}
package audio
