// SPDX-License-Identifier: EPL-2.0

// Package signal generates synthetic source buffers: fixed-frequency
// sines, swept sines and noise.
//
// Lengths are given as sample counts; DurationFrames and Pow2Frames
// convert from milliseconds or a power-of-two exponent, and Sine has
// SineDuration/SinePow2 shorthands for both:
//
//	tone := signal.SinePow2(440, 16, 48000) // 65536 samples
//
// The swept sines (LinearSweep, LogSweep) are constructed in the
// frequency domain from a phase-only spectrum with time-reversal
// symmetry around the Nyquist bin, which makes them useful as
// measurement excitations.
//
// The noise generators take a RandomSource so callers control
// determinism:
//
//	noise := signal.WhiteNoise(1<<18, 48000, signal.CryptoSource())
//
// NormalNoise keeps its historical shaping formula, including the
// absolute values applied to both uniform draws; see the function
// comment before treating its output as Gaussian.
//
// All generators return a fresh mono buffer and are pure with respect
// to their parameters apart from the injected randomness.
package signal
