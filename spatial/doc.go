// SPDX-License-Identifier: EPL-2.0

// Package spatial convolves source audio with direction-dependent
// impulse responses and mixes the results into fixed multichannel
// buffers.
//
// # Convolution
//
// Convolve runs block-wise FFT overlap-add convolution of a source
// against every azimuth bin of one grid position:
//
//	res, err := spatial.Convolve(src, grid, hrir.Left, 15)
//	// res.Azimuths: 24 normalized buffers (360/15)
//	// res.Peak: pre-normalization global peak
//
// The source is split into 512-sample blocks, each zero-padded to 1024
// and multiplied against the transformed impulse row in the frequency
// domain; inverse transforms are accumulated at 512-sample offsets.
// All azimuth buffers are trimmed to a single length and divided by one
// global peak, so the relative level between directions survives.
//
// Per-azimuth iterations are independent (shared read-only inputs,
// disjoint outputs); the loop is the natural unit for parallelization
// if it ever becomes a bottleneck.
//
// # Mixing
//
// Combine lays one position per output channel with normalized gain
// weighting; CombineFixed uses the hardcoded surround permutation
// (back, right, left, front) and ignores gains. Both align input
// lengths by truncation or zero padding, never by resampling.
package spatial
