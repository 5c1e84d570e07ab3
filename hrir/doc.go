// SPDX-License-Identifier: EPL-2.0

// Package hrir loads the direction-dependent impulse-response grid used
// for spatialization.
//
// A grid covers four fixed positions (left, right, front, back), each
// with 72 azimuth bins at 5° resolution and 512 samples per bin. On
// disk a grid is one directory with four CSV files named left.csv,
// right.csv, front.csv and back.csv; every file has 72 lines of 512
// comma-separated decimal values:
//
//	grid, err := hrir.Load("irs/room-a")
//	row := grid.Impulse(hrir.Front, 18) // 90° bin
//
// Absent directories or files fail with audio.ErrMissingResource; files
// with wrong dimensions or unparsable values fail with
// audio.ErrMalformedInput. A loaded grid is immutable and safe for
// concurrent readers.
package hrir
