// SPDX-License-Identifier: EPL-2.0

// Package auris converts a source recording into spatialized
// multichannel audio by convolving it with direction-dependent impulse
// responses.
//
// # Pipeline
//
// A run takes a mono (or stereo; only the first channel is convolved)
// source buffer and an impulse-response grid, convolves one copy of the
// source per grid position, and mixes the per-position results into one
// multichannel WAV per azimuth:
//
//	grid, err := hrir.Load("irs/room-a")
//	if err != nil {
//	    return err
//	}
//	f, err := wav.DecodeFile("voice.wav")
//	if err != nil {
//	    return err
//	}
//	n, err := auris.Spatialize(f.Buffer, grid, "out", auris.Options{
//	    AzimuthStep: 15,
//	    Channels:    6,
//	    BitDepth:    24,
//	})
//	// out/data/0.wav ... out/data/23.wav, plus CSV dumps under out/data/csv/
//
// Synthetic sources come from the signal package:
//
//	src := signal.WhiteNoise(1<<18, 48000, signal.CryptoSource())
//
// # Subpackages
//
//   - audio: the shared multichannel sample buffer and error categories
//   - formats/wav: PCM WAV codec (16/24-bit, experimental 32-bit decode)
//   - hrir: the 4-position x 72-azimuth x 512-sample IR grid
//   - spatial: FFT overlap-add convolution and multichannel mixing
//   - signal: sine, swept-sine and noise generators
//   - export: CSV dumps and the output directory layout
//
// # Processing model
//
// Everything is synchronous and in-memory: grids and sources are loaded
// fully before convolution starts, and no component retries or
// partially recovers. Failures carry one of the four audio package
// categories and propagate to the caller unchanged.
package auris
