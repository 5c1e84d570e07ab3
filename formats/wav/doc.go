// SPDX-License-Identifier: EPL-2.0

// Package wav implements an uncompressed PCM WAV codec.
//
// # Decoding
//
// Decode parses a WAV byte stream into a de-interleaved sample buffer
// plus its header metadata:
//
//	f, err := wav.Decode(data)
//	if err != nil {
//	    // errors.Is(err, audio.ErrMalformedInput) for bad streams
//	}
//	buf := f.Buffer   // *audio.Buffer, float64 samples in [-1,1]
//	hdr := f.Header   // channels, rates, sizes
//
// The chunk scanner tolerates any chunk order and skips unknown chunks
// by their declared size. Decoding needs exactly one "fmt " and one
// "data" chunk; if the input ends before both were seen the stream is
// malformed.
//
// Supported sample widths on decode are 16, 24 and 32 bits. The 16- and
// 24-bit paths normalize to [-1.0, 1.0]. The 32-bit path is an
// experimental passthrough: the four little-endian bytes are combined
// into an unsigned word with no sign extension and no normalization, so
// the resulting samples are raw integer magnitudes. Do not feed 32-bit
// output into the rest of the pipeline.
//
// # Encoding
//
// Encode serializes a buffer with the canonical 44-byte header at 16 or
// 24 bits per sample:
//
//	data, err := wav.Encode(buf, 24, 48000)
//
// The header is always recomputed from the buffer's shape by
// DeriveHeader; nothing patches header fields incrementally.
//
// # Files
//
// DecodeFile and EncodeFile wrap the byte-level API with file I/O and
// report absent inputs as audio.ErrMissingResource.
package wav
