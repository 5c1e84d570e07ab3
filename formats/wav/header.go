// SPDX-License-Identifier: EPL-2.0

package wav

// Header carries the metadata of one PCM WAV stream. Every field is a
// pure function of the buffer shape plus a selected bit depth and sample
// rate; headers are derived whole, never patched field by field.
type Header struct {
	FormatCode    int // 1 = integer PCM
	NumChannels   int
	SampleRate    int // Hz
	ByteRate      int // SampleRate * NumChannels * BitsPerSample/8
	BlockAlign    int // NumChannels * BitsPerSample/8
	BitsPerSample int
	DataSize      int // bytes of sample data
	FileSize      int // DataSize + 44-byte canonical header
}

// DeriveHeader computes the canonical PCM header for a buffer of the
// given shape at the requested bit depth and sample rate.
func DeriveHeader(numChannels, frames, bitDepth, sampleRate int) Header {
	bytesPerSample := bitDepth / 8
	blockAlign := numChannels * bytesPerSample
	dataSize := frames * blockAlign

	return Header{
		FormatCode:    1,
		NumChannels:   numChannels,
		SampleRate:    sampleRate,
		ByteRate:      sampleRate * blockAlign,
		BlockAlign:    blockAlign,
		BitsPerSample: bitDepth,
		DataSize:      dataSize,
		FileSize:      dataSize + headerSize,
	}
}
