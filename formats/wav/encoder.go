// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/auris-audio/auris/audio"
	"github.com/auris-audio/auris/utils"
)

// Encode serializes a buffer as a canonical 44-byte-header PCM WAV byte
// stream. The header is derived from the buffer's current shape and the
// requested bit depth and sample rate. Only 16- and 24-bit little-endian
// PCM are supported; samples are remapped by scaling and truncation.
func Encode(buf *audio.Buffer, bitDepth, sampleRate int) ([]byte, error) {
	if buf == nil || buf.NumChannels() == 0 || buf.Empty() {
		return nil, ErrEmptyBuffer
	}
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if bitDepth != 16 && bitDepth != 24 {
		return nil, fmt.Errorf("%d bits per sample: %w", bitDepth, ErrEncodeDepth)
	}

	h := DeriveHeader(buf.NumChannels(), buf.Frames(), bitDepth, sampleRate)

	out := make([]byte, headerSize+h.DataSize)
	putHeader(out, h)

	frames := buf.Frames()
	channels := buf.NumChannels()
	off := headerSize

	switch bitDepth {
	case 16:
		for i := 0; i < frames; i++ {
			for c := 0; c < channels; c++ {
				binary.LittleEndian.PutUint16(out[off:off+2], utils.FloatToPCM16(buf.Channels[c][i]))
				off += 2
			}
		}
	case 24:
		for i := 0; i < frames; i++ {
			for c := 0; c < channels; c++ {
				out[off], out[off+1], out[off+2] = utils.FloatToPCM24(buf.Channels[c][i])
				off += 3
			}
		}
	}

	return out, nil
}

// EncodeFile serializes buf and writes it to path.
func EncodeFile(path string, buf *audio.Buffer, bitDepth, sampleRate int) error {
	data, err := Encode(buf, bitDepth, sampleRate)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func putHeader(dst []byte, h Header) {
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], uint32(36+h.DataSize))
	copy(dst[8:12], "WAVE")

	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(dst[20:22], uint16(h.FormatCode))
	binary.LittleEndian.PutUint16(dst[22:24], uint16(h.NumChannels))
	binary.LittleEndian.PutUint32(dst[24:28], uint32(h.SampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], uint32(h.ByteRate))
	binary.LittleEndian.PutUint16(dst[32:34], uint16(h.BlockAlign))
	binary.LittleEndian.PutUint16(dst[34:36], uint16(h.BitsPerSample))

	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], uint32(h.DataSize))
}
