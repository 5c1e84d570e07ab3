// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/auris-audio/auris/audio"
	"github.com/auris-audio/auris/utils"
)

const (
	headerSize   = 44 // canonical RIFF/WAVE/fmt /data layout
	preambleSize = 12
	chunkHdrSize = 8
)

// File is the result of decoding one PCM WAV byte stream.
type File struct {
	Buffer *audio.Buffer
	Header Header

	// PlayTime is derived from the data size at decode time, rounded
	// down to whole seconds.
	PlayTime time.Duration
}

// Decode parses a PCM WAV byte stream into a sample buffer and header.
//
// The 12-byte RIFF preamble is consumed without magic-value validation.
// Chunks are then scanned by ID and size; unknown chunks are skipped by
// consuming exactly their declared size, so chunk order may vary. The
// scan ends once both a "fmt " and a "data" chunk have been seen, and
// fails if the input runs out first.
func Decode(data []byte) (*File, error) {
	if len(data) < preambleSize {
		return nil, ErrTruncatedHeader
	}

	f := &File{}
	f.Header.FileSize = int(binary.LittleEndian.Uint32(data[4:8])) + chunkHdrSize

	var (
		haveFmt  bool
		haveData bool
		raw      []byte
	)

	off := preambleSize
	for !haveFmt || !haveData {
		if off+chunkHdrSize > len(data) {
			return nil, ErrMissingChunks
		}

		id := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		off += chunkHdrSize

		if off+size > len(data) {
			return nil, fmt.Errorf("%q chunk of %d bytes at offset %d: %w",
				id, size, off, ErrChunkOutOfBounds)
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("fmt chunk of %d bytes: %w", size, ErrChunkOutOfBounds)
			}
			f.Header.FormatCode = int(binary.LittleEndian.Uint16(data[off : off+2]))
			f.Header.NumChannels = int(binary.LittleEndian.Uint16(data[off+2 : off+4]))
			f.Header.SampleRate = int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
			f.Header.ByteRate = int(binary.LittleEndian.Uint32(data[off+8 : off+12]))
			f.Header.BlockAlign = int(binary.LittleEndian.Uint16(data[off+12 : off+14]))
			f.Header.BitsPerSample = int(binary.LittleEndian.Uint16(data[off+14 : off+16]))
			haveFmt = true
		case "data":
			raw = data[off : off+size]
			f.Header.DataSize = size
			haveData = true
		}

		off += size
	}

	buf, err := decodeSamples(raw, f.Header)
	if err != nil {
		return nil, err
	}
	f.Buffer = buf
	f.PlayTime = playTime(f.Header)

	return f, nil
}

// DecodeFile reads and decodes path.
func DecodeFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("wav: %s: %w", path, audio.ErrMissingResource)
		}
		return nil, fmt.Errorf("%w", err)
	}
	return Decode(data)
}

// decodeSamples de-interleaves raw PCM bytes into per-channel float
// samples. Sample i of channel c lives at byte offset
// c*bytesPerSample + i*blockAlign.
func decodeSamples(raw []byte, h Header) (*audio.Buffer, error) {
	if h.BlockAlign == 0 {
		return nil, ErrBadBlockAlign
	}

	bytesPerSample := h.BitsPerSample / 8
	frames := len(raw) / h.BlockAlign
	buf := audio.New(h.NumChannels, frames, h.SampleRate)

	switch h.BitsPerSample {
	case 16:
		for c := 0; c < h.NumChannels; c++ {
			base := c * bytesPerSample
			for i := 0; i < frames; i++ {
				off := base + i*h.BlockAlign
				v := int16(binary.LittleEndian.Uint16(raw[off : off+2]))
				buf.Channels[c][i] = utils.PCM16ToFloat(v)
			}
		}
	case 24:
		for c := 0; c < h.NumChannels; c++ {
			base := c * bytesPerSample
			for i := 0; i < frames; i++ {
				off := base + i*h.BlockAlign
				v := int(raw[off]) | int(raw[off+1])<<8 | int(raw[off+2])<<16
				buf.Channels[c][i] = utils.PCM24ToFloat(v)
			}
		}
	case 32:
		// Experimental: raw 32-bit words are neither sign-extended nor
		// normalized, so samples carry integer magnitudes instead of
		// [-1,1] values. Kept as-is; see the package documentation.
		for c := 0; c < h.NumChannels; c++ {
			base := c * bytesPerSample
			for i := 0; i < frames; i++ {
				off := base + i*h.BlockAlign
				buf.Channels[c][i] = float64(binary.LittleEndian.Uint32(raw[off : off+4]))
			}
		}
	default:
		return nil, fmt.Errorf("%d bits per sample: %w", h.BitsPerSample, ErrUnsupportedDepth)
	}

	return buf, nil
}

func playTime(h Header) time.Duration {
	div := h.SampleRate * h.NumChannels * h.BlockAlign
	if div == 0 {
		return 0
	}
	return time.Duration(h.DataSize/div) * 1000 * time.Millisecond
}
