package wav

import (
	"fmt"

	"github.com/auris-audio/auris/audio"
)

// Package sentinels wrap the module-wide failure categories, so callers
// can match either the specific failure or the category with errors.Is.
var (
	ErrTruncatedHeader  = fmt.Errorf("wav: truncated RIFF header: %w", audio.ErrMalformedInput)
	ErrChunkOutOfBounds = fmt.Errorf("wav: chunk exceeds input size: %w", audio.ErrMalformedInput)
	ErrMissingChunks    = fmt.Errorf("wav: input exhausted before fmt and data chunks: %w", audio.ErrMalformedInput)
	ErrUnsupportedDepth = fmt.Errorf("wav: unsupported bit depth: %w", audio.ErrMalformedInput)
	ErrBadBlockAlign    = fmt.Errorf("wav: zero block alignment: %w", audio.ErrMalformedInput)
	ErrEncodeDepth      = fmt.Errorf("wav: encode supports 16 and 24 bit only: %w", audio.ErrInvalidArgument)
	ErrEmptyBuffer      = fmt.Errorf("wav: buffer not populated: %w", audio.ErrInvalidState)
)
