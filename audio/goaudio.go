package audio

import (
	goaudio "github.com/go-audio/audio"
)

// FloatBuffer converts b into a go-audio FloatBuffer so results can be
// handed to the wider go-audio ecosystem (transforms, encoders).
func (b *Buffer) FloatBuffer() *goaudio.FloatBuffer {
	return &goaudio.FloatBuffer{
		Format: &goaudio.Format{
			NumChannels: b.NumChannels(),
			SampleRate:  b.SampleRate,
		},
		Data: b.Interleaved(),
	}
}

// FromFloatBuffer converts a go-audio FloatBuffer into a Buffer.
func FromFloatBuffer(fb *goaudio.FloatBuffer) *Buffer {
	channels := 1
	rate := 0
	if fb.Format != nil {
		if fb.Format.NumChannels > 0 {
			channels = fb.Format.NumChannels
		}
		rate = fb.Format.SampleRate
	}
	return Deinterleave(fb.Data, channels, rate)
}
