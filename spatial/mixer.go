// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"math"

	"github.com/auris-audio/auris/audio"
	"github.com/auris-audio/auris/hrir"
)

// surroundOrder is the fixed position-to-channel permutation used by
// CombineFixed: back, right, left, front.
var surroundOrder = map[hrir.Position]int{
	hrir.Back:  0,
	hrir.Right: 1,
	hrir.Left:  2,
	hrir.Front: 3,
}

// Combine mixes one mono buffer per position into a single interleaved
// buffer of exactly targetChannels channels (2, 4 or 6). Position i
// lands on channel i weighted by gains[i]; channels beyond the supplied
// positions stay silent.
//
// Buffers of differing lengths are first aligned to the longest
// duration by truncation or zero padding in each buffer's own timebase;
// samples are never resampled. Gains are normalized by the maximum gain
// before weighting, so only relative levels matter. A gain above 1.0 or
// a gain count that differs from the position count is a contract
// violation.
func Combine(positions []*audio.Buffer, gains []float64, targetChannels int) (*audio.Buffer, error) {
	if targetChannels != 2 && targetChannels != 4 && targetChannels != 6 {
		return nil, ErrTargetChannels
	}
	if len(gains) != len(positions) {
		return nil, ErrGainCount
	}
	if len(positions) == 0 {
		return nil, ErrEmptySource
	}
	if len(positions) > targetChannels {
		return nil, ErrTooManyInputs
	}
	for _, g := range gains {
		if g > 1.0 {
			return nil, ErrGainRange
		}
	}

	aligned, frames, rate, err := align(positions)
	if err != nil {
		return nil, err
	}

	weights := normalizeGains(gains)

	out := audio.New(targetChannels, frames, rate)
	for i, buf := range aligned {
		src := buf.Channels[0]
		dst := out.Channels[i]
		w := weights[i]
		for s := range src {
			dst[s] = src[s] * w
		}
	}
	return out, nil
}

// CombineFixed mixes the four directional buffers into targetChannels
// channels using the hardcoded surround permutation (back on 0, right
// on 1, left on 2, front on 3), ignoring gains entirely. Positions that
// map beyond targetChannels are dropped; channels with no mapped
// position stay silent.
func CombineFixed(positions map[hrir.Position]*audio.Buffer, targetChannels int) (*audio.Buffer, error) {
	if targetChannels != 2 && targetChannels != 4 && targetChannels != 6 {
		return nil, ErrTargetChannels
	}
	if len(positions) == 0 {
		return nil, ErrEmptySource
	}

	ordered := make([]*audio.Buffer, 0, len(positions))
	channelOf := make([]int, 0, len(positions))
	for _, p := range hrir.Positions {
		buf, ok := positions[p]
		if !ok {
			continue
		}
		if ch := surroundOrder[p]; ch < targetChannels {
			ordered = append(ordered, buf)
			channelOf = append(channelOf, ch)
		}
	}
	if len(ordered) == 0 {
		return nil, ErrEmptySource
	}

	aligned, frames, rate, err := align(ordered)
	if err != nil {
		return nil, err
	}

	out := audio.New(targetChannels, frames, rate)
	for i, buf := range aligned {
		copy(out.Channels[channelOf[i]], buf.Channels[0])
	}
	return out, nil
}

// align re-expands every buffer to the longest duration among them. The
// per-buffer target length is computed in that buffer's own sample
// rate; resulting channels are then padded to a common frame count so
// the output keeps the equal-length invariant.
func align(positions []*audio.Buffer) ([]*audio.Buffer, int, int, error) {
	maxDur := 0.0
	rate := 0
	for _, p := range positions {
		if p == nil || p.NumChannels() == 0 || p.Empty() {
			return nil, 0, 0, ErrEmptySource
		}
		if p.SampleRate > 0 {
			if d := float64(p.Frames()) / float64(p.SampleRate); d > maxDur {
				maxDur = d
			}
			if rate == 0 {
				rate = p.SampleRate
			}
		}
	}

	frames := 0
	targets := make([]int, len(positions))
	for i, p := range positions {
		want := p.Frames()
		if p.SampleRate > 0 {
			want = int(math.Round(maxDur * float64(p.SampleRate)))
		}
		targets[i] = want
		if want > frames {
			frames = want
		}
	}

	aligned := make([]*audio.Buffer, len(positions))
	for i, p := range positions {
		if targets[i] != p.Frames() {
			p = p.Resized(targets[i])
		}
		if p.Frames() != frames {
			p = p.Resized(frames)
		}
		aligned[i] = p
	}
	return aligned, frames, rate, nil
}

func normalizeGains(gains []float64) []float64 {
	maxGain := 0.0
	for _, g := range gains {
		if g > maxGain {
			maxGain = g
		}
	}
	out := make([]float64, len(gains))
	if maxGain == 0 {
		return out
	}
	for i, g := range gains {
		out[i] = g / maxGain
	}
	return out
}
