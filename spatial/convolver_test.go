// SPDX-License-Identifier: EPL-2.0

package spatial_test

import (
	"errors"
	"math"
	"testing"

	"github.com/auris-audio/auris/audio"
	"github.com/auris-audio/auris/hrir"
	"github.com/auris-audio/auris/internal/audiotest"
	"github.com/auris-audio/auris/spatial"
)

// unitImpulse returns a mono buffer with a 1 at sample 0.
func unitImpulse(frames, rate int) *audio.Buffer {
	samples := make([]float64, frames)
	samples[0] = 1
	return audio.Mono(samples, rate)
}

// patternGrid builds a grid whose rows differ per azimuth bin and end in
// a nonzero sample, so trimming keeps the whole row visible.
func patternGrid(t *testing.T) *hrir.Grid {
	t.Helper()

	rows := make(map[hrir.Position][][]float64)
	for _, p := range hrir.Positions {
		pr := make([][]float64, hrir.NumAzimuths)
		for a := range pr {
			row := make([]float64, hrir.IRLength)
			for i := range row {
				row[i] = 0.5 * math.Sin(float64(i)*0.1+float64(a))
			}
			row[hrir.IRLength-1] = 0.25
			pr[a] = row
		}
		rows[p] = pr
	}
	g, err := hrir.New(rows)
	if err != nil {
		t.Fatalf("building pattern grid: %v", err)
	}
	return g
}

func TestConvolve_ImpulseReproducesRow(t *testing.T) {
	t.Parallel()

	grid := patternGrid(t)
	src := unitImpulse(1024, 48000)

	res, err := spatial.Convolve(src, grid, hrir.Front, 15)
	if err != nil {
		t.Fatalf("Convolve() error = %v, want nil", err)
	}

	if len(res.Azimuths) != 24 {
		t.Fatalf("got %d azimuth buffers, want 24", len(res.Azimuths))
	}

	const tol = 1e-9
	for a, buf := range res.Azimuths {
		row := grid.Impulse(hrir.Front, a*3) // 15° step selects every third bin
		got := buf.Channels[0]
		for i := range row {
			want := row[i] / res.Peak
			if math.Abs(got[i]-want) > tol {
				t.Fatalf("azimuth %d sample %d = %v, want %v", a, i, got[i], want)
			}
		}
		// Beyond the row, only the convolution tail's silence remains.
		for i := hrir.IRLength; i < len(got); i++ {
			if math.Abs(got[i]) > tol {
				t.Fatalf("azimuth %d sample %d = %v, want silence", a, i, got[i])
			}
		}
	}
}

func TestConvolve_NormalizationPostcondition(t *testing.T) {
	t.Parallel()

	grid := patternGrid(t)
	noise := audiotest.NewSequenceSource(0.9, -0.4, 0.6, -0.2, 0.1, -0.8)
	samples := make([]float64, 4096)
	for i := range samples {
		samples[i] = noise.Float64()
	}
	src := audio.Mono(samples, 48000)

	res, err := spatial.Convolve(src, grid, hrir.Back, 45)
	if err != nil {
		t.Fatalf("Convolve() error = %v, want nil", err)
	}

	globalMax := 0.0
	for _, buf := range res.Azimuths {
		azimuthMax := 0.0
		for _, s := range buf.Channels[0] {
			if a := math.Abs(s); a > azimuthMax {
				azimuthMax = a
			}
		}
		if azimuthMax > 1+1e-12 {
			t.Errorf("azimuth peak = %v, exceeds 1", azimuthMax)
		}
		if azimuthMax > globalMax {
			globalMax = azimuthMax
		}
	}

	if math.Abs(globalMax-1) > 1e-12 {
		t.Errorf("global peak after normalization = %v, want 1", globalMax)
	}
}

func TestConvolve_SignedAmplitude(t *testing.T) {
	t.Parallel()

	// Bin 0 of every position carries a positive 0.5 and a larger
	// negative -0.8, so the signed amplitude must come out negative.
	rows := make(map[hrir.Position][][]float64)
	for _, p := range hrir.Positions {
		pr := make([][]float64, hrir.NumAzimuths)
		for a := range pr {
			row := make([]float64, hrir.IRLength)
			row[0] = 0.5
			row[10] = -0.8
			pr[a] = row
		}
		rows[p] = pr
	}
	grid, err := hrir.New(rows)
	if err != nil {
		t.Fatal(err)
	}

	res, err := spatial.Convolve(unitImpulse(512, 8000), grid, hrir.Left, 180)
	if err != nil {
		t.Fatalf("Convolve() error = %v, want nil", err)
	}

	if len(res.Azimuths) != 2 {
		t.Fatalf("got %d azimuths, want 2", len(res.Azimuths))
	}
	if math.Abs(res.Amplitudes[0]-(-0.8)) > 1e-9 {
		t.Errorf("Amplitudes[0] = %v, want -0.8 (signed)", res.Amplitudes[0])
	}
	if math.Abs(res.Peak-0.8) > 1e-9 {
		t.Errorf("Peak = %v, want 0.8", res.Peak)
	}
}

func TestConvolve_TrimsUniformly(t *testing.T) {
	t.Parallel()

	// Impulse IRs at delay 0: convolution output is the source itself,
	// so the one-block tail is exact silence and must be trimmed from
	// every azimuth at the same point.
	grid := audiotest.ImpulseGrid()
	samples := make([]float64, 2048)
	for i := range samples {
		samples[i] = math.Sin(float64(i) * 0.01)
	}
	samples[2047] = 0.5 // keep the final sample nonzero
	src := audio.Mono(samples, 48000)

	res, err := spatial.Convolve(src, grid, hrir.Right, 90)
	if err != nil {
		t.Fatalf("Convolve() error = %v, want nil", err)
	}

	for a, buf := range res.Azimuths {
		if buf.Frames() != 2048 {
			t.Errorf("azimuth %d trimmed length = %d, want 2048", a, buf.Frames())
		}
	}
}

func TestConvolve_RejectsNonPowerOfTwo(t *testing.T) {
	t.Parallel()

	grid := audiotest.ImpulseGrid()
	src := audio.Mono(make([]float64, 1000), 48000)

	_, err := spatial.Convolve(src, grid, hrir.Left, 15)
	if !errors.Is(err, spatial.ErrSourceLength) {
		t.Errorf("Convolve() error = %v, want ErrSourceLength", err)
	}
	if !errors.Is(err, audio.ErrInvalidArgument) {
		t.Errorf("Convolve() error = %v, want category ErrInvalidArgument", err)
	}
}

func TestConvolve_RejectsBadAzimuthStep(t *testing.T) {
	t.Parallel()

	grid := audiotest.ImpulseGrid()
	src := unitImpulse(512, 48000)

	for _, step := range []int{7, 200, 0, -5, 3} {
		_, err := spatial.Convolve(src, grid, hrir.Left, step)
		if !errors.Is(err, spatial.ErrAzimuthStep) {
			t.Errorf("Convolve(step=%d) error = %v, want ErrAzimuthStep", step, err)
		}
	}
}

func TestConvolve_RejectsEmptySource(t *testing.T) {
	t.Parallel()

	grid := audiotest.ImpulseGrid()

	_, err := spatial.Convolve(&audio.Buffer{}, grid, hrir.Left, 15)
	if !errors.Is(err, audio.ErrInvalidState) {
		t.Errorf("Convolve() error = %v, want ErrInvalidState", err)
	}
}

func TestConvolve_ShortSourceSingleBlock(t *testing.T) {
	t.Parallel()

	// A 256-sample source still forms one full block.
	grid := audiotest.ImpulseGrid()
	samples := make([]float64, 256)
	samples[0] = 1
	samples[255] = -0.5
	src := audio.Mono(samples, 8000)

	res, err := spatial.Convolve(src, grid, hrir.Front, 120)
	if err != nil {
		t.Fatalf("Convolve() error = %v, want nil", err)
	}

	if len(res.Azimuths) != 3 {
		t.Fatalf("got %d azimuths, want 3", len(res.Azimuths))
	}
	if got := res.Azimuths[0].Frames(); got != 256 {
		t.Errorf("trimmed length = %d, want 256", got)
	}
}
