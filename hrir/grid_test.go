// SPDX-License-Identifier: EPL-2.0

package hrir_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/auris-audio/auris/audio"
	"github.com/auris-audio/auris/hrir"
	"github.com/auris-audio/auris/internal/audiotest"
)

func TestLoad_FullGrid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := audiotest.WriteGridDir(dir, func(p hrir.Position, a int) []float64 {
		row := make([]float64, hrir.IRLength)
		row[0] = float64(a) / 100
		row[1] = float64(p) / 10
		return row
	})
	if err != nil {
		t.Fatalf("writing fixture grid: %v", err)
	}

	g, err := hrir.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	row := g.Impulse(hrir.Front, 30)
	if len(row) != hrir.IRLength {
		t.Fatalf("Impulse() length = %d, want %d", len(row), hrir.IRLength)
	}
	if row[0] != 0.3 {
		t.Errorf("Impulse(front, 30)[0] = %v, want 0.3", row[0])
	}
	if row[1] != float64(hrir.Front)/10 {
		t.Errorf("Impulse(front, 30)[1] = %v, want %v", row[1], float64(hrir.Front)/10)
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := hrir.Load(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, audio.ErrMissingResource) {
		t.Errorf("Load() error = %v, want ErrMissingResource", err)
	}
}

func TestLoad_MissingPositionFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := audiotest.WriteGridDir(dir, func(hrir.Position, int) []float64 {
		return make([]float64, hrir.IRLength)
	}); err != nil {
		t.Fatalf("writing fixture grid: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "back.csv")); err != nil {
		t.Fatal(err)
	}

	_, err := hrir.Load(dir)
	if !errors.Is(err, audio.ErrMissingResource) {
		t.Errorf("Load() error = %v, want ErrMissingResource", err)
	}
}

func TestLoad_WrongLineCount(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := audiotest.WriteGridDir(dir, func(hrir.Position, int) []float64 {
		return make([]float64, hrir.IRLength)
	}); err != nil {
		t.Fatalf("writing fixture grid: %v", err)
	}

	// Truncate left.csv to 10 lines.
	path := filepath.Join(dir, "left.csv")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.SplitAfter(string(data), "\n")
	if err := os.WriteFile(path, []byte(strings.Join(lines[:10], "")), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = hrir.Load(dir)
	if !errors.Is(err, audio.ErrMalformedInput) {
		t.Errorf("Load() error = %v, want ErrMalformedInput", err)
	}
}

func TestLoad_WrongValueCount(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := audiotest.WriteGridDir(dir, func(p hrir.Position, a int) []float64 {
		if p == hrir.Right && a == 5 {
			return make([]float64, hrir.IRLength-1)
		}
		return make([]float64, hrir.IRLength)
	}); err != nil {
		t.Fatalf("writing fixture grid: %v", err)
	}

	_, err := hrir.Load(dir)
	if !errors.Is(err, audio.ErrMalformedInput) {
		t.Errorf("Load() error = %v, want ErrMalformedInput", err)
	}
}

func TestLoad_UnparsableValue(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := audiotest.WriteGridDir(dir, func(hrir.Position, int) []float64 {
		return make([]float64, hrir.IRLength)
	}); err != nil {
		t.Fatalf("writing fixture grid: %v", err)
	}

	path := filepath.Join(dir, "front.csv")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	corrupted := strings.Replace(string(data), "0,", "oops,", 1)
	if err := os.WriteFile(path, []byte(corrupted), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = hrir.Load(dir)
	if !errors.Is(err, audio.ErrMalformedInput) {
		t.Errorf("Load() error = %v, want ErrMalformedInput", err)
	}
}

func TestNew_CopiesRows(t *testing.T) {
	t.Parallel()

	rows := make(map[hrir.Position][][]float64)
	for _, p := range hrir.Positions {
		pr := make([][]float64, hrir.NumAzimuths)
		for a := range pr {
			pr[a] = make([]float64, hrir.IRLength)
			pr[a][0] = 1
		}
		rows[p] = pr
	}

	g, err := hrir.New(rows)
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}

	// Mutating the input after construction must not reach the grid.
	rows[hrir.Left][0][0] = 99
	if got := g.Impulse(hrir.Left, 0)[0]; got != 1 {
		t.Errorf("Impulse(left, 0)[0] = %v after input mutation, want 1", got)
	}

	// Mutating a returned row must not reach the grid either.
	row := g.Impulse(hrir.Left, 0)
	row[0] = -5
	if got := g.Impulse(hrir.Left, 0)[0]; got != 1 {
		t.Errorf("Impulse(left, 0)[0] = %v after row mutation, want 1", got)
	}
}
