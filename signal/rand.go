// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"crypto/rand"
	"encoding/binary"
)

// RandomSource yields uniform values in (-1, 1). The noise generators
// take it as a parameter so tests can script exact sequences.
type RandomSource interface {
	Float64() float64
}

// CryptoSource returns the default randomness source, backed by the
// operating system's cryptographic generator.
func CryptoSource() RandomSource {
	return cryptoSource{}
}

type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var b [8]byte
	// crypto/rand.Read never fails on supported platforms; it panics
	// internally if the kernel source is unusable.
	rand.Read(b[:])
	v := int64(binary.LittleEndian.Uint64(b[:]))
	return float64(v) / (1 << 63)
}
