package utils

// FloatToPCM16 remaps a normalized sample to a 16-bit PCM value by
// scaling and truncating. Values outside [-1, 1] wrap rather than clip,
// matching the serializer contract.
func FloatToPCM16(x float64) uint16 {
	return uint16(int(x * 0x8000))
}

// FloatToPCM24 remaps a normalized sample to a 24-bit PCM value,
// returned as the three little-endian bytes.
func FloatToPCM24(x float64) (b0, b1, b2 byte) {
	n := int(x * 0x800000)
	return byte(n), byte(n >> 8), byte(n >> 16)
}

// PCM16ToFloat normalizes a signed 16-bit PCM value.
func PCM16ToFloat(v int16) float64 {
	return float64(v) / 0x8000
}

// PCM24ToFloat sign-extends and normalizes a 24-bit PCM value given as
// its raw unsigned magnitude.
func PCM24ToFloat(raw int) float64 {
	if raw > 0x800000 {
		raw -= 0x1000000
	}
	return float64(raw) / 0x800000
}
