package pcm

import (
	"encoding/binary"
	"math"
)

// DecodeInt16LE reads little-endian int16 samples from src into dst.
// Trailing odd bytes are ignored.
func DecodeInt16LE(dst []int16, src []byte) {
	n := len(src) / BytesPerInt16
	dst = dst[:n]
	for i := range dst {
		dst[i] = int16(binary.LittleEndian.Uint16(src[i*BytesPerInt16:]))
	}
}

// EncodeInt16LE writes src into dst as little-endian int16.
func EncodeInt16LE(dst []byte, src []int16) {
	dst = dst[:len(src)*BytesPerInt16]
	for i, s := range src {
		binary.LittleEndian.PutUint16(dst[i*BytesPerInt16:], uint16(s))
	}
}

// DecodeFloat32LE reads little-endian IEEE-754 float32 samples.
// Trailing bytes that do not form a full sample are ignored.
func DecodeFloat32LE(dst []float32, src []byte) {
	n := len(src) / BytesPerFloat32
	dst = dst[:n]
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*BytesPerFloat32:]))
	}
}

// EncodeFloat32LE writes src into dst as little-endian float32.
func EncodeFloat32LE(dst []byte, src []float32) {
	dst = dst[:len(src)*BytesPerFloat32]
	for i, s := range src {
		binary.LittleEndian.PutUint32(dst[i*BytesPerFloat32:], math.Float32bits(s))
	}
}

// Float32ToInt16 quantizes normalized samples back to int16, clamping to
// the representable range. NaN maps to zero.
func Float32ToInt16(dst []int16, src []float32) {
	dst = dst[:len(src)]
	for i, s := range src {
		v := float64(s) * -int16Min
		switch {
		case math.IsNaN(v):
			dst[i] = 0
		case v >= int16Max:
			dst[i] = int16Max
		case v <= int16Min:
			dst[i] = int16Min
		default:
			dst[i] = int16(math.Round(v))
		}
	}
}
