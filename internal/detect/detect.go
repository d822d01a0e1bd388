// Package detect guesses the sample encoding of an untyped PCM buffer.
//
// Capture APIs sometimes deliver a different encoding than the one that was
// negotiated, so callers classify the first buffer before converting it.
// The result is advisory: it inspects a short prefix and can be fooled.
package detect

import (
	"encoding/binary"
	"math"
)

// Format is an inferred sample encoding.
type Format int

const (
	// Unknown means neither interpretation looked like audio.
	Unknown Format = iota

	// Int16 is 16-bit signed little-endian PCM.
	Int16

	// Float32 is 32-bit IEEE-754 little-endian PCM.
	Float32
)

// String returns "int16", "float32" or "unknown".
func (f Format) String() string {
	switch f {
	case Int16:
		return "int16"
	case Float32:
		return "float32"
	default:
		return "unknown"
	}
}

const (
	// MinBytes is the smallest buffer that is classified at all
	// (100 samples at either width).
	MinBytes = 400

	// maxProbeSamples bounds how much of the buffer is inspected.
	maxProbeSamples = 100

	// maxFloatMagnitude is a generous envelope around [-1, 1]. Float
	// buffers above it are treated as misread integers.
	maxFloatMagnitude = 10.0

	// minInt16Magnitude keeps near-silent noise from passing as signal.
	minInt16Magnitude = 100

	bytesPerInt16   = 2
	bytesPerFloat32 = 4
)

// Detect classifies buf. Buffers shorter than MinBytes are Unknown.
// Float32 is tried first; a NaN or infinity in the probed prefix rejects it.
func Detect(buf []byte) Format {
	if len(buf) < MinBytes {
		return Unknown
	}

	if len(buf)%bytesPerFloat32 == 0 && looksLikeFloat32(buf) {
		return Float32
	}

	if len(buf)%bytesPerInt16 == 0 && looksLikeInt16(buf) {
		return Int16
	}

	return Unknown
}

func looksLikeFloat32(buf []byte) bool {
	n := min(len(buf)/bytesPerFloat32, maxProbeSamples)

	var maxAbs float64
	for i := range n {
		v := float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i*bytesPerFloat32:])))
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}

	return maxAbs > 0 && maxAbs <= maxFloatMagnitude
}

func looksLikeInt16(buf []byte) bool {
	n := min(len(buf)/bytesPerInt16, maxProbeSamples)

	// int, not int16: |-32768| does not fit in int16.
	maxAbs := 0
	for i := range n {
		v := int(int16(binary.LittleEndian.Uint16(buf[i*bytesPerInt16:])))
		if v < 0 {
			v = -v
		}
		maxAbs = max(maxAbs, v)
	}

	return maxAbs > minInt16Magnitude
}
