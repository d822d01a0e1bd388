// Package testutil provides reusable helpers and signal generators for the
// converter tests.
package testutil

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

// Default tolerances for various test scenarios.
const (
	// Float32ULP is one unit of float32 rounding near full scale.
	Float32ULP = 1.0 / (1 << 23)

	// InterpolationTolerance covers the float32 error of s0 + frac*(s1-s0).
	InterpolationTolerance = 1e-6
)

const twoPi = 2 * math.Pi

// AssertFloat32Equal verifies two slices have equal length and agree
// element-wise within tolerance.
func AssertFloat32Equal(t *testing.T, expected, actual []float32, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"mismatch at index %d: expected %v, got %v", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertSlicesClose compares two float32 slices through gonum's
// floats.EqualApprox after widening to float64.
func AssertSlicesClose(t *testing.T, expected, actual []float32, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	return assert.True(t, floats.EqualApprox(Widen(expected), Widen(actual), tolerance), msgAndArgs...)
}

// AssertNoNaNOrInf verifies that no element is NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(f, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [minVal, maxVal].
func AssertAllInRange(t *testing.T, s []float32, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if float64(v) < minVal || float64(v) > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// Widen copies a float32 slice into a new float64 slice.
func Widen(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

// MaxAbs returns the largest magnitude in s.
func MaxAbs(s []float32) float64 {
	if len(s) == 0 {
		return 0
	}
	w := Widen(s)
	return math.Max(floats.Max(w), -floats.Min(w))
}

// SineInt16 generates a sine wave of n int16 samples with the given peak.
func SineInt16(n int, freq, rate float64, peak int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(math.Round(float64(peak) * math.Sin(twoPi*freq*float64(i)/rate)))
	}
	return out
}

// SineFloat32 generates an interleaved sine wave of frames*channels samples.
// Channel c is phase-shifted by c radians so channels are distinguishable.
func SineFloat32(frames, channels int, freq, rate float64, peak float32) []float32 {
	out := make([]float32, frames*channels)
	for i := range frames {
		for c := range channels {
			phase := twoPi*freq*float64(i)/rate + float64(c)
			out[i*channels+c] = peak * float32(math.Sin(phase))
		}
	}
	return out
}

// Ramp returns frames*channels interleaved samples where frame i of
// channel c holds i + c*offset.
func Ramp(frames, channels int, offset float32) []float32 {
	out := make([]float32, frames*channels)
	for i := range frames {
		for c := range channels {
			out[i*channels+c] = float32(i) + float32(c)*offset
		}
	}
	return out
}

// Int16Bytes encodes samples as little-endian bytes.
func Int16Bytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// Float32Bytes encodes samples as little-endian bytes.
func Float32Bytes(samples []float32) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(s))
	}
	return out
}

// BytesFloat32 decodes little-endian float32 bytes.
func BytesFloat32(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}
