package detect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-pcm-converter/internal/testutil"
)

const (
	testRate = 48000.0
	testFreq = 440.0
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want Format
	}{
		{
			name: "all_zero_400",
			buf:  make([]byte, 400),
			want: Unknown,
		},
		{
			name: "int16_sine_peak_8000",
			buf:  testutil.Int16Bytes(testutil.SineInt16(200, testFreq, testRate, 8000)),
			want: Int16,
		},
		{
			name: "float32_sine_peak_0.5",
			buf:  testutil.Float32Bytes(testutil.SineFloat32(100, 1, testFreq, testRate, 0.5)),
			want: Float32,
		},
		{
			// 11.0 is rejected as float; its high halves read as loud int16.
			name: "float32_above_envelope",
			buf:  testutil.Float32Bytes(constFloat32(100, 11)),
			want: Int16,
		},
		{
			name: "float32_at_envelope",
			buf:  testutil.Float32Bytes(constFloat32(100, 10)),
			want: Float32,
		},
		{
			// 201 samples: not a multiple of 4 bytes, float branch skipped.
			name: "int16_near_silence",
			buf:  testutil.Int16Bytes(constInt16(201, 100)),
			want: Unknown,
		},
		{
			name: "int16_just_above_floor",
			buf:  testutil.Int16Bytes(constInt16(200, -101)),
			want: Int16,
		},
		{
			name: "int16_min_value",
			buf:  testutil.Int16Bytes(constInt16(201, math.MinInt16)),
			want: Int16,
		},
		{
			name: "odd_length",
			buf:  oddBuffer(401),
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.buf))
		})
	}
}

func TestDetect_ShortBufferIsUnknown(t *testing.T) {
	for _, n := range []int{0, 1, 2, 4, 200, 396, 399} {
		loud := testutil.Int16Bytes(testutil.SineInt16(200, testFreq, testRate, 30000))
		assert.Equal(t, Unknown, Detect(loud[:n]), "len=%d", n)
	}
}

// TestDetect_NaNRejectsFloat32 places a NaN in the float prefix. The same
// bytes read as int16 carry a loud signal, so the int16 branch wins.
func TestDetect_NaNRejectsFloat32(t *testing.T) {
	samples := testutil.SineFloat32(100, 1, testFreq, testRate, 0.5)
	samples[10] = float32(math.NaN())
	assert.Equal(t, Int16, Detect(testutil.Float32Bytes(samples)))
}

func TestDetect_InfRejectsFloat32(t *testing.T) {
	samples := testutil.SineFloat32(100, 1, testFreq, testRate, 0.5)
	samples[0] = float32(math.Inf(-1))
	assert.NotEqual(t, Float32, Detect(testutil.Float32Bytes(samples)))
}

// TestDetect_OnlyPrefixInspected puts garbage after the first 100 samples.
func TestDetect_OnlyPrefixInspected(t *testing.T) {
	samples := testutil.SineFloat32(300, 1, testFreq, testRate, 0.5)
	for i := 100; i < len(samples); i++ {
		samples[i] = float32(math.NaN())
	}
	assert.Equal(t, Float32, Detect(testutil.Float32Bytes(samples)))
}

// TestDetect_Int16OddSampleCount has a length divisible by 2 but not 4.
func TestDetect_Int16OddSampleCount(t *testing.T) {
	buf := testutil.Int16Bytes(testutil.SineInt16(201, testFreq, testRate, 8000))
	assert.Equal(t, Int16, Detect(buf))
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "int16", Int16.String())
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "unknown", Format(7).String())
}

func constFloat32(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func constInt16(n int, v int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func oddBuffer(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i*37 + 11)
	}
	return out
}
