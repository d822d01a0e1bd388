package resample

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-pcm-converter/internal/testutil"
)

// =============================================================================
// Identity and Shape
// =============================================================================

// TestLinear_IdentityIsExactCopy covers ratio 1 for a range of shapes.
func TestLinear_IdentityIsExactCopy(t *testing.T) {
	for _, channels := range []int{1, 2, 3, 8} {
		for _, frames := range []int{1, 2, 3, 17, 480} {
			src := testutil.SineFloat32(frames, channels, 997, 48000, 0.9)
			dst := make([]float32, len(src))

			Linear(dst, src, frames, frames, channels)
			require.Equal(t, src, dst, "frames=%d channels=%d", frames, channels)
		}
	}
}

func TestLinear_Upsample2x(t *testing.T) {
	src := []float32{0, 10, 20, 30}
	dst := make([]float32, 8)

	Linear(dst, src, 4, 8, 1)
	// The last two positions (3.0 and 3.5) have no successor and hold 30.
	assert.Equal(t, []float32{0, 5, 10, 15, 20, 25, 30, 30}, dst)
}

func TestLinear_Downsample2x(t *testing.T) {
	src := []float32{0, 1, 2, 3, 4, 5, 6, 7}
	dst := make([]float32, 4)

	Linear(dst, src, 8, 4, 1)
	assert.Equal(t, []float32{0, 2, 4, 6}, dst)
}

func TestLinear_StereoChannelsIndependent(t *testing.T) {
	// Left ramps up, right ramps down.
	src := []float32{0, 100, 2, 98, 4, 96}
	dst := make([]float32, 12)

	Linear(dst, src, 3, 6, 2)
	assert.Equal(t, []float32{0, 100, 1, 99, 2, 98, 3, 97, 4, 96, 4, 96}, dst)
}

func TestLinear_NonIntegerRatio(t *testing.T) {
	const (
		srcFrames = 441
		dstFrames = 480
		channels  = 2
	)
	src := testutil.Ramp(srcFrames, channels, 1000)
	dst := make([]float32, dstFrames*channels)

	Linear(dst, src, srcFrames, dstFrames, channels)

	ratio := float64(srcFrames) / float64(dstFrames)
	for i := range dstFrames {
		pos := float64(i) * ratio
		want := math.Min(pos, srcFrames-1)
		if int(pos)+1 >= srcFrames {
			want = math.Floor(pos)
		}
		for c := range channels {
			assert.InDelta(t, want+float64(c)*1000, dst[i*channels+c], 1e-3, "frame %d ch %d", i, c)
		}
	}
}

func TestLinear_SingleSourceFrameHolds(t *testing.T) {
	src := []float32{0.25, -0.75}
	dst := make([]float32, 10)

	Linear(dst, src, 1, 5, 2)
	for i := 0; i < len(dst); i += 2 {
		assert.Equal(t, src, dst[i:i+2])
	}
}

func TestLinear_NoExtrapolationBeyondInput(t *testing.T) {
	src := testutil.SineFloat32(100, 1, 3000, 48000, 0.9)
	dst := make([]float32, 1000)

	Linear(dst, src, 100, 1000, 1)
	testutil.AssertAllInRange(t, dst, -0.9, 0.9)
	testutil.AssertNoNaNOrInf(t, dst)
}

// =============================================================================
// Degenerate Inputs
// =============================================================================

func TestLinear_ZeroDestinationIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		Linear(nil, []float32{1, 2}, 2, 0, 1)
	})
}

func TestLinear_ZeroSourceWritesSilence(t *testing.T) {
	dst := []float32{1, 1, 1}
	Linear(dst, nil, 0, 3, 1)
	assert.Equal(t, []float32{0, 0, 0}, dst)
}

func TestLinear_DoesNotWritePastFrames(t *testing.T) {
	dst := []float32{9, 9, 9, 9, 9}
	Linear(dst, []float32{1, 2}, 2, 4, 1)
	assert.InDelta(t, 9, dst[4], 0)
}

// =============================================================================
// Spectral Sanity
// =============================================================================

// TestLinear_PreservesToneFrequency resamples a 1 kHz tone from 44.1 kHz
// to 48 kHz and checks that the spectral peak stays at 1 kHz.
func TestLinear_PreservesToneFrequency(t *testing.T) {
	const (
		srcRate   = 44100.0
		dstRate   = 48000.0
		tone      = 1000.0
		dstFrames = 4800
	)
	srcFrames := int(dstFrames * srcRate / dstRate)

	src := testutil.SineFloat32(srcFrames, 1, tone, srcRate, 0.8)
	dst := make([]float32, dstFrames)
	Linear(dst, src, srcFrames, dstFrames, 1)

	fft := fourier.NewFFT(dstFrames)
	coeffs := fft.Coefficients(nil, testutil.Widen(dst))

	peak := 0
	for k := 1; k < len(coeffs); k++ {
		if cmplx.Abs(coeffs[k]) > cmplx.Abs(coeffs[peak]) {
			peak = k
		}
	}

	assert.InDelta(t, tone, fft.Freq(peak)*dstRate, dstRate/dstFrames)
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkLinear(b *testing.B) {
	const (
		srcFrames = 441
		dstFrames = 480
		channels  = 2
	)
	src := testutil.SineFloat32(srcFrames, channels, 1000, 44100, 0.5)
	dst := make([]float32, dstFrames*channels)

	b.ReportAllocs()
	for b.Loop() {
		Linear(dst, src, srcFrames, dstFrames, channels)
	}
}
