package resample

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/tphakala/go-pcm-converter/internal/backend"
)

// Backend is an optional high quality resampler. Resample must fill
// dst[:dstFrames*channels] or return an error.
type Backend interface {
	Available() bool
	Resample(dst, src []float32, srcFrames, dstFrames, channels int) error
}

var (
	// ErrFrameOverflow indicates a frame count computation overflowed int.
	ErrFrameOverflow = errors.New("frame count overflows int")

	// ErrInvalidRate indicates a non-positive sample rate or frame count.
	ErrInvalidRate = errors.New("sample rates must be positive")
)

// Engine composes linear interpolation with an optional Backend.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	backend Backend
}

// New returns an engine that uses b for HighQuality requests.
// A nil b makes HighQuality behave exactly like LowLatency.
func New(b Backend) *Engine {
	return &Engine{backend: b}
}

var defaultEngine = New(backend.Shared{})

// Default returns the engine bound to the process-wide libsamplerate.
// The library is not probed until the first HighQuality request.
func Default() *Engine {
	return defaultEngine
}

// HighQualityAvailable reports whether HighQuality requests reach the backend.
func (e *Engine) HighQualityAvailable() bool {
	return e.backend != nil && e.backend.Available()
}

// Resample fills dst with dstFrames interleaved frames resampled from the
// srcFrames frames in src.
//
// LowLatency interpolates linearly. HighQuality hands the whole buffer to
// the backend; if the backend is missing or reports any failure the call
// falls back to linear interpolation and still succeeds. The only error is
// ErrUnknownQuality.
func (e *Engine) Resample(dst, src []float32, srcFrames, dstFrames, channels int, q Quality) error {
	switch q {
	case LowLatency:
		Linear(dst, src, srcFrames, dstFrames, channels)
		return nil
	case HighQuality:
		if e.HighQualityAvailable() {
			err := e.backend.Resample(dst, src, srcFrames, dstFrames, channels)
			if err == nil {
				return nil
			}
			slog.Debug("high quality resampling failed, using linear", "error", err,
				"src_frames", srcFrames, "dst_frames", dstFrames, "channels", channels)
		}
		Linear(dst, src, srcFrames, dstFrames, channels)
		return nil
	default:
		return fmt.Errorf("%w: got %v", ErrUnknownQuality, q)
	}
}

// DstFrames returns floor(srcFrames*dstRate/srcRate), the destination frame
// count for a rate conversion.
func DstFrames(srcFrames, srcRate, dstRate int) (int, error) {
	if srcFrames < 0 || srcRate <= 0 || dstRate <= 0 {
		return 0, fmt.Errorf("%w: frames=%d src_rate=%d dst_rate=%d", ErrInvalidRate, srcFrames, srcRate, dstRate)
	}
	if srcFrames != 0 && dstRate > math.MaxInt/srcFrames {
		return 0, fmt.Errorf("%w: %d frames at %d Hz", ErrFrameOverflow, srcFrames, dstRate)
	}
	return srcFrames * dstRate / srcRate, nil
}
