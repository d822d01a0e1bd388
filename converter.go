package converter

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-pcm-converter/internal/pcm"
	"github.com/tphakala/go-pcm-converter/internal/resample"
)

// Common errors returned by the converter. All of them are validation
// errors reported before any output is produced.
var (
	// ErrInvalidBufferSize indicates a buffer whose length does not match
	// its sample width or channel count.
	ErrInvalidBufferSize = errors.New("invalid buffer size")

	// ErrInvalidQuality indicates an unrecognized quality tag.
	ErrInvalidQuality = resample.ErrUnknownQuality

	// ErrInvalidConfig indicates invalid rates, channels or settings.
	ErrInvalidConfig = errors.New("invalid converter configuration")

	// ErrBufferTooLarge indicates an output size that cannot be allocated.
	ErrBufferTooLarge = errors.New("output buffer too large")

	// ErrUnsupportedFormat indicates a source format that cannot be converted.
	ErrUnsupportedFormat = errors.New("unsupported source format")
)

// ConvertInt16ToFloat32 converts little-endian int16 PCM to little-endian
// float32 PCM normalized by 1/32768. The output is twice as long as the
// input. An empty input yields an empty output.
func ConvertInt16ToFloat32(data []byte) ([]byte, error) {
	if len(data)%bytesPerInt16 != 0 {
		return nil, fmt.Errorf("%w: int16 input must be a multiple of %d bytes, got %d",
			ErrInvalidBufferSize, bytesPerInt16, len(data))
	}

	n := len(data) / bytesPerInt16
	if n > math.MaxInt/bytesPerFloat32 {
		return nil, fmt.Errorf("%w: %d samples", ErrBufferTooLarge, n)
	}

	samples := make([]int16, n)
	pcm.DecodeInt16LE(samples, data)

	floats := make([]float32, n)
	pcm.Int16ToFloat32(floats, samples)

	out := make([]byte, n*bytesPerFloat32)
	pcm.EncodeFloat32LE(out, floats)
	return out, nil
}

// Resample converts interleaved little-endian float32 PCM from srcRate to
// dstRate. quality is "low_latency" or "high_quality". The output holds
// floor(srcFrames*dstRate/srcRate) frames.
func Resample(data []byte, srcRate, dstRate, channels int, quality string) ([]byte, error) {
	q, err := resample.ParseQuality(quality)
	if err != nil {
		return nil, err
	}
	return resampleBytes(resample.Default(), data, srcRate, dstRate, channels, q)
}

// ResampleFloat32 resamples srcFrames interleaved frames from src into
// dstFrames frames in dst using the process-wide engine. It is the slice
// level counterpart of Resample for callers that already hold float32
// samples.
func ResampleFloat32(dst, src []float32, srcFrames, dstFrames, channels int, q Quality) error {
	if err := validateChannels(channels); err != nil {
		return err
	}
	if srcFrames < 0 || dstFrames < 0 {
		return fmt.Errorf("%w: negative frame count", ErrInvalidBufferSize)
	}
	if len(src) < srcFrames*channels {
		return fmt.Errorf("%w: src holds %d samples, need %d", ErrInvalidBufferSize, len(src), srcFrames*channels)
	}
	if len(dst) < dstFrames*channels {
		return fmt.Errorf("%w: dst holds %d samples, need %d", ErrInvalidBufferSize, len(dst), dstFrames*channels)
	}
	return resample.Default().Resample(dst, src, srcFrames, dstFrames, channels, q)
}

func resampleBytes(e *resample.Engine, data []byte, srcRate, dstRate, channels int, q Quality) ([]byte, error) {
	if err := validateChannels(channels); err != nil {
		return nil, err
	}
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("%w: sample rates must be positive, got %d and %d", ErrInvalidConfig, srcRate, dstRate)
	}

	frameBytes := channels * bytesPerFloat32
	if len(data)%frameBytes != 0 {
		return nil, fmt.Errorf("%w: input must be a multiple of %d bytes (channels*4), got %d",
			ErrInvalidBufferSize, frameBytes, len(data))
	}

	srcFrames := len(data) / frameBytes
	dstFrames, err := resample.DstFrames(srcFrames, srcRate, dstRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBufferTooLarge, err)
	}
	if dstFrames > math.MaxInt/frameBytes {
		return nil, fmt.Errorf("%w: %d frames", ErrBufferTooLarge, dstFrames)
	}

	src := make([]float32, srcFrames*channels)
	pcm.DecodeFloat32LE(src, data)

	dst := make([]float32, dstFrames*channels)
	if err := e.Resample(dst, src, srcFrames, dstFrames, channels, q); err != nil {
		return nil, err
	}

	out := make([]byte, dstFrames*frameBytes)
	pcm.EncodeFloat32LE(out, dst)
	return out, nil
}

func validateChannels(channels int) error {
	if channels < 1 {
		return fmt.Errorf("%w: channels must be at least 1", ErrInvalidConfig)
	}
	if channels > maxChannels {
		return fmt.Errorf("%w: too many channels (max %d)", ErrInvalidConfig, maxChannels)
	}
	return nil
}

// BytesPerFrame returns the size of one interleaved float32 frame.
func BytesPerFrame(channels int) int {
	return channels * bytesPerFloat32
}

// FrameCount returns the number of whole float32 frames in data.
func FrameCount(data []byte, channels int) int {
	if channels < 1 {
		return 0
	}
	return len(data) / BytesPerFrame(channels)
}
