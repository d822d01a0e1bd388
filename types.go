package converter

import (
	"github.com/tphakala/go-pcm-converter/internal/backend"
	"github.com/tphakala/go-pcm-converter/internal/cpu"
	"github.com/tphakala/go-pcm-converter/internal/detect"
	"github.com/tphakala/go-pcm-converter/internal/pcm"
	"github.com/tphakala/go-pcm-converter/internal/resample"
)

// Quality selects the resampling strategy.
type Quality = resample.Quality

const (
	// LowLatency resamples by linear interpolation.
	LowLatency = resample.LowLatency

	// HighQuality resamples with libsamplerate when it is installed and
	// falls back to LowLatency otherwise.
	HighQuality = resample.HighQuality
)

// ParseQuality maps "low_latency" and "high_quality" to a Quality.
func ParseQuality(tag string) (Quality, error) {
	return resample.ParseQuality(tag)
}

// Format is a sample encoding as guessed by DetectFormat.
type Format = detect.Format

const (
	// FormatUnknown means the buffer could not be classified.
	FormatUnknown = detect.Unknown

	// FormatInt16 is 16-bit signed little-endian PCM.
	FormatInt16 = detect.Int16

	// FormatFloat32 is 32-bit float little-endian PCM.
	FormatFloat32 = detect.Float32
)

// Backend is a pluggable high quality resampler used by a Converter in
// place of libsamplerate. Resample must fill dst[:dstFrames*channels] or
// return an error, in which case the converter falls back to linear
// interpolation.
type Backend = resample.Backend

// Features reports the vector instruction tiers of the host CPU.
type Features struct {
	Baseline bool // SSE2 on amd64, NEON on arm64
	Mid      bool // AVX
	Advanced bool // AVX2

	// Strategy names the int16 conversion strategy in use.
	Strategy string

	// Architecture is the GOARCH the features were detected on.
	Architecture string
}

// CPUFeatures returns the cached capability set. The first call probes
// the CPU; later calls are lock-free reads of the cached result.
func CPUFeatures() Features {
	f := cpu.DetectFeatures()
	return Features{
		Baseline:     f.Baseline(),
		Mid:          f.Mid(),
		Advanced:     f.Advanced(),
		Strategy:     pcm.StrategyFor(f.Level()).String(),
		Architecture: f.Architecture,
	}
}

// Map returns the three tiers keyed by name.
func (f Features) Map() map[string]bool {
	return map[string]bool{
		"baseline": f.Baseline,
		"mid":      f.Mid,
		"advanced": f.Advanced,
	}
}

// HighQualityAvailable reports whether libsamplerate is bound. The first
// call resolves the library; the answer never changes afterwards.
func HighQualityAvailable() bool {
	return resample.Default().HighQualityAvailable()
}

// HighQualityLibrary returns the path libsamplerate was loaded from, or ""
// when it is not available.
func HighQualityLibrary() string {
	return backend.Load().Path()
}

// DetectFormat guesses whether data holds int16 or float32 samples. It
// needs at least 400 bytes and only inspects the first 100 samples, so the
// result is advisory. It never fails.
func DetectFormat(data []byte) Format {
	return detect.Detect(data)
}
