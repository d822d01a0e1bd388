package converter

import (
	"fmt"
	"log/slog"

	"github.com/go-audio/audio"

	"github.com/tphakala/go-pcm-converter/internal/pcm"
	"github.com/tphakala/go-pcm-converter/internal/resample"
)

// Config holds Converter configuration. The zero value converts to the
// fixed 48 kHz format with LowLatency resampling.
type Config struct {
	// Quality is the requested resampling quality. HighQuality is
	// downgraded to LowLatency when no backend is available.
	Quality Quality

	// TargetRate is the output sample rate of ToFixedFormat in Hz.
	// Zero means FixedSampleRate.
	TargetRate int

	// TargetChannels is the channel count ToFixedFormat expects.
	// Zero means FixedChannels. Channel mixing is not performed.
	TargetChannels int

	// Backend replaces libsamplerate for HighQuality resampling.
	// Nil uses the process-wide libsamplerate binding.
	Backend Backend
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Quality {
	case LowLatency, HighQuality:
	default:
		return fmt.Errorf("%w: unknown quality %v", ErrInvalidConfig, c.Quality)
	}

	if c.TargetRate < 0 {
		return fmt.Errorf("%w: target rate must not be negative", ErrInvalidConfig)
	}

	if c.TargetChannels < 0 || c.TargetChannels > maxChannels {
		return fmt.Errorf("%w: target channels must be 0-%d", ErrInvalidConfig, maxChannels)
	}

	return nil
}

// Converter bundles a quality setting and a target format. It is
// immutable and safe for concurrent use.
type Converter struct {
	quality        Quality
	targetRate     int
	targetChannels int
	engine         *resample.Engine
}

// NewConverter creates a converter. A nil cfg uses the zero Config.
func NewConverter(cfg *Config) (*Converter, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	engine := resample.Default()
	if cfg.Backend != nil {
		engine = resample.New(cfg.Backend)
	}

	c := &Converter{
		quality:        cfg.Quality,
		targetRate:     cfg.TargetRate,
		targetChannels: cfg.TargetChannels,
		engine:         engine,
	}
	if c.targetRate == 0 {
		c.targetRate = FixedSampleRate
	}
	if c.targetChannels == 0 {
		c.targetChannels = FixedChannels
	}

	if c.quality == HighQuality && !engine.HighQualityAvailable() {
		slog.Warn("high quality resampling requested but libsamplerate is not available, using low latency")
		c.quality = LowLatency
	}

	return c, nil
}

// Quality returns the effective resampling quality.
func (c *Converter) Quality() Quality {
	return c.quality
}

// TargetRate returns the output rate of ToFixedFormat.
func (c *Converter) TargetRate() int {
	return c.targetRate
}

// Int16ToFloat32 is ConvertInt16ToFloat32.
func (c *Converter) Int16ToFloat32(data []byte) ([]byte, error) {
	return ConvertInt16ToFloat32(data)
}

// Resample converts interleaved float32 PCM from srcRate to dstRate at
// the converter's quality.
func (c *Converter) Resample(data []byte, srcRate, dstRate, channels int) ([]byte, error) {
	return resampleBytes(c.engine, data, srcRate, dstRate, channels, c.quality)
}

// ToFixedFormat converts data to float32 at the target rate.
//
// int16 input is normalized first; float32 input is used as is. FormatUnknown
// asks DetectFormat to classify the buffer and fails with
// ErrUnsupportedFormat if it cannot. Resampling is skipped when srcRate
// already equals the target rate. A channel count different from the target
// is logged and passed through unchanged, since channel mixing is not
// supported.
func (c *Converter) ToFixedFormat(data []byte, srcRate, srcChannels int, srcFormat Format) ([]byte, error) {
	if err := validateChannels(srcChannels); err != nil {
		return nil, err
	}

	if srcFormat == FormatUnknown {
		srcFormat = DetectFormat(data)
	}

	var floats []byte
	switch srcFormat {
	case FormatInt16:
		var err error
		if floats, err = ConvertInt16ToFloat32(data); err != nil {
			return nil, err
		}
	case FormatFloat32:
		floats = data
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, srcFormat)
	}

	if srcRate != c.targetRate {
		var err error
		if floats, err = c.Resample(floats, srcRate, c.targetRate, srcChannels); err != nil {
			return nil, err
		}
	} else if len(floats)%BytesPerFrame(srcChannels) != 0 {
		return nil, fmt.Errorf("%w: input must be a multiple of %d bytes (channels*4), got %d",
			ErrInvalidBufferSize, BytesPerFrame(srcChannels), len(floats))
	}

	if srcChannels != c.targetChannels {
		slog.Warn("channel conversion not supported, passing channels through",
			"src_channels", srcChannels, "target_channels", c.targetChannels)
	}

	return floats, nil
}

// FloatBuffer decodes interleaved float32 PCM into a go-audio buffer for
// callers already working with github.com/go-audio/audio.
func FloatBuffer(data []byte, rate, channels int) (*audio.Float32Buffer, error) {
	if err := validateChannels(channels); err != nil {
		return nil, err
	}
	if len(data)%BytesPerFrame(channels) != 0 {
		return nil, fmt.Errorf("%w: input must be a multiple of %d bytes (channels*4), got %d",
			ErrInvalidBufferSize, BytesPerFrame(channels), len(data))
	}

	samples := make([]float32, len(data)/bytesPerFloat32)
	pcm.DecodeFloat32LE(samples, data)

	return &audio.Float32Buffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  rate,
		},
		Data:           samples,
		SourceBitDepth: bytesPerFloat32 * 8,
	}, nil
}
