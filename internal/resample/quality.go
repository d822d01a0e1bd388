package resample

import (
	"errors"
	"fmt"
)

// Quality selects the resampling strategy.
type Quality int

const (
	// LowLatency uses linear interpolation.
	LowLatency Quality = iota

	// HighQuality uses libsamplerate's best sinc converter when it is
	// installed and falls back to LowLatency otherwise.
	HighQuality
)

// Wire names of the quality tags.
const (
	lowLatencyTag  = "low_latency"
	highQualityTag = "high_quality"
)

// ErrUnknownQuality indicates an unrecognized quality tag or value.
var ErrUnknownQuality = errors.New("quality must be 'low_latency' or 'high_quality'")

// String returns the quality tag.
func (q Quality) String() string {
	switch q {
	case LowLatency:
		return lowLatencyTag
	case HighQuality:
		return highQualityTag
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// ParseQuality maps "low_latency" and "high_quality" to a Quality.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case lowLatencyTag:
		return LowLatency, nil
	case highQualityTag:
		return HighQuality, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrUnknownQuality, s)
	}
}
