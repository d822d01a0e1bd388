package converter

// Channel constants
const (
	maxChannels = 256 // Maximum supported channel count
)

// Sample widths in bytes
const (
	bytesPerInt16   = 2
	bytesPerFloat32 = 4
)

// Fixed output format produced by Converter.ToFixedFormat.
const (
	// FixedSampleRate is the sample rate of the fixed format in Hz.
	FixedSampleRate = 48000

	// FixedChannels is the channel count of the fixed format.
	FixedChannels = 2
)

// Quality tags accepted by Resample.
const (
	QualityTagLowLatency  = "low_latency"
	QualityTagHighQuality = "high_quality"
)
