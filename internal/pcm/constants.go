package pcm

// Int16Scale maps the full int16 range into [-1, 1). It is a power of two,
// so every conversion strategy produces bit-identical results.
const Int16Scale = float32(1.0 / 32768.0)

// Sample widths in bytes.
const (
	BytesPerInt16   = 2
	BytesPerFloat32 = 4
)

// Batch widths of the vector strategies.
const (
	batch8Width  = 8
	batch16Width = 16
)

// Clamp bounds used when quantizing back to int16.
const (
	int16Max = 32767
	int16Min = -32768
)
