// Package pcm converts between PCM sample encodings.
//
// The int16 to float32 normalization has three numerically equivalent
// strategies. The widest one the host supports is picked per call from the
// cached capability set in internal/cpu.
package pcm

import (
	"github.com/tphakala/go-pcm-converter/internal/cpu"
)

// Strategy identifies an execution strategy for Int16ToFloat32.
type Strategy int

const (
	// StrategyScalar converts one sample at a time.
	StrategyScalar Strategy = iota

	// StrategyBatch8 converts blocks of 8 samples (baseline and mid tiers).
	StrategyBatch8

	// StrategyBatch16 converts blocks of 16 samples (advanced tier).
	StrategyBatch16
)

// convertFunc is the common signature of all strategies.
type convertFunc func(dst []float32, src []int16)

// strategies is indexed by Strategy.
var strategies = [...]convertFunc{
	StrategyScalar:  Int16ToFloat32Scalar,
	StrategyBatch8:  Int16ToFloat32Batch8,
	StrategyBatch16: Int16ToFloat32Batch16,
}

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyScalar:
		return "scalar"
	case StrategyBatch8:
		return "batch8"
	case StrategyBatch16:
		return "batch16"
	default:
		return "unknown"
	}
}

// Width returns the number of samples processed per block.
func (s Strategy) Width() int {
	switch s {
	case StrategyBatch8:
		return batch8Width
	case StrategyBatch16:
		return batch16Width
	default:
		return 1
	}
}

// Convert runs the strategy. Unknown strategies use the scalar path.
func (s Strategy) Convert(dst []float32, src []int16) {
	if s < StrategyScalar || int(s) >= len(strategies) {
		s = StrategyScalar
	}
	strategies[s](dst, src)
}

// StrategyFor maps a capability level to a conversion strategy.
func StrategyFor(level cpu.Level) Strategy {
	switch level {
	case cpu.LevelAdvanced:
		return StrategyBatch16
	case cpu.LevelMid, cpu.LevelBaseline:
		return StrategyBatch8
	default:
		return StrategyScalar
	}
}

// Selected returns the strategy for the current host.
func Selected() Strategy {
	return StrategyFor(cpu.DetectFeatures().Level())
}

// Int16ToFloat32 writes src[i] / 32768 into dst[i] using the fastest
// strategy the host supports. dst must hold at least len(src) values.
// It does not allocate and is safe for concurrent use on disjoint buffers.
func Int16ToFloat32(dst []float32, src []int16) {
	Selected().Convert(dst, src)
}
