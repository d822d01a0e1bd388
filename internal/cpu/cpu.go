// Package cpu detects the vector instruction tiers available on the host
// processor and caches the result for the lifetime of the process.
//
// Three tiers are reported, ordered by width and capability:
//
//   - baseline: SSE2 on amd64, ASIMD (NEON) on arm64
//   - mid:      AVX on amd64
//   - advanced: AVX2 on amd64
//
// Detection runs on the first query and is guarded by sync.Once, so
// concurrent first callers observe exactly one probe and the same result.
package cpu

import (
	"sync"
)

// Level collapses a Features record into the widest usable tier.
type Level int

const (
	// LevelScalar means no vector tier is available.
	LevelScalar Level = iota

	// LevelBaseline is SSE2 or NEON.
	LevelBaseline

	// LevelMid is AVX.
	LevelMid

	// LevelAdvanced is AVX2.
	LevelAdvanced
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelBaseline:
		return "baseline"
	case LevelMid:
		return "mid"
	case LevelAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// Features describes the vector extensions relevant to sample conversion.
type Features struct {
	HasSSE2 bool // x86-64 baseline
	HasAVX  bool
	HasAVX2 bool
	HasNEON bool // ARM Advanced SIMD

	// Architecture is runtime.GOARCH at detection time.
	Architecture string
}

// Baseline reports whether the baseline tier is present.
func (f Features) Baseline() bool {
	return f.HasSSE2 || f.HasNEON
}

// Mid reports whether the mid tier is present.
func (f Features) Mid() bool {
	return f.HasAVX
}

// Advanced reports whether the advanced tier is present.
func (f Features) Advanced() bool {
	return f.HasAVX2
}

// Level returns the widest tier present.
func (f Features) Level() Level {
	switch {
	case f.Advanced():
		return LevelAdvanced
	case f.Mid():
		return LevelMid
	case f.Baseline():
		return LevelBaseline
	default:
		return LevelScalar
	}
}

var (
	detectOnce       sync.Once
	detectedFeatures Features

	// forcedFeatures overrides detection in tests.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features of the current system.
// The probe runs once; later calls return the cached record.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})

	return detectedFeatures
}

// HasBaselineVector reports SSE2 (amd64) or NEON (arm64) support.
func HasBaselineVector() bool {
	return DetectFeatures().Baseline()
}

// HasMidVector reports AVX support.
func HasMidVector() bool {
	return DetectFeatures().Mid()
}

// HasAdvancedVector reports AVX2 support.
func HasAdvancedVector() bool {
	return DetectFeatures().Advanced()
}

// SetForcedFeatures makes DetectFeatures return f until ResetForced is
// called. Intended for tests that exercise every conversion strategy.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetForced removes an override installed by SetForcedFeatures.
// The cached hardware probe is left untouched.
func ResetForced() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()
}
