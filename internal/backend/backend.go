// Package backend binds libsamplerate at runtime.
//
// The library is optional and is never a link-time dependency: it is
// located with the platform loader on first use, its src_simple entry point
// is resolved, and the outcome is cached for the life of the process. A
// failed lookup is final; nothing is retried until the process restarts.
package backend

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"
	"sync"
)

// EnvLibraryPath names the environment variable holding an explicit
// library path. When set, it is tried before the default candidates.
const EnvLibraryPath = "LIBSAMPLERATE_PATH"

const (
	// simpleSymbol is the one-shot conversion entry point.
	simpleSymbol = "src_simple"

	// sincBestQuality is SRC_SINC_BEST_QUALITY.
	sincBestQuality = 0

	// maxFrames keeps frame counts inside a 32-bit C long, which is the
	// width of long on Windows.
	maxFrames = math.MaxInt32

	endOfInput = 1
)

// Errors returned by Library.Resample. None of them reach callers of the
// resampling engine, which falls back to linear interpolation instead.
var (
	// ErrUnavailable indicates the library could not be loaded.
	ErrUnavailable = errors.New("libsamplerate not available")

	// ErrFrameCount indicates a frame count the C interface cannot take.
	ErrFrameCount = errors.New("frame count out of range")

	// ErrBufferSize indicates a buffer shorter than its frame count.
	ErrBufferSize = errors.New("buffer shorter than frame count")

	// ErrBackendFailed indicates src_simple returned a non-zero code.
	ErrBackendFailed = errors.New("libsamplerate conversion failed")
)

// srcSimpleFunc mirrors int src_simple(SRC_DATA *data, int converter_type, int channels).
type srcSimpleFunc func(data *srcData, converterType, channels int32) int32

// srcData mirrors SRC_DATA. cLong follows the platform's C long width.
type srcData struct {
	dataIn          *float32
	dataOut         *float32
	inputFrames     cLong
	outputFrames    cLong
	inputFramesUsed cLong
	outputFramesGen cLong
	endOfInput      int32
	srcRatio        float64
}

// Library is a bound libsamplerate: a loader handle plus the resolved
// src_simple function. A nil *Library means the library is absent; every
// method is safe to call on nil.
type Library struct {
	handle uintptr
	path   string
	simple srcSimpleFunc
}

// Available reports whether the library is bound.
func (l *Library) Available() bool {
	return l != nil && l.simple != nil
}

// Path returns the name the library was loaded from.
func (l *Library) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Resample converts srcFrames interleaved frames in src into exactly
// dstFrames frames in dst in a single call (all input delivered, no state
// carried between calls). The conversion ratio is dstFrames/srcFrames.
//
// If libsamplerate produces fewer frames than requested, the remainder of
// dst is filled by holding the last generated frame so the output is always
// fully populated.
func (l *Library) Resample(dst, src []float32, srcFrames, dstFrames, channels int) error {
	if !l.Available() {
		return ErrUnavailable
	}

	if channels < 1 {
		return fmt.Errorf("%w: channels=%d", ErrFrameCount, channels)
	}
	if srcFrames <= 0 || dstFrames <= 0 {
		return fmt.Errorf("%w: src=%d dst=%d", ErrFrameCount, srcFrames, dstFrames)
	}
	if srcFrames > maxFrames/channels || dstFrames > maxFrames/channels {
		return fmt.Errorf("%w: src=%d dst=%d exceeds %d samples", ErrFrameCount, srcFrames, dstFrames, maxFrames)
	}
	if len(src) < srcFrames*channels || len(dst) < dstFrames*channels {
		return fmt.Errorf("%w: src=%d/%d dst=%d/%d", ErrBufferSize,
			len(src), srcFrames*channels, len(dst), dstFrames*channels)
	}

	data := &srcData{
		dataIn:       &src[0],
		dataOut:      &dst[0],
		inputFrames:  cLong(srcFrames),
		outputFrames: cLong(dstFrames),
		endOfInput:   endOfInput,
		srcRatio:     float64(dstFrames) / float64(srcFrames),
	}

	// src and dst are referenced from data, which itself crosses into C.
	var pinner runtime.Pinner
	pinner.Pin(data)
	pinner.Pin(data.dataIn)
	pinner.Pin(data.dataOut)
	code := l.simple(data, sincBestQuality, int32(channels))
	pinner.Unpin()

	if code != 0 {
		return fmt.Errorf("%w: src_simple returned %d", ErrBackendFailed, code)
	}

	holdTail(dst, int(data.outputFramesGen), dstFrames, channels)
	return nil
}

// holdTail repeats the last generated frame over frames [gen, total).
// With no generated frames the tail is zeroed.
func holdTail(dst []float32, gen, total, channels int) {
	gen = max(gen, 0)
	if gen >= total {
		return
	}

	tail := dst[gen*channels : total*channels]
	if gen == 0 {
		clear(tail)
		return
	}

	last := dst[(gen-1)*channels : gen*channels]
	for i := 0; i < len(tail); i += channels {
		copy(tail[i:i+channels], last)
	}
}

var (
	loadOnce sync.Once
	loaded   *Library
)

// Load resolves libsamplerate once per process and returns the result.
// It returns nil when the library is absent; later calls return the same
// value without probing again.
func Load() *Library {
	loadOnce.Do(func() {
		loaded = newResolver().resolve()
	})
	return loaded
}

// Available reports whether the process-wide library is bound, resolving
// it on first call.
func Available() bool {
	return Load().Available()
}

// Shared is a handle on the process-wide library that defers resolution
// until first used.
type Shared struct{}

// Available resolves the library if needed and reports the outcome.
func (Shared) Available() bool {
	return Load().Available()
}

// Resample delegates to the process-wide library.
func (Shared) Resample(dst, src []float32, srcFrames, dstFrames, channels int) error {
	return Load().Resample(dst, src, srcFrames, dstFrames, channels)
}

// resolver holds the loader primitives so tests can replace them.
type resolver struct {
	getenv     func(string) string
	open       func(string) (uintptr, error)
	symbol     func(uintptr, string) (uintptr, error)
	close      func(uintptr) error
	bind       func(uintptr) srcSimpleFunc
	candidates []string
}

func newResolver() *resolver {
	return &resolver{
		getenv:     os.Getenv,
		open:       openLibrary,
		symbol:     lookupSymbol,
		close:      closeLibrary,
		bind:       bindSimple,
		candidates: defaultCandidates,
	}
}

// resolve loads the first library that opens and binds src_simple.
// A library missing the symbol is closed and the search ends there.
func (r *resolver) resolve() *Library {
	handle, path, ok := r.openFirst()
	if !ok {
		slog.Debug("libsamplerate not found, high quality resampling disabled")
		return nil
	}

	addr, err := r.symbol(handle, simpleSymbol)
	if err != nil || addr == 0 {
		slog.Debug("libsamplerate missing entry point", "path", path, "symbol", simpleSymbol, "error", err)
		if cerr := r.close(handle); cerr != nil {
			slog.Debug("closing libsamplerate failed", "path", path, "error", cerr)
		}
		return nil
	}

	fn := r.bind(addr)
	if fn == nil {
		_ = r.close(handle)
		return nil
	}

	slog.Debug("libsamplerate loaded", "path", path)
	return &Library{handle: handle, path: path, simple: fn}
}

// openFirst tries the environment override, then each default candidate.
func (r *resolver) openFirst() (handle uintptr, path string, ok bool) {
	names := r.candidates
	if env := r.getenv(EnvLibraryPath); env != "" {
		names = append([]string{env}, names...)
	}

	for _, name := range names {
		h, err := r.open(name)
		if err == nil && h != 0 {
			return h, name, true
		}
		slog.Debug("libsamplerate candidate failed", "name", name, "error", err)
	}

	return 0, "", false
}
