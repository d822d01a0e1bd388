// Package converter converts raw PCM audio between sample encodings and
// sample rates with minimal latency, picking the fastest code path the
// host CPU supports at runtime.
//
// It is meant to sit inside an audio capture pipeline and work on the short
// buffers such a pipeline hands over on its hot path. Every call is a
// complete transform over one buffer; nothing is retained between calls.
//
// # Features
//
//   - int16 to float32 normalization with 16-wide, 8-wide and scalar
//     strategies chosen from the detected vector tier (AVX2, SSE2/AVX/NEON,
//     none). All strategies produce identical output.
//   - Resampling with two qualities: linear interpolation
//     ([LowLatency]) or libsamplerate's best sinc converter
//     ([HighQuality]) when the shared library is installed.
//   - A heuristic that guesses whether an untyped buffer holds int16 or
//     float32 samples.
//
// # Quick Start
//
// Convert captured int16 audio to float32 and resample it to 48 kHz:
//
//	f32, err := converter.ConvertInt16ToFloat32(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := converter.Resample(f32, 44100, 48000, 2, "high_quality")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or let a [Converter] do both and produce the fixed 48 kHz float32 format:
//
//	c, err := converter.NewConverter(&converter.Config{Quality: converter.HighQuality})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := c.ToFixedFormat(raw, 44100, 2, converter.FormatInt16)
//
// # High Quality Backend
//
// libsamplerate is loaded with the platform's dynamic loader the first time
// high quality resampling is requested, never at link time. The path in the
// LIBSAMPLERATE_PATH environment variable is tried first, then the usual
// library names for the platform (libsamplerate.so.0, libsamplerate.dylib,
// libsamplerate-0.dll, ...). The outcome is cached for the life of the
// process. When the library is missing, or a conversion fails inside it,
// [HighQuality] silently produces the same output as [LowLatency].
//
// # Buffers
//
// All byte buffers are little-endian. Multi-channel audio is interleaved.
// Resampling input must be float32 and its length a multiple of
// channels*4. The destination frame count is floor(srcFrames*dstRate/srcRate).
//
// # Thread Safety
//
// All functions are safe for concurrent use as long as concurrent calls do
// not share buffers. A [Converter] is immutable after construction.
package converter
