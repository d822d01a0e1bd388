// Package resample converts interleaved float32 frames between frame counts.
//
// Each call is a complete transform over a whole buffer: no filter state is
// carried from one call to the next.
package resample

// Linear resamples srcFrames interleaved frames from src into dstFrames
// frames in dst by linear interpolation between neighbouring frames.
//
// Destination frame i maps to source position i*srcFrames/dstFrames. The
// ratio is taken from the frame counts, not the nominal rates, so the last
// destination frame never reads past the input. A position with no
// successor frame copies the last frame unchanged instead of
// extrapolating. Positions that land exactly on a frame copy it, so with
// srcFrames == dstFrames the output equals the input bit for bit.
//
// dst must hold dstFrames*channels samples. Linear does not allocate.
func Linear(dst, src []float32, srcFrames, dstFrames, channels int) {
	if dstFrames <= 0 || channels <= 0 {
		return
	}

	dst = dst[:dstFrames*channels]
	if srcFrames <= 0 {
		clear(dst)
		return
	}
	src = src[:srcFrames*channels]

	ratio := float64(srcFrames) / float64(dstFrames)

	for i := range dstFrames {
		pos := float64(i) * ratio
		idx := min(int(pos), srcFrames-1)
		frac := float32(pos - float64(idx))

		out := dst[i*channels : (i+1)*channels]
		s0 := src[idx*channels : (idx+1)*channels]

		if frac != 0 && idx+1 < srcFrames {
			s1 := src[(idx+1)*channels : (idx+2)*channels]
			for ch := range out {
				out[ch] = s0[ch] + frac*(s1[ch]-s0[ch])
			}
		} else {
			copy(out, s0)
		}
	}
}
