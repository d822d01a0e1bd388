package pcm

import (
	"github.com/tphakala/simd/f32"
)

// Int16ToFloat32Scalar is the reference implementation.
func Int16ToFloat32Scalar(dst []float32, src []int16) {
	dst = dst[:len(src)]
	for i, s := range src {
		dst[i] = float32(s) * Int16Scale
	}
}

// Int16ToFloat32Batch8 converts 8-sample blocks with an unrolled body and
// hands the remainder to the scalar path.
func Int16ToFloat32Batch8(dst []float32, src []int16) {
	n := len(src)
	dst = dst[:n]

	i := 0
	for ; i+batch8Width <= n; i += batch8Width {
		s := src[i : i+batch8Width : i+batch8Width]
		d := dst[i : i+batch8Width : i+batch8Width]
		d[0] = float32(s[0]) * Int16Scale
		d[1] = float32(s[1]) * Int16Scale
		d[2] = float32(s[2]) * Int16Scale
		d[3] = float32(s[3]) * Int16Scale
		d[4] = float32(s[4]) * Int16Scale
		d[5] = float32(s[5]) * Int16Scale
		d[6] = float32(s[6]) * Int16Scale
		d[7] = float32(s[7]) * Int16Scale
	}

	Int16ToFloat32Scalar(dst[i:], src[i:])
}

// Int16ToFloat32Batch16 widens 16-sample blocks, scales the whole block
// prefix in one SIMD pass, then hands the remainder to the scalar path.
func Int16ToFloat32Batch16(dst []float32, src []int16) {
	n := len(src)
	dst = dst[:n]

	prefix := n - n%batch16Width
	for i := 0; i < prefix; i += batch16Width {
		s := src[i : i+batch16Width : i+batch16Width]
		d := dst[i : i+batch16Width : i+batch16Width]
		for j, v := range s {
			d[j] = float32(v)
		}
	}

	if prefix > 0 {
		f32.Scale(dst[:prefix], dst[:prefix], Int16Scale)
	}

	Int16ToFloat32Scalar(dst[prefix:], src[prefix:])
}
