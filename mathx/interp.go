// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mathx

import (
	"github.com/chewxy/math32"
)

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// BaryF interpolates a scalar attribute with barycentric weights.
func BaryF(a0, a1, a2 float32, w Vec3f) float32 {
	return a0*w.X + a1*w.Y + a2*w.Z
}

// Bary4 interpolates a 0..255 integer color with barycentric weights,
// rounding to nearest. The weights are expected to sum to 1.
func Bary4(c0, c1, c2 Vec4i, w Vec3f) Vec4i {
	return Vec4i{
		X: int(math32.Round(float32(c0.X)*w.X + float32(c1.X)*w.Y + float32(c2.X)*w.Z)),
		Y: int(math32.Round(float32(c0.Y)*w.X + float32(c1.Y)*w.Y + float32(c2.Y)*w.Z)),
		Z: int(math32.Round(float32(c0.Z)*w.X + float32(c1.Z)*w.Y + float32(c2.Z)*w.Z)),
		W: int(math32.Round(float32(c0.W)*w.X + float32(c1.W)*w.Y + float32(c2.W)*w.Z)),
	}
}

// Lerp4 interpolates a 0..255 integer color between a and b by t in [0, 1],
// rounding to nearest.
func Lerp4(a, b Vec4i, t float32) Vec4i {
	return Vec4i{
		X: int(math32.Round(Lerp(float32(a.X), float32(b.X), t))),
		Y: int(math32.Round(Lerp(float32(a.Y), float32(b.Y), t))),
		Z: int(math32.Round(Lerp(float32(a.Z), float32(b.Z), t))),
		W: int(math32.Round(Lerp(float32(a.W), float32(b.W), t))),
	}
}
