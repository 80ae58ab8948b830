// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package combine evaluates the texture-environment stage: merging the
// interpolated primary color with the sampled texel color according to the
// active combine mode.
//
// All arithmetic is exact 0..255 integer math. Channel products are
// normalized with (product + 127) / 255, rounding half up; sums are clamped
// to 255. This is the single rounding rule used across the pixel pipeline.
package combine

import (
	"fmt"

	"github.com/gogpu/softgpu/mathx"
	"github.com/gogpu/softgpu/state"
)

// mulNorm multiplies two 0..255 channels and renormalizes, rounding half up.
func mulNorm(a, b int) int {
	return (a*b + 127) / 255
}

func mulNorm3(a, b mathx.Vec3i) mathx.Vec3i {
	return mathx.V3(mulNorm(a.X, b.X), mulNorm(a.Y, b.Y), mulNorm(a.Z, b.Z))
}

// Color applies the combine mode to the primary color and texel.
//
// useAlpha selects the RGBA form of each mode (texture alpha participates);
// without it the texture is treated as opaque RGB and the fragment keeps the
// primary alpha. env is the environment color used by the Blend mode.
//
// An unknown mode is a programming-contract violation upstream and panics.
func Color(mode state.TexFunc, useAlpha bool, prim, texel mathx.Vec4i, env mathx.Vec3i) mathx.Vec4i {
	switch mode {
	case state.TexModulate:
		rgb := mulNorm3(prim.XYZ(), texel.XYZ())
		return rgb.WithW(combineAlpha(useAlpha, prim.W, texel.W))

	case state.TexDecal:
		if !useAlpha {
			return texel.XYZ().WithW(prim.W)
		}
		t := texel.W
		rgb := mathx.V3(
			mulNorm(prim.X, 255-t)+mulNorm(texel.X, t),
			mulNorm(prim.Y, 255-t)+mulNorm(texel.Y, t),
			mulNorm(prim.Z, 255-t)+mulNorm(texel.Z, t),
		).Clamp(0, 255)
		return rgb.WithW(prim.W)

	case state.TexBlend:
		rgb := mathx.V3(
			mulNorm(prim.X, 255-texel.X)+mulNorm(env.X, texel.X),
			mulNorm(prim.Y, 255-texel.Y)+mulNorm(env.Y, texel.Y),
			mulNorm(prim.Z, 255-texel.Z)+mulNorm(env.Z, texel.Z),
		).Clamp(0, 255)
		return rgb.WithW(combineAlpha(useAlpha, prim.W, texel.W))

	case state.TexReplace:
		a := prim.W
		if useAlpha {
			a = texel.W
		}
		return texel.XYZ().WithW(a)

	case state.TexAdd:
		rgb := prim.XYZ().Add(texel.XYZ()).Clamp(0, 255)
		return rgb.WithW(combineAlpha(useAlpha, prim.W, texel.W))
	}
	panic(fmt.Sprintf("combine: unknown combine mode %d", uint8(mode)))
}

// combineAlpha returns the fragment alpha: modulated with texture alpha for
// the RGBA modes, the primary alpha otherwise.
func combineAlpha(useAlpha bool, primA, texA int) int {
	if useAlpha {
		return mulNorm(primA, texA)
	}
	return primA
}
