// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blend evaluates the framebuffer blend stage: merging a fragment's
// color with the existing destination color per the active blend equation
// and factors.
//
// Rounding rule: the scaled terms s*srcFactor and d*dstFactor are combined
// by the equation first, then normalized with a single round-half-up
// division by 255, then clamped to 0..255. Min, Max, and AbsDiff operate on
// the raw channels and ignore the factors, like the reference hardware.
// Blending never produces a new alpha; the written alpha is decided later
// in the pipeline (stencil/alpha handling), so the result is RGB only.
package blend

import (
	"fmt"

	"github.com/gogpu/softgpu/mathx"
	"github.com/gogpu/softgpu/state"
)

// Blend computes the blended RGB for a fragment. src and dst are 0..255
// RGBA colors; the result is clamped 0..255 RGB.
//
// Unknown factors or equations are programming-contract violations upstream
// and panic.
func Blend(id *state.PixelFuncID, src, dst mathx.Vec4i) mathx.Vec3i {
	switch id.BlendEq {
	case state.EqAdd, state.EqSubtract, state.EqReverseSubtract:
		// Handled below with factors.
	case state.EqMin:
		return mathx.V3(min(src.X, dst.X), min(src.Y, dst.Y), min(src.Z, dst.Z))
	case state.EqMax:
		return mathx.V3(max(src.X, dst.X), max(src.Y, dst.Y), max(src.Z, dst.Z))
	case state.EqAbsDiff:
		return mathx.V3(absInt(src.X-dst.X), absInt(src.Y-dst.Y), absInt(src.Z-dst.Z))
	default:
		panic(fmt.Sprintf("blend: unknown blend equation %d", uint8(id.BlendEq)))
	}

	fs := factor(id.SrcFactor, src, dst, id.FixSrc)
	fd := factor(id.DstFactor, src, dst, id.FixDst)

	s := src.XYZ().Mul(fs)
	d := dst.XYZ().Mul(fd)

	var sum mathx.Vec3i
	switch id.BlendEq {
	case state.EqAdd:
		sum = s.Add(d)
	case state.EqSubtract:
		sum = s.Sub(d)
	case state.EqReverseSubtract:
		sum = d.Sub(s)
	}
	return roundDiv255(sum).Clamp(0, 255)
}

// factor resolves a blend factor to its per-channel 0..510 multiplier.
// The doubled-alpha factors can exceed 255; clamping happens after the
// equation, not here.
func factor(f state.BlendFactor, src, dst mathx.Vec4i, fix [3]uint8) mathx.Vec3i {
	switch f {
	case state.FactorZero:
		return mathx.V3(0, 0, 0)
	case state.FactorOne:
		return mathx.V3(255, 255, 255)
	case state.FactorSrcColor:
		return src.XYZ()
	case state.FactorOneMinusSrcColor:
		return inv3(src.XYZ())
	case state.FactorSrcAlpha:
		return splat(src.W)
	case state.FactorOneMinusSrcAlpha:
		return splat(255 - src.W)
	case state.FactorDstColor:
		return dst.XYZ()
	case state.FactorOneMinusDstColor:
		return inv3(dst.XYZ())
	case state.FactorDstAlpha:
		return splat(dst.W)
	case state.FactorOneMinusDstAlpha:
		return splat(255 - dst.W)
	case state.FactorDoubleSrcAlpha:
		return splat(2 * src.W)
	case state.FactorOneMinusDoubleSrcAlpha:
		return splat(255 - 2*src.W)
	case state.FactorDoubleDstAlpha:
		return splat(2 * dst.W)
	case state.FactorOneMinusDoubleDstAlpha:
		return splat(255 - 2*dst.W)
	case state.FactorFix:
		return mathx.V3(int(fix[0]), int(fix[1]), int(fix[2]))
	}
	panic(fmt.Sprintf("blend: unknown blend factor %d", uint8(f)))
}

func splat(a int) mathx.Vec3i { return mathx.V3(a, a, a) }

func inv3(v mathx.Vec3i) mathx.Vec3i {
	return mathx.V3(255-v.X, 255-v.Y, 255-v.Z)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// roundDiv255 divides each channel by 255, rounding half away from zero.
func roundDiv255(v mathx.Vec3i) mathx.Vec3i {
	d := func(x int) int {
		if x >= 0 {
			return (x + 127) / 255
		}
		return -((-x + 127) / 255)
	}
	return mathx.V3(d(v.X), d(v.Y), d(v.Z))
}
