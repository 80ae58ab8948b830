// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pixel synthesizes and caches specialized pixel functions.
//
// A specialized pixel function encodes exactly the pipeline stages a
// PixelFuncID enables: texture combine, alpha test, fog, stencil test, depth
// test, blending, dithering, and the color write mask. Stage selection
// happens once at synthesis time, so the per-pixel call pays only for the
// stages the active state requires.
package pixel

import (
	"fmt"

	"github.com/gogpu/softgpu/blend"
	"github.com/gogpu/softgpu/combine"
	"github.com/gogpu/softgpu/mathx"
	"github.com/gogpu/softgpu/pixfmt"
	"github.com/gogpu/softgpu/state"
)

// Fragment carries the interpolated inputs for one covered pixel.
type Fragment struct {
	// Color is the interpolated primary color, 0..255 per channel.
	Color mathx.Vec4i

	// Texel is the sampled texture color. Only read when the identifier
	// enables texturing.
	Texel mathx.Vec4i

	// Z is the interpolated depth value.
	Z uint16

	// Fog is the interpolated fog factor, 0..255, where 255 means no fog.
	Fog int
}

// Func is a specialized pixel function bound to one PixelFuncID. It applies
// the full per-pixel pipeline for a fragment at (x, y), reading and writing
// the destination through the render target.
//
// A Func owns no draw-specific data: it is a pure function of its inputs
// and the destination pixel it reads.
type Func func(x, y int, frag Fragment, tgt *pixfmt.RenderTarget)

// testOf returns a comparator closure for a test function over masked
// 8/16-bit values.
func testOf(f state.TestFunc) func(val, ref int) bool {
	switch f {
	case state.TestNever:
		return func(int, int) bool { return false }
	case state.TestAlways:
		return func(int, int) bool { return true }
	case state.TestEqual:
		return func(v, r int) bool { return v == r }
	case state.TestNotEqual:
		return func(v, r int) bool { return v != r }
	case state.TestLess:
		return func(v, r int) bool { return v < r }
	case state.TestLessEqual:
		return func(v, r int) bool { return v <= r }
	case state.TestGreater:
		return func(v, r int) bool { return v > r }
	case state.TestGreaterEqual:
		return func(v, r int) bool { return v >= r }
	}
	panic(fmt.Sprintf("pixel: unknown test function %d", uint8(f)))
}

// applyStencilOp computes the new stencil value for an op.
func applyStencilOp(op state.StencilOp, cur, ref uint8) uint8 {
	switch op {
	case state.StencilKeep:
		return cur
	case state.StencilZero:
		return 0
	case state.StencilReplace:
		return ref
	case state.StencilInvert:
		return ^cur
	case state.StencilIncrement:
		if cur == 0xff {
			return cur
		}
		return cur + 1
	case state.StencilDecrement:
		if cur == 0 {
			return cur
		}
		return cur - 1
	}
	panic(fmt.Sprintf("pixel: unknown stencil op %d", uint8(op)))
}

// ditherMatrix is the hardware's 4x4 ordered-dither offset table, applied
// to each color channel before the write when dithering is enabled.
var ditherMatrix = [4][4]int{
	{-4, 0, -3, 1},
	{2, -2, 3, -1},
	{-3, 1, -4, 0},
	{3, -1, 2, -2},
}

// New synthesizes the specialized pixel function for an identifier.
//
// Identifiers carrying invalid enum values are programming-contract
// violations and panic during synthesis (never silently fall back), so a
// cached Func is always internally consistent.
func New(id state.PixelFuncID) Func {
	if id.ClearMode {
		return newClearFunc(id)
	}
	return newDrawFunc(id)
}

// newClearFunc builds the clear-rectangle pipeline: constant writes to the
// enabled planes, no tests, no blending.
func newClearFunc(id state.PixelFuncID) Func {
	writeColor := id.ClearColor
	writeStencil := id.ClearStencil
	writeDepth := id.ClearDepth
	return func(x, y int, frag Fragment, tgt *pixfmt.RenderTarget) {
		if writeColor {
			tgt.Color.SetRGBA(x, y, frag.Color)
		}
		if writeStencil && tgt.Stencil != nil {
			tgt.Stencil.SetStencil(x, y, uint8(frag.Color.W))
		}
		if writeDepth && tgt.Depth != nil {
			tgt.Depth.SetDepth(x, y, frag.Z)
		}
	}
}

// newDrawFunc builds the full draw pipeline for a non-clear identifier.
//
// Stage order matches the reference hardware: texture combine, alpha test,
// fog, stencil test, depth test, blend, dither, color mask, write.
func newDrawFunc(id state.PixelFuncID) Func {
	validate(&id)

	var alphaCmp, stencilCmp, depthCmp func(int, int) bool
	if id.AlphaTest {
		alphaCmp = testOf(id.AlphaFunc)
	}
	if id.StencilTest {
		stencilCmp = testOf(id.StencilFunc)
	}
	if id.DepthTest {
		depthCmp = testOf(id.DepthFunc)
	}

	texEnv := mathx.V3(int(id.TexEnvColor[0]), int(id.TexEnvColor[1]), int(id.TexEnvColor[2]))
	fogColor := mathx.V3(int(id.FogColor[0]), int(id.FogColor[1]), int(id.FogColor[2]))
	maskAll := id.ColorMask == [4]uint8{}

	return func(x, y int, frag Fragment, tgt *pixfmt.RenderTarget) {
		col := frag.Color
		if id.Texture {
			col = combine.Color(id.TexFunc, id.TexUseAlpha, col, frag.Texel, texEnv)
		}

		if id.AlphaTest && !alphaCmp(col.W&int(id.AlphaMask), int(id.AlphaRef)&int(id.AlphaMask)) {
			return
		}

		if id.Fog && frag.Fog < 255 {
			f := frag.Fog
			col = col.WithXYZ(mathx.V3(
				fogLerp(col.X, fogColor.X, f),
				fogLerp(col.Y, fogColor.Y, f),
				fogLerp(col.Z, fogColor.Z, f),
			))
		}

		var stencilVal uint8
		haveStencil := id.StencilTest && tgt.Stencil != nil
		if haveStencil {
			stencilVal = tgt.Stencil.Stencil(x, y)
			masked := int(stencilVal & id.StencilMask)
			ref := int(id.StencilRef & id.StencilMask)
			if !stencilCmp(masked, ref) {
				tgt.Stencil.SetStencil(x, y, applyStencilOp(id.StencilFail, stencilVal, id.StencilRef))
				return
			}
		}

		if id.DepthTest && tgt.Depth != nil {
			if !depthCmp(int(frag.Z), int(tgt.Depth.Depth(x, y))) {
				if haveStencil {
					tgt.Stencil.SetStencil(x, y, applyStencilOp(id.StencilZFail, stencilVal, id.StencilRef))
				}
				return
			}
		}
		if haveStencil {
			tgt.Stencil.SetStencil(x, y, applyStencilOp(id.StencilZPass, stencilVal, id.StencilRef))
		}
		if id.DepthWrite && tgt.Depth != nil {
			tgt.Depth.SetDepth(x, y, frag.Z)
		}

		if !id.WritesColor() {
			return
		}

		out := col
		if id.Blend {
			dst := tgt.Color.RGBA(x, y)
			out = blend.Blend(&id, col, dst).WithW(dst.W)
		}

		if id.Dither {
			d := ditherMatrix[y&3][x&3]
			out = out.WithXYZ(out.XYZ().Add(mathx.V3(d, d, d)).Clamp(0, 255))
		}

		if maskAll {
			tgt.Color.SetRGBA(x, y, out)
			return
		}
		dst := tgt.Color.RGBA(x, y)
		tgt.Color.SetRGBA(x, y, mathx.V4(
			mergeMasked(out.X, dst.X, id.ColorMask[0]),
			mergeMasked(out.Y, dst.Y, id.ColorMask[1]),
			mergeMasked(out.Z, dst.Z, id.ColorMask[2]),
			mergeMasked(out.W, dst.W, id.ColorMask[3]),
		))
	}
}

// fogLerp blends a channel toward the fog color: factor 255 keeps the
// fragment, 0 is full fog. Round half up, single division.
func fogLerp(c, fog, factor int) int {
	return (c*factor + fog*(255-factor) + 127) / 255
}

// mergeMasked combines new and destination channel bits per the
// write-protect mask (set bits preserve the destination).
func mergeMasked(newV, dstV int, mask uint8) int {
	m := int(mask)
	return (newV &^ m) | (dstV & m)
}

// validate panics on identifiers that carry invalid enum values. Tests and
// factor/equation validity in blend and combine are checked lazily at use,
// so this covers the fields the closure consults directly.
func validate(id *state.PixelFuncID) {
	if id.AlphaTest && !id.AlphaFunc.IsValid() {
		panic(fmt.Sprintf("pixel: invalid alpha test function %d", uint8(id.AlphaFunc)))
	}
	if id.StencilTest {
		if !id.StencilFunc.IsValid() {
			panic(fmt.Sprintf("pixel: invalid stencil test function %d", uint8(id.StencilFunc)))
		}
		for _, op := range []state.StencilOp{id.StencilFail, id.StencilZFail, id.StencilZPass} {
			if !op.IsValid() {
				panic(fmt.Sprintf("pixel: invalid stencil op %d", uint8(op)))
			}
		}
	}
	if id.DepthTest && !id.DepthFunc.IsValid() {
		panic(fmt.Sprintf("pixel: invalid depth test function %d", uint8(id.DepthFunc)))
	}
	if id.Blend {
		if !id.BlendEq.IsValid() {
			panic(fmt.Sprintf("pixel: invalid blend equation %d", uint8(id.BlendEq)))
		}
		if !id.SrcFactor.IsValid() || !id.DstFactor.IsValid() {
			panic(fmt.Sprintf("pixel: invalid blend factors %d/%d", uint8(id.SrcFactor), uint8(id.DstFactor)))
		}
	}
	if id.Texture && !id.TexFunc.IsValid() {
		panic(fmt.Sprintf("pixel: invalid combine mode %d", uint8(id.TexFunc)))
	}
}
