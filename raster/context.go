// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements the scan converter: it walks the pixels covered
// by a triangle, line, point, or clear rectangle, interpolates vertex
// attributes across them, and invokes the specialized pixel function for the
// active render state on each covered pixel.
package raster

import (
	"github.com/gogpu/softgpu"
	"github.com/gogpu/softgpu/mathx"
	"github.com/gogpu/softgpu/pixel"
	"github.com/gogpu/softgpu/pixfmt"
	"github.com/gogpu/softgpu/state"
)

// VertexData is a post-transform vertex handed to the rasterizer by the
// upstream transform stage. Positions are screen-space pixels with depth in
// 0..65535. The rasterizer never re-derives transforms and does not retain
// vertices past the draw call.
type VertexData struct {
	// Pos is the screen-space position: x and y in pixels, z in 0..65535.
	Pos mathx.Vec3f

	// RHW is the reciprocal of the clip-space w from the perspective
	// divide. Zero marks a screen-space (non-perspective) vertex; a
	// primitive interpolates perspective-correct only when every vertex
	// carries a positive RHW.
	RHW float32

	// Color is the interpolated vertex color, 0..255 per channel.
	Color mathx.Vec4i

	// UV are normalized texture coordinates.
	UV mathx.Vec2f

	// Fog is the per-vertex fog factor in 0..1, where 1 means no fog.
	Fog float32

	// ClipFlags carries the upstream clip-test results. The rasterizer
	// does not act on them; they are produced and consumed by the
	// transform stage.
	ClipFlags uint8
}

// Rect is a half-open pixel rectangle [X0, X1) x [Y0, Y1).
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
}

// DrawContext carries everything one draw call needs: the destination
// planes, the active render state, the bound texture, and the pixel-function
// cache. It is passed explicitly per call; the rasterizer keeps no global
// state.
type DrawContext struct {
	// Target is the destination. The color plane is required.
	Target *pixfmt.RenderTarget

	// ID is the active render-state fingerprint.
	ID state.PixelFuncID

	// Tex is the bound texture, consulted only when ID.Texture is set.
	Tex *pixfmt.Texture

	// Cache resolves specialized pixel functions. Optional: when nil the
	// function is synthesized per draw instead of cached.
	Cache *pixel.Cache

	// Scissor restricts writes to a sub-rectangle of the target. The zero
	// value means the full target.
	Scissor Rect
}

// clipRect returns the drawable region: target bounds intersected with the
// scissor when one is set.
func (ctx *DrawContext) clipRect() Rect {
	w, h := ctx.Target.Bounds()
	full := Rect{X1: w, Y1: h}
	if ctx.Scissor == (Rect{}) {
		return full
	}
	return full.Intersect(ctx.Scissor)
}

// valid checks the context before a draw. An unusable target is reported
// once through the package logger and the draw becomes a no-op; this is a
// caller bug, not a rasterization error.
func (ctx *DrawContext) valid() bool {
	if ctx.Target == nil || ctx.Target.Color == nil {
		softgpu.Logger().Warn("raster: draw issued without a color plane")
		return false
	}
	if ctx.ID.Texture && ctx.Tex == nil {
		softgpu.Logger().Warn("raster: textured draw issued without a bound texture")
		return false
	}
	return true
}

// resolve returns the specialized pixel function for the context's state.
func (ctx *DrawContext) resolve() pixel.Func {
	if ctx.Cache != nil {
		return ctx.Cache.Resolve(ctx.ID)
	}
	return pixel.New(ctx.ID)
}

// sampleTexel fetches the nearest texel for a fragment's UV.
func (ctx *DrawContext) sampleTexel(u, v float32) mathx.Vec4i {
	return ctx.Tex.Sample(u, v)
}

// fogToInt converts a 0..1 fog factor to the pipeline's 0..255 range.
func fogToInt(f float32) int {
	if f >= 1 {
		return 255
	}
	if f <= 0 {
		return 0
	}
	return int(f*255 + 0.5)
}

// clampZ clamps an interpolated depth to the 16-bit range.
func clampZ(z float32) uint16 {
	if z <= 0 {
		return 0
	}
	if z >= 65535 {
		return 65535
	}
	return uint16(z + 0.5)
}
