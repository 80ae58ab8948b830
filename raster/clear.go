// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"github.com/chewxy/math32"
)

// ClearRectangle fills the axis-aligned rectangle spanned by two opposite
// corners with constant values, bypassing edge tests, interpolation, and the
// per-pixel pipeline entirely. The fill value comes from v1 (the second
// corner), matching the hardware's clear primitive: color and stencil from
// the vertex color (alpha feeds the stencil plane), depth from the vertex z.
//
// Which planes are written is controlled by the identifier's ClearColor,
// ClearStencil, and ClearDepth bits; ClearMode itself is implied by calling
// this entry point. Clearing is idempotent: repeating the same clear leaves
// the target unchanged.
func ClearRectangle(ctx *DrawContext, v0, v1 VertexData) {
	if !ctx.valid() {
		return
	}

	x0 := int(math32.Round(math32.Min(v0.Pos.X, v1.Pos.X)))
	y0 := int(math32.Round(math32.Min(v0.Pos.Y, v1.Pos.Y)))
	x1 := int(math32.Round(math32.Max(v0.Pos.X, v1.Pos.X)))
	y1 := int(math32.Round(math32.Max(v0.Pos.Y, v1.Pos.Y)))

	box := Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}.Intersect(ctx.clipRect())
	if box.Empty() {
		return
	}

	id := &ctx.ID
	color := v1.Color
	z := clampZ(v1.Pos.Z)
	stencil := uint8(v1.Color.W)

	for y := box.Y0; y < box.Y1; y++ {
		if id.ClearColor {
			ctx.Target.Color.FillRow(y, box.X0, box.X1, color)
		}
		if id.ClearStencil && ctx.Target.Stencil != nil {
			ctx.Target.Stencil.FillRowStencil(y, box.X0, box.X1, stencil)
		}
		if id.ClearDepth && ctx.Target.Depth != nil {
			ctx.Target.Depth.FillRowDepth(y, box.X0, box.X1, z)
		}
	}
}
