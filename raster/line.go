// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/softgpu/mathx"
	"github.com/gogpu/softgpu/pixel"
)

// toFixed26 converts a screen coordinate to 26.6 fixed point.
func toFixed26(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math32.Round(v * 64))
}

// DrawLine rasterizes a one-pixel-wide line from v0 to v1 by stepping a
// 26.6 fixed-point cursor along the major axis, one step per pixel. The
// final endpoint pixel is not drawn, so connected line strips never write a
// shared vertex pixel twice. A zero-length line produces no pixel writes.
func DrawLine(ctx *DrawContext, v0, v1 VertexData) {
	if !ctx.valid() {
		return
	}

	dx := v1.Pos.X - v0.Pos.X
	dy := v1.Pos.Y - v0.Pos.Y
	steps := int(math32.Round(math32.Max(math32.Abs(dx), math32.Abs(dy))))
	if steps <= 0 {
		return
	}

	clip := ctx.clipRect()
	if clip.Empty() {
		return
	}

	x := toFixed26(v0.Pos.X)
	y := toFixed26(v0.Pos.Y)
	xStep := (toFixed26(v1.Pos.X) - x) / fixed.Int26_6(steps)
	yStep := (toFixed26(v1.Pos.Y) - y) / fixed.Int26_6(steps)

	perspective := v0.RHW > 0 && v1.RHW > 0
	textured := ctx.ID.Texture
	fn := ctx.resolve()

	for i := 0; i < steps; i++ {
		px := x.Floor()
		py := y.Floor()
		x += xStep
		y += yStep
		if px < clip.X0 || px >= clip.X1 || py < clip.Y0 || py >= clip.Y1 {
			continue
		}

		t := float32(i) / float32(steps)
		t = perspectiveT(t, v0.RHW, v1.RHW, perspective)

		frag := pixel.Fragment{
			Color: mathx.Lerp4(v0.Color, v1.Color, t),
			Z:     clampZ(mathx.Lerp(v0.Pos.Z, v1.Pos.Z, float32(i)/float32(steps))),
			Fog:   fogToInt(mathx.Lerp(v0.Fog, v1.Fog, t)),
		}
		if textured {
			frag.Texel = ctx.sampleTexel(
				mathx.Lerp(v0.UV.X, v1.UV.X, t),
				mathx.Lerp(v0.UV.Y, v1.UV.Y, t),
			)
		}
		fn(px, py, frag, ctx.Target)
	}
}

// DrawPoint rasterizes a single pixel at the vertex position.
func DrawPoint(ctx *DrawContext, v0 VertexData) {
	if !ctx.valid() {
		return
	}
	clip := ctx.clipRect()
	px := toFixed26(v0.Pos.X).Floor()
	py := toFixed26(v0.Pos.Y).Floor()
	if px < clip.X0 || px >= clip.X1 || py < clip.Y0 || py >= clip.Y1 {
		return
	}

	frag := pixel.Fragment{
		Color: v0.Color,
		Z:     clampZ(v0.Pos.Z),
		Fog:   fogToInt(v0.Fog),
	}
	if ctx.ID.Texture {
		frag.Texel = ctx.sampleTexel(v0.UV.X, v0.UV.Y)
	}
	ctx.resolve()(px, py, frag, ctx.Target)
}

// perspectiveT remaps a screen-space interpolation parameter to its
// perspective-correct equivalent along the segment.
func perspectiveT(t, r0, r1 float32, perspective bool) float32 {
	if !perspective {
		return t
	}
	denom := (1-t)*r0 + t*r1
	if denom == 0 {
		return t
	}
	return t * r1 / denom
}
