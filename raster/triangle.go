// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/softgpu/mathx"
	"github.com/gogpu/softgpu/pixel"
)

// subPixelBits is the sub-pixel precision of the edge functions. Vertex
// coordinates snap to a 1/16 pixel grid, matching the reference hardware.
const subPixelBits = 4

const subPixelStep = 1 << subPixelBits

// fpoint is a screen position on the sub-pixel grid.
type fpoint struct {
	x, y int64
}

func toFixed(v mathx.Vec2f) fpoint {
	return fpoint{
		x: int64(math32.Round(v.X * subPixelStep)),
		y: int64(math32.Round(v.Y * subPixelStep)),
	}
}

// orient computes twice the signed area of the triangle (a, b, c) in
// sub-pixel units. Positive for counter-clockwise winding in screen space
// (y grows downward).
func orient(a, b, c fpoint) int64 {
	return (b.y-a.y)*(c.x-a.x) - (b.x-a.x)*(c.y-a.y)
}

// isTopLeft reports whether the directed edge a->b is a top or left edge of
// a screen-space counter-clockwise triangle. Pixels whose center lies
// exactly on a top-left edge are covered; on any other edge they are not.
// Shared edges between adjacent triangles therefore never double-cover or
// gap a pixel.
func isTopLeft(a, b fpoint) bool {
	if a.y == b.y {
		return b.x < a.x // top edge runs right to left
	}
	return b.y > a.y // left edge runs downward
}

// edgeBias returns the coverage bias for an edge: zero keeps w == 0 pixels
// (top-left edges), minus one excludes them.
func edgeBias(a, b fpoint) int64 {
	if isTopLeft(a, b) {
		return 0
	}
	return -1
}

// DrawTriangle rasterizes a triangle whose vertices are supplied in
// counter-clockwise screen-space winding. Opposite-winding triangles are
// back-facing and must be rejected by the caller before this stage;
// encountering one here (or a zero-area triangle) produces no pixel writes.
func DrawTriangle(ctx *DrawContext, v0, v1, v2 VertexData) {
	if !ctx.valid() {
		return
	}

	p0 := toFixed(mathx.V2(v0.Pos.X, v0.Pos.Y))
	p1 := toFixed(mathx.V2(v1.Pos.X, v1.Pos.Y))
	p2 := toFixed(mathx.V2(v2.Pos.X, v2.Pos.Y))

	area := orient(p0, p1, p2)
	if area <= 0 {
		return
	}

	clip := ctx.clipRect()
	if clip.Empty() {
		return
	}

	// Bounding box, clipped to the drawable region.
	minX := int(minInt64(p0.x, p1.x, p2.x) >> subPixelBits)
	minY := int(minInt64(p0.y, p1.y, p2.y) >> subPixelBits)
	maxX := int(maxInt64(p0.x, p1.x, p2.x)>>subPixelBits) + 1
	maxY := int(maxInt64(p0.y, p1.y, p2.y)>>subPixelBits) + 1
	box := Rect{X0: minX, Y0: minY, X1: maxX, Y1: maxY}.Intersect(clip)
	if box.Empty() {
		return
	}

	bias0 := edgeBias(p1, p2)
	bias1 := edgeBias(p2, p0)
	bias2 := edgeBias(p0, p1)

	// Edge function values at the center of the top-left pixel of the box,
	// and their per-pixel steps.
	start := fpoint{
		x: int64(box.X0)<<subPixelBits + subPixelStep/2,
		y: int64(box.Y0)<<subPixelBits + subPixelStep/2,
	}
	w0Row := orient(p1, p2, start)
	w1Row := orient(p2, p0, start)
	w2Row := orient(p0, p1, start)

	stepX0 := (p2.y - p1.y) << subPixelBits
	stepY0 := (p1.x - p2.x) << subPixelBits
	stepX1 := (p0.y - p2.y) << subPixelBits
	stepY1 := (p2.x - p0.x) << subPixelBits
	stepX2 := (p1.y - p0.y) << subPixelBits
	stepY2 := (p0.x - p1.x) << subPixelBits

	perspective := v0.RHW > 0 && v1.RHW > 0 && v2.RHW > 0
	textured := ctx.ID.Texture
	invArea := 1 / float32(area)
	fn := ctx.resolve()

	for y := box.Y0; y < box.Y1; y++ {
		w0, w1, w2 := w0Row, w1Row, w2Row
		for x := box.X0; x < box.X1; x++ {
			if w0+bias0 >= 0 && w1+bias1 >= 0 && w2+bias2 >= 0 {
				// Screen-space barycentric weights.
				l := mathx.V3(float32(w0)*invArea, float32(w1)*invArea, float32(w2)*invArea)

				// Depth interpolates linearly in screen space; the
				// depth buffer stores post-divide z.
				z := clampZ(mathx.BaryF(v0.Pos.Z, v1.Pos.Z, v2.Pos.Z, l))

				w := l
				if perspective {
					w = perspectiveWeights(l, v0.RHW, v1.RHW, v2.RHW)
				}

				frag := pixel.Fragment{
					Color: mathx.Bary4(v0.Color, v1.Color, v2.Color, w),
					Z:     z,
					Fog:   fogToInt(mathx.BaryF(v0.Fog, v1.Fog, v2.Fog, w)),
				}
				if textured {
					u := mathx.BaryF(v0.UV.X, v1.UV.X, v2.UV.X, w)
					v := mathx.BaryF(v0.UV.Y, v1.UV.Y, v2.UV.Y, w)
					frag.Texel = ctx.sampleTexel(u, v)
				}
				fn(x, y, frag, ctx.Target)
			}
			w0 += stepX0
			w1 += stepX1
			w2 += stepX2
		}
		w0Row += stepY0
		w1Row += stepY1
		w2Row += stepY2
	}
}

// perspectiveWeights converts screen-space barycentric weights to
// perspective-correct attribute weights using the vertices' reciprocal-w.
func perspectiveWeights(l mathx.Vec3f, r0, r1, r2 float32) mathx.Vec3f {
	c0 := l.X * r0
	c1 := l.Y * r1
	c2 := l.Z * r2
	sum := c0 + c1 + c2
	if sum == 0 {
		return l
	}
	inv := 1 / sum
	return mathx.V3(c0*inv, c1*inv, c2*inv)
}

func minInt64(a, b, c int64) int64 { return min(a, min(b, c)) }

func maxInt64(a, b, c int64) int64 { return max(a, max(b, c)) }
