// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tiling

import "github.com/gogpu/softgpu/raster"

// Bands splits the target extent into n horizontal bands of near-equal
// height. Bands are disjoint and cover [0, height) exactly; fewer than n
// bands are returned when height < n.
func Bands(width, height, n int) []raster.Rect {
	if width <= 0 || height <= 0 || n <= 0 {
		return nil
	}
	if n > height {
		n = height
	}
	bands := make([]raster.Rect, 0, n)
	base := height / n
	extra := height % n
	y := 0
	for i := 0; i < n; i++ {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, raster.Rect{X0: 0, Y0: y, X1: width, Y1: y + h})
		y += h
	}
	return bands
}

// Render issues draw on every band in parallel. Each invocation receives a
// copy of the context with its scissor narrowed to one band, so workers
// write disjoint destination regions. Render returns when all bands have
// completed.
//
// The context's pixel-function cache is shared across workers; its resolve
// path is safe for concurrent use.
func Render(pool *WorkerPool, ctx *raster.DrawContext, draw func(bandCtx *raster.DrawContext)) {
	w, h := ctx.Target.Bounds()
	bands := Bands(w, h, pool.Workers())
	if len(bands) == 0 {
		return
	}
	work := make([]func(), len(bands))
	for i, band := range bands {
		bandCtx := *ctx
		if ctx.Scissor != (raster.Rect{}) {
			band = band.Intersect(ctx.Scissor)
		}
		bandCtx.Scissor = band
		work[i] = func() {
			if bandCtx.Scissor.Empty() {
				return
			}
			draw(&bandCtx)
		}
	}
	pool.ExecuteAll(work)
}
