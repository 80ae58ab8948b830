// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tiling

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/softgpu/mathx"
	"github.com/gogpu/softgpu/pixel"
	"github.com/gogpu/softgpu/pixfmt"
	"github.com/gogpu/softgpu/raster"
)

func TestBandsDisjointCover(t *testing.T) {
	bands := Bands(64, 37, 4)
	require.Len(t, bands, 4)

	covered := make([]int, 37)
	for _, b := range bands {
		assert.Equal(t, 0, b.X0)
		assert.Equal(t, 64, b.X1)
		for y := b.Y0; y < b.Y1; y++ {
			covered[y]++
		}
	}
	for y, n := range covered {
		assert.Equalf(t, 1, n, "row %d covered %d times", y, n)
	}
}

func TestBandsDegenerate(t *testing.T) {
	assert.Nil(t, Bands(0, 10, 4))
	assert.Nil(t, Bands(10, 10, 0))
	// More bands than rows collapses to one band per row.
	assert.Len(t, Bands(10, 2, 8), 2)
}

func TestParallelRenderMatchesSerial(t *testing.T) {
	draw := func(ctx *raster.DrawContext) {
		v := func(x, y float32, c mathx.Vec4i) raster.VertexData {
			return raster.VertexData{Pos: mathx.V3(x, y, float32(0)), Color: c, Fog: 1}
		}
		red := mathx.V4(255, 0, 0, 255)
		blue := mathx.V4(0, 0, 255, 255)
		raster.DrawTriangle(ctx, v(1, 1, red), v(1, 30, red), v(30, 1, red))
		raster.DrawTriangle(ctx, v(31, 31, blue), v(31, 2, blue), v(2, 31, blue))
	}

	serial := func() []byte {
		color, err := pixfmt.NewBuffer(32, 32, pixfmt.FormatRGBA8888)
		require.NoError(t, err)
		ctx := &raster.DrawContext{
			Target: &pixfmt.RenderTarget{Color: color},
			Cache:  pixel.NewCache(),
		}
		draw(ctx)
		return color.Data()
	}()

	parallel := func() []byte {
		color, err := pixfmt.NewBuffer(32, 32, pixfmt.FormatRGBA8888)
		require.NoError(t, err)
		ctx := &raster.DrawContext{
			Target: &pixfmt.RenderTarget{Color: color},
			Cache:  pixel.NewCache(),
		}
		pool := NewWorkerPool(4)
		defer pool.Stop()
		Render(pool, ctx, draw)
		return color.Data()
	}()

	if !bytes.Equal(serial, parallel) {
		t.Error("band-parallel render differs from serial render")
	}
}

func TestRenderHonorsOuterScissor(t *testing.T) {
	color, err := pixfmt.NewBuffer(16, 16, pixfmt.FormatRGBA8888)
	require.NoError(t, err)
	ctx := &raster.DrawContext{
		Target:  &pixfmt.RenderTarget{Color: color},
		Cache:   pixel.NewCache(),
		Scissor: raster.Rect{X0: 0, Y0: 0, X1: 16, Y1: 8},
	}

	pool := NewWorkerPool(4)
	defer pool.Stop()
	Render(pool, ctx, func(bandCtx *raster.DrawContext) {
		v := func(x, y float32) raster.VertexData {
			return raster.VertexData{Pos: mathx.V3(x, y, float32(0)), Color: mathx.V4(255, 0, 0, 255), Fog: 1}
		}
		raster.DrawTriangle(bandCtx, v(0, 0), v(0, 16), v(16, 0))
	})

	for y := 8; y < 16; y++ {
		for x := 0; x < 16; x++ {
			assert.Equalf(t, mathx.Vec4i{}, color.RGBA(x, y),
				"pixel (%d,%d) written outside outer scissor", x, y)
		}
	}
}

func TestWorkerPoolExecuteAll(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Stop()

	results := make([]int, 20)
	work := make([]func(), 20)
	for i := range work {
		i := i
		work[i] = func() { results[i] = i + 1 }
	}
	pool.ExecuteAll(work)

	for i, r := range results {
		assert.Equalf(t, i+1, r, "work item %d did not run", i)
	}
}

func TestWorkerPoolStopIsIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Stop()
	pool.Stop()
	// Closed pool ignores new work.
	pool.ExecuteAll([]func(){func() { t.Error("work ran on a stopped pool") }})
}
