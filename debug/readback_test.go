// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package debug

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/softgpu/mathx"
	"github.com/gogpu/softgpu/pixel"
	"github.com/gogpu/softgpu/pixfmt"
	"github.com/gogpu/softgpu/raster"
	"github.com/gogpu/softgpu/state"
)

func TestReadStencilMissingPlane(t *testing.T) {
	color, _ := pixfmt.NewBuffer(4, 4, pixfmt.FormatRGBA8888)
	tgt := &pixfmt.RenderTarget{Color: color}
	if _, err := ReadStencil(tgt); !errors.Is(err, ErrNoStencil) {
		t.Errorf("err = %v, want ErrNoStencil", err)
	}
	if _, err := ReadStencil(nil); !errors.Is(err, ErrNoStencil) {
		t.Errorf("nil target err = %v, want ErrNoStencil", err)
	}
}

func TestReadStencilSnapshot(t *testing.T) {
	stencil, _ := pixfmt.NewBuffer(4, 4, pixfmt.FormatStencil8)
	stencil.SetStencil(1, 2, 0x3c)
	tgt := &pixfmt.RenderTarget{Stencil: stencil}

	snap, err := ReadStencil(tgt)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Format != pixfmt.FormatStencil8 || snap.Width != 4 {
		t.Errorf("snapshot header = %+v", snap)
	}
	if snap.Data[2*4+1] != 0x3c {
		t.Error("snapshot missing stencil value")
	}
}

func TestReadTextureLevels(t *testing.T) {
	if _, err := ReadTexture(nil, 0); !errors.Is(err, ErrNoTexture) {
		t.Errorf("nil texture err = %v, want ErrNoTexture", err)
	}

	base, _ := pixfmt.NewBuffer(4, 4, pixfmt.FormatRGB565)
	mip, _ := pixfmt.NewBuffer(2, 2, pixfmt.FormatRGB565)
	tex, err := pixfmt.NewTexture(base, mip)
	if err != nil {
		t.Fatal(err)
	}

	snap, err := ReadTexture(tex, 1)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Width != 2 || snap.Format != pixfmt.FormatRGB565 {
		t.Errorf("level 1 snapshot = %+v", snap)
	}

	if _, err := ReadTexture(tex, 2); !errors.Is(err, ErrNoLevel) {
		t.Errorf("missing level err = %v, want ErrNoLevel", err)
	}
	if _, err := ReadTexture(tex, -1); !errors.Is(err, ErrNoLevel) {
		t.Errorf("negative level err = %v, want ErrNoLevel", err)
	}
}

// Readback between two draws must not change what the second draw produces.
func TestReadbackNonInterference(t *testing.T) {
	render := func(withReadback bool) []byte {
		color, _ := pixfmt.NewBuffer(8, 8, pixfmt.FormatRGBA8888)
		stencil, _ := pixfmt.NewBuffer(8, 8, pixfmt.FormatStencil8)
		ctx := &raster.DrawContext{
			Target: &pixfmt.RenderTarget{Color: color, Stencil: stencil},
			Cache:  pixel.NewCache(),
			ID: state.PixelFuncID{
				StencilTest:  true,
				StencilFunc:  state.TestAlways,
				StencilMask:  0xff,
				StencilZPass: state.StencilIncrement,
			},
		}
		tri := func(c mathx.Vec4i) {
			v := func(x, y float32) raster.VertexData {
				return raster.VertexData{Pos: mathx.V3(x, y, float32(0)), Color: c, Fog: 1}
			}
			raster.DrawTriangle(ctx, v(0, 0), v(0, 8), v(8, 0))
		}

		tri(mathx.V4(255, 0, 0, 255))
		if withReadback {
			if _, err := ReadStencil(ctx.Target); err != nil {
				t.Fatal(err)
			}
		}
		tri(mathx.V4(0, 0, 255, 255))
		return append(append([]byte{}, color.Data()...), stencil.Data()...)
	}

	if !bytes.Equal(render(false), render(true)) {
		t.Error("stencil readback between draws altered the second draw")
	}
}

func TestWritePNG(t *testing.T) {
	buf, _ := pixfmt.NewBuffer(2, 2, pixfmt.FormatRGBA8888)
	var out bytes.Buffer
	if err := WritePNG(&out, pixfmt.Snapshot(buf)); err != nil {
		t.Fatal(err)
	}
	if out.Len() == 0 {
		t.Error("no PNG bytes written")
	}
}
