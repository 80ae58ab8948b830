// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package debug provides read-only extraction of buffer contents for
// external diagnostic tooling.
//
// Readback snapshots current backing storage without touching rendering
// state; it sits entirely off the draw path and may be much slower than it.
// A missing plane or texture level is a legitimate caller mistake under
// diagnostic use and yields a typed error, never a panic.
package debug

import (
	"errors"
	"fmt"
	"image/png"
	"io"

	"github.com/gogpu/softgpu/pixfmt"
)

// Typed readback failures.
var (
	// ErrNoStencil is returned when the render target has no stencil plane.
	ErrNoStencil = errors.New("debug: render target has no stencil plane")

	// ErrNoTexture is returned when no texture is bound.
	ErrNoTexture = errors.New("debug: no texture bound")

	// ErrNoLevel is returned when the requested texture level does not exist.
	ErrNoLevel = errors.New("debug: texture level does not exist")
)

// ReadStencil snapshots the current stencil buffer.
func ReadStencil(tgt *pixfmt.RenderTarget) (*pixfmt.DebugBuffer, error) {
	if tgt == nil || tgt.Stencil == nil {
		return nil, ErrNoStencil
	}
	return pixfmt.Snapshot(tgt.Stencil), nil
}

// ReadTexture snapshots one mip level of the bound texture.
func ReadTexture(tex *pixfmt.Texture, level int) (*pixfmt.DebugBuffer, error) {
	if tex == nil {
		return nil, ErrNoTexture
	}
	buf, ok := tex.Level(level)
	if !ok {
		return nil, fmt.Errorf("debug: read texture level %d of %d: %w", level, tex.LevelCount(), ErrNoLevel)
	}
	return pixfmt.Snapshot(buf), nil
}

// WritePNG encodes a snapshot as PNG for inspection tooling. Depth and
// stencil snapshots encode as grayscale via DebugBuffer.ToImage.
func WritePNG(w io.Writer, d *pixfmt.DebugBuffer) error {
	if err := png.Encode(w, d.ToImage()); err != nil {
		return fmt.Errorf("debug: encode PNG: %w", err)
	}
	return nil
}
