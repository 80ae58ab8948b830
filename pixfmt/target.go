// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixfmt

// RenderTarget groups the destination planes for a draw. The color plane is
// required; depth and stencil are optional and draws that test or write a
// missing plane treat that stage as disabled storage-wise (tests against a
// missing plane cannot run, so the caller should not enable them).
//
// The rasterizer writes the target in place and never allocates or resizes
// any plane.
type RenderTarget struct {
	Color   *Buffer
	Depth   *Buffer // FormatDepth16, optional
	Stencil *Buffer // FormatStencil8, optional
}

// Bounds returns the drawable extent, the size of the color plane.
func (t *RenderTarget) Bounds() (width, height int) {
	if t == nil || t.Color == nil {
		return 0, 0
	}
	return t.Color.Width(), t.Color.Height()
}

// HasDepth reports whether a depth plane is attached.
func (t *RenderTarget) HasDepth() bool { return t.Depth != nil }

// HasStencil reports whether a stencil plane is attached.
func (t *RenderTarget) HasStencil() bool { return t.Stencil != nil }
