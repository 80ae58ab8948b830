// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixfmt

import (
	"image"
	"image/color"
)

// DebugBuffer is a format-tagged snapshot of a buffer's contents, produced
// by the debug readback path for external tooling. It owns its data (a copy)
// and is never referenced by the rendering path.
type DebugBuffer struct {
	Width  int
	Height int
	Format Format
	Data   []byte
}

// Snapshot copies a buffer's current contents into a DebugBuffer.
// Rows are compacted to the minimum stride.
func Snapshot(b *Buffer) *DebugBuffer {
	rowBytes := b.Format().RowBytes(b.Width())
	out := &DebugBuffer{
		Width:  b.Width(),
		Height: b.Height(),
		Format: b.Format(),
		Data:   make([]byte, rowBytes*b.Height()),
	}
	for y := 0; y < b.Height(); y++ {
		src := b.Data()[y*b.Stride() : y*b.Stride()+rowBytes]
		copy(out.Data[y*rowBytes:], src)
	}
	return out
}

// ToImage converts the snapshot to an image.RGBA for inspection. Depth
// values map to 8-bit grayscale (high byte) and stencil values to grayscale
// directly.
func (d *DebugBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.Width, d.Height))
	view, err := FromRaw(d.Data, d.Width, d.Height, d.Format, d.Format.RowBytes(d.Width))
	if err != nil {
		return img
	}
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			var c color.RGBA
			switch {
			case d.Format.IsColor():
				px := view.RGBA(x, y)
				c = color.RGBA{uint8(px.X), uint8(px.Y), uint8(px.Z), uint8(px.W)}
			case d.Format == FormatDepth16:
				g := uint8(view.Depth(x, y) >> 8)
				c = color.RGBA{g, g, g, 255}
			case d.Format == FormatStencil8:
				g := view.Stencil(x, y)
				c = color.RGBA{g, g, g, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
