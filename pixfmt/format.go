// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pixfmt provides pixel formats, buffers, render targets, and
// textures for the software rasterizer.
//
// The rasterizer reads and writes pixels through these types but never
// allocates the destination framebuffer itself; render targets are supplied
// by the surrounding renderer per draw call.
package pixfmt

// Format identifies the storage layout of a buffer's pixels.
type Format uint8

const (
	// FormatRGBA8888 is 32-bit RGBA, 8 bits per channel.
	FormatRGBA8888 Format = iota

	// FormatRGB565 is 16-bit color: 5 bits red, 6 green, 5 blue, no alpha.
	FormatRGB565

	// FormatRGBA5551 is 16-bit color: 5 bits per color channel, 1 bit alpha.
	FormatRGBA5551

	// FormatRGBA4444 is 16-bit color: 4 bits per channel.
	FormatRGBA4444

	// FormatDepth16 is a 16-bit depth plane.
	FormatDepth16

	// FormatStencil8 is an 8-bit stencil plane.
	FormatStencil8

	formatCount
)

var formatNames = [formatCount]string{
	"RGBA8888",
	"RGB565",
	"RGBA5551",
	"RGBA4444",
	"Depth16",
	"Stencil8",
}

var formatBytes = [formatCount]int{4, 2, 2, 2, 2, 1}

// String returns the format name.
func (f Format) String() string {
	if !f.IsValid() {
		return "Invalid"
	}
	return formatNames[f]
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// IsColor reports whether f stores color pixels.
func (f Format) IsColor() bool {
	switch f {
	case FormatRGBA8888, FormatRGB565, FormatRGBA5551, FormatRGBA4444:
		return true
	}
	return false
}

// HasAlpha reports whether f carries an alpha channel.
func (f Format) HasAlpha() bool {
	switch f {
	case FormatRGBA8888, FormatRGBA5551, FormatRGBA4444:
		return true
	}
	return false
}

// BytesPerPixel returns the storage size of one pixel.
func (f Format) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return formatBytes[f]
}

// RowBytes returns the minimum stride for a row of the given width.
func (f Format) RowBytes(width int) int {
	return f.BytesPerPixel() * width
}
