// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixfmt

import (
	"encoding/binary"
	"errors"

	"github.com/gogpu/softgpu/mathx"
)

// Common errors for buffer construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixfmt: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pixfmt: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("pixfmt: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pixfmt: data buffer too small")
)

// Buffer is a format-tagged 2D pixel buffer.
//
// Color values cross its boundary as 0..255 per-channel integers regardless
// of storage format; 16-bit formats expand on read with bit replication and
// truncate on write, matching the hardware's round-trip behavior.
//
// Out-of-bounds reads return zero values and out-of-bounds writes are
// ignored. The rasterizer clips primitives before its inner loops, so the
// checks only guard misuse.
//
// Thread safety: concurrent reads are safe; writes require the caller to
// ensure exclusive access to the written region.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewBuffer allocates a buffer with the given dimensions and format.
func NewBuffer(width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	stride := format.RowBytes(width)
	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing data without copying. The caller must keep data
// valid for the lifetime of the buffer. Stride must be at least
// format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}
	if len(data) < stride*height {
		return nil, ErrDataTooSmall
	}
	return &Buffer{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Stride returns the row stride in bytes.
func (b *Buffer) Stride() int { return b.stride }

// Format returns the pixel format.
func (b *Buffer) Format() Format { return b.format }

// Data returns the raw backing bytes.
func (b *Buffer) Data() []byte { return b.data }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// RGBA returns the color at (x, y) expanded to 0..255 channels.
// Valid only for color formats.
func (b *Buffer) RGBA(x, y int) mathx.Vec4i {
	if !b.inBounds(x, y) {
		return mathx.Vec4i{}
	}
	switch b.format {
	case FormatRGBA8888:
		i := y*b.stride + x*4
		return mathx.V4(int(b.data[i]), int(b.data[i+1]), int(b.data[i+2]), int(b.data[i+3]))
	case FormatRGB565:
		return Expand565(b.pix16(x, y))
	case FormatRGBA5551:
		return Expand5551(b.pix16(x, y))
	case FormatRGBA4444:
		return Expand4444(b.pix16(x, y))
	}
	return mathx.Vec4i{}
}

// SetRGBA writes a 0..255 color at (x, y), truncating to the storage format.
// Valid only for color formats.
func (b *Buffer) SetRGBA(x, y int, c mathx.Vec4i) {
	if !b.inBounds(x, y) {
		return
	}
	switch b.format {
	case FormatRGBA8888:
		i := y*b.stride + x*4
		b.data[i] = uint8(c.X)
		b.data[i+1] = uint8(c.Y)
		b.data[i+2] = uint8(c.Z)
		b.data[i+3] = uint8(c.W)
	case FormatRGB565:
		b.setPix16(x, y, Pack565(c))
	case FormatRGBA5551:
		b.setPix16(x, y, Pack5551(c))
	case FormatRGBA4444:
		b.setPix16(x, y, Pack4444(c))
	}
}

// Depth returns the 16-bit depth value at (x, y).
func (b *Buffer) Depth(x, y int) uint16 {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.pix16(x, y)
}

// SetDepth writes a 16-bit depth value at (x, y).
func (b *Buffer) SetDepth(x, y int, z uint16) {
	b.setPix16(x, y, z)
}

// Stencil returns the 8-bit stencil value at (x, y).
func (b *Buffer) Stencil(x, y int) uint8 {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.data[y*b.stride+x]
}

// SetStencil writes an 8-bit stencil value at (x, y).
func (b *Buffer) SetStencil(x, y int, s uint8) {
	if !b.inBounds(x, y) {
		return
	}
	b.data[y*b.stride+x] = s
}

func (b *Buffer) pix16(x, y int) uint16 {
	i := y*b.stride + x*2
	return binary.LittleEndian.Uint16(b.data[i:])
}

func (b *Buffer) setPix16(x, y int, v uint16) {
	if !b.inBounds(x, y) {
		return
	}
	i := y*b.stride + x*2
	binary.LittleEndian.PutUint16(b.data[i:], v)
}

// FillRow writes the same packed pixel across [x0, x1) of row y.
// Used by the clear-rectangle fast path.
func (b *Buffer) FillRow(y, x0, x1 int, c mathx.Vec4i) {
	if y < 0 || y >= b.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, b.width)
	switch b.format {
	case FormatRGBA8888:
		row := b.data[y*b.stride:]
		for x := x0; x < x1; x++ {
			i := x * 4
			row[i] = uint8(c.X)
			row[i+1] = uint8(c.Y)
			row[i+2] = uint8(c.Z)
			row[i+3] = uint8(c.W)
		}
	case FormatRGB565:
		b.fillRow16(y, x0, x1, Pack565(c))
	case FormatRGBA5551:
		b.fillRow16(y, x0, x1, Pack5551(c))
	case FormatRGBA4444:
		b.fillRow16(y, x0, x1, Pack4444(c))
	}
}

// FillRowDepth writes the same depth value across [x0, x1) of row y.
func (b *Buffer) FillRowDepth(y, x0, x1 int, z uint16) {
	if y < 0 || y >= b.height {
		return
	}
	b.fillRow16(y, max(x0, 0), min(x1, b.width), z)
}

// FillRowStencil writes the same stencil value across [x0, x1) of row y.
func (b *Buffer) FillRowStencil(y, x0, x1 int, s uint8) {
	if y < 0 || y >= b.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, b.width)
	row := b.data[y*b.stride:]
	for x := x0; x < x1; x++ {
		row[x] = s
	}
}

func (b *Buffer) fillRow16(y, x0, x1 int, v uint16) {
	row := b.data[y*b.stride:]
	for x := x0; x < x1; x++ {
		binary.LittleEndian.PutUint16(row[x*2:], v)
	}
}
