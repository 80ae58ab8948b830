// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixfmt

import "github.com/gogpu/softgpu/mathx"

// Packed 16-bit layouts follow the reference hardware: the red channel
// occupies the low bits and alpha (when present) the high bit(s).
//
// Expansion to 8-bit channels replicates the high bits into the low bits
// (e.g. 5-bit c becomes c<<3 | c>>2) so that 0 maps to 0 and the channel
// maximum maps to 255 exactly. Packing truncates, so pack(expand(v)) == v
// for every 16-bit value.

// Expand565 expands a packed RGB565 pixel. Alpha reads as 255.
func Expand565(p uint16) mathx.Vec4i {
	r := int(p & 0x1f)
	g := int((p >> 5) & 0x3f)
	b := int((p >> 11) & 0x1f)
	return mathx.V4(r<<3|r>>2, g<<2|g>>4, b<<3|b>>2, 255)
}

// Pack565 packs a 0..255 color into RGB565, dropping alpha.
func Pack565(c mathx.Vec4i) uint16 {
	return uint16(c.X>>3) | uint16(c.Y>>2)<<5 | uint16(c.Z>>3)<<11
}

// Expand5551 expands a packed RGBA5551 pixel. Alpha reads as 0 or 255.
func Expand5551(p uint16) mathx.Vec4i {
	r := int(p & 0x1f)
	g := int((p >> 5) & 0x1f)
	b := int((p >> 10) & 0x1f)
	a := 0
	if p&0x8000 != 0 {
		a = 255
	}
	return mathx.V4(r<<3|r>>2, g<<3|g>>2, b<<3|b>>2, a)
}

// Pack5551 packs a 0..255 color into RGBA5551. The alpha bit is set when
// the source alpha has its high bit set (alpha >= 128).
func Pack5551(c mathx.Vec4i) uint16 {
	p := uint16(c.X>>3) | uint16(c.Y>>3)<<5 | uint16(c.Z>>3)<<10
	if c.W >= 128 {
		p |= 0x8000
	}
	return p
}

// Expand4444 expands a packed RGBA4444 pixel. Each 4-bit channel c expands
// to c*17, covering 0..255 exactly.
func Expand4444(p uint16) mathx.Vec4i {
	r := int(p & 0xf)
	g := int((p >> 4) & 0xf)
	b := int((p >> 8) & 0xf)
	a := int((p >> 12) & 0xf)
	return mathx.V4(r*17, g*17, b*17, a*17)
}

// Pack4444 packs a 0..255 color into RGBA4444.
func Pack4444(c mathx.Vec4i) uint16 {
	return uint16(c.X>>4) | uint16(c.Y>>4)<<4 | uint16(c.Z>>4)<<8 | uint16(c.W>>4)<<12
}
