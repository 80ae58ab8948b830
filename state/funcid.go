// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package state

import (
	"hash/fnv"

	"github.com/gogpu/softgpu/pixfmt"
)

// PixelFuncID is the fixed-size, value-comparable fingerprint of the render
// state that affects per-pixel computation. It is constructed once per
// draw-state change, never mutated afterwards, and used as the cache key for
// specialized pixel functions.
//
// The zero value describes the simplest pipeline: opaque RGBA8888 writes
// with every test, blending, fog, and dithering disabled.
type PixelFuncID struct {
	// ClearMode selects the clear-rectangle pipeline, which bypasses all
	// tests and writes constants to the planes enabled below.
	ClearMode    bool
	ClearColor   bool
	ClearStencil bool
	ClearDepth   bool

	// ColorFormat is the destination color plane format.
	ColorFormat pixfmt.Format

	// Alpha test.
	AlphaTest bool
	AlphaFunc TestFunc
	AlphaRef  uint8
	AlphaMask uint8

	// Depth test. DepthWrite has effect only when the value survives the
	// test (or the test is disabled).
	DepthTest  bool
	DepthFunc  TestFunc
	DepthWrite bool

	// Stencil test.
	StencilTest  bool
	StencilFunc  TestFunc
	StencilRef   uint8
	StencilMask  uint8
	StencilFail  StencilOp
	StencilZFail StencilOp
	StencilZPass StencilOp

	// Blending. FixSrc and FixDst are the fixed constant colors used when
	// the corresponding factor is FactorFix.
	Blend     bool
	BlendEq   BlendEquation
	SrcFactor BlendFactor
	DstFactor BlendFactor
	FixSrc    [3]uint8
	FixDst    [3]uint8

	// Texturing. TexUseAlpha selects RGBA combine (texture alpha
	// participates) versus RGB combine. TexEnvColor is the environment
	// color for the Blend combine mode.
	Texture     bool
	TexFunc     TexFunc
	TexUseAlpha bool
	TexFormat   pixfmt.Format
	TexEnvColor [3]uint8

	// Fog. The per-vertex fog factor lerps the fragment color toward
	// FogColor after the combine stage.
	Fog      bool
	FogColor [3]uint8

	// Dither applies the hardware's 4x4 ordered-dither offsets to the
	// color before the write.
	Dither bool

	// ColorMask holds per-channel write-protect bit masks (R, G, B, A),
	// matching the hardware encoding: a set bit preserves that destination
	// bit, a clear bit writes it. The zero value writes everything.
	// NewColorMask builds the common all-on/all-off configurations.
	ColorMask [4]uint8
}

// NewColorMask returns a per-channel write mask. A true argument writes
// that channel; false preserves the destination.
func NewColorMask(r, g, b, a bool) [4]uint8 {
	m := [4]uint8{}
	set := func(i int, write bool) {
		if !write {
			m[i] = 0xff
		}
	}
	set(0, r)
	set(1, g)
	set(2, b)
	set(3, a)
	return m
}

// Key returns a 64-bit hash of the identifier, used for cache shard
// selection. Equal identifiers always produce equal keys; distinct
// identifiers may collide, which only costs a longer shard chain.
func (id *PixelFuncID) Key() uint64 {
	var buf [44]byte
	putBool := func(i int, b bool) {
		if b {
			buf[i] = 1
		}
	}
	putBool(0, id.ClearMode)
	putBool(1, id.ClearColor)
	putBool(2, id.ClearStencil)
	putBool(3, id.ClearDepth)
	buf[4] = uint8(id.ColorFormat)
	putBool(5, id.AlphaTest)
	buf[6] = uint8(id.AlphaFunc)
	buf[7] = id.AlphaRef
	buf[8] = id.AlphaMask
	putBool(9, id.DepthTest)
	buf[10] = uint8(id.DepthFunc)
	putBool(11, id.DepthWrite)
	putBool(12, id.StencilTest)
	buf[13] = uint8(id.StencilFunc)
	buf[14] = id.StencilRef
	buf[15] = id.StencilMask
	buf[16] = uint8(id.StencilFail)
	buf[17] = uint8(id.StencilZFail)
	buf[18] = uint8(id.StencilZPass)
	putBool(19, id.Blend)
	buf[20] = uint8(id.BlendEq)
	buf[21] = uint8(id.SrcFactor)
	buf[22] = uint8(id.DstFactor)
	copy(buf[23:26], id.FixSrc[:])
	copy(buf[26:29], id.FixDst[:])
	putBool(29, id.Texture)
	buf[30] = uint8(id.TexFunc)
	putBool(31, id.TexUseAlpha)
	buf[32] = uint8(id.TexFormat)
	copy(buf[33:36], id.TexEnvColor[:])
	putBool(36, id.Fog)
	copy(buf[37:40], id.FogColor[:])
	putBool(40, id.Dither)
	copy(buf[41:44], id.ColorMask[:3])

	h := fnv.New64a()
	_, _ = h.Write(buf[:]) // fnv.Write never returns an error
	_, _ = h.Write([]byte{id.ColorMask[3]})
	return h.Sum64()
}

// WritesColor reports whether any color channel bit is writable.
func (id *PixelFuncID) WritesColor() bool {
	return id.ColorMask != [4]uint8{0xff, 0xff, 0xff, 0xff}
}
